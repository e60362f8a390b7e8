// Package service provides the core business service that implements
// the dependencies required by the HTTP API: it runs the segmentation and
// metrics pipeline per submitted lecture and keeps the resulting reports.
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/praxislab/lectern/internal/adapters/repository"
	"github.com/praxislab/lectern/internal/domain/analysis"
	"github.com/praxislab/lectern/internal/domain/dedupe"
	"github.com/praxislab/lectern/internal/domain/insight"
	"github.com/praxislab/lectern/internal/domain/model"
	"github.com/praxislab/lectern/internal/domain/segmenter"
	"github.com/praxislab/lectern/pkg/logger"
	"github.com/praxislab/lectern/pkg/metrics"
)

// Service orchestrates segmentation, metric analysis, insight generation
// and report storage. Analyses themselves are pure and run without locks;
// only the store and the dedupe cache are shared.
type Service struct {
	mu sync.RWMutex

	// Core components
	store    repository.Store
	deduper  dedupe.Deduper
	splitter *segmenter.Segmenter
	insights *insight.Generator

	// Configuration
	analysisThresholds analysis.Thresholds
	insightThresholds  insight.Thresholds
	lexicon            analysis.Lexicon
	segmenterOptions   []segmenter.Option
	reportHistory      int
	dedupeSize         int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		analysisThresholds: analysis.DefaultThresholds(),
		insightThresholds:  insight.DefaultThresholds(),
		lexicon:            analysis.DefaultLexicon(),
		reportHistory:      0, // store default applies
		dedupeSize:         0, // dedupe default applies
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	storeOpts := []repository.Option{}
	if s.reportHistory > 0 {
		storeOpts = append(storeOpts, repository.WithMaxHistory(s.reportHistory))
	}
	s.store = repository.NewMemStore(storeOpts...)

	dedupeOpts := []dedupe.Option{}
	if s.dedupeSize > 0 {
		dedupeOpts = append(dedupeOpts, dedupe.WithMaxSize(s.dedupeSize))
	}
	s.deduper = dedupe.NewInMemoryDeduper(dedupeOpts...)

	s.splitter = segmenter.New(s.segmenterOptions...)
	s.insights = insight.New(insight.WithThresholds(s.insightThresholds))

	s.started = true
	s.logger.Info(ctx, "analysis service started",
		logger.Int("reportHistory", s.reportHistory),
		logger.Int("dedupeSize", s.dedupeSize),
	)
	return nil
}

// Stop shuts the service down.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "analysis service stopped")
}

// Analyze runs the full pipeline for one lecture and stores the result.
// A nil segments slice makes the service segment the transcript itself;
// a non-nil slice is trusted as-is. The returned bool reports whether the
// record was served from the store because lectureID had been submitted
// before (lectureID is optional).
func (s *Service) Analyze(ctx context.Context, lectureID string, words []model.Word, segments []model.Segment) (repository.Record, bool, error) {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if !started {
		return repository.Record{}, false, ErrNotStarted
	}

	// Idempotency: a known lecture id is answered from the store.
	if lectureID != "" && s.deduper.SeenAndRecord(ctx, lectureID) {
		rec, err := s.store.GetByLecture(ctx, lectureID)
		if err == nil {
			metrics.RecordDuplicateSubmission()
			return rec, true, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return repository.Record{}, false, err
		}
		// Report evicted since; fall through and re-analyze.
	}

	start := time.Now()

	if segments == nil {
		segments = s.splitter.Segment(words)
	}

	analyzer := analysis.New(words, segments,
		analysis.WithThresholds(s.analysisThresholds),
		analysis.WithLexicon(s.lexicon),
	)
	report := analyzer.Analyze()
	insights := s.insights.Generate(report)

	rec := repository.Record{
		ID:        uuid.New().String(),
		LectureID: lectureID,
		CreatedAt: time.Now().UTC(),
		WordCount: report.LectureOverview.TotalWords,
		Segments:  len(segments),
		Metrics:   report,
		Insights:  insights,
	}
	if err := s.store.Put(ctx, rec); err != nil {
		if lectureID != "" {
			s.deduper.Unrecord(ctx, lectureID)
		}
		metrics.RecordAnalysisError()
		return repository.Record{}, false, err
	}

	elapsedMs := float64(time.Since(start).Microseconds()) / 1000
	metrics.RecordTranscriptAnalyzed()
	metrics.RecordAnalysisLatency(elapsedMs)
	metrics.RecordInsightsGenerated(len(insights))
	metrics.RecordWordsProcessed(rec.WordCount)
	metrics.RecordSegmentCount(rec.Segments)
	metrics.UpdateReportsStored(s.store.Count(ctx))

	s.logger.Debug(ctx, "lecture analyzed",
		logger.String("reportID", rec.ID),
		logger.String("lectureID", rec.LectureID),
		logger.Int("words", rec.WordCount),
		logger.Int("segments", rec.Segments),
		logger.Int("insights", len(insights)),
	)
	return rec, false, nil
}

// GetReport returns a stored report by its report id.
func (s *Service) GetReport(ctx context.Context, id string) (repository.Record, error) {
	return s.store.Get(ctx, id)
}

// RecentReports returns up to n stored reports, newest first.
func (s *Service) RecentReports(ctx context.Context, n int) ([]repository.Record, error) {
	return s.store.Recent(ctx, n)
}

// Stats is a point-in-time snapshot of service state for monitoring.
type Stats struct {
	Started         bool `json:"started"`
	ReportsStored   int  `json:"reports_stored"`
	LecturesTracked int  `json:"lectures_tracked"`
}

// GetStats returns the current report and lecture counters.
func (s *Service) GetStats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{Started: s.started}
	if s.store != nil {
		stats.ReportsStored = s.store.Count(context.Background())
	}
	if s.deduper != nil {
		stats.LecturesTracked = s.deduper.Size()
	}
	return stats
}
