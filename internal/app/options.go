package service

import (
	"github.com/praxislab/lectern/internal/domain/analysis"
	"github.com/praxislab/lectern/internal/domain/insight"
	"github.com/praxislab/lectern/internal/domain/segmenter"
	"github.com/praxislab/lectern/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithAnalysisThresholds sets the analyzer calibration thresholds.
func WithAnalysisThresholds(t analysis.Thresholds) Option {
	return func(s *Service) {
		s.analysisThresholds = t
	}
}

// WithInsightThresholds sets the insight rule thresholds.
func WithInsightThresholds(t insight.Thresholds) Option {
	return func(s *Service) {
		s.insightThresholds = t
	}
}

// WithLexicon sets the lexicon tables used by the heuristic detectors.
func WithLexicon(l analysis.Lexicon) Option {
	return func(s *Service) {
		s.lexicon = l
	}
}

// WithSegmenterOptions forwards options to the transcript segmenter.
func WithSegmenterOptions(opts ...segmenter.Option) Option {
	return func(s *Service) {
		s.segmenterOptions = opts
	}
}

// WithReportHistory bounds the in-memory report store.
func WithReportHistory(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.reportHistory = n
		}
	}
}

// WithDedupeSize bounds the lecture-id idempotency cache.
func WithDedupeSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.dedupeSize = n
		}
	}
}
