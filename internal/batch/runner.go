// Package batch runs the analysis pipeline over transcript files on disk,
// without the HTTP service. It mirrors the service pipeline: segment (unless
// segments are supplied), analyze, generate insights, then write or print.
package batch

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/praxislab/lectern/internal/domain/analysis"
	"github.com/praxislab/lectern/internal/domain/insight"
	"github.com/praxislab/lectern/internal/domain/model"
	"github.com/praxislab/lectern/internal/domain/segmenter"
	"github.com/praxislab/lectern/internal/ingest"
	"github.com/praxislab/lectern/pkg/logger"
)

const summaryInsightCount = 3

// output is the envelope written in json format.
type output struct {
	Metrics  analysis.Report   `json:"metrics"`
	Insights []insight.Insight `json:"insights"`
	Metadata metadata          `json:"metadata"`
}

type metadata struct {
	AnalysisTimestamp string `json:"analysis_timestamp"`
	TranscriptFile    string `json:"transcript_file"`
	SegmentsFile      string `json:"segments_file,omitempty"`
}

// Run executes one batch analysis according to cfg.
func Run(ctx context.Context, cfg *Config) error {
	if err := validate(cfg); err != nil {
		return err
	}

	log := logger.Get()

	words, err := ingest.LoadTranscript(cfg.TranscriptFile)
	if err != nil {
		return err
	}

	var segments []model.Segment
	if cfg.SegmentsFile != "" {
		segments, err = ingest.LoadSegments(cfg.SegmentsFile)
		if err != nil {
			return err
		}
	} else {
		segments = segmenter.New().Segment(words)
		log.Debug(ctx, "segmented transcript",
			logger.Int("words", len(words)),
			logger.Int("segments", len(segments)),
		)
	}

	report := analysis.New(words, segments).Analyze()
	insights := insight.New().Generate(report)

	if cfg.Format == "json" {
		out := output{
			Metrics:  report,
			Insights: insights,
			Metadata: metadata{
				AnalysisTimestamp: time.Now().UTC().Format(time.RFC3339),
				TranscriptFile:    cfg.TranscriptFile,
				SegmentsFile:      cfg.SegmentsFile,
			},
		}
		if err := ingest.WriteJSON(cfg.OutputFile, out); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Comprehensive metrics analysis saved to %s\n", cfg.OutputFile)
		fmt.Fprintf(os.Stdout, "Generated %d actionable insights\n", len(insights))
		return nil
	}

	printSummary(report, insights)
	return nil
}

func validate(cfg *Config) error {
	if cfg.TranscriptFile == "" {
		return ErrMissingTranscript
	}
	switch cfg.Format {
	case "json":
		if cfg.OutputFile == "" {
			return ErrMissingOutput
		}
	case "summary":
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, cfg.Format)
	}
	return nil
}

// printSummary writes a condensed console digest of the report.
func printSummary(report analysis.Report, insights []insight.Insight) {
	fmt.Fprintln(os.Stdout, "\nLECTURE METRICS SUMMARY")
	fmt.Fprintln(os.Stdout, "==================================================")
	fmt.Fprintf(os.Stdout, "Duration: %.1f minutes\n", report.LectureOverview.TotalDurationMinutes)
	fmt.Fprintf(os.Stdout, "Words: %d\n", report.LectureOverview.TotalWords)
	fmt.Fprintf(os.Stdout, "Speech Rate: %.0f WPM\n", report.Speech.WordsPerMinute)
	fmt.Fprintf(os.Stdout, "Fluency Score: %.2f\n", report.Fluency.FluencyScore)
	fmt.Fprintf(os.Stdout, "Engagement Score: %.3f\n", report.Engagement.EngagementScore)

	fmt.Fprintf(os.Stdout, "\nTOP INSIGHTS (%d)\n", len(insights))
	fmt.Fprintln(os.Stdout, "------------------------------")
	top := insights
	if len(top) > summaryInsightCount {
		top = top[:summaryInsightCount]
	}
	for i, ins := range top {
		fmt.Fprintf(os.Stdout, "%d. [%s] %s\n", i+1, ins.Category, ins.Insight)
		fmt.Fprintf(os.Stdout, "   %s\n\n", ins.Suggestion)
	}
}
