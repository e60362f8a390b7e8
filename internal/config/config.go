// Package config defines service configuration structures and loading hooks.
//
// Every calibration constant of the analysis engine (segment thresholds,
// pause cutoffs, insight rule limits) lives here so behavior is tunable
// without recompilation.
package config

import (
	"github.com/praxislab/lectern/internal/domain/analysis"
	"github.com/praxislab/lectern/internal/domain/insight"
	"github.com/praxislab/lectern/internal/domain/segmenter"
)

// Default service limits.
const (
	defaultReportHistory  = 1000
	defaultDedupeSize     = 50000
	defaultMaxReportLimit = 100
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MaxSegmentLen is the maximum segment length in seconds.
	MaxSegmentLen float64 `koanf:"max_segment_len"`

	// PauseThreshold is the pause, in seconds, that forces a segment boundary.
	PauseThreshold float64 `koanf:"pause_threshold"`

	// MinPauseGap is the smallest inter-word gap counted as a pause.
	MinPauseGap float64 `koanf:"min_pause_gap"`

	// LongPause is the pause duration counted as "long".
	LongPause float64 `koanf:"long_pause"`

	// LowConfidence is the word confidence below which a word is flagged.
	LowConfidence float64 `koanf:"low_confidence"`

	// PacingChange is the relative rate delta flagged as a pacing change.
	PacingChange float64 `koanf:"pacing_change"`

	// MaxPaceChanges caps reported pace changes.
	MaxPaceChanges int `koanf:"max_pace_changes"`

	// TransitionGap and TransitionSimilarity gate topic transition candidates.
	TransitionGap        float64 `koanf:"transition_gap"`
	TransitionSimilarity float64 `koanf:"transition_similarity"`

	// TopTransitions caps reported topic transitions.
	TopTransitions int `koanf:"top_transitions"`

	// TopWords caps the content-word frequency table.
	TopWords int `koanf:"top_words"`

	// FalseStartMaxDuration bounds single-word entries counted as false starts.
	FalseStartMaxDuration float64 `koanf:"false_start_max_duration"`

	// Insight rule thresholds.
	SlowWPM              float64 `koanf:"slow_wpm"`
	FastWPM              float64 `koanf:"fast_wpm"`
	MinFluency           float64 `koanf:"min_fluency"`
	MinEngagement        float64 `koanf:"min_engagement"`
	MinConfidence        float64 `koanf:"min_confidence"`
	MinPacingConsistency float64 `koanf:"min_pacing_consistency"`

	// ReportHistory bounds the in-memory report store.
	ReportHistory int `koanf:"report_history"`

	// DedupeSize bounds the lecture-id idempotency cache.
	DedupeSize int `koanf:"dedupe_size"`

	// MaxReportLimit caps GET /reports?limit.
	MaxReportLimit int `koanf:"max_report_limit"`
}

// New creates a Config populated with the calibrated defaults.
func New() *Config {
	return &Config{
		LogLevel:              "info",
		LogFormat:             "text",
		Addr:                  ":8080",
		MaxSegmentLen:         segmenter.DefaultMaxSegmentLen,
		PauseThreshold:        segmenter.DefaultPauseThreshold,
		MinPauseGap:           analysis.DefaultMinPauseGap,
		LongPause:             analysis.DefaultLongPause,
		LowConfidence:         analysis.DefaultLowConfidence,
		PacingChange:          analysis.DefaultPacingChange,
		MaxPaceChanges:        analysis.DefaultMaxPaceChanges,
		TransitionGap:         analysis.DefaultTransitionGap,
		TransitionSimilarity:  analysis.DefaultTransitionSimilarity,
		TopTransitions:        analysis.DefaultTopTransitions,
		TopWords:              analysis.DefaultTopWords,
		FalseStartMaxDuration: analysis.DefaultFalseStartMaxDuration,
		SlowWPM:               insight.DefaultSlowWPM,
		FastWPM:               insight.DefaultFastWPM,
		MinFluency:            insight.DefaultMinFluency,
		MinEngagement:         insight.DefaultMinEngagement,
		MinConfidence:         insight.DefaultMinConfidence,
		MinPacingConsistency:  insight.DefaultMinPacingConsistency,
		ReportHistory:         defaultReportHistory,
		DedupeSize:            defaultDedupeSize,
		MaxReportLimit:        defaultMaxReportLimit,
	}
}

// SegmenterOptions maps the config onto segmenter options.
func (c *Config) SegmenterOptions() []segmenter.Option {
	return []segmenter.Option{
		segmenter.WithMaxSegmentLen(c.MaxSegmentLen),
		segmenter.WithPauseThreshold(c.PauseThreshold),
	}
}

// AnalysisThresholds maps the config onto analyzer thresholds.
func (c *Config) AnalysisThresholds() analysis.Thresholds {
	return analysis.Thresholds{
		MinPauseGap:           c.MinPauseGap,
		LongPause:             c.LongPause,
		LowConfidence:         c.LowConfidence,
		PacingChange:          c.PacingChange,
		MaxPaceChanges:        c.MaxPaceChanges,
		TransitionGap:         c.TransitionGap,
		TransitionSimilarity:  c.TransitionSimilarity,
		TopTransitions:        c.TopTransitions,
		TopWords:              c.TopWords,
		FalseStartMaxDuration: c.FalseStartMaxDuration,
	}
}

// InsightThresholds maps the config onto insight rule thresholds.
func (c *Config) InsightThresholds() insight.Thresholds {
	return insight.Thresholds{
		SlowWPM:              c.SlowWPM,
		FastWPM:              c.FastWPM,
		MinFluency:           c.MinFluency,
		MinEngagement:        c.MinEngagement,
		MinConfidence:        c.MinConfidence,
		MinPacingConsistency: c.MinPacingConsistency,
	}
}
