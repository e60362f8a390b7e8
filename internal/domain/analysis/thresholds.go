package analysis

// Default calibration constants. Exposed so the config layer can surface
// them without duplicating literals.
const (
	DefaultMinPauseGap           = 0.1
	DefaultLongPause             = 2.0
	DefaultLowConfidence         = 0.7
	DefaultPacingChange          = 0.3
	DefaultMaxPaceChanges        = 5
	DefaultTransitionGap         = 3.0
	DefaultTransitionSimilarity  = 0.3
	DefaultTopTransitions        = 3
	DefaultTopWords              = 10
	DefaultFalseStartMaxDuration = 0.5
)

// Thresholds carries every tunable cutoff of the metric computations.
// Values are calibration constants, not semantic guarantees.
type Thresholds struct {
	// MinPauseGap is the minimum inter-word gap in seconds counted as a
	// pause at all.
	MinPauseGap float64
	// LongPause is the pause duration in seconds counted as "long".
	LongPause float64
	// LowConfidence is the word confidence below which a word counts as
	// low-confidence.
	LowConfidence float64
	// PacingChange is the relative rate delta between adjacent segments
	// flagged as a pacing change.
	PacingChange float64
	// MaxPaceChanges caps the number of reported pace changes.
	MaxPaceChanges int
	// TransitionGap and TransitionSimilarity gate topic transition
	// candidates: a pair qualifies when its time gap exceeds TransitionGap
	// or its lexical similarity falls below TransitionSimilarity.
	TransitionGap        float64
	TransitionSimilarity float64
	// TopTransitions caps the number of transitions kept in the report.
	TopTransitions int
	// TopWords caps the content-word frequency table.
	TopWords int
	// FalseStartMaxDuration is the duration in seconds under which a
	// single-word transcript entry counts as a false start.
	FalseStartMaxDuration float64
}

// DefaultThresholds returns the calibrated defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinPauseGap:           DefaultMinPauseGap,
		LongPause:             DefaultLongPause,
		LowConfidence:         DefaultLowConfidence,
		PacingChange:          DefaultPacingChange,
		MaxPaceChanges:        DefaultMaxPaceChanges,
		TransitionGap:         DefaultTransitionGap,
		TransitionSimilarity:  DefaultTransitionSimilarity,
		TopTransitions:        DefaultTopTransitions,
		TopWords:              DefaultTopWords,
		FalseStartMaxDuration: DefaultFalseStartMaxDuration,
	}
}
