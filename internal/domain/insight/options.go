package insight

// Default rule thresholds. Calibration constants, not semantic guarantees.
const (
	DefaultSlowWPM              = 120.0
	DefaultFastWPM              = 200.0
	DefaultMinFluency           = 0.85
	DefaultMinEngagement        = 0.02
	DefaultMinConfidence        = 0.8
	DefaultMinPacingConsistency = 0.7
)

// Thresholds holds the cutoffs the rule table evaluates against.
type Thresholds struct {
	SlowWPM              float64 // below: pacing/medium
	FastWPM              float64 // above: pacing/high
	MinFluency           float64 // below: fluency/medium
	MinEngagement        float64 // below: engagement/high
	MinConfidence        float64 // below: audio quality/medium
	MinPacingConsistency float64 // below: pacing/low
}

// DefaultThresholds returns the calibrated defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		SlowWPM:              DefaultSlowWPM,
		FastWPM:              DefaultFastWPM,
		MinFluency:           DefaultMinFluency,
		MinEngagement:        DefaultMinEngagement,
		MinConfidence:        DefaultMinConfidence,
		MinPacingConsistency: DefaultMinPacingConsistency,
	}
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithThresholds replaces the rule thresholds.
func WithThresholds(t Thresholds) Option {
	return func(g *Generator) {
		g.thresholds = t
	}
}
