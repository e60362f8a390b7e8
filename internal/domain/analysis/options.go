package analysis

// Option applies a configuration option to the Analyzer.
type Option func(*Analyzer)

// WithThresholds replaces the calibration thresholds.
func WithThresholds(t Thresholds) Option {
	return func(a *Analyzer) {
		a.thresholds = t
	}
}

// WithLexicon replaces the fixed lexicon tables, enabling locale or domain
// variants without code changes.
func WithLexicon(l Lexicon) Option {
	return func(a *Analyzer) {
		a.lexicon = l
	}
}

// WithFluencyDetector substitutes the fluency detection implementation.
func WithFluencyDetector(d FluencyDetector) Option {
	return func(a *Analyzer) {
		if d != nil {
			a.fluency = d
		}
	}
}

// WithEngagementScorer substitutes the engagement scoring implementation.
func WithEngagementScorer(s EngagementScorer) Option {
	return func(a *Analyzer) {
		if s != nil {
			a.engagement = s
		}
	}
}

// WithTransitionDetector substitutes the topic transition detector.
func WithTransitionDetector(d TransitionDetector) Option {
	return func(a *Analyzer) {
		if d != nil {
			a.transitions = d
		}
	}
}
