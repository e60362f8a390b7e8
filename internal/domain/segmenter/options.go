package segmenter

// Option applies a configuration option to the Segmenter.
type Option func(*Segmenter)

// WithMaxSegmentLen sets the maximum segment length in seconds.
func WithMaxSegmentLen(seconds float64) Option {
	return func(s *Segmenter) {
		if seconds > 0 {
			s.maxLen = seconds
		}
	}
}

// WithPauseThreshold sets the pause duration, in seconds, that forces a
// segment boundary.
func WithPauseThreshold(seconds float64) Option {
	return func(s *Segmenter) {
		if seconds > 0 {
			s.pauseThresh = seconds
		}
	}
}
