package analysis

// confidenceMetrics aggregates word-level ASR confidence. Entries that never
// supplied a confidence value are skipped, so a transcript with no confidences
// at all reports zeros instead of erroring. An explicit zero from the wire is
// a low-confidence datum and stays in.
func (a *Analyzer) confidenceMetrics() ConfidenceMetrics {
	var confidences []float64
	for _, w := range a.words {
		if w.HasConfidence || w.Confidence > 0 {
			confidences = append(confidences, w.Confidence)
		}
	}
	if len(confidences) == 0 {
		return ConfidenceMetrics{}
	}

	low := 0
	for _, c := range confidences {
		if c < a.thresholds.LowConfidence {
			low++
		}
	}

	lo, hi := minMax(confidences)
	return ConfidenceMetrics{
		AverageConfidence:  mean(confidences),
		MinConfidence:      lo,
		MaxConfidence:      hi,
		ConfidenceStd:      sampleStdDev(confidences),
		LowConfidenceCount: low,
		LowConfidenceRatio: float64(low) / float64(len(confidences)),
	}
}
