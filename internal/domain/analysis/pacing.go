package analysis

import (
	"math"
	"strings"
)

// minPacingSegments is the minimum segment count for pacing analysis.
const minPacingSegments = 3

// segmentRate pairs a local word rate with its segment start time.
type segmentRate struct {
	timestamp float64
	rate      float64
}

// pacingMetrics analyzes speech rate variation across segments. Fewer than
// three segments yield a zero-valued group.
func (a *Analyzer) pacingMetrics() PacingMetrics {
	if len(a.segments) < minPacingSegments {
		return PacingMetrics{}
	}

	var segmentRates []segmentRate
	for _, seg := range a.segments {
		duration := seg.Duration()
		if duration <= 0 {
			continue
		}
		wordCount := float64(len(strings.Fields(seg.Text)))
		segmentRates = append(segmentRates, segmentRate{
			timestamp: seg.Start,
			rate:      wordCount / duration,
		})
	}
	if len(segmentRates) == 0 {
		return PacingMetrics{}
	}

	rates := make([]float64, len(segmentRates))
	for i, sr := range segmentRates {
		rates[i] = sr.rate
	}

	// Flag relative rate jumps between adjacent segments. The report keeps
	// the first MaxPaceChanges in timeline order; the total count is
	// reported separately.
	var changes []PaceChange
	for i := 1; i < len(rates); i++ {
		if rates[i-1] <= 0 {
			continue
		}
		magnitude := math.Abs(rates[i]-rates[i-1]) / rates[i-1]
		if magnitude > a.thresholds.PacingChange {
			changes = append(changes, PaceChange{
				Timestamp:       segmentRates[i].timestamp,
				ChangeMagnitude: magnitude,
				NewRate:         rates[i],
				PreviousRate:    rates[i-1],
			})
		}
	}

	avg := mean(rates)
	std := sampleStdDev(rates)
	lo, hi := minMax(rates)

	m := PacingMetrics{
		AverageRate:            avg,
		RateStd:                std,
		MinRate:                lo,
		MaxRate:                hi,
		SignificantPaceChanges: len(changes),
	}
	if avg > 0 {
		m.PacingConsistency = 1 - std/avg
	}
	if len(changes) > a.thresholds.MaxPaceChanges {
		changes = changes[:a.thresholds.MaxPaceChanges]
	}
	m.PaceChanges = changes
	return m
}
