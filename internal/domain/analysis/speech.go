package analysis

import "strings"

// speechMetrics derives rate and pause statistics from the word timeline.
func (a *Analyzer) speechMetrics() SpeechMetrics {
	if len(a.words) == 0 || a.totalDuration == 0 {
		return SpeechMetrics{}
	}

	totalWords := float64(len(a.tokens))

	// Speech time sums the spans of non-empty entries only.
	var speechTime float64
	for _, w := range a.words {
		if strings.TrimSpace(w.Text) != "" {
			speechTime += w.Duration()
		}
	}

	// Pauses are inter-entry gaps above the minimum cutoff.
	var pauses []float64
	longPauses := 0
	for i := 1; i < len(a.words); i++ {
		gap := a.words[i].Start - a.words[i-1].End
		if gap > a.thresholds.MinPauseGap {
			pauses = append(pauses, gap)
			if gap > a.thresholds.LongPause {
				longPauses++
			}
		}
	}

	m := SpeechMetrics{
		WordsPerMinute:       totalWords / a.totalDuration * secondsPerMinute,
		TotalSpeechTime:      speechTime,
		SilenceTime:          a.totalDuration - speechTime,
		SilenceRatio:         (a.totalDuration - speechTime) / a.totalDuration,
		AveragePauseDuration: mean(pauses),
		PauseCount:           len(pauses),
		LongPauseCount:       longPauses,
	}
	if speechTime > 0 {
		m.SpeechRateWPS = totalWords / speechTime
	}
	return m
}
