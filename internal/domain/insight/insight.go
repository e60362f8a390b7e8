// Package insight maps a computed metrics report to categorized,
// severity-ranked actionable feedback via an independent rule table.
package insight

import (
	"fmt"

	"github.com/praxislab/lectern/internal/domain/analysis"
)

// Insight categories.
const (
	CategoryPacing       = "Pacing"
	CategoryFluency      = "Fluency"
	CategoryEngagement   = "Engagement"
	CategoryAudioQuality = "Audio Quality"
)

// Insight severities.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Insight is one piece of actionable feedback derived from the metrics.
// Callers decide whether and where to persist it.
type Insight struct {
	Category   string `json:"category"`
	Severity   string `json:"severity"`
	Insight    string `json:"insight"`
	Suggestion string `json:"suggestion"`
}

// rule evaluates one metric against the generator thresholds and yields at
// most one insight. Rules are independent; every rule always runs.
type rule func(analysis.Report, Thresholds) *Insight

// Generator applies the rule table to completed reports.
type Generator struct {
	thresholds Thresholds
	rules      []rule
}

// New creates a Generator with default thresholds, adjusted by options.
func New(opts ...Option) *Generator {
	g := &Generator{
		thresholds: DefaultThresholds(),
		rules: []rule{
			slowSpeechRule,
			fastSpeechRule,
			fluencyRule,
			engagementRule,
			audioQualityRule,
			pacingConsistencyRule,
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate evaluates every rule against report. Rule order determines
// report order; multiple rules may fire.
func (g *Generator) Generate(report analysis.Report) []Insight {
	insights := []Insight{}
	for _, r := range g.rules {
		if ins := r(report, g.thresholds); ins != nil {
			insights = append(insights, *ins)
		}
	}
	return insights
}

func slowSpeechRule(r analysis.Report, t Thresholds) *Insight {
	wpm := r.Speech.WordsPerMinute
	if wpm >= t.SlowWPM {
		return nil
	}
	return &Insight{
		Category:   CategoryPacing,
		Severity:   SeverityMedium,
		Insight:    fmt.Sprintf("Speech rate is %.0f WPM, which may be too slow. Consider increasing pace for better engagement.", wpm),
		Suggestion: "Aim for 150-180 words per minute for optimal comprehension.",
	}
}

func fastSpeechRule(r analysis.Report, t Thresholds) *Insight {
	wpm := r.Speech.WordsPerMinute
	if wpm <= t.FastWPM {
		return nil
	}
	return &Insight{
		Category:   CategoryPacing,
		Severity:   SeverityHigh,
		Insight:    fmt.Sprintf("Speech rate is %.0f WPM, which may be too fast for students to follow.", wpm),
		Suggestion: "Slow down to 150-180 WPM and add more pauses for emphasis.",
	}
}

func fluencyRule(r analysis.Report, t Thresholds) *Insight {
	score := r.Fluency.FluencyScore
	if score >= t.MinFluency {
		return nil
	}
	return &Insight{
		Category:   CategoryFluency,
		Severity:   SeverityMedium,
		Insight:    fmt.Sprintf("Fluency score is %.2f. High use of filler words detected.", score),
		Suggestion: "Practice reducing filler words like 'um', 'uh', and 'like' to improve clarity.",
	}
}

func engagementRule(r analysis.Report, t Thresholds) *Insight {
	if r.Engagement.EngagementScore >= t.MinEngagement {
		return nil
	}
	return &Insight{
		Category:   CategoryEngagement,
		Severity:   SeverityHigh,
		Insight:    "Low engagement indicators detected. Few questions or interactive elements.",
		Suggestion: "Add more examples, questions, and direct audience references to increase engagement.",
	}
}

func audioQualityRule(r analysis.Report, t Thresholds) *Insight {
	avg := r.Confidence.AverageConfidence
	if avg >= t.MinConfidence {
		return nil
	}
	return &Insight{
		Category:   CategoryAudioQuality,
		Severity:   SeverityMedium,
		Insight:    fmt.Sprintf("Average ASR confidence is %.2f, indicating potential audio quality issues.", avg),
		Suggestion: "Check microphone quality and reduce background noise for clearer audio.",
	}
}

func pacingConsistencyRule(r analysis.Report, t Thresholds) *Insight {
	// A zero-valued pacing group (fewer than three segments) carries no
	// consistency signal; stay silent instead of flagging 0.
	if r.Pacing.AverageRate == 0 {
		return nil
	}
	consistency := r.Pacing.PacingConsistency
	if consistency >= t.MinPacingConsistency {
		return nil
	}
	return &Insight{
		Category:   CategoryPacing,
		Severity:   SeverityLow,
		Insight:    fmt.Sprintf("Pacing consistency is %.2f. Variable speech rate detected.", consistency),
		Suggestion: "Work on maintaining more consistent pacing throughout the lecture.",
	}
}
