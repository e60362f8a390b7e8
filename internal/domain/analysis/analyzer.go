// Package analysis computes speech, fluency, linguistic, confidence,
// engagement and pacing metrics over a word-level lecture transcript and its
// segments. All computations are deterministic, synchronous and free of I/O;
// concurrent analyses never share state.
package analysis

import (
	"regexp"
	"strings"

	"github.com/praxislab/lectern/internal/domain/model"
)

const secondsPerMinute = 60

// nonTokenPattern strips everything but word characters and whitespace
// before tokenizing transcript text.
var nonTokenPattern = regexp.MustCompile(`[^\w\s]`)

// Analyzer computes a Report from a transcript and an optional segment list.
// When segments are absent, the pacing and topic-transition groups degrade
// to zero values instead of failing.
type Analyzer struct {
	words    []model.Word
	segments []model.Segment

	thresholds Thresholds
	lexicon    Lexicon

	fluency     FluencyDetector
	engagement  EngagementScorer
	transitions TransitionDetector

	// Derived once at construction.
	fullText      string
	tokens        []string
	totalDuration float64
}

// New builds an Analyzer over words and segments. Words are sorted
// defensively by start time; the input slices are not mutated.
func New(words []model.Word, segments []model.Segment, opts ...Option) *Analyzer {
	sorted := make([]model.Word, len(words))
	copy(sorted, words)
	model.SortByStart(sorted)

	a := &Analyzer{
		words:      sorted,
		segments:   segments,
		thresholds: DefaultThresholds(),
		lexicon:    DefaultLexicon(),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.fullText = joinText(a.words)
	a.tokens = tokenize(a.words)
	a.totalDuration = totalDuration(a.words)

	if a.fluency == nil {
		a.fluency = newRegexFluencyDetector(a.lexicon, a.thresholds)
	}
	if a.engagement == nil {
		a.engagement = newPatternEngagementScorer(a.lexicon)
	}
	if a.transitions == nil {
		a.transitions = newLexicalTransitionDetector(a.thresholds)
	}
	return a
}

// Analyze computes the full metrics report. Each metric group is an
// independent, side-effect-free sub-computation; an empty transcript yields
// a zero-valued, empty-listed report rather than an error.
func (a *Analyzer) Analyze() Report {
	report := Report{
		LectureOverview: Overview{
			TotalDurationMinutes: a.totalDuration / secondsPerMinute,
			TotalWords:           len(a.tokens),
			SegmentCount:         len(a.segments),
		},
		Speech:     a.speechMetrics(),
		Fluency:    a.fluency.Detect(a.fullText, a.words, len(a.tokens)),
		Linguistic: a.linguisticMetrics(),
		Confidence: a.confidenceMetrics(),
		Engagement: a.engagement.Score(a.fullText, len(a.tokens)),
		Pacing:     a.pacingMetrics(),
	}

	transitions := a.transitions.Detect(a.segments)
	if top := a.thresholds.TopTransitions; len(transitions) > top {
		transitions = transitions[:top]
	}
	report.TopicTransitions = transitions

	return report
}

// joinText concatenates trimmed entry texts with single spaces.
func joinText(words []model.Word) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = strings.TrimSpace(w.Text)
	}
	return strings.Join(parts, " ")
}

// tokenize lowercases entry texts, strips punctuation and splits on
// whitespace, dropping empty tokens.
func tokenize(words []model.Word) []string {
	var tokens []string
	for _, w := range words {
		text := strings.TrimSpace(w.Text)
		if text == "" {
			continue
		}
		clean := nonTokenPattern.ReplaceAllString(strings.ToLower(text), "")
		tokens = append(tokens, strings.Fields(clean)...)
	}
	return tokens
}

// totalDuration is the maximum end time over all entries, 0 when empty.
func totalDuration(words []model.Word) float64 {
	var max float64
	for _, w := range words {
		if w.End > max {
			max = w.End
		}
	}
	return max
}
