package analysis

import (
	"sort"
	"strings"

	"github.com/praxislab/lectern/internal/domain/model"
)

// transitionGapScale normalizes a time gap into a strength contribution;
// a 5 second gap alone yields strength 1.0.
const transitionGapScale = 5.0

// contextWindow bounds the text excerpts attached to a transition.
const contextWindow = 100

// TransitionDetector finds likely topic boundaries between adjacent
// segments. The default implementation combines timing gaps with lexical
// overlap; it never inspects semantics. Model-based detectors can be
// substituted via WithTransitionDetector.
type TransitionDetector interface {
	// Detect returns candidate transitions ordered by descending strength.
	// The ordering is deterministic for identical input.
	Detect(segments []model.Segment) []Transition
}

// lexicalTransitionDetector scores adjacent segment pairs by inter-segment
// silence and word-set overlap.
type lexicalTransitionDetector struct {
	gapThresh        float64
	similarityThresh float64
}

func newLexicalTransitionDetector(t Thresholds) *lexicalTransitionDetector {
	return &lexicalTransitionDetector{
		gapThresh:        t.TransitionGap,
		similarityThresh: t.TransitionSimilarity,
	}
}

func (d *lexicalTransitionDetector) Detect(segments []model.Segment) []Transition {
	transitions := []Transition{}
	if len(segments) < 2 {
		return transitions
	}

	for i := 0; i < len(segments)-1; i++ {
		current, next := segments[i], segments[i+1]

		timeGap := next.Start - current.End
		similarity := wordOverlap(current.Text, next.Text)

		if timeGap <= d.gapThresh && similarity >= d.similarityThresh {
			continue
		}
		strength := timeGap / transitionGapScale
		if s := 1 - similarity; s > strength {
			strength = s
		}
		transitions = append(transitions, Transition{
			Timestamp:          current.End,
			TimeGap:            timeGap,
			LexicalSimilarity:  similarity,
			TransitionStrength: strength,
			ContextBefore:      tail(current.Text, contextWindow),
			ContextAfter:       head(next.Text, contextWindow),
		})
	}

	// Stable sort keeps timeline order among equal strengths, making the
	// ranking reproducible across runs.
	sort.SliceStable(transitions, func(i, j int) bool {
		return transitions[i].TransitionStrength > transitions[j].TransitionStrength
	})
	return transitions
}

// wordOverlap is the word-set intersection size over the smaller set size,
// 0 when either side has no words.
func wordOverlap(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	overlap := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			overlap++
		}
	}
	smaller := len(setA)
	if len(setB) < smaller {
		smaller = len(setB)
	}
	return float64(overlap) / float64(smaller)
}

func wordSet(text string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
