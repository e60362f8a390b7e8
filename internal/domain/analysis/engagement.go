package analysis

import (
	"regexp"
	"strings"
)

// EngagementScorer counts lexical engagement cues in the transcript text.
// The default implementation is a fixed pattern table; alternative scorers
// can be substituted via WithEngagementScorer.
type EngagementScorer interface {
	Score(fullText string, totalWords int) EngagementMetrics
}

// patternEngagementScorer counts matches of three cue families: question
// indicators, example markers and direct audience references.
type patternEngagementScorer struct {
	questions    []*regexp.Regexp
	examples     []*regexp.Regexp
	interactions []*regexp.Regexp
}

func newPatternEngagementScorer(lex Lexicon) *patternEngagementScorer {
	return &patternEngagementScorer{
		questions:    compilePatterns(lex.QuestionCues),
		examples:     compilePatterns(lex.ExampleCues),
		interactions: compilePatterns(lex.InteractionCues),
	}
}

func compilePatterns(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

func countMatches(patterns []*regexp.Regexp, text string) int {
	total := 0
	for _, p := range patterns {
		total += len(p.FindAllStringIndex(text, -1))
	}
	return total
}

func (s *patternEngagementScorer) Score(fullText string, totalWords int) EngagementMetrics {
	textLower := strings.ToLower(fullText)

	m := EngagementMetrics{
		QuestionIndicators: countMatches(s.questions, textLower),
		ExampleCount:       countMatches(s.examples, textLower),
		InteractionCues:    countMatches(s.interactions, textLower),
	}
	if totalWords > 0 {
		m.EngagementScore = float64(m.QuestionIndicators+m.ExampleCount+m.InteractionCues) / float64(totalWords)
	}
	return m
}
