package analysis

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// sentencePattern splits text on terminal punctuation runs.
var sentencePattern = regexp.MustCompile(`[.!?]+`)

// linguisticMetrics derives vocabulary and sentence-level measures from the
// cleaned token stream.
func (a *Analyzer) linguisticMetrics() LinguisticMetrics {
	if len(a.tokens) == 0 {
		return LinguisticMetrics{}
	}

	unique := make(map[string]struct{}, len(a.tokens))
	var charTotal int
	for _, tok := range a.tokens {
		unique[tok] = struct{}{}
		charTotal += len(tok)
	}

	sentences := sentencePattern.Split(a.fullText, -1)
	var sentenceLengths []float64
	for _, s := range sentences {
		if s = strings.TrimSpace(s); s != "" {
			sentenceLengths = append(sentenceLengths, float64(len(strings.Fields(s))))
		}
	}

	return LinguisticMetrics{
		TotalWords:         len(a.tokens),
		UniqueWords:        len(unique),
		LexicalDiversity:   float64(len(unique)) / float64(len(a.tokens)),
		SentenceCount:      len(sentenceLengths),
		AvgSentenceLength:  mean(sentenceLengths),
		AvgWordLength:      float64(charTotal) / float64(len(a.tokens)),
		MostFrequentWords:  a.topContentWords(),
		VocabularyRichness: float64(len(unique)) / math.Sqrt(float64(len(a.tokens))),
	}
}

// topContentWords ranks non-stopword tokens by frequency, descending, ties
// broken alphabetically for deterministic output.
func (a *Analyzer) topContentWords() []WordFrequency {
	stop := make(map[string]struct{}, len(a.lexicon.StopWords))
	for _, w := range a.lexicon.StopWords {
		stop[w] = struct{}{}
	}

	freq := make(map[string]int)
	for _, tok := range a.tokens {
		if _, skip := stop[tok]; !skip {
			freq[tok]++
		}
	}

	ranked := make([]WordFrequency, 0, len(freq))
	for word, count := range freq {
		ranked = append(ranked, WordFrequency{Word: word, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})

	if len(ranked) > a.thresholds.TopWords {
		ranked = ranked[:a.thresholds.TopWords]
	}
	return ranked
}
