package analysis

import (
	"regexp"
	"strings"

	"github.com/praxislab/lectern/internal/domain/model"
)

// FluencyDetector computes disfluency metrics from the transcript. The
// default implementation is a lexicon/regex heuristic; model-based scorers
// can be substituted via WithFluencyDetector without touching the
// aggregation pipeline.
type FluencyDetector interface {
	// Detect scans fullText (original casing, space-joined entry texts)
	// and the raw entries. totalWords is the cleaned token count used to
	// normalize rates.
	Detect(fullText string, words []model.Word, totalWords int) FluencyMetrics
}

// wordPattern matches a single alphanumeric token.
var wordPattern = regexp.MustCompile(`\w+`)

// regexFluencyDetector counts filler words, immediate repetitions and false
// starts using fixed patterns.
type regexFluencyDetector struct {
	fillers       []*regexp.Regexp
	falseStartMax float64
}

func newRegexFluencyDetector(lex Lexicon, t Thresholds) *regexFluencyDetector {
	d := &regexFluencyDetector{
		fillers:       make([]*regexp.Regexp, 0, len(lex.Fillers)),
		falseStartMax: t.FalseStartMaxDuration,
	}
	for _, filler := range lex.Fillers {
		d.fillers = append(d.fillers, regexp.MustCompile(`\b`+regexp.QuoteMeta(filler)+`\b`))
	}
	return d
}

func (d *regexFluencyDetector) Detect(fullText string, words []model.Word, totalWords int) FluencyMetrics {
	textLower := strings.ToLower(fullText)

	fillerCount := 0
	for _, pattern := range d.fillers {
		fillerCount += len(pattern.FindAllStringIndex(textLower, -1))
	}

	repetitions := countRepetitions(textLower)

	// False starts approximated as one-word entries shorter than the cutoff.
	falseStarts := 0
	for _, w := range words {
		if len(strings.Fields(strings.TrimSpace(w.Text))) == 1 && w.Duration() < d.falseStartMax {
			falseStarts++
		}
	}

	m := FluencyMetrics{
		FillerWordCount: fillerCount,
		RepetitionCount: repetitions,
		FalseStartCount: falseStarts,
		FluencyScore:    1,
	}
	if totalWords > 0 {
		m.FillerWordRate = float64(fillerCount) / float64(totalWords)
		score := 1 - float64(fillerCount+repetitions+falseStarts)/float64(totalWords)
		if score < 0 {
			score = 0
		}
		m.FluencyScore = score
	}
	return m
}

// countRepetitions counts occurrences of a word immediately followed by
// itself, separated only by whitespace. Go's RE2 engine has no
// backreferences, so this walks the token stream instead; matches do not
// overlap, mirroring non-overlapping regex scanning ("go go go" counts one).
func countRepetitions(text string) int {
	locs := wordPattern.FindAllStringIndex(text, -1)
	count := 0
	for i := 1; i < len(locs); i++ {
		prev, cur := locs[i-1], locs[i]
		if text[prev[0]:prev[1]] != text[cur[0]:cur[1]] {
			continue
		}
		if strings.TrimSpace(text[prev[1]:cur[0]]) != "" {
			continue // punctuation between the words breaks the pair
		}
		count++
		i++ // consume the pair
	}
	return count
}
