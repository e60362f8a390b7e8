// Package segmenter partitions a word-level transcript into coherent,
// non-overlapping speech segments using pause and length heuristics.
package segmenter

import (
	"regexp"
	"strings"

	"github.com/praxislab/lectern/internal/domain/model"
)

// Default segmentation thresholds in seconds.
const (
	DefaultMaxSegmentLen  = 60.0
	DefaultPauseThreshold = 2.0
)

// tokenPattern extracts alphanumeric tokens, stripping punctuation.
var tokenPattern = regexp.MustCompile(`\w+`)

// Segmenter merges consecutive words into segments until a segment grows to
// maxLen seconds or a pause of at least pauseThresh seconds is hit.
//
// The pass is greedy with no lookahead. The word that trips either threshold
// always opens the next segment rather than closing the current one, so a
// segment can only exceed maxLen when a single word's own duration does.
type Segmenter struct {
	maxLen      float64
	pauseThresh float64
}

// New creates a Segmenter with default thresholds, adjusted by options.
func New(opts ...Option) *Segmenter {
	s := &Segmenter{
		maxLen:      DefaultMaxSegmentLen,
		pauseThresh: DefaultPauseThreshold,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Segment splits words into time-ordered segments. The concatenation of all
// segment spans is exactly the sorted input word sequence; no word is dropped
// or duplicated. Empty input yields an empty, non-nil result.
func (s *Segmenter) Segment(words []model.Word) []model.Segment {
	segments := []model.Segment{}
	if len(words) == 0 {
		return segments
	}

	// Sort defensively; the ASR collaborator does not guarantee ordering.
	sorted := make([]model.Word, len(words))
	copy(sorted, words)
	model.SortByStart(sorted)

	current := sorted[:1]
	for _, word := range sorted[1:] {
		prev := current[len(current)-1]
		gap := word.Start - prev.End
		duration := word.End - current[0].Start

		if duration >= s.maxLen || gap >= s.pauseThresh {
			segments = append(segments, makeSegment(current))
			current = []model.Word{word}
		} else {
			current = append(current, word)
		}
	}
	segments = append(segments, makeSegment(current))

	return segments
}

// makeSegment aggregates one run of words and derives its statistics.
// words is never empty here.
func makeSegment(words []model.Word) model.Segment {
	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text
	}
	text := strings.TrimSpace(strings.Join(texts, " "))

	duration := words[len(words)-1].End - words[0].Start

	var silence, confidence float64
	for i, w := range words {
		confidence += w.Confidence
		if i == 0 {
			continue
		}
		if gap := w.Start - words[i-1].End; gap > 0 {
			silence += gap
		}
	}

	seg := model.Segment{
		Start:            words[0].Start,
		End:              words[len(words)-1].End,
		Text:             text,
		LexicalDiversity: lexicalDiversity(text),
		ASRConfidence:    confidence / float64(len(words)),
	}
	if duration > 0 {
		seg.SpeechRate = float64(len(words)) / duration
		seg.SilenceRatio = silence / duration
	}
	return seg
}

// lexicalDiversity returns unique tokens over total tokens,
// case-insensitive, 0 for token-free text.
func lexicalDiversity(text string) float64 {
	tokens := tokenPattern.FindAllString(strings.ToLower(text), -1)
	if len(tokens) == 0 {
		return 0
	}
	unique := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		unique[t] = struct{}{}
	}
	return float64(len(unique)) / float64(len(tokens))
}
