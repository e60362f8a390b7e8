// Package model contains domain records passed between layers.
package model

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Word represents a single token emitted by the ASR collaborator,
// carrying word-level timestamps and an optional recognition confidence.
type Word struct {
	Start      float64 // seconds from lecture start
	End        float64 // seconds from lecture start, End >= Start
	Text       string  // token text, may include punctuation
	Confidence float64 // recognition confidence in [0,1], 0 when absent

	// HasConfidence reports whether the wire entry carried a confidence
	// value under either spelling. An explicit zero is a real datum and
	// must not be confused with an absent field.
	HasConfidence bool
}

// wordJSON mirrors the wire shape of transcript.json entries. ASR backends
// in the wild emit the confidence under either "conf" or "confidence";
// pointers distinguish absent fields from zero values.
type wordJSON struct {
	Start      *float64 `json:"start"`
	End        *float64 `json:"end"`
	Text       *string  `json:"text"`
	Conf       *float64 `json:"conf,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// UnmarshalJSON decodes a transcript entry, rejecting entries that lack any
// of the required start/end/text fields.
func (w *Word) UnmarshalJSON(data []byte) error {
	var wire wordJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("decode word: %w", err)
	}
	switch {
	case wire.Start == nil:
		return fmt.Errorf("%w: start", ErrMissingField)
	case wire.End == nil:
		return fmt.Errorf("%w: end", ErrMissingField)
	case wire.Text == nil:
		return fmt.Errorf("%w: text", ErrMissingField)
	}
	w.Start = *wire.Start
	w.End = *wire.End
	w.Text = *wire.Text
	// "confidence" wins when both spellings are present.
	switch {
	case wire.Confidence != nil:
		w.Confidence = *wire.Confidence
		w.HasConfidence = true
	case wire.Conf != nil:
		w.Confidence = *wire.Conf
		w.HasConfidence = true
	default:
		w.Confidence = 0
	}
	return nil
}

// MarshalJSON emits the canonical wire shape with the "confidence" spelling.
func (w Word) MarshalJSON() ([]byte, error) {
	out, err := json.Marshal(wordJSON{
		Start:      &w.Start,
		End:        &w.End,
		Text:       &w.Text,
		Confidence: &w.Confidence,
	})
	if err != nil {
		return nil, fmt.Errorf("encode word: %w", err)
	}
	return out, nil
}

// Duration returns the word's own span in seconds.
func (w Word) Duration() float64 {
	return w.End - w.Start
}

// SortByStart orders words by start time ascending, preserving the original
// order of ties. Input ordering is not guaranteed by the ASR collaborator.
func SortByStart(words []Word) {
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].Start < words[j].Start
	})
}

// Segment is a contiguous, time-bounded run of transcript words treated as
// one analysis unit, carrying its own derived statistics.
type Segment struct {
	Start            float64 `json:"start"`
	End              float64 `json:"end"`
	Text             string  `json:"text"`
	SpeechRate       float64 `json:"speech_rate"`       // words per second
	LexicalDiversity float64 `json:"lexical_diversity"` // unique / total tokens
	SilenceRatio     float64 `json:"silence_ratio"`     // intra-segment gaps / duration
	ASRConfidence    float64 `json:"asr_confidence"`    // mean word confidence
}

// Duration returns the segment span in seconds.
func (s Segment) Duration() float64 {
	return s.End - s.Start
}
