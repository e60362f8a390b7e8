// Package ingest loads transcript and segment files and writes analysis
// output. Parsing is strict: malformed JSON or words missing required
// fields abort the pipeline with no partial result.
package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/praxislab/lectern/internal/domain/model"
)

// File permission constants.
const (
	outputFilePermission = 0o600
	outputDirPermission  = 0o750
)

// LoadTranscript reads a transcript.json file: a JSON array of word objects
// with required start/end/text and optional conf/confidence fields.
func LoadTranscript(path string) ([]model.Word, error) {
	data, err := os.ReadFile(path) //nolint:gosec // caller-controlled path is the CLI contract
	if err != nil {
		return nil, fmt.Errorf("read transcript %s: %w", path, err)
	}
	var words []model.Word
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedTranscript, path, err)
	}
	return words, nil
}

// LoadSegments reads a segments.json file: a JSON array of segment-shaped
// objects, typically produced by the segmenter.
func LoadSegments(path string) ([]model.Segment, error) {
	data, err := os.ReadFile(path) //nolint:gosec // caller-controlled path is the CLI contract
	if err != nil {
		return nil, fmt.Errorf("read segments %s: %w", path, err)
	}
	var segments []model.Segment
	if err := json.Unmarshal(data, &segments); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedSegments, path, err)
	}
	return segments, nil
}

// WriteJSON writes v as indented JSON to path, creating parent directories
// as needed.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, outputDirPermission); err != nil {
			return fmt.Errorf("create output dir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, outputFilePermission); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	return nil
}
