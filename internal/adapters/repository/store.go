// Package repository defines the analysis report store interface and errors.
package repository

import (
	"context"
	"time"

	"github.com/praxislab/lectern/internal/domain/analysis"
	"github.com/praxislab/lectern/internal/domain/insight"
)

// Record is one stored analysis result.
type Record struct {
	ID        string            `json:"id"`
	LectureID string            `json:"lecture_id"`
	CreatedAt time.Time         `json:"created_at"`
	WordCount int               `json:"word_count"`
	Segments  int               `json:"segment_count"`
	Metrics   analysis.Report   `json:"metrics"`
	Insights  []insight.Insight `json:"insights"`
}

// Store provides read/write access to completed analysis reports.
type Store interface {
	// Put stores a record, evicting the oldest one when the history bound
	// is reached.
	Put(ctx context.Context, rec Record) error

	// Get returns the record with the given report ID.
	// Returns ErrNotFound for unknown IDs.
	Get(ctx context.Context, id string) (Record, error)

	// GetByLecture returns the record for a lecture ID.
	// Returns ErrNotFound for unknown lectures.
	GetByLecture(ctx context.Context, lectureID string) (Record, error)

	// Recent returns up to n records, newest first.
	Recent(ctx context.Context, n int) ([]Record, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) int
}
