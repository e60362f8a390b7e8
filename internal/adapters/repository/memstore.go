package repository

import (
	"context"
	"sync"
)

// defaultMaxHistory bounds the in-memory report history.
const defaultMaxHistory = 1000

// MemStore is a bounded in-memory Store. Records are evicted oldest-first
// once the history bound is reached. Safe for concurrent use.
type MemStore struct {
	mu         sync.RWMutex
	byID       map[string]Record
	byLecture  map[string]string // lecture id -> report id
	order      []string          // report ids, oldest first
	maxHistory int
}

// NewMemStore creates an in-memory report store.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		maxHistory: defaultMaxHistory,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.byID = make(map[string]Record)
	s.byLecture = make(map[string]string)
	return s
}

// Put stores rec, evicting the oldest record at the history bound.
func (s *MemStore) Put(_ context.Context, rec Record) error {
	if rec.ID == "" {
		return ErrEmptyID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[rec.ID]; !exists {
		if s.maxHistory > 0 && len(s.order) >= s.maxHistory {
			oldest := s.order[0]
			s.order = s.order[1:]
			if old, ok := s.byID[oldest]; ok && old.LectureID != "" {
				delete(s.byLecture, old.LectureID)
			}
			delete(s.byID, oldest)
		}
		s.order = append(s.order, rec.ID)
	}

	s.byID[rec.ID] = rec
	if rec.LectureID != "" {
		s.byLecture[rec.LectureID] = rec.ID
	}
	return nil
}

// Get returns the record with the given report ID.
func (s *MemStore) Get(_ context.Context, id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byID[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// GetByLecture returns the record stored for a lecture ID.
func (s *MemStore) GetByLecture(_ context.Context, lectureID string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byLecture[lectureID]
	if !ok {
		return Record{}, ErrNotFound
	}
	rec, ok := s.byID[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// Recent returns up to n records, newest first.
func (s *MemStore) Recent(_ context.Context, n int) ([]Record, error) {
	if n < 1 {
		return nil, ErrInvalidLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if n > len(s.order) {
		n = len(s.order)
	}
	out := make([]Record, 0, n)
	for i := len(s.order) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.byID[s.order[i]])
	}
	return out, nil
}

// Count returns the number of stored records.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
