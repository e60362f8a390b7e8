// Package repository defines the analysis report store interface and errors.
package repository

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithMaxHistory bounds the number of retained reports. Oldest reports are
// evicted first. n <= 0 disables eviction.
func WithMaxHistory(n int) Option {
	return func(s *MemStore) {
		s.maxHistory = n
	}
}
