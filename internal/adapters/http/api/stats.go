// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	app "github.com/praxislab/lectern/internal/app"
)

// StatsProvider exposes a snapshot of the analysis service counters.
type StatsProvider interface {
	GetStats() app.Stats
}

// StatsHandler serves the service counters for monitoring.
type StatsHandler struct {
	statsProvider StatsProvider
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsProvider StatsProvider) *StatsHandler {
	return &StatsHandler{statsProvider: statsProvider}
}

// HandleStats handles GET /stats requests, reporting how many analysis
// reports are stored and how many lecture ids are tracked for idempotency.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.statsProvider.GetStats())
}
