// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/praxislab/lectern/internal/adapters/repository"
)

// defaultReportLimit applies when GET /reports has no limit parameter.
const defaultReportLimit = 10

// ReportsHandler serves stored analysis reports.
type ReportsHandler struct {
	deps     Dependencies
	maxLimit int
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(deps Dependencies, maxLimit int) *ReportsHandler {
	return &ReportsHandler{
		deps:     deps,
		maxLimit: maxLimit,
	}
}

// HandleGetReport handles GET /reports/{id} requests.
func (h *ReportsHandler) HandleGetReport(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_report"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/reports/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	rec, err := h.deps.GetReport(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", NewKind(op, ErrNotFound))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, toResponse(rec, false))
}

// HandleListReports handles GET /reports?limit=N requests, newest first.
func (h *ReportsHandler) HandleListReports(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_reports"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	n := defaultReportLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		n = parsed
	}
	if n > h.maxLimit {
		writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrBadRequest))
		return
	}
	records, err := h.deps.RecentReports(r.Context(), n)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	out := make([]analyzeResponse, len(records))
	for i, rec := range records {
		out[i] = toResponse(rec, false)
	}
	writeJSON(w, http.StatusOK, out)
}
