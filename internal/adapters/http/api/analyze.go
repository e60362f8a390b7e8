// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/praxislab/lectern/internal/adapters/repository"
	"github.com/praxislab/lectern/internal/domain/analysis"
	"github.com/praxislab/lectern/internal/domain/insight"
	"github.com/praxislab/lectern/internal/domain/model"
)

// AnalyzeHandler handles lecture analysis submissions.
type AnalyzeHandler struct {
	deps Dependencies
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(deps Dependencies) *AnalyzeHandler {
	return &AnalyzeHandler{deps: deps}
}

// analyzeRequest mirrors the POST /analyze body. Segments is a pointer so
// an omitted field (service segments the transcript itself) can be told
// apart from an explicitly empty list (trusted as-is).
type analyzeRequest struct {
	LectureID  string           `json:"lecture_id"`
	Transcript []model.Word     `json:"transcript"`
	Segments   *[]model.Segment `json:"segments"`
}

type reportMetadata struct {
	AnalysisTimestamp time.Time `json:"analysis_timestamp"`
	WordCount         int       `json:"word_count"`
	SegmentCount      int       `json:"segment_count"`
}

// analyzeResponse is the stored report plus submission status.
type analyzeResponse struct {
	ID        string            `json:"id"`
	LectureID string            `json:"lecture_id,omitempty"`
	Duplicate bool              `json:"duplicate"`
	Metrics   analysis.Report   `json:"metrics"`
	Insights  []insight.Insight `json:"insights"`
	Metadata  reportMetadata    `json:"metadata"`
}

func toResponse(rec repository.Record, duplicate bool) analyzeResponse {
	return analyzeResponse{
		ID:        rec.ID,
		LectureID: rec.LectureID,
		Duplicate: duplicate,
		Metrics:   rec.Metrics,
		Insights:  rec.Insights,
		Metadata: reportMetadata{
			AnalysisTimestamp: rec.CreatedAt,
			WordCount:         rec.WordCount,
			SegmentCount:      rec.Segments,
		},
	}
}

// HandlePostAnalyze handles POST /analyze requests. Malformed JSON and
// words missing required fields are rejected; an empty transcript is valid
// and yields a zero-valued report.
func (h *AnalyzeHandler) HandlePostAnalyze(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_analyze"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	var segments []model.Segment
	if req.Segments != nil {
		segments = *req.Segments
		if segments == nil {
			segments = []model.Segment{}
		}
	}

	rec, duplicate, err := h.deps.Analyze(r.Context(), req.LectureID, req.Transcript, segments)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	status := http.StatusCreated
	if duplicate {
		status = http.StatusOK
	}
	writeJSON(w, status, toResponse(rec, duplicate))
}
