package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"clamsense/internal/service"
)

// SurveyHandler handles survey scoring endpoints
type SurveyHandler struct {
	surveySvc *service.SurveyService
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(surveySvc *service.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveySvc: surveySvc}
}

// ScoreRequest is the request body for scoring a PSS-10 survey
type ScoreRequest struct {
	Answers []int `json:"answers"`
}

// Score handles POST /survey/pss10/score. The answer count is structural
// and enforced here; out-of-range answer values are clamped by the scorer.
func (h *SurveyHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.Answers) != service.AnswerCount {
		writeError(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("answers must contain exactly %d items", service.AnswerCount))
		return
	}

	writeJSON(w, http.StatusOK, h.surveySvc.Score(req.Answers))
}
