package handler

import (
	"encoding/json"
	"net/http"

	"clamsense/internal/model"
	"clamsense/internal/service"
)

// PredictHandler handles risk prediction endpoints
type PredictHandler struct {
	riskSvc *service.RiskService
}

// NewPredictHandler creates a new predict handler
func NewPredictHandler(riskSvc *service.RiskService) *PredictHandler {
	return &PredictHandler{riskSvc: riskSvc}
}

// Predict handles POST /predict. Every field is range-checked here before
// the estimator runs; the estimator itself is total over valid input.
func (h *PredictHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var req model.RiskFeatures
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if msg := validateFeatures(&req); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	writeJSON(w, http.StatusOK, h.riskSvc.Estimate(req))
}

func validateFeatures(f *model.RiskFeatures) string {
	switch {
	case f.HeartRate <= 0:
		return "heart_rate must be greater than 0"
	case f.SleepHours < 0 || f.SleepHours > 14:
		return "sleep_hours must be between 0 and 14"
	case f.Steps < 0:
		return "steps must not be negative"
	case f.DayOfWeek < 0 || f.DayOfWeek > 6:
		return "day_of_week must be between 0 and 6"
	case f.Hour < 0 || f.Hour > 23:
		return "hour must be between 0 and 23"
	case f.MoodScore < 0 || f.MoodScore > 1:
		return "mood_score must be between 0 and 1"
	case f.PSS10Score != nil && (*f.PSS10Score < 0 || *f.PSS10Score > 40):
		return "pss10_score must be between 0 and 40"
	}
	return ""
}
