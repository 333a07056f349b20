package handler

import (
	"encoding/json"
	"net/http"

	"clamsense/internal/service"
)

// DiagnosticHandler handles the greeting and diagnostic endpoints
type DiagnosticHandler struct {
	diagSvc *service.DiagnosticService
}

// NewDiagnosticHandler creates a new diagnostic handler
func NewDiagnosticHandler(diagSvc *service.DiagnosticService) *DiagnosticHandler {
	return &DiagnosticHandler{diagSvc: diagSvc}
}

// Root handles GET /
func (h *DiagnosticHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello from the ClamSense backend!"})
}

// Hello handles GET /api/hello
func (h *DiagnosticHandler) Hello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello from the backend API!"})
}

// Test handles GET /test. Always 200: collaborator absence or failure is
// reported inside the body, never as an HTTP error.
func (h *DiagnosticHandler) Test(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.diagSvc.Report(r.Context()))
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
