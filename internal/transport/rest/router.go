package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"clamsense/internal/config"
	"clamsense/internal/service"
	"clamsense/internal/transport/rest/handler"
	"clamsense/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	SurveyService     *service.SurveyService
	RiskService       *service.RiskService
	DiagnosticService *service.DiagnosticService
	Config            *config.Config
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	surveyHandler := handler.NewSurveyHandler(c.SurveyService)
	predictHandler := handler.NewPredictHandler(c.RiskService)
	diagHandler := handler.NewDiagnosticHandler(c.DiagnosticService)

	// Middleware (CORS applies first)
	r.Use(corsMiddleware(c.Config))
	r.Use(middleware.RequestID)

	// OPTIONS everywhere so preflights reach the CORS middleware
	r.HandleFunc("/", diagHandler.Root).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/hello", diagHandler.Hello).Methods("GET", "OPTIONS")
	r.HandleFunc("/test", diagHandler.Test).Methods("GET", "OPTIONS")

	r.HandleFunc("/survey/pss10/score", surveyHandler.Score).Methods("POST", "OPTIONS")
	r.HandleFunc("/predict", predictHandler.Predict).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(cfg *config.Config) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", cfg.CORSAllowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", cfg.CORSAllowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", cfg.CORSAllowedHeaders)

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
