package service

import (
	"context"
	"time"

	"clamsense/internal/config"
	"clamsense/internal/model"
	"clamsense/internal/storage"
)

// maxCollections caps how many collection names the report lists
const maxCollections = 10

// maxErrorLen caps how much of a probe error surfaces in a status string
const maxErrorLen = 50

// DiagnosticService builds best-effort health reports about the backend and
// its optional storage collaborators. Probe failures are downgraded to
// status strings; Report never returns an error.
type DiagnosticService struct {
	db      storage.Database
	cache   storage.Pinger
	cfg     *config.Config
	timeout time.Duration
}

// NewDiagnosticService creates a new diagnostic service. db and cache may
// be nil when the corresponding collaborator is not configured.
func NewDiagnosticService(db storage.Database, cache storage.Pinger, cfg *config.Config) *DiagnosticService {
	return &DiagnosticService{
		db:      db,
		cache:   cache,
		cfg:     cfg,
		timeout: 3 * time.Second,
	}
}

// Report probes the configured collaborators and renders their state as
// human-readable status strings.
func (s *DiagnosticService) Report(ctx context.Context) model.DiagnosticReport {
	report := model.DiagnosticReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      envStatus(s.cfg.DatabaseURL),
		DatabaseName:     envStatus(s.cfg.DatabaseName),
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
		Cache:            "❌ Not Available",
	}

	probeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if s.db != nil {
		report.ConnectionStatus = "Connected"
		names, err := s.db.ListCollectionNames(probeCtx)
		if err != nil {
			report.Database = "⚠️  Connected but Error: " + truncate(err.Error(), maxErrorLen)
		} else {
			if len(names) > maxCollections {
				names = names[:maxCollections]
			}
			report.Collections = names
			report.Database = "✅ Connected & Working"
		}
	}

	if s.cache != nil {
		if err := s.cache.Ping(probeCtx); err != nil {
			report.Cache = "⚠️  Error: " + truncate(err.Error(), maxErrorLen)
		} else {
			report.Cache = "✅ Connected"
		}
	}

	return report
}

func envStatus(val string) string {
	if val != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
