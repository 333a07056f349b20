package model

// DiagnosticReport describes the runtime health of the backend and its
// optional storage collaborators. All fields are best-effort status
// strings; a probe failure never escapes as an error.
type DiagnosticReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
	Cache            string   `json:"cache"`
}
