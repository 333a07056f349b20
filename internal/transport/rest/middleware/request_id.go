package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// HeaderRequestID is the response header carrying the per-request ID
const HeaderRequestID = "X-Request-ID"

// RequestID assigns each request a UUID (reusing the client's, if sent) and
// writes one access-log line per request.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)

		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s rid=%s %s", r.Method, r.URL.Path, id, time.Since(start))
	})
}
