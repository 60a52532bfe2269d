package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/4ak45h/Legacy-Planner/pkg/auth"
)

// statusRecorder captures the response status for the access log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// Logging emits one access-log line per request. When the request carries
// validated claims the line includes the user ID, which makes tracing a
// user's profile saves and retrievals straightforward.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			attrs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", r.RemoteAddr,
			}
			if claims, ok := auth.ClaimsFromContext(r.Context()); ok {
				attrs = append(attrs, "user_id", claims.UserID)
			}
			logger.Info("request", attrs...)
		})
	}
}
