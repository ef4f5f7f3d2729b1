package middleware

import (
	"net/http"
	"time"

	"doggohub/internal/platform/logger"
)

// statusWriter captura el status code para poder loguearlo.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// RequestLogger escribe una línea por request con método, ruta, status
// y duración, más el request id si está en el contexto.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(sw, r)

			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      sw.status,
				"duration_ms": time.Since(start).Milliseconds(),
			}
			if id := GetRequestID(r.Context()); id != "" {
				fields["request_id"] = id
			}
			log.Info("http request", fields)
		})
	}
}
