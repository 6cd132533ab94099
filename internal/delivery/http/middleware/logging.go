package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// StatusRecorder records HTTP status codes, e.g. into Prometheus counters.
type StatusRecorder interface {
	RecordHTTPStatus(statusCode int)
}

// responseWriter wraps http.ResponseWriter to capture status code and bytes written.
type responseWriter struct {
	http.ResponseWriter
	status  int
	written int64
}

func (w *responseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseWriter) Write(b []byte) (n int, err error) {
	n, err = w.ResponseWriter.Write(b)
	w.written += int64(n)
	return n, err
}

// Logging logs each request with method, path, status, and duration, and feeds
// the status code to rec when one is given. It does not log request or
// response bodies.
func Logging(logger *slog.Logger, rec StatusRecorder, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)
		duration := time.Since(start)
		if rec != nil {
			rec.RecordHTTPStatus(wrapped.status)
		}
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.status,
			"duration_ms", duration.Milliseconds(),
		)
	})
}
