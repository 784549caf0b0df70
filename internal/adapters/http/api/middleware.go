// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/boardroom-ai/boardroom/pkg/logger"
	"github.com/boardroom-ai/boardroom/pkg/metrics"
)

// requestIDHeader carries the correlation id in and out of the service.
const requestIDHeader = "X-Request-ID"

// RequestMiddleware assigns a request id, records Prometheus metrics, and
// logs the request outcome.
func RequestMiddleware(next http.HandlerFunc, endpoint string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		durationMs := float64(time.Since(start).Milliseconds())
		status := strconv.Itoa(wrapped.statusCode)
		metrics.RecordHTTPRequest(endpoint, r.Method, status)
		metrics.RecordHTTPRequestDuration(endpoint, r.Method, status, durationMs)

		log := logger.Get().Named("http")
		fields := []logger.Field{
			logger.String("request_id", id),
			logger.String("endpoint", endpoint),
			logger.String("method", r.Method),
			logger.Int("status", wrapped.statusCode),
			logger.Any("duration_ms", durationMs),
		}
		if wrapped.statusCode >= http.StatusInternalServerError {
			log.Error(r.Context(), "request failed", fields...)
		} else {
			log.Info(r.Context(), "request handled", fields...)
		}
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	if err != nil {
		return n, fmt.Errorf("failed to write response: %w", err)
	}
	return n, nil
}
