package restapi

import (
	"log/slog"
	"net/http"
	"time"

	"energymap.ch/internal/logging"
	"energymap.ch/internal/utils"
	"github.com/google/uuid"
)

// RequestIDHeader carries the id of a request in both directions.
const RequestIDHeader = "X-Request-ID"

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// NewRequestLoggingMiddleware creates middleware that logs HTTP requests.
// Every request gets an id, taken from X-Request-ID when the client sent
// a valid uuid, and the request logger carries it. The logged client address
// follows X-Forwarded-For only for requests from trustedProxies.
func NewRequestLoggingMiddleware(logger *slog.Logger, trustedProxies ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := requestIDFor(r)
			w.Header().Set(RequestIDHeader, requestID)
			requestLogger := logger.With(slog.String("request_id", requestID))

			ctx := logging.WithLogger(r.Context(), requestLogger)
			ctx = logging.WithRequestID(ctx, requestID)
			r = r.WithContext(ctx)

			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(wrapped, r)

			duration := time.Since(start)

			logging.LogHTTPRequest(requestLogger,
				r.Method,
				r.URL.Path, // Path without query parameters
				wrapped.statusCode,
				float64(duration.Nanoseconds())/1e6,
				slog.String("user_agent", r.Header.Get("User-Agent")),
				slog.String("client_ip", utils.ClientIP(r, trustedProxies...)),
				slog.String("component", "http_server"))
		})
	}
}

func requestIDFor(r *http.Request) string {
	if id, err := uuid.Parse(r.Header.Get(RequestIDHeader)); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
