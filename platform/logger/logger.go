// Package logger wraps slog with the handful of structured log shapes
// the application emits: HTTP access, AI calls, CRM sync and database
// failures.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	TraceIDKey   contextKey = "trace_id"
)

// Logger embeds slog.Logger so the generic Info/Warn/Error methods
// stay available next to the domain helpers.
type Logger struct {
	*slog.Logger
}

// New picks the handler by environment: readable text at debug level
// in development, JSON at info level everywhere else.
func New(env string) *Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithContext returns a logger annotated with the request and trace
// IDs found in ctx, when present.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}

	newLogger := l

	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		newLogger = newLogger.WithRequestID(requestID)
	}

	if traceID, ok := ctx.Value(TraceIDKey).(string); ok && traceID != "" {
		newLogger = &Logger{
			Logger: newLogger.With(slog.String("trace_id", traceID)),
		}
	}

	return newLogger
}

// WithRequestID returns a logger annotated with the request ID.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.With(slog.String("request_id", requestID)),
	}
}

// HTTPRequest logs one access line per served request.
func (l *Logger) HTTPRequest(method, path string, status int, latencyMs float64, clientIP string) {
	l.Info("http_request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Float64("latency_ms", latencyMs),
		slog.String("client_ip", clientIP),
	)
}

// HTTPError logs a request that ended in a server-side failure.
func (l *Logger) HTTPError(method, path string, status int, err error, clientIP string) {
	l.Error("http_error",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.String("error", err.Error()),
		slog.String("client_ip", clientIP),
	)
}

// AIRequest logs a narrative generation call against the model API.
func (l *Logger) AIRequest(kind string, attempt int, cacheHit bool) {
	l.Info("ai_request",
		slog.String("kind", kind),
		slog.Int("attempt", attempt),
		slog.Bool("cache_hit", cacheHit),
	)
}

// AIError logs a failed narrative generation attempt.
func (l *Logger) AIError(kind string, attempt int, err error) {
	l.Warn("ai_error",
		slog.String("kind", kind),
		slog.Int("attempt", attempt),
		slog.String("error", err.Error()),
	)
}

// CRMEvent logs CRM sync activity. CRM failures never fail a request,
// so they surface here at warn level instead of as errors to callers.
func (l *Logger) CRMEvent(event, email string, success bool, reason string) {
	if success {
		l.Info("crm_event",
			slog.String("event", event),
			slog.String("email", email),
			slog.Bool("success", success),
		)
	} else {
		l.Warn("crm_event",
			slog.String("event", event),
			slog.String("email", email),
			slog.Bool("success", success),
			slog.String("reason", reason),
		)
	}
}

// DatabaseError logs a failed database operation.
func (l *Logger) DatabaseError(operation string, err error) {
	l.Error("database_error",
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
}

// RateLimitExceeded logs a rejected over-limit request.
func (l *Logger) RateLimitExceeded(clientIP, path string) {
	l.Warn("rate_limit_exceeded",
		slog.String("client_ip", clientIP),
		slog.String("path", path),
	)
}
