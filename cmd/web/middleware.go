package main

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type requestIDKey struct{}

func getRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// logger returns the default logger tagged with the request ID, if any.
func logger(ctx context.Context) *slog.Logger {
	if id, ok := getRequestID(ctx); ok {
		return slog.With("request_id", id)
	}
	return slog.Default()
}

// methodLabel folds the request method into a fixed set so clients can't
// mint new metric series.
func methodLabel(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions:
		return method
	default:
		return "other"
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (s *Server) requestMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.Must(uuid.NewV7()).String()
		w.Header().Set("X-Request-Id", id)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		r = r.WithContext(withRequestID(r.Context(), id))

		start := time.Now()
		next.ServeHTTP(sw, r)
		dur := time.Since(start)

		s.metrics.Requests.WithLabelValues(methodLabel(r.Method), strconv.Itoa(sw.status)).Observe(dur.Seconds())
		logger(r.Context()).Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"dur", dur,
		)
	})
}
