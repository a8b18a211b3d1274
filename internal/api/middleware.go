package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

var (
	requestIDKContextKey = "Request-ID"
	loggerContextKey     = "Logger"
)

// RequestIDMiddleware keeps a caller-supplied uuid request id or generates one, and echoes it back
func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID, err := uuid.Parse(r.Header.Get(requestIDHeader))
		if err != nil {
			reqID = uuid.New()
		}
		w.Header().Set(requestIDHeader, reqID.String())
		ctx := context.WithValue(r.Context(), requestIDKContextKey, reqID.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default().With(slog.String("route", r.Method+" "+r.URL.Path))
		if reqID, ok := r.Context().Value(requestIDKContextKey).(string); ok {
			logger = logger.With(slog.String("request_id", reqID))
		}
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AccessLogMiddleware logs one line per request with its status and duration
func (s *Server) AccessLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		GetLoggerFromCtx(r.Context()).Debug("request served",
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("took", time.Since(start)),
		)
	})
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
