package mesto

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/xid"
	"go.uber.org/zap"
)

type contextKey int

const (
	callerIDKey contextKey = iota
	requestIDKey
)

// callerID returns the authenticated caller's id attached by
// requireAuth. Empty outside protected routes.
func callerID(r *http.Request) string {
	id, _ := r.Context().Value(callerIDKey).(string)
	return id
}

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey).(string)
	return id
}

// requireAuth extracts the session cookie, verifies the token and
// attaches the caller id to the request context. It short-circuits
// before any aggregate logic runs and does no persistence I/O.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil {
			s.writeError(w, r, ErrAuthRequired)
			return
		}

		subject, err := s.tokens.Verify(cookie.Value)
		if err != nil {
			s.writeError(w, r, ErrBadToken)
			return
		}

		ctx := context.WithValue(r.Context(), callerIDKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// logRequests tags each request with an id and logs method, path,
// status and duration once the handler finishes. Bodies are never
// logged, so credentials cannot leak into the log stream.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		ctx := context.WithValue(r.Context(), requestIDKey, xid.New().String())
		r = r.WithContext(ctx)

		next.ServeHTTP(rec, r)

		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("requestId", requestID(r)),
			zap.String("userAgent", r.UserAgent()),
		)
	})
}
