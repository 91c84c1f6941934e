package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/electron-shaders/sc2002-proj/pkg/monitoring"
	"github.com/electron-shaders/sc2002-proj/pkg/types"
)

type contextKey string

const (
	contextKeyClaims    contextKey = "claims"
	contextKeyRequestID contextKey = "request_id"
)

// claimsFromContext returns the authenticated claims set by authMiddleware.
func claimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(contextKeyClaims).(*Claims)
	return claims, ok
}

// requestIDMiddleware stamps every request with a request ID, honoring an
// incoming X-Request-ID header.
func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)

		ctx := context.WithValue(r.Context(), contextKeyRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// loggingMiddleware logs each request and records HTTP metrics.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		recorder := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(recorder, r)

		duration := time.Since(start)
		endpoint := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if template, err := route.GetPathTemplate(); err == nil {
				endpoint = template
			}
		}

		monitoring.RecordHTTPRequest(r.Method, endpoint, strconv.Itoa(recorder.statusCode), duration.Seconds())

		requestID, _ := r.Context().Value(contextKeyRequestID).(string)
		s.logger.WithRequestID(requestID).WithFields(map[string]interface{}{
			"method":      r.Method,
			"path":        r.URL.Path,
			"remote_addr": r.RemoteAddr,
			"status_code": recorder.statusCode,
			"duration_ms": duration.Milliseconds(),
		}).Info("Request processed")
	})
}

// authMiddleware validates the bearer token and stores its claims in the
// request context.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			s.writeError(w, http.StatusUnauthorized, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			s.writeError(w, http.StatusUnauthorized, "invalid authorization header format")
			return
		}

		claims, err := s.tokens.Validate(parts[1])
		if err != nil {
			s.logger.WithError(err).Warn("Token validation failed")
			s.writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), contextKeyClaims, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole gates a subrouter to one role.
func (s *Server) requireRole(role types.UserRole) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := claimsFromContext(r.Context())
			if !ok {
				s.writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if claims.Role != string(role) {
				s.writeError(w, http.StatusForbidden, "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// responseRecorder captures the response status code for logging and metrics.
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}
