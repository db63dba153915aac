package handlers

import (
	"context"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"velocilector/internal/security"
	"velocilector/internal/service"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const AdminContextKey ContextKey = "adminID"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	authService  *service.AuthService
	loginLimiter *security.RateLimiter
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(authService *service.AuthService, loginLimiter *security.RateLimiter) *Middleware {
	return &Middleware{
		authService:  authService,
		loginLimiter: loginLimiter,
	}
}

// RequireAdmin rejects requests without a valid bearer token. The 401
// body is always {"error": "Unauthorized"}.
func (m *Middleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			respondUnauthorized(w)
			return
		}

		adminID, err := m.authService.ValidateToken(token)
		if err != nil {
			respondUnauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), AdminContextKey, adminID)
		next(w, r.WithContext(ctx))
	}
}

// RateLimit throttles credential endpoints per client IP
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !m.loginLimiter.Allow(clientIP(r)) {
			respondWithError(w, http.StatusTooManyRequests, "too many attempts, try again later")
			return
		}
		next(w, r)
	}
}

// Logging logs method, path and duration for every request
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// GetAdminFromContext returns the authenticated admin ID, or 0
func GetAdminFromContext(ctx context.Context) int64 {
	if id, ok := ctx.Value(AdminContextKey).(int64); ok {
		return id
	}
	return 0
}

// bearerToken extracts the token from the Authorization header
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// clientIP returns the request's client address without the port
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
