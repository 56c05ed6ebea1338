package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sdamera/agriadvisor-backend/internal/models"
	"github.com/sdamera/agriadvisor-backend/internal/services"
)

type contextKey string

const (
	userContextKey  contextKey = "auth_user"
	tokenContextKey contextKey = "auth_token"
)

// CurrentUser returns the authenticated user placed on the context by
// RequireAuth or OptionalAuth, or nil.
func CurrentUser(r *http.Request) *models.User {
	u, _ := r.Context().Value(userContextKey).(*models.User)
	return u
}

// BearerToken returns the raw token string for the request, or "".
func BearerToken(r *http.Request) string {
	t, _ := r.Context().Value(tokenContextKey).(string)
	return t
}

func extractBearer(r *http.Request) string {
	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(auth) < 7 || !strings.EqualFold(auth[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(auth[7:])
}

// RequireAuth verifies the bearer token and resolves its subject to a user.
// Missing token, bad signature, expiry and unknown subject all collapse into
// the same 401 so the response can't leak which check failed.
func RequireAuth(tokens *services.TokenService, users *services.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := extractBearer(r)
			if raw == "" {
				unauthorized(w)
				return
			}
			subject, err := tokens.Verify(raw)
			if err != nil {
				unauthorized(w)
				return
			}
			user, err := users.Resolve(r.Context(), subject)
			if err != nil {
				unauthorized(w)
				return
			}
			ctx := context.WithValue(r.Context(), userContextKey, user)
			ctx = context.WithValue(ctx, tokenContextKey, raw)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth resolves the caller identity when a valid bearer token is
// present and otherwise lets the request through anonymously. Used by the
// recommendation route, which works either way.
func OptionalAuth(tokens *services.TokenService, users *services.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := extractBearer(r)
			if raw != "" {
				if subject, err := tokens.Verify(raw); err == nil {
					if user, err := users.Resolve(r.Context(), subject); err == nil {
						ctx := context.WithValue(r.Context(), userContextKey, user)
						ctx = context.WithValue(ctx, tokenContextKey, raw)
						r = r.WithContext(ctx)
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"detail":"Invalid token"}`))
}
