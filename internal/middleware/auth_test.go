package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdamera/agriadvisor-backend/internal/services"
)

func authFixtures(t *testing.T) (*services.TokenService, *services.UserService, string) {
	t.Helper()
	tokens := services.NewTokenService("test-secret")
	users := services.NewUserService(services.NewUserCache())

	user, _, err := users.Register(context.Background(), "A", "a@x.com", "secret1", "", "")
	require.NoError(t, err)
	token, err := tokens.Issue(user.Email)
	require.NoError(t, err)
	return tokens, users, token
}

func TestRequireAuth(t *testing.T) {
	tokens, users, token := authFixtures(t)

	var sawEmail string
	h := RequireAuth(tokens, users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawEmail = CurrentUser(r).Email
	}))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"case-insensitive scheme", "bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
	assert.Equal(t, "a@x.com", sawEmail)
}

func TestRequireAuthUnknownSubject(t *testing.T) {
	tokens, users, _ := authFixtures(t)

	// Valid signature, but the subject was never registered. Same generic
	// 401 as a bad token.
	ghost, err := tokens.Issue("ghost@x.com")
	require.NoError(t, err)

	h := RequireAuth(tokens, users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+ghost)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail":"Invalid token"}`, w.Body.String())
}

func TestOptionalAuth(t *testing.T) {
	tokens, users, token := authFixtures(t)

	h := OptionalAuth(tokens, users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if u := CurrentUser(r); u != nil {
			w.Write([]byte(u.Email))
			return
		}
		w.Write([]byte("anonymous"))
	}))

	// Anonymous request passes through.
	req := httptest.NewRequest(http.MethodPost, "/api/recommend/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "anonymous", w.Body.String())

	// Invalid token is ignored, not rejected.
	req = httptest.NewRequest(http.MethodPost, "/api/recommend/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())

	// Valid token attaches the identity.
	req = httptest.NewRequest(http.MethodPost, "/api/recommend/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "a@x.com", w.Body.String())
}
