package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sdamera/agriadvisor-backend/internal/middleware"
	"github.com/sdamera/agriadvisor-backend/internal/services"
)

var (
	userService  *services.UserService
	tokenService *services.TokenService
)

// InitAuthHandlers wires the credential and token services built in main.
func InitAuthHandlers(users *services.UserService, tokens *services.TokenService) {
	userService = users
	tokenService = tokens
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register handles POST /api/auth/register
func Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "'name' is required")
		return
	}
	if !strings.Contains(req.Email, "@") {
		writeDetail(w, http.StatusUnprocessableEntity, "'email' must be a valid email address")
		return
	}
	if len(req.Password) < 6 {
		writeDetail(w, http.StatusUnprocessableEntity, "'password' must be at least 6 characters")
		return
	}

	user, _, err := userService.Register(r.Context(), req.Name, req.Email, req.Password, req.Phone, req.Location)
	if errors.Is(err, services.ErrEmailTaken) {
		writeDetail(w, http.StatusBadRequest, "Email already registered")
		return
	}
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	token, err := tokenService.Issue(user.Email)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	writeJSON(w, http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Login handles POST /api/auth/login
func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "'email' and 'password' are required")
		return
	}

	user, err := userService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password look identical on purpose.
		writeDetail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := tokenService.Issue(user.Email)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	writeJSON(w, http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me handles GET /api/me (requires auth)
func Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r)
	if user == nil {
		writeDetail(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":     user.Name,
		"email":    user.Email,
		"phone":    user.Phone,
		"location": user.Location,
	})
}

// SecureTest handles GET /api/secure-test (requires auth)
func SecureTest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "You are authorized!",
		"token":   middleware.BearerToken(r),
	})
}
