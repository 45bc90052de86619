package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/credibundl/cardstack/internal/server"
)

// Credentials configures the single operator account.
type Credentials struct {
	Username string
	Password string
	Secret   string
	TokenTTL time.Duration
}

// LoginRequest is the body for POST /api/v1/admin/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Handler serves operator authentication.
type Handler struct {
	creds  Credentials
	logger *zap.Logger
}

// NewHandler creates an auth handler.
func NewHandler(creds Credentials, logger *zap.Logger) *Handler {
	return &Handler{creds: creds, logger: logger}
}

// RegisterRoutes implements server.RouteRegistrar.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/admin/login", h.handleLogin)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		server.BadRequest(w, "invalid JSON body", r.URL.Path)
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.creds.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.creds.Password)) == 1
	if !userOK || !passOK {
		h.logger.Warn("admin login rejected", zap.String("username", req.Username))
		server.Unauthorized(w, "invalid credentials", r.URL.Path)
		return
	}

	ttl := h.creds.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	token, err := GenerateToken(h.creds.Secret, req.Username, RoleAdmin, ttl)
	if err != nil {
		h.logger.Error("failed to sign token", zap.Error(err))
		server.InternalError(w, "failed to issue token", r.URL.Path)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(ttl),
	})
}
