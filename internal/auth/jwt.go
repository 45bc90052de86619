// Package auth issues and validates the admin bearer tokens that guard
// lead exports and other operator-only endpoints.
package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/credibundl/cardstack/internal/server"
)

// RoleAdmin is the only role the API currently issues.
const RoleAdmin = "admin"

// Claims carries the subject and role of an issued token.
type Claims struct {
	Sub  string `json:"sub"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for the given subject and role.
func GenerateToken(secret, subject, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	c := Claims{
		Sub:  subject,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString([]byte(secret))
}

// ParseToken validates a signed token and returns its claims.
func ParseToken(secret, tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// RequireAdmin wraps a handler and rejects requests without a valid
// admin bearer token.
func RequireAdmin(secret string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			server.Unauthorized(w, "missing bearer token", r.URL.Path)
			return
		}

		claims, err := ParseToken(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			server.Unauthorized(w, "invalid token", r.URL.Path)
			return
		}
		if claims.Role != RoleAdmin {
			server.Unauthorized(w, "admin role required", r.URL.Path)
			return
		}

		next(w, r)
	}
}
