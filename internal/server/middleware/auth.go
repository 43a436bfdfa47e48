// Package middleware provides HTTP middleware for authentication and authorization.
package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

const (
	userIDKey ContextKey = "userID"
	guestKey  ContextKey = "guest"
)

// TokenValidator is an interface for validating JWT tokens.
// This allows the middleware to work with any JWT service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (Principal, error)
}

// Principal is the identity carried by a validated token. Guests have an ID
// of their own but no account behind it.
type Principal interface {
	GetUserID() uuid.UUID
	IsGuest() bool
}

func unauthorized(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// AuthMiddleware creates middleware that validates bearer tokens and adds the
// caller's ID and guest flag to the request context.
func AuthMiddleware(jwtService TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			// Handle case-insensitive "Bearer" prefix
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				unauthorized(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			claims, err := jwtService.ValidateToken(parts[1])
			if err != nil {
				unauthorized(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.GetUserID())
			ctx = context.WithValue(ctx, guestKey, claims.IsGuest())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser rejects guest sessions. It must run after AuthMiddleware.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IsGuest(r) {
			unauthorized(w, http.StatusForbidden, "a registered account is required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID extracts the authenticated caller ID from the request context.
func GetUserID(r *http.Request) (uuid.UUID, error) {
	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("user ID not found in request context")
	}
	return userID, nil
}

// IsGuest reports whether the caller authenticated with a guest token
func IsGuest(r *http.Request) bool {
	guest, _ := r.Context().Value(guestKey).(bool)
	return guest
}

// WithPrincipal returns ctx carrying the given identity, as AuthMiddleware would.
func WithPrincipal(ctx context.Context, userID uuid.UUID, guest bool) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, guestKey, guest)
}
