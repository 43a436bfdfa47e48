package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/meeting-mbti/internal/server/middleware"
	"github.com/jonathan/meeting-mbti/internal/types"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	userService *UserService
	jwtService  *JWTService
	logger      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userService *UserService, jwtService *JWTService, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
		logger:      logger,
	}
}

func (h *AuthHandler) respond(w http.ResponseWriter, status int, data any) {
	if err := writeJSON(w, status, data); err != nil {
		h.logger.Warn("error encoding JSON response", zap.Error(err))
	}
}

func (h *AuthHandler) fail(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.Error("auth request failed", zap.Error(err))
		message = "internal server error"
	}
	h.respond(w, status, map[string]string{"error": message})
}

// Register handles user registration requests.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.fail(w, validationError(err))
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		h.fail(w, err)
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID)
	if err != nil {
		h.fail(w, fmt.Errorf("failed to generate token: %w", err))
		return
	}

	h.logger.Info("user registered", zap.String("user_id", user.ID.String()))
	h.respond(w, http.StatusCreated, types.LoginResponse{User: user, Token: token})
}

// Login handles user login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.fail(w, validationError(err))
		return
	}

	user, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		h.fail(w, err)
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID)
	if err != nil {
		h.fail(w, fmt.Errorf("failed to generate token: %w", err))
		return
	}

	h.respond(w, http.StatusOK, types.LoginResponse{User: user, Token: token})
}

// Guest starts an anonymous session. The returned ID owns any profile or
// feedback created with the token.
func (h *AuthHandler) Guest(w http.ResponseWriter, r *http.Request) {
	id, token, expiresAt, err := h.jwtService.GenerateGuestToken()
	if err != nil {
		h.fail(w, fmt.Errorf("failed to generate token: %w", err))
		return
	}
	h.respond(w, http.StatusCreated, types.GuestResponse{GuestID: id, Token: token, ExpiresAt: expiresAt})
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		h.respond(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, user)
}

// UpdatePassword changes the authenticated user's password.
func (h *AuthHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		h.respond(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	var req types.UpdatePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.fail(w, validationError(err))
		return
	}

	if err := h.userService.UpdatePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		h.fail(w, err)
		return
	}

	h.respond(w, http.StatusOK, map[string]string{"message": "Password updated successfully"})
}

// validationError converts the first validator failure into an ErrValidation.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &ErrValidation{Field: verrs[0].Field(), Message: verrs[0].Tag()}
	}
	return &ErrValidation{Field: "body", Message: "invalid request"}
}
