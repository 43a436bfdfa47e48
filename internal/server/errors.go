// Package server provides the HTTP REST API for meeting-style profiles, rooms and feedback.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/meeting-mbti/internal/db"
	"github.com/jonathan/meeting-mbti/internal/feedback"
	"github.com/jonathan/meeting-mbti/internal/icebreak"
	"github.com/jonathan/meeting-mbti/internal/meeting"
	"github.com/jonathan/meeting-mbti/internal/schemas"
	"github.com/jonathan/meeting-mbti/internal/survey"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrPasswordMismatch indicates current password is incorrect
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates a resource other than a user was not found
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrForbidden indicates the caller may not act on the resource
type ErrForbidden struct {
	Reason string
}

func (e *ErrForbidden) Error() string {
	return "forbidden: " + e.Reason
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Wrapped errors are unwrapped.
func HTTPStatus(err error) int {
	var (
		emailExists  *ErrEmailAlreadyExists
		invalidCreds *ErrInvalidCredentials
		mismatch     *ErrPasswordMismatch
		userNotFound *ErrUserNotFound
		notFound     *ErrNotFound
		forbidden    *ErrForbidden
		validation   *ErrValidation
		answers      *survey.ValidationError
		schema       *schemas.ValidationError
	)

	switch {
	case errors.As(err, &emailExists):
		return http.StatusConflict
	case errors.As(err, &invalidCreds), errors.As(err, &mismatch):
		return http.StatusUnauthorized
	case errors.As(err, &userNotFound), errors.As(err, &notFound), errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &validation), errors.As(err, &answers), errors.As(err, &schema),
		errors.Is(err, meeting.ErrUnknownMeetingType),
		errors.Is(err, feedback.ErrInvalid), errors.Is(err, feedback.ErrSelfFeedback),
		errors.Is(err, icebreak.ErrInvalidTeamSize):
		return http.StatusBadRequest
	case errors.Is(err, meeting.ErrNoParticipants), errors.Is(err, meeting.ErrNoRespondents):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
