package types

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/jonathan/meeting-mbti/internal/feedback"
)

// SurveyRequest carries a raw answer set. Answers is kept raw so it can be
// checked against the answer-set JSON schema before decoding.
type SurveyRequest struct {
	Answers json.RawMessage `json:"answers" validate:"required"`
}

// Validate validates the SurveyRequest using the validator.
func (r *SurveyRequest) Validate() error {
	return validate.Struct(r)
}

// CreateOrganizationRequest creates an organization owned by the caller
type CreateOrganizationRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// Validate validates the CreateOrganizationRequest using the validator.
func (r *CreateOrganizationRequest) Validate() error {
	return validate.Struct(r)
}

// CreateRoomRequest creates a room hosted by the caller. MeetingType may be
// empty, in which case the default meeting type is used.
type CreateRoomRequest struct {
	Name           string     `json:"name" validate:"required,max=100"`
	MeetingType    string     `json:"meeting_type"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty"`
}

// Validate validates the CreateRoomRequest using the validator.
func (r *CreateRoomRequest) Validate() error {
	return validate.Struct(r)
}

// JoinRoomRequest optionally overrides the display name used in the room
type JoinRoomRequest struct {
	Name string `json:"name" validate:"max=100"`
}

// Validate validates the JoinRoomRequest using the validator.
func (r *JoinRoomRequest) Validate() error {
	return validate.Struct(r)
}

// CreateFeedbackRequest submits feedback about another participant.
// Field rules beyond presence are enforced by the feedback package.
type CreateFeedbackRequest struct {
	MeetingName  string             `json:"meetingName" validate:"required"`
	TargetUser   uuid.UUID          `json:"targetUser" validate:"required"`
	Responses    feedback.Responses `json:"responses"`
	Strengths    []string           `json:"strengths"`
	Improvements []string           `json:"improvements"`
	Comment      string             `json:"comment"`
}

// Validate validates the CreateFeedbackRequest using the validator.
func (r *CreateFeedbackRequest) Validate() error {
	return validate.Struct(r)
}

// VisibilityRequest toggles whether a feedback row is publicly visible
type VisibilityRequest struct {
	IsVisible *bool `json:"isVisible" validate:"required"`
}

// Validate validates the VisibilityRequest using the validator.
func (r *VisibilityRequest) Validate() error {
	return validate.Struct(r)
}
