package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/meeting-mbti/internal/profile"
	"github.com/jonathan/meeting-mbti/internal/survey"
)

// User represents a registered account
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet  bool      `json:"password_set" db:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Organization groups rooms under one owner
type Organization struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Room is a meeting or icebreaking session
type Room struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty"`
	HostID         uuid.UUID  `json:"host_id"`
	Name           string     `json:"name"`
	MeetingType    string     `json:"meeting_type"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Participant is a member of a room. UserID is nil for seeded participants.
type Participant struct {
	ID          uuid.UUID  `json:"id"`
	RoomID      uuid.UUID  `json:"room_id"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	Name        string     `json:"name"`
	Style       string     `json:"style"`
	Description string     `json:"description"`
	JoinedAt    time.Time  `json:"joined_at"`
}

// Profile is the stored survey result of one owner (a user or a guest session)
type Profile struct {
	OwnerID   uuid.UUID           `json:"owner_id"`
	IsGuest   bool                `json:"is_guest"`
	TypeA     string              `json:"type_a"`
	TypeB     string              `json:"type_b"`
	Answers   survey.AnswerSet    `json:"answers"`
	Profile   profile.UserProfile `json:"profile"`
	UpdatedAt time.Time           `json:"updated_at"`
}
