package db

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/meeting-mbti/internal/feedback"
)

// Store is the persistence contract shared by the PostgreSQL and SQLite backends.
// Lookups return nil and no error when the record does not exist.
type Store interface {
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error

	CreateUser(ctx context.Context, name, email string) (uuid.UUID, error)
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	DeleteUser(ctx context.Context, id uuid.UUID) error

	CreateOrganization(ctx context.Context, org *Organization) error
	GetOrganization(ctx context.Context, id uuid.UUID) (*Organization, error)
	ListOrganizations(ctx context.Context, ownerID uuid.UUID) ([]Organization, error)

	CreateRoom(ctx context.Context, room *Room) error
	GetRoom(ctx context.Context, id uuid.UUID) (*Room, error)
	ListRooms(ctx context.Context, filters RoomFilters) ([]Room, error)
	DeleteRoom(ctx context.Context, id uuid.UUID) error
	AddParticipant(ctx context.Context, p *Participant) error
	ListParticipants(ctx context.Context, roomID uuid.UUID) ([]Participant, error)

	SaveProfile(ctx context.Context, p *Profile) error
	GetProfile(ctx context.Context, ownerID uuid.UUID) (*Profile, error)
	ListProfiles(ctx context.Context, ownerIDs []uuid.UUID) ([]Profile, error)

	CreateFeedback(ctx context.Context, f *feedback.MeetingFeedback) error
	GetFeedback(ctx context.Context, id uuid.UUID) (*feedback.MeetingFeedback, error)
	ListFeedbackForTarget(ctx context.Context, targetUser uuid.UUID) ([]feedback.MeetingFeedback, error)
	SetFeedbackVisibility(ctx context.Context, id, targetUser uuid.UUID, visible bool) (bool, error)

	Close() error
}

// RoomFilters holds optional filters for listing rooms
type RoomFilters struct {
	HostID         uuid.UUID
	OrganizationID uuid.UUID
	Limit          int
}

const defaultRoomLimit = 50

var (
	_ Store = (*DB)(nil)
	_ Store = (*SQLiteDB)(nil)
)
