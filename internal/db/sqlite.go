package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/jonathan/meeting-mbti/internal/feedback"
)

// SQLiteDB is the embedded single-file backend used for local runs and tests
type SQLiteDB struct {
	db *sql.DB
}

// Fixed width so that TEXT ordering matches time ordering.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// OpenSQLite opens (creating if needed) the database at path. Use ":memory:"
// for a private in-memory database.
func OpenSQLite(ctx context.Context, path string) (*SQLiteDB, error) {
	dsn := path
	if path != ":memory:" {
		dsn = "file:" + path
	}
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// One connection keeps ":memory:" databases shared and serialises writers.
	conn.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := conn.ExecContext(ctx, p); err != nil {
			conn.Close()
			return nil, fmt.Errorf("sqlite pragma %q: %w", p, err)
		}
	}
	return &SQLiteDB{db: conn}, nil
}

// Close closes the database
func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

// Ping verifies the database is reachable
func (s *SQLiteDB) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL DEFAULT '',
	password_set  INTEGER NOT NULL DEFAULT 0,
	created_at    TEXT NOT NULL,
	updated_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS organizations (
	id          TEXT PRIMARY KEY,
	owner_id    TEXT NOT NULL,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_organizations_owner ON organizations(owner_id);

CREATE TABLE IF NOT EXISTS rooms (
	id              TEXT PRIMARY KEY,
	organization_id TEXT REFERENCES organizations(id) ON DELETE SET NULL,
	host_id         TEXT NOT NULL,
	name            TEXT NOT NULL,
	meeting_type    TEXT NOT NULL,
	created_at      TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_rooms_host ON rooms(host_id);
CREATE INDEX IF NOT EXISTS idx_rooms_organization ON rooms(organization_id);

CREATE TABLE IF NOT EXISTS room_participants (
	id          TEXT PRIMARY KEY,
	room_id     TEXT NOT NULL REFERENCES rooms(id) ON DELETE CASCADE,
	user_id     TEXT,
	name        TEXT NOT NULL,
	style       TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	joined_at   TEXT NOT NULL,
	UNIQUE (room_id, user_id)
);

CREATE TABLE IF NOT EXISTS profiles (
	owner_id   TEXT PRIMARY KEY,
	is_guest   INTEGER NOT NULL DEFAULT 0,
	type_a     TEXT NOT NULL,
	type_b     TEXT NOT NULL,
	answers    TEXT NOT NULL,
	profile    TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS meeting_feedback (
	id           TEXT PRIMARY KEY,
	meeting_name TEXT NOT NULL,
	from_user    TEXT NOT NULL,
	target_user  TEXT NOT NULL,
	responses    TEXT NOT NULL,
	strengths    TEXT NOT NULL DEFAULT '[]',
	improvements TEXT NOT NULL DEFAULT '[]',
	comment      TEXT NOT NULL DEFAULT '',
	created_at   TEXT NOT NULL,
	is_visible   INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS idx_meeting_feedback_target ON meeting_feedback(target_user, created_at);
`

// Migrate creates the schema if it does not exist
func (s *SQLiteDB) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

func now() string {
	return time.Now().UTC().Format(sqliteTimeLayout)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(sqliteTimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp %q: %w", s, err)
	}
	return t, nil
}

func nullableUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func fromNullUUID(n uuid.NullUUID) *uuid.UUID {
	if !n.Valid {
		return nil
	}
	id := n.UUID
	return &id
}

// ---- users ----

// CreateUser inserts a user without a password and returns its ID
func (s *SQLiteDB) CreateUser(ctx context.Context, name, email string) (uuid.UUID, error) {
	id := uuid.New()
	ts := now()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id, name, normalizeEmail(email), ts, ts,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

func (s *SQLiteDB) scanUser(row *sql.Row) (*User, error) {
	var u User
	var created, updated string
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.PasswordSet, &created, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if u.CreatedAt, err = parseTime(created); err != nil {
		return nil, err
	}
	if u.UpdatedAt, err = parseTime(updated); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUser retrieves a user by ID
func (s *SQLiteDB) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := s.scanUser(s.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, password_set, created_at, updated_at FROM users WHERE id = ?`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// GetUserByEmail retrieves a user by email, case-insensitively
func (s *SQLiteDB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	u, err := s.scanUser(s.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, password_set, created_at, updated_at FROM users WHERE email = ?`,
		normalizeEmail(email)))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

// CheckEmailExists reports whether an account already uses email
func (s *SQLiteDB) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`, normalizeEmail(email),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

// UpdatePassword stores a new password hash and marks the password as set
func (s *SQLiteDB) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, password_set = 1, updated_at = ? WHERE id = ?`,
		passwordHash, now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return requireAffected(result, "user", id)
}

// DeleteUser removes a user
func (s *SQLiteDB) DeleteUser(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return requireAffected(result, "user", id)
}

func requireAffected(result sql.Result, kind string, id uuid.UUID) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
	}
	return nil
}

// ---- organizations ----

// CreateOrganization inserts org, assigning its ID and creation time
func (s *SQLiteDB) CreateOrganization(ctx context.Context, org *Organization) error {
	if org.ID == uuid.Nil {
		org.ID = uuid.New()
	}
	org.CreatedAt = time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO organizations (id, owner_id, name, description, created_at) VALUES (?, ?, ?, ?, ?)`,
		org.ID, org.OwnerID, org.Name, org.Description, formatTime(org.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create organization: %w", err)
	}
	return nil
}

// GetOrganization retrieves an organization by ID
func (s *SQLiteDB) GetOrganization(ctx context.Context, id uuid.UUID) (*Organization, error) {
	var o Organization
	var created string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, owner_id, name, description, created_at FROM organizations WHERE id = ?`, id,
	).Scan(&o.ID, &o.OwnerID, &o.Name, &o.Description, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	if o.CreatedAt, err = parseTime(created); err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOrganizations returns the organizations owned by ownerID, newest first
func (s *SQLiteDB) ListOrganizations(ctx context.Context, ownerID uuid.UUID) ([]Organization, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, owner_id, name, description, created_at
		 FROM organizations WHERE owner_id = ? ORDER BY created_at DESC, rowid DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	defer rows.Close()

	var orgs []Organization
	for rows.Next() {
		var o Organization
		var created string
		if err := rows.Scan(&o.ID, &o.OwnerID, &o.Name, &o.Description, &created); err != nil {
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		if o.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		orgs = append(orgs, o)
	}
	return orgs, rows.Err()
}

// ---- rooms ----

// CreateRoom inserts room, assigning its ID and creation time
func (s *SQLiteDB) CreateRoom(ctx context.Context, room *Room) error {
	if room.ID == uuid.Nil {
		room.ID = uuid.New()
	}
	room.CreatedAt = time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rooms (id, organization_id, host_id, name, meeting_type, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		room.ID, nullableUUID(room.OrganizationID), room.HostID, room.Name, room.MeetingType, formatTime(room.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoom(row rowScanner) (*Room, error) {
	var r Room
	var org uuid.NullUUID
	var created string
	if err := row.Scan(&r.ID, &org, &r.HostID, &r.Name, &r.MeetingType, &created); err != nil {
		return nil, err
	}
	r.OrganizationID = fromNullUUID(org)
	var err error
	if r.CreatedAt, err = parseTime(created); err != nil {
		return nil, err
	}
	return &r, nil
}

// GetRoom retrieves a room by ID
func (s *SQLiteDB) GetRoom(ctx context.Context, id uuid.UUID) (*Room, error) {
	r, err := scanRoom(s.db.QueryRowContext(ctx,
		`SELECT id, organization_id, host_id, name, meeting_type, created_at FROM rooms WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	return r, nil
}

// ListRooms retrieves rooms with optional filters, newest first
func (s *SQLiteDB) ListRooms(ctx context.Context, filters RoomFilters) ([]Room, error) {
	if filters.Limit == 0 {
		filters.Limit = defaultRoomLimit
	}

	var where []string
	var args []any
	if filters.HostID != uuid.Nil {
		where = append(where, "host_id = ?")
		args = append(args, filters.HostID)
	}
	if filters.OrganizationID != uuid.Nil {
		where = append(where, "organization_id = ?")
		args = append(args, filters.OrganizationID)
	}

	query := `SELECT id, organization_id, host_id, name, meeting_type, created_at FROM rooms`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, rowid DESC LIMIT ?"
	args = append(args, filters.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []Room
	for rows.Next() {
		r, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, *r)
	}
	return rooms, rows.Err()
}

// DeleteRoom deletes a room and its participants
func (s *SQLiteDB) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM room_participants WHERE room_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete participants: %w", err)
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	if err := requireAffected(result, "room", id); err != nil {
		return err
	}
	return tx.Commit()
}

// AddParticipant adds p to its room. A user who joins again has their
// name and style refreshed instead of being added twice.
func (s *SQLiteDB) AddParticipant(ctx context.Context, p *Participant) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	var joined string
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO room_participants (id, room_id, user_id, name, style, description, joined_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (room_id, user_id) DO UPDATE
		 SET name = excluded.name, style = excluded.style, description = excluded.description
		 RETURNING id, joined_at`,
		p.ID, p.RoomID, nullableUUID(p.UserID), p.Name, p.Style, p.Description, now(),
	).Scan(&p.ID, &joined)
	if err != nil {
		return fmt.Errorf("failed to add participant: %w", err)
	}
	if p.JoinedAt, err = parseTime(joined); err != nil {
		return err
	}
	return nil
}

// ListParticipants returns a room's participants in join order
func (s *SQLiteDB) ListParticipants(ctx context.Context, roomID uuid.UUID) ([]Participant, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, room_id, user_id, name, style, description, joined_at
		 FROM room_participants WHERE room_id = ? ORDER BY rowid`, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var ps []Participant
	for rows.Next() {
		var p Participant
		var user uuid.NullUUID
		var joined string
		if err := rows.Scan(&p.ID, &p.RoomID, &user, &p.Name, &p.Style, &p.Description, &joined); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		p.UserID = fromNullUUID(user)
		if p.JoinedAt, err = parseTime(joined); err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	return ps, rows.Err()
}

// ---- profiles ----

// SaveProfile writes the whole profile for its owner, replacing any previous one
func (s *SQLiteDB) SaveProfile(ctx context.Context, p *Profile) error {
	answers, err := json.Marshal(p.Answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}
	body, err := json.Marshal(p.Profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	p.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO profiles (owner_id, is_guest, type_a, type_b, answers, profile, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (owner_id) DO UPDATE
		 SET is_guest = excluded.is_guest, type_a = excluded.type_a, type_b = excluded.type_b,
		     answers = excluded.answers, profile = excluded.profile, updated_at = excluded.updated_at`,
		p.OwnerID, p.IsGuest, p.TypeA, p.TypeB, string(answers), string(body), formatTime(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

func scanProfile(row rowScanner) (*Profile, error) {
	var p Profile
	var answers, body, updated string
	if err := row.Scan(&p.OwnerID, &p.IsGuest, &p.TypeA, &p.TypeB, &answers, &body, &updated); err != nil {
		return nil, err
	}
	if err := decodeProfile(&p, []byte(answers), []byte(body)); err != nil {
		return nil, err
	}
	var err error
	if p.UpdatedAt, err = parseTime(updated); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProfile retrieves the profile of ownerID
func (s *SQLiteDB) GetProfile(ctx context.Context, ownerID uuid.UUID) (*Profile, error) {
	p, err := scanProfile(s.db.QueryRowContext(ctx,
		`SELECT owner_id, is_guest, type_a, type_b, answers, profile, updated_at FROM profiles WHERE owner_id = ?`,
		ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// ListProfiles retrieves the profiles of every owner in ownerIDs that has one
func (s *SQLiteDB) ListProfiles(ctx context.Context, ownerIDs []uuid.UUID) ([]Profile, error) {
	if len(ownerIDs) == 0 {
		return nil, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ownerIDs)), ",")
	args := make([]any, len(ownerIDs))
	for i, id := range ownerIDs {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT owner_id, is_guest, type_a, type_b, answers, profile, updated_at
		 FROM profiles WHERE owner_id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var out []Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// ---- feedback ----

// CreateFeedback inserts a feedback row
func (s *SQLiteDB) CreateFeedback(ctx context.Context, f *feedback.MeetingFeedback) error {
	cols, err := encodeFeedback(f)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO meeting_feedback
		 (id, meeting_name, from_user, target_user, responses, strengths, improvements, comment, created_at, is_visible)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.ID, f.MeetingName, f.FromUser, f.TargetUser,
		string(cols.responses), string(cols.strengths), string(cols.improvements),
		f.Comment, formatTime(f.Date), f.IsVisible,
	)
	if err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

func scanFeedback(row rowScanner) (*feedback.MeetingFeedback, error) {
	var f feedback.MeetingFeedback
	var responses, strengths, improvements, created string
	if err := row.Scan(&f.ID, &f.MeetingName, &f.FromUser, &f.TargetUser,
		&responses, &strengths, &improvements, &f.Comment, &created, &f.IsVisible); err != nil {
		return nil, err
	}
	cols := feedbackColumns{
		responses:    []byte(responses),
		strengths:    []byte(strengths),
		improvements: []byte(improvements),
	}
	if err := cols.decode(&f); err != nil {
		return nil, err
	}
	var err error
	if f.Date, err = parseTime(created); err != nil {
		return nil, err
	}
	return &f, nil
}

// GetFeedback retrieves a feedback row by ID
func (s *SQLiteDB) GetFeedback(ctx context.Context, id uuid.UUID) (*feedback.MeetingFeedback, error) {
	f, err := scanFeedback(s.db.QueryRowContext(ctx, feedbackSelect+` WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}
	return f, nil
}

// ListFeedbackForTarget returns every feedback row about targetUser, oldest first
func (s *SQLiteDB) ListFeedbackForTarget(ctx context.Context, targetUser uuid.UUID) ([]feedback.MeetingFeedback, error) {
	rows, err := s.db.QueryContext(ctx, feedbackSelect+` WHERE target_user = ? ORDER BY created_at, rowid`, targetUser)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer rows.Close()

	var out []feedback.MeetingFeedback
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		out = append(out, *f)
	}
	return out, rows.Err()
}

// SetFeedbackVisibility changes visibility of a row addressed to targetUser.
// It reports false when no such row exists.
func (s *SQLiteDB) SetFeedbackVisibility(ctx context.Context, id, targetUser uuid.UUID, visible bool) (bool, error) {
	result, err := s.db.ExecContext(ctx,
		`UPDATE meeting_feedback SET is_visible = ? WHERE id = ? AND target_user = ?`,
		visible, id, targetUser,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update feedback visibility: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}
