// Package db provides persistence for users, organizations, rooms, profiles
// and feedback on PostgreSQL (pgx) or an embedded SQLite database.
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() error {
	if db.pool != nil {
		db.pool.Close()
	}
	return nil
}

// Ping verifies the database is reachable
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL DEFAULT '',
	password_set  BOOLEAN NOT NULL DEFAULT FALSE,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS organizations (
	id          UUID PRIMARY KEY,
	owner_id    UUID NOT NULL,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_organizations_owner ON organizations(owner_id);

CREATE TABLE IF NOT EXISTS rooms (
	id              UUID PRIMARY KEY,
	organization_id UUID REFERENCES organizations(id) ON DELETE SET NULL,
	host_id         UUID NOT NULL,
	name            TEXT NOT NULL,
	meeting_type    TEXT NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_rooms_host ON rooms(host_id);
CREATE INDEX IF NOT EXISTS idx_rooms_organization ON rooms(organization_id);

CREATE TABLE IF NOT EXISTS room_participants (
	id          UUID PRIMARY KEY,
	seq         BIGSERIAL,
	room_id     UUID NOT NULL REFERENCES rooms(id) ON DELETE CASCADE,
	user_id     UUID,
	name        TEXT NOT NULL,
	style       TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	joined_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (room_id, user_id)
);

CREATE TABLE IF NOT EXISTS profiles (
	owner_id   UUID PRIMARY KEY,
	is_guest   BOOLEAN NOT NULL DEFAULT FALSE,
	type_a     TEXT NOT NULL,
	type_b     TEXT NOT NULL,
	answers    JSONB NOT NULL,
	profile    JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS meeting_feedback (
	id           UUID PRIMARY KEY,
	meeting_name TEXT NOT NULL,
	from_user    UUID NOT NULL,
	target_user  UUID NOT NULL,
	responses    JSONB NOT NULL,
	strengths    JSONB NOT NULL DEFAULT '[]',
	improvements JSONB NOT NULL DEFAULT '[]',
	comment      TEXT NOT NULL DEFAULT '',
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	is_visible   BOOLEAN NOT NULL DEFAULT TRUE
);
CREATE INDEX IF NOT EXISTS idx_meeting_feedback_target ON meeting_feedback(target_user, created_at);
`

// Migrate creates the schema if it does not exist
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// ErrNotFound is returned by updates and deletes that match no row
var ErrNotFound = errors.New("record not found")

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
