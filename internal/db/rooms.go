package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateRoom inserts room, assigning its ID and creation time
func (db *DB) CreateRoom(ctx context.Context, room *Room) error {
	if room.ID == uuid.Nil {
		room.ID = uuid.New()
	}
	err := db.pool.QueryRow(ctx,
		`INSERT INTO rooms (id, organization_id, host_id, name, meeting_type)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		room.ID, room.OrganizationID, room.HostID, room.Name, room.MeetingType,
	).Scan(&room.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// GetRoom retrieves a room by ID
func (db *DB) GetRoom(ctx context.Context, id uuid.UUID) (*Room, error) {
	var r Room
	err := db.pool.QueryRow(ctx,
		`SELECT id, organization_id, host_id, name, meeting_type, created_at FROM rooms WHERE id = $1`,
		id,
	).Scan(&r.ID, &r.OrganizationID, &r.HostID, &r.Name, &r.MeetingType, &r.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	return &r, nil
}

// ListRooms retrieves rooms with optional filters, newest first
func (db *DB) ListRooms(ctx context.Context, filters RoomFilters) ([]Room, error) {
	if filters.Limit == 0 {
		filters.Limit = defaultRoomLimit
	}

	query := `SELECT id, organization_id, host_id, name, meeting_type, created_at
		FROM rooms WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.HostID != uuid.Nil {
		query += fmt.Sprintf(" AND host_id = $%d", argNum)
		args = append(args, filters.HostID)
		argNum++
	}
	if filters.OrganizationID != uuid.Nil {
		query += fmt.Sprintf(" AND organization_id = $%d", argNum)
		args = append(args, filters.OrganizationID)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []Room
	for rows.Next() {
		var r Room
		if err := rows.Scan(&r.ID, &r.OrganizationID, &r.HostID, &r.Name, &r.MeetingType, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, r)
	}
	return rooms, rows.Err()
}

// DeleteRoom deletes a room and its participants (via cascade)
func (db *DB) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s: %w", id, ErrNotFound)
	}
	return nil
}

// AddParticipant adds p to its room. A user who joins again has their
// name and style refreshed instead of being added twice.
func (db *DB) AddParticipant(ctx context.Context, p *Participant) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	err := db.pool.QueryRow(ctx,
		`INSERT INTO room_participants (id, room_id, user_id, name, style, description)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (room_id, user_id) DO UPDATE
		 SET name = EXCLUDED.name, style = EXCLUDED.style, description = EXCLUDED.description
		 RETURNING id, joined_at`,
		p.ID, p.RoomID, p.UserID, p.Name, p.Style, p.Description,
	).Scan(&p.ID, &p.JoinedAt)
	if err != nil {
		return fmt.Errorf("failed to add participant: %w", err)
	}
	return nil
}

// ListParticipants returns a room's participants in join order
func (db *DB) ListParticipants(ctx context.Context, roomID uuid.UUID) ([]Participant, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, room_id, user_id, name, style, description, joined_at
		 FROM room_participants WHERE room_id = $1 ORDER BY seq`,
		roomID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var ps []Participant
	for rows.Next() {
		var p Participant
		if err := rows.Scan(&p.ID, &p.RoomID, &p.UserID, &p.Name, &p.Style, &p.Description, &p.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		ps = append(ps, p)
	}
	return ps, rows.Err()
}
