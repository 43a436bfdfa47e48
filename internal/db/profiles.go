package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// SaveProfile writes the whole profile for its owner, replacing any previous one
func (db *DB) SaveProfile(ctx context.Context, p *Profile) error {
	answers, err := json.Marshal(p.Answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}
	body, err := json.Marshal(p.Profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO profiles (owner_id, is_guest, type_a, type_b, answers, profile)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (owner_id) DO UPDATE
		 SET is_guest = $2, type_a = $3, type_b = $4, answers = $5, profile = $6, updated_at = NOW()
		 RETURNING updated_at`,
		p.OwnerID, p.IsGuest, p.TypeA, p.TypeB, answers, body,
	).Scan(&p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// GetProfile retrieves the profile of ownerID
func (db *DB) GetProfile(ctx context.Context, ownerID uuid.UUID) (*Profile, error) {
	var p Profile
	var answers, body []byte
	err := db.pool.QueryRow(ctx,
		`SELECT owner_id, is_guest, type_a, type_b, answers, profile, updated_at
		 FROM profiles WHERE owner_id = $1`,
		ownerID,
	).Scan(&p.OwnerID, &p.IsGuest, &p.TypeA, &p.TypeB, &answers, &body, &p.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if err := decodeProfile(&p, answers, body); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProfiles retrieves the profiles of every owner in ownerIDs that has one
func (db *DB) ListProfiles(ctx context.Context, ownerIDs []uuid.UUID) ([]Profile, error) {
	if len(ownerIDs) == 0 {
		return nil, nil
	}
	rows, err := db.pool.Query(ctx,
		`SELECT owner_id, is_guest, type_a, type_b, answers, profile, updated_at
		 FROM profiles WHERE owner_id = ANY($1)`,
		ownerIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var out []Profile
	for rows.Next() {
		var p Profile
		var answers, body []byte
		if err := rows.Scan(&p.OwnerID, &p.IsGuest, &p.TypeA, &p.TypeB, &answers, &body, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		if err := decodeProfile(&p, answers, body); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func decodeProfile(p *Profile, answers, body []byte) error {
	if err := json.Unmarshal(answers, &p.Answers); err != nil {
		return fmt.Errorf("failed to decode answers: %w", err)
	}
	if err := json.Unmarshal(body, &p.Profile); err != nil {
		return fmt.Errorf("failed to decode profile: %w", err)
	}
	return nil
}
