package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateOrganization inserts org, assigning its ID and creation time
func (db *DB) CreateOrganization(ctx context.Context, org *Organization) error {
	if org.ID == uuid.Nil {
		org.ID = uuid.New()
	}
	err := db.pool.QueryRow(ctx,
		`INSERT INTO organizations (id, owner_id, name, description)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		org.ID, org.OwnerID, org.Name, org.Description,
	).Scan(&org.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create organization: %w", err)
	}
	return nil
}

// GetOrganization retrieves an organization by ID
func (db *DB) GetOrganization(ctx context.Context, id uuid.UUID) (*Organization, error) {
	var o Organization
	err := db.pool.QueryRow(ctx,
		`SELECT id, owner_id, name, description, created_at FROM organizations WHERE id = $1`,
		id,
	).Scan(&o.ID, &o.OwnerID, &o.Name, &o.Description, &o.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return &o, nil
}

// ListOrganizations returns the organizations owned by ownerID, newest first
func (db *DB) ListOrganizations(ctx context.Context, ownerID uuid.UUID) ([]Organization, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, owner_id, name, description, created_at
		 FROM organizations WHERE owner_id = $1 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	defer rows.Close()

	var orgs []Organization
	for rows.Next() {
		var o Organization
		if err := rows.Scan(&o.ID, &o.OwnerID, &o.Name, &o.Description, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		orgs = append(orgs, o)
	}
	return orgs, rows.Err()
}
