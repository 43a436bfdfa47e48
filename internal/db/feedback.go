package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/meeting-mbti/internal/feedback"
)

type feedbackColumns struct {
	responses    []byte
	strengths    []byte
	improvements []byte
}

func encodeFeedback(f *feedback.MeetingFeedback) (feedbackColumns, error) {
	var c feedbackColumns
	var err error
	if c.responses, err = json.Marshal(f.Responses); err != nil {
		return c, fmt.Errorf("failed to marshal responses: %w", err)
	}
	if c.strengths, err = json.Marshal(nonNil(f.Strengths)); err != nil {
		return c, fmt.Errorf("failed to marshal strengths: %w", err)
	}
	if c.improvements, err = json.Marshal(nonNil(f.Improvements)); err != nil {
		return c, fmt.Errorf("failed to marshal improvements: %w", err)
	}
	return c, nil
}

func (c feedbackColumns) decode(f *feedback.MeetingFeedback) error {
	if err := json.Unmarshal(c.responses, &f.Responses); err != nil {
		return fmt.Errorf("failed to decode responses: %w", err)
	}
	if err := json.Unmarshal(c.strengths, &f.Strengths); err != nil {
		return fmt.Errorf("failed to decode strengths: %w", err)
	}
	if err := json.Unmarshal(c.improvements, &f.Improvements); err != nil {
		return fmt.Errorf("failed to decode improvements: %w", err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// CreateFeedback inserts a feedback row. Rows are never updated afterwards
// except for their visibility.
func (db *DB) CreateFeedback(ctx context.Context, f *feedback.MeetingFeedback) error {
	cols, err := encodeFeedback(f)
	if err != nil {
		return err
	}
	_, err = db.pool.Exec(ctx,
		`INSERT INTO meeting_feedback
		 (id, meeting_name, from_user, target_user, responses, strengths, improvements, comment, created_at, is_visible)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		f.ID, f.MeetingName, f.FromUser, f.TargetUser, cols.responses, cols.strengths, cols.improvements,
		f.Comment, f.Date, f.IsVisible,
	)
	if err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

const feedbackSelect = `SELECT id, meeting_name, from_user, target_user, responses, strengths, improvements,
	comment, created_at, is_visible FROM meeting_feedback`

// GetFeedback retrieves a feedback row by ID
func (db *DB) GetFeedback(ctx context.Context, id uuid.UUID) (*feedback.MeetingFeedback, error) {
	var f feedback.MeetingFeedback
	var cols feedbackColumns
	err := db.pool.QueryRow(ctx, feedbackSelect+` WHERE id = $1`, id).Scan(
		&f.ID, &f.MeetingName, &f.FromUser, &f.TargetUser, &cols.responses, &cols.strengths, &cols.improvements,
		&f.Comment, &f.Date, &f.IsVisible,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}
	if err := cols.decode(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// ListFeedbackForTarget returns every feedback row about targetUser, oldest first
func (db *DB) ListFeedbackForTarget(ctx context.Context, targetUser uuid.UUID) ([]feedback.MeetingFeedback, error) {
	rows, err := db.pool.Query(ctx, feedbackSelect+` WHERE target_user = $1 ORDER BY created_at`, targetUser)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer rows.Close()

	var out []feedback.MeetingFeedback
	for rows.Next() {
		var f feedback.MeetingFeedback
		var cols feedbackColumns
		if err := rows.Scan(
			&f.ID, &f.MeetingName, &f.FromUser, &f.TargetUser, &cols.responses, &cols.strengths, &cols.improvements,
			&f.Comment, &f.Date, &f.IsVisible,
		); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		if err := cols.decode(&f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// SetFeedbackVisibility changes visibility of a row addressed to targetUser.
// It reports false when no such row exists.
func (db *DB) SetFeedbackVisibility(ctx context.Context, id, targetUser uuid.UUID, visible bool) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`UPDATE meeting_feedback SET is_visible = $1 WHERE id = $2 AND target_user = $3`,
		visible, id, targetUser,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update feedback visibility: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
