// Package feedback models peer feedback left after a meeting and the
// summaries derived from it.
package feedback

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	// ErrInsufficientData is returned by Summarize when fewer than MinRows rows exist
	ErrInsufficientData = errors.New("insufficient feedback data")
	// ErrSelfFeedback is returned when a user targets themselves
	ErrSelfFeedback = errors.New("feedback cannot target its author")
	// ErrInvalid wraps field validation failures
	ErrInvalid = errors.New("invalid feedback")
)

var validate = validator.New()

// Responses holds the five 1-5 scores of one feedback
type Responses struct {
	Communication int `json:"communication" validate:"min=1,max=5"`
	Collaboration int `json:"collaboration" validate:"min=1,max=5"`
	Leadership    int `json:"leadership" validate:"min=1,max=5"`
	Listening     int `json:"listening" validate:"min=1,max=5"`
	Contribution  int `json:"contribution" validate:"min=1,max=5"`
}

// MeetingFeedback is one peer's feedback about a participant of a meeting.
// Only IsVisible may change after creation, and only by the target user.
type MeetingFeedback struct {
	ID           uuid.UUID `json:"id"`
	MeetingName  string    `json:"meetingName" validate:"required,max=200"`
	FromUser     uuid.UUID `json:"fromUser" validate:"required"`
	TargetUser   uuid.UUID `json:"targetUser" validate:"required"`
	Responses    Responses `json:"responses"`
	Strengths    []string  `json:"strengths" validate:"max=10,dive,required,max=100"`
	Improvements []string  `json:"improvements" validate:"max=10,dive,required,max=100"`
	Comment      string    `json:"comment" validate:"max=2000"`
	Date         time.Time `json:"date"`
	IsVisible    bool      `json:"isVisible"`
}

// New builds a feedback row with a generated id and the current date.
// New rows are visible until the target hides them.
func New(meetingName string, from, target uuid.UUID, responses Responses, strengths, improvements []string, comment string) (*MeetingFeedback, error) {
	f := &MeetingFeedback{
		ID:           uuid.New(),
		MeetingName:  strings.TrimSpace(meetingName),
		FromUser:     from,
		TargetUser:   target,
		Responses:    responses,
		Strengths:    cleanTags(strengths),
		Improvements: cleanTags(improvements),
		Comment:      strings.TrimSpace(comment),
		Date:         time.Now().UTC(),
		IsVisible:    true,
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks score ranges and required fields
func (f *MeetingFeedback) Validate() error {
	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if f.FromUser == f.TargetUser {
		return ErrSelfFeedback
	}
	return nil
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// VisibleOnly returns the rows the target has not hidden
func VisibleOnly(rows []MeetingFeedback) []MeetingFeedback {
	out := make([]MeetingFeedback, 0, len(rows))
	for _, r := range rows {
		if r.IsVisible {
			out = append(out, r)
		}
	}
	return out
}
