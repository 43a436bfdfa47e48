// Package meeting derives group-level advice and survey composites for a
// meeting room from its participants' communication styles.
package meeting

import (
	"errors"
	"fmt"
	"strings"
)

// MeetingType is the format of a meeting
type MeetingType string

const (
	Presentation  MeetingType = "presentation"
	Collaboration MeetingType = "collaboration"
	Brainstorming MeetingType = "brainstorming"
	Decision      MeetingType = "decision"
	Review        MeetingType = "review"
	Kickoff       MeetingType = "kickoff"
)

// DefaultMeetingType is used when no meeting type is given
const DefaultMeetingType = Collaboration

// MeetingTypes lists every meeting type in display order
var MeetingTypes = []MeetingType{Presentation, Collaboration, Brainstorming, Decision, Review, Kickoff}

var (
	// ErrUnknownMeetingType is returned by ParseMeetingType for unrecognised values
	ErrUnknownMeetingType = errors.New("unknown meeting type")
	// ErrNoParticipants is returned when advice is requested for an empty room
	ErrNoParticipants = errors.New("no participants: advice is not applicable")
	// ErrNoRespondents is returned when a survey composite has no respondents
	ErrNoRespondents = errors.New("no respondents: survey aggregation is not applicable")
)

// ParseMeetingType converts s into a MeetingType. An empty string yields DefaultMeetingType.
func ParseMeetingType(s string) (MeetingType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultMeetingType, nil
	}
	for _, mt := range MeetingTypes {
		if string(mt) == s {
			return mt, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMeetingType, s)
}

// Participant is one member of a meeting room as shown to the room
type Participant struct {
	Name        string `json:"name"`
	Style       string `json:"style"`
	Description string `json:"description"`
}

// Styles returns the style label of each participant in order
func Styles(participants []Participant) []string {
	out := make([]string, len(participants))
	for i, p := range participants {
		out[i] = p.Style
	}
	return out
}
