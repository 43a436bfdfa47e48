// Package typology maps a complete answer set to the two communication-style
// taxonomies used across the product and resolves their registry entries.
//
// Type A is a four-axis binary code (16 values, e.g. "ESTJ"). Type B is a
// three-axis weighted code over channel, pace and focus; only 12 of its 27
// combinations can be produced and have registry entries.
package typology

// Entry is an immutable registry record describing one type code
type Entry struct {
	Code                    string   `json:"code"`
	Name                    string   `json:"name"`
	Nickname                string   `json:"nickname"`
	Strengths               []string `json:"strengths"`
	Challenges              []string `json:"challenges"`
	MeetingTips             string   `json:"meeting_tips"`
	CollaborationGuide      string   `json:"collaboration_guide"`
	OptimalMeetingSize      string   `json:"optimal_meeting_size"`
	PreferredMeetingLength  string   `json:"preferred_meeting_length"`
	CommunicationPreference string   `json:"communication_preference"`
}

// clone returns a copy whose slices do not alias the registry
func (e Entry) clone() Entry {
	out := e
	out.Strengths = append([]string(nil), e.Strengths...)
	out.Challenges = append([]string(nil), e.Challenges...)
	return out
}
