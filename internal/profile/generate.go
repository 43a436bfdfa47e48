// Package profile assembles the user-facing communication profile from a
// classified answer set.
package profile

import (
	"github.com/jonathan/meeting-mbti/internal/survey"
	"github.com/jonathan/meeting-mbti/internal/typology"
)

// UserProfile is the persisted twelve-field profile record
type UserProfile struct {
	Style                string `json:"style"`
	Tips                 string `json:"tips"`
	EmotionalStyle       string `json:"emotionalStyle"`
	CollaborationTips    string `json:"collaborationTips"`
	StressManagement     string `json:"stressManagement"`
	FeedbackStyle        string `json:"feedbackStyle"`
	ConflictResolution   string `json:"conflictResolution"`
	ProblemSolving       string `json:"problemSolving"`
	WorkStyle            string `json:"workStyle"`
	CommunicationChannel string `json:"communicationChannel"`
	RiskProfile          string `json:"riskProfile"`
	LearningPreference   string `json:"learningPreference"`
}

// Generated is a profile together with the codes it was derived from
type Generated struct {
	Profile UserProfile        `json:"profile"`
	TypeA   typology.TypeACode `json:"type_a"`
	TypeB   typology.TypeBCode `json:"type_b"`
	Result  *typology.Result   `json:"-"`
}

// Generate classifies the answer set and builds the profile.
// It returns the answer set's validation error unchanged when it is incomplete.
func Generate(a survey.AnswerSet) (*Generated, error) {
	res, err := typology.Classify(a)
	if err != nil {
		return nil, err
	}

	p := UserProfile{
		Style:                res.TypeAEntry.Name,
		Tips:                 res.TypeAEntry.MeetingTips,
		CollaborationTips:    res.TypeAEntry.CollaborationGuide,
		CommunicationChannel: res.TypeBEntry.CommunicationPreference,

		EmotionalStyle:     emotionalStyle.pick(a),
		StressManagement:   stressManagement.pick(a),
		FeedbackStyle:      feedbackStyle.pick(a),
		ConflictResolution: conflictResolution.pick(a),
		ProblemSolving:     problemSolving.pick(a),
		WorkStyle:          workStyle.pick(a),
		RiskProfile:        riskProfile.pick(a),
		LearningPreference: learningPreference.pick(a),
	}

	return &Generated{
		Profile: p,
		TypeA:   res.TypeA,
		TypeB:   res.TypeB.Code,
		Result:  res,
	}, nil
}
