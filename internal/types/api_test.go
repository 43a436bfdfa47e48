package types

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/meeting-mbti/internal/feedback"
)

func TestSurveyRequest_KeepsAnswersRaw(t *testing.T) {
	var req SurveyRequest
	require.NoError(t, json.Unmarshal([]byte(`{"answers": {"q1": "prepared"}}`), &req))
	assert.NoError(t, req.Validate())
	assert.JSONEq(t, `{"q1": "prepared"}`, string(req.Answers))

	var empty SurveyRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &empty))
	assert.Error(t, empty.Validate())
}

func TestCreateRoomRequest_Validation(t *testing.T) {
	assert.NoError(t, (&CreateRoomRequest{Name: "주간 팀 회의"}).Validate())
	assert.Error(t, (&CreateRoomRequest{MeetingType: "review"}).Validate())
}

func TestCreateOrganizationRequest_Validation(t *testing.T) {
	assert.NoError(t, (&CreateOrganizationRequest{Name: "Platform"}).Validate())
	assert.Error(t, (&CreateOrganizationRequest{}).Validate())
}

func TestCreateFeedbackRequest_Validation(t *testing.T) {
	valid := CreateFeedbackRequest{
		MeetingName: "스프린트 회고",
		TargetUser:  uuid.New(),
		Responses:   feedback.Responses{Communication: 4, Collaboration: 4, Leadership: 3, Listening: 5, Contribution: 4},
	}
	assert.NoError(t, valid.Validate())

	noTarget := valid
	noTarget.TargetUser = uuid.Nil
	assert.Error(t, noTarget.Validate())

	outOfRange := valid
	outOfRange.Responses.Leadership = 6
	assert.Error(t, outOfRange.Validate())
}

func TestVisibilityRequest_RequiresExplicitValue(t *testing.T) {
	var req VisibilityRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	assert.Error(t, req.Validate())

	require.NoError(t, json.Unmarshal([]byte(`{"isVisible": false}`), &req))
	assert.NoError(t, req.Validate())
	assert.False(t, *req.IsVisible)
}
