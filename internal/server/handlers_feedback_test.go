package server

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/meeting-mbti/internal/feedback"
	"github.com/jonathan/meeting-mbti/internal/types"
)

func allFives() feedback.Responses {
	return feedback.Responses{Communication: 5, Collaboration: 5, Leadership: 5, Listening: 5, Contribution: 5}
}

func submitFeedback(t *testing.T, s *Server, token string, target uuid.UUID) feedback.MeetingFeedback {
	t.Helper()
	w := do(t, s, http.MethodPost, "/v1/feedback", token, types.CreateFeedbackRequest{
		MeetingName: "주간 팀 회의",
		TargetUser:  target,
		Responses:   allFives(),
		Strengths:   []string{"명확한 설명", " 경청 "},
		Comment:     "좋았습니다",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[feedback.MeetingFeedback](t, w)
}

func TestFeedback_SubmitAndReceive(t *testing.T) {
	s := newTestServer(t, nil)
	authorToken, authorID := registerUser(t, s, "Author")
	targetToken, targetID := registerUser(t, s, "Target")

	f := submitFeedback(t, s, authorToken, targetID)
	assert.Equal(t, authorID, f.FromUser)
	assert.Equal(t, targetID, f.TargetUser)
	assert.True(t, f.IsVisible)
	assert.Equal(t, []string{"명확한 설명", "경청"}, f.Strengths)

	w := do(t, s, http.MethodGet, "/v1/feedback/received", targetToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	received := decode[struct {
		Feedback []feedback.MeetingFeedback `json:"feedback"`
		Count    int                        `json:"count"`
	}](t, w)
	require.Equal(t, 1, received.Count)
	assert.Equal(t, f.ID, received.Feedback[0].ID)

	w = do(t, s, http.MethodGet, "/v1/feedback/received", authorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decode[map[string]any](t, w)["count"])
}

func TestFeedback_SubmitValidation(t *testing.T) {
	s := newTestServer(t, nil)
	token, userID := registerUser(t, s, "Author")

	tests := []struct {
		name string
		req  types.CreateFeedbackRequest
	}{
		{"self feedback", types.CreateFeedbackRequest{MeetingName: "m", TargetUser: userID, Responses: allFives()}},
		{"score out of range", types.CreateFeedbackRequest{MeetingName: "m", TargetUser: uuid.New(), Responses: feedback.Responses{Communication: 6, Collaboration: 5, Leadership: 5, Listening: 5, Contribution: 5}}},
		{"missing scores", types.CreateFeedbackRequest{MeetingName: "m", TargetUser: uuid.New()}},
		{"missing meeting", types.CreateFeedbackRequest{TargetUser: uuid.New(), Responses: allFives()}},
		{"missing target", types.CreateFeedbackRequest{MeetingName: "m", Responses: allFives()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/v1/feedback", token, tt.req)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestFeedback_GuestsCanSubmit(t *testing.T) {
	s := newTestServer(t, nil)
	guestToken, guestID := startGuest(t, s)
	_, targetID := registerUser(t, s, "Target")

	f := submitFeedback(t, s, guestToken, targetID)
	assert.Equal(t, guestID, f.FromUser)
}

func TestFeedback_Visibility(t *testing.T) {
	s := newTestServer(t, nil)
	authorToken, _ := registerUser(t, s, "Author")
	targetToken, targetID := registerUser(t, s, "Target")

	f := submitFeedback(t, s, authorToken, targetID)
	path := "/v1/feedback/" + f.ID.String() + "/visibility"

	t.Run("only the target can toggle", func(t *testing.T) {
		w := do(t, s, http.MethodPatch, path, authorToken, map[string]bool{"isVisible": false})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("isVisible is required", func(t *testing.T) {
		w := do(t, s, http.MethodPatch, path, targetToken, map[string]any{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("target hides and shows", func(t *testing.T) {
		w := do(t, s, http.MethodPatch, path, targetToken, map[string]bool{"isVisible": false})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, false, decode[map[string]any](t, w)["isVisible"])

		w = do(t, s, http.MethodGet, "/v1/feedback/received", targetToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		received := decode[struct {
			Feedback []feedback.MeetingFeedback `json:"feedback"`
		}](t, w)
		require.Len(t, received.Feedback, 1)
		assert.False(t, received.Feedback[0].IsVisible)

		w = do(t, s, http.MethodPatch, path, targetToken, map[string]bool{"isVisible": true})
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown feedback", func(t *testing.T) {
		w := do(t, s, http.MethodPatch, "/v1/feedback/"+uuid.NewString()+"/visibility", targetToken, map[string]bool{"isVisible": false})
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = do(t, s, http.MethodPatch, "/v1/feedback/nope/visibility", targetToken, map[string]bool{"isVisible": false})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestFeedback_Summaries(t *testing.T) {
	s := newTestServer(t, nil)
	targetToken, targetID := registerUser(t, s, "Target")
	publicPath := "/v1/users/" + targetID.String() + "/feedback/summary"

	var ids []uuid.UUID
	for i := 0; i < 2; i++ {
		token, _ := registerUser(t, s, "Peer")
		ids = append(ids, submitFeedback(t, s, token, targetID).ID)
	}

	t.Run("insufficient data below three rows", func(t *testing.T) {
		w := do(t, s, http.MethodGet, "/v1/feedback/summary", targetToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[map[string]any](t, w)
		assert.Equal(t, "insufficient_data", resp["status"])
		assert.Equal(t, float64(2), resp["count"])
	})

	token, _ := registerUser(t, s, "Peer")
	ids = append(ids, submitFeedback(t, s, token, targetID).ID)

	t.Run("own summary", func(t *testing.T) {
		w := do(t, s, http.MethodGet, "/v1/feedback/summary", targetToken, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		summary := decode[feedback.Summary](t, w)
		assert.Equal(t, 3, summary.Count)
		assert.InDelta(t, 5.0, summary.Overall, 1e-9)
		assert.Equal(t, feedback.PersonaLeader, summary.Persona)
		assert.Equal(t, []string{"명확한 설명", "경청"}, summary.TopStrengths)
	})

	t.Run("public summary needs no token", func(t *testing.T) {
		w := do(t, s, http.MethodGet, publicPath, "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 3, decode[feedback.Summary](t, w).Count)
	})

	t.Run("public summary drops hidden rows", func(t *testing.T) {
		w := do(t, s, http.MethodPatch, "/v1/feedback/"+ids[0].String()+"/visibility", targetToken, map[string]bool{"isVisible": false})
		require.Equal(t, http.StatusOK, w.Code)

		w = do(t, s, http.MethodGet, publicPath, "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[map[string]any](t, w)
		assert.Equal(t, "insufficient_data", resp["status"])
		assert.Equal(t, float64(2), resp["count"])

		w = do(t, s, http.MethodGet, "/v1/feedback/summary", targetToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 3, decode[feedback.Summary](t, w).Count)
	})

	t.Run("bad user ID", func(t *testing.T) {
		w := do(t, s, http.MethodGet, "/v1/users/nope/feedback/summary", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("metrics count accepted feedback", func(t *testing.T) {
		w := do(t, s, http.MethodGet, "/metrics", "", nil)
		assert.Contains(t, w.Body.String(), "meeting_mbti_feedback_submitted_total 3")
	})
}
