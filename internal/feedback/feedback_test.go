package feedback

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scores(c, co, l, li, ct int) Responses {
	return Responses{Communication: c, Collaboration: co, Leadership: l, Listening: li, Contribution: ct}
}

func row(r Responses, strengths, improvements []string) MeetingFeedback {
	return MeetingFeedback{
		ID:           uuid.New(),
		MeetingName:  "주간 팀 회의",
		FromUser:     uuid.New(),
		TargetUser:   uuid.New(),
		Responses:    r,
		Strengths:    strengths,
		Improvements: improvements,
		IsVisible:    true,
	}
}

func TestNew(t *testing.T) {
	from, target := uuid.New(), uuid.New()
	f, err := New(" 주간 팀 회의 ", from, target, scores(4, 4, 3, 5, 2), []string{"경청", " ", "정리"}, nil, " 좋았어요 ")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, f.ID)
	assert.Equal(t, "주간 팀 회의", f.MeetingName)
	assert.Equal(t, []string{"경청", "정리"}, f.Strengths)
	assert.Empty(t, f.Improvements)
	assert.Equal(t, "좋았어요", f.Comment)
	assert.True(t, f.IsVisible)
	assert.False(t, f.Date.IsZero())
}

func TestValidate(t *testing.T) {
	from, target := uuid.New(), uuid.New()
	tests := []struct {
		name    string
		mutate  func(f *MeetingFeedback)
		wantErr error
	}{
		{"valid", func(f *MeetingFeedback) {}, nil},
		{"score below range", func(f *MeetingFeedback) { f.Responses.Leadership = 0 }, ErrInvalid},
		{"score above range", func(f *MeetingFeedback) { f.Responses.Listening = 6 }, ErrInvalid},
		{"missing meeting name", func(f *MeetingFeedback) { f.MeetingName = "" }, ErrInvalid},
		{"missing target", func(f *MeetingFeedback) { f.TargetUser = uuid.Nil }, ErrInvalid},
		{"empty strength tag", func(f *MeetingFeedback) { f.Strengths = []string{""} }, ErrInvalid},
		{"self feedback", func(f *MeetingFeedback) { f.TargetUser = f.FromUser }, ErrSelfFeedback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &MeetingFeedback{
				MeetingName: "회고",
				FromUser:    from,
				TargetUser:  target,
				Responses:   scores(3, 3, 3, 3, 3),
			}
			tt.mutate(f)
			err := f.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestValidate_NamesFailingField(t *testing.T) {
	f := row(scores(3, 3, 9, 3, 3), nil, nil)
	err := f.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Leadership")
}

func TestSummarize_ThresholdBoundary(t *testing.T) {
	rows := []MeetingFeedback{
		row(scores(5, 5, 5, 5, 5), nil, nil),
		row(scores(5, 5, 5, 5, 5), nil, nil),
	}

	s, err := Summarize(rows)
	assert.ErrorIs(t, err, ErrInsufficientData)
	require.NotNil(t, s)
	assert.Equal(t, 2, s.Count)
	assert.Nil(t, s.Averages)
	assert.Empty(t, s.Persona)

	rows = append(rows, row(scores(2, 5, 2, 5, 5), nil, nil))
	s, err = Summarize(rows)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Count)
	require.NotNil(t, s.Averages)
	assert.InDelta(t, 4.0, s.Averages.Communication, 1e-9)
	assert.InDelta(t, 5.0, s.Averages.Collaboration, 1e-9)
	assert.InDelta(t, 4.0, s.Averages.Leadership, 1e-9)
	assert.InDelta(t, 4.6, s.Overall, 1e-9)
	assert.Equal(t, PersonaLeader, s.Persona)
}

func TestSummarize_Empty(t *testing.T) {
	s, err := Summarize(nil)
	assert.ErrorIs(t, err, ErrInsufficientData)
	assert.Equal(t, 0, s.Count)
}

func TestSummarize_Persona(t *testing.T) {
	tests := []struct {
		name string
		r    Responses
		want string
	}{
		{"leader", scores(4, 1, 4, 1, 1), PersonaLeader},
		{"supporter", scores(3, 4, 3, 4, 3), PersonaSupporter},
		{"contributor", scores(3, 3, 3, 3, 4), PersonaContributor},
		{"growing", scores(3, 3, 3, 3, 3), PersonaGrowing},
		{"potential", scores(2, 3, 3, 3, 3), PersonaPotential},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []MeetingFeedback{row(tt.r, nil, nil), row(tt.r, nil, nil), row(tt.r, nil, nil)}
			s, err := Summarize(rows)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Persona)
		})
	}
}

func TestSummarize_TopTags(t *testing.T) {
	r := scores(3, 3, 3, 3, 3)
	rows := []MeetingFeedback{
		row(r, []string{"경청", "정리", "시간 관리"}, []string{"발언 시간", "자료 준비"}),
		row(r, []string{"정리", "아이디어", "공감", "추진력"}, []string{"자료 준비", "결론"}),
		row(r, []string{"정리", "경청", "유머"}, []string{"결론", "질문"}),
	}

	s, err := Summarize(rows)
	require.NoError(t, err)
	assert.Equal(t, []string{"정리", "경청", "시간 관리", "아이디어", "공감"}, s.TopStrengths)
	assert.Equal(t, []string{"자료 준비", "결론", "발언 시간"}, s.TopImprovements)
}

func TestVisibleOnly(t *testing.T) {
	r := scores(3, 3, 3, 3, 3)
	rows := []MeetingFeedback{row(r, nil, nil), row(r, nil, nil), row(r, nil, nil)}
	rows[1].IsVisible = false

	visible := VisibleOnly(rows)
	require.Len(t, visible, 2)

	_, err := Summarize(visible)
	assert.ErrorIs(t, err, ErrInsufficientData)
}
