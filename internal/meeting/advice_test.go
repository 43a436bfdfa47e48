package meeting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMeetingType(t *testing.T) {
	tests := []struct {
		in      string
		want    MeetingType
		wantErr bool
	}{
		{"", Collaboration, false},
		{"presentation", Presentation, false},
		{" Decision ", Decision, false},
		{"kickoff", Kickoff, false},
		{"standup", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMeetingType(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnknownMeetingType))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBucketsOf(t *testing.T) {
	assert.Equal(t, []Bucket{BucketVisual, BucketQuick}, BucketsOf("빠른 시각적 정리형"))
	assert.Equal(t, []Bucket{BucketDetail, BucketStructured}, BucketsOf("체계적 분석가"))
	assert.Equal(t, []Bucket{BucketCollaborative}, BucketsOf("Collaborative"))
	assert.Empty(t, BucketsOf("자유로운 탐험가"))
}

func TestAnalyze_NoParticipants(t *testing.T) {
	_, err := Analyze(nil)
	assert.ErrorIs(t, err, ErrNoParticipants)

	_, err = GenerateAdvice([]string{}, Review)
	assert.ErrorIs(t, err, ErrNoParticipants)
}

func TestAnalyze_UnmatchedStylesDiluteFractions(t *testing.T) {
	c, err := Analyze([]string{"시각적 사고형", "자유로운 탐험가"})
	require.NoError(t, err)

	assert.Equal(t, 2, c.Participants)
	assert.InDelta(t, 0.5, c.Fractions[BucketVisual], 1e-9)
	assert.False(t, c.Dominant[BucketVisual])
	assert.True(t, c.Mixed)
}

func TestGenerateAdvice_Templates(t *testing.T) {
	tests := []struct {
		name      string
		styles    []string
		wantTitle string
	}{
		{
			name:      "visual and quick",
			styles:    Styles(FixtureParticipants("주간 팀 회의")),
			wantTitle: "시각적 신속 실행형",
		},
		{
			name:      "detail and structured",
			styles:    Styles(FixtureParticipants("프로젝트 킥오프")),
			wantTitle: "체계적 분석형",
		},
		{
			name:      "collaborative",
			styles:    Styles(FixtureParticipants("디자인 리뷰")),
			wantTitle: "협력적 소통형",
		},
		{
			name:      "mixed",
			styles:    Styles(FixtureParticipants("아이디어 브레인스토밍")),
			wantTitle: "다양성 조화형",
		},
		{
			name:      "visual only",
			styles:    []string{"시각적 사고형", "그림 설명가", "도표 정리형"},
			wantTitle: "시각적 사고형",
		},
		{
			name:      "quick only",
			styles:    []string{"신속 실행형", "즉각 대응형", "시각적 사고형"},
			wantTitle: "신속 실행형",
		},
		{
			name:      "structured alone",
			styles:    []string{"체계적 진행형", "계획형", "자유로운 탐험가"},
			wantTitle: "신중 검토형",
		},
		{
			name:      "nothing matches",
			styles:    []string{"자유로운 탐험가"},
			wantTitle: "다양성 조화형",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := GenerateAdvice(tt.styles, Collaboration)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, a.Title)
		})
	}
}

// Two of five styles are visual and two are quick: both fractions are 0.4,
// below the dominance threshold, and the largest is below 0.6, so the team
// reads as mixed rather than visual and quick.
func TestGenerateAdvice_FiveStyleTeamIsMixed(t *testing.T) {
	styles := []string{"시각적 전략가", "신속 결정형", "시각적 소통형", "체계적 진행", "신속 처리형"}

	c, err := Analyze(styles)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, c.Fractions[BucketVisual], 1e-9)
	assert.InDelta(t, 0.4, c.Fractions[BucketQuick], 1e-9)
	assert.True(t, c.Mixed)

	a, err := GenerateAdvice(styles, Collaboration)
	require.NoError(t, err)
	assert.Equal(t, mixedTemplate.title, a.Title)
}

func TestGenerateAdvice_MeetingTypeNotes(t *testing.T) {
	styles := Styles(FixtureParticipants("주간 팀 회의"))

	for _, mt := range MeetingTypes {
		t.Run(string(mt), func(t *testing.T) {
			a, err := GenerateAdvice(styles, mt)
			require.NoError(t, err)

			note := meetingTypeNotes[mt]
			require.Len(t, a.Tips, len(visualQuickTemplate.tips)+1)
			require.Len(t, a.Warnings, len(visualQuickTemplate.warnings)+1)
			assert.Equal(t, note.tip, a.Tips[len(a.Tips)-1])
			assert.Equal(t, note.warning, a.Warnings[len(a.Warnings)-1])
			assert.Equal(t, mt, a.MeetingType)
		})
	}
}

func TestGenerateAdvice_DoesNotAliasTemplates(t *testing.T) {
	styles := Styles(FixtureParticipants("디자인 리뷰"))
	a, err := GenerateAdvice(styles, Kickoff)
	require.NoError(t, err)
	a.Tips[0] = "changed"

	again, err := GenerateAdvice(styles, "")
	require.NoError(t, err)
	assert.Equal(t, collaborativeTemplate.tips[0], again.Tips[0])
	assert.Equal(t, DefaultMeetingType, again.MeetingType)
}

func TestFixtureParticipants(t *testing.T) {
	for _, name := range FixtureRoomNames() {
		assert.NotEmpty(t, FixtureParticipants(name), name)
	}
	assert.Nil(t, FixtureParticipants("새 회의실"))

	ps := FixtureParticipants("디자인 리뷰")
	ps[0].Name = "changed"
	assert.NotEqual(t, "changed", FixtureParticipants("디자인 리뷰")[0].Name)
}
