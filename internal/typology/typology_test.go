package typology

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/meeting-mbti/internal/survey"
)

// allAnswerSets enumerates every complete answer set (2^15 combinations)
func allAnswerSets(fn func(survey.AnswerSet)) {
	for mask := 0; mask < 1<<survey.QuestionCount; mask++ {
		var choices [survey.QuestionCount]int
		for i := range choices {
			choices[i] = (mask >> i) & 1
		}
		fn(survey.FromChoices(choices))
	}
}

func TestScoreTypeA_EfficientLeaderScenario(t *testing.T) {
	a := survey.MustParseChoices("AAAAAAAAAAAAAAA")
	require.Equal(t, survey.Group, a[survey.Q4])
	require.Equal(t, survey.Cautious, a[survey.Q14])

	code := ScoreTypeA(a)
	assert.Equal(t, TypeACode("ESTJ"), code)

	entry, ok := LookupTypeA(code)
	require.True(t, ok)
	assert.Equal(t, "실행형 리더", entry.Name)
	assert.Equal(t, "Efficient Leader", entry.Nickname)
}

func TestScoreTypeA_OppositeAnswers(t *testing.T) {
	a := survey.MustParseChoices("BBBBBBBBBBBBBBB")
	assert.Equal(t, TypeACode("INFP"), ScoreTypeA(a))
}

func TestScoreTypeA_EachAxisIsAnOr(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    TypeACode
	}{
		{"group alone makes E", "BBBABBBBBBBBBBB", "ENFP"},
		{"energetic alone makes E", "BBBBBBABBBBBBBB", "ENFP"},
		{"practical alone makes S", "BBBBBBBBBBABBBB", "ISFP"},
		{"cautious alone makes S", "BBBBBBBBBBBBBAB", "ISFP"},
		{"logical alone makes T", "BBBBBABBBBBBBBB", "INTP"},
		{"direct alone makes T", "BBBBBBBBABBBBBB", "INTP"},
		{"structured alone makes J", "BBBBABBBBBBBBBB", "INFJ"},
		{"proactive alone makes J", "BBBBBBBABBBBBBB", "INFJ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := survey.MustParseChoices(tt.pattern)
			assert.Equal(t, tt.want, ScoreTypeA(a))
		})
	}
}

func TestTypeA_AllSixteenCodesReachableAndRegistered(t *testing.T) {
	reached := make(map[TypeACode]int)
	allAnswerSets(func(a survey.AnswerSet) {
		reached[ScoreTypeA(a)]++
	})

	require.Len(t, reached, 16)
	for code := range reached {
		_, ok := LookupTypeA(code)
		assert.True(t, ok, "no registry entry for %s", code)
	}
	assert.Len(t, TypeACodes(), 16)
}

func TestTypeA_RegistryEntriesComplete(t *testing.T) {
	for _, code := range TypeACodes() {
		e, ok := LookupTypeA(code)
		require.True(t, ok)
		assert.Equal(t, string(code), e.Code)
		assert.NotEmpty(t, e.Name, code)
		assert.NotEmpty(t, e.Strengths, code)
		assert.NotEmpty(t, e.Challenges, code)
		assert.NotEmpty(t, e.MeetingTips, code)
		assert.NotEmpty(t, e.CollaborationGuide, code)
		assert.NotEmpty(t, e.CommunicationPreference, code)
	}
}

func TestLookupTypeA_ReturnsCopy(t *testing.T) {
	e, _ := LookupTypeA("ESTJ")
	e.Strengths[0] = "mutated"

	again, _ := LookupTypeA("ESTJ")
	assert.NotEqual(t, "mutated", again.Strengths[0])
}

func TestScoreTypeB_AllA(t *testing.T) {
	score := ScoreTypeB(survey.MustParseChoices("AAAAAAAAAAAAAAA"))
	assert.Equal(t, TypeBCode("VFT"), score.Code)

	want := [3]AxisScore{
		{Axis: "channel", Labels: [3]string{Kinesthetic, Verbal, Visual}, Scores: [3]int{2, 0, 3}, Winner: Visual},
		{Axis: "pace", Labels: [3]string{Fast, Deliberate, Balanced}, Scores: [3]int{3, 1, 0}, Winner: Fast},
		{Axis: "focus", Labels: [3]string{Task, People, Idea}, Scores: [3]int{3, 0, 0}, Winner: Task},
	}
	if diff := cmp.Diff(want, score.Axes); diff != "" {
		t.Errorf("axis tallies mismatch (-want +got):\n%s", diff)
	}
}

func TestScoreTypeB_TieBreaks(t *testing.T) {
	t.Run("kinesthetic wins a tie with visual", func(t *testing.T) {
		// q2 visual, q3 talking, q10 handsOn, q13 chat: K=2 L=1 V=2
		score := ScoreTypeB(survey.MustParseChoices("AABAAAAAAAAAAAA"))
		assert.Equal(t, [3]int{2, 1, 2}, score.Axes[0].Scores)
		assert.Equal(t, Kinesthetic, score.Axes[0].Winner)
	})

	t.Run("kinesthetic wins a tie with verbal", func(t *testing.T) {
		// q2 verbal, q3 talking, q10 handsOn, q13 faceToFace: K=3 L=3 V=0
		score := ScoreTypeB(survey.MustParseChoices("ABBAAAAAAAAABAA"))
		assert.Equal(t, [3]int{3, 3, 0}, score.Axes[0].Scores)
		assert.Equal(t, Kinesthetic, score.Axes[0].Winner)
	})

	t.Run("balanced ties but never wins", func(t *testing.T) {
		// q1 spontaneous, q8 reactive, q12 fast, q14 adventurous: F=2 D=0 B=2
		score := ScoreTypeB(survey.MustParseChoices("BAAAAAABAAAAABA"))
		assert.Equal(t, [3]int{2, 0, 2}, score.Axes[1].Scores)
		assert.Equal(t, Fast, score.Axes[1].Winner)
	})

	t.Run("idea ties but never wins", func(t *testing.T) {
		// q5 flexible, q6 emotional, q11 imaginative, q14 adventurous, q15 alone: T=0 P=2 I=2
		score := ScoreTypeB(survey.MustParseChoices("AAAABBAAAABAABA"))
		assert.Equal(t, [3]int{0, 2, 2}, score.Axes[2].Scores)
		assert.Equal(t, People, score.Axes[2].Winner)
	})
}

func TestTypeB_ExactlyTwelveReachableCodes(t *testing.T) {
	reached := make(map[TypeBCode]bool)
	allAnswerSets(func(a survey.AnswerSet) {
		reached[ScoreTypeB(a).Code] = true
	})

	got := make([]TypeBCode, 0, len(reached))
	for code := range reached {
		got = append(got, code)
	}

	want := []TypeBCode{
		"KDP", "KDT", "KFP", "KFT",
		"LDP", "LDT", "LFP", "LFT",
		"VDP", "VDT", "VFP", "VFT",
	}
	if diff := cmp.Diff(want, got, cmpSortCodes()); diff != "" {
		t.Errorf("reachable Type B codes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, TypeBCodes()); diff != "" {
		t.Errorf("registered Type B codes mismatch (-want +got):\n%s", diff)
	}
}

func TestLookupTypeB_FallbackForUnregisteredCode(t *testing.T) {
	for _, code := range []TypeBCode{"VBT", "KFI", "LBI", "", "???"} {
		assert.False(t, HasTypeB(code), code)
		e := LookupTypeB(code)
		assert.Equal(t, FallbackTypeB.Code, e.Code)
		assert.Equal(t, "균형형 소통가", e.Name)
	}

	e := LookupTypeB("KDP")
	assert.Equal(t, "KDP", e.Code)
}

func TestClassify_Deterministic(t *testing.T) {
	a := survey.MustParseChoices("ABABBABAABBAABA")

	first, err := Classify(a)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Classify(a)
		require.NoError(t, err)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("classification changed between calls:\n%s", diff)
		}
	}
}

func TestClassify_RejectsIncompleteAnswers(t *testing.T) {
	a := survey.MustParseChoices("AAAAAAAAAAAAAAA")
	delete(a, survey.Q7)

	_, err := Classify(a)
	require.Error(t, err)

	var verr *survey.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{survey.Q7}, verr.Missing)
}

func cmpSortCodes() cmp.Option {
	return cmp.Transformer("sort", func(in []TypeBCode) []TypeBCode {
		out := append([]TypeBCode(nil), in...)
		for i := 1; i < len(out); i++ {
			for j := i; j > 0 && out[j] < out[j-1]; j-- {
				out[j], out[j-1] = out[j-1], out[j]
			}
		}
		return out
	})
}
