package meeting

import (
	"fmt"

	"github.com/jonathan/meeting-mbti/internal/survey"
)

// SurveyAggregation is the team composite of a set of survey answers
type SurveyAggregation struct {
	Respondents   int                       `json:"respondents"`
	Breakdown     map[string]map[string]int `json:"breakdown"`
	Profile       string                    `json:"profile"`
	DominantStyle string                    `json:"dominant_style"`
	Insights      []string                  `json:"insights"`
	Simulated     bool                      `json:"simulated"`
}

// samplePatterns stand in for per-participant answers when a room has no
// submitted surveys; participant i answers samplePatterns[i%6].
var samplePatterns = [6]string{
	"AAAAAAAAAAAAAAA",
	"ABBAABBBBABBABB",
	"ABAABABABABBAAB",
	"AAAABAAABABABAB",
	"AAAABBBBBBAABBA",
	"AABBAAAAABABBBA",
}

const (
	dominantStyleThreshold = 0.6
	strongInsight          = 0.7
	moderateInsight        = 0.6
	minInsights            = 3
	maxInsights            = 5
)

type styleRule struct {
	label       string
	description string
	match       func(frac func(q, v string) float64) bool
}

func over(frac func(q, v string) float64, q, v string) bool {
	return frac(q, v) > dominantStyleThreshold
}

var dominantStyleRules = []styleRule{
	{"시각적 신속형", "시각 자료로 빠르게 합의하고 실행하는 팀입니다.", func(f func(q, v string) float64) bool {
		return over(f, survey.Q2, survey.Visual) && over(f, survey.Q12, survey.Fast)
	}},
	{"체계적 분석형", "계획에 따라 논리적으로 검토하는 팀입니다.", func(f func(q, v string) float64) bool {
		return over(f, survey.Q5, survey.Structured) && over(f, survey.Q6, survey.Logical)
	}},
	{"협력적 소통형", "함께 모여 대화하며 문제를 푸는 팀입니다.", func(f func(q, v string) float64) bool {
		return over(f, survey.Q4, survey.Group) && over(f, survey.Q15, survey.Together)
	}},
	{"시각적 사고형", "그림과 도표로 생각을 나누는 팀입니다.", func(f func(q, v string) float64) bool {
		return over(f, survey.Q2, survey.Visual)
	}},
	{"신속 실행형", "결론을 빠르게 내고 바로 움직이는 팀입니다.", func(f func(q, v string) float64) bool {
		return over(f, survey.Q12, survey.Fast)
	}},
	{"체계적 진행형", "정해진 절차와 구조 속에서 일하는 팀입니다.", func(f func(q, v string) float64) bool {
		return over(f, survey.Q5, survey.Structured)
	}},
}

const (
	balancedStyle       = "균형형"
	balancedDescription = "다양한 성향이 고르게 섞여 있는 팀입니다."
)

var insightRules = []struct {
	question, value  string
	strong, moderate string
}{
	{survey.Q2, survey.Visual,
		"대부분이 시각 자료를 선호합니다. 발표 자료에 도표와 그림을 적극 활용하세요.",
		"시각 자료를 선호하는 구성원이 많습니다. 핵심 내용은 도식으로 정리해 보세요."},
	{survey.Q12, survey.Fast,
		"대부분이 빠른 진행을 원합니다. 회의 시간을 짧게 잡고 결론부터 말하세요.",
		"빠른 진행을 선호하는 구성원이 많습니다. 안건별 시간 제한을 두세요."},
	{survey.Q5, survey.Structured,
		"대부분이 체계적인 진행을 선호합니다. 안건과 순서를 미리 공유하세요.",
		"체계적인 진행을 선호하는 구성원이 많습니다. 회의 구조를 명확히 해 주세요."},
	{survey.Q4, survey.Group,
		"대부분이 그룹 토론을 편하게 여깁니다. 전체 토론 시간을 넉넉히 잡으세요.",
		"그룹 토론을 선호하는 구성원이 많습니다. 소그룹과 전체 토론을 섞어 보세요."},
	{survey.Q15, survey.Together,
		"대부분이 함께 이야기하며 스트레스를 풉니다. 회의 후 가벼운 대화 시간을 마련하세요.",
		"동료와의 대화를 중시하는 구성원이 많습니다. 짧은 체크인으로 회의를 시작해 보세요."},
}

var generalInsights = []string{
	"회의 전에 안건을 공유하면 모두가 준비된 상태로 참여할 수 있습니다.",
	"다양한 소통 방식을 섞어 모든 구성원의 참여를 이끌어 보세요.",
	"회의 후 결정 사항과 담당자를 짧게 정리해 공유하세요.",
}

// SimulateAggregation builds a composite for participantCount respondents
// from the fixed sample patterns, for rooms whose members have not submitted surveys.
func SimulateAggregation(participantCount int) (*SurveyAggregation, error) {
	if participantCount <= 0 {
		return nil, ErrNoRespondents
	}
	answers := make([]survey.AnswerSet, participantCount)
	for i := range answers {
		answers[i] = survey.MustParseChoices(samplePatterns[i%len(samplePatterns)])
	}
	agg, err := AggregateAnswers(answers)
	if err != nil {
		return nil, err
	}
	agg.Simulated = true
	return agg, nil
}

// AggregateAnswers builds a composite from real answer sets. Every set must be complete.
func AggregateAnswers(answers []survey.AnswerSet) (*SurveyAggregation, error) {
	if len(answers) == 0 {
		return nil, ErrNoRespondents
	}

	breakdown := make(map[string]map[string]int, survey.QuestionCount)
	for _, q := range survey.Questions() {
		breakdown[q.ID] = map[string]int{q.Options[0].Value: 0, q.Options[1].Value: 0}
	}
	for i, a := range answers {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("respondent %d: %w", i+1, err)
		}
		for qid, v := range a {
			breakdown[qid][v]++
		}
	}

	n := float64(len(answers))
	frac := func(q, v string) float64 {
		return float64(breakdown[q][v]) / n
	}

	agg := &SurveyAggregation{
		Respondents:   len(answers),
		Breakdown:     breakdown,
		DominantStyle: balancedStyle,
		Profile:       balancedDescription,
	}
	for _, r := range dominantStyleRules {
		if r.match(frac) {
			agg.DominantStyle = r.label
			agg.Profile = r.description
			break
		}
	}
	agg.Insights = insights(len(answers), frac)
	return agg, nil
}

func insights(respondents int, frac func(q, v string) float64) []string {
	out := []string{fmt.Sprintf("%d명의 응답을 바탕으로 분석한 결과입니다.", respondents)}
	for _, r := range insightRules {
		switch f := frac(r.question, r.value); {
		case f > strongInsight:
			out = append(out, r.strong)
		case f > moderateInsight:
			out = append(out, r.moderate)
		}
	}
	for _, g := range generalInsights {
		if len(out) >= minInsights {
			break
		}
		out = append(out, g)
	}
	if len(out) > maxInsights {
		out = out[:maxInsights]
	}
	return out
}
