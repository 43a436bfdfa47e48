package profile

import "github.com/jonathan/meeting-mbti/internal/survey"

// trait is a single binary branch on one answer: whenA is chosen when the
// question was answered with value, otherwise whenB.
type trait struct {
	question string
	value    string
	whenA    string
	whenB    string
}

func (t trait) pick(a survey.AnswerSet) string {
	if a.Is(t.question, t.value) {
		return t.whenA
	}
	return t.whenB
}

var (
	emotionalStyle = trait{
		question: survey.Q7, value: survey.Energetic,
		whenA: "감정을 밖으로 드러내며 분위기를 끌어올리는 표현형",
		whenB: "감정을 차분히 정리한 뒤 전달하는 안정형",
	}
	stressManagement = trait{
		question: survey.Q15, value: survey.Alone,
		whenA: "혼자만의 시간으로 생각을 정리하며 회복합니다",
		whenB: "동료와 대화를 나누며 스트레스를 해소합니다",
	}
	feedbackStyle = trait{
		question: survey.Q9, value: survey.Direct,
		whenA: "핵심을 바로 짚는 직설적인 피드백을 선호합니다",
		whenB: "맥락과 배려가 담긴 부드러운 피드백을 선호합니다",
	}
	conflictResolution = trait{
		question: survey.Q6, value: survey.Logical,
		whenA: "사실과 데이터를 근거로 갈등을 정리합니다",
		whenB: "관계와 감정을 먼저 살피며 합의점을 찾습니다",
	}
	problemSolving = trait{
		question: survey.Q8, value: survey.Proactive,
		whenA: "먼저 나서서 해결책을 제안하고 실행합니다",
		whenB: "상황을 충분히 관찰한 뒤 신중하게 대응합니다",
	}
	workStyle = trait{
		question: survey.Q5, value: survey.Structured,
		whenA: "계획과 절차를 세워 단계적으로 일합니다",
		whenB: "변화에 맞춰 유연하게 방향을 조정합니다",
	}
	riskProfile = trait{
		question: survey.Q14, value: survey.Cautious,
		whenA: "위험을 충분히 검토한 뒤 움직이는 신중형",
		whenB: "일단 시도하고 배우는 도전형",
	}
	learningPreference = trait{
		question: survey.Q10, value: survey.HandsOn,
		whenA: "직접 해보며 익히는 실습형 학습",
		whenB: "문서와 자료를 먼저 읽는 탐구형 학습",
	}
)
