// Package survey defines the fixed communication-style questionnaire and the answer sets submitted against it.
package survey

// Option is one of the two choices of a question
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Question is a fixed-choice survey question with exactly two options
type Question struct {
	ID      string    `json:"id"`
	Prompt  string    `json:"prompt"`
	Options [2]Option `json:"options"`
}

// Question ids
const (
	Q1  = "q1"
	Q2  = "q2"
	Q3  = "q3"
	Q4  = "q4"
	Q5  = "q5"
	Q6  = "q6"
	Q7  = "q7"
	Q8  = "q8"
	Q9  = "q9"
	Q10 = "q10"
	Q11 = "q11"
	Q12 = "q12"
	Q13 = "q13"
	Q14 = "q14"
	Q15 = "q15"
)

// Option values. Each pair belongs to the question noted beside it.
const (
	Prepared    = "prepared"    // q1
	Spontaneous = "spontaneous" // q1
	Visual      = "visual"      // q2
	Verbal      = "verbal"      // q2
	Drawing     = "drawing"     // q3
	Talking     = "talking"     // q3
	Group       = "group"       // q4
	OneOnOne    = "oneOnOne"    // q4
	Structured  = "structured"  // q5
	Flexible    = "flexible"    // q5
	Logical     = "logical"     // q6
	Emotional   = "emotional"   // q6
	Energetic   = "energetic"   // q7
	Calm        = "calm"        // q7
	Proactive   = "proactive"   // q8
	Reactive    = "reactive"    // q8
	Direct      = "direct"      // q9
	Gentle      = "gentle"      // q9
	HandsOn     = "handsOn"     // q10
	Reading     = "reading"     // q10
	Practical   = "practical"   // q11
	Imaginative = "imaginative" // q11
	Fast        = "fast"        // q12
	Thorough    = "thorough"    // q12
	Chat        = "chat"        // q13
	FaceToFace  = "faceToFace"  // q13
	Cautious    = "cautious"    // q14
	Adventurous = "adventurous" // q14
	Alone       = "alone"       // q15
	Together    = "together"    // q15
)

var questions = []Question{
	{ID: Q1, Prompt: "회의 전에 나는…", Options: [2]Option{
		{Value: Prepared, Label: "자료를 미리 검토하고 준비한다"},
		{Value: Spontaneous, Label: "현장에서 흐름에 맞춰 대응한다"},
	}},
	{ID: Q2, Prompt: "새로운 정보를 받아들일 때 나는…", Options: [2]Option{
		{Value: Visual, Label: "도표나 그림으로 볼 때 잘 이해된다"},
		{Value: Verbal, Label: "말이나 글로 설명을 들을 때 잘 이해된다"},
	}},
	{ID: Q3, Prompt: "아이디어를 전달할 때 나는…", Options: [2]Option{
		{Value: Drawing, Label: "화이트보드에 그려가며 설명한다"},
		{Value: Talking, Label: "말로 차근차근 풀어 설명한다"},
	}},
	{ID: Q4, Prompt: "내가 더 편안한 회의 형태는…", Options: [2]Option{
		{Value: Group, Label: "여러 사람이 함께하는 그룹 회의"},
		{Value: OneOnOne, Label: "소수 또는 1:1 대화"},
	}},
	{ID: Q5, Prompt: "업무를 진행할 때 나는…", Options: [2]Option{
		{Value: Structured, Label: "계획과 절차를 세우고 따른다"},
		{Value: Flexible, Label: "상황에 따라 유연하게 조정한다"},
	}},
	{ID: Q6, Prompt: "결정을 내릴 때 더 중요하게 보는 것은…", Options: [2]Option{
		{Value: Logical, Label: "논리와 데이터"},
		{Value: Emotional, Label: "사람들의 감정과 관계"},
	}},
	{ID: Q7, Prompt: "내가 선호하는 회의 분위기는…", Options: [2]Option{
		{Value: Energetic, Label: "활기차고 에너지 넘치는 분위기"},
		{Value: Calm, Label: "차분하고 집중된 분위기"},
	}},
	{ID: Q8, Prompt: "문제가 생기면 나는…", Options: [2]Option{
		{Value: Proactive, Label: "먼저 나서서 해결책을 제안한다"},
		{Value: Reactive, Label: "상황을 지켜본 뒤 대응한다"},
	}},
	{ID: Q9, Prompt: "동료에게 피드백을 줄 때 나는…", Options: [2]Option{
		{Value: Direct, Label: "핵심을 솔직하고 직접적으로 말한다"},
		{Value: Gentle, Label: "상대의 기분을 살피며 부드럽게 말한다"},
	}},
	{ID: Q10, Prompt: "새로운 것을 배울 때 나는…", Options: [2]Option{
		{Value: HandsOn, Label: "직접 해보면서 익힌다"},
		{Value: Reading, Label: "문서와 자료를 먼저 읽는다"},
	}},
	{ID: Q11, Prompt: "문제를 바라볼 때 나는…", Options: [2]Option{
		{Value: Practical, Label: "현실적이고 구체적인 부분을 본다"},
		{Value: Imaginative, Label: "가능성과 큰 그림을 본다"},
	}},
	{ID: Q12, Prompt: "회의 진행 속도는…", Options: [2]Option{
		{Value: Fast, Label: "빠르게 결론을 내는 편이 좋다"},
		{Value: Thorough, Label: "충분히 논의하는 편이 좋다"},
	}},
	{ID: Q13, Prompt: "협업할 때 선호하는 채널은…", Options: [2]Option{
		{Value: Chat, Label: "메신저나 문서 코멘트"},
		{Value: FaceToFace, Label: "대면 또는 화상 대화"},
	}},
	{ID: Q14, Prompt: "새로운 시도에 대해 나는…", Options: [2]Option{
		{Value: Cautious, Label: "위험을 충분히 검토한 뒤 신중하게 움직인다"},
		{Value: Adventurous, Label: "일단 시도해보고 배운다"},
	}},
	{ID: Q15, Prompt: "스트레스를 받을 때 나는…", Options: [2]Option{
		{Value: Alone, Label: "혼자만의 시간으로 회복한다"},
		{Value: Together, Label: "동료와 이야기하며 푼다"},
	}},
}

var questionIndex = func() map[string]int {
	idx := make(map[string]int, len(questions))
	for i, q := range questions {
		idx[q.ID] = i
	}
	return idx
}()

// QuestionCount is the number of questions in the questionnaire
const QuestionCount = 15

// Questions returns the questionnaire in its fixed order.
// The returned slice is a copy; callers may modify it freely.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// QuestionByID returns the question with the given id
func QuestionByID(id string) (Question, bool) {
	i, ok := questionIndex[id]
	if !ok {
		return Question{}, false
	}
	return questions[i], true
}

// HasOption reports whether value is one of the question's two option values
func (q Question) HasOption(value string) bool {
	return q.Options[0].Value == value || q.Options[1].Value == value
}
