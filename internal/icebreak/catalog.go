// Package icebreak recommends an icebreaking activity for a team from its
// size and dominant communication styles.
package icebreak

// Activity is one icebreaking template in the catalog
type Activity struct {
	Kind        string   `json:"kind"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Steps       []string `json:"steps"`
}

// Activity kinds, in catalog order
const (
	KindVisual        = "visual"
	KindAnalytical    = "analytical"
	KindCollaborative = "collaborative"
	KindQuick         = "quick"
	KindCreative      = "creative"
	KindProfessional  = "professional"
)

var catalog = []Activity{
	{
		Kind:        KindVisual,
		Title:       "시각적 자기소개",
		Description: "자신을 상징하는 그림이나 이미지 세 개로 자기소개를 합니다.",
		Duration:    "10분",
		Steps:       []string{"각자 3분 동안 그림 또는 이미지를 준비합니다", "한 사람씩 화면에 띄우고 1분씩 설명합니다"},
	},
	{
		Kind:        KindAnalytical,
		Title:       "논리 퍼즐 챌린지",
		Description: "짧은 논리 퍼즐을 함께 풀며 생각하는 방식을 공유합니다.",
		Duration:    "15분",
		Steps:       []string{"진행자가 퍼즐 하나를 제시합니다", "각자 풀이 과정을 간단히 설명합니다"},
	},
	{
		Kind:        KindCollaborative,
		Title:       "공동 스토리 만들기",
		Description: "한 문장씩 이어 붙여 팀만의 이야기를 완성합니다.",
		Duration:    "10분",
		Steps:       []string{"첫 문장을 진행자가 제시합니다", "순서대로 한 문장씩 이어갑니다", "완성된 이야기를 함께 읽습니다"},
	},
	{
		Kind:        KindQuick,
		Title:       "30초 스피드 소개",
		Description: "한 사람당 30초 안에 이름, 역할, 오늘의 기대를 말합니다.",
		Duration:    "5분",
		Steps:       []string{"타이머를 30초로 맞춥니다", "시계 방향으로 돌아가며 소개합니다"},
	},
	{
		Kind:        KindCreative,
		Title:       "만약에 질문 게임",
		Description: "\"만약 ~라면?\" 질문에 각자 자유롭게 답하며 분위기를 풉니다.",
		Duration:    "10분",
		Steps:       []string{"질문 카드를 한 장 뽑습니다", "각자 떠오르는 답을 짧게 공유합니다"},
	},
	{
		Kind:        KindProfessional,
		Title:       "업무 스타일 공유",
		Description: "선호하는 소통 방식과 일하는 리듬을 한 문장으로 공유합니다.",
		Duration:    "10분",
		Steps:       []string{"각자 선호하는 연락 방법과 집중 시간대를 적습니다", "비슷한 사람끼리 묶어 함께 일하는 팁을 정리합니다"},
	},
}

var catalogIndex = func() map[string]int {
	idx := make(map[string]int, len(catalog))
	for i, a := range catalog {
		idx[a.Kind] = i
	}
	return idx
}()

// Catalog returns every activity in catalog order
func Catalog() []Activity {
	out := make([]Activity, len(catalog))
	for i, a := range catalog {
		out[i] = a.clone()
	}
	return out
}

func activity(kind string) Activity {
	return catalog[catalogIndex[kind]].clone()
}

func (a Activity) clone() Activity {
	a.Steps = append([]string(nil), a.Steps...)
	return a
}
