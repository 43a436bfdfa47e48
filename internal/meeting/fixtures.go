package meeting

var fixtureRooms = map[string][]Participant{
	"주간 팀 회의": {
		{Name: "김민준", Style: "시각적 전략가", Description: "도표로 현황을 정리해 공유합니다"},
		{Name: "이서연", Style: "시각적 소통형", Description: "화면 공유로 아이디어를 설명합니다"},
		{Name: "박지호", Style: "신속 결정형", Description: "안건마다 빠르게 결론을 냅니다"},
		{Name: "최유나", Style: "시각적 신속 실행가", Description: "그림으로 정리하고 바로 실행합니다"},
		{Name: "정도윤", Style: "빠른 시각적 정리형", Description: "짧은 다이어그램으로 요약합니다"},
	},
	"프로젝트 킥오프": {
		{Name: "한지민", Style: "체계적 분석가", Description: "계획과 근거를 꼼꼼히 확인합니다"},
		{Name: "오세훈", Style: "꼼꼼한 구조 설계자", Description: "일정과 의존성을 구조화합니다"},
		{Name: "윤하은", Style: "세부 계획형", Description: "세부 일정을 빠짐없이 챙깁니다"},
		{Name: "장태양", Style: "협업 촉진자", Description: "팀원 간 연결을 돕습니다"},
	},
	"디자인 리뷰": {
		{Name: "서예린", Style: "공감하는 소통가", Description: "사용자 입장에서 의견을 냅니다"},
		{Name: "강현우", Style: "협력적 조율자", Description: "의견 차이를 조율합니다"},
		{Name: "임수아", Style: "시각적 협업가", Description: "시안을 함께 그려가며 논의합니다"},
	},
	"아이디어 브레인스토밍": {
		{Name: "조은호", Style: "시각적 사고형", Description: "마인드맵으로 아이디어를 펼칩니다"},
		{Name: "신채원", Style: "신속 실행형", Description: "아이디어를 바로 시도해 봅니다"},
		{Name: "권민재", Style: "체계적 진행형", Description: "아이디어를 분류하고 정리합니다"},
		{Name: "황보람", Style: "공감형 소통가", Description: "다른 사람의 아이디어를 확장합니다"},
		{Name: "문지후", Style: "자유로운 탐험가", Description: "엉뚱한 질문으로 흐름을 바꿉니다"},
	},
}

// FixtureParticipants returns the seeded participants for a room name.
// Rooms without a fixture start empty.
func FixtureParticipants(roomName string) []Participant {
	ps, ok := fixtureRooms[roomName]
	if !ok {
		return nil
	}
	return append([]Participant(nil), ps...)
}

// FixtureRoomNames lists the room names that have seeded participants
func FixtureRoomNames() []string {
	return []string{"주간 팀 회의", "프로젝트 킥오프", "디자인 리뷰", "아이디어 브레인스토밍"}
}
