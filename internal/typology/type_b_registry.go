package typology

// FallbackTypeB is returned for any Type B code without its own entry
var FallbackTypeB = Entry{
	Code:                    "BAL",
	Name:                    "균형형 소통가",
	Nickname:                "Balanced Communicator",
	Strengths:               []string{"상황 적응력", "다양한 소통 방식 수용"},
	Challenges:              []string{"뚜렷한 선호가 드러나지 않아 역할이 모호할 수 있음"},
	MeetingTips:             "회의 형식을 바꿔가며 가장 편한 방식을 찾아보세요.",
	CollaborationGuide:      "팀의 빈 역할을 유연하게 채워줄 수 있습니다.",
	OptimalMeetingSize:      "3-8명",
	PreferredMeetingLength:  "30-45분",
	CommunicationPreference: "상황에 맞춘 혼합형 채널",
}

var typeBRegistry = map[TypeBCode]Entry{
	"VFT": {
		Code:                    "VFT",
		Name:                    "시각적 실행가",
		Nickname:                "Visual Driver",
		Strengths:               []string{"도식화로 빠른 합의", "목표 중심 진행"},
		Challenges:              []string{"텍스트 위주 자료에 집중력 저하"},
		MeetingTips:             "한 장짜리 다이어그램으로 현황을 보여주고 바로 결정으로 넘어가세요.",
		CollaborationGuide:      "칸반 보드처럼 진행 상황이 한눈에 보이는 도구를 함께 쓰세요.",
		OptimalMeetingSize:      "3-6명",
		PreferredMeetingLength:  "20분",
		CommunicationPreference: "대시보드와 화면 공유",
	},
	"VFP": {
		Code:                    "VFP",
		Name:                    "시각적 분위기 메이커",
		Nickname:                "Visual Connector",
		Strengths:               []string{"그림으로 공감대 형성", "빠른 팀 에너지 전환"},
		Challenges:              []string{"세부 기록을 놓치기 쉬움"},
		MeetingTips:             "화이트보드에 모두의 의견을 그려가며 짧고 활기차게 진행하세요.",
		CollaborationGuide:      "팀 워크숍 퍼실리테이터 역할을 맡겨보세요.",
		OptimalMeetingSize:      "4-8명",
		PreferredMeetingLength:  "30분",
		CommunicationPreference: "화이트보드와 이미지 공유",
	},
	"VDT": {
		Code:                    "VDT",
		Name:                    "시각적 분석가",
		Nickname:                "Visual Analyst",
		Strengths:               []string{"데이터 시각화", "근거 기반 결론"},
		Challenges:              []string{"준비 시간이 부족하면 불안해함"},
		MeetingTips:             "차트와 자료를 미리 공유하고 회의에서는 해석에 집중하세요.",
		CollaborationGuide:      "분석 결과를 시각 자료로 정리하는 역할이 잘 맞습니다.",
		OptimalMeetingSize:      "3-5명",
		PreferredMeetingLength:  "45분",
		CommunicationPreference: "차트가 포함된 문서",
	},
	"VDP": {
		Code:                    "VDP",
		Name:                    "시각적 공감가",
		Nickname:                "Visual Supporter",
		Strengths:               []string{"사람 중심 스토리보드", "세심한 배려"},
		Challenges:              []string{"빠른 결정 압박에 부담을 느낌"},
		MeetingTips:             "여정 지도나 스토리보드로 사람의 관점을 함께 그려보세요.",
		CollaborationGuide:      "사용자 경험 정리와 팀 회고 준비를 맡겨보세요.",
		OptimalMeetingSize:      "3-6명",
		PreferredMeetingLength:  "40분",
		CommunicationPreference: "시각 자료가 있는 1:1 대화",
	},
	"LFT": {
		Code:                    "LFT",
		Name:                    "명쾌한 진행자",
		Nickname:                "Verbal Driver",
		Strengths:               []string{"핵심 요약", "신속한 결론 도출"},
		Challenges:              []string{"말이 빨라 다른 사람이 따라오기 어려울 수 있음"},
		MeetingTips:             "세 줄 요약으로 시작하고 안건별 결론을 말로 확인하세요.",
		CollaborationGuide:      "회의 진행자나 결정 요약 담당으로 세우면 좋습니다.",
		OptimalMeetingSize:      "4-8명",
		PreferredMeetingLength:  "20분",
		CommunicationPreference: "짧은 구두 브리핑",
	},
	"LFP": {
		Code:                    "LFP",
		Name:                    "활발한 대화가",
		Nickname:                "Verbal Energizer",
		Strengths:               []string{"활발한 토론 유도", "관계 형성"},
		Challenges:              []string{"발언 시간을 독점할 수 있음"},
		MeetingTips:             "라운드 로빈으로 발언 순서를 정해 모두의 목소리를 끌어내세요.",
		CollaborationGuide:      "외부 이해관계자와의 소통 창구 역할이 잘 맞습니다.",
		OptimalMeetingSize:      "5-10명",
		PreferredMeetingLength:  "30분",
		CommunicationPreference: "대면 토론과 음성 통화",
	},
	"LDT": {
		Code:                    "LDT",
		Name:                    "논리적 설명가",
		Nickname:                "Verbal Analyst",
		Strengths:               []string{"논리적 문서화", "정확한 설명"},
		Challenges:              []string{"즉흥 토론에서 발언이 늦음"},
		MeetingTips:             "사전 문서를 읽고 오도록 요청하고 질의응답 중심으로 진행하세요.",
		CollaborationGuide:      "설계 문서와 의사결정 기록 작성을 맡겨보세요.",
		OptimalMeetingSize:      "2-5명",
		PreferredMeetingLength:  "45분",
		CommunicationPreference: "잘 정리된 문서와 이메일",
	},
	"LDP": {
		Code:                    "LDP",
		Name:                    "경청하는 이야기꾼",
		Nickname:                "Verbal Listener",
		Strengths:               []string{"깊이 있는 경청", "맥락 있는 설명"},
		Challenges:              []string{"결정을 재촉받으면 위축됨"},
		MeetingTips:             "충분한 토론 시간을 배정하고 각자의 생각을 말로 정리할 기회를 주세요.",
		CollaborationGuide:      "멘토링과 온보딩 역할에서 강점을 발휘합니다.",
		OptimalMeetingSize:      "2-6명",
		PreferredMeetingLength:  "45분",
		CommunicationPreference: "1:1 대화와 긴 호흡의 글",
	},
	"KFT": {
		Code:                    "KFT",
		Name:                    "실험하는 해결사",
		Nickname:                "Hands-on Driver",
		Strengths:               []string{"프로토타입으로 검증", "즉각적 실행"},
		Challenges:              []string{"앉아서 하는 긴 회의를 힘들어함"},
		MeetingTips:             "스탠딩 미팅이나 라이브 데모로 짧게 진행하세요.",
		CollaborationGuide:      "시제품 제작과 빠른 실험을 맡기면 좋습니다.",
		OptimalMeetingSize:      "3-6명",
		PreferredMeetingLength:  "15분",
		CommunicationPreference: "현장 시연과 대면 대화",
	},
	"KFP": {
		Code:                    "KFP",
		Name:                    "행동파 팀플레이어",
		Nickname:                "Hands-on Connector",
		Strengths:               []string{"함께 움직이며 협업", "현장 분위기 주도"},
		Challenges:              []string{"문서 기반 협업에 소극적"},
		MeetingTips:             "포스트잇 워크숍처럼 몸을 움직이는 활동을 섞어 진행하세요.",
		CollaborationGuide:      "팀 행사와 워크숍 운영을 함께 맡겨보세요.",
		OptimalMeetingSize:      "5-10명",
		PreferredMeetingLength:  "30분",
		CommunicationPreference: "대면 워크숍",
	},
	"KDT": {
		Code:                    "KDT",
		Name:                    "꼼꼼한 실무가",
		Nickname:                "Hands-on Analyst",
		Strengths:               []string{"직접 검증한 근거 제시", "체계적 실행"},
		Challenges:              []string{"이론 중심 논의에 흥미를 잃음"},
		MeetingTips:             "실제 작업물을 함께 보며 단계별로 검토하세요.",
		CollaborationGuide:      "테스트와 품질 검증 프로세스를 맡겨보세요.",
		OptimalMeetingSize:      "2-5명",
		PreferredMeetingLength:  "40분",
		CommunicationPreference: "작업물 리뷰와 대면 검토",
	},
	"KDP": {
		Code:                    "KDP",
		Name:                    "함께 만드는 조력자",
		Nickname:                "Hands-on Supporter",
		Strengths:               []string{"동료와 함께 실습", "인내심 있는 지원"},
		Challenges:              []string{"자기 성과를 드러내지 않음"},
		MeetingTips:             "짝을 지어 실습하는 시간을 넣고 결과를 함께 공유하세요.",
		CollaborationGuide:      "페어 작업과 신규 팀원 지원 역할이 잘 맞습니다.",
		OptimalMeetingSize:      "2-6명",
		PreferredMeetingLength:  "45분",
		CommunicationPreference: "페어 작업과 대면 대화",
	},
}
