package typology

var typeARegistry = map[TypeACode]Entry{
	"ESTJ": {
		Code:                    "ESTJ",
		Name:                    "실행형 리더",
		Nickname:                "Efficient Leader",
		Strengths:               []string{"명확한 안건 설정", "시간 관리", "결정 추진력"},
		Challenges:              []string{"다른 의견을 충분히 듣지 못할 수 있음", "유연성 부족"},
		MeetingTips:             "안건과 종료 시간을 먼저 공유하고, 결정 사항과 담당자를 회의 중에 바로 확정하세요.",
		CollaborationGuide:      "역할과 마감일을 분명히 나눠주면 가장 큰 성과를 냅니다. 결론 전에 조용한 팀원의 의견을 한 번 더 물어보세요.",
		OptimalMeetingSize:      "5-8명",
		PreferredMeetingLength:  "30분",
		CommunicationPreference: "간결한 요점 정리와 체크리스트",
	},
	"ESTP": {
		Code:                    "ESTP",
		Name:                    "현장형 해결사",
		Nickname:                "Action Taker",
		Strengths:               []string{"빠른 상황 판단", "현실적인 해결책", "분위기 전환"},
		Challenges:              []string{"장기 계획을 소홀히 할 수 있음", "세부 문서화 부족"},
		MeetingTips:             "실제 사례와 데모 중심으로 진행하고, 논의가 길어지면 바로 실행 가능한 다음 단계를 정하세요.",
		CollaborationGuide:      "즉시 시도해볼 수 있는 과제를 맡기면 추진력이 살아납니다. 회의 후 결정 사항을 짧게 문서로 남기도록 도와주세요.",
		OptimalMeetingSize:      "4-6명",
		PreferredMeetingLength:  "20분",
		CommunicationPreference: "대면 대화와 빠른 메신저 응답",
	},
	"ESFJ": {
		Code:                    "ESFJ",
		Name:                    "배려형 조율자",
		Nickname:                "Harmonizer",
		Strengths:               []string{"팀 분위기 관리", "참여 유도", "꼼꼼한 후속 조치"},
		Challenges:              []string{"갈등을 피하려다 결정이 늦어질 수 있음", "비판적 피드백을 어려워함"},
		MeetingTips:             "회의 시작에 짧은 체크인을 넣고, 모든 참석자가 한 번씩 발언할 수 있도록 순서를 정하세요.",
		CollaborationGuide:      "팀원 간 연결 역할을 맡기면 협업이 매끄러워집니다. 어려운 피드백은 구조화된 양식으로 주고받게 도와주세요.",
		OptimalMeetingSize:      "4-8명",
		PreferredMeetingLength:  "45분",
		CommunicationPreference: "따뜻한 대면 대화",
	},
	"ESFP": {
		Code:                    "ESFP",
		Name:                    "분위기 메이커",
		Nickname:                "Energizer",
		Strengths:               []string{"에너지 전달", "즉흥적 아이디어", "친화력"},
		Challenges:              []string{"주제에서 벗어나기 쉬움", "마감 관리 부족"},
		MeetingTips:             "아이스브레이킹과 시각 자료로 시작하고, 안건별로 타이머를 두어 흐름을 유지하세요.",
		CollaborationGuide:      "사람을 모으고 동기를 부여하는 역할이 잘 맞습니다. 일정과 세부 사항은 체계적인 동료와 짝을 지어주세요.",
		OptimalMeetingSize:      "6-10명",
		PreferredMeetingLength:  "30분",
		CommunicationPreference: "활발한 대면 토론",
	},
	"ENTJ": {
		Code:                    "ENTJ",
		Name:                    "전략형 지휘관",
		Nickname:                "Commander",
		Strengths:               []string{"비전 제시", "논리적 설득", "빠른 의사결정"},
		Challenges:              []string{"다른 사람의 속도를 기다리기 어려움", "감정적 신호를 놓칠 수 있음"},
		MeetingTips:             "목표와 기대 결과를 처음에 제시하고, 반대 의견을 위한 시간을 안건에 명시적으로 배정하세요.",
		CollaborationGuide:      "큰 방향을 설정하는 역할에서 빛납니다. 실행 세부는 팀원에게 위임하고 중간 점검 일정을 정해두세요.",
		OptimalMeetingSize:      "4-7명",
		PreferredMeetingLength:  "30분",
		CommunicationPreference: "논리적인 구두 브리핑",
	},
	"ENTP": {
		Code:                    "ENTP",
		Name:                    "아이디어 발명가",
		Nickname:                "Innovator",
		Strengths:               []string{"창의적 발상", "토론 활성화", "새로운 관점 제시"},
		Challenges:              []string{"결론 없이 논쟁이 길어질 수 있음", "후속 실행 약함"},
		MeetingTips:             "발산과 수렴 단계를 나누고, 마지막 10분은 반드시 결정과 담당자 지정에 사용하세요.",
		CollaborationGuide:      "브레인스토밍과 문제 재정의에 참여시키세요. 실행 단계에서는 명확한 체크포인트를 함께 정해주세요.",
		OptimalMeetingSize:      "3-6명",
		PreferredMeetingLength:  "45분",
		CommunicationPreference: "자유로운 토론과 화이트보드",
	},
	"ENFJ": {
		Code:                    "ENFJ",
		Name:                    "공감형 리더",
		Nickname:                "Mentor",
		Strengths:               []string{"팀원 동기 부여", "공감적 경청", "합의 도출"},
		Challenges:              []string{"모두를 만족시키려다 지칠 수 있음", "어려운 결정을 미룸"},
		MeetingTips:             "회의 목적을 팀의 가치와 연결해 설명하고, 결정 기준을 미리 합의해 감정 소모를 줄이세요.",
		CollaborationGuide:      "팀 빌딩과 코칭 역할이 잘 맞습니다. 우선순위 결정은 데이터 중심 동료와 함께 하도록 권하세요.",
		OptimalMeetingSize:      "5-8명",
		PreferredMeetingLength:  "45분",
		CommunicationPreference: "따뜻하고 열린 대화",
	},
	"ENFP": {
		Code:                    "ENFP",
		Name:                    "열정적 탐험가",
		Nickname:                "Inspirer",
		Strengths:               []string{"열정 전파", "가능성 발견", "사람 연결"},
		Challenges:              []string{"여러 일을 동시에 벌임", "세부 마무리 부족"},
		MeetingTips:             "시각적 마인드맵으로 아이디어를 모으고, 회의 끝에 우선순위 세 가지만 고르세요.",
		CollaborationGuide:      "새 프로젝트의 시작 단계에 참여시키면 좋습니다. 진행 상황을 공유하는 짧은 정기 체크인을 만들어 주세요.",
		OptimalMeetingSize:      "4-8명",
		PreferredMeetingLength:  "40분",
		CommunicationPreference: "자유로운 대면 대화와 이모지 가득한 메신저",
	},
	"ISTJ": {
		Code:                    "ISTJ",
		Name:                    "신뢰형 관리자",
		Nickname:                "Inspector",
		Strengths:               []string{"정확성", "책임감", "절차 준수"},
		Challenges:              []string{"갑작스러운 변경에 스트레스를 받음", "아이디어 발산 단계에서 소극적"},
		MeetingTips:             "안건과 자료를 하루 전에 공유하고, 결정 사항을 문서로 정리해 회의 직후 배포하세요.",
		CollaborationGuide:      "품질 검토와 일정 관리 역할을 맡기세요. 변경 사항은 이유와 함께 미리 알려주세요.",
		OptimalMeetingSize:      "3-5명",
		PreferredMeetingLength:  "30분",
		CommunicationPreference: "정리된 문서와 이메일",
	},
	"ISTP": {
		Code:                    "ISTP",
		Name:                    "분석형 장인",
		Nickname:                "Craftsman",
		Strengths:               []string{"문제 원인 분석", "실용적 해결", "침착함"},
		Challenges:              []string{"생각을 공유하지 않고 혼자 해결하려 함", "긴 회의에 집중력 저하"},
		MeetingTips:             "구체적인 문제 상황을 먼저 보여주고, 발언을 요청할 때는 미리 질문을 전달하세요.",
		CollaborationGuide:      "기술적 난제 해결을 맡기면 강점을 발휘합니다. 진행 상황을 짧게 공유하는 습관을 함께 만들어 주세요.",
		OptimalMeetingSize:      "2-4명",
		PreferredMeetingLength:  "20분",
		CommunicationPreference: "짧고 구체적인 메신저",
	},
	"ISFJ": {
		Code:                    "ISFJ",
		Name:                    "헌신형 지원자",
		Nickname:                "Protector",
		Strengths:               []string{"세심한 배려", "안정적인 실행", "기록 관리"},
		Challenges:              []string{"자기 의견을 드러내지 않음", "과도한 업무를 떠안음"},
		MeetingTips:             "사전에 의견을 서면으로 받을 수 있게 하고, 회의 중에는 직접 이름을 불러 의견을 물어보세요.",
		CollaborationGuide:      "팀의 안정성을 지키는 역할이 잘 맞습니다. 업무량을 정기적으로 확인하고 기여를 공개적으로 인정해 주세요.",
		OptimalMeetingSize:      "3-6명",
		PreferredMeetingLength:  "30분",
		CommunicationPreference: "1:1 대화와 정중한 메시지",
	},
	"ISFP": {
		Code:                    "ISFP",
		Name:                    "조용한 예술가",
		Nickname:                "Composer",
		Strengths:               []string{"섬세한 감수성", "유연한 협조", "창의적 표현"},
		Challenges:              []string{"갈등 상황에서 침묵함", "큰 그룹에서 발언이 적음"},
		MeetingTips:             "소그룹 토의나 익명 의견 수집 도구를 활용하고, 시각 자료로 아이디어를 표현할 기회를 주세요.",
		CollaborationGuide:      "디자인과 사용자 경험처럼 감각이 필요한 일에 참여시키세요. 피드백은 부드럽고 구체적으로 전달하세요.",
		OptimalMeetingSize:      "2-5명",
		PreferredMeetingLength:  "30분",
		CommunicationPreference: "비동기 메시지와 시각 자료",
	},
	"INTJ": {
		Code:                    "INTJ",
		Name:                    "전략형 설계자",
		Nickname:                "Architect",
		Strengths:               []string{"장기 전략 수립", "체계적 분석", "독립적 문제 해결"},
		Challenges:              []string{"비효율적인 회의를 견디기 어려움", "설명 없이 결론만 전달함"},
		MeetingTips:             "사전 자료로 배경을 충분히 공유하고, 회의에서는 핵심 쟁점과 결정에만 집중하세요.",
		CollaborationGuide:      "아키텍처와 로드맵 설계를 맡기세요. 결론에 이른 과정을 팀에 공유하도록 요청하면 신뢰가 쌓입니다.",
		OptimalMeetingSize:      "2-5명",
		PreferredMeetingLength:  "30분",
		CommunicationPreference: "잘 정리된 문서와 깊이 있는 1:1 논의",
	},
	"INTP": {
		Code:                    "INTP",
		Name:                    "논리적 사색가",
		Nickname:                "Thinker",
		Strengths:               []string{"깊이 있는 분석", "논리적 오류 발견", "독창적 해결책"},
		Challenges:              []string{"결정을 미루고 분석을 계속함", "실행 일정 관리 부족"},
		MeetingTips:             "질문을 미리 공유해 생각할 시간을 주고, 분석 결과를 결정으로 연결할 마감 시간을 정하세요.",
		CollaborationGuide:      "복잡한 문제 정의와 검증 역할이 잘 맞습니다. 중간 결과물을 자주 공유하도록 짧은 주기를 설정하세요.",
		OptimalMeetingSize:      "2-4명",
		PreferredMeetingLength:  "45분",
		CommunicationPreference: "비동기 문서 토론",
	},
	"INFJ": {
		Code:                    "INFJ",
		Name:                    "통찰형 조언자",
		Nickname:                "Counselor",
		Strengths:               []string{"깊은 통찰", "의미 부여", "갈등 중재"},
		Challenges:              []string{"에너지 소모가 큰 회의를 힘들어함", "완벽주의"},
		MeetingTips:             "회의의 목적과 의미를 분명히 하고, 깊이 있는 논의를 위해 참석 인원을 줄이세요.",
		CollaborationGuide:      "비전 정리와 팀 문화 형성에 참여시키세요. 혼자 생각을 정리할 시간을 일정에 포함해 주세요.",
		OptimalMeetingSize:      "2-5명",
		PreferredMeetingLength:  "40분",
		CommunicationPreference: "1:1 대화와 사려 깊은 글",
	},
	"INFP": {
		Code:                    "INFP",
		Name:                    "이상주의 중재자",
		Nickname:                "Mediator",
		Strengths:               []string{"가치 중심 사고", "공감 능력", "창의적 글쓰기"},
		Challenges:              []string{"비판을 개인적으로 받아들임", "우선순위 결정을 어려워함"},
		MeetingTips:             "안전한 분위기를 먼저 만들고, 의견을 글로 먼저 모은 뒤 토론으로 넘어가세요.",
		CollaborationGuide:      "사용자 관점과 팀 가치를 대변하는 역할이 잘 맞습니다. 피드백은 강점부터 구체적으로 전달하세요.",
		OptimalMeetingSize:      "2-5명",
		PreferredMeetingLength:  "30분",
		CommunicationPreference: "비동기 글과 1:1 대화",
	},
}
