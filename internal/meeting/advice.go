package meeting

import "strings"

// Bucket is a coarse style tendency detected from a participant's style label
type Bucket string

const (
	BucketVisual        Bucket = "visual"
	BucketQuick         Bucket = "quick"
	BucketDetail        Bucket = "detail"
	BucketCollaborative Bucket = "collaborative"
	BucketStructured    Bucket = "structured"
)

const (
	dominantThreshold = 0.5
	mixedThreshold    = 0.6
)

var bucketKeywords = []struct {
	bucket   Bucket
	keywords []string
}{
	{BucketVisual, []string{"시각", "그림", "도표", "visual"}},
	{BucketQuick, []string{"신속", "빠른", "즉각", "quick"}},
	{BucketDetail, []string{"세부", "꼼꼼", "분석", "detail"}},
	{BucketCollaborative, []string{"협업", "협력", "소통", "공감", "collaborat"}},
	{BucketStructured, []string{"체계", "구조", "계획", "structured"}},
}

// BucketsOf returns every bucket whose keywords occur in style
func BucketsOf(style string) []Bucket {
	lower := strings.ToLower(style)
	var out []Bucket
	for _, bk := range bucketKeywords {
		for _, kw := range bk.keywords {
			if strings.Contains(lower, kw) {
				out = append(out, bk.bucket)
				break
			}
		}
	}
	return out
}

// Composition is the share of participants falling into each bucket
type Composition struct {
	Participants int                `json:"participants"`
	Fractions    map[Bucket]float64 `json:"fractions"`
	Dominant     map[Bucket]bool    `json:"dominant"`
	Mixed        bool               `json:"mixed"`
}

// Analyze buckets each style and computes fractions over all participants,
// including those that match no bucket.
func Analyze(styles []string) (*Composition, error) {
	if len(styles) == 0 {
		return nil, ErrNoParticipants
	}

	counts := make(map[Bucket]int, len(bucketKeywords))
	for _, s := range styles {
		for _, b := range BucketsOf(s) {
			counts[b]++
		}
	}

	c := &Composition{
		Participants: len(styles),
		Fractions:    make(map[Bucket]float64, len(bucketKeywords)),
		Dominant:     make(map[Bucket]bool, len(bucketKeywords)),
	}
	largest := 0.0
	for _, bk := range bucketKeywords {
		f := float64(counts[bk.bucket]) / float64(len(styles))
		c.Fractions[bk.bucket] = f
		if f > dominantThreshold {
			c.Dominant[bk.bucket] = true
		}
		if f > largest {
			largest = f
		}
	}
	c.Mixed = largest < mixedThreshold
	return c, nil
}

// Advice is the meeting guidance for a room
type Advice struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Tips        []string    `json:"tips"`
	Warnings    []string    `json:"warnings"`
	MeetingType MeetingType `json:"meeting_type"`
}

type adviceTemplate struct {
	title       string
	description string
	tips        []string
	warnings    []string
}

var (
	mixedTemplate = adviceTemplate{
		title:       "다양성 조화형",
		description: "뚜렷한 다수 성향 없이 여러 스타일이 섞여 있는 팀입니다.",
		tips:        []string{"회의 초반에 진행 방식을 합의하세요", "시각 자료와 구두 설명을 함께 준비하세요"},
		warnings:    []string{"한 가지 방식만 고집하면 일부 구성원이 소외될 수 있습니다"},
	}
	visualQuickTemplate = adviceTemplate{
		title:       "시각적 신속 실행형",
		description: "시각 자료를 선호하고 빠른 결정을 원하는 구성원이 다수입니다.",
		tips:        []string{"한 장짜리 요약 다이어그램으로 시작하세요", "안건마다 시간 제한을 두세요"},
		warnings:    []string{"속도를 내다 세부 검토를 놓치지 않도록 주의하세요"},
	}
	detailStructuredTemplate = adviceTemplate{
		title:       "체계적 분석형",
		description: "세부 사항을 꼼꼼히 살피고 구조화된 진행을 선호하는 팀입니다.",
		tips:        []string{"안건과 자료를 하루 전에 공유하세요", "결정 기준을 미리 정리해 두세요"},
		warnings:    []string{"분석이 길어져 결론이 늦어지지 않도록 마감을 정하세요"},
	}
	collaborativeTemplate = adviceTemplate{
		title:       "협력적 소통형",
		description: "함께 대화하며 공감대를 형성하는 것을 중시하는 팀입니다.",
		tips:        []string{"모두가 한 번씩 발언하는 라운드를 넣으세요", "소그룹 토의 후 전체 공유로 진행하세요"},
		warnings:    []string{"합의에 집중하다 결정이 미뤄지지 않도록 주의하세요"},
	}
	visualTemplate = adviceTemplate{
		title:       "시각적 사고형",
		description: "그림과 도표로 생각을 정리하는 구성원이 다수입니다.",
		tips:        []string{"화이트보드나 공유 화면을 적극 활용하세요", "논의 내용을 실시간으로 도식화하세요"},
		warnings:    []string{"텍스트 위주 자료는 집중도를 떨어뜨릴 수 있습니다"},
	}
	quickTemplate = adviceTemplate{
		title:       "신속 실행형",
		description: "빠르게 결론을 내고 실행으로 옮기는 것을 선호하는 팀입니다.",
		tips:        []string{"회의 시간을 짧게 잡고 결론부터 공유하세요", "실행 담당자와 기한을 즉시 정하세요"},
		warnings:    []string{"충분한 의견 수렴 없이 결정되지 않도록 확인하세요"},
	}
	detailOrStructuredTemplate = adviceTemplate{
		title:       "신중 검토형",
		description: "세부 검토나 체계적인 진행을 중시하는 구성원이 다수입니다.",
		tips:        []string{"체크리스트 기반으로 안건을 검토하세요", "회의록에 결정 근거를 남기세요"},
		warnings:    []string{"절차에 얽매여 새로운 아이디어가 묻히지 않도록 하세요"},
	}
	balancedTemplate = adviceTemplate{
		title:       "균형 잡힌 팀",
		description: "특정 성향에 치우치지 않은 균형 잡힌 팀입니다.",
		tips:        []string{"기본 안건 구조를 유지하며 자유롭게 진행하세요"},
		warnings:    []string{"역할 분담이 모호해지지 않도록 진행자를 정하세요"},
	}
)

var meetingTypeNotes = map[MeetingType]struct{ tip, warning string }{
	Presentation:  {"발표 자료는 핵심 메시지 세 가지로 압축하세요", "질의응답 시간이 부족하지 않도록 배분하세요"},
	Collaboration: {"공동 작업 문서를 회의 중에 함께 편집하세요", "작업 범위와 담당자를 끝에 다시 확인하세요"},
	Brainstorming: {"아이디어를 평가하기 전에 충분히 발산하는 시간을 두세요", "초반 비판은 아이디어 흐름을 끊을 수 있습니다"},
	Decision:      {"결정 옵션과 기준을 표로 정리해 보여주세요", "결정 후 반대 의견이 정리되었는지 확인하세요"},
	Review:        {"검토 항목을 미리 공유하고 순서대로 진행하세요", "개인 비판이 아닌 결과물에 집중하세요"},
	Kickoff:       {"목표와 역할을 첫 10분 안에 공유하세요", "기대치가 다른 채로 시작하지 않도록 질문 시간을 두세요"},
}

func selectTemplate(c *Composition) adviceTemplate {
	d := c.Dominant
	switch {
	case c.Mixed:
		return mixedTemplate
	case d[BucketVisual] && d[BucketQuick]:
		return visualQuickTemplate
	case d[BucketDetail] && d[BucketStructured]:
		return detailStructuredTemplate
	case d[BucketCollaborative]:
		return collaborativeTemplate
	case d[BucketVisual]:
		return visualTemplate
	case d[BucketQuick]:
		return quickTemplate
	case d[BucketDetail] || d[BucketStructured]:
		return detailOrStructuredTemplate
	default:
		return balancedTemplate
	}
}

// GenerateAdvice selects the advice template for the participants' styles and
// extends it with the meeting type's note. An empty meeting type uses DefaultMeetingType.
func GenerateAdvice(styles []string, mt MeetingType) (*Advice, error) {
	c, err := Analyze(styles)
	if err != nil {
		return nil, err
	}
	return adviceFor(c, mt), nil
}

func adviceFor(c *Composition, mt MeetingType) *Advice {
	if mt == "" {
		mt = DefaultMeetingType
	}
	tpl := selectTemplate(c)

	a := &Advice{
		Title:       tpl.title,
		Description: tpl.description,
		Tips:        append([]string(nil), tpl.tips...),
		Warnings:    append([]string(nil), tpl.warnings...),
		MeetingType: mt,
	}
	if note, ok := meetingTypeNotes[mt]; ok {
		a.Tips = append(a.Tips, note.tip)
		a.Warnings = append(a.Warnings, note.warning)
	}
	return a
}
