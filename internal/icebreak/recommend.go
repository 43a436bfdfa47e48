package icebreak

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/meeting-mbti/internal/meeting"
)

// ErrInvalidTeamSize is returned for a team size below one
var ErrInvalidTeamSize = errors.New("team size must be at least 1")

// Band is a team-size range
type Band string

const (
	BandSmall  Band = "small"  // up to 3
	BandMedium Band = "medium" // 4 to 6
	BandLarge  Band = "large"  // 7 or more
)

// BandFor returns the band containing size
func BandFor(size int) Band {
	switch {
	case size <= 3:
		return BandSmall
	case size <= 6:
		return BandMedium
	default:
		return BandLarge
	}
}

// Request describes the team an activity is recommended for
type Request struct {
	TeamSize       int                 `json:"team_size"`
	DominantStyles []string            `json:"dominant_styles"`
	MeetingType    meeting.MeetingType `json:"meeting_type,omitempty"`
}

// Recommendation is the selected activity plus alternates and general advice
type Recommendation struct {
	TeamStyle       string     `json:"team_style"`
	Band            Band       `json:"band"`
	PrimaryTip      Activity   `json:"primary_tip"`
	AlternativeTips []Activity `json:"alternative_tips"`
	GeneralAdvice   []string   `json:"general_advice"`
}

type flags struct {
	visual, analytical, collaborative, quick bool
}

func flagsOf(styles []string) flags {
	var f flags
	for _, s := range styles {
		f.visual = f.visual || containsAny(s, "시각")
		f.analytical = f.analytical || containsAny(s, "분석", "체계", "논리")
		f.collaborative = f.collaborative || containsAny(s, "협업", "협력", "소통")
		f.quick = f.quick || containsAny(s, "신속", "빠른")
	}
	return f
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

const maxAlternatives = 2

// Recommend picks the primary activity by team-size band and style flags.
// Each band checks the flags in its own priority order and falls back to an
// activity chosen by meeting type.
func Recommend(req Request) (*Recommendation, error) {
	if req.TeamSize < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTeamSize, req.TeamSize)
	}
	mt := req.MeetingType
	if mt == "" {
		mt = meeting.DefaultMeetingType
	}

	band := BandFor(req.TeamSize)
	f := flagsOf(req.DominantStyles)
	kind := primaryKind(band, f, mt)

	primary := activity(kind)
	rec := &Recommendation{
		TeamStyle:     teamStyle(f),
		Band:          band,
		PrimaryTip:    primary,
		GeneralAdvice: generalAdvice(req.TeamSize, band, f),
	}
	for _, a := range catalog {
		if len(rec.AlternativeTips) == maxAlternatives {
			break
		}
		if a.Title != primary.Title {
			rec.AlternativeTips = append(rec.AlternativeTips, a.clone())
		}
	}
	return rec, nil
}

func primaryKind(band Band, f flags, mt meeting.MeetingType) string {
	switch band {
	case BandSmall:
		switch {
		case f.visual:
			return KindVisual
		case f.analytical:
			return KindAnalytical
		case f.quick:
			return KindQuick
		case f.collaborative:
			return KindCollaborative
		}
	case BandMedium:
		switch {
		case f.collaborative:
			return KindCollaborative
		case f.visual:
			return KindVisual
		case f.analytical:
			return KindAnalytical
		case f.quick:
			return KindQuick
		}
	case BandLarge:
		switch {
		case f.quick:
			return KindQuick
		case f.collaborative:
			return KindCollaborative
		case f.analytical:
			// puzzles do not scale to large groups
			return KindProfessional
		}
	}
	return fallbackKind(band, mt)
}

func fallbackKind(band Band, mt meeting.MeetingType) string {
	switch mt {
	case meeting.Brainstorming:
		return KindCreative
	case meeting.Decision, meeting.Review, meeting.Presentation:
		return KindProfessional
	}
	if band == BandLarge {
		return KindProfessional
	}
	return KindCreative
}

func teamStyle(f flags) string {
	var parts []string
	if f.visual {
		parts = append(parts, "시각형")
	}
	if f.analytical {
		parts = append(parts, "분석형")
	}
	if f.collaborative {
		parts = append(parts, "협업형")
	}
	if f.quick {
		parts = append(parts, "신속형")
	}
	if len(parts) == 0 {
		return "균형형"
	}
	return strings.Join(parts, "·")
}

const maxConditionalAdvice = 3

func generalAdvice(size int, band Band, f flags) []string {
	var out []string
	switch band {
	case BandSmall:
		out = append(out, fmt.Sprintf("%d명의 소규모 팀은 모두가 충분히 말할 수 있도록 시간을 넉넉히 잡으세요.", size))
	case BandMedium:
		out = append(out, fmt.Sprintf("%d명의 중간 규모 팀은 진행자를 정해 발언 순서를 관리하세요.", size))
	default:
		out = append(out, fmt.Sprintf("%d명의 대규모 팀은 활동 시간을 10분 이내로 유지하세요.", size))
	}

	conditional := []struct {
		ok   bool
		text string
	}{
		{band == BandLarge, "인원이 많으면 4-5명 단위의 소그룹으로 나눠 진행하세요."},
		{f.quick, "짧고 빠른 활동으로 시작해 본 안건으로 자연스럽게 넘어가세요."},
		{f.visual, "화면 공유나 화이트보드를 준비해 시각 자료를 활용하세요."},
		{f.analytical, "활동의 목적과 규칙을 먼저 명확히 설명하세요."},
		{f.collaborative, "활동 결과를 팀 전체가 함께 돌아보는 시간을 가지세요."},
	}
	added := 0
	for _, c := range conditional {
		if added == maxConditionalAdvice {
			break
		}
		if c.ok {
			out = append(out, c.text)
			added++
		}
	}
	return out
}
