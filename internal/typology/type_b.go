package typology

import (
	"sort"

	"github.com/jonathan/meeting-mbti/internal/survey"
)

// TypeBCode is a three-letter code: channel, pace, focus
type TypeBCode string

// Type B axis labels
const (
	Kinesthetic = "KINESTHETIC"
	Verbal      = "VERBAL"
	Visual      = "VISUAL"

	Fast       = "FAST"
	Deliberate = "DELIBERATE"
	Balanced   = "BALANCED"

	Task   = "TASK"
	People = "PEOPLE"
	Idea   = "IDEA"
)

var labelLetters = map[string]byte{
	Kinesthetic: 'K',
	Verbal:      'L',
	Visual:      'V',
	Fast:        'F',
	Deliberate:  'D',
	Balanced:    'B',
	Task:        'T',
	People:      'P',
	Idea:        'I',
}

// AxisScore is the tally for one Type B axis. Labels and Scores are listed in
// tie-break precedence order; Winner is the selected label.
type AxisScore struct {
	Axis   string    `json:"axis"`
	Labels [3]string `json:"labels"`
	Scores [3]int    `json:"scores"`
	Winner string    `json:"winner"`
}

// TypeBScore carries the code and the per-axis tallies that produced it
type TypeBScore struct {
	Code TypeBCode    `json:"code"`
	Axes [3]AxisScore `json:"axes"`
}

func point(a survey.AnswerSet, questionID, value string, weight int) int {
	if a.Is(questionID, value) {
		return weight
	}
	return 0
}

// pick applies the >= chain: the first label wins unless beaten by either other,
// then the second wins unless strictly beaten by the third.
func pick(axis string, labels [3]string, scores [3]int) AxisScore {
	winner := labels[2]
	switch {
	case scores[0] >= scores[1] && scores[0] >= scores[2]:
		winner = labels[0]
	case scores[1] >= scores[2]:
		winner = labels[1]
	}
	return AxisScore{Axis: axis, Labels: labels, Scores: scores, Winner: winner}
}

// ScoreTypeB derives the three-letter code from a validated answer set.
//
// Channel prefers KINESTHETIC over VERBAL over VISUAL, pace prefers FAST over
// DELIBERATE over BALANCED and focus prefers TASK over PEOPLE over IDEA. BALANCED
// and IDEA can reach at most the score that one of their rivals always reaches,
// so they never win and only 12 codes are produced.
func ScoreTypeB(a survey.AnswerSet) TypeBScore {
	channel := pick("channel",
		[3]string{Kinesthetic, Verbal, Visual},
		[3]int{
			point(a, survey.Q10, survey.HandsOn, 2) + point(a, survey.Q13, survey.FaceToFace, 1),
			point(a, survey.Q2, survey.Verbal, 2) + point(a, survey.Q3, survey.Talking, 1),
			point(a, survey.Q2, survey.Visual, 2) + point(a, survey.Q3, survey.Drawing, 1),
		})

	pace := pick("pace",
		[3]string{Fast, Deliberate, Balanced},
		[3]int{
			point(a, survey.Q12, survey.Fast, 2) + point(a, survey.Q8, survey.Proactive, 1),
			point(a, survey.Q12, survey.Thorough, 2) + point(a, survey.Q1, survey.Prepared, 1),
			point(a, survey.Q1, survey.Spontaneous, 1) + point(a, survey.Q14, survey.Adventurous, 1),
		})

	focus := pick("focus",
		[3]string{Task, People, Idea},
		[3]int{
			point(a, survey.Q6, survey.Logical, 2) + point(a, survey.Q5, survey.Structured, 1),
			point(a, survey.Q6, survey.Emotional, 2) + point(a, survey.Q15, survey.Together, 1),
			point(a, survey.Q11, survey.Imaginative, 1) + point(a, survey.Q14, survey.Adventurous, 1),
		})

	code := []byte{
		labelLetters[channel.Winner],
		labelLetters[pace.Winner],
		labelLetters[focus.Winner],
	}
	return TypeBScore{
		Code: TypeBCode(code),
		Axes: [3]AxisScore{channel, pace, focus},
	}
}

// LookupTypeB returns the registry entry for code, or FallbackTypeB when the
// code has no entry. It always resolves.
func LookupTypeB(code TypeBCode) Entry {
	if e, ok := typeBRegistry[code]; ok {
		return e.clone()
	}
	return FallbackTypeB.clone()
}

// HasTypeB reports whether code has its own registry entry
func HasTypeB(code TypeBCode) bool {
	_, ok := typeBRegistry[code]
	return ok
}

// TypeBCodes returns all registered Type B codes in sorted order
func TypeBCodes() []TypeBCode {
	codes := make([]TypeBCode, 0, len(typeBRegistry))
	for c := range typeBRegistry {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
