package typology

import (
	"sort"

	"github.com/jonathan/meeting-mbti/internal/survey"
)

// TypeACode is a four-letter code, one letter per binary axis
type TypeACode string

// ScoreTypeA derives the four-letter code from a validated answer set.
// Every axis is a single OR over two answers, so the result is always total.
func ScoreTypeA(a survey.AnswerSet) TypeACode {
	code := make([]byte, 0, 4)

	if a.Is(survey.Q4, survey.Group) || a.Is(survey.Q7, survey.Energetic) {
		code = append(code, 'E')
	} else {
		code = append(code, 'I')
	}

	if a.Is(survey.Q11, survey.Practical) || a.Is(survey.Q14, survey.Cautious) {
		code = append(code, 'S')
	} else {
		code = append(code, 'N')
	}

	if a.Is(survey.Q6, survey.Logical) || a.Is(survey.Q9, survey.Direct) {
		code = append(code, 'T')
	} else {
		code = append(code, 'F')
	}

	if a.Is(survey.Q5, survey.Structured) || a.Is(survey.Q8, survey.Proactive) {
		code = append(code, 'J')
	} else {
		code = append(code, 'P')
	}

	return TypeACode(code)
}

// LookupTypeA returns the registry entry for code
func LookupTypeA(code TypeACode) (Entry, bool) {
	e, ok := typeARegistry[code]
	if !ok {
		return Entry{}, false
	}
	return e.clone(), true
}

// TypeACodes returns all registered Type A codes in sorted order
func TypeACodes() []TypeACode {
	codes := make([]TypeACode, 0, len(typeARegistry))
	for c := range typeARegistry {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
