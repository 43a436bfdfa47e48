package typology

import (
	"fmt"

	"github.com/jonathan/meeting-mbti/internal/survey"
)

// Result is the outcome of classifying one answer set
type Result struct {
	TypeA      TypeACode  `json:"type_a"`
	TypeAEntry Entry      `json:"type_a_entry"`
	TypeB      TypeBScore `json:"type_b"`
	TypeBEntry Entry      `json:"type_b_entry"`
}

// Classify validates the answer set, runs both scorers and resolves both registry entries
func Classify(a survey.AnswerSet) (*Result, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	codeA := ScoreTypeA(a)
	entryA, ok := LookupTypeA(codeA)
	if !ok {
		// All 16 codes are registered; reaching this means the registry was edited incorrectly.
		return nil, fmt.Errorf("type A code %s has no registry entry", codeA)
	}

	scoreB := ScoreTypeB(a)

	return &Result{
		TypeA:      codeA,
		TypeAEntry: entryA,
		TypeB:      scoreB,
		TypeBEntry: LookupTypeB(scoreB.Code),
	}, nil
}
