package survey

import (
	"sort"
)

// AnswerSet maps a question id to the chosen option value.
// A set is only meaningful for classification once Validate returns nil.
type AnswerSet map[string]string

// Is reports whether the answer to questionID equals value
func (a AnswerSet) Is(questionID, value string) bool {
	return a[questionID] == value
}

// Validate checks that every question is answered with one of its two options
// and that no unknown question ids are present.
func (a AnswerSet) Validate() error {
	verr := &ValidationError{}

	for _, q := range questions {
		value, ok := a[q.ID]
		if !ok || value == "" {
			verr.Missing = append(verr.Missing, q.ID)
			continue
		}
		if !q.HasOption(value) {
			verr.Invalid = append(verr.Invalid, q.ID)
		}
	}

	for id := range a {
		if _, ok := questionIndex[id]; !ok {
			verr.Unknown = append(verr.Unknown, id)
		}
	}
	sort.Strings(verr.Unknown)

	if verr.empty() {
		return nil
	}
	return verr
}

// Clone returns an independent copy of the answer set
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// FromChoices builds an answer set from option indexes given in questionnaire order.
// Each entry selects the first (0) or second (1) option of the question at that position.
func FromChoices(choices [QuestionCount]int) AnswerSet {
	out := make(AnswerSet, QuestionCount)
	for i, q := range questions {
		out[q.ID] = q.Options[choices[i]&1].Value
	}
	return out
}

// ParseChoices converts a 15-character pattern of 'A'/'B' into an answer set.
// 'A' selects the first option of the question at that position, 'B' the second.
func ParseChoices(pattern string) (AnswerSet, error) {
	if len(pattern) != QuestionCount {
		return nil, &PatternError{Pattern: pattern, Message: "must have exactly 15 characters"}
	}
	var choices [QuestionCount]int
	for i, c := range pattern {
		switch c {
		case 'A', 'a':
			choices[i] = 0
		case 'B', 'b':
			choices[i] = 1
		default:
			return nil, &PatternError{Pattern: pattern, Message: "only 'A' and 'B' are allowed"}
		}
	}
	return FromChoices(choices), nil
}

// MustParseChoices is ParseChoices for static tables; it panics on a malformed pattern.
func MustParseChoices(pattern string) AnswerSet {
	a, err := ParseChoices(pattern)
	if err != nil {
		panic(err)
	}
	return a
}
