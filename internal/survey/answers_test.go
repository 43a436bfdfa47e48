package survey

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestions_FixedShape(t *testing.T) {
	qs := Questions()
	require.Len(t, qs, QuestionCount)

	seen := make(map[string]bool)
	for i, q := range qs {
		assert.Equal(t, "q"+strconv.Itoa(i+1), q.ID, "questions must stay in q1..q15 order")
		assert.NotEmpty(t, q.Prompt)
		assert.NotEqual(t, q.Options[0].Value, q.Options[1].Value, "options of %s must differ", q.ID)
		for _, opt := range q.Options {
			assert.NotEmpty(t, opt.Label)
		}
		seen[q.ID] = true
	}
	assert.Len(t, seen, QuestionCount)
}

func TestQuestions_ReturnsCopy(t *testing.T) {
	qs := Questions()
	qs[0].Prompt = "changed"

	q, ok := QuestionByID(Q1)
	require.True(t, ok)
	assert.NotEqual(t, "changed", q.Prompt)
}

func TestQuestionByID_Unknown(t *testing.T) {
	_, ok := QuestionByID("q16")
	assert.False(t, ok)
}

func TestValidate_Complete(t *testing.T) {
	a := MustParseChoices("AAAAAAAAAAAAAAA")
	assert.NoError(t, a.Validate())
}

func TestValidate_MissingAnswers(t *testing.T) {
	a := MustParseChoices("ABABABABABABABA")
	delete(a, Q3)
	delete(a, Q12)

	err := a.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{Q3, Q12}, verr.Missing)
	assert.Empty(t, verr.Invalid)
	assert.Contains(t, err.Error(), "q3, q12")
}

func TestValidate_InvalidAndUnknown(t *testing.T) {
	a := MustParseChoices("BBBBBBBBBBBBBBB")
	a[Q2] = "telepathic"
	a["q99"] = Visual

	err := a.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Empty(t, verr.Missing)
	assert.Equal(t, []string{Q2}, verr.Invalid)
	assert.Equal(t, []string{"q99"}, verr.Unknown)
}

func TestValidate_EmptyValueCountsAsMissing(t *testing.T) {
	a := MustParseChoices("AAAAAAAAAAAAAAA")
	a[Q15] = ""

	var verr *ValidationError
	require.True(t, errors.As(a.Validate(), &verr))
	assert.Equal(t, []string{Q15}, verr.Missing)
}

func TestParseChoices(t *testing.T) {
	a, err := ParseChoices("ABAAAAAAAAAAAAB")
	require.NoError(t, err)
	assert.Equal(t, Prepared, a[Q1])
	assert.Equal(t, Verbal, a[Q2])
	assert.Equal(t, Together, a[Q15])

	_, err = ParseChoices("ABC")
	var perr *PatternError
	require.True(t, errors.As(err, &perr))

	_, err = ParseChoices("ABAAAAAAAAAAAAX")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only 'A' and 'B'")
}

func TestClone_Independent(t *testing.T) {
	a := MustParseChoices("AAAAAAAAAAAAAAA")
	b := a.Clone()
	b[Q1] = Spontaneous
	assert.Equal(t, Prepared, a[Q1])
}
