package feedback

import "sort"

// MinRows is the number of rows below which a summary is not meaningful
const MinRows = 3

const (
	topStrengths    = 5
	topImprovements = 3
	highScore       = 4.0
	midScore        = 3.0
)

// Persona labels
const (
	PersonaLeader      = "회의 리더형"
	PersonaSupporter   = "든든한 조력자형"
	PersonaContributor = "아이디어 기여형"
	PersonaGrowing     = "성장하는 팀플레이어형"
	PersonaPotential   = "잠재력 발굴형"
)

// Averages are per-category means of the five scores
type Averages struct {
	Communication float64 `json:"communication"`
	Collaboration float64 `json:"collaboration"`
	Leadership    float64 `json:"leadership"`
	Listening     float64 `json:"listening"`
	Contribution  float64 `json:"contribution"`
}

// Overall is the mean of the five category means
func (a Averages) Overall() float64 {
	return (a.Communication + a.Collaboration + a.Leadership + a.Listening + a.Contribution) / 5
}

// Summary aggregates every feedback row targeting one user.
// When Count is below MinRows only Count is set.
type Summary struct {
	Count           int       `json:"count"`
	Averages        *Averages `json:"averages,omitempty"`
	Overall         float64   `json:"overall,omitempty"`
	TopStrengths    []string  `json:"topStrengths,omitempty"`
	TopImprovements []string  `json:"topImprovements,omitempty"`
	Persona         string    `json:"persona,omitempty"`
}

// Summarize recomputes the summary from the full row set. With fewer than
// MinRows rows it returns ErrInsufficientData and a summary carrying only the count.
func Summarize(rows []MeetingFeedback) (*Summary, error) {
	if len(rows) < MinRows {
		return &Summary{Count: len(rows)}, ErrInsufficientData
	}

	var sum Averages
	var strengths, improvements []string
	for _, r := range rows {
		sum.Communication += float64(r.Responses.Communication)
		sum.Collaboration += float64(r.Responses.Collaboration)
		sum.Leadership += float64(r.Responses.Leadership)
		sum.Listening += float64(r.Responses.Listening)
		sum.Contribution += float64(r.Responses.Contribution)
		strengths = append(strengths, r.Strengths...)
		improvements = append(improvements, r.Improvements...)
	}

	n := float64(len(rows))
	avg := Averages{
		Communication: sum.Communication / n,
		Collaboration: sum.Collaboration / n,
		Leadership:    sum.Leadership / n,
		Listening:     sum.Listening / n,
		Contribution:  sum.Contribution / n,
	}

	return &Summary{
		Count:           len(rows),
		Averages:        &avg,
		Overall:         avg.Overall(),
		TopStrengths:    mostFrequent(strengths, topStrengths),
		TopImprovements: mostFrequent(improvements, topImprovements),
		Persona:         persona(avg),
	}, nil
}

func persona(a Averages) string {
	switch {
	case a.Communication >= highScore && a.Leadership >= highScore:
		return PersonaLeader
	case a.Listening >= highScore && a.Collaboration >= highScore:
		return PersonaSupporter
	case a.Contribution >= highScore:
		return PersonaContributor
	case a.Overall() >= midScore:
		return PersonaGrowing
	default:
		return PersonaPotential
	}
}

// mostFrequent returns up to limit distinct values by descending frequency,
// breaking ties by first appearance.
func mostFrequent(values []string, limit int) []string {
	counts := make(map[string]int)
	var order []string
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > limit {
		order = order[:limit]
	}
	return order
}
