// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/meeting-mbti/internal/icebreak"
	"github.com/jonathan/meeting-mbti/internal/meeting"
	"github.com/jonathan/meeting-mbti/internal/profile"
	"github.com/jonathan/meeting-mbti/internal/survey"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func writeList(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintQuestions outputs the questionnaire with the A and B option of each question.
func (p *Printer) PrintQuestions(questions []survey.Question) {
	if len(questions) == 0 {
		return
	}

	var sb strings.Builder
	for i, q := range questions {
		sb.WriteString(fmt.Sprintf("%s. %s\n", q.ID, q.Prompt))
		sb.WriteString(fmt.Sprintf("    A) %s [%s]\n", q.Options[0].Label, q.Options[0].Value))
		sb.WriteString(fmt.Sprintf("    B) %s [%s]", q.Options[1].Label, q.Options[1].Value))
		if i < len(questions)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(fmt.Sprintf("SURVEY (%d QUESTIONS)", len(questions)), sb.String())
}

// PrintClassification outputs both type codes and the generated profile.
func (p *Printer) PrintClassification(g *profile.Generated) {
	if g == nil {
		return
	}

	var sb strings.Builder
	if g.Result != nil {
		sb.WriteString(fmt.Sprintf("Type A:   %s  %s (%s)\n", g.TypeA, g.Result.TypeAEntry.Name, g.Result.TypeAEntry.Nickname))
		sb.WriteString(fmt.Sprintf("Type B:   %s  %s\n", g.TypeB, g.Result.TypeBEntry.Name))
		for _, axis := range g.Result.TypeB.Axes {
			sb.WriteString(fmt.Sprintf("  %-8s %s=%d %s=%d %s=%d -> %s\n", axis.Axis,
				axis.Labels[0], axis.Scores[0], axis.Labels[1], axis.Scores[1],
				axis.Labels[2], axis.Scores[2], axis.Winner))
		}
	} else {
		sb.WriteString(fmt.Sprintf("Type A:   %s\n", g.TypeA))
		sb.WriteString(fmt.Sprintf("Type B:   %s\n", g.TypeB))
	}
	sb.WriteString("\n")

	pr := g.Profile
	fields := []struct{ label, value string }{
		{"Style", pr.Style},
		{"Tips", pr.Tips},
		{"Emotional", pr.EmotionalStyle},
		{"Collaboration", pr.CollaborationTips},
		{"Stress", pr.StressManagement},
		{"Feedback", pr.FeedbackStyle},
		{"Conflict", pr.ConflictResolution},
		{"Problems", pr.ProblemSolving},
		{"Work", pr.WorkStyle},
		{"Channel", pr.CommunicationChannel},
		{"Risk", pr.RiskProfile},
		{"Learning", pr.LearningPreference},
	}
	for i, f := range fields {
		sb.WriteString(fmt.Sprintf("%-14s %s", f.label+":", f.value))
		if i < len(fields)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CLASSIFICATION", sb.String())
}

// PrintRecommendation outputs an icebreaking recommendation.
func (p *Printer) PrintRecommendation(rec *icebreak.Recommendation) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Team style: %s\n", rec.TeamStyle))
	sb.WriteString(fmt.Sprintf("Team size:  %s\n\n", rec.Band))

	tip := rec.PrimaryTip
	sb.WriteString(fmt.Sprintf("%s (%s)\n", tip.Title, tip.Duration))
	sb.WriteString(fmt.Sprintf("  %s\n", tip.Description))
	for i, step := range tip.Steps {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
	}
	sb.WriteString("\n")

	if len(rec.AlternativeTips) > 0 {
		titles := make([]string, len(rec.AlternativeTips))
		for i, alt := range rec.AlternativeTips {
			titles[i] = fmt.Sprintf("%s (%s)", alt.Title, alt.Duration)
		}
		writeList(&sb, "Alternatives", titles)
		sb.WriteString("\n")
	}
	writeList(&sb, "Advice", rec.GeneralAdvice)

	p.printBox("ICEBREAKING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAdvice outputs meeting advice.
func (p *Printer) PrintAdvice(advice *meeting.Advice) {
	if advice == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s [%s]\n", advice.Title, advice.MeetingType))
	sb.WriteString(advice.Description + "\n\n")
	writeList(&sb, "Tips", advice.Tips)
	writeList(&sb, "Watch out for", advice.Warnings)

	p.printBox("MEETING ADVICE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAggregation outputs a team survey composite.
func (p *Printer) PrintAggregation(agg *meeting.SurveyAggregation) {
	if agg == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Respondents: %d", agg.Respondents))
	if agg.Simulated {
		sb.WriteString(" (simulated)")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Dominant:    %s\n", agg.DominantStyle))
	sb.WriteString(agg.Profile + "\n\n")
	writeList(&sb, "Insights", agg.Insights)

	p.printBox("TEAM SURVEY", strings.TrimSuffix(sb.String(), "\n"))
}
