package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/meeting-mbti/internal/observability"
	"github.com/jonathan/meeting-mbti/internal/survey"
)

func newQuestionsCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "Print the survey questionnaire",
		RunE: func(cmd *cobra.Command, _ []string) error {
			questions := survey.Questions()
			if app.json {
				return printJSON(cmd.OutOrStdout(), questions)
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintQuestions(questions)
			return nil
		},
	}
}
