package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/meeting-mbti/internal/observability"
	"github.com/jonathan/meeting-mbti/internal/profile"
	"github.com/jonathan/meeting-mbti/internal/schemas"
	"github.com/jonathan/meeting-mbti/internal/survey"
)

func newClassifyCmd(app *cli) *cobra.Command {
	var answersPath string

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify an answer set",
		Long: `Classify a JSON answer set such as {"q1": "prepared", ..., "q15": "together"}.
The answers are read from --answers, or from stdin when the flag is omitted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := readAnswers(cmd.InOrStdin(), answersPath)
			if err != nil {
				return err
			}
			if err := schemas.ValidateAnswerSet(data); err != nil {
				return err
			}

			var answers survey.AnswerSet
			if err := json.Unmarshal(data, &answers); err != nil {
				return fmt.Errorf("failed to parse answers: %w", err)
			}
			generated, err := profile.Generate(answers)
			if err != nil {
				return err
			}
			app.logger.Debug("classified answers",
				zap.String("type_a", string(generated.TypeA)),
				zap.String("type_b", string(generated.TypeB)))

			if app.json {
				return printJSON(cmd.OutOrStdout(), classification{
					TypeA:   string(generated.TypeA),
					TypeB:   string(generated.TypeB),
					Profile: generated.Profile,
				})
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintClassification(generated)
			return nil
		},
	}

	cmd.Flags().StringVar(&answersPath, "answers", "", "Path to the answers JSON file (default: stdin)")
	return cmd
}

type classification struct {
	TypeA   string              `json:"type_a"`
	TypeB   string              `json:"type_b"`
	Profile profile.UserProfile `json:"profile"`
}

func readAnswers(stdin io.Reader, path string) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read answers from stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file: %w", err)
	}
	return data, nil
}
