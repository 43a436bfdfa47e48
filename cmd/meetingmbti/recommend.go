package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/meeting-mbti/internal/icebreak"
	"github.com/jonathan/meeting-mbti/internal/meeting"
	"github.com/jonathan/meeting-mbti/internal/observability"
)

func newRecommendCmd(app *cli) *cobra.Command {
	var (
		size        int
		styles      []string
		meetingType string
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend an icebreaking activity for a team",
		Long: `Recommend an icebreaking activity from the team size and the members' styles.
When styles are given, meeting advice for the same team is printed too.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mt, err := meeting.ParseMeetingType(meetingType)
			if err != nil {
				return err
			}
			rec, err := icebreak.Recommend(icebreak.Request{
				TeamSize:       size,
				DominantStyles: styles,
				MeetingType:    mt,
			})
			if err != nil {
				return err
			}

			var advice *meeting.Advice
			if len(styles) > 0 {
				if advice, err = meeting.GenerateAdvice(styles, mt); err != nil {
					return err
				}
			}

			if app.json {
				return printJSON(cmd.OutOrStdout(), struct {
					Icebreaking *icebreak.Recommendation `json:"icebreaking"`
					Advice      *meeting.Advice          `json:"advice,omitempty"`
				}{rec, advice})
			}
			p := observability.NewPrinter(cmd.OutOrStdout())
			p.PrintRecommendation(rec)
			p.PrintAdvice(advice)
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 0, "Team size (required)")
	cmd.Flags().StringSliceVar(&styles, "style", nil, "Member style label; repeat or comma-separate")
	cmd.Flags().StringVar(&meetingType, "meeting-type", "", "Meeting type (default: collaboration)")
	_ = cmd.MarkFlagRequired("size")
	return cmd
}
