// Package main provides the meetingmbti command: the HTTP API server plus
// offline access to the survey, classifier and icebreaking recommender.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cli carries the state shared by all subcommands
type cli struct {
	verbose bool
	json    bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	app := &cli{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:           "meetingmbti",
		Short:         "Meeting communication-style profiles and room insights",
		Long:          "meetingmbti classifies communication styles from a 15-question survey and serves meeting advice, team survey composites, icebreaking recommendations and peer feedback over a REST API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if app.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			app.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = app.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&app.json, "json", false, "Print raw JSON instead of formatted boxes")

	rootCmd.AddCommand(
		newServeCmd(app),
		newMigrateCmd(app),
		newQuestionsCmd(app),
		newClassifyCmd(app),
		newRecommendCmd(app),
	)
	return rootCmd
}

// printJSON writes v as indented JSON
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
