package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillmatch/internal/attempts"
	"github.com/jonathan/skillmatch/internal/observability"
)

var attemptStatsCmd = &cobra.Command{
	Use:   "attempt-stats",
	Short: "Summarize a candidate's recorded test attempts",
	RunE:  runAttemptStats,
}

var (
	attemptStatsUserID string
	attemptStatsOutput string
)

func init() {
	attemptStatsCmd.Flags().StringVarP(&attemptStatsUserID, "user", "u", "", "Candidate user ID (required)")
	attemptStatsCmd.Flags().StringVarP(&attemptStatsOutput, "out", "o", "", "Path to output stats JSON file (optional)")

	if err := attemptStatsCmd.MarkFlagRequired("user"); err != nil {
		panic(fmt.Sprintf("failed to mark user flag as required: %v", err))
	}

	rootCmd.AddCommand(attemptStatsCmd)
}

func runAttemptStats(cmd *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	logger, err := newCLILogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()

	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	store := attempts.NewStore(repo, logger)
	stats, err := store.AggregateStats(ctx, attemptStatsUserID)
	if err != nil {
		return fmt.Errorf("failed to aggregate attempt stats: %w", err)
	}

	if attemptStatsOutput != "" {
		if err := writeJSONOutput(attemptStatsOutput, stats, ""); err != nil {
			return err
		}
	}

	observability.NewPrinter(os.Stdout).PrintAttemptStats(attemptStatsUserID, stats)

	return nil
}
