package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillmatch/internal/attempts"
	"github.com/jonathan/skillmatch/internal/catalog"
	"github.com/jonathan/skillmatch/internal/observability"
	"github.com/jonathan/skillmatch/internal/validation"
)

var validationStatsCmd = &cobra.Command{
	Use:   "validation-stats",
	Short: "Report how much of a candidate's declared skill set is test-validated",
	RunE:  runValidationStats,
}

var (
	validationStatsUserID string
	validationStatsOutput string
)

func init() {
	validationStatsCmd.Flags().StringVarP(&validationStatsUserID, "user", "u", "", "Candidate user ID (required)")
	validationStatsCmd.Flags().StringVarP(&validationStatsOutput, "out", "o", "", "Path to output stats JSON file (optional)")

	if err := validationStatsCmd.MarkFlagRequired("user"); err != nil {
		panic(fmt.Sprintf("failed to mark user flag as required: %v", err))
	}

	rootCmd.AddCommand(validationStatsCmd)
}

func runValidationStats(cmd *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	logger, err := newCLILogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	testSkills, err := catalog.LoadTestSkillMap(cfg.TestSkillMap)
	if err != nil {
		return fmt.Errorf("failed to load test skill map: %w", err)
	}

	profile, err := catalog.LoadCandidateProfile(cfg.Profile)
	if err != nil {
		return fmt.Errorf("failed to load candidate profile: %w", err)
	}

	ctx := cmd.Context()

	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	store := attempts.NewStore(repo, logger)
	resolver := validation.NewResolver(store, testSkills)

	stats, err := resolver.ValidationStats(ctx, profile.DeclaredSkillNames(), validationStatsUserID)
	if err != nil {
		return fmt.Errorf("failed to compute validation stats: %w", err)
	}

	if validationStatsOutput != "" {
		if err := writeJSONOutput(validationStatsOutput, stats, ""); err != nil {
			return err
		}
	}

	observability.NewPrinter(os.Stdout).PrintValidationStats(stats)

	return nil
}
