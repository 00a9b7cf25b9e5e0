package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillmatch/internal/attempts"
	"github.com/jonathan/skillmatch/internal/catalog"
	"github.com/jonathan/skillmatch/internal/validation"
)

var validatedSkillsCmd = &cobra.Command{
	Use:   "validated-skills",
	Short: "List the skills a candidate has validated through passing attempts",
	Long:  "Resolves a candidate's attempt history against the test-to-skill mapping and lists every skill with at least one passing attempt. A skill stays validated regardless of later failing attempts.",
	RunE:  runValidatedSkills,
}

var (
	validatedUserID string
	validatedOutput string
)

func init() {
	validatedSkillsCmd.Flags().StringVarP(&validatedUserID, "user", "u", "", "Candidate user ID (required)")
	validatedSkillsCmd.Flags().StringVarP(&validatedOutput, "out", "o", "", "Path to output JSON file (optional)")

	if err := validatedSkillsCmd.MarkFlagRequired("user"); err != nil {
		panic(fmt.Sprintf("failed to mark user flag as required: %v", err))
	}

	rootCmd.AddCommand(validatedSkillsCmd)
}

func runValidatedSkills(cmd *cobra.Command, _ []string) error {
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

	ctx := cmd.Context()

	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	store := attempts.NewStore(repo, logger)
	resolver := validation.NewResolver(store, testSkills)

	skills, err := resolver.ValidatedSkills(ctx, validatedUserID)
	if err != nil {
		return fmt.Errorf("failed to resolve validated skills: %w", err)
	}

	if validatedOutput != "" {
		if err := writeJSONOutput(validatedOutput, skills, ""); err != nil {
			return err
		}
	}

	if len(skills) == 0 {
		_, _ = fmt.Fprintf(os.Stdout, "No validated skills for user %s\n", validatedUserID)
	} else {
		_, _ = fmt.Fprintf(os.Stdout, "Validated skills for user %s: %s\n", validatedUserID, strings.Join(skills, ", "))
	}

	return nil
}
