package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillmatch/internal/attempts"
	"github.com/jonathan/skillmatch/internal/catalog"
	"github.com/jonathan/skillmatch/internal/grading"
	"github.com/jonathan/skillmatch/internal/observability"
)

var recordAttemptCmd = &cobra.Command{
	Use:   "record-attempt",
	Short: "Grade a submission and append it to the attempt log",
	Long:  "Grades a submitted answer map against a question bank, then appends the attempt to the configured attempt log backend. Attempts are never updated or deleted once recorded.",
	RunE:  runRecordAttempt,
}

var (
	recordQuestions string
	recordAnswers   string
	recordUserID    string
	recordTimeSpent int
	recordOutput    string
)

func init() {
	recordAttemptCmd.Flags().StringVarP(&recordQuestions, "questions", "q", "", "Path to question bank JSON file (required)")
	recordAttemptCmd.Flags().StringVarP(&recordAnswers, "answers", "a", "", "Path to submitted answers JSON file (required)")
	recordAttemptCmd.Flags().StringVarP(&recordUserID, "user", "u", "", "Candidate user ID (required)")
	recordAttemptCmd.Flags().IntVarP(&recordTimeSpent, "time-spent", "t", 0, "Time spent on the test in seconds")
	recordAttemptCmd.Flags().StringVarP(&recordOutput, "out", "o", "", "Path to output Attempt JSON file (optional)")

	if err := recordAttemptCmd.MarkFlagRequired("questions"); err != nil {
		panic(fmt.Sprintf("failed to mark questions flag as required: %v", err))
	}
	if err := recordAttemptCmd.MarkFlagRequired("answers"); err != nil {
		panic(fmt.Sprintf("failed to mark answers flag as required: %v", err))
	}
	if err := recordAttemptCmd.MarkFlagRequired("user"); err != nil {
		panic(fmt.Sprintf("failed to mark user flag as required: %v", err))
	}

	rootCmd.AddCommand(recordAttemptCmd)
}

func runRecordAttempt(cmd *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	logger, err := newCLILogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	bank, err := catalog.LoadQuestionBank(recordQuestions)
	if err != nil {
		return fmt.Errorf("failed to load question bank: %w", err)
	}

	answers, err := catalog.LoadAnswers(recordAnswers)
	if err != nil {
		return fmt.Errorf("failed to load answers: %w", err)
	}

	ctx := cmd.Context()

	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	result := grading.Grade(answers, bank.Questions, grading.WithPassThreshold(cfg.PassThresholdOrDefault()))

	store := attempts.NewStore(repo, logger)
	attempt, err := store.RecordAttempt(ctx, bank.TestID, recordUserID, result, answers, recordTimeSpent)
	if err != nil {
		return fmt.Errorf("failed to record attempt: %w", err)
	}

	if recordOutput != "" {
		if err := writeJSONOutput(recordOutput, attempt, ""); err != nil {
			return err
		}
	}

	if verbose {
		observability.NewPrinter(os.Stdout).PrintResult(bank.TestID, result)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Recorded attempt %s for user %s on test %s (score %d%%, passed=%t)\n",
		attempt.ID, recordUserID, bank.TestID, result.Score, result.Passed)

	return nil
}
