package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillmatch/internal/catalog"
	"github.com/jonathan/skillmatch/internal/grading"
	"github.com/jonathan/skillmatch/internal/observability"
)

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Grade a test submission against its question bank",
	Long:  "Grades a submitted answer map against a question bank JSON file, producing a Result with percentage score and pass/fail outcome. Grading is pure; nothing is recorded.",
	RunE:  runGrade,
}

var (
	gradeQuestions string
	gradeAnswers   string
	gradeOutput    string
)

func init() {
	gradeCmd.Flags().StringVarP(&gradeQuestions, "questions", "q", "", "Path to question bank JSON file (required)")
	gradeCmd.Flags().StringVarP(&gradeAnswers, "answers", "a", "", "Path to submitted answers JSON file (required)")
	gradeCmd.Flags().StringVarP(&gradeOutput, "out", "o", "", "Path to output Result JSON file (optional)")

	if err := gradeCmd.MarkFlagRequired("questions"); err != nil {
		panic(fmt.Sprintf("failed to mark questions flag as required: %v", err))
	}
	if err := gradeCmd.MarkFlagRequired("answers"); err != nil {
		panic(fmt.Sprintf("failed to mark answers flag as required: %v", err))
	}

	rootCmd.AddCommand(gradeCmd)
}

func runGrade(_ *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	bank, err := catalog.LoadQuestionBank(gradeQuestions)
	if err != nil {
		return fmt.Errorf("failed to load question bank: %w", err)
	}

	answers, err := catalog.LoadAnswers(gradeAnswers)
	if err != nil {
		return fmt.Errorf("failed to load answers: %w", err)
	}

	result := grading.Grade(answers, bank.Questions, grading.WithPassThreshold(cfg.PassThresholdOrDefault()))

	if gradeOutput != "" {
		if err := writeJSONOutput(gradeOutput, result, ""); err != nil {
			return err
		}
	}

	if verbose {
		observability.NewPrinter(os.Stdout).PrintResult(bank.TestID, result)
	} else {
		_, _ = fmt.Fprintf(os.Stdout, "Scored %d%% (%d/%d correct), passed=%t\n",
			result.Score, result.CorrectAnswers, result.TotalQuestions, result.Passed)
	}

	return nil
}
