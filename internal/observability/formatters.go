// Package observability provides formatted output utilities for verbose CLI
// mode and structured logger construction.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/skillmatch/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResult outputs a human-readable summary of one graded attempt
func (p *Printer) PrintResult(testID string, result types.Result) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Test:     %s\n", testID))
	sb.WriteString(fmt.Sprintf("Score:    %d%% (%d/%d correct)\n", result.Score, result.CorrectAnswers, result.TotalQuestions))
	if result.Passed {
		sb.WriteString("Outcome:  PASSED")
	} else {
		sb.WriteString("Outcome:  FAILED")
	}
	p.printBox("Graded Attempt", sb.String())
}

// PrintRecommendations outputs a ranked recommendation list
func (p *Printer) PrintRecommendations(results []types.MatchResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Results: %d\n\n", len(results)))
	for i, result := range results {
		marker := " "
		if result.IsHighMatch {
			marker = "*"
		}
		sb.WriteString(fmt.Sprintf("%s %2d. %s  score=%d\n", marker, i+1, result.JobID, result.Score))
		if len(result.MatchedSkills) > 0 {
			shown := result.MatchedSkills
			if len(shown) > maxItemsToShow {
				shown = shown[:maxItemsToShow]
			}
			sb.WriteString(fmt.Sprintf("       skills: %s\n", strings.Join(shown, ", ")))
		}
	}
	p.printBox(fmt.Sprintf("Recommendations (%s)", strategyLabel(results)), strings.TrimRight(sb.String(), "\n"))
}

func strategyLabel(results []types.MatchResult) string {
	if len(results) == 0 || results[0].Strategy == "" {
		return "no strategy"
	}
	return results[0].Strategy
}

// PrintValidationStats outputs skill-validation coverage for a candidate
func (p *Printer) PrintValidationStats(stats types.ValidationStats) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Declared skills:  %d\n", stats.TotalSkills))
	sb.WriteString(fmt.Sprintf("Validated:        %d (%d%%)\n", stats.ValidatedCount, stats.ValidationPercentage))
	sb.WriteString(fmt.Sprintf("Unvalidated:      %d\n", stats.UnvalidatedCount))
	if len(stats.ValidatedSkills) > 0 {
		sb.WriteString(fmt.Sprintf("\nValidated:   %s\n", strings.Join(stats.ValidatedSkills, ", ")))
	}
	if len(stats.UnvalidatedSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Unvalidated: %s", strings.Join(stats.UnvalidatedSkills, ", ")))
	}
	p.printBox("Skill Validation", strings.TrimRight(sb.String(), "\n"))
}

// PrintAttemptStats outputs aggregate statistics over a user's history
func (p *Printer) PrintAttemptStats(userID string, stats types.AttemptStats) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("User:           %s\n", userID))
	sb.WriteString(fmt.Sprintf("Attempts:       %d (%d passed)\n", stats.TotalTests, stats.PassedTests))
	sb.WriteString(fmt.Sprintf("Average score:  %d%%\n", stats.AverageScore))
	sb.WriteString(fmt.Sprintf("Time spent:     %ds\n", stats.TotalTimeSpent))
	if len(stats.RecentAttempts) > 0 {
		sb.WriteString("\nRecent:\n")
		for _, attempt := range stats.RecentAttempts {
			sb.WriteString(fmt.Sprintf("  %s  %d%%  %s\n",
				attempt.TestID, attempt.Result.Score, attempt.CompletedAt.Format("2006-01-02")))
		}
	}
	p.printBox("Attempt History", strings.TrimRight(sb.String(), "\n"))
}
