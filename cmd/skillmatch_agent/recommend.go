package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/skillmatch/internal/attempts"
	"github.com/jonathan/skillmatch/internal/catalog"
	"github.com/jonathan/skillmatch/internal/config"
	"github.com/jonathan/skillmatch/internal/matching"
	"github.com/jonathan/skillmatch/internal/observability"
	"github.com/jonathan/skillmatch/internal/ranking"
	"github.com/jonathan/skillmatch/internal/types"
	"github.com/jonathan/skillmatch/internal/validation"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank job postings against a candidate profile",
	Long:  "Scores every active job posting against the candidate profile and prints the top matches. The test-enhanced strategy boosts skills the candidate has validated through passing attempts.",
	RunE:  runRecommend,
}

var (
	recommendUserID   string
	recommendStrategy string
	recommendLimit    int
	recommendOutput   string
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendUserID, "user", "u", "", "Candidate user ID (required for the test-enhanced strategy)")
	recommendCmd.Flags().StringVarP(&recommendStrategy, "strategy", "s", "", "Scoring strategy: base or test-enhanced (defaults to the config file setting)")
	recommendCmd.Flags().IntVarP(&recommendLimit, "limit", "n", 0, "Maximum number of recommendations (defaults to the config file setting)")
	recommendCmd.Flags().StringVarP(&recommendOutput, "out", "o", "", "Path to output recommendations JSON file (optional)")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	logger, err := newCLILogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	strategyName := recommendStrategy
	if strategyName == "" {
		strategyName = cfg.Strategy
	}
	if strategyName == "" {
		strategyName = matching.StrategyBase
	}

	ctx := cmd.Context()

	strategy, cleanup, err := buildStrategy(ctx, cfg, logger, strategyName)
	if err != nil {
		return err
	}
	defer cleanup()

	jobs, err := catalog.LoadJobPostings(cfg.Jobs)
	if err != nil {
		return fmt.Errorf("failed to load job postings: %w", err)
	}

	profile, err := catalog.LoadCandidateProfile(cfg.Profile)
	if err != nil {
		return fmt.Errorf("failed to load candidate profile: %w", err)
	}

	limit := recommendLimit
	if limit <= 0 {
		limit = cfg.RecommendLimitOrDefault()
	}

	ranker := ranking.NewRanker(strategy, logger)
	results := ranker.Rank(ctx, jobs, profile.DeclaredSkillNames(), profile.Location, profile, limit)

	recommendations := types.Recommendations{
		UserID:   recommendUserID,
		Strategy: strategy.Name(),
		Results:  results,
	}

	if recommendOutput != "" {
		if err := writeJSONOutput(recommendOutput, recommendations, "recommendations.schema.json"); err != nil {
			return err
		}
	}

	observability.NewPrinter(os.Stdout).PrintRecommendations(results)

	return nil
}

// buildStrategy constructs the requested scoring strategy. The test-enhanced
// strategy needs the attempt log backend to resolve validated skills, so its
// cleanup closes the backend connection.
func buildStrategy(ctx context.Context, cfg *config.Config, logger *zap.Logger, name string) (matching.Strategy, func(), error) {
	switch name {
	case matching.StrategyBase:
		return matching.NewBaseScorer(), func() {}, nil

	case matching.StrategyTestEnhanced:
		if recommendUserID == "" {
			return nil, nil, fmt.Errorf("the test-enhanced strategy requires --user")
		}

		testSkills, err := catalog.LoadTestSkillMap(cfg.TestSkillMap)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load test skill map: %w", err)
		}

		repo, closeRepo, err := openRepository(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}

		store := attempts.NewStore(repo, logger)
		resolver := validation.NewResolver(store, testSkills)

		validated, err := resolver.ValidatedSkillsWithScore(ctx, recommendUserID)
		if err != nil {
			closeRepo()
			return nil, nil, fmt.Errorf("failed to resolve validated skills: %w", err)
		}

		logger.Debug("resolved validated skills for scoring",
			zap.String("user_id", recommendUserID),
			zap.Int("validated_count", len(validated)))

		return matching.NewEnhancedScorer(validated), closeRepo, nil

	default:
		return nil, nil, fmt.Errorf("unknown strategy %q: expected %q or %q", name, matching.StrategyBase, matching.StrategyTestEnhanced)
	}
}
