package attempts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/skillmatch/internal/types"
)

// attemptsSchema creates the attempt log table. The seq column records
// insertion order; rows are never updated or deleted.
const attemptsSchema = `
CREATE TABLE IF NOT EXISTS attempts (
	seq BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	id UUID NOT NULL UNIQUE,
	test_id TEXT NOT NULL,
	user_id TEXT NOT NULL,
	answers JSONB NOT NULL,
	score INT NOT NULL,
	correct_answers INT NOT NULL,
	total_questions INT NOT NULL,
	passed BOOLEAN NOT NULL,
	time_spent_seconds INT NOT NULL,
	completed_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS attempts_user_idx ON attempts (user_id, seq);
CREATE INDEX IF NOT EXISTS attempts_user_test_idx ON attempts (user_id, test_id, seq);
`

// PostgresRepository is a Postgres-backed attempt log
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and ensures the attempt
// log table exists.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresRepository, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, attemptsSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ensure attempts schema: %w", err)
	}

	return &PostgresRepository{pool: pool}, nil
}

// Close closes the connection pool
func (r *PostgresRepository) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}

// Append inserts one attempt. The insert is a single statement, so a failure
// leaves no partial record behind.
func (r *PostgresRepository) Append(ctx context.Context, attempt types.Attempt) error {
	answersJSON, err := json.Marshal(attempt.Answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO attempts
			(id, test_id, user_id, answers, score, correct_answers, total_questions, passed, time_spent_seconds, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		attempt.ID, attempt.TestID, attempt.UserID, answersJSON,
		attempt.Result.Score, attempt.Result.CorrectAnswers, attempt.Result.TotalQuestions,
		attempt.Result.Passed, attempt.TimeSpentSeconds, attempt.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append attempt %s: %w", attempt.ID, err)
	}
	return nil
}

// ListByUser returns the user's attempts in insertion order
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]types.Attempt, error) {
	return r.list(ctx,
		`SELECT id, test_id, user_id, answers, score, correct_answers, total_questions, passed, time_spent_seconds, completed_at
		 FROM attempts WHERE user_id = $1 ORDER BY seq`,
		userID,
	)
}

// ListByUserAndTest returns the user's attempts for one test in insertion order
func (r *PostgresRepository) ListByUserAndTest(ctx context.Context, userID, testID string) ([]types.Attempt, error) {
	return r.list(ctx,
		`SELECT id, test_id, user_id, answers, score, correct_answers, total_questions, passed, time_spent_seconds, completed_at
		 FROM attempts WHERE user_id = $1 AND test_id = $2 ORDER BY seq`,
		userID, testID,
	)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]types.Attempt, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attempts: %w", err)
	}
	defer rows.Close()

	var attempts []types.Attempt
	for rows.Next() {
		var attempt types.Attempt
		var answersJSON []byte
		if err := rows.Scan(
			&attempt.ID, &attempt.TestID, &attempt.UserID, &answersJSON,
			&attempt.Result.Score, &attempt.Result.CorrectAnswers, &attempt.Result.TotalQuestions,
			&attempt.Result.Passed, &attempt.TimeSpentSeconds, &attempt.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		if err := json.Unmarshal(answersJSON, &attempt.Answers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal answers: %w", err)
		}
		attempts = append(attempts, attempt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attempts: %w", err)
	}
	return attempts, nil
}
