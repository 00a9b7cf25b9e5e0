package attempts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jonathan/skillmatch/internal/types"
)

// attemptDocument is the BSON shape of one logged attempt. The seq field
// preserves insertion order across reads.
type attemptDocument struct {
	Seq              int64          `bson:"seq"`
	ID               string         `bson:"attempt_id"`
	TestID           string         `bson:"test_id"`
	UserID           string         `bson:"user_id"`
	Answers          map[string]int `bson:"answers"`
	Score            int            `bson:"score"`
	CorrectAnswers   int            `bson:"correct_answers"`
	TotalQuestions   int            `bson:"total_questions"`
	Passed           bool           `bson:"passed"`
	TimeSpentSeconds int            `bson:"time_spent_seconds"`
	CompletedAt      time.Time      `bson:"completed_at"`
}

// MongoRepository is a MongoDB-backed attempt log
type MongoRepository struct {
	col  *mongo.Collection
	seqs *mongo.Collection
}

// NewMongoRepository creates a repository over the given database,
// using the "attempts" and "attempt_seqs" collections.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		col:  db.Collection("attempts"),
		seqs: db.Collection("attempt_seqs"),
	}
}

// nextSeq atomically increments and returns the per-user sequence counter
func (r *MongoRepository) nextSeq(ctx context.Context, userID string) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.seqs.FindOneAndUpdate(ctx,
		bson.M{"_id": userID},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

// Append inserts one attempt document
func (r *MongoRepository) Append(ctx context.Context, attempt types.Attempt) error {
	seq, err := r.nextSeq(ctx, attempt.UserID)
	if err != nil {
		return fmt.Errorf("failed to allocate attempt sequence: %w", err)
	}

	doc := attemptDocument{
		Seq:              seq,
		ID:               attempt.ID.String(),
		TestID:           attempt.TestID,
		UserID:           attempt.UserID,
		Answers:          attempt.Answers,
		Score:            attempt.Result.Score,
		CorrectAnswers:   attempt.Result.CorrectAnswers,
		TotalQuestions:   attempt.Result.TotalQuestions,
		Passed:           attempt.Result.Passed,
		TimeSpentSeconds: attempt.TimeSpentSeconds,
		CompletedAt:      attempt.CompletedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to append attempt %s: %w", attempt.ID, err)
	}
	return nil
}

// ListByUser returns the user's attempts in insertion order
func (r *MongoRepository) ListByUser(ctx context.Context, userID string) ([]types.Attempt, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

// ListByUserAndTest returns the user's attempts for one test in insertion order
func (r *MongoRepository) ListByUserAndTest(ctx context.Context, userID, testID string) ([]types.Attempt, error) {
	return r.list(ctx, bson.M{"user_id": userID, "test_id": testID})
}

func (r *MongoRepository) list(ctx context.Context, filter bson.M) ([]types.Attempt, error) {
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query attempts: %w", err)
	}
	defer cur.Close(ctx)

	var attempts []types.Attempt
	for cur.Next(ctx) {
		var doc attemptDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode attempt: %w", err)
		}
		id, err := uuid.Parse(doc.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to parse attempt id %q: %w", doc.ID, err)
		}
		attempts = append(attempts, types.Attempt{
			ID:      id,
			TestID:  doc.TestID,
			UserID:  doc.UserID,
			Answers: doc.Answers,
			Result: types.Result{
				Score:          doc.Score,
				CorrectAnswers: doc.CorrectAnswers,
				TotalQuestions: doc.TotalQuestions,
				Passed:         doc.Passed,
			},
			TimeSpentSeconds: doc.TimeSpentSeconds,
			CompletedAt:      doc.CompletedAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attempts: %w", err)
	}
	return attempts, nil
}
