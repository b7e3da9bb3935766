package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"alfredoptarigan/job-portal/internal/models"
)

const jobsCollection = "jobs"

// ErrJobNotFound signals a job_id reference that matches no job document.
var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Find(ctx context.Context, filter bson.M) ([]bson.M, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Job, error)
	Insert(ctx context.Context, job bson.M) (*models.InsertResult, error)
	IncrementApplicantCount(ctx context.Context, id primitive.ObjectID) error
}

type jobRepository struct {
	collection *mongo.Collection
}

func NewJobRepository(db *mongo.Database) JobRepository {
	return &jobRepository{collection: db.Collection(jobsCollection)}
}

// Find implements JobRepository. Documents are returned as-is so
// employer-supplied fields survive the round trip.
func (r *jobRepository) Find(ctx context.Context, filter bson.M) ([]bson.M, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find jobs: %w", err)
	}

	jobs := make([]bson.M, 0)
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("failed to decode jobs: %w", err)
	}

	return jobs, nil
}

// FindByID implements JobRepository. A missing id is not an error: the
// handler serves it as a null payload with a success status.
func (r *jobRepository) FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	var job bson.M
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}

	return job, nil
}

// FindByIDs implements JobRepository. One batched query backs the read-side
// join on the application listing.
func (r *jobRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Job, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to find jobs: %w", err)
	}

	var jobs []models.Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("failed to decode jobs: %w", err)
	}

	byID := make(map[primitive.ObjectID]models.Job, len(jobs))
	for _, job := range jobs {
		byID[job.ID] = job
	}

	return byID, nil
}

// Insert implements JobRepository.
func (r *jobRepository) Insert(ctx context.Context, job bson.M) (*models.InsertResult, error) {
	result, err := r.collection.InsertOne(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("failed to insert job: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}

	return &models.InsertResult{Acknowledged: true, InsertedID: oid.Hex()}, nil
}

// IncrementApplicantCount implements JobRepository. A single $inc creates the
// counter on first use and bumps it atomically afterwards, so concurrent
// submissions never lose an update.
func (r *jobRepository) IncrementApplicantCount(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"totalApplicant": 1}},
	)
	if err != nil {
		return fmt.Errorf("failed to update applicant count: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("job %s: %w", id.Hex(), ErrJobNotFound)
	}

	return nil
}
