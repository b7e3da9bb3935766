package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"alfredoptarigan/job-portal/internal/models"
)

const applicationsCollection = "jobApplications"

type ApplicationRepository interface {
	FindByApplicantEmail(ctx context.Context, email string) ([]bson.M, error)
	FindByJobID(ctx context.Context, jobID string) ([]bson.M, error)
	Insert(ctx context.Context, application bson.M) (*models.InsertResult, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.UpdateResult, error)
}

type applicationRepository struct {
	collection *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) ApplicationRepository {
	return &applicationRepository{collection: db.Collection(applicationsCollection)}
}

// FindByApplicantEmail implements ApplicationRepository.
func (r *applicationRepository) FindByApplicantEmail(ctx context.Context, email string) ([]bson.M, error) {
	return r.find(ctx, bson.M{"applicant_email": email})
}

// FindByJobID implements ApplicationRepository. job_id is stored and matched
// as the hex string of the job's _id, not as an ObjectID.
func (r *applicationRepository) FindByJobID(ctx context.Context, jobID string) ([]bson.M, error) {
	return r.find(ctx, bson.M{"job_id": jobID})
}

func (r *applicationRepository) find(ctx context.Context, filter bson.M) ([]bson.M, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find applications: %w", err)
	}

	applications := make([]bson.M, 0)
	if err := cursor.All(ctx, &applications); err != nil {
		return nil, fmt.Errorf("failed to decode applications: %w", err)
	}

	return applications, nil
}

// Insert implements ApplicationRepository.
func (r *applicationRepository) Insert(ctx context.Context, application bson.M) (*models.InsertResult, error) {
	result, err := r.collection.InsertOne(ctx, application)
	if err != nil {
		return nil, fmt.Errorf("failed to insert application: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}

	return &models.InsertResult{Acknowledged: true, InsertedID: oid.Hex()}, nil
}

// UpdateStatus implements ApplicationRepository. Only the status field is
// written; everything else in the stored document stays untouched.
func (r *applicationRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.UpdateResult, error) {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}

	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}
