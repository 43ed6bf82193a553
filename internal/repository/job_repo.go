package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mastersolis/marketing-api/internal/database"
	"github.com/mastersolis/marketing-api/internal/models"
)

// jobRepo is the concrete implementation of JobRepository
type jobRepo struct {
	db *database.DB
}

// NewJobRepo creates a new job posting repository
func NewJobRepo(db *database.DB) JobRepository {
	return &jobRepo{db: db}
}

// Create inserts a new job posting
func (r *jobRepo) Create(ctx context.Context, job *models.JobPosting) error {
	_, err := r.db.Collection(database.CollJobs).InsertOne(ctx, job)
	return err
}

// List returns job postings, optionally filtered by status
func (r *jobRepo) List(ctx context.Context, status string) ([]*models.JobPosting, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := r.db.Collection(database.CollJobs).Find(ctx, filter, database.ListOptions())
	if err != nil {
		return nil, err
	}

	jobs := make([]*models.JobPosting, 0)
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetByID retrieves a job posting by its application-assigned identifier.
// Returns nil when no posting matches.
func (r *jobRepo) GetByID(ctx context.Context, id string) (*models.JobPosting, error) {
	var job models.JobPosting
	err := r.db.Collection(database.CollJobs).FindOne(ctx, bson.M{"id": id}).Decode(&job)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Update replaces the creation fields of an existing posting.
// Status and posted date are untouched.
func (r *jobRepo) Update(ctx context.Context, id string, req *models.JobRequest) error {
	patch := bson.M{"$set": bson.M{
		"title":            req.Title,
		"department":       req.Department,
		"location":         req.Location,
		"type":             req.Type,
		"description":      req.Description,
		"requirements":     req.Requirements,
		"responsibilities": req.Responsibilities,
	}}
	_, err := r.db.Collection(database.CollJobs).UpdateOne(ctx, bson.M{"id": id}, patch)
	return err
}

// Delete removes a job posting, returning the number of deleted documents
func (r *jobRepo) Delete(ctx context.Context, id string) (int64, error) {
	result, err := r.db.Collection(database.CollJobs).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// CountByStatus returns the number of postings in the given status
func (r *jobRepo) CountByStatus(ctx context.Context, status models.JobStatus) (int64, error) {
	return r.db.Collection(database.CollJobs).CountDocuments(ctx, bson.M{"status": status})
}
