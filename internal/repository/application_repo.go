package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mastersolis/marketing-api/internal/database"
	"github.com/mastersolis/marketing-api/internal/models"
)

// applicationRepo is the concrete implementation of ApplicationRepository
type applicationRepo struct {
	db *database.DB
}

// NewApplicationRepo creates a new job application repository
func NewApplicationRepo(db *database.DB) ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new job application
func (r *applicationRepo) Create(ctx context.Context, app *models.JobApplication) error {
	_, err := r.db.Collection(database.CollApplications).InsertOne(ctx, app)
	return err
}

// List returns job applications, optionally filtered by job and status
func (r *applicationRepo) List(ctx context.Context, jobID, status string) ([]*models.JobApplication, error) {
	filter := bson.M{}
	if jobID != "" {
		filter["job_id"] = jobID
	}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := r.db.Collection(database.CollApplications).Find(ctx, filter, database.ListOptions())
	if err != nil {
		return nil, err
	}

	apps := make([]*models.JobApplication, 0)
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// GetByID retrieves an application by identifier, nil when missing
func (r *applicationRepo) GetByID(ctx context.Context, id string) (*models.JobApplication, error) {
	var app models.JobApplication
	err := r.db.Collection(database.CollApplications).FindOne(ctx, bson.M{"id": id}).Decode(&app)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// UpdateStatus sets the review status, returning the modified count
func (r *applicationRepo) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	result, err := r.db.Collection(database.CollApplications).UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// Count returns the total number of applications
func (r *applicationRepo) Count(ctx context.Context) (int64, error) {
	return r.db.Collection(database.CollApplications).CountDocuments(ctx, bson.M{})
}
