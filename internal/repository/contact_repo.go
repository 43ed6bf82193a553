package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/mastersolis/marketing-api/internal/database"
	"github.com/mastersolis/marketing-api/internal/models"
)

// contactRepo is the concrete implementation of ContactRepository
type contactRepo struct {
	db *database.DB
}

// NewContactRepo creates a new contact submission repository
func NewContactRepo(db *database.DB) ContactRepository {
	return &contactRepo{db: db}
}

// Create inserts a new contact submission
func (r *contactRepo) Create(ctx context.Context, contact *models.ContactSubmission) error {
	_, err := r.db.Collection(database.CollContacts).InsertOne(ctx, contact)
	return err
}

// List returns all contact submissions, capped at the standard list limit
func (r *contactRepo) List(ctx context.Context) ([]*models.ContactSubmission, error) {
	cursor, err := r.db.Collection(database.CollContacts).Find(ctx, bson.M{}, database.ListOptions())
	if err != nil {
		return nil, err
	}

	contacts := make([]*models.ContactSubmission, 0)
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// Count returns the total number of contact submissions
func (r *contactRepo) Count(ctx context.Context) (int64, error) {
	return r.db.Collection(database.CollContacts).CountDocuments(ctx, bson.M{})
}
