package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mastersolis/marketing-api/internal/database"
	"github.com/mastersolis/marketing-api/internal/models"
)

// adminRepo is the concrete implementation of AdminRepository
type adminRepo struct {
	db *database.DB
}

// NewAdminRepo creates a new admin user repository
func NewAdminRepo(db *database.DB) AdminRepository {
	return &adminRepo{db: db}
}

// Create inserts a new admin user
func (r *adminRepo) Create(ctx context.Context, admin *models.AdminUser) error {
	_, err := r.db.Collection(database.CollAdminUsers).InsertOne(ctx, admin)
	return err
}

// GetByUsername retrieves an admin by username, nil when missing
func (r *adminRepo) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := r.db.Collection(database.CollAdminUsers).FindOne(ctx, bson.M{"username": username}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
