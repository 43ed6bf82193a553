package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mastersolis/marketing-api/internal/database"
	"github.com/mastersolis/marketing-api/internal/models"
)

// blogRepo is the concrete implementation of BlogRepository
type blogRepo struct {
	db *database.DB
}

// NewBlogRepo creates a new blog post repository
func NewBlogRepo(db *database.DB) BlogRepository {
	return &blogRepo{db: db}
}

// Create inserts a new blog post. Slug collisions are permitted.
func (r *blogRepo) Create(ctx context.Context, post *models.BlogPost) error {
	_, err := r.db.Collection(database.CollBlogPosts).InsertOne(ctx, post)
	return err
}

// List returns blog posts, optionally filtered by published state
func (r *blogRepo) List(ctx context.Context, published *bool) ([]*models.BlogPost, error) {
	filter := bson.M{}
	if published != nil {
		filter["published"] = *published
	}

	cursor, err := r.db.Collection(database.CollBlogPosts).Find(ctx, filter, database.ListOptions())
	if err != nil {
		return nil, err
	}

	posts := make([]*models.BlogPost, 0)
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetBySlug returns the first post matching the slug, nil when missing
func (r *blogRepo) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Collection(database.CollBlogPosts).FindOne(ctx, bson.M{"slug": slug}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// DeleteBySlug removes the first post matching the slug, returning the
// deleted count
func (r *blogRepo) DeleteBySlug(ctx context.Context, slug string) (int64, error) {
	result, err := r.db.Collection(database.CollBlogPosts).DeleteOne(ctx, bson.M{"slug": slug})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// CountPublished returns the number of published posts
func (r *blogRepo) CountPublished(ctx context.Context) (int64, error) {
	return r.db.Collection(database.CollBlogPosts).CountDocuments(ctx, bson.M{"published": true})
}
