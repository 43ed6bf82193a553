package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/mastersolis/marketing-api/internal/config"
)

// ListLimit caps every list read. There is no pagination; the cap is the
// documented contract.
const ListLimit = 1000

// Collection names, one per entity kind
const (
	CollContacts     = "contact_submissions"
	CollJobs         = "job_postings"
	CollApplications = "job_applications"
	CollBlogPosts    = "blog_posts"
	CollTestimonials = "testimonials"
	CollProjects     = "projects"
	CollCaseStudies  = "case_studies"
	CollAdminUsers   = "admin_users"
)

// DB wraps the MongoDB client with application-level helpers. A single
// instance is opened at process start and closed at shutdown.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
	log    zerolog.Logger
}

// New connects to MongoDB and verifies the connection
func New(cfg *config.DatabaseConfig, log zerolog.Logger) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	wrapper := &DB{
		client: client,
		db:     client.Database(cfg.Name),
		log:    log.With().Str("component", "database").Logger(),
	}

	wrapper.log.Info().
		Str("database", cfg.Name).
		Msg("MongoDB connection established")

	return wrapper, nil
}

// Collection returns a handle to a named collection
func (db *DB) Collection(name string) *mongo.Collection {
	return db.db.Collection(name)
}

// HealthCheck verifies the store connection is healthy
func (db *DB) HealthCheck(ctx context.Context) error {
	return db.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the underlying client
func (db *DB) Close(ctx context.Context) error {
	db.log.Info().Msg("Closing MongoDB connection")
	return db.client.Disconnect(ctx)
}

// ListOptions returns find options with the standard list cap applied
func ListOptions() *options.FindOptions {
	return options.Find().SetLimit(ListLimit)
}
