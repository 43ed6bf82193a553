package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/mastersolis/marketing-api/internal/database"
	"github.com/mastersolis/marketing-api/internal/models"
)

// testimonialRepo is the concrete implementation of TestimonialRepository
type testimonialRepo struct {
	db *database.DB
}

// NewTestimonialRepo creates a new testimonial repository
func NewTestimonialRepo(db *database.DB) TestimonialRepository {
	return &testimonialRepo{db: db}
}

// Create inserts a new testimonial
func (r *testimonialRepo) Create(ctx context.Context, testimonial *models.Testimonial) error {
	_, err := r.db.Collection(database.CollTestimonials).InsertOne(ctx, testimonial)
	return err
}

// List returns testimonials, optionally filtered by featured flag
func (r *testimonialRepo) List(ctx context.Context, featured *bool) ([]*models.Testimonial, error) {
	filter := bson.M{}
	if featured != nil {
		filter["featured"] = *featured
	}

	cursor, err := r.db.Collection(database.CollTestimonials).Find(ctx, filter, database.ListOptions())
	if err != nil {
		return nil, err
	}

	testimonials := make([]*models.Testimonial, 0)
	if err := cursor.All(ctx, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

// projectRepo is the concrete implementation of ProjectRepository
type projectRepo struct {
	db *database.DB
}

// NewProjectRepo creates a new project repository
func NewProjectRepo(db *database.DB) ProjectRepository {
	return &projectRepo{db: db}
}

// Create inserts a new project
func (r *projectRepo) Create(ctx context.Context, project *models.Project) error {
	_, err := r.db.Collection(database.CollProjects).InsertOne(ctx, project)
	return err
}

// List returns projects, optionally filtered by category
func (r *projectRepo) List(ctx context.Context, category string) ([]*models.Project, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	return r.find(ctx, filter)
}

// SearchByTech returns projects whose technology list contains tech
func (r *projectRepo) SearchByTech(ctx context.Context, tech string) ([]*models.Project, error) {
	filter := bson.M{}
	if tech != "" {
		filter["technologies"] = bson.M{"$in": []string{tech}}
	}
	return r.find(ctx, filter)
}

// Count returns the total number of projects
func (r *projectRepo) Count(ctx context.Context) (int64, error) {
	return r.db.Collection(database.CollProjects).CountDocuments(ctx, bson.M{})
}

func (r *projectRepo) find(ctx context.Context, filter bson.M) ([]*models.Project, error) {
	cursor, err := r.db.Collection(database.CollProjects).Find(ctx, filter, database.ListOptions())
	if err != nil {
		return nil, err
	}

	projects := make([]*models.Project, 0)
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// caseStudyRepo is the concrete implementation of CaseStudyRepository
type caseStudyRepo struct {
	db *database.DB
}

// NewCaseStudyRepo creates a new case study repository
func NewCaseStudyRepo(db *database.DB) CaseStudyRepository {
	return &caseStudyRepo{db: db}
}

// Create inserts a new case study
func (r *caseStudyRepo) Create(ctx context.Context, study *models.CaseStudy) error {
	_, err := r.db.Collection(database.CollCaseStudies).InsertOne(ctx, study)
	return err
}

// List returns all case studies
func (r *caseStudyRepo) List(ctx context.Context) ([]*models.CaseStudy, error) {
	cursor, err := r.db.Collection(database.CollCaseStudies).Find(ctx, bson.M{}, database.ListOptions())
	if err != nil {
		return nil, err
	}

	studies := make([]*models.CaseStudy, 0)
	if err := cursor.All(ctx, &studies); err != nil {
		return nil, err
	}
	return studies, nil
}
