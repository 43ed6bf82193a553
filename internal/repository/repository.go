package repository

import (
	"context"

	"github.com/mastersolis/marketing-api/internal/database"
	"github.com/mastersolis/marketing-api/internal/models"
)

// ContactRepository defines data operations for contact submissions
type ContactRepository interface {
	Create(ctx context.Context, contact *models.ContactSubmission) error
	List(ctx context.Context) ([]*models.ContactSubmission, error)
	Count(ctx context.Context) (int64, error)
}

// JobRepository defines data operations for job postings
type JobRepository interface {
	Create(ctx context.Context, job *models.JobPosting) error
	List(ctx context.Context, status string) ([]*models.JobPosting, error)
	GetByID(ctx context.Context, id string) (*models.JobPosting, error)
	Update(ctx context.Context, id string, req *models.JobRequest) error
	Delete(ctx context.Context, id string) (int64, error)
	CountByStatus(ctx context.Context, status models.JobStatus) (int64, error)
}

// ApplicationRepository defines data operations for job applications
type ApplicationRepository interface {
	Create(ctx context.Context, app *models.JobApplication) error
	List(ctx context.Context, jobID, status string) ([]*models.JobApplication, error)
	GetByID(ctx context.Context, id string) (*models.JobApplication, error)
	UpdateStatus(ctx context.Context, id, status string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// BlogRepository defines data operations for blog posts.
// Slug is the natural key; uniqueness is not enforced and lookups
// return the first matching document.
type BlogRepository interface {
	Create(ctx context.Context, post *models.BlogPost) error
	List(ctx context.Context, published *bool) ([]*models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	DeleteBySlug(ctx context.Context, slug string) (int64, error)
	CountPublished(ctx context.Context) (int64, error)
}

// TestimonialRepository defines data operations for testimonials
type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *models.Testimonial) error
	List(ctx context.Context, featured *bool) ([]*models.Testimonial, error)
}

// ProjectRepository defines data operations for portfolio projects
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	List(ctx context.Context, category string) ([]*models.Project, error)
	SearchByTech(ctx context.Context, tech string) ([]*models.Project, error)
	Count(ctx context.Context) (int64, error)
}

// CaseStudyRepository defines data operations for case studies
type CaseStudyRepository interface {
	Create(ctx context.Context, study *models.CaseStudy) error
	List(ctx context.Context) ([]*models.CaseStudy, error)
}

// AdminRepository defines data operations for admin users
type AdminRepository interface {
	Create(ctx context.Context, admin *models.AdminUser) error
	GetByUsername(ctx context.Context, username string) (*models.AdminUser, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Contact     ContactRepository
	Job         JobRepository
	Application ApplicationRepository
	Blog        BlogRepository
	Testimonial TestimonialRepository
	Project     ProjectRepository
	CaseStudy   CaseStudyRepository
	Admin       AdminRepository
}

// New creates all repositories with the given store connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Contact:     NewContactRepo(db),
		Job:         NewJobRepo(db),
		Application: NewApplicationRepo(db),
		Blog:        NewBlogRepo(db),
		Testimonial: NewTestimonialRepo(db),
		Project:     NewProjectRepo(db),
		CaseStudy:   NewCaseStudyRepo(db),
		Admin:       NewAdminRepo(db),
	}
}
