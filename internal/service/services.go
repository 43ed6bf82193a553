package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mastersolis/marketing-api/internal/ai"
	"github.com/mastersolis/marketing-api/internal/extract"
	"github.com/mastersolis/marketing-api/internal/models"
	"github.com/mastersolis/marketing-api/internal/repository"
)

// ContactService defines contact submission operations
type ContactService interface {
	Submit(ctx context.Context, req *models.ContactRequest) (*models.ContactSubmission, error)
	List(ctx context.Context) ([]*models.ContactSubmission, error)
}

// JobService defines job posting operations
type JobService interface {
	Create(ctx context.Context, req *models.JobRequest) (*models.JobPosting, error)
	List(ctx context.Context, status string) ([]*models.JobPosting, error)
	Get(ctx context.Context, id string) (*models.JobPosting, error)
	Update(ctx context.Context, id string, req *models.JobRequest) (*models.JobPosting, error)
	Delete(ctx context.Context, id string) error
}

// ApplicationService defines job application operations
type ApplicationService interface {
	Submit(ctx context.Context, req *models.ApplicationRequest, filename string, resume []byte) (*models.JobApplication, error)
	List(ctx context.Context, jobID, status string) ([]*models.JobApplication, error)
	Get(ctx context.Context, id string) (*models.JobApplication, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// BlogService defines blog post operations
type BlogService interface {
	Create(ctx context.Context, req *models.BlogRequest) (*models.BlogPost, error)
	List(ctx context.Context, published *bool) ([]*models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	Summarize(ctx context.Context, slug string) (string, error)
	DeleteBySlug(ctx context.Context, slug string) error
}

// ShowcaseService defines testimonial, project and case study operations
type ShowcaseService interface {
	CreateTestimonial(ctx context.Context, req *models.TestimonialRequest) (*models.Testimonial, error)
	ListTestimonials(ctx context.Context, featured *bool) ([]*models.Testimonial, error)
	GenerateTestimonial(ctx context.Context, req *models.GenerateRequest) string

	CreateProject(ctx context.Context, req *models.ProjectRequest) (*models.Project, error)
	ListProjects(ctx context.Context, category string) ([]*models.Project, error)
	SearchProjects(ctx context.Context, tech string) ([]*models.Project, error)

	CreateCaseStudy(ctx context.Context, req *models.CaseStudyRequest) (*models.CaseStudy, error)
	ListCaseStudies(ctx context.Context) ([]*models.CaseStudy, error)
}

// AdminService defines admin account and analytics operations
type AdminService interface {
	Register(ctx context.Context, creds *models.AdminCredentials) (*models.AdminUser, error)
	Login(ctx context.Context, creds *models.AdminCredentials) (*models.AdminUser, error)
	Analytics(ctx context.Context) (*models.Analytics, error)
}

// ChatService defines the chatbot passthrough
type ChatService interface {
	Chat(ctx context.Context, message string) string
}

// Services holds all service interfaces
type Services struct {
	Contact     ContactService
	Job         JobService
	Application ApplicationService
	Blog        BlogService
	Showcase    ShowcaseService
	Admin       AdminService
	Chat        ChatService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, gen ai.Generator, ext extract.Extractor, log zerolog.Logger) *Services {
	return &Services{
		Contact:     newContactService(repos.Contact, gen, log),
		Job:         newJobService(repos.Job, log),
		Application: newApplicationService(repos.Application, gen, ext, log),
		Blog:        newBlogService(repos.Blog, gen, log),
		Showcase:    newShowcaseService(repos, gen, log),
		Admin:       newAdminService(repos, gen, log),
		Chat:        newChatService(gen),
	}
}
