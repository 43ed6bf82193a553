package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mastersolis/marketing-api/internal/ai"
	"github.com/mastersolis/marketing-api/internal/models"
	"github.com/mastersolis/marketing-api/internal/repository"
)

// showcaseService implements testimonial, project and case study
// operations
type showcaseService struct {
	testimonials repository.TestimonialRepository
	projects     repository.ProjectRepository
	caseStudies  repository.CaseStudyRepository
	gen          ai.Generator
	log          zerolog.Logger
}

func newShowcaseService(repos *repository.Repositories, gen ai.Generator, log zerolog.Logger) ShowcaseService {
	return &showcaseService{
		testimonials: repos.Testimonial,
		projects:     repos.Project,
		caseStudies:  repos.CaseStudy,
		gen:          gen,
		log:          log.With().Str("service", "showcase").Logger(),
	}
}

// CreateTestimonial stores a new testimonial as submitted
func (s *showcaseService) CreateTestimonial(ctx context.Context, req *models.TestimonialRequest) (*models.Testimonial, error) {
	testimonial := &models.Testimonial{
		ID:          uuid.New().String(),
		ClientName:  req.ClientName,
		Company:     req.Company,
		Position:    req.Position,
		Content:     req.Content,
		Rating:      req.Rating,
		Avatar:      req.Avatar,
		CreatedDate: models.Now(),
	}

	if err := s.testimonials.Create(ctx, testimonial); err != nil {
		return nil, err
	}
	return testimonial, nil
}

// ListTestimonials returns testimonials, optionally filtered by featured
func (s *showcaseService) ListTestimonials(ctx context.Context, featured *bool) ([]*models.Testimonial, error) {
	return s.testimonials.List(ctx, featured)
}

// GenerateTestimonial is a pure generation passthrough: nothing is
// persisted
func (s *showcaseService) GenerateTestimonial(ctx context.Context, req *models.GenerateRequest) string {
	return s.gen.Generate(ctx, ai.TestimonialPrompt(req.Prompt, req.Context), ai.TokensTestimonial)
}

// CreateProject stores a new project
func (s *showcaseService) CreateProject(ctx context.Context, req *models.ProjectRequest) (*models.Project, error) {
	project := &models.Project{
		ID:             uuid.New().String(),
		Title:          req.Title,
		Description:    req.Description,
		Technologies:   req.Technologies,
		Category:       req.Category,
		Image:          req.Image,
		Client:         req.Client,
		CompletionDate: req.CompletionDate,
		CreatedDate:    models.Now(),
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// ListProjects returns projects, optionally filtered by category
func (s *showcaseService) ListProjects(ctx context.Context, category string) ([]*models.Project, error) {
	return s.projects.List(ctx, category)
}

// SearchProjects returns projects matching a technology
func (s *showcaseService) SearchProjects(ctx context.Context, tech string) ([]*models.Project, error) {
	return s.projects.SearchByTech(ctx, tech)
}

// CreateCaseStudy generates the summary before persisting, so the stored
// case study already carries it
func (s *showcaseService) CreateCaseStudy(ctx context.Context, req *models.CaseStudyRequest) (*models.CaseStudy, error) {
	study := &models.CaseStudy{
		ID:           uuid.New().String(),
		Title:        req.Title,
		Client:       req.Client,
		Challenge:    req.Challenge,
		Solution:     req.Solution,
		Results:      req.Results,
		Technologies: req.Technologies,
		Image:        req.Image,
		CreatedDate:  models.Now(),
		AISummary:    s.gen.Generate(ctx, ai.CaseSummaryPrompt(req.Challenge, req.Solution, req.Results), ai.TokensCaseSummary),
	}

	if err := s.caseStudies.Create(ctx, study); err != nil {
		return nil, err
	}

	s.log.Info().Str("id", study.ID).Msg("Case study created")
	return study, nil
}

// ListCaseStudies returns all case studies
func (s *showcaseService) ListCaseStudies(ctx context.Context) ([]*models.CaseStudy, error) {
	return s.caseStudies.List(ctx)
}
