package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mastersolis/marketing-api/internal/ai"
	"github.com/mastersolis/marketing-api/internal/auth"
	"github.com/mastersolis/marketing-api/internal/models"
	"github.com/mastersolis/marketing-api/internal/repository"
)

// adminEmailDomain is appended to the username to derive the account email
const adminEmailDomain = "mastersolis.com"

// adminService implements admin registration, login and analytics
type adminService struct {
	admins       repository.AdminRepository
	contacts     repository.ContactRepository
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	blogs        repository.BlogRepository
	projects     repository.ProjectRepository
	gen          ai.Generator
	log          zerolog.Logger
}

func newAdminService(repos *repository.Repositories, gen ai.Generator, log zerolog.Logger) AdminService {
	return &adminService{
		admins:       repos.Admin,
		contacts:     repos.Contact,
		applications: repos.Application,
		jobs:         repos.Job,
		blogs:        repos.Blog,
		projects:     repos.Project,
		gen:          gen,
		log:          log.With().Str("service", "admin").Logger(),
	}
}

// Register creates an admin account. Usernames are unique across the
// collection; the email is derived from the username.
func (s *adminService) Register(ctx context.Context, creds *models.AdminCredentials) (*models.AdminUser, error) {
	existing, err := s.admins.GetByUsername(ctx, creds.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := auth.Hash(creds.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.AdminUser{
		ID:           uuid.New().String(),
		Username:     creds.Username,
		Email:        fmt.Sprintf("%s@%s", creds.Username, adminEmailDomain),
		PasswordHash: hash,
		CreatedDate:  models.Now(),
	}

	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, err
	}

	s.log.Info().Str("username", admin.Username).Msg("Admin registered")
	return admin, nil
}

// Login verifies credentials. An unknown username and a wrong password
// are indistinguishable to the caller.
func (s *adminService) Login(ctx context.Context, creds *models.AdminCredentials) (*models.AdminUser, error) {
	admin, err := s.admins.GetByUsername(ctx, creds.Username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrInvalidCredentials
	}
	if !auth.Verify(creds.Password, admin.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

// Analytics aggregates counts across the collections and generates a
// narrative summary from them, all synchronously
func (s *adminService) Analytics(ctx context.Context) (*models.Analytics, error) {
	totalContacts, err := s.contacts.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalApplications, err := s.applications.Count(ctx)
	if err != nil {
		return nil, err
	}
	activeJobs, err := s.jobs.CountByStatus(ctx, models.JobStatusActive)
	if err != nil {
		return nil, err
	}
	publishedBlogs, err := s.blogs.CountPublished(ctx)
	if err != nil {
		return nil, err
	}
	totalProjects, err := s.projects.Count(ctx)
	if err != nil {
		return nil, err
	}

	summary := s.gen.Generate(ctx,
		ai.AnalyticsPrompt(totalContacts, totalApplications, activeJobs, publishedBlogs, totalProjects),
		ai.TokensAnalytics)

	return &models.Analytics{
		TotalContacts:     totalContacts,
		TotalApplications: totalApplications,
		TotalJobs:         activeJobs,
		TotalBlogs:        publishedBlogs,
		TotalProjects:     totalProjects,
		AISummary:         summary,
	}, nil
}
