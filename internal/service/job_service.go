package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mastersolis/marketing-api/internal/models"
	"github.com/mastersolis/marketing-api/internal/repository"
)

// jobService is the concrete implementation of JobService
type jobService struct {
	repo repository.JobRepository
	log  zerolog.Logger
}

func newJobService(repo repository.JobRepository, log zerolog.Logger) JobService {
	return &jobService{
		repo: repo,
		log:  log.With().Str("service", "job").Logger(),
	}
}

// Create stores a new job posting with status defaulting to active
func (s *jobService) Create(ctx context.Context, req *models.JobRequest) (*models.JobPosting, error) {
	job := &models.JobPosting{
		ID:               uuid.New().String(),
		Title:            req.Title,
		Department:       req.Department,
		Location:         req.Location,
		Type:             req.Type,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		Status:           models.JobStatusActive,
		PostedDate:       models.Now(),
	}

	if err := s.repo.Create(ctx, job); err != nil {
		return nil, err
	}

	s.log.Info().Str("id", job.ID).Str("title", job.Title).Msg("Job posting created")
	return job, nil
}

// List returns job postings, optionally filtered by status
func (s *jobService) List(ctx context.Context, status string) ([]*models.JobPosting, error) {
	return s.repo.List(ctx, status)
}

// Get returns a job posting or ErrNotFound
func (s *jobService) Get(ctx context.Context, id string) (*models.JobPosting, error) {
	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrNotFound
	}
	return job, nil
}

// Update replaces the creation fields of an existing posting and returns
// the updated document
func (s *jobService) Update(ctx context.Context, id string, req *models.JobRequest) (*models.JobPosting, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	if err := s.repo.Update(ctx, id, req); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// Delete removes a posting; deleting an already-deleted posting reports
// ErrNotFound rather than silently succeeding
func (s *jobService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}

	s.log.Info().Str("id", id).Msg("Job posting deleted")
	return nil
}
