package service

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mastersolis/marketing-api/internal/ai"
	"github.com/mastersolis/marketing-api/internal/extract"
	"github.com/mastersolis/marketing-api/internal/models"
	"github.com/mastersolis/marketing-api/internal/repository"
)

// applicationService is the concrete implementation of ApplicationService
type applicationService struct {
	repo repository.ApplicationRepository
	gen  ai.Generator
	ext  extract.Extractor
	log  zerolog.Logger
}

func newApplicationService(repo repository.ApplicationRepository, gen ai.Generator, ext extract.Extractor, log zerolog.Logger) ApplicationService {
	return &applicationService{
		repo: repo,
		gen:  gen,
		ext:  ext,
		log:  log.With().Str("service", "application").Logger(),
	}
}

// Submit extracts the resume text, runs the AI analysis, and persists the
// application. The analysis is filled synchronously so the stored record
// already carries it. A best-effort acknowledgment generation follows,
// its result discarded.
func (s *applicationService) Submit(ctx context.Context, req *models.ApplicationRequest, filename string, resume []byte) (*models.JobApplication, error) {
	var resumeText string
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		resumeText = s.ext.PDF(resume)
	case ".docx", ".doc":
		resumeText = s.ext.DOCX(resume)
	default:
		return nil, ErrUnsupportedFileType
	}

	if resumeText == "" {
		return nil, ErrEmptyExtraction
	}

	analysis := s.gen.Generate(ctx, ai.AnalysisPrompt(req.JobTitle, resumeText), ai.TokensAnalysis)

	app := &models.JobApplication{
		ID:          uuid.New().String(),
		JobID:       req.JobID,
		JobTitle:    req.JobTitle,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ResumeText:  resumeText,
		CoverLetter: req.CoverLetter,
		AIAnalysis: &models.ResumeAnalysis{
			RawAnalysis:  analysis,
			ResumeLength: len(resumeText),
		},
		Status:      models.ApplicationStatusPending,
		AppliedDate: models.Now(),
	}

	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("id", app.ID).
		Str("job_id", app.JobID).
		Int("resume_length", len(resumeText)).
		Msg("Application submitted")

	_ = s.gen.Generate(ctx, ai.ApplicationAckPrompt(req.Name, req.JobTitle), ai.TokensAcknowledgment)

	return app, nil
}

// List returns applications, optionally filtered by job and status
func (s *applicationService) List(ctx context.Context, jobID, status string) ([]*models.JobApplication, error) {
	return s.repo.List(ctx, jobID, status)
}

// Get returns an application or ErrNotFound
func (s *applicationService) Get(ctx context.Context, id string) (*models.JobApplication, error) {
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrNotFound
	}
	return app, nil
}

// UpdateStatus sets the review status; a zero modified count reports
// ErrNotFound
func (s *applicationService) UpdateStatus(ctx context.Context, id, status string) error {
	modified, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if modified == 0 {
		return ErrNotFound
	}
	return nil
}
