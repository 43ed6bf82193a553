package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mastersolis/marketing-api/internal/ai"
	"github.com/mastersolis/marketing-api/internal/models"
	"github.com/mastersolis/marketing-api/internal/repository"
)

// contactService is the concrete implementation of ContactService
type contactService struct {
	repo repository.ContactRepository
	gen  ai.Generator
	log  zerolog.Logger
}

func newContactService(repo repository.ContactRepository, gen ai.Generator, log zerolog.Logger) ContactService {
	return &contactService{
		repo: repo,
		gen:  gen,
		log:  log.With().Str("service", "contact").Logger(),
	}
}

// Submit persists a contact submission and issues a best-effort
// acknowledgment email generation whose result is intentionally
// unobserved; it can never affect the submission's outcome.
func (s *contactService) Submit(ctx context.Context, req *models.ContactRequest) (*models.ContactSubmission, error) {
	contact := &models.ContactSubmission{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Timestamp: models.Now(),
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, err
	}

	s.log.Info().Str("id", contact.ID).Msg("Contact submission stored")

	_ = s.gen.Generate(ctx, ai.ContactAckPrompt(contact.Name, contact.Subject, contact.Message), ai.TokensAcknowledgment)

	return contact, nil
}

// List returns all contact submissions
func (s *contactService) List(ctx context.Context) ([]*models.ContactSubmission, error) {
	return s.repo.List(ctx)
}
