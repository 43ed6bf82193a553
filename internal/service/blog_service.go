package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mastersolis/marketing-api/internal/ai"
	"github.com/mastersolis/marketing-api/internal/models"
	"github.com/mastersolis/marketing-api/internal/repository"
)

// blogService is the concrete implementation of BlogService
type blogService struct {
	repo repository.BlogRepository
	gen  ai.Generator
	log  zerolog.Logger
}

func newBlogService(repo repository.BlogRepository, gen ai.Generator, log zerolog.Logger) BlogService {
	return &blogService{
		repo: repo,
		gen:  gen,
		log:  log.With().Str("service", "blog").Logger(),
	}
}

// Create derives the slug and generates excerpt and SEO description
// before persisting, so the stored post already carries them
func (s *blogService) Create(ctx context.Context, req *models.BlogRequest) (*models.BlogPost, error) {
	now := models.Now()
	post := &models.BlogPost{
		ID:             uuid.New().String(),
		Title:          req.Title,
		Slug:           models.Slugify(req.Title),
		Content:        req.Content,
		Author:         req.Author,
		Tags:           req.Tags,
		FeaturedImage:  req.FeaturedImage,
		Published:      req.Published,
		CreatedDate:    now,
		UpdatedDate:    now,
		Excerpt:        s.gen.Generate(ctx, ai.ExcerptPrompt(req.Title, req.Content), ai.TokensExcerpt),
		SEODescription: s.gen.Generate(ctx, ai.SEOPrompt(req.Title, req.Content), ai.TokensSEO),
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.log.Info().Str("id", post.ID).Str("slug", post.Slug).Msg("Blog post created")
	return post, nil
}

// List returns blog posts, optionally filtered by published state
func (s *blogService) List(ctx context.Context, published *bool) ([]*models.BlogPost, error) {
	return s.repo.List(ctx, published)
}

// GetBySlug returns the first post matching the slug or ErrNotFound
func (s *blogService) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// Summarize generates an on-demand bullet summary of a post; the summary
// is returned but never persisted
func (s *blogService) Summarize(ctx context.Context, slug string) (string, error) {
	post, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return "", err
	}
	return s.gen.Generate(ctx, ai.BlogSummaryPrompt(post.Title, post.Content), ai.TokensBlogSummary), nil
}

// DeleteBySlug removes the first post matching the slug or reports
// ErrNotFound
func (s *blogService) DeleteBySlug(ctx context.Context, slug string) error {
	deleted, err := s.repo.DeleteBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}

	s.log.Info().Str("slug", slug).Msg("Blog post deleted")
	return nil
}
