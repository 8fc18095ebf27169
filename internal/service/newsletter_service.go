package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/newsroom-api/internal/models"
	"github.com/newsroom-api/internal/policy"
	"github.com/newsroom-api/internal/repository"
	"github.com/rs/zerolog"
)

// NewsletterInput carries a new newsletter
type NewsletterInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ArticleIDs  []string `json:"article_ids"`
}

// NewsletterUpdate carries a partial newsletter update; nil fields are left
// untouched and a nil ArticleIDs keeps the current membership
type NewsletterUpdate struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	ArticleIDs  []string `json:"article_ids"`
}

// newsletterService is the concrete implementation of NewsletterService
type newsletterService struct {
	newsletters repository.NewsletterRepository
	articles    repository.ArticleRepository
	log         zerolog.Logger
}

// newNewsletterService creates a new NewsletterService
func newNewsletterService(repos *repository.Repositories, log zerolog.Logger) NewsletterService {
	return &newsletterService{
		newsletters: repos.Newsletter,
		articles:    repos.Article,
		log:         log.With().Str("service", "newsletter").Logger(),
	}
}

// List returns newsletters visible to the actor, newest first. Readers see
// only newsletters carrying at least one approved article, with the nested
// set filtered to approved members.
func (s *newsletterService) List(ctx context.Context, actor *models.User) ([]*models.Newsletter, error) {
	newsletters, err := s.newsletters.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list newsletters: %w", err)
	}
	if !policy.SeesOnlyApproved(actor) {
		return newsletters, nil
	}

	visible := make([]*models.Newsletter, 0, len(newsletters))
	for _, n := range newsletters {
		if !n.HasApprovedArticle() {
			continue
		}
		n.Articles = n.ApprovedArticles()
		visible = append(visible, n)
	}
	return visible, nil
}

// Get returns a single newsletter. A reader requesting one with zero
// approved members gets not-found rather than forbidden, hiding the
// newsletter's existence.
func (s *newsletterService) Get(ctx context.Context, actor *models.User, id string) (*models.Newsletter, error) {
	newsletter, err := s.newsletters.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load newsletter: %w", err)
	}
	if newsletter == nil {
		return nil, ErrNotFound
	}
	if policy.SeesOnlyApproved(actor) {
		if !newsletter.HasApprovedArticle() {
			return nil, ErrNotFound
		}
		newsletter.Articles = newsletter.ApprovedArticles()
	}
	return newsletter, nil
}

// Create assembles a new newsletter
func (s *newsletterService) Create(ctx context.Context, actor *models.User, input *NewsletterInput) (*models.Newsletter, error) {
	if !policy.CanCreateContent(actor) {
		return nil, Forbidden("Journalists only.")
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, FieldErrors{"title": "title is required"}
	}
	if err := s.checkArticles(ctx, input.ArticleIDs); err != nil {
		return nil, err
	}

	newsletter := &models.Newsletter{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		AuthorID:    actor.ID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.newsletters.Create(ctx, newsletter, input.ArticleIDs); err != nil {
		return nil, fmt.Errorf("create newsletter: %w", err)
	}

	s.log.Info().
		Str("newsletter_id", newsletter.ID).
		Str("author_id", actor.ID).
		Int("articles", len(input.ArticleIDs)).
		Msg("Newsletter created")

	return s.newsletters.GetByID(ctx, newsletter.ID)
}

// Update applies a partial edit to a newsletter
func (s *newsletterService) Update(ctx context.Context, actor *models.User, id string, input *NewsletterUpdate) (*models.Newsletter, error) {
	newsletter, err := s.newsletters.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load newsletter: %w", err)
	}
	if newsletter == nil {
		return nil, ErrNotFound
	}
	if !policy.CanEditContent(actor, newsletter.AuthorID) {
		return nil, Forbidden("Not allowed.")
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, FieldErrors{"title": "title is required"}
		}
		newsletter.Title = *input.Title
	}
	if input.Description != nil {
		newsletter.Description = *input.Description
	}
	if input.ArticleIDs != nil {
		if err := s.checkArticles(ctx, input.ArticleIDs); err != nil {
			return nil, err
		}
	}

	if err := s.newsletters.Update(ctx, newsletter, input.ArticleIDs); err != nil {
		return nil, fmt.Errorf("update newsletter: %w", err)
	}
	return s.newsletters.GetByID(ctx, id)
}

// Delete removes a newsletter
func (s *newsletterService) Delete(ctx context.Context, actor *models.User, id string) error {
	newsletter, err := s.newsletters.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load newsletter: %w", err)
	}
	if newsletter == nil {
		return ErrNotFound
	}
	if !policy.CanDeleteContent(actor, newsletter.AuthorID) {
		return Forbidden("Not allowed.")
	}
	if err := s.newsletters.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete newsletter: %w", err)
	}
	return nil
}

func (s *newsletterService) checkArticles(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	count, err := s.articles.CountExisting(ctx, ids)
	if err != nil {
		return fmt.Errorf("check articles: %w", err)
	}
	if count != len(ids) {
		return FieldErrors{"article_ids": "one or more articles do not exist"}
	}
	return nil
}
