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

// ArticleInput carries a new article submission. Any approval value a
// client sends at creation time is discarded: every article starts as a
// draft.
type ArticleInput struct {
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	PublisherID *string `json:"publisher_id"`
	ImageURL    *string `json:"image_url"`
}

// ArticleUpdate carries a partial article update; nil fields are left
// untouched
type ArticleUpdate struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	PublisherID *string `json:"publisher_id"`
	ImageURL    *string `json:"image_url"`
	Approved    *bool   `json:"approved"`
}

// articleService is the concrete implementation of ArticleService. It owns
// the approval state machine: Draft on creation, Draft->Published only by an
// editor, Published->Draft forced by any journalist edit, and exactly one
// notification per Draft->Published edge.
type articleService struct {
	articles   repository.ArticleRepository
	publishers repository.PublisherRepository
	notifier   ApprovalNotifier
	log        zerolog.Logger
}

// newArticleService creates a new ArticleService
func newArticleService(repos *repository.Repositories, notifier ApprovalNotifier, log zerolog.Logger) ArticleService {
	return &articleService{
		articles:   repos.Article,
		publishers: repos.Publisher,
		notifier:   notifier,
		log:        log.With().Str("service", "article").Logger(),
	}
}

// List returns articles visible to the actor, newest first
func (s *articleService) List(ctx context.Context, actor *models.User) ([]*models.Article, error) {
	return s.articles.List(ctx, policy.SeesOnlyApproved(actor))
}

// ListPending returns the editor review queue
func (s *articleService) ListPending(ctx context.Context, actor *models.User) ([]*models.Article, error) {
	if !policy.CanViewPending(actor) {
		return nil, Forbidden("Editors only.")
	}
	return s.articles.ListPending(ctx)
}

// ListSubscribed returns the reader's subscribed feed
func (s *articleService) ListSubscribed(ctx context.Context, actor *models.User) ([]*models.Article, error) {
	if !policy.CanViewSubscribedFeed(actor) {
		return nil, Forbidden("Readers only.")
	}
	return s.articles.ListSubscribed(ctx, actor.ID)
}

// Get returns a single article if the actor may view it
func (s *articleService) Get(ctx context.Context, actor *models.User, id string) (*models.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load article: %w", err)
	}
	if article == nil {
		return nil, ErrNotFound
	}
	if !policy.CanViewArticle(actor, article) {
		return nil, Forbidden("Not allowed.")
	}
	return article, nil
}

// Create submits a new article as a draft
func (s *articleService) Create(ctx context.Context, actor *models.User, input *ArticleInput) (*models.Article, error) {
	if !policy.CanCreateContent(actor) {
		return nil, Forbidden("Journalists only.")
	}

	fieldErrs := FieldErrors{}
	if strings.TrimSpace(input.Title) == "" {
		fieldErrs["title"] = "title is required"
	}
	if strings.TrimSpace(input.Content) == "" {
		fieldErrs["content"] = "content is required"
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	if input.PublisherID != nil {
		if err := s.checkPublisher(ctx, *input.PublisherID); err != nil {
			return nil, err
		}
	}

	article := &models.Article{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Content:     input.Content,
		AuthorID:    actor.ID,
		PublisherID: input.PublisherID,
		ImageURL:    input.ImageURL,
		Approved:    false,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.articles.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	s.log.Info().
		Str("article_id", article.ID).
		Str("author_id", actor.ID).
		Msg("Article submitted for review")

	return s.reload(ctx, article.ID)
}

// Update applies a partial edit. A journalist edit of their own article
// always lands as a draft, even when the payload never mentions approval;
// an editor edit preserves the stored approval unless it sets it
// explicitly. The Draft->Published transition is derived from the persisted
// prior value returned by the repository, not from the request.
func (s *articleService) Update(ctx context.Context, actor *models.User, id string, input *ArticleUpdate) (*models.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load article: %w", err)
	}
	if article == nil {
		return nil, ErrNotFound
	}
	if !policy.CanEditContent(actor, article.AuthorID) {
		return nil, Forbidden("Not allowed.")
	}

	if input.Approved != nil && *input.Approved && !policy.CanApprove(actor) {
		return nil, Forbidden("Only editors can approve.")
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, FieldErrors{"title": "title is required"}
		}
		article.Title = *input.Title
	}
	if input.Content != nil {
		if strings.TrimSpace(*input.Content) == "" {
			return nil, FieldErrors{"content": "content is required"}
		}
		article.Content = *input.Content
	}
	if input.PublisherID != nil {
		if err := s.checkPublisher(ctx, *input.PublisherID); err != nil {
			return nil, err
		}
		article.PublisherID = input.PublisherID
	}
	if input.ImageURL != nil {
		article.ImageURL = input.ImageURL
	}

	switch {
	case actor.Role == models.RoleJournalist:
		// Any journalist edit sends the article back for review.
		article.Approved = false
	case input.Approved != nil:
		article.Approved = *input.Approved
	}

	prevApproved, err := s.articles.Update(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}

	updated, err := s.reload(ctx, id)
	if err != nil {
		return nil, err
	}

	// The transition is judged on the value this request persisted, paired
	// with the prior value the repository read under lock. The reload is for
	// the response only; a concurrent write landing after the commit must
	// not double-fire or suppress the notification.
	if !prevApproved && article.Approved {
		if err := s.notifier.ArticleApproved(ctx, updated); err != nil {
			return nil, &ExternalServiceError{Op: "approval notification", Err: err}
		}
	}
	return updated, nil
}

// Delete removes an article
func (s *articleService) Delete(ctx context.Context, actor *models.User, id string) error {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load article: %w", err)
	}
	if article == nil {
		return ErrNotFound
	}
	if !policy.CanDeleteContent(actor, article.AuthorID) {
		return Forbidden("Not allowed.")
	}
	if err := s.articles.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	s.log.Info().
		Str("article_id", id).
		Str("actor_id", actor.ID).
		Msg("Article deleted")
	return nil
}

// Approve publishes a draft. Re-approving an already published article is a
// no-op and fires no notification.
func (s *articleService) Approve(ctx context.Context, actor *models.User, id string) (*models.Article, error) {
	if !policy.CanApprove(actor) {
		return nil, Forbidden("Editors only.")
	}

	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load article: %w", err)
	}
	if article == nil {
		return nil, ErrNotFound
	}

	prevApproved, err := s.articles.SetApproved(ctx, id, true)
	if err != nil {
		return nil, fmt.Errorf("approve article: %w", err)
	}

	updated, err := s.reload(ctx, id)
	if err != nil {
		return nil, err
	}

	if !prevApproved {
		s.log.Info().
			Str("article_id", id).
			Str("editor_id", actor.ID).
			Msg("Article approved and published")
		if err := s.notifier.ArticleApproved(ctx, updated); err != nil {
			return nil, &ExternalServiceError{Op: "approval notification", Err: err}
		}
	}
	return updated, nil
}

func (s *articleService) checkPublisher(ctx context.Context, publisherID string) error {
	publisher, err := s.publishers.GetByID(ctx, publisherID)
	if err != nil {
		return fmt.Errorf("load publisher: %w", err)
	}
	if publisher == nil {
		return FieldErrors{"publisher_id": "publisher does not exist"}
	}
	return nil
}

func (s *articleService) reload(ctx context.Context, id string) (*models.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload article: %w", err)
	}
	if article == nil {
		return nil, ErrNotFound
	}
	return article, nil
}
