package repository

import (
	"context"

	"github.com/newsroom-api/internal/database"
	"github.com/newsroom-api/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	// CountJournalists returns how many of the given IDs belong to users
	// holding the journalist role.
	CountJournalists(ctx context.Context, ids []string) (int, error)
}

// PublisherRepository defines the interface for publisher data operations
type PublisherRepository interface {
	GetByID(ctx context.Context, id string) (*models.Publisher, error)
	List(ctx context.Context) ([]*models.Publisher, error)
	CountExisting(ctx context.Context, ids []string) (int, error)
}

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id string) (*models.Article, error)
	// List returns articles newest first, optionally restricted to
	// approved ones.
	List(ctx context.Context, approvedOnly bool) ([]*models.Article, error)
	// ListPending returns unapproved articles newest first (review queue).
	ListPending(ctx context.Context) ([]*models.Article, error)
	// ListSubscribed returns approved articles whose author or publisher
	// the reader is subscribed to, deduplicated, newest first.
	ListSubscribed(ctx context.Context, readerID string) ([]*models.Article, error)
	// Update persists the article and returns the approved value that was
	// stored before the write. The read and the write happen in one
	// transaction with the row locked, so the caller can derive the
	// approval transition race-free.
	Update(ctx context.Context, article *models.Article) (prevApproved bool, err error)
	// SetApproved flips only the approved flag, returning the prior value
	// under the same locking discipline as Update.
	SetApproved(ctx context.Context, id string, approved bool) (prevApproved bool, err error)
	Delete(ctx context.Context, id string) error
	CountExisting(ctx context.Context, ids []string) (int, error)
}

// NewsletterRepository defines the interface for newsletter data operations
type NewsletterRepository interface {
	// Create persists the newsletter and its article memberships.
	Create(ctx context.Context, newsletter *models.Newsletter, articleIDs []string) error
	GetByID(ctx context.Context, id string) (*models.Newsletter, error)
	List(ctx context.Context) ([]*models.Newsletter, error)
	// Update persists title/description; a non-nil articleIDs replaces the
	// membership set.
	Update(ctx context.Context, newsletter *models.Newsletter, articleIDs []string) error
	Delete(ctx context.Context, id string) error
}

// SubscriptionRepository defines the interface for reader subscriptions
type SubscriptionRepository interface {
	Get(ctx context.Context, userID string) (*models.Subscriptions, error)
	// Replace swaps the reader's full subscription set atomically.
	Replace(ctx context.Context, userID string, subs *models.Subscriptions) error
	// SubscriberEmails resolves the distinct non-empty email addresses of
	// readers subscribed to the author or, when publisherID is non-nil, to
	// the publisher.
	SubscriberEmails(ctx context.Context, authorID string, publisherID *string) ([]string, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	User         UserRepository
	Publisher    PublisherRepository
	Article      ArticleRepository
	Newsletter   NewsletterRepository
	Subscription SubscriptionRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepo(db),
		Publisher:    NewPublisherRepo(db),
		Article:      NewArticleRepo(db),
		Newsletter:   NewNewsletterRepo(db),
		Subscription: NewSubscriptionRepo(db),
	}
}
