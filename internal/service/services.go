package service

import (
	"context"

	"github.com/newsroom-api/internal/config"
	"github.com/newsroom-api/internal/models"
	"github.com/newsroom-api/internal/policy"
	"github.com/newsroom-api/internal/repository"
	"github.com/rs/zerolog"
)

// AuthService defines the interface for registration and token issuance
type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	UserFromToken(ctx context.Context, token string) (*models.User, error)
}

// ArticleService defines the interface for the article workflow
type ArticleService interface {
	List(ctx context.Context, actor *models.User) ([]*models.Article, error)
	ListPending(ctx context.Context, actor *models.User) ([]*models.Article, error)
	ListSubscribed(ctx context.Context, actor *models.User) ([]*models.Article, error)
	Get(ctx context.Context, actor *models.User, id string) (*models.Article, error)
	Create(ctx context.Context, actor *models.User, input *ArticleInput) (*models.Article, error)
	Update(ctx context.Context, actor *models.User, id string, input *ArticleUpdate) (*models.Article, error)
	Delete(ctx context.Context, actor *models.User, id string) error
	Approve(ctx context.Context, actor *models.User, id string) (*models.Article, error)
}

// NewsletterService defines the interface for newsletter operations
type NewsletterService interface {
	List(ctx context.Context, actor *models.User) ([]*models.Newsletter, error)
	Get(ctx context.Context, actor *models.User, id string) (*models.Newsletter, error)
	Create(ctx context.Context, actor *models.User, input *NewsletterInput) (*models.Newsletter, error)
	Update(ctx context.Context, actor *models.User, id string, input *NewsletterUpdate) (*models.Newsletter, error)
	Delete(ctx context.Context, actor *models.User, id string) error
}

// PublisherService defines the interface for publisher reads
type PublisherService interface {
	List(ctx context.Context) ([]*models.Publisher, error)
	Get(ctx context.Context, id string) (*models.Publisher, error)
}

// SubscriptionService defines the interface for reader subscriptions
type SubscriptionService interface {
	Get(ctx context.Context, actor *models.User) (*models.Subscriptions, error)
	Update(ctx context.Context, actor *models.User, subs *models.Subscriptions) (*models.Subscriptions, error)
}

// ApprovalNotifier dispatches the notification pipeline for one approval
// transition. Satisfied by notify.Notifier.
type ApprovalNotifier interface {
	ArticleApproved(ctx context.Context, article *models.Article) error
}

// Services holds all service interfaces plus the fixed role descriptors
type Services struct {
	Auth         AuthService
	Article      ArticleService
	Newsletter   NewsletterService
	Publisher    PublisherService
	Subscription SubscriptionService
	Roles        []policy.RoleDescriptor
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, notifier ApprovalNotifier, log zerolog.Logger) *Services {
	return &Services{
		Auth:         newAuthService(repos.User, &cfg.Auth, log),
		Article:      newArticleService(repos, notifier, log),
		Newsletter:   newNewsletterService(repos, log),
		Publisher:    newPublisherService(repos.Publisher),
		Subscription: newSubscriptionService(repos, log),
		Roles:        policy.Roles(),
	}
}
