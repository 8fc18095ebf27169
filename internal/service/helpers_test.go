package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/newsroom-api/internal/config"
	"github.com/newsroom-api/internal/mocks"
	"github.com/newsroom-api/internal/models"
	"github.com/newsroom-api/internal/notify"
	"github.com/newsroom-api/internal/repository"
	"github.com/newsroom-api/internal/service"
	"github.com/rs/zerolog"
)

// env wires the services against in-memory repositories and recording
// collaborators, with the real notification pipeline in between.
type env struct {
	services    *service.Services
	users       *mocks.MockUserRepository
	subs        *mocks.MockSubscriptionRepository
	articles    *mocks.MockArticleRepository
	newsletters *mocks.MockNewsletterRepository
	publishers  *mocks.MockPublisherRepository
	mailer      *mocks.MockMailer
	social      *mocks.MockSocialPoster
}

func newEnv() *env {
	users := mocks.NewMockUserRepository()
	subs := mocks.NewMockSubscriptionRepository(users)
	articles := mocks.NewMockArticleRepository()
	articles.Subs = subs
	newsletters := mocks.NewMockNewsletterRepository(articles)
	publishers := mocks.NewMockPublisherRepository()

	repos := &repository.Repositories{
		User:         users,
		Publisher:    publishers,
		Article:      articles,
		Newsletter:   newsletters,
		Subscription: subs,
	}

	cfg := &config.Config{
		Auth: config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour},
		Site: config.SiteConfig{BaseURL: "http://news.test", ArticlePath: "/articles/%s/"},
	}

	mailer := mocks.NewMockMailer()
	social := mocks.NewMockSocialPoster()
	notifier := notify.New(subs, mailer, social, &cfg.Site, "news@example.com", zerolog.Nop())

	return &env{
		services:    service.NewServices(repos, cfg, notifier, zerolog.Nop()),
		users:       users,
		subs:        subs,
		articles:    articles,
		newsletters: newsletters,
		publishers:  publishers,
		mailer:      mailer,
		social:      social,
	}
}

func (e *env) addUser(id string, role models.Role, email string) *models.User {
	user := &models.User{
		ID:        id,
		Username:  id,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now(),
	}
	e.users.Users[id] = user
	return user
}

func (e *env) addPublisher(id, name string) *models.Publisher {
	publisher := &models.Publisher{ID: id, Name: name, CreatedAt: time.Now()}
	e.publishers.Publishers[id] = publisher
	return publisher
}

func (e *env) createArticle(t *testing.T, author *models.User, title string, publisherID *string) *models.Article {
	t.Helper()
	article, err := e.services.Article.Create(context.Background(), author, &service.ArticleInput{
		Title:       title,
		Content:     "Content of " + title,
		PublisherID: publisherID,
	})
	if err != nil {
		t.Fatalf("create article: %v", err)
	}
	return article
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
