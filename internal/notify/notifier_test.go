package notify_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/newsroom-api/internal/config"
	"github.com/newsroom-api/internal/mocks"
	"github.com/newsroom-api/internal/models"
	"github.com/newsroom-api/internal/notify"
	"github.com/rs/zerolog"
)

var testSite = config.SiteConfig{
	BaseURL:     "http://news.test",
	ArticlePath: "/articles/%s/",
}

func setupNotifier() (*notify.Notifier, *mocks.MockUserRepository, *mocks.MockSubscriptionRepository, *mocks.MockMailer, *mocks.MockSocialPoster) {
	users := mocks.NewMockUserRepository()
	subs := mocks.NewMockSubscriptionRepository(users)
	mailer := mocks.NewMockMailer()
	social := mocks.NewMockSocialPoster()
	notifier := notify.New(subs, mailer, social, &testSite, "news@example.com", zerolog.Nop())
	return notifier, users, subs, mailer, social
}

func publisherArticle() *models.Article {
	publisherID := "pub-1"
	return &models.Article{
		ID:          "art-1",
		Title:       "Hello World",
		Content:     "Body of the article.",
		AuthorID:    "jour-1",
		Author:      models.PublicUser{ID: "jour-1", Username: "jane", Role: models.RoleJournalist},
		PublisherID: &publisherID,
		Publisher:   &models.Publisher{ID: publisherID, Name: "Daily Chronicle"},
		Approved:    true,
	}
}

func addReader(users *mocks.MockUserRepository, id, email string) {
	users.Users[id] = &models.User{ID: id, Username: id, Email: email, Role: models.RoleReader}
}

func TestArticleApprovedSendsOneBatchedMail(t *testing.T) {
	notifier, users, subs, mailer, _ := setupNotifier()

	addReader(users, "r1", "r1@example.com")
	addReader(users, "r2", "r2@example.com")
	subs.JournalistSubs["r1"] = []string{"jour-1"}
	subs.PublisherSubs["r2"] = []string{"pub-1"}

	if err := notifier.ArticleApproved(context.Background(), publisherArticle()); err != nil {
		t.Fatalf("ArticleApproved failed: %v", err)
	}

	if len(mailer.Sent) != 1 {
		t.Fatalf("expected 1 mail dispatch, got %d", len(mailer.Sent))
	}
	mail := mailer.Sent[0]
	if mail.Subject != "New Article: Hello World" {
		t.Errorf("subject = %q", mail.Subject)
	}
	if len(mail.To) != 2 {
		t.Errorf("recipients = %v, want both subscribers", mail.To)
	}
	if !strings.Contains(mail.Body, "Excerpt:") {
		t.Error("body missing Excerpt: block")
	}
	if !strings.Contains(mail.Body, "Read more: http://news.test/articles/art-1/") {
		t.Errorf("body missing absolute link, body = %q", mail.Body)
	}
	if !strings.Contains(mail.Body, "Publisher: Daily Chronicle") {
		t.Errorf("body missing publisher scope, body = %q", mail.Body)
	}
}

func TestArticleApprovedDeduplicatesRecipients(t *testing.T) {
	notifier, users, subs, mailer, _ := setupNotifier()

	// One reader subscribed to both the author and the publisher.
	addReader(users, "r1", "both@example.com")
	subs.JournalistSubs["r1"] = []string{"jour-1"}
	subs.PublisherSubs["r1"] = []string{"pub-1"}

	if err := notifier.ArticleApproved(context.Background(), publisherArticle()); err != nil {
		t.Fatalf("ArticleApproved failed: %v", err)
	}

	if len(mailer.Sent) != 1 {
		t.Fatalf("expected 1 mail dispatch, got %d", len(mailer.Sent))
	}
	if len(mailer.Sent[0].To) != 1 || mailer.Sent[0].To[0] != "both@example.com" {
		t.Errorf("recipients = %v, want exactly one", mailer.Sent[0].To)
	}
}

func TestArticleApprovedSkipsReadersWithoutEmail(t *testing.T) {
	notifier, users, subs, mailer, _ := setupNotifier()

	addReader(users, "r1", "")
	subs.JournalistSubs["r1"] = []string{"jour-1"}

	if err := notifier.ArticleApproved(context.Background(), publisherArticle()); err != nil {
		t.Fatalf("ArticleApproved failed: %v", err)
	}
	if len(mailer.Sent) != 0 {
		t.Errorf("expected no mail for zero usable recipients, got %d", len(mailer.Sent))
	}
}

func TestIndependentArticleIgnoresPublisherSubscribers(t *testing.T) {
	notifier, users, subs, mailer, social := setupNotifier()

	addReader(users, "r1", "pubfan@example.com")
	subs.PublisherSubs["r1"] = []string{"pub-1"}

	article := publisherArticle()
	article.PublisherID = nil
	article.Publisher = nil

	if err := notifier.ArticleApproved(context.Background(), article); err != nil {
		t.Fatalf("ArticleApproved failed: %v", err)
	}
	if len(mailer.Sent) != 0 {
		t.Errorf("publisher subscriber notified for independent article")
	}
	if len(social.Posts) != 1 || !strings.Contains(social.Posts[0], "(Independent)") {
		t.Errorf("social post = %v, want Independent scope", social.Posts)
	}
}

func TestSocialFailureIsSwallowed(t *testing.T) {
	notifier, users, subs, mailer, social := setupNotifier()
	social.Err = errors.New("network down")

	addReader(users, "r1", "r1@example.com")
	subs.JournalistSubs["r1"] = []string{"jour-1"}

	if err := notifier.ArticleApproved(context.Background(), publisherArticle()); err != nil {
		t.Fatalf("social failure must not surface, got %v", err)
	}
	if len(mailer.Sent) != 1 {
		t.Errorf("mail must still be sent when social post fails")
	}
	if social.Calls != 1 {
		t.Errorf("social poster calls = %d, want 1", social.Calls)
	}
}

func TestMailFailurePropagates(t *testing.T) {
	notifier, users, subs, mailer, social := setupNotifier()
	mailer.Err = errors.New("smtp refused")

	addReader(users, "r1", "r1@example.com")
	subs.JournalistSubs["r1"] = []string{"jour-1"}

	if err := notifier.ArticleApproved(context.Background(), publisherArticle()); err == nil {
		t.Fatal("expected mail failure to propagate")
	}
	if social.Calls != 0 {
		t.Errorf("social post attempted after mail failure")
	}
}
