package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/newsroom-api/internal/mocks"
	"github.com/newsroom-api/internal/models"
)

func TestMockSubscriptionRepository_SubscriberEmails(t *testing.T) {
	users := mocks.NewMockUserRepository()
	subs := mocks.NewMockSubscriptionRepository(users)
	ctx := context.Background()

	users.Users["r1"] = &models.User{ID: "r1", Email: "zoe@test.com", Role: models.RoleReader}
	users.Users["r2"] = &models.User{ID: "r2", Email: "amy@test.com", Role: models.RoleReader}
	users.Users["r3"] = &models.User{ID: "r3", Email: "", Role: models.RoleReader}
	users.Users["e1"] = &models.User{ID: "e1", Email: "ed@test.com", Role: models.RoleEditor}

	subs.JournalistSubs["r1"] = []string{"jour-1"}
	subs.PublisherSubs["r2"] = []string{"pub-1"}
	subs.JournalistSubs["r3"] = []string{"jour-1"}
	subs.JournalistSubs["e1"] = []string{"jour-1"}

	publisherID := "pub-1"
	emails, err := subs.SubscriberEmails(ctx, "jour-1", &publisherID)
	if err != nil {
		t.Fatalf("SubscriberEmails failed: %v", err)
	}

	// Readers with an address only, sorted; the editor and the address-less
	// reader are excluded.
	if len(emails) != 2 || emails[0] != "amy@test.com" || emails[1] != "zoe@test.com" {
		t.Errorf("emails = %v", emails)
	}

	// Without a publisher, only journalist subscribers resolve.
	emails, err = subs.SubscriberEmails(ctx, "jour-1", nil)
	if err != nil {
		t.Fatalf("SubscriberEmails failed: %v", err)
	}
	if len(emails) != 1 || emails[0] != "zoe@test.com" {
		t.Errorf("emails = %v", emails)
	}
}

func TestMockSubscriptionRepository_SubscriberEmailsDeduplicates(t *testing.T) {
	users := mocks.NewMockUserRepository()
	subs := mocks.NewMockSubscriptionRepository(users)

	users.Users["r1"] = &models.User{ID: "r1", Email: "both@test.com", Role: models.RoleReader}
	subs.JournalistSubs["r1"] = []string{"jour-1"}
	subs.PublisherSubs["r1"] = []string{"pub-1"}

	publisherID := "pub-1"
	emails, err := subs.SubscriberEmails(context.Background(), "jour-1", &publisherID)
	if err != nil {
		t.Fatalf("SubscriberEmails failed: %v", err)
	}
	if len(emails) != 1 {
		t.Errorf("emails = %v, want one entry for the doubly subscribed reader", emails)
	}
}

func TestMockArticleRepository_SetApprovedReportsPriorState(t *testing.T) {
	repo := mocks.NewMockArticleRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, &models.Article{ID: "art-1", Title: "Scoop", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	prev, err := repo.SetApproved(ctx, "art-1", true)
	if err != nil {
		t.Fatalf("SetApproved failed: %v", err)
	}
	if prev {
		t.Error("first approval must report prev=false")
	}

	prev, err = repo.SetApproved(ctx, "art-1", true)
	if err != nil {
		t.Fatalf("SetApproved failed: %v", err)
	}
	if !prev {
		t.Error("second approval must report prev=true")
	}
}

func TestMockArticleRepository_ReadsReturnCopies(t *testing.T) {
	repo := mocks.NewMockArticleRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, &models.Article{ID: "art-1", Title: "Scoop"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetByID(ctx, "art-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	got.Title = "Mutated"

	again, err := repo.GetByID(ctx, "art-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if again.Title != "Scoop" {
		t.Error("mutating a returned article must not affect the stored one")
	}
}

func TestMockNewsletterRepository_ResolvesMembersOnRead(t *testing.T) {
	articles := mocks.NewMockArticleRepository()
	newsletters := mocks.NewMockNewsletterRepository(articles)
	ctx := context.Background()

	articles.Create(ctx, &models.Article{ID: "art-1", Title: "One", Approved: true})
	articles.Create(ctx, &models.Article{ID: "art-2", Title: "Two"})

	newsletter := &models.Newsletter{ID: "nl-1", Title: "Digest", CreatedAt: time.Now()}
	if err := newsletters.Create(ctx, newsletter, []string{"art-1", "art-2"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := newsletters.GetByID(ctx, "nl-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(got.Articles) != 2 {
		t.Fatalf("members = %d, want 2", len(got.Articles))
	}

	// Approval flips between reads are reflected, like the SQL join would.
	if _, err := articles.SetApproved(ctx, "art-2", true); err != nil {
		t.Fatalf("SetApproved failed: %v", err)
	}
	got, err = newsletters.GetByID(ctx, "nl-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(got.ApprovedArticles()) != 2 {
		t.Errorf("approved members = %d, want 2", len(got.ApprovedArticles()))
	}

	// A nil membership on update keeps the current set.
	got.Title = "Renamed"
	if err := newsletters.Update(ctx, got, nil); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, _ = newsletters.GetByID(ctx, "nl-1")
	if got.Title != "Renamed" || len(got.Articles) != 2 {
		t.Errorf("after update: title = %q members = %d", got.Title, len(got.Articles))
	}
}
