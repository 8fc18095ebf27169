package benchmark

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/newsroom-api/internal/mocks"
	"github.com/newsroom-api/internal/models"
	"github.com/newsroom-api/internal/notify"
)

// BenchmarkExcerpt benchmarks excerpt construction on a long article body
func BenchmarkExcerpt(b *testing.B) {
	body := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 200)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		notify.Excerpt(body)
	}
}

// BenchmarkSubscriberEmails benchmarks subscriber resolution across 1000
// readers with mixed publisher and journalist subscriptions
func BenchmarkSubscriberEmails(b *testing.B) {
	users := mocks.NewMockUserRepository()
	subs := mocks.NewMockSubscriptionRepository(users)

	for i := 0; i < 1000; i++ {
		id := fmt.Sprintf("reader-%04d", i)
		users.Users[id] = &models.User{
			ID:    id,
			Email: fmt.Sprintf("reader%04d@test.com", i),
			Role:  models.RoleReader,
		}
		switch i % 3 {
		case 0:
			subs.JournalistSubs[id] = []string{"jour-1"}
		case 1:
			subs.PublisherSubs[id] = []string{"pub-1"}
		}
	}

	publisherID := "pub-1"
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		emails, err := subs.SubscriberEmails(ctx, "jour-1", &publisherID)
		if err != nil {
			b.Fatalf("SubscriberEmails failed: %v", err)
		}
		if len(emails) == 0 {
			b.Fatal("no subscribers resolved")
		}
	}

	b.ReportMetric(float64(1000*b.N)/b.Elapsed().Seconds(), "readers/sec")
}

// BenchmarkListSubscribed benchmarks the subscribed feed filter over 1000
// approved articles
func BenchmarkListSubscribed(b *testing.B) {
	users := mocks.NewMockUserRepository()
	subs := mocks.NewMockSubscriptionRepository(users)
	articles := mocks.NewMockArticleRepository()
	articles.Subs = subs

	ctx := context.Background()
	for i := 0; i < 1000; i++ {
		publisherID := "pub-1"
		article := &models.Article{
			ID:       fmt.Sprintf("art-%04d", i),
			Title:    fmt.Sprintf("Article %d", i),
			AuthorID: fmt.Sprintf("jour-%d", i%10),
			Approved: true,
		}
		if i%2 == 0 {
			article.PublisherID = &publisherID
		}
		articles.Create(ctx, article)
	}
	subs.JournalistSubs["r1"] = []string{"jour-1", "jour-2"}
	subs.PublisherSubs["r1"] = []string{"pub-1"}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		feed, err := articles.ListSubscribed(ctx, "r1")
		if err != nil {
			b.Fatalf("ListSubscribed failed: %v", err)
		}
		if len(feed) == 0 {
			b.Fatal("empty feed")
		}
	}

	b.ReportMetric(float64(1000*b.N)/b.Elapsed().Seconds(), "articles/sec")
}
