package mocks

import (
	"context"
	"fmt"
	"sort"

	"github.com/newsroom-api/internal/models"
)

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	Users map[string]*models.User
	Err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Users: make(map[string]*models.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.Err != nil {
		return m.Err
	}
	m.Users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return m.Users[id], m.Err
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, user := range m.Users {
		if user.Username == username {
			return user, m.Err
		}
	}
	return nil, m.Err
}

func (m *MockUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	user, err := m.GetByUsername(ctx, username)
	return user != nil, err
}

func (m *MockUserRepository) CountJournalists(ctx context.Context, ids []string) (int, error) {
	count := 0
	for _, id := range ids {
		if user, ok := m.Users[id]; ok && user.Role == models.RoleJournalist {
			count++
		}
	}
	return count, m.Err
}

// MockPublisherRepository is a mock implementation of repository.PublisherRepository
type MockPublisherRepository struct {
	Publishers map[string]*models.Publisher
	Err        error
}

func NewMockPublisherRepository() *MockPublisherRepository {
	return &MockPublisherRepository{Publishers: make(map[string]*models.Publisher)}
}

func (m *MockPublisherRepository) GetByID(ctx context.Context, id string) (*models.Publisher, error) {
	return m.Publishers[id], m.Err
}

func (m *MockPublisherRepository) List(ctx context.Context) ([]*models.Publisher, error) {
	publishers := make([]*models.Publisher, 0, len(m.Publishers))
	for _, p := range m.Publishers {
		publishers = append(publishers, p)
	}
	sort.Slice(publishers, func(i, j int) bool { return publishers[i].Name < publishers[j].Name })
	return publishers, m.Err
}

func (m *MockPublisherRepository) CountExisting(ctx context.Context, ids []string) (int, error) {
	count := 0
	for _, id := range ids {
		if _, ok := m.Publishers[id]; ok {
			count++
		}
	}
	return count, m.Err
}

// MockSubscriptionRepository is a mock implementation of
// repository.SubscriptionRepository. It resolves subscriber emails against
// the linked MockUserRepository, mirroring the SQL union.
type MockSubscriptionRepository struct {
	Users          *MockUserRepository
	PublisherSubs  map[string][]string
	JournalistSubs map[string][]string
	Err            error
}

func NewMockSubscriptionRepository(users *MockUserRepository) *MockSubscriptionRepository {
	return &MockSubscriptionRepository{
		Users:          users,
		PublisherSubs:  make(map[string][]string),
		JournalistSubs: make(map[string][]string),
	}
}

func (m *MockSubscriptionRepository) Get(ctx context.Context, userID string) (*models.Subscriptions, error) {
	subs := &models.Subscriptions{PublisherIDs: []string{}, JournalistIDs: []string{}}
	subs.PublisherIDs = append(subs.PublisherIDs, m.PublisherSubs[userID]...)
	subs.JournalistIDs = append(subs.JournalistIDs, m.JournalistSubs[userID]...)
	return subs, m.Err
}

func (m *MockSubscriptionRepository) Replace(ctx context.Context, userID string, subs *models.Subscriptions) error {
	if m.Err != nil {
		return m.Err
	}
	m.PublisherSubs[userID] = append([]string(nil), subs.PublisherIDs...)
	m.JournalistSubs[userID] = append([]string(nil), subs.JournalistIDs...)
	return nil
}

func (m *MockSubscriptionRepository) SubscriberEmails(ctx context.Context, authorID string, publisherID *string) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	seen := make(map[string]bool)
	for _, user := range m.Users.Users {
		if user.Role != models.RoleReader || user.Email == "" {
			continue
		}
		if contains(m.JournalistSubs[user.ID], authorID) {
			seen[user.Email] = true
			continue
		}
		if publisherID != nil && contains(m.PublisherSubs[user.ID], *publisherID) {
			seen[user.Email] = true
		}
	}

	emails := make([]string, 0, len(seen))
	for email := range seen {
		emails = append(emails, email)
	}
	sort.Strings(emails)
	return emails, nil
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}

// MockArticleRepository is a mock implementation of repository.ArticleRepository
type MockArticleRepository struct {
	Articles map[string]*models.Article
	Subs     *MockSubscriptionRepository
	Err      error
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{Articles: make(map[string]*models.Article)}
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	if m.Err != nil {
		return m.Err
	}
	copied := *article
	m.Articles[article.ID] = &copied
	return nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	article, ok := m.Articles[id]
	if !ok {
		return nil, nil
	}
	copied := *article
	return &copied, nil
}

func (m *MockArticleRepository) List(ctx context.Context, approvedOnly bool) ([]*models.Article, error) {
	return m.collect(func(a *models.Article) bool {
		return !approvedOnly || a.Approved
	})
}

func (m *MockArticleRepository) ListPending(ctx context.Context) ([]*models.Article, error) {
	return m.collect(func(a *models.Article) bool { return !a.Approved })
}

func (m *MockArticleRepository) ListSubscribed(ctx context.Context, readerID string) ([]*models.Article, error) {
	return m.collect(func(a *models.Article) bool {
		if !a.Approved {
			return false
		}
		if m.Subs == nil {
			return false
		}
		if contains(m.Subs.JournalistSubs[readerID], a.AuthorID) {
			return true
		}
		return a.PublisherID != nil && contains(m.Subs.PublisherSubs[readerID], *a.PublisherID)
	})
}

func (m *MockArticleRepository) collect(keep func(*models.Article) bool) ([]*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var articles []*models.Article
	for _, a := range m.Articles {
		if keep(a) {
			copied := *a
			articles = append(articles, &copied)
		}
	}
	sort.Slice(articles, func(i, j int) bool {
		return articles[i].CreatedAt.After(articles[j].CreatedAt)
	})
	return articles, nil
}

func (m *MockArticleRepository) Update(ctx context.Context, article *models.Article) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	stored, ok := m.Articles[article.ID]
	if !ok {
		return false, fmt.Errorf("article %s not found", article.ID)
	}
	prevApproved := stored.Approved
	copied := *article
	m.Articles[article.ID] = &copied
	return prevApproved, nil
}

func (m *MockArticleRepository) SetApproved(ctx context.Context, id string, approved bool) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	stored, ok := m.Articles[id]
	if !ok {
		return false, fmt.Errorf("article %s not found", id)
	}
	prevApproved := stored.Approved
	stored.Approved = approved
	return prevApproved, nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Articles, id)
	return nil
}

func (m *MockArticleRepository) CountExisting(ctx context.Context, ids []string) (int, error) {
	count := 0
	for _, id := range ids {
		if _, ok := m.Articles[id]; ok {
			count++
		}
	}
	return count, m.Err
}

// MockNewsletterRepository is a mock implementation of
// repository.NewsletterRepository. Member articles are resolved through the
// linked MockArticleRepository on every read, like the SQL join.
type MockNewsletterRepository struct {
	Newsletters map[string]*models.Newsletter
	Memberships map[string][]string
	Articles    *MockArticleRepository
	Err         error
}

func NewMockNewsletterRepository(articles *MockArticleRepository) *MockNewsletterRepository {
	return &MockNewsletterRepository{
		Newsletters: make(map[string]*models.Newsletter),
		Memberships: make(map[string][]string),
		Articles:    articles,
	}
}

func (m *MockNewsletterRepository) Create(ctx context.Context, newsletter *models.Newsletter, articleIDs []string) error {
	if m.Err != nil {
		return m.Err
	}
	copied := *newsletter
	m.Newsletters[newsletter.ID] = &copied
	m.Memberships[newsletter.ID] = append([]string(nil), articleIDs...)
	return nil
}

func (m *MockNewsletterRepository) GetByID(ctx context.Context, id string) (*models.Newsletter, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	stored, ok := m.Newsletters[id]
	if !ok {
		return nil, nil
	}
	return m.withArticles(stored), nil
}

func (m *MockNewsletterRepository) List(ctx context.Context) ([]*models.Newsletter, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var newsletters []*models.Newsletter
	for _, n := range m.Newsletters {
		newsletters = append(newsletters, m.withArticles(n))
	}
	sort.Slice(newsletters, func(i, j int) bool {
		return newsletters[i].CreatedAt.After(newsletters[j].CreatedAt)
	})
	return newsletters, nil
}

func (m *MockNewsletterRepository) withArticles(stored *models.Newsletter) *models.Newsletter {
	copied := *stored
	copied.Articles = []*models.Article{}
	for _, articleID := range m.Memberships[stored.ID] {
		if article, ok := m.Articles.Articles[articleID]; ok {
			articleCopy := *article
			copied.Articles = append(copied.Articles, &articleCopy)
		}
	}
	return &copied
}

func (m *MockNewsletterRepository) Update(ctx context.Context, newsletter *models.Newsletter, articleIDs []string) error {
	if m.Err != nil {
		return m.Err
	}
	copied := *newsletter
	copied.Articles = nil
	m.Newsletters[newsletter.ID] = &copied
	if articleIDs != nil {
		m.Memberships[newsletter.ID] = append([]string(nil), articleIDs...)
	}
	return nil
}

func (m *MockNewsletterRepository) Delete(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Newsletters, id)
	delete(m.Memberships, id)
	return nil
}
