package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/newsroom-api/internal/database"
	"github.com/newsroom-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

const articleColumns = `
	a.id, a.title, a.content, a.author_id, a.image_url, a.approved, a.created_at,
	u.username, u.role,
	p.id, p.name, p.description, p.created_at
`

const articleFrom = `
	FROM articles a
	JOIN users u ON u.id = a.author_id
	LEFT JOIN publishers p ON p.id = a.publisher_id
`

func scanArticle(s interface{ Scan(...any) error }) (*models.Article, error) {
	var article models.Article
	var pubID, pubName, pubDesc sql.NullString
	var pubCreated sql.NullTime

	err := s.Scan(
		&article.ID, &article.Title, &article.Content, &article.AuthorID,
		&article.ImageURL, &article.Approved, &article.CreatedAt,
		&article.Author.Username, &article.Author.Role,
		&pubID, &pubName, &pubDesc, &pubCreated,
	)
	if err != nil {
		return nil, err
	}

	article.Author.ID = article.AuthorID
	if pubID.Valid {
		article.PublisherID = &pubID.String
		article.Publisher = &models.Publisher{
			ID:          pubID.String,
			Name:        pubName.String,
			Description: pubDesc.String,
			CreatedAt:   pubCreated.Time,
		}
	}
	return &article, nil
}

// Create inserts a new article
func (r *articleRepo) Create(ctx context.Context, article *models.Article) error {
	query := `
		INSERT INTO articles (id, title, content, author_id, publisher_id, image_url, approved, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		article.ID, article.Title, article.Content, article.AuthorID,
		article.PublisherID, article.ImageURL, article.Approved, article.CreatedAt,
	)
	return err
}

// GetByID retrieves an article by ID with author and publisher joined
func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	row := r.db.QueryRowContext(ctx, "SELECT"+articleColumns+articleFrom+"WHERE a.id = $1", id)
	article, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

// List retrieves articles newest first, optionally approved only
func (r *articleRepo) List(ctx context.Context, approvedOnly bool) ([]*models.Article, error) {
	query := "SELECT" + articleColumns + articleFrom
	if approvedOnly {
		query += "WHERE a.approved "
	}
	query += "ORDER BY a.created_at DESC"
	return r.list(ctx, query)
}

// ListPending retrieves unapproved articles newest first
func (r *articleRepo) ListPending(ctx context.Context) ([]*models.Article, error) {
	query := "SELECT" + articleColumns + articleFrom + "WHERE NOT a.approved ORDER BY a.created_at DESC"
	return r.list(ctx, query)
}

// ListSubscribed retrieves approved articles matching the reader's
// subscriptions by author or publisher, deduplicated, newest first
func (r *articleRepo) ListSubscribed(ctx context.Context, readerID string) ([]*models.Article, error) {
	query := "SELECT DISTINCT" + articleColumns + articleFrom + `
		WHERE a.approved
		  AND (
			a.author_id IN (SELECT journalist_id FROM subscription_journalists WHERE user_id = $1)
			OR a.publisher_id IN (SELECT publisher_id FROM subscription_publishers WHERE user_id = $1)
		  )
		ORDER BY a.created_at DESC
	`
	return r.list(ctx, query, readerID)
}

func (r *articleRepo) list(ctx context.Context, query string, args ...any) ([]*models.Article, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*models.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// Update persists the article's mutable fields and returns the previously
// stored approved value. The prior state is read with the row locked in the
// same transaction as the write, so two concurrent saves cannot both observe
// the pre-transition value.
func (r *articleRepo) Update(ctx context.Context, article *models.Article) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var prevApproved bool
	err = tx.QueryRowContext(ctx,
		"SELECT approved FROM articles WHERE id = $1 FOR UPDATE", article.ID,
	).Scan(&prevApproved)
	if err != nil {
		return false, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE articles
		SET title = $2, content = $3, publisher_id = $4, image_url = $5, approved = $6
		WHERE id = $1
	`, article.ID, article.Title, article.Content, article.PublisherID,
		article.ImageURL, article.Approved)
	if err != nil {
		return false, err
	}

	return prevApproved, tx.Commit()
}

// SetApproved flips only the approved flag under the same locking discipline
// as Update
func (r *articleRepo) SetApproved(ctx context.Context, id string, approved bool) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var prevApproved bool
	err = tx.QueryRowContext(ctx,
		"SELECT approved FROM articles WHERE id = $1 FOR UPDATE", id,
	).Scan(&prevApproved)
	if err != nil {
		return false, err
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE articles SET approved = $2 WHERE id = $1", id, approved); err != nil {
		return false, err
	}

	return prevApproved, tx.Commit()
}

// Delete removes an article
func (r *articleRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE id = $1", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("article %s not found", id)
	}
	return nil
}

// CountExisting returns how many of the given article IDs exist
func (r *articleRepo) CountExisting(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM articles WHERE id = ANY($1)", pq.Array(ids),
	).Scan(&count)
	return count, err
}
