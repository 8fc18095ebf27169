package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/newsroom-api/internal/database"
	"github.com/newsroom-api/internal/models"
)

// newsletterRepo is the concrete implementation of NewsletterRepository
type newsletterRepo struct {
	db *database.DB
}

// NewNewsletterRepo creates a new newsletter repository
func NewNewsletterRepo(db *database.DB) NewsletterRepository {
	return &newsletterRepo{db: db}
}

// Create persists the newsletter and its article memberships in one
// transaction
func (r *newsletterRepo) Create(ctx context.Context, newsletter *models.Newsletter, articleIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO newsletters (id, title, description, author_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, newsletter.ID, newsletter.Title, newsletter.Description,
		newsletter.AuthorID, newsletter.CreatedAt)
	if err != nil {
		return err
	}

	if err := insertMemberships(ctx, tx, newsletter.ID, articleIDs); err != nil {
		return err
	}

	return tx.Commit()
}

func insertMemberships(ctx context.Context, tx *sql.Tx, newsletterID string, articleIDs []string) error {
	for _, articleID := range articleIDs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO newsletter_articles (newsletter_id, article_id)
			VALUES ($1, $2) ON CONFLICT DO NOTHING
		`, newsletterID, articleID)
		if err != nil {
			return err
		}
	}
	return nil
}

// GetByID retrieves a newsletter with its member articles nested
func (r *newsletterRepo) GetByID(ctx context.Context, id string) (*models.Newsletter, error) {
	var newsletter models.Newsletter
	err := r.db.QueryRowContext(ctx, `
		SELECT n.id, n.title, n.description, n.author_id, n.created_at, u.username, u.role
		FROM newsletters n
		JOIN users u ON u.id = n.author_id
		WHERE n.id = $1
	`, id).Scan(
		&newsletter.ID, &newsletter.Title, &newsletter.Description,
		&newsletter.AuthorID, &newsletter.CreatedAt,
		&newsletter.Author.Username, &newsletter.Author.Role,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	newsletter.Author.ID = newsletter.AuthorID

	if err := r.attachArticles(ctx, []*models.Newsletter{&newsletter}); err != nil {
		return nil, err
	}
	return &newsletter, nil
}

// List retrieves all newsletters newest first with member articles nested
func (r *newsletterRepo) List(ctx context.Context) ([]*models.Newsletter, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT n.id, n.title, n.description, n.author_id, n.created_at, u.username, u.role
		FROM newsletters n
		JOIN users u ON u.id = n.author_id
		ORDER BY n.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var newsletters []*models.Newsletter
	for rows.Next() {
		var newsletter models.Newsletter
		err := rows.Scan(
			&newsletter.ID, &newsletter.Title, &newsletter.Description,
			&newsletter.AuthorID, &newsletter.CreatedAt,
			&newsletter.Author.Username, &newsletter.Author.Role,
		)
		if err != nil {
			return nil, err
		}
		newsletter.Author.ID = newsletter.AuthorID
		newsletters = append(newsletters, &newsletter)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachArticles(ctx, newsletters); err != nil {
		return nil, err
	}
	return newsletters, nil
}

// attachArticles loads the member articles for the given newsletters in one
// query
func (r *newsletterRepo) attachArticles(ctx context.Context, newsletters []*models.Newsletter) error {
	if len(newsletters) == 0 {
		return nil
	}

	byID := make(map[string]*models.Newsletter, len(newsletters))
	ids := make([]string, 0, len(newsletters))
	for _, n := range newsletters {
		n.Articles = []*models.Article{}
		byID[n.ID] = n
		ids = append(ids, n.ID)
	}

	query := "SELECT na.newsletter_id," + articleColumns + articleFrom + `
		JOIN newsletter_articles na ON na.article_id = a.id
		WHERE na.newsletter_id = ANY($1)
		ORDER BY a.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var newsletterID string
		var article models.Article
		var pubID, pubName, pubDesc sql.NullString
		var pubCreated sql.NullTime

		err := rows.Scan(
			&newsletterID,
			&article.ID, &article.Title, &article.Content, &article.AuthorID,
			&article.ImageURL, &article.Approved, &article.CreatedAt,
			&article.Author.Username, &article.Author.Role,
			&pubID, &pubName, &pubDesc, &pubCreated,
		)
		if err != nil {
			return err
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

		if n, ok := byID[newsletterID]; ok {
			n.Articles = append(n.Articles, &article)
		}
	}
	return rows.Err()
}

// Update persists title/description; a non-nil articleIDs replaces the
// membership set
func (r *newsletterRepo) Update(ctx context.Context, newsletter *models.Newsletter, articleIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		UPDATE newsletters SET title = $2, description = $3 WHERE id = $1
	`, newsletter.ID, newsletter.Title, newsletter.Description)
	if err != nil {
		return err
	}

	if articleIDs != nil {
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM newsletter_articles WHERE newsletter_id = $1", newsletter.ID); err != nil {
			return err
		}
		if err := insertMemberships(ctx, tx, newsletter.ID, articleIDs); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Delete removes a newsletter and its memberships
func (r *newsletterRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM newsletters WHERE id = $1", id)
	return err
}
