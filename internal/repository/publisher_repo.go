package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/newsroom-api/internal/database"
	"github.com/newsroom-api/internal/models"
)

// publisherRepo is the concrete implementation of PublisherRepository
type publisherRepo struct {
	db *database.DB
}

// NewPublisherRepo creates a new publisher repository
func NewPublisherRepo(db *database.DB) PublisherRepository {
	return &publisherRepo{db: db}
}

// GetByID retrieves a publisher by ID including its staffing lists
func (r *publisherRepo) GetByID(ctx context.Context, id string) (*models.Publisher, error) {
	var publisher models.Publisher
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, description, created_at FROM publishers WHERE id = $1", id,
	).Scan(&publisher.ID, &publisher.Name, &publisher.Description, &publisher.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	publisher.EditorIDs, err = r.memberIDs(ctx, "publisher_editors", id)
	if err != nil {
		return nil, err
	}
	publisher.JournalistIDs, err = r.memberIDs(ctx, "publisher_journalists", id)
	if err != nil {
		return nil, err
	}

	return &publisher, nil
}

func (r *publisherRepo) memberIDs(ctx context.Context, table, publisherID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT user_id FROM "+table+" WHERE publisher_id = $1", publisherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// List retrieves all publishers ordered by name
func (r *publisherRepo) List(ctx context.Context) ([]*models.Publisher, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, description, created_at FROM publishers ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var publishers []*models.Publisher
	for rows.Next() {
		var publisher models.Publisher
		if err := rows.Scan(&publisher.ID, &publisher.Name, &publisher.Description, &publisher.CreatedAt); err != nil {
			return nil, err
		}
		publishers = append(publishers, &publisher)
	}
	return publishers, rows.Err()
}

// CountExisting returns how many of the given publisher IDs exist
func (r *publisherRepo) CountExisting(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM publishers WHERE id = ANY($1)", pq.Array(ids),
	).Scan(&count)
	return count, err
}
