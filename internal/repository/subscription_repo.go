package repository

import (
	"context"

	"github.com/newsroom-api/internal/database"
	"github.com/newsroom-api/internal/models"
)

// subscriptionRepo is the concrete implementation of SubscriptionRepository
type subscriptionRepo struct {
	db *database.DB
}

// NewSubscriptionRepo creates a new subscription repository
func NewSubscriptionRepo(db *database.DB) SubscriptionRepository {
	return &subscriptionRepo{db: db}
}

// Get retrieves the reader's current subscription sets
func (r *subscriptionRepo) Get(ctx context.Context, userID string) (*models.Subscriptions, error) {
	subs := &models.Subscriptions{
		PublisherIDs:  []string{},
		JournalistIDs: []string{},
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT publisher_id FROM subscription_publishers WHERE user_id = $1", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		subs.PublisherIDs = append(subs.PublisherIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	jRows, err := r.db.QueryContext(ctx,
		"SELECT journalist_id FROM subscription_journalists WHERE user_id = $1", userID)
	if err != nil {
		return nil, err
	}
	defer jRows.Close()
	for jRows.Next() {
		var id string
		if err := jRows.Scan(&id); err != nil {
			return nil, err
		}
		subs.JournalistIDs = append(subs.JournalistIDs, id)
	}
	return subs, jRows.Err()
}

// Replace swaps the reader's full subscription set in one transaction
func (r *subscriptionRepo) Replace(ctx context.Context, userID string, subs *models.Subscriptions) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM subscription_publishers WHERE user_id = $1", userID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM subscription_journalists WHERE user_id = $1", userID); err != nil {
		return err
	}

	for _, publisherID := range subs.PublisherIDs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO subscription_publishers (user_id, publisher_id)
			VALUES ($1, $2) ON CONFLICT DO NOTHING
		`, userID, publisherID)
		if err != nil {
			return err
		}
	}
	for _, journalistID := range subs.JournalistIDs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO subscription_journalists (user_id, journalist_id)
			VALUES ($1, $2) ON CONFLICT DO NOTHING
		`, userID, journalistID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// SubscriberEmails resolves the distinct non-empty emails of readers
// subscribed to the author or to the publisher. The union and the
// deduplication both happen in SQL.
func (r *subscriptionRepo) SubscriberEmails(ctx context.Context, authorID string, publisherID *string) ([]string, error) {
	query := `
		SELECT DISTINCT u.email
		FROM users u
		WHERE u.email <> ''
		  AND u.role = $1
		  AND (
			u.id IN (SELECT user_id FROM subscription_journalists WHERE journalist_id = $2)
			OR ($3::text IS NOT NULL
				AND u.id IN (SELECT user_id FROM subscription_publishers WHERE publisher_id = $3))
		  )
		ORDER BY u.email
	`
	rows, err := r.db.QueryContext(ctx, query, models.RoleReader, authorID, publisherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}
