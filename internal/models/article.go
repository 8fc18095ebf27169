package models

import (
	"time"
)

// Article represents a news article submission. Articles start unapproved
// and become visible to readers only after an editor approves them; the
// false->true edge of Approved is the sole notification trigger.
type Article struct {
	ID          string     `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Content     string     `json:"content" db:"content"`
	AuthorID    string     `json:"-" db:"author_id"`
	Author      PublicUser `json:"author"`
	PublisherID *string    `json:"-" db:"publisher_id"`
	Publisher   *Publisher `json:"publisher,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty" db:"image_url"`
	Approved    bool       `json:"approved" db:"approved"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// IsIndependent reports whether the article has no publisher
func (a *Article) IsIndependent() bool {
	return a.PublisherID == nil
}

// Scope returns the display label for the article's origin: the publisher
// name, or "Independent"
func (a *Article) Scope() string {
	if a.Publisher != nil {
		return a.Publisher.Name
	}
	return "Independent"
}
