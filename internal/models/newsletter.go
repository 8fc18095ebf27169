package models

import (
	"time"
)

// Newsletter is a curated collection of articles assembled by a journalist.
// Membership is unordered; readers only ever see the approved members.
type Newsletter struct {
	ID          string     `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	AuthorID    string     `json:"-" db:"author_id"`
	Author      PublicUser `json:"author"`
	Articles    []*Article `json:"articles"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// ApprovedArticles returns only the approved members
func (n *Newsletter) ApprovedArticles() []*Article {
	approved := make([]*Article, 0, len(n.Articles))
	for _, a := range n.Articles {
		if a.Approved {
			approved = append(approved, a)
		}
	}
	return approved
}

// HasApprovedArticle reports whether at least one member is approved
func (n *Newsletter) HasApprovedArticle() bool {
	for _, a := range n.Articles {
		if a.Approved {
			return true
		}
	}
	return false
}
