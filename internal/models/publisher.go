package models

import (
	"time"
)

// Publisher represents a publishing organisation. The editor and journalist
// staffing lists are informational groupings; API access is decided by the
// global role alone.
type Publisher struct {
	ID            string    `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Description   string    `json:"description" db:"description"`
	EditorIDs     []string  `json:"editor_ids,omitempty" db:"-"`
	JournalistIDs []string  `json:"journalist_ids,omitempty" db:"-"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
