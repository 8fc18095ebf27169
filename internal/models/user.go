package models

import (
	"time"
)

// Role is the closed set of account roles. Every access decision in the
// system keys off this value; there is no per-publisher scoping.
type Role string

const (
	RoleReader     Role = "reader"
	RoleEditor     Role = "editor"
	RoleJournalist Role = "journalist"
)

// Valid reports whether r is one of the three known roles
func (r Role) Valid() bool {
	switch r {
	case RoleReader, RoleEditor, RoleJournalist:
		return true
	}
	return false
}

// User represents an account in the system
type User struct {
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// PublicUser is the reduced user representation embedded in API responses
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Public returns the embeddable representation of the user
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Role: u.Role}
}

// Subscriptions holds a reader's publisher and journalist subscriptions
type Subscriptions struct {
	PublisherIDs  []string `json:"publisher_ids"`
	JournalistIDs []string `json:"journalist_ids"`
}
