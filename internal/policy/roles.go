package policy

import (
	"github.com/newsroom-api/internal/models"
)

// Permission names the operations a role may perform. The set is fixed at
// compile time; there is no runtime permission management.
type Permission string

const (
	PermViewContent         Permission = "view_content"
	PermViewUnapproved      Permission = "view_unapproved"
	PermCreateContent       Permission = "create_content"
	PermEditContent         Permission = "edit_content"
	PermDeleteContent       Permission = "delete_content"
	PermApproveArticle      Permission = "approve_article"
	PermManageSubscriptions Permission = "manage_subscriptions"
)

// RoleDescriptor pairs a role with its fixed permission grants
type RoleDescriptor struct {
	Role        models.Role  `json:"role"`
	Permissions []Permission `json:"permissions"`
}

// Roles returns the fixed role->permission table. It is a pure constructor:
// calling it any number of times yields the same three descriptors, so the
// bootstrap it replaces (lazily created permission groups) needs no stored
// state at all.
func Roles() []RoleDescriptor {
	return []RoleDescriptor{
		{
			Role: models.RoleReader,
			Permissions: []Permission{
				PermViewContent,
				PermManageSubscriptions,
			},
		},
		{
			Role: models.RoleEditor,
			Permissions: []Permission{
				PermViewContent,
				PermViewUnapproved,
				PermEditContent,
				PermDeleteContent,
				PermApproveArticle,
			},
		},
		{
			Role: models.RoleJournalist,
			Permissions: []Permission{
				PermViewContent,
				PermCreateContent,
				PermEditContent,
				PermDeleteContent,
			},
		},
	}
}
