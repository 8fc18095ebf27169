// Package policy holds the pure access decisions for the publishing
// workflow. Every entry point routes through these predicates; a false
// return is a terminal forbidden outcome for the request and no partial
// mutation may be performed.
//
// All checks are global-role checks. Publisher staffing lists exist in the
// data model but gate nothing here.
package policy

import (
	"github.com/newsroom-api/internal/models"
)

// CanViewArticle reports whether the actor may read the article. Unapproved
// articles are visible to editors and to the authoring journalist only.
func CanViewArticle(actor *models.User, article *models.Article) bool {
	if article.Approved {
		return true
	}
	switch actor.Role {
	case models.RoleReader:
		return false
	case models.RoleEditor:
		return true
	case models.RoleJournalist:
		return article.AuthorID == actor.ID
	}
	return false
}

// CanCreateContent reports whether the actor may create articles or
// newsletters. Journalists only.
func CanCreateContent(actor *models.User) bool {
	return actor.Role == models.RoleJournalist
}

// CanEditContent reports whether the actor may mutate content authored by
// authorID. Editors may edit anything; journalists only their own.
func CanEditContent(actor *models.User, authorID string) bool {
	switch actor.Role {
	case models.RoleReader:
		return false
	case models.RoleEditor:
		return true
	case models.RoleJournalist:
		return actor.ID == authorID
	}
	return false
}

// CanDeleteContent mirrors CanEditContent: author or any editor.
func CanDeleteContent(actor *models.User, authorID string) bool {
	return CanEditContent(actor, authorID)
}

// CanApprove reports whether the actor may set approved=true on an article.
// Any editor may approve any publisher's content; approval is not scoped to
// publisher staffing.
func CanApprove(actor *models.User) bool {
	return actor.Role == models.RoleEditor
}

// CanViewPending reports whether the actor may see the review queue of
// unapproved articles.
func CanViewPending(actor *models.User) bool {
	return actor.Role == models.RoleEditor
}

// CanManageSubscriptions reports whether the actor may manage their own
// publisher/journalist subscriptions. Readers only.
func CanManageSubscriptions(actor *models.User) bool {
	return actor.Role == models.RoleReader
}

// CanViewSubscribedFeed reports whether the actor may query the subscribed
// article feed. Readers only.
func CanViewSubscribedFeed(actor *models.User) bool {
	return actor.Role == models.RoleReader
}

// SeesOnlyApproved reports whether listings must be filtered to approved
// content for the actor. Editors and journalists see everything.
func SeesOnlyApproved(actor *models.User) bool {
	return actor.Role == models.RoleReader
}
