package policy_test

import (
	"testing"

	"github.com/newsroom-api/internal/models"
	"github.com/newsroom-api/internal/policy"
)

func user(id string, role models.Role) *models.User {
	return &models.User{ID: id, Username: string(role) + "-" + id, Role: role}
}

func TestCanViewArticle(t *testing.T) {
	author := user("j1", models.RoleJournalist)
	other := user("j2", models.RoleJournalist)
	reader := user("r1", models.RoleReader)
	editor := user("e1", models.RoleEditor)

	draft := &models.Article{ID: "a1", AuthorID: author.ID, Approved: false}
	published := &models.Article{ID: "a2", AuthorID: author.ID, Approved: true}

	tests := []struct {
		name    string
		actor   *models.User
		article *models.Article
		want    bool
	}{
		{"reader sees published", reader, published, true},
		{"reader denied draft", reader, draft, false},
		{"editor sees draft", editor, draft, true},
		{"author sees own draft", author, draft, true},
		{"other journalist denied draft", other, draft, false},
		{"other journalist sees published", other, published, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := policy.CanViewArticle(tt.actor, tt.article); got != tt.want {
				t.Errorf("CanViewArticle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMutationMatrix(t *testing.T) {
	author := user("j1", models.RoleJournalist)
	other := user("j2", models.RoleJournalist)
	reader := user("r1", models.RoleReader)
	editor := user("e1", models.RoleEditor)

	if policy.CanCreateContent(reader) || policy.CanCreateContent(editor) {
		t.Error("only journalists may create content")
	}
	if !policy.CanCreateContent(author) {
		t.Error("journalists may create content")
	}

	if policy.CanEditContent(reader, author.ID) {
		t.Error("readers may not edit")
	}
	if !policy.CanEditContent(editor, author.ID) {
		t.Error("editors may edit any content")
	}
	if !policy.CanEditContent(author, author.ID) {
		t.Error("journalists may edit their own content")
	}
	if policy.CanEditContent(other, author.ID) {
		t.Error("journalists may not edit others' content")
	}

	if !policy.CanDeleteContent(editor, author.ID) || !policy.CanDeleteContent(author, author.ID) {
		t.Error("author and editor may delete")
	}
	if policy.CanDeleteContent(other, author.ID) || policy.CanDeleteContent(reader, author.ID) {
		t.Error("others may not delete")
	}

	if !policy.CanApprove(editor) {
		t.Error("editors may approve")
	}
	if policy.CanApprove(author) || policy.CanApprove(reader) {
		t.Error("only editors may approve")
	}

	if !policy.CanManageSubscriptions(reader) {
		t.Error("readers manage their subscriptions")
	}
	if policy.CanManageSubscriptions(editor) || policy.CanManageSubscriptions(author) {
		t.Error("non-readers have no subscriptions")
	}

	if !policy.CanViewSubscribedFeed(reader) || policy.CanViewSubscribedFeed(other) {
		t.Error("subscribed feed is reader-only")
	}

	if !policy.SeesOnlyApproved(reader) || policy.SeesOnlyApproved(editor) || policy.SeesOnlyApproved(author) {
		t.Error("only readers are filtered to approved content")
	}
}

func TestRolesTableIsFixed(t *testing.T) {
	first := policy.Roles()
	second := policy.Roles()

	if len(first) != 3 {
		t.Fatalf("expected 3 role descriptors, got %d", len(first))
	}
	for i := range first {
		if first[i].Role != second[i].Role {
			t.Errorf("descriptor %d role changed between calls", i)
		}
		if len(first[i].Permissions) != len(second[i].Permissions) {
			t.Errorf("descriptor %d permissions changed between calls", i)
		}
	}

	perms := make(map[models.Role]map[policy.Permission]bool)
	for _, d := range first {
		set := make(map[policy.Permission]bool)
		for _, p := range d.Permissions {
			set[p] = true
		}
		perms[d.Role] = set
	}

	if !perms[models.RoleEditor][policy.PermApproveArticle] {
		t.Error("editor descriptor must grant approve_article")
	}
	if perms[models.RoleReader][policy.PermCreateContent] || perms[models.RoleEditor][policy.PermCreateContent] {
		t.Error("create_content is journalist-only")
	}
	if !perms[models.RoleReader][policy.PermManageSubscriptions] {
		t.Error("reader descriptor must grant manage_subscriptions")
	}
}
