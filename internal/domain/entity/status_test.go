package entity

import "testing"

func TestArticleStatus_Valid(t *testing.T) {
	for _, s := range ArticleStatuses {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	for _, s := range []ArticleStatus{"", "draft", "PENDING", "DELETED"} {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestUserRole_Valid(t *testing.T) {
	for _, r := range []UserRole{RoleAdmin, RoleEditor, RoleAuthor} {
		if !r.Valid() {
			t.Errorf("%s should be valid", r)
		}
	}
	if UserRole("viewer").Valid() || UserRole("").Valid() {
		t.Error("unknown roles should be invalid")
	}
}

func TestGender_Valid(t *testing.T) {
	// Gender is optional profile data, so the empty string passes.
	for _, g := range []Gender{GenderMale, GenderFemale, GenderOther, ""} {
		if !g.Valid() {
			t.Errorf("%q should be valid", g)
		}
	}
	if Gender("N/A").Valid() {
		t.Error("unknown gender should be invalid")
	}
}

func TestCommentStatus_Valid(t *testing.T) {
	if !CommentPending.Valid() || !CommentApproved.Valid() || !CommentSpam.Valid() {
		t.Error("enum members should be valid")
	}
	if CommentStatus("OK").Valid() {
		t.Error("unknown status should be invalid")
	}
}

func TestContactStatus_Valid(t *testing.T) {
	if !ContactNew.Valid() || !ContactRead.Valid() || !ContactArchived.Valid() {
		t.Error("enum members should be valid")
	}
	if ContactStatus("").Valid() {
		t.Error("empty status should be invalid")
	}
}
