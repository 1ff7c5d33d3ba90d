package entity

import "time"

// CommentStatus is the moderation state of a reader comment.
type CommentStatus string

const (
	CommentPending  CommentStatus = "PENDING"
	CommentApproved CommentStatus = "APPROVED"
	CommentSpam     CommentStatus = "SPAM"
)

// Valid reports whether the status is a member of the enum.
func (s CommentStatus) Valid() bool {
	switch s {
	case CommentPending, CommentApproved, CommentSpam:
		return true
	}
	return false
}

// Comment is a reader comment on a published article.
// New comments enter as PENDING and become visible once APPROVED.
type Comment struct {
	ID         int64
	ArticleID  int64
	AuthorName string
	Email      string
	Content    string
	Status     CommentStatus
	CreatedAt  time.Time
	DeletedAt  *time.Time
}
