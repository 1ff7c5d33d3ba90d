package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"pressroom/internal/domain/entity"
	pg "pressroom/internal/infra/adapter/persistence/postgres"
	"pressroom/internal/repository"
)

var commentColumns = []string{
	"id", "article_id", "author_name", "email", "content", "status", "created_at",
}

func commentRow(c *entity.Comment) *sqlmock.Rows {
	return sqlmock.NewRows(commentColumns).AddRow(
		c.ID, c.ArticleID, c.AuthorName, c.Email, c.Content, c.Status, c.CreatedAt,
	)
}

func TestCommentRepo_ListApproved(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery("FROM comments").
		WithArgs(int64(1)).
		WillReturnRows(commentRow(&entity.Comment{
			ID: 1, ArticleID: 1, AuthorName: "Bob",
			Email: "bob@example.com", Content: "nice",
			Status: entity.CommentApproved, CreatedAt: now,
		}))

	repo := pg.NewCommentRepo(db)
	got, err := repo.ListApproved(context.Background(), 1)
	if err != nil || len(got) != 1 {
		t.Fatalf("ListApproved err=%v len=%d", err, len(got))
	}
}

func TestCommentRepo_List_Filters(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	articleID := int64(1)
	status := entity.CommentPending
	mock.ExpectQuery("FROM comments").
		WithArgs(articleID, string(status), "%spam%", 20, 0).
		WillReturnRows(commentRow(&entity.Comment{
			ID: 2, ArticleID: 1, AuthorName: "Eve",
			Email: "eve@example.com", Content: "spammy",
			Status: entity.CommentPending, CreatedAt: now,
		}))

	repo := pg.NewCommentRepo(db)
	got, err := repo.List(context.Background(), repository.CommentListFilters{
		ArticleID: &articleID,
		Status:    &status,
		Search:    "spam",
	}, 0, 20)
	if err != nil || len(got) != 1 {
		t.Fatalf("List err=%v len=%d", err, len(got))
	}
}

func TestCommentRepo_Count(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM comments")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(8)))

	repo := pg.NewCommentRepo(db)
	count, err := repo.Count(context.Background(), repository.CommentListFilters{})
	if err != nil || count != 8 {
		t.Fatalf("Count err=%v count=%d", err, count)
	}
}

func TestCommentRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO comments")).
		WithArgs(int64(1), "Bob", "bob@example.com", "nice", entity.CommentPending, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	repo := pg.NewCommentRepo(db)
	comment := &entity.Comment{
		ArticleID: 1, AuthorName: "Bob", Email: "bob@example.com",
		Content: "nice", Status: entity.CommentPending, CreatedAt: now,
	}
	if err := repo.Create(context.Background(), comment); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if comment.ID != 5 {
		t.Fatalf("Create ID=%d, want 5", comment.ID)
	}
}

func TestCommentRepo_UpdateStatus(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("UPDATE comments").
		WithArgs("APPROVED", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewCommentRepo(db)
	if err := repo.UpdateStatus(context.Background(), 5, entity.CommentApproved); err != nil {
		t.Fatalf("UpdateStatus err=%v", err)
	}
}

func TestCommentRepo_SoftDelete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("UPDATE comments SET deleted_at").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewCommentRepo(db)
	if err := repo.SoftDelete(context.Background(), 5); err != nil {
		t.Fatalf("SoftDelete err=%v", err)
	}
}
