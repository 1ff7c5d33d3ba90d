package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"pressroom/internal/domain/entity"
	pg "pressroom/internal/infra/adapter/persistence/postgres"
	"pressroom/internal/repository"
)

/* ─────────────────────────── helpers ─────────────────────────── */

var articleColumns = []string{
	"id", "title", "slug", "summary", "content", "markdown_content",
	"thumbnail_url", "status", "author_id", "category_id",
	"publish_at", "created_at", "updated_at",
}

func articleRow(a *entity.Article) *sqlmock.Rows {
	return sqlmock.NewRows(articleColumns).AddRow(
		a.ID, a.Title, a.Slug, a.Summary, a.Content, a.MarkdownContent,
		a.ThumbnailURL, a.Status, a.AuthorID, a.CategoryID,
		a.PublishAt, a.CreatedAt, a.UpdatedAt,
	)
}

func sampleArticle(now time.Time) *entity.Article {
	return &entity.Article{
		ID: 1, Title: "Go 1.25 released", Slug: "go-1-25-released",
		Summary: "sum", Content: "<p>body</p>", MarkdownContent: "body",
		ThumbnailURL: "https://cdn.example.com/t.png",
		Status:       entity.StatusPublished,
		AuthorID:     2, CategoryID: 3,
		CreatedAt: now, UpdatedAt: now,
	}
}

/* ─────────────────────────── 1. Get ─────────────────────────── */

func TestArticleRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	want := sampleArticle(now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WithArgs(int64(1)).
		WillReturnRows(articleRow(want))

	repo := pg.NewArticleRepo(db)
	got, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Get_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(articleColumns))

	repo := pg.NewArticleRepo(db)
	got, err := repo.Get(context.Background(), 404)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got != nil {
		t.Fatalf("Get want nil, got %+v", got)
	}
}

/* ─────────────────────────── 2. GetBySlug ─────────────────────────── */

func TestArticleRepo_GetBySlug(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	article := sampleArticle(now)

	cols := append(append([]string{}, articleColumns...),
		"category_name", "category_slug", "author_name")
	mock.ExpectQuery("FROM articles a").
		WithArgs("go-1-25-released").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			article.ID, article.Title, article.Slug, article.Summary,
			article.Content, article.MarkdownContent, article.ThumbnailURL,
			article.Status, article.AuthorID, article.CategoryID,
			article.PublishAt, article.CreatedAt, article.UpdatedAt,
			"Releases", "releases", "Alice",
		))
	mock.ExpectQuery("FROM article_tags").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("go").AddRow("release"))

	repo := pg.NewArticleRepo(db)
	got, err := repo.GetBySlug(context.Background(), "go-1-25-released")
	if err != nil {
		t.Fatalf("GetBySlug err=%v", err)
	}
	if got == nil || got.CategoryName != "Releases" || got.AuthorName != "Alice" {
		t.Fatalf("GetBySlug got=%+v", got)
	}
	if diff := cmp.Diff([]string{"go", "release"}, got.TagNames); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
}

/* ─────────────────────────── 3. List ─────────────────────────── */

func TestArticleRepo_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	article := sampleArticle(now)

	cols := append(append([]string{}, articleColumns...),
		"category_name", "category_slug", "author_name")
	mock.ExpectQuery("FROM articles a").
		WithArgs("%go%", 20, 0).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			article.ID, article.Title, article.Slug, article.Summary,
			article.Content, article.MarkdownContent, article.ThumbnailURL,
			article.Status, article.AuthorID, article.CategoryID,
			article.PublishAt, article.CreatedAt, article.UpdatedAt,
			"Releases", "releases", "Alice",
		))
	mock.ExpectQuery("FROM article_tags").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"article_id", "name"}).
			AddRow(int64(1), "go"))

	repo := pg.NewArticleRepo(db)
	got, err := repo.List(context.Background(),
		repository.ArticleListFilters{Search: "go"}, 0, 20)
	if err != nil || len(got) != 1 {
		t.Fatalf("List err=%v len=%d", err, len(got))
	}
	if diff := cmp.Diff([]string{"go"}, got[0].TagNames); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
}

/* ─────────────────────────── 4. Count ─────────────────────────── */

func TestArticleRepo_Count(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM articles")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(42)))

	repo := pg.NewArticleRepo(db)
	count, err := repo.Count(context.Background(), repository.ArticleListFilters{})
	if err != nil || count != 42 {
		t.Fatalf("Count err=%v count=%d", err, count)
	}
}

/* ─────────────────────────── 5. Create ─────────────────────────── */

func TestArticleRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	article := sampleArticle(now)
	article.ID = 0

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO articles")).
		WithArgs(article.Title, article.Slug, article.Summary, article.Content,
			article.MarkdownContent, article.ThumbnailURL, article.Status,
			article.AuthorID, article.CategoryID, article.PublishAt, now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	repo := pg.NewArticleRepo(db)
	if err := repo.Create(context.Background(), article); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if article.ID != 7 {
		t.Fatalf("Create ID=%d, want 7", article.ID)
	}
}

/* ─────────────────────────── 6. Update ─────────────────────────── */

func TestArticleRepo_Update(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	article := sampleArticle(now)

	mock.ExpectExec("UPDATE articles").
		WithArgs(article.Title, article.Slug, article.Summary, article.Content,
			article.MarkdownContent, article.ThumbnailURL, article.Status,
			article.AuthorID, article.CategoryID, article.PublishAt,
			article.UpdatedAt, article.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewArticleRepo(db)
	if err := repo.Update(context.Background(), article); err != nil {
		t.Fatalf("Update err=%v", err)
	}
}

/* ─────────────────────────── 7. DeleteBulk ─────────────────────────── */

func TestArticleRepo_DeleteBulk(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM articles WHERE id = ANY($1)")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))

	repo := pg.NewArticleRepo(db)
	count, err := repo.DeleteBulk(context.Background(), []int64{1, 2, 404})
	if err != nil {
		t.Fatalf("DeleteBulk err=%v", err)
	}
	if count != 2 {
		t.Fatalf("DeleteBulk count=%d, want 2", count)
	}
}

/* ─────────────────────────── 8. CountBySlug ─────────────────────────── */

func TestArticleRepo_CountBySlug(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM articles")).
		WithArgs("taken-slug", int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	repo := pg.NewArticleRepo(db)
	count, err := repo.CountBySlug(context.Background(), "taken-slug", 0)
	if err != nil || count != 1 {
		t.Fatalf("CountBySlug err=%v count=%d", err, count)
	}
}

/* ─────────────────────────── 9. AddTags ─────────────────────────── */

func TestArticleRepo_AddTags(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO article_tags")).
		WithArgs(int64(1), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))

	repo := pg.NewArticleRepo(db)
	if err := repo.AddTags(context.Background(), 1, []int64{10, 11}); err != nil {
		t.Fatalf("AddTags err=%v", err)
	}
}

func TestArticleRepo_AddTags_Empty(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	repo := pg.NewArticleRepo(db)
	if err := repo.AddTags(context.Background(), 1, nil); err != nil {
		t.Fatalf("AddTags err=%v", err)
	}
}

/* ─────────────────────────── 10. ReplaceTags ─────────────────────────── */

func TestArticleRepo_ReplaceTags(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM article_tags WHERE article_id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO article_tags")).
		WithArgs(int64(1), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	repo := pg.NewArticleRepo(db)
	if err := repo.ReplaceTags(context.Background(), 1, []int64{10, 11}); err != nil {
		t.Fatalf("ReplaceTags err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_ReplaceTags_Clear(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	// An empty tag set only deletes; no insert is issued.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM article_tags WHERE article_id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	repo := pg.NewArticleRepo(db)
	if err := repo.ReplaceTags(context.Background(), 1, nil); err != nil {
		t.Fatalf("ReplaceTags err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ─────────────────────────── 11. ListDuePublish ─────────────────────────── */

func TestArticleRepo_ListDuePublish(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	due := now.Add(-time.Hour)
	article := sampleArticle(now)
	article.Status = entity.StatusDraft
	article.PublishAt = &due

	mock.ExpectQuery("FROM articles").
		WithArgs(now, 50).
		WillReturnRows(articleRow(article))

	repo := pg.NewArticleRepo(db)
	got, err := repo.ListDuePublish(context.Background(), now, 50)
	if err != nil || len(got) != 1 {
		t.Fatalf("ListDuePublish err=%v len=%d", err, len(got))
	}
	if got[0].Status != entity.StatusDraft {
		t.Fatalf("status=%s, want DRAFT", got[0].Status)
	}
}
