package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"pressroom/internal/domain/entity"
	"pressroom/internal/pkg/search"
	"pressroom/internal/repository"
)

type ArticleRepo struct {
	db           DBTX
	queryBuilder *ArticleQueryBuilder
}

func NewArticleRepo(db DBTX) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewArticleQueryBuilder(),
	}
}

func scanArticle(row interface{ Scan(...interface{}) error }) (*entity.Article, error) {
	var article entity.Article
	err := row.Scan(&article.ID, &article.Title, &article.Slug, &article.Summary,
		&article.Content, &article.MarkdownContent, &article.ThumbnailURL,
		&article.Status, &article.AuthorID, &article.CategoryID,
		&article.PublishAt, &article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT id, title, slug, summary, content, markdown_content, thumbnail_url,
       status, author_id, category_id, publish_at, created_at, updated_at
FROM articles
WHERE id = $1 AND deleted_at IS NULL
LIMIT 1`
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) GetBySlug(ctx context.Context, slug string) (*repository.ArticleWithRelations, error) {
	const query = `
SELECT a.id, a.title, a.slug, a.summary, a.content, a.markdown_content, a.thumbnail_url,
       a.status, a.author_id, a.category_id, a.publish_at, a.created_at, a.updated_at,
       c.name AS category_name, c.slug AS category_slug, u.name AS author_name
FROM articles a
INNER JOIN categories c ON a.category_id = c.id
INNER JOIN users u ON a.author_id = u.id
WHERE a.slug = $1 AND a.deleted_at IS NULL
LIMIT 1`
	var article entity.Article
	var categoryName, categorySlug, authorName string
	err := repo.db.QueryRowContext(ctx, query, slug).
		Scan(&article.ID, &article.Title, &article.Slug, &article.Summary,
			&article.Content, &article.MarkdownContent, &article.ThumbnailURL,
			&article.Status, &article.AuthorID, &article.CategoryID,
			&article.PublishAt, &article.CreatedAt, &article.UpdatedAt,
			&categoryName, &categorySlug, &authorName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetBySlug: %w", err)
	}

	tags, err := repo.TagNames(ctx, article.ID)
	if err != nil {
		return nil, fmt.Errorf("GetBySlug: %w", err)
	}
	return &repository.ArticleWithRelations{
		Article:      &article,
		CategoryName: categoryName,
		CategorySlug: categorySlug,
		AuthorName:   authorName,
		TagNames:     tags,
	}, nil
}

func (repo *ArticleRepo) List(ctx context.Context, filters repository.ArticleListFilters, offset, limit int) ([]repository.ArticleWithRelations, error) {
	ctx, cancel := context.WithTimeout(ctx, search.DefaultSearchTimeout)
	defer cancel()

	whereClause, args := repo.queryBuilder.BuildWhereClause(filters, "a")
	paramIndex := len(args) + 1
	args = append(args, limit, offset)

	query := fmt.Sprintf(`
SELECT a.id, a.title, a.slug, a.summary, a.content, a.markdown_content, a.thumbnail_url,
       a.status, a.author_id, a.category_id, a.publish_at, a.created_at, a.updated_at,
       c.name AS category_name, c.slug AS category_slug, u.name AS author_name
FROM articles a
INNER JOIN categories c ON a.category_id = c.id
INNER JOIN users u ON a.author_id = u.id
%s
ORDER BY a.created_at DESC
LIMIT $%d OFFSET $%d`, whereClause, paramIndex, paramIndex+1)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.ArticleWithRelations, 0, limit)
	ids := make([]int64, 0, limit)
	for rows.Next() {
		var article entity.Article
		var categoryName, categorySlug, authorName string
		if err := rows.Scan(&article.ID, &article.Title, &article.Slug, &article.Summary,
			&article.Content, &article.MarkdownContent, &article.ThumbnailURL,
			&article.Status, &article.AuthorID, &article.CategoryID,
			&article.PublishAt, &article.CreatedAt, &article.UpdatedAt,
			&categoryName, &categorySlug, &authorName); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		result = append(result, repository.ArticleWithRelations{
			Article:      &article,
			CategoryName: categoryName,
			CategorySlug: categorySlug,
			AuthorName:   authorName,
		})
		ids = append(ids, article.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}

	// Tag names are fetched in one batch to avoid an N+1 query per article.
	tagsByArticle, err := repo.tagNamesBatch(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	for i := range result {
		result[i].TagNames = tagsByArticle[result[i].Article.ID]
	}
	return result, nil
}

func (repo *ArticleRepo) Count(ctx context.Context, filters repository.ArticleListFilters) (int64, error) {
	whereClause, args := repo.queryBuilder.BuildWhereClause(filters, "")
	query := "SELECT COUNT(*) FROM articles " + whereClause

	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles
       (title, slug, summary, content, markdown_content, thumbnail_url,
        status, author_id, category_id, publish_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		article.Title, article.Slug, article.Summary, article.Content,
		article.MarkdownContent, article.ThumbnailURL, article.Status,
		article.AuthorID, article.CategoryID, article.PublishAt,
		article.CreatedAt, article.UpdatedAt,
	).Scan(&article.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", translateError(err))
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	const query = `
UPDATE articles SET
       title            = $1,
       slug             = $2,
       summary          = $3,
       content          = $4,
       markdown_content = $5,
       thumbnail_url    = $6,
       status           = $7,
       author_id        = $8,
       category_id      = $9,
       publish_at       = $10,
       updated_at       = $11
WHERE id = $12 AND deleted_at IS NULL`
	res, err := repo.db.ExecContext(ctx, query,
		article.Title, article.Slug, article.Summary, article.Content,
		article.MarkdownContent, article.ThumbnailURL, article.Status,
		article.AuthorID, article.CategoryID, article.PublishAt,
		article.UpdatedAt, article.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", translateError(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: no rows affected")
	}
	return nil
}

func (repo *ArticleRepo) DeleteBulk(ctx context.Context, ids []int64) (int64, error) {
	const query = `DELETE FROM articles WHERE id = ANY($1)`
	res, err := repo.db.ExecContext(ctx, query, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("DeleteBulk: %w", err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("DeleteBulk: RowsAffected: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) CountBySlug(ctx context.Context, slug string, excludeID int64) (int64, error) {
	const query = `
SELECT COUNT(*) FROM articles
WHERE slug = $1 AND deleted_at IS NULL AND id <> $2`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, slug, excludeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountBySlug: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) TagNames(ctx context.Context, articleID int64) ([]string, error) {
	const query = `
SELECT t.name
FROM article_tags at
INNER JOIN tags t ON at.tag_id = t.id
WHERE at.article_id = $1 AND t.deleted_at IS NULL
ORDER BY t.name`
	rows, err := repo.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("TagNames: %w", err)
	}
	defer func() { _ = rows.Close() }()

	names := make([]string, 0, 8)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("TagNames: Scan: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// tagNamesBatch resolves tag names for many articles in a single query.
func (repo *ArticleRepo) tagNamesBatch(ctx context.Context, articleIDs []int64) (map[int64][]string, error) {
	result := make(map[int64][]string, len(articleIDs))
	if len(articleIDs) == 0 {
		return result, nil
	}

	const query = `
SELECT at.article_id, t.name
FROM article_tags at
INNER JOIN tags t ON at.tag_id = t.id
WHERE at.article_id = ANY($1) AND t.deleted_at IS NULL
ORDER BY at.article_id, t.name`
	rows, err := repo.db.QueryContext(ctx, query, pq.Array(articleIDs))
	if err != nil {
		return nil, fmt.Errorf("tagNamesBatch: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var articleID int64
		var name string
		if err := rows.Scan(&articleID, &name); err != nil {
			return nil, fmt.Errorf("tagNamesBatch: Scan: %w", err)
		}
		result[articleID] = append(result[articleID], name)
	}
	return result, rows.Err()
}

func (repo *ArticleRepo) AddTags(ctx context.Context, articleID int64, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}
	const query = `
INSERT INTO article_tags (article_id, tag_id)
SELECT $1, unnest($2::bigint[])
ON CONFLICT (article_id, tag_id) DO NOTHING`
	if _, err := repo.db.ExecContext(ctx, query, articleID, pq.Array(tagIDs)); err != nil {
		return fmt.Errorf("AddTags: %w", err)
	}
	return nil
}

// ReplaceTags rewrites the article's join rows inside one transaction so
// readers never observe a half-rewritten tag set.
func (repo *ArticleRepo) ReplaceTags(ctx context.Context, articleID int64, tagIDs []int64) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ReplaceTags: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM article_tags WHERE article_id = $1`, articleID); err != nil {
		return fmt.Errorf("ReplaceTags: delete: %w", err)
	}
	if len(tagIDs) > 0 {
		const insert = `
INSERT INTO article_tags (article_id, tag_id)
SELECT $1, unnest($2::bigint[])
ON CONFLICT (article_id, tag_id) DO NOTHING`
		if _, err := tx.ExecContext(ctx, insert, articleID, pq.Array(tagIDs)); err != nil {
			return fmt.Errorf("ReplaceTags: insert: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ReplaceTags: commit: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) ListDuePublish(ctx context.Context, now time.Time, limit int) ([]*entity.Article, error) {
	const query = `
SELECT id, title, slug, summary, content, markdown_content, thumbnail_url,
       status, author_id, category_id, publish_at, created_at, updated_at
FROM articles
WHERE status = 'DRAFT' AND publish_at IS NOT NULL AND publish_at <= $1
  AND deleted_at IS NULL
ORDER BY publish_at
LIMIT $2`
	rows, err := repo.db.QueryContext(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("ListDuePublish: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, limit)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("ListDuePublish: Scan: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) CountAll(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles WHERE deleted_at IS NULL`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountAll: %w", err)
	}
	return count, nil
}
