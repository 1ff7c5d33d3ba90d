package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pressroom/internal/domain/entity"
	"pressroom/internal/pkg/search"
	"pressroom/internal/repository"
)

type CommentRepo struct {
	db DBTX
}

func NewCommentRepo(db DBTX) repository.CommentRepository {
	return &CommentRepo{db: db}
}

func (repo *CommentRepo) Get(ctx context.Context, id int64) (*entity.Comment, error) {
	const query = `
SELECT id, article_id, author_name, email, content, status, created_at
FROM comments
WHERE id = $1 AND deleted_at IS NULL
LIMIT 1`
	var comment entity.Comment
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&comment.ID, &comment.ArticleID, &comment.AuthorName,
			&comment.Email, &comment.Content, &comment.Status, &comment.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &comment, nil
}

func (repo *CommentRepo) ListApproved(ctx context.Context, articleID int64) ([]*entity.Comment, error) {
	const query = `
SELECT id, article_id, author_name, email, content, status, created_at
FROM comments
WHERE article_id = $1 AND status = 'APPROVED' AND deleted_at IS NULL
ORDER BY created_at`
	rows, err := repo.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("ListApproved: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanComments(rows, "ListApproved")
}

// commentFilterClause renders the optional admin filters. Placeholders
// continue from the returned arg slice.
func commentFilterClause(filters repository.CommentListFilters) (string, []interface{}) {
	clause := ` WHERE deleted_at IS NULL`
	args := []interface{}{}
	if filters.ArticleID != nil {
		args = append(args, *filters.ArticleID)
		clause += fmt.Sprintf(` AND article_id = $%d`, len(args))
	}
	if filters.Status != nil {
		args = append(args, string(*filters.Status))
		clause += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	if filters.Search != "" {
		args = append(args, search.EscapeILIKE(filters.Search))
		n := len(args)
		clause += fmt.Sprintf(` AND (author_name ILIKE $%d OR email ILIKE $%d OR content ILIKE $%d)`, n, n, n)
	}
	return clause, args
}

func (repo *CommentRepo) List(ctx context.Context, filters repository.CommentListFilters, offset, limit int) ([]*entity.Comment, error) {
	clause, args := commentFilterClause(filters)
	query := `
SELECT id, article_id, author_name, email, content, status, created_at
FROM comments` + clause +
		fmt.Sprintf(`
ORDER BY created_at DESC
LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanComments(rows, "List")
}

func (repo *CommentRepo) Count(ctx context.Context, filters repository.CommentListFilters) (int64, error) {
	clause, args := commentFilterClause(filters)
	query := `SELECT COUNT(*) FROM comments` + clause
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *CommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	const query = `
INSERT INTO comments (article_id, author_name, email, content, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		comment.ArticleID, comment.AuthorName, comment.Email,
		comment.Content, comment.Status, comment.CreatedAt,
	).Scan(&comment.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *CommentRepo) UpdateStatus(ctx context.Context, id int64, status entity.CommentStatus) error {
	const query = `
UPDATE comments SET status = $1
WHERE id = $2 AND deleted_at IS NULL`
	res, err := repo.db.ExecContext(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("UpdateStatus: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("UpdateStatus: no rows affected")
	}
	return nil
}

func (repo *CommentRepo) SoftDelete(ctx context.Context, id int64) error {
	const query = `
UPDATE comments SET deleted_at = now()
WHERE id = $1 AND deleted_at IS NULL`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("SoftDelete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("SoftDelete: no rows affected")
	}
	return nil
}

func scanComments(rows *sql.Rows, op string) ([]*entity.Comment, error) {
	comments := make([]*entity.Comment, 0, 16)
	for rows.Next() {
		var comment entity.Comment
		if err := rows.Scan(&comment.ID, &comment.ArticleID, &comment.AuthorName,
			&comment.Email, &comment.Content, &comment.Status, &comment.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		comments = append(comments, &comment)
	}
	return comments, rows.Err()
}
