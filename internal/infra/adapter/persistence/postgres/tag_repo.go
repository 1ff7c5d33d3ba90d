package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"pressroom/internal/domain/entity"
	"pressroom/internal/pkg/search"
	"pressroom/internal/repository"
)

type TagRepo struct {
	db DBTX
}

func NewTagRepo(db DBTX) repository.TagRepository {
	return &TagRepo{db: db}
}

func (repo *TagRepo) Get(ctx context.Context, id int64) (*entity.Tag, error) {
	const query = `
SELECT id, name, created_at, updated_at
FROM tags
WHERE id = $1 AND deleted_at IS NULL
LIMIT 1`
	var tag entity.Tag
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&tag.ID, &tag.Name, &tag.CreatedAt, &tag.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &tag, nil
}

func (repo *TagRepo) List(ctx context.Context, searchTerm string, offset, limit int) ([]*entity.Tag, error) {
	query := `
SELECT id, name, created_at, updated_at
FROM tags
WHERE deleted_at IS NULL`
	args := []interface{}{}
	if searchTerm != "" {
		query += ` AND name ILIKE $1`
		args = append(args, search.EscapeILIKE(searchTerm))
	}
	query += fmt.Sprintf(`
ORDER BY name
LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tags := make([]*entity.Tag, 0, limit)
	for rows.Next() {
		var tag entity.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.CreatedAt, &tag.UpdatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		tags = append(tags, &tag)
	}
	return tags, rows.Err()
}

func (repo *TagRepo) Count(ctx context.Context, searchTerm string) (int64, error) {
	query := `SELECT COUNT(*) FROM tags WHERE deleted_at IS NULL`
	args := []interface{}{}
	if searchTerm != "" {
		query += ` AND name ILIKE $1`
		args = append(args, search.EscapeILIKE(searchTerm))
	}
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

// FindByNames matches live tags by exact name. Names absent from the
// result simply do not exist yet.
func (repo *TagRepo) FindByNames(ctx context.Context, names []string) ([]*entity.Tag, error) {
	if len(names) == 0 {
		return nil, nil
	}
	const query = `
SELECT id, name, created_at, updated_at
FROM tags
WHERE name = ANY($1) AND deleted_at IS NULL`
	rows, err := repo.db.QueryContext(ctx, query, pq.Array(names))
	if err != nil {
		return nil, fmt.Errorf("FindByNames: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tags := make([]*entity.Tag, 0, len(names))
	for rows.Next() {
		var tag entity.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.CreatedAt, &tag.UpdatedAt); err != nil {
			return nil, fmt.Errorf("FindByNames: Scan: %w", err)
		}
		tags = append(tags, &tag)
	}
	return tags, rows.Err()
}

func (repo *TagRepo) Create(ctx context.Context, tag *entity.Tag) error {
	const query = `
INSERT INTO tags (name, created_at, updated_at)
VALUES ($1, $2, $3)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query, tag.Name, tag.CreatedAt, tag.UpdatedAt).
		Scan(&tag.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", translateError(err))
	}
	return nil
}

func (repo *TagRepo) Update(ctx context.Context, tag *entity.Tag) error {
	const query = `
UPDATE tags SET name = $1, updated_at = $2
WHERE id = $3 AND deleted_at IS NULL`
	res, err := repo.db.ExecContext(ctx, query, tag.Name, tag.UpdatedAt, tag.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", translateError(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: no rows affected")
	}
	return nil
}

func (repo *TagRepo) SoftDelete(ctx context.Context, id int64) error {
	const query = `
UPDATE tags SET deleted_at = now()
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

func (repo *TagRepo) CountByName(ctx context.Context, name string, excludeID int64) (int64, error) {
	const query = `
SELECT COUNT(*) FROM tags
WHERE name = $1 AND deleted_at IS NULL AND id <> $2`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, name, excludeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountByName: %w", err)
	}
	return count, nil
}

func (repo *TagRepo) CountArticles(ctx context.Context, tagID int64) (int64, error) {
	const query = `
SELECT COUNT(*) FROM article_tags at
JOIN articles a ON a.id = at.article_id
WHERE at.tag_id = $1 AND a.deleted_at IS NULL`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, tagID).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountArticles: %w", err)
	}
	return count, nil
}
