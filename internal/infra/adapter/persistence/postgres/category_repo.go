package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pressroom/internal/domain/entity"
	"pressroom/internal/pkg/search"
	"pressroom/internal/repository"
)

type CategoryRepo struct {
	db DBTX
}

func NewCategoryRepo(db DBTX) repository.CategoryRepository {
	return &CategoryRepo{db: db}
}

func (repo *CategoryRepo) Get(ctx context.Context, id int64) (*entity.Category, error) {
	const query = `
SELECT id, name, slug, description, created_at, updated_at
FROM categories
WHERE id = $1 AND deleted_at IS NULL
LIMIT 1`
	var category entity.Category
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&category.ID, &category.Name, &category.Slug, &category.Description,
			&category.CreatedAt, &category.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &category, nil
}

func (repo *CategoryRepo) List(ctx context.Context, searchTerm string, offset, limit int) ([]*entity.Category, error) {
	query := `
SELECT id, name, slug, description, created_at, updated_at
FROM categories
WHERE deleted_at IS NULL`
	args := []interface{}{}
	if searchTerm != "" {
		query += ` AND (name ILIKE $1 OR slug ILIKE $1 OR description ILIKE $1)`
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

	categories := make([]*entity.Category, 0, limit)
	for rows.Next() {
		var category entity.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Slug,
			&category.Description, &category.CreatedAt, &category.UpdatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		categories = append(categories, &category)
	}
	return categories, rows.Err()
}

func (repo *CategoryRepo) Count(ctx context.Context, searchTerm string) (int64, error) {
	query := `SELECT COUNT(*) FROM categories WHERE deleted_at IS NULL`
	args := []interface{}{}
	if searchTerm != "" {
		query += ` AND (name ILIKE $1 OR slug ILIKE $1 OR description ILIKE $1)`
		args = append(args, search.EscapeILIKE(searchTerm))
	}
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *CategoryRepo) ListWithCounts(ctx context.Context) ([]repository.CategoryWithCount, error) {
	const query = `
SELECT c.id, c.name, c.slug, c.description, c.created_at, c.updated_at,
       COUNT(a.id) FILTER (WHERE a.deleted_at IS NULL AND a.status = 'PUBLISHED') AS article_count
FROM categories c
LEFT JOIN articles a ON a.category_id = c.id
WHERE c.deleted_at IS NULL
GROUP BY c.id, c.name, c.slug, c.description, c.created_at, c.updated_at
ORDER BY c.name`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListWithCounts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.CategoryWithCount, 0, 16)
	for rows.Next() {
		var category entity.Category
		var count int64
		if err := rows.Scan(&category.ID, &category.Name, &category.Slug,
			&category.Description, &category.CreatedAt, &category.UpdatedAt, &count); err != nil {
			return nil, fmt.Errorf("ListWithCounts: Scan: %w", err)
		}
		result = append(result, repository.CategoryWithCount{
			Category:     &category,
			ArticleCount: count,
		})
	}
	return result, rows.Err()
}

func (repo *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	const query = `
INSERT INTO categories (name, slug, description, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		category.Name, category.Slug, category.Description,
		category.CreatedAt, category.UpdatedAt,
	).Scan(&category.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", translateError(err))
	}
	return nil
}

func (repo *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	const query = `
UPDATE categories SET
       name        = $1,
       slug        = $2,
       description = $3,
       updated_at  = $4
WHERE id = $5 AND deleted_at IS NULL`
	res, err := repo.db.ExecContext(ctx, query,
		category.Name, category.Slug, category.Description,
		category.UpdatedAt, category.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", translateError(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: no rows affected")
	}
	return nil
}

func (repo *CategoryRepo) SoftDelete(ctx context.Context, id int64) error {
	const query = `
UPDATE categories SET deleted_at = now()
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

func (repo *CategoryRepo) CountBySlug(ctx context.Context, slug string, excludeID int64) (int64, error) {
	const query = `
SELECT COUNT(*) FROM categories
WHERE slug = $1 AND deleted_at IS NULL AND id <> $2`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, slug, excludeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountBySlug: %w", err)
	}
	return count, nil
}

func (repo *CategoryRepo) CountArticles(ctx context.Context, categoryID int64) (int64, error) {
	const query = `
SELECT COUNT(*) FROM articles
WHERE category_id = $1 AND deleted_at IS NULL`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, categoryID).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountArticles: %w", err)
	}
	return count, nil
}
