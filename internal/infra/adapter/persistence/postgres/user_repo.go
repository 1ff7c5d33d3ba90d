package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pressroom/internal/domain/entity"
	"pressroom/internal/pkg/search"
	"pressroom/internal/repository"
)

type UserRepo struct {
	db DBTX
}

func NewUserRepo(db DBTX) repository.UserRepository {
	return &UserRepo{db: db}
}

func (repo *UserRepo) Get(ctx context.Context, id int64) (*entity.User, error) {
	const query = `
SELECT id, name, email, role, gender, bio, avatar_url, created_at, updated_at
FROM users
WHERE id = $1 AND deleted_at IS NULL
LIMIT 1`
	var user entity.User
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.Gender,
			&user.Bio, &user.AvatarURL, &user.CreatedAt, &user.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &user, nil
}

func (repo *UserRepo) List(ctx context.Context, searchTerm string, offset, limit int) ([]*entity.User, error) {
	query := `
SELECT id, name, email, role, gender, bio, avatar_url, created_at, updated_at
FROM users
WHERE deleted_at IS NULL`
	args := []interface{}{}
	if searchTerm != "" {
		query += ` AND (name ILIKE $1 OR email ILIKE $1)`
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

	users := make([]*entity.User, 0, limit)
	for rows.Next() {
		var user entity.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.Gender,
			&user.Bio, &user.AvatarURL, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}

func (repo *UserRepo) Count(ctx context.Context, searchTerm string) (int64, error) {
	query := `SELECT COUNT(*) FROM users WHERE deleted_at IS NULL`
	args := []interface{}{}
	if searchTerm != "" {
		query += ` AND (name ILIKE $1 OR email ILIKE $1)`
		args = append(args, search.EscapeILIKE(searchTerm))
	}
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *UserRepo) Create(ctx context.Context, user *entity.User) error {
	const query = `
INSERT INTO users (name, email, role, gender, bio, avatar_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		user.Name, user.Email, user.Role, user.Gender,
		user.Bio, user.AvatarURL, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", translateError(err))
	}
	return nil
}

func (repo *UserRepo) Update(ctx context.Context, user *entity.User) error {
	const query = `
UPDATE users SET
       name       = $1,
       email      = $2,
       role       = $3,
       gender     = $4,
       bio        = $5,
       avatar_url = $6,
       updated_at = $7
WHERE id = $8 AND deleted_at IS NULL`
	res, err := repo.db.ExecContext(ctx, query,
		user.Name, user.Email, user.Role, user.Gender,
		user.Bio, user.AvatarURL, user.UpdatedAt, user.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", translateError(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: no rows affected")
	}
	return nil
}

func (repo *UserRepo) CountByEmail(ctx context.Context, email string, excludeID int64) (int64, error) {
	const query = `
SELECT COUNT(*) FROM users
WHERE email = $1 AND deleted_at IS NULL AND id <> $2`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, email, excludeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountByEmail: %w", err)
	}
	return count, nil
}
