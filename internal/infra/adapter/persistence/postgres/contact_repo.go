package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pressroom/internal/domain/entity"
	"pressroom/internal/repository"
)

type ContactRepo struct {
	db DBTX
}

func NewContactRepo(db DBTX) repository.ContactRepository {
	return &ContactRepo{db: db}
}

func (repo *ContactRepo) Get(ctx context.Context, id int64) (*entity.ContactMessage, error) {
	const query = `
SELECT id, name, email, subject, message, status, created_at, updated_at
FROM contact_messages
WHERE id = $1
LIMIT 1`
	var msg entity.ContactMessage
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Message,
			&msg.Status, &msg.CreatedAt, &msg.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &msg, nil
}

func (repo *ContactRepo) List(ctx context.Context, status *entity.ContactStatus, offset, limit int) ([]*entity.ContactMessage, error) {
	query := `
SELECT id, name, email, subject, message, status, created_at, updated_at
FROM contact_messages`
	args := []interface{}{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, string(*status))
	}
	query += fmt.Sprintf(`
ORDER BY created_at DESC
LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	messages := make([]*entity.ContactMessage, 0, limit)
	for rows.Next() {
		var msg entity.ContactMessage
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Message,
			&msg.Status, &msg.CreatedAt, &msg.UpdatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		messages = append(messages, &msg)
	}
	return messages, rows.Err()
}

func (repo *ContactRepo) Count(ctx context.Context, status *entity.ContactStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM contact_messages`
	args := []interface{}{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, string(*status))
	}
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ContactRepo) Create(ctx context.Context, msg *entity.ContactMessage) error {
	const query = `
INSERT INTO contact_messages (name, email, subject, message, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		msg.Name, msg.Email, msg.Subject, msg.Message,
		msg.Status, msg.CreatedAt, msg.UpdatedAt,
	).Scan(&msg.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ContactRepo) UpdateStatus(ctx context.Context, id int64, status entity.ContactStatus) error {
	const query = `
UPDATE contact_messages SET status = $1, updated_at = now()
WHERE id = $2`
	res, err := repo.db.ExecContext(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("UpdateStatus: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("UpdateStatus: no rows affected")
	}
	return nil
}
