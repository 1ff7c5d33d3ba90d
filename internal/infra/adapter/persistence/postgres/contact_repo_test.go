package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"pressroom/internal/domain/entity"
	pg "pressroom/internal/infra/adapter/persistence/postgres"
)

var contactColumns = []string{
	"id", "name", "email", "subject", "message", "status", "created_at", "updated_at",
}

func TestContactRepo_List_StatusFilter(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	status := entity.ContactNew
	mock.ExpectQuery("FROM contact_messages").
		WithArgs("NEW", 20, 0).
		WillReturnRows(sqlmock.NewRows(contactColumns).AddRow(
			int64(1), "Bob", "bob@example.com", "Hello",
			"I have a question", "NEW", now, now,
		))

	repo := pg.NewContactRepo(db)
	got, err := repo.List(context.Background(), &status, 0, 20)
	if err != nil || len(got) != 1 {
		t.Fatalf("List err=%v len=%d", err, len(got))
	}
	if got[0].Status != entity.ContactNew {
		t.Fatalf("status=%s, want NEW", got[0].Status)
	}
}

func TestContactRepo_Count(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM contact_messages")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(12)))

	repo := pg.NewContactRepo(db)
	count, err := repo.Count(context.Background(), nil)
	if err != nil || count != 12 {
		t.Fatalf("Count err=%v count=%d", err, count)
	}
}

func TestContactRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO contact_messages")).
		WithArgs("Bob", "bob@example.com", "Hello", "I have a question",
			entity.ContactNew, now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(6)))

	repo := pg.NewContactRepo(db)
	msg := &entity.ContactMessage{
		Name: "Bob", Email: "bob@example.com", Subject: "Hello",
		Message: "I have a question", Status: entity.ContactNew,
		CreatedAt: now, UpdatedAt: now,
	}
	if err := repo.Create(context.Background(), msg); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if msg.ID != 6 {
		t.Fatalf("Create ID=%d, want 6", msg.ID)
	}
}

func TestContactRepo_UpdateStatus(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("UPDATE contact_messages").
		WithArgs("READ", int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewContactRepo(db)
	if err := repo.UpdateStatus(context.Background(), 6, entity.ContactRead); err != nil {
		t.Fatalf("UpdateStatus err=%v", err)
	}
}
