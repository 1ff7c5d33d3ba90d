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
)

var userColumns = []string{
	"id", "name", "email", "role", "gender", "bio", "avatar_url",
	"created_at", "updated_at",
}

func userRow(u *entity.User) *sqlmock.Rows {
	return sqlmock.NewRows(userColumns).AddRow(
		u.ID, u.Name, u.Email, u.Role, u.Gender, u.Bio, u.AvatarURL,
		u.CreatedAt, u.UpdatedAt,
	)
}

func TestUserRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	want := &entity.User{
		ID: 1, Name: "Alice", Email: "alice@example.com",
		Role: entity.RoleEditor, Gender: entity.GenderFemale,
		Bio: "writes release notes", CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WithArgs(int64(1)).
		WillReturnRows(userRow(want))

	repo := pg.NewUserRepo(db)
	got, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestUserRepo_List_Search(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery("FROM users").
		WithArgs("%alice%", 20, 0).
		WillReturnRows(userRow(&entity.User{
			ID: 1, Name: "Alice", Email: "alice@example.com",
			Role: entity.RoleAuthor, CreatedAt: now, UpdatedAt: now,
		}))

	repo := pg.NewUserRepo(db)
	got, err := repo.List(context.Background(), "alice", 0, 20)
	if err != nil || len(got) != 1 {
		t.Fatalf("List err=%v len=%d", err, len(got))
	}
}

func TestUserRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("Alice", "alice@example.com", entity.RoleAuthor, entity.Gender(""),
			"", "", now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	repo := pg.NewUserRepo(db)
	user := &entity.User{
		Name: "Alice", Email: "alice@example.com", Role: entity.RoleAuthor,
		CreatedAt: now, UpdatedAt: now,
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if user.ID != 3 {
		t.Fatalf("Create ID=%d, want 3", user.ID)
	}
}

func TestUserRepo_Update(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectExec("UPDATE users").
		WithArgs("Alice B", "alice@example.com", entity.RoleEditor, entity.GenderFemale,
			"bio", "https://cdn.example.com/a.png", now, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewUserRepo(db)
	err := repo.Update(context.Background(), &entity.User{
		ID: 1, Name: "Alice B", Email: "alice@example.com",
		Role: entity.RoleEditor, Gender: entity.GenderFemale,
		Bio: "bio", AvatarURL: "https://cdn.example.com/a.png", UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
}

func TestUserRepo_CountByEmail(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users")).
		WithArgs("alice@example.com", int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	repo := pg.NewUserRepo(db)
	count, err := repo.CountByEmail(context.Background(), "alice@example.com", 0)
	if err != nil || count != 1 {
		t.Fatalf("CountByEmail err=%v count=%d", err, count)
	}
}
