package db

import (
	"database/sql"
	_ "embed"
)

//go:embed seeds/seed.sql
var seedSQL string

// MigrateUp creates the schema and loads seed data. Every statement is
// idempotent so the migration can run on every boot.
//
// Uniqueness of slugs, tag names and user emails is enforced with partial
// unique indexes scoped to live rows: a soft-deleted row releases its slug
// for reuse, and re-creating it later must not collide with the tombstone.
func MigrateUp(db *sql.DB) error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS users (
    id         BIGSERIAL PRIMARY KEY,
    name       TEXT NOT NULL,
    email      TEXT NOT NULL,
    role       VARCHAR(20) NOT NULL DEFAULT 'AUTHOR',
    gender     VARCHAR(10) NOT NULL DEFAULT '',
    bio        TEXT NOT NULL DEFAULT '',
    avatar_url TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    deleted_at TIMESTAMPTZ
)`,
		`CREATE TABLE IF NOT EXISTS categories (
    id          BIGSERIAL PRIMARY KEY,
    name        TEXT NOT NULL,
    slug        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    deleted_at  TIMESTAMPTZ
)`,
		`CREATE TABLE IF NOT EXISTS tags (
    id         BIGSERIAL PRIMARY KEY,
    name       TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    deleted_at TIMESTAMPTZ
)`,
		`CREATE TABLE IF NOT EXISTS articles (
    id               BIGSERIAL PRIMARY KEY,
    title            TEXT NOT NULL,
    slug             TEXT NOT NULL,
    summary          TEXT NOT NULL DEFAULT '',
    content          TEXT NOT NULL DEFAULT '',
    markdown_content TEXT NOT NULL DEFAULT '',
    thumbnail_url    TEXT NOT NULL DEFAULT '',
    status           VARCHAR(20) NOT NULL DEFAULT 'DRAFT',
    author_id        BIGINT NOT NULL REFERENCES users(id),
    category_id      BIGINT NOT NULL REFERENCES categories(id),
    publish_at       TIMESTAMPTZ,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
    deleted_at       TIMESTAMPTZ
)`,
		`CREATE TABLE IF NOT EXISTS article_tags (
    article_id BIGINT NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
    tag_id     BIGINT NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
    PRIMARY KEY (article_id, tag_id)
)`,
		`CREATE TABLE IF NOT EXISTS comments (
    id          BIGSERIAL PRIMARY KEY,
    article_id  BIGINT NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
    author_name TEXT NOT NULL,
    email       TEXT NOT NULL,
    content     TEXT NOT NULL,
    status      VARCHAR(20) NOT NULL DEFAULT 'PENDING',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    deleted_at  TIMESTAMPTZ
)`,
		`CREATE TABLE IF NOT EXISTS contact_messages (
    id         BIGSERIAL PRIMARY KEY,
    name       TEXT NOT NULL,
    email      TEXT NOT NULL,
    subject    TEXT NOT NULL,
    message    TEXT NOT NULL,
    status     VARCHAR(20) NOT NULL DEFAULT 'NEW',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	}
	for _, ddl := range tables {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}

	indexes := []string{
		// Live-row uniqueness. These back the duplicate-key checks in the
		// repositories; a concurrent create that slips past the usecase
		// pre-check still fails here with 23505.
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_users_email_live
    ON users(email) WHERE deleted_at IS NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_categories_slug_live
    ON categories(slug) WHERE deleted_at IS NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_tags_name_live
    ON tags(name) WHERE deleted_at IS NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_articles_slug_live
    ON articles(slug) WHERE deleted_at IS NULL`,
		// Listing and lookup paths.
		`CREATE INDEX IF NOT EXISTS idx_articles_status ON articles(status) WHERE deleted_at IS NULL`,
		`CREATE INDEX IF NOT EXISTS idx_articles_category_id ON articles(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_author_id ON articles(author_id)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_publish_at ON articles(publish_at) WHERE publish_at IS NOT NULL`,
		`CREATE INDEX IF NOT EXISTS idx_article_tags_tag_id ON article_tags(tag_id)`,
		`CREATE INDEX IF NOT EXISTS idx_comments_article_id ON comments(article_id)`,
		`CREATE INDEX IF NOT EXISTS idx_comments_status ON comments(status)`,
		`CREATE INDEX IF NOT EXISTS idx_contact_messages_status ON contact_messages(status)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	// pg_trgm speeds up the ILIKE search paths. Ignore failure: the
	// extension needs superuser and the queries work without it.
	_, _ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`)
	searchIndexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_articles_title_gin ON articles USING gin(title gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_summary_gin ON articles USING gin(summary gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_categories_name_gin ON categories USING gin(name gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_tags_name_gin ON tags USING gin(name gin_trgm_ops)`,
	}
	for _, idx := range searchIndexes {
		_, _ = db.Exec(idx)
	}

	if _, err := db.Exec(seedSQL); err != nil {
		return err
	}
	return nil
}

// MigrateDown drops the schema in dependency order.
// Use with caution: this deletes all editorial data.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP TABLE IF EXISTS contact_messages`,
		`DROP TABLE IF EXISTS comments`,
		`DROP TABLE IF EXISTS article_tags`,
		`DROP TABLE IF EXISTS articles`,
		`DROP TABLE IF EXISTS tags`,
		`DROP TABLE IF EXISTS categories`,
		`DROP TABLE IF EXISTS users`,
	}
	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
