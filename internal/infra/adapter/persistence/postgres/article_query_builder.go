package postgres

import (
	"fmt"
	"strings"

	"pressroom/internal/domain/entity"
	"pressroom/internal/pkg/search"
	"pressroom/internal/repository"
)

// ArticleQueryBuilder builds WHERE clauses for article listing in PostgreSQL.
// The builder is shared between COUNT and SELECT queries to eliminate
// duplication. It uses PostgreSQL-specific features like ILIKE and numbered
// placeholders ($1, $2, etc.).
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// BuildWhereClause builds the WHERE clause and arguments for article listing.
// Soft-deleted rows are always excluded. The search term is OR-matched
// against title, slug, summary and content; when its uppercased form equals
// a status enum value an exact status clause joins the OR group, so
// searching "published" finds published articles.
//
// Column references are always qualified: an empty tableAlias falls back to
// the table name. An unqualified id inside the tag EXISTS subquery would
// resolve to tags.id and leave the predicate uncorrelated with the outer row.
func (qb *ArticleQueryBuilder) BuildWhereClause(filters repository.ArticleListFilters, tableAlias string) (clause string, args []interface{}) {
	if tableAlias == "" {
		tableAlias = "articles"
	}
	col := func(name string) string {
		return tableAlias + "." + name
	}

	conditions := []string{col("deleted_at") + " IS NULL"}
	paramIndex := 1

	if filters.PublishedOnly {
		conditions = append(conditions, fmt.Sprintf("%s = $%d", col("status"), paramIndex))
		args = append(args, string(entity.StatusPublished))
		paramIndex++
	}

	if filters.Search != "" {
		escaped := search.EscapeILIKE(filters.Search)
		group := make([]string, 0, 5)
		for _, c := range []string{"title", "slug", "summary", "content"} {
			group = append(group, fmt.Sprintf("%s ILIKE $%d", col(c), paramIndex))
		}
		args = append(args, escaped)
		paramIndex++

		if status := entity.ArticleStatus(strings.ToUpper(filters.Search)); status.Valid() {
			group = append(group, fmt.Sprintf("%s = $%d", col("status"), paramIndex))
			args = append(args, string(status))
			paramIndex++
		}
		conditions = append(conditions, "("+strings.Join(group, " OR ")+")")
	}

	if filters.CategorySlug != "" {
		conditions = append(conditions, fmt.Sprintf(
			"%s IN (SELECT id FROM categories WHERE slug = $%d AND deleted_at IS NULL)",
			col("category_id"), paramIndex))
		args = append(args, filters.CategorySlug)
		paramIndex++
	}

	if filters.TagName != "" {
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM article_tags at JOIN tags t ON at.tag_id = t.id WHERE at.article_id = %s AND t.name = $%d AND t.deleted_at IS NULL)",
			col("id"), paramIndex))
		args = append(args, filters.TagName)
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}
