package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"feedreader/internal/models"
)

// Read filter values accepted by ArticleFilter. Anything else means "all".
const (
	ReadFilterUnread = "unread"
	ReadFilterRead   = "read"
)

// ArticleFilter selects which articles a list or count query matches.
// Keyword filtering is a logical AND: an article must carry every keyword.
type ArticleFilter struct {
	Keywords   []string
	ReadFilter string // "all", "unread" or "read"
	SortAsc    bool   // publication date ascending; default is descending
}

// articleColumns is the standard column list for article queries.
const articleColumns = `link, title, description, published, read, keywords, created_at, updated_at`

// scanArticles scans multiple rows into a slice of Articles.
func scanArticles(rows pgx.Rows) ([]models.Article, error) {
	defer rows.Close()

	var articles []models.Article
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(
			&a.Link,
			&a.Title,
			&a.Description,
			&a.Published,
			&a.Read,
			&a.Keywords,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}

	return articles, rows.Err()
}

// filterClause builds the WHERE clause and arguments for a filter. The
// returned clause is empty when the filter matches everything.
func filterClause(filter ArticleFilter) (string, []any) {
	var conditions []string
	var args []any

	if len(filter.Keywords) > 0 {
		args = append(args, filter.Keywords)
		conditions = append(conditions, fmt.Sprintf("keywords @> $%d", len(args)))
	}

	switch filter.ReadFilter {
	case ReadFilterUnread:
		conditions = append(conditions, "NOT read")
	case ReadFilterRead:
		conditions = append(conditions, "read")
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// ListArticles returns one page of articles matching the filter, ordered by
// publication date. The link is the order tiebreak so pages are stable when
// many articles share a publication date.
func (d *DB) ListArticles(ctx context.Context, filter ArticleFilter, limit, offset int) ([]models.Article, error) {
	where, args := filterClause(filter)

	direction := "DESC"
	if filter.SortAsc {
		direction = "ASC"
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(
		"SELECT %s FROM articles%s ORDER BY published %s, link ASC LIMIT $%d OFFSET $%d",
		articleColumns, where, direction, len(args)-1, len(args),
	)

	rows, err := d.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanArticles(rows)
}

// CountArticles returns the number of articles matching the filter.
func (d *DB) CountArticles(ctx context.Context, filter ArticleFilter) (int, error) {
	where, args := filterClause(filter)

	var count int
	err := d.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM articles"+where, args...).Scan(&count)
	return count, err
}

// GetArticle returns a single article by its link.
func (d *DB) GetArticle(ctx context.Context, link string) (*models.Article, error) {
	var a models.Article
	err := d.Pool.QueryRow(ctx,
		"SELECT "+articleColumns+" FROM articles WHERE link = $1", link,
	).Scan(&a.Link, &a.Title, &a.Description, &a.Published, &a.Read, &a.Keywords, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrArticleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ToggleArticleRead flips the article's read flag and returns the new value.
func (d *DB) ToggleArticleRead(ctx context.Context, link string) (bool, error) {
	var read bool
	err := d.Pool.QueryRow(ctx, `
		UPDATE articles
		SET read = NOT read, updated_at = NOW()
		WHERE link = $1
		RETURNING read
	`, link).Scan(&read)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, ErrArticleNotFound
	}
	if err != nil {
		return false, err
	}
	return read, nil
}

// UpdateArticleKeywords replaces an article's keyword set. Used by the
// keyword hygiene job.
func (d *DB) UpdateArticleKeywords(ctx context.Context, link string, keywords []string) error {
	tag, err := d.Pool.Exec(ctx, `
		UPDATE articles SET keywords = $2, updated_at = NOW() WHERE link = $1
	`, link, keywords)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrArticleNotFound
	}
	return nil
}

// ListArticlesForCleanup returns the oldest-updated articles with their
// keyword sets, for the hygiene job to normalize.
func (d *DB) ListArticlesForCleanup(ctx context.Context, limit int) ([]models.Article, error) {
	rows, err := d.Pool.Query(ctx,
		"SELECT "+articleColumns+" FROM articles ORDER BY updated_at ASC LIMIT $1", limit,
	)
	if err != nil {
		return nil, err
	}
	return scanArticles(rows)
}
