package db

import (
	"context"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"feedreader/migrations"
)

// DB wraps a pgxpool connection pool.
type DB struct {
	Pool *pgxpool.Pool
}

// New creates a new database connection pool.
func New(ctx context.Context, connString string) (*DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// RunMigrations runs all embedded SQL migrations.
func (d *DB) RunMigrations(connString string) error {
	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, connString)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// Ping verifies the database connection is alive.
func (d *DB) Ping(ctx context.Context) error {
	return d.Pool.Ping(ctx)
}

// Close closes the connection pool.
func (d *DB) Close() {
	d.Pool.Close()
}

// SeedDevArticles inserts test articles for development. Skips articles that
// already exist.
func (d *DB) SeedDevArticles(ctx context.Context) error {
	articles := []struct {
		link        string
		title       string
		description string
		published   string
		keywords    []string
	}{
		{"https://example.org/go-release", "Go release notes", "What changed in the latest Go release", "2026-08-20", []string{"go", "release"}},
		{"https://example.org/ai-survey", "State of AI survey", "Survey of production AI systems", "2026-08-19", []string{"ai", "survey"}},
		{"https://example.org/news-roundup", "Weekly news roundup", "The week in technology news", "2026-08-18", []string{"news", "tech"}},
		{"https://example.org/db-internals", "Postgres internals", "How the planner picks an index", "2026-08-15", []string{"postgres", "databases"}},
		{"https://example.org/security-advisory", "Security advisory", "Patch now: TLS library advisory", "2026-08-12", []string{"security", "tls"}},
	}

	query := `
		INSERT INTO articles (link, title, description, published, keywords)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (link) DO NOTHING
	`

	for _, a := range articles {
		if _, err := d.Pool.Exec(ctx, query, a.link, a.title, a.description, a.published, a.keywords); err != nil {
			return fmt.Errorf("failed to seed article %s: %w", a.link, err)
		}
	}

	return nil
}
