package db

import (
	"context"
	"fmt"

	"news-crawler/pkg/domain"

	"github.com/jmoiron/sqlx"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS articles (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT,
	category TEXT,
	create_date TEXT,
	body TEXT
)`

const postgresSchema = `CREATE TABLE IF NOT EXISTS articles (
	id BIGSERIAL PRIMARY KEY,
	title TEXT,
	category TEXT,
	create_date TEXT,
	body TEXT
)`

// Store persists articles in the articles table
type Store struct {
	db *sqlx.DB
}

// NewStore wraps an open database handle
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Close closes the underlying handle
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// EnsureSchema creates the articles table if it does not exist yet
func (s *Store) EnsureSchema(ctx context.Context) error {
	schema := sqliteSchema
	if s.db.DriverName() == DriverPostgres {
		schema = postgresSchema
	}

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create articles table: %w", err)
	}
	return nil
}

// SaveArticle inserts the article inside its own transaction and sets
// article.ID to the id assigned by the database.
func (s *Store) SaveArticle(ctx context.Context, article *domain.Article) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query := tx.Rebind(`INSERT INTO articles (title, category, create_date, body) VALUES (?, ?, ?, ?) RETURNING id`)

	var id int64
	if err = tx.QueryRowxContext(ctx, query,
		article.Title, article.Category, article.CreateDate, article.JoinedBody(),
	).Scan(&id); err != nil {
		return fmt.Errorf("insert article: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit article: %w", err)
	}

	article.ID = id
	return nil
}

// StoredArticle is an article as read back from the table, body already joined
type StoredArticle struct {
	ID         int64  `db:"id"`
	Title      string `db:"title"`
	Category   string `db:"category"`
	CreateDate string `db:"create_date"`
	Body       string `db:"body"`
}

// ListArticles returns every stored article ordered by id
func (s *Store) ListArticles(ctx context.Context) ([]StoredArticle, error) {
	articles := make([]StoredArticle, 0)
	if err := s.db.SelectContext(ctx, &articles,
		`SELECT id, title, category, create_date, body FROM articles ORDER BY id`); err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	return articles, nil
}

// CountArticles returns the number of stored articles
func (s *Store) CountArticles(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM articles`); err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return n, nil
}
