package demoserver

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/raysh454/posty/internal/logging"
	"github.com/raysh454/posty/internal/model"

	_ "modernc.org/sqlite" // SQLite driver
)

//go:embed schema.sql
var schemaFS embed.FS

// SQLiteStore is a PostStore backed by a SQLite database, for demo runs that
// should survive a restart.
type SQLiteStore struct {
	db     *sql.DB
	logger logging.Logger
}

// NewSQLiteStore opens (or creates) the database at path, runs the schema and
// installs the seed posts if the table is empty.
func NewSQLiteStore(path string, logger logging.Logger) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	if logger == nil {
		logger = logging.NopLogger{}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening posts database: %w", err)
	}

	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to read schema.sql: %w", err)
	}
	if _, err := db.Exec(string(schemaSQL)); err != nil {
		return nil, fmt.Errorf("failed to execute schema: %w", err)
	}

	s := &SQLiteStore{db: db, logger: logger.With(logging.Field{Key: "component", Value: "sqlitestore"})}

	n, err := s.Count(context.Background())
	if err != nil {
		return nil, err
	}
	if n == 0 {
		if err := s.seed(context.Background()); err != nil {
			return nil, err
		}
	}

	s.logger.Info("opened sqlite post store", logging.Field{Key: "path", Value: path})
	return s, nil
}

func (s *SQLiteStore) seed(ctx context.Context) error {
	for _, p := range SeedPosts() {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO posts (id, user_id, title, body) VALUES (?, ?, ?, ?)`,
			p.ID, p.UserID, p.Title, p.Body)
		if err != nil {
			return fmt.Errorf("seeding post %d: %w", p.ID, err)
		}
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]model.Post, error) {
	return s.query(ctx, `SELECT id, user_id, title, body FROM posts ORDER BY id`)
}

func (s *SQLiteStore) ListByOwner(ctx context.Context, userID int) ([]model.Post, error) {
	return s.query(ctx, `SELECT id, user_id, title, body FROM posts WHERE user_id = ? ORDER BY id`, userID)
}

func (s *SQLiteStore) query(ctx context.Context, q string, args ...any) ([]model.Post, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying posts: %w", err)
	}
	defer rows.Close()

	var out []model.Post
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Body); err != nil {
			return nil, fmt.Errorf("scanning post: %w", err)
		}
		out = append(out, p)
	}
	if out == nil {
		out = []model.Post{}
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Get(ctx context.Context, id int) (model.Post, error) {
	var p model.Post
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, title, body FROM posts WHERE id = ?`, id).
		Scan(&p.ID, &p.UserID, &p.Title, &p.Body)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Post{}, ErrPostNotFound
	}
	if err != nil {
		return model.Post{}, fmt.Errorf("selecting post %d: %w", id, err)
	}
	return p, nil
}

func (s *SQLiteStore) Create(ctx context.Context, post model.Post) (model.Post, error) {
	// Next sequential id; the submitted id is ignored, as jsonplaceholder does.
	var next int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(id), 0) + 1 FROM posts`).Scan(&next); err != nil {
		return model.Post{}, fmt.Errorf("allocating post id: %w", err)
	}
	post.ID = next

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO posts (id, user_id, title, body) VALUES (?, ?, ?, ?)`,
		post.ID, post.UserID, post.Title, post.Body)
	if err != nil {
		return model.Post{}, fmt.Errorf("inserting post: %w", err)
	}
	return post, nil
}

func (s *SQLiteStore) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM posts`); err != nil {
		return fmt.Errorf("clearing posts: %w", err)
	}
	return s.seed(ctx)
}

func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting posts: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
