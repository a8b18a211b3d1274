package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	errorvalues "github.com/limbo/glowlog/internal/error_values"
	"github.com/limbo/glowlog/pkg/cleanup"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS documents (
	key        TEXT PRIMARY KEY,
	body       TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// SQLiteDocumentsRepository is the on-device storage backend
type SQLiteDocumentsRepository struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database file at path. ":memory:" works for tests.
func OpenSQLite(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// one writer; also keeps a :memory: database on a single connection
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		return nil, fmt.Errorf("creating documents table: %w", err)
	}
	return db, nil
}

func NewSQLiteDocumentsRepo(path string) (*SQLiteDocumentsRepository, error) {
	db, err := OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing sqlite database",
		F:    db.Close,
	})
	return &SQLiteDocumentsRepository{db: db}, nil
}

func NewSQLiteDocumentsRepoWithDB(db *sql.DB) *SQLiteDocumentsRepository {
	return &SQLiteDocumentsRepository{db: db}
}

func (sr *SQLiteDocumentsRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var body string
	err := sr.db.QueryRowContext(ctx, `SELECT body FROM documents WHERE key = ?`, key).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errorvalues.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("loading document %s: %w", key, err)
	}
	return []byte(body), nil
}

func (sr *SQLiteDocumentsRepository) Save(ctx context.Context, key string, data []byte) error {
	_, err := sr.db.ExecContext(ctx,
		`INSERT INTO documents (key, body) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET body = excluded.body, updated_at = CURRENT_TIMESTAMP`,
		key, string(data),
	)
	if err != nil {
		return fmt.Errorf("saving document %s: %w", key, err)
	}
	return nil
}
