package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/glowlog/internal/error_values"
	"github.com/limbo/glowlog/pkg/cleanup"
)

// DocumentsRepository keeps documents in the PostgreSQL table created by migrations/
type DocumentsRepository struct {
	conn PgConnection
}

func NewDocumentsRepo(cfg DBConfig) *DocumentsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for documentsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for documentsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &DocumentsRepository{
		conn: pool,
	}
}

func NewDocumentsRepoWithConn(conn PgConnection) *DocumentsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for documentsRepo: " + err.Error())
	}
	return &DocumentsRepository{
		conn: conn,
	}
}

func (dr *DocumentsRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	row := dr.conn.QueryRow(ctx, `SELECT body FROM documents WHERE key = $1;`, key)
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrDocumentNotFound
		}
		return nil, errors.New("loading document error: " + err.Error())
	}
	return data, nil
}

func (dr *DocumentsRepository) Save(ctx context.Context, key string, data []byte) error {
	_, err := dr.conn.Exec(ctx, `INSERT INTO documents (key, body) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET body = EXCLUDED.body, updated_at = NOW();`, key, data)
	if err != nil {
		return errors.New("saving document error: " + err.Error())
	}
	return nil
}
