package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks github.com/limbo/glowlog/internal/repository DocumentStorageI

// DocumentStorageI is a key/value slot for serialized documents
type DocumentStorageI interface {
	// Returns bytes stored under key. errorvalues.ErrDocumentNotFound if the slot is empty
	Load(ctx context.Context, key string) ([]byte, error)
	// Overwrites the slot unconditionally
	Save(ctx context.Context, key string, data []byte) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

type RedisCfg struct {
	Address  string
	Password string
	DB       int
}
