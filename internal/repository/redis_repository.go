package repository

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/limbo/glowlog/internal/error_values"
	"github.com/limbo/glowlog/pkg/cleanup"
	"github.com/redis/go-redis/v9"
)

type RedisDocumentsRepository struct {
	client *redis.Client
}

func NewRedisDocumentsRepo(cfg *RedisCfg) *RedisDocumentsRepository {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("error while pinging redis for documentsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	return &RedisDocumentsRepository{client: client}
}

func NewRedisDocumentsRepoWithClient(client *redis.Client) *RedisDocumentsRepository {
	return &RedisDocumentsRepository{client: client}
}

func (rr *RedisDocumentsRepository) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := rr.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errorvalues.ErrDocumentNotFound
		}
		return nil, errors.New("loading document from redis error: " + err.Error())
	}
	return data, nil
}

func (rr *RedisDocumentsRepository) Save(ctx context.Context, key string, data []byte) error {
	if err := rr.client.Set(ctx, key, data, 0).Err(); err != nil {
		return errors.New("saving document to redis error: " + err.Error())
	}
	return nil
}
