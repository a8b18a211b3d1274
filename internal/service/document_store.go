package service

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/limbo/glowlog/internal/error_values"
	"github.com/limbo/glowlog/internal/journal"
	"github.com/limbo/glowlog/internal/repository"
	"github.com/limbo/glowlog/pkg/entity"
)

const DefaultStorageKey = "daily_health_glow_v1"

// DocumentStore keeps the whole journal document in a single storage slot
type DocumentStore struct {
	storage repository.DocumentStorageI
	key     string
}

func NewDocumentStore(storage repository.DocumentStorageI, key string) *DocumentStore {
	if storage == nil {
		log.Fatal("provided nil document storage")
	}
	if key == "" {
		key = DefaultStorageKey
	}
	return &DocumentStore{
		storage: storage,
		key:     key,
	}
}

// Load returns a fresh document when the slot is empty
func (ds *DocumentStore) Load(ctx context.Context) (entity.Document, error) {
	data, err := ds.storage.Load(ctx, ds.key)
	if err != nil {
		if errors.Is(err, errorvalues.ErrDocumentNotFound) {
			return journal.NewDocument(), nil
		}
		return entity.Document{}, errors.New("document storage error: " + err.Error())
	}
	return journal.DecodeDocument(data)
}

func (ds *DocumentStore) Save(ctx context.Context, doc entity.Document) error {
	data, err := journal.EncodeDocument(doc)
	if err != nil {
		return err
	}
	return ds.storage.Save(ctx, ds.key, data)
}
