// Package storage persists named JSON collections behind interchangeable drivers.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"gag-stock-bot/internal/common/config"
	apperrors "gag-stock-bot/internal/common/errors"
	"gag-stock-bot/internal/common/logger"
	redisp "gag-stock-bot/internal/platform/redis"
)

// Collection names shared by every driver.
const (
	CollectionUsers       = "database"
	CollectionVIP         = "vip"
	CollectionSubscribers = "stock_notify"
	CollectionConsole     = "console"
)

// emptyDocument is persisted the first time a missing collection is read.
var emptyDocument = []byte("{}")

// Store reads and writes whole collections as JSON documents.
//
// Load on a collection that does not exist yet persists an empty document and
// leaves out untouched, so callers see the zero value of their type.
type Store interface {
	Load(ctx context.Context, collection string, out any) error
	Save(ctx context.Context, collection string, v any) error
	Ping(ctx context.Context) error
	Close() error
}

// backend is the byte-level contract each driver implements.
type backend interface {
	get(ctx context.Context, key string) ([]byte, bool, error)
	put(ctx context.Context, key string, data []byte) error
	ping(ctx context.Context) error
	close() error
}

type documentStore struct {
	driver string
	b      backend
}

func newDocumentStore(driver string, b backend) *documentStore {
	return &documentStore{driver: driver, b: b}
}

func (s *documentStore) Load(ctx context.Context, collection string, out any) error {
	data, ok, err := s.b.get(ctx, collection)
	if err != nil {
		return apperrors.NewStorageError("load "+collection, err).WithDetail("driver", s.driver)
	}
	if !ok {
		logger.Debug().Str("driver", s.driver).Str("collection", collection).Msg("Initializing missing collection")
		if err := s.b.put(ctx, collection, emptyDocument); err != nil {
			return apperrors.NewStorageError("init "+collection, err).WithDetail("driver", s.driver)
		}
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apperrors.NewStorageError("decode "+collection, err).WithDetail("driver", s.driver)
	}
	return nil
}

func (s *documentStore) Save(ctx context.Context, collection string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return apperrors.NewStorageError("encode "+collection, err).WithDetail("driver", s.driver)
	}
	if err := s.b.put(ctx, collection, data); err != nil {
		return apperrors.NewStorageError("save "+collection, err).WithDetail("driver", s.driver)
	}
	return nil
}

func (s *documentStore) Ping(ctx context.Context) error {
	return s.b.ping(ctx)
}

func (s *documentStore) Close() error {
	return s.b.close()
}

// Open builds the Store selected by cfg.Store.Driver.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Store.Driver {
	case "", "file":
		return NewFileStore(cfg.Store.DataDir)
	case "memory":
		return NewMemoryStore(), nil
	case "redis":
		client, err := redisp.Open(ctx, cfg.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, fmt.Errorf("redis open: %w", err)
		}
		return NewRedisStore(client), nil
	case "bolt":
		return NewBoltStore(cfg.Store.DataDir)
	case "mongo":
		return NewMongoStore(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
