package store

import (
	"context"
	"sync"

	"gag-stock-bot/internal/features/vip/repository"
	"gag-stock-bot/internal/platform/storage"
)

type vipRepository struct {
	mu    sync.Mutex
	store storage.Store
}

func NewVIPRepository(store storage.Store) repository.VIPRepository {
	return &vipRepository{store: store}
}

func (r *vipRepository) load(ctx context.Context) (map[string][]string, error) {
	selections := map[string][]string{}
	if err := r.store.Load(ctx, storage.CollectionVIP, &selections); err != nil {
		return nil, err
	}
	if selections == nil {
		selections = map[string][]string{}
	}
	return selections, nil
}

func (r *vipRepository) Get(ctx context.Context, userID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	selections, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return selections[userID], nil
}

func (r *vipRepository) Set(ctx context.Context, userID string, items []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	selections, err := r.load(ctx)
	if err != nil {
		return err
	}
	if items == nil {
		items = []string{}
	}
	selections[userID] = items
	return r.store.Save(ctx, storage.CollectionVIP, selections)
}

func (r *vipRepository) Delete(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	selections, err := r.load(ctx)
	if err != nil {
		return err
	}
	delete(selections, userID)
	return r.store.Save(ctx, storage.CollectionVIP, selections)
}

func (r *vipRepository) All(ctx context.Context) (map[string][]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}
