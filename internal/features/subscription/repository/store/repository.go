package store

import (
	"context"
	"sort"
	"sync"

	"gag-stock-bot/internal/features/subscription/repository"
	"gag-stock-bot/internal/platform/storage"
)

type subscriberRepository struct {
	mu    sync.Mutex
	store storage.Store
}

func NewSubscriberRepository(store storage.Store) repository.SubscriberRepository {
	return &subscriberRepository{store: store}
}

// load decodes the {"<id>": true} document.
func (r *subscriberRepository) load(ctx context.Context) (map[string]bool, error) {
	subs := map[string]bool{}
	if err := r.store.Load(ctx, storage.CollectionSubscribers, &subs); err != nil {
		return nil, err
	}
	if subs == nil {
		subs = map[string]bool{}
	}
	return subs, nil
}

func (r *subscriberRepository) Add(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs, err := r.load(ctx)
	if err != nil {
		return err
	}
	subs[userID] = true
	return r.store.Save(ctx, storage.CollectionSubscribers, subs)
}

func (r *subscriberRepository) Remove(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs, err := r.load(ctx)
	if err != nil {
		return err
	}
	delete(subs, userID)
	return r.store.Save(ctx, storage.CollectionSubscribers, subs)
}

func (r *subscriberRepository) Has(ctx context.Context, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	_, ok := subs[userID]
	return ok, nil
}

func (r *subscriberRepository) List(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(subs))
	for id := range subs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
