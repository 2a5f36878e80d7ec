package store

import (
	"context"
	"sort"
	"sync"

	"gag-stock-bot/internal/features/user/models"
	"gag-stock-bot/internal/features/user/repository"
	"gag-stock-bot/internal/platform/storage"
)

type userRepository struct {
	mu    sync.Mutex
	store storage.Store
}

func NewUserRepository(store storage.Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) load(ctx context.Context) (map[string]*models.User, error) {
	users := map[string]*models.User{}
	if err := r.store.Load(ctx, storage.CollectionUsers, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = map[string]*models.User{}
	}
	for id, u := range users {
		u.ID = id
	}
	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	user, ok := users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (r *userRepository) CreateIfAbsent(ctx context.Context, user *models.User) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	if _, exists := users[user.ID]; exists {
		return false, nil
	}
	users[user.ID] = user
	if err := r.store.Save(ctx, storage.CollectionUsers, users); err != nil {
		return false, err
	}
	return true, nil
}

func (r *userRepository) List(ctx context.Context) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*models.User, 0, len(users))
	for _, u := range users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
