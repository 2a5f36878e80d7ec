package store

import (
	"context"

	"gag-stock-bot/internal/features/settings/repository"
	"gag-stock-bot/internal/platform/storage"
)

type consoleDocument struct {
	Enabled bool `json:"enabled"`
}

type settingsRepository struct {
	store storage.Store
}

func NewSettingsRepository(store storage.Store) repository.SettingsRepository {
	return &settingsRepository{store: store}
}

func (r *settingsRepository) ConsoleEnabled(ctx context.Context) (bool, error) {
	var doc consoleDocument
	if err := r.store.Load(ctx, storage.CollectionConsole, &doc); err != nil {
		return false, err
	}
	return doc.Enabled, nil
}

func (r *settingsRepository) SetConsole(ctx context.Context, enabled bool) error {
	return r.store.Save(ctx, storage.CollectionConsole, consoleDocument{Enabled: enabled})
}
