package command

import (
	"context"

	usermodels "gag-stock-bot/internal/features/user/models"
)

// Users resolves caller roles and the broadcast audience.
type Users interface {
	Role(ctx context.Context, id string) usermodels.Role
	List(ctx context.Context) ([]*usermodels.User, error)
}

// Subscriptions toggles the full-digest subscription.
type Subscriptions interface {
	Add(ctx context.Context, userID string) error
	Remove(ctx context.Context, userID string) error
}

// ConsoleSetter persists the console-logging flag.
type ConsoleSetter interface {
	SetConsole(ctx context.Context, enabled bool) error
}
