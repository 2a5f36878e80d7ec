package service

import (
	"context"

	usermodels "gag-stock-bot/internal/features/user/models"
)

// UserDirectory resolves names and admins for dispatch.
type UserDirectory interface {
	GetUser(ctx context.Context, id string) (*usermodels.User, error)
	Admins(ctx context.Context) ([]*usermodels.User, error)
}

// VIPSource lists every user's VIP selection.
type VIPSource interface {
	All(ctx context.Context) (map[string][]string, error)
}

// SubscriberSource lists users opted into the full digest.
type SubscriberSource interface {
	List(ctx context.Context) ([]string, error)
}

// ConsoleFlag reports whether admin logging is on.
type ConsoleFlag interface {
	ConsoleEnabled(ctx context.Context) (bool, error)
}
