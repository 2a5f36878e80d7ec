package service

import (
	"context"

	"gag-stock-bot/internal/features/user/models"
)

type UserService interface {
	// EnsureRegistered creates the record on first contact, greets the user and
	// tells the admin. It reports whether the user is new.
	EnsureRegistered(ctx context.Context, id string) (*models.User, bool, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	// Role defaults to Member for unknown users.
	Role(ctx context.Context, id string) models.Role
	List(ctx context.Context) ([]*models.User, error)
	Admins(ctx context.Context) ([]*models.User, error)
}
