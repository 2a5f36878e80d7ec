package repository

import (
	"context"
	"errors"

	"gag-stock-bot/internal/features/user/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	// CreateIfAbsent stores user unless a record with the same id exists.
	// It reports whether the record was created.
	CreateIfAbsent(ctx context.Context, user *models.User) (bool, error)
	List(ctx context.Context) ([]*models.User, error)
}
