package service

import (
	"context"

	"gag-stock-bot/internal/features/vip/models"
)

type VIPService interface {
	Catalog() *models.Catalog
	// Select replaces the user's selection with the catalog items at the given
	// 1-based positions. Out-of-range positions are dropped.
	Select(ctx context.Context, userID string, positions []int) ([]string, error)
	Selection(ctx context.Context, userID string) ([]string, error)
	// Remove drops the items at the given 1-based positions of the user's
	// current selection and returns what is left.
	Remove(ctx context.Context, userID string, positions []int) ([]string, error)
	Reset(ctx context.Context, userID string) error
	All(ctx context.Context) (map[string][]string, error)
}
