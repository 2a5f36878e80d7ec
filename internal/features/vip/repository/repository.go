package repository

import "context"

// VIPRepository stores each user's ordered VIP item names.
type VIPRepository interface {
	Get(ctx context.Context, userID string) ([]string, error)
	Set(ctx context.Context, userID string, items []string) error
	Delete(ctx context.Context, userID string) error
	All(ctx context.Context) (map[string][]string, error)
}
