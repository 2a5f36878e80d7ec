package repository

import "context"

// SubscriberRepository is the set of users receiving every stock digest.
type SubscriberRepository interface {
	Add(ctx context.Context, userID string) error
	Remove(ctx context.Context, userID string) error
	Has(ctx context.Context, userID string) (bool, error)
	// List returns subscriber ids in ascending order.
	List(ctx context.Context) ([]string, error)
}
