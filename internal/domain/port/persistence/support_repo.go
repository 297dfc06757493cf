package persistence

import "context"

// SupportRepository persists support hearts, one per user
type SupportRepository interface {
	// Count returns the total number of hearts
	Count(ctx context.Context) (int64, error)

	// HasHearted reports whether the user has an active heart
	HasHearted(ctx context.Context, userID string) (bool, error)

	// Add records a heart for the user
	Add(ctx context.Context, id, userID string) error

	// Remove deletes the user's heart
	Remove(ctx context.Context, userID string) error
}
