package usecase

import "context"

// SupportStatus is the heart counter plus the caller's own state
type SupportStatus struct {
	Count      int64
	HasHearted bool
}

// SupportUseCase defines the support-heart operations
type SupportUseCase interface {
	// Status returns the total count; userID may be empty for anonymous
	// callers, in which case HasHearted is always false
	Status(ctx context.Context, userID string) (*SupportStatus, error)

	// Toggle adds or removes the user's heart and returns the new status
	Toggle(ctx context.Context, userID string) (*SupportStatus, error)
}
