package core

import "context"

// GoogleProfile is the subset of the Google userinfo payload the service uses
type GoogleProfile struct {
	Email     string
	Name      string
	Picture   string
	AccountID string
}

// GoogleVerifier resolves a Google access credential to the profile it
// belongs to. A credential Google rejects yields ErrTokenInvalid.
type GoogleVerifier interface {
	FetchProfile(ctx context.Context, credential string) (*GoogleProfile, error)
}
