package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	errs "github.com/salapeso/savings-api/internal/domain/error"
	coreport "github.com/salapeso/savings-api/internal/domain/port/core"
)

const userinfoEndpoint = "https://www.googleapis.com/oauth2/v3/userinfo"

// Verifier implements core.GoogleVerifier by asking Google's userinfo
// endpoint who the access token belongs to. Google rejecting the token is
// the validity check; no local signature verification is needed.
type Verifier struct {
	client *http.Client
	logger coreport.Logger
}

// NewVerifier creates a new Verifier
func NewVerifier(logger coreport.Logger) *Verifier {
	return &Verifier{
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

type userinfoResponse struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// FetchProfile resolves a Google access credential to the profile it belongs to
func (v *Verifier) FetchProfile(ctx context.Context, credential string) (*coreport.GoogleProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userinfoEndpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}
	req.Header.Set("Authorization", "Bearer "+credential)

	resp, err := v.client.Do(req)
	if err != nil {
		v.logger.Error("Failed to reach Google userinfo endpoint", map[string]any{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.logger.Warn("Google rejected credential", map[string]any{
			"status": resp.StatusCode,
		})
		return nil, errs.ErrTokenInvalid
	}

	var info userinfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	if info.Email == "" {
		return nil, errs.ErrTokenInvalid
	}

	return &coreport.GoogleProfile{
		Email:     info.Email,
		Name:      info.Name,
		Picture:   info.Picture,
		AccountID: info.Sub,
	}, nil
}
