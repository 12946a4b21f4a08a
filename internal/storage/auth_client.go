package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"mealdash/internal/domain"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// AuthClient resolves bearer tokens against the external auth service.
type AuthClient struct {
	BaseURL string
	Client  HTTPClient
}

func NewAuthClient(baseURL string, client HTTPClient) *AuthClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &AuthClient{BaseURL: baseURL, Client: client}
}

func (c *AuthClient) Verify(ctx context.Context, token string) (*domain.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/auth/verify", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrInvalidToken
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auth service returned status %d", resp.StatusCode)
	}

	var identity domain.Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, fmt.Errorf("decode identity: %w", err)
	}
	return &identity, nil
}
