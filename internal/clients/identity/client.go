package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/naviproai/navi-backend/internal/pkg/logger"
)

// ExternalUser is the identity record the auth service returns for a token.
type ExternalUser struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Client resolves bearer tokens against the external identity service.
type Client interface {
	ResolveToken(ctx context.Context, token string) (*ExternalUser, error)
}

type client struct {
	log        *logger.Logger
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an identity client for AUTH_SERVICE_URL. Returns an error
// when the URL is not configured so the caller can fall back to local token
// verification.
func NewClient(log *logger.Logger) (Client, error) {
	baseURL := strings.TrimSpace(os.Getenv("AUTH_SERVICE_URL"))
	if baseURL == "" {
		return nil, fmt.Errorf("missing AUTH_SERVICE_URL")
	}
	return &client{
		log:        log.With("service", "IdentityClient"),
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (c *client) ResolveToken(ctx context.Context, token string) (*ExternalUser, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/user/me", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity lookup: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("identity lookup http %d", resp.StatusCode)
	}

	var user ExternalUser
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("decode identity response: %w", err)
	}
	if user.ID == "" {
		return nil, fmt.Errorf("identity response missing user id")
	}
	return &user, nil
}
