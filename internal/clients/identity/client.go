package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"referral-server/internal/observability"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found in identity service")

// UserDetails is the subset of the identity service's user record this
// service cares about. LedgerRef carries the Stripe customer or connected
// account reference for reward payouts.
type UserDetails struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	LedgerRef string    `json:"ledger_ref"`
}

// Client fetches user records from the platform identity service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *observability.Logger
}

func NewClient(baseURL string, logger *observability.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// GetUserDetails looks up a user by ID. Callers that only need display
// data should degrade gracefully when this fails; the identity service
// being down must never block referral processing.
func (c *Client) GetUserDetails(ctx context.Context, userID uuid.UUID) (UserDetails, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "identity_user_id", Value: userID.String()},
	)

	url := fmt.Sprintf("%s/internal/users/%s", c.baseURL, userID.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error(ctx, "failed to create identity request", err)
		return UserDetails{}, fmt.Errorf("failed to create identity request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "failed to call identity service", err)
		return UserDetails{}, fmt.Errorf("failed to call identity service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return UserDetails{}, ErrUserNotFound
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error(ctx, "identity service returned unexpected status",
			fmt.Errorf("status %d", resp.StatusCode))
		return UserDetails{}, fmt.Errorf("identity service returned status %d", resp.StatusCode)
	}

	var details UserDetails
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		c.logger.Error(ctx, "failed to decode identity response", err)
		return UserDetails{}, fmt.Errorf("failed to decode identity response: %w", err)
	}

	return details, nil
}
