package client

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// AccountClient asks the account service whether an account exists.
type AccountClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewAccountClient(baseURL string) *AccountClient {
	return &AccountClient{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 5 * time.Second},
	}
}

// Exists returns true only on an HTTP 200 from the registry. Any transport
// failure, timeout or other status is reported as "not found": the caller
// must fail closed when the registry cannot vouch for the account.
func (c *AccountClient) Exists(ctx context.Context, accountID string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/v1/accounts/"+accountID, nil)
	if err != nil {
		return false
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		slog.Warn("Account service unreachable, treating account as unknown", "account_id", accountID, "error", err)
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
