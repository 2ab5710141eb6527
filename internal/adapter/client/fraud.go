package client

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"retailbank/internal/core/domain"
)

// FraudClient submits transaction features to the fraud scoring service.
type FraudClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewFraudClient(baseURL string) *FraudClient {
	return &FraudClient{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 5 * time.Second},
	}
}

// Check returns the scoring service's verdict, or (nil, false) when no
// verdict could be obtained: transport failure, timeout, non-2xx status
// or an undecodable body. It never fabricates a verdict; the caller
// decides how to degrade.
func (c *FraudClient) Check(ctx context.Context, freq *domain.FraudCheckRequest) (*domain.FraudVerdict, bool) {
	body, err := json.Marshal(freq)
	if err != nil {
		return nil, false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/v1/check", bytes.NewBuffer(body))
	if err != nil {
		return nil, false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		slog.Warn("Fraud service unreachable", "transaction_id", freq.TransactionID, "error", err)
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Warn("Fraud service returned an error status", "transaction_id", freq.TransactionID, "status", resp.StatusCode)
		return nil, false
	}

	var verdict domain.FraudVerdict
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		slog.Warn("Fraud service returned an unreadable body", "transaction_id", freq.TransactionID, "error", err)
		return nil, false
	}
	return &verdict, true
}
