// Package bank integrates with the external acquiring bank over HTTP.
package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/acquirepay/payment-gateway/internal/config"
)

// BankClient is the capability of sending one authorization request to
// the acquiring bank and interpreting its answer.
type BankClient interface {
	Authorize(ctx context.Context, req AuthorizationRequest) (*AuthorizationResponse, error)
}

type HTTPBankClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewBankClient builds the HTTP client for the configured bank
// endpoint. The client timeout bounds the single outbound call so a
// hung bank cannot block an attempt indefinitely.
func NewBankClient(cfg config.BankConfig) *HTTPBankClient {
	return &HTTPBankClient{
		baseURL: cfg.BankBaseURL,
		httpClient: &http.Client{
			Timeout: cfg.BankConnTimeout,
		},
	}
}

func (c *HTTPBankClient) Authorize(ctx context.Context, req AuthorizationRequest) (*AuthorizationResponse, error) {
	url := fmt.Sprintf("%s/payments", c.baseURL)

	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("error marshalling json: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &BankError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var bankResp AuthorizationResponse
	if err := json.NewDecoder(resp.Body).Decode(&bankResp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return &bankResp, nil
}
