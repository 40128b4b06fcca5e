// Package gateway talks to the external Webpay-style payment gateway.
// The gateway owns all transaction state: this client only creates a
// transaction (getting back a one-time token plus the redirect URL) and
// later commits it by token. Token redemption semantics, including what
// happens on a second commit of the same token, are entirely the
// gateway's business.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"tienda/internal/models"
)

// Client is the REST client for the gateway's merchant API.
type Client struct {
	baseURL   string
	keyID     string
	keySecret string
	http      *http.Client
}

type Config struct {
	BaseURL   string
	KeyID     string
	KeySecret string
	Timeout   time.Duration
}

func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		http:      &http.Client{Timeout: cfg.Timeout},
	}
}

// Initiate creates a transaction at the gateway and returns the token
// and redirect URL the shopper's browser must POST the token to.
func (c *Client) Initiate(ctx context.Context, intent models.PaymentIntent) (*models.GatewayToken, error) {
	var out models.GatewayToken
	if err := c.do(ctx, http.MethodPost, "/transactions", intent, &out); err != nil {
		return nil, err
	}
	if out.Token == "" || out.URL == "" {
		return nil, &Error{Status: http.StatusBadGateway, Message: "gateway response missing token or url"}
	}
	return &out, nil
}

// Commit confirms the transaction identified by the returned token_ws
// and yields the final transaction details. Call it at most once per
// returned token; replays are undefined behavior on the gateway side.
func (c *Client) Commit(ctx context.Context, token string) (*models.TransactionDetails, error) {
	var out models.TransactionDetails
	path := "/transactions/" + url.PathEscape(token)
	if err := c.do(ctx, http.MethodPut, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode gateway request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Tbk-Api-Key-Id", c.keyID)
	req.Header.Set("Tbk-Api-Key-Secret", c.keySecret)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("gateway response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newError(resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode gateway response: %w", err)
		}
	}
	return nil
}
