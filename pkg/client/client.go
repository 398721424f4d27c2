// Package client is the Go counterpart of the web client's data layer: it
// attaches the bearer token to every request, surfaces non-success bodies as
// errors, and treats a 401 as the end of the session.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pennypilot-app/pennypilot_backend/internal/dto"
)

// ErrSessionExpired is returned when the server answers 401. The session is
// over: no retry, no refresh flow. The OnUnauthorized hook has already run
// by the time a caller sees this error.
var ErrSessionExpired = errors.New("session expired")

// Client calls the PennyPilot REST API.
type Client struct {
	// BaseURL is the backend origin, e.g. "http://localhost:8080".
	BaseURL string
	// TokenSource returns the current bearer token, or "" when logged out.
	TokenSource func() string
	// OnUnauthorized is invoked once per 401 response, before
	// ErrSessionExpired is returned. Typically it clears persisted session
	// state. May be nil.
	OnUnauthorized func()
	// HTTPClient is the underlying transport; http.DefaultClient when nil.
	HTTPClient *http.Client
}

// New creates a client for the given backend origin.
func New(baseURL string, tokenSource func() string) *Client {
	return &Client{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		TokenSource: tokenSource,
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// do performs one API request. A non-nil body is JSON-encoded; a non-nil out
// receives the decoded success payload.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.TokenSource != nil {
		if token := c.TokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.OnUnauthorized != nil {
			c.OnUnauthorized()
		}
		return ErrSessionExpired
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(resp.Body)
		if len(msg) > 0 {
			return fmt.Errorf("%s", strings.TrimSpace(string(msg)))
		}
		return fmt.Errorf("request failed: %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// Health checks the public health endpoint.
func (c *Client) Health(ctx context.Context) error {
	var body struct {
		OK bool `json:"ok"`
	}
	if err := c.do(ctx, http.MethodGet, "/health", nil, nil, &body); err != nil {
		return err
	}
	if !body.OK {
		return fmt.Errorf("backend reported not ok")
	}
	return nil
}

// ListTransactions fetches the caller's transactions with the given query
// parameters (from, to, category, type, sort).
func (c *Client) ListTransactions(ctx context.Context, query url.Values) ([]dto.TransactionResponse, error) {
	var txns []dto.TransactionResponse
	if err := c.do(ctx, http.MethodGet, "/api/transactions", query, nil, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

// CreateTransaction creates a transaction and returns the stored resource.
func (c *Client) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	var created dto.TransactionResponse
	if err := c.do(ctx, http.MethodPost, "/api/transactions", nil, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTransaction applies a partial update and returns the stored resource.
func (c *Client) UpdateTransaction(ctx context.Context, id string, req dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	var updated dto.TransactionResponse
	if err := c.do(ctx, http.MethodPut, "/api/transactions/"+url.PathEscape(id), nil, req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTransaction removes a transaction by ID.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/transactions/"+url.PathEscape(id), nil, nil, nil)
}

// Rates fetches the current exchange-rate table via the backend passthrough.
func (c *Client) Rates(ctx context.Context) (*dto.RatesResponse, error) {
	var rates dto.RatesResponse
	if err := c.do(ctx, http.MethodGet, "/api/rates", nil, nil, &rates); err != nil {
		return nil, err
	}
	return &rates, nil
}
