// Package supabase is the process-wide handle to the hosted backend: a
// PostgREST-style data API under /rest/v1 and a GoTrue-style auth API
// under /auth/v1. The client is a pass-through (no retry, no caching) and
// is shared read-only by every store.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Config captures the two required settings for reaching the backend.
type Config struct {
	// URL is the project base URL, e.g. https://xyz.supabase.co.
	URL string
	// AnonKey is the public API key sent as the apikey header.
	AnonKey string
	// Timeout bounds each round trip. Defaults to 10s when zero.
	Timeout time.Duration
}

// Client is the single configured handle to the backend service.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client

	// Auth exposes the authentication sub-interface.
	Auth *AuthClient
}

// New validates the configuration and builds the client. Both URL and
// AnonKey are required; construction fails when either is absent so the
// process dies at startup rather than on the first request.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("supabase: URL is required")
	}
	if cfg.AnonKey == "" {
		return nil, errors.New("supabase: anon key is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		anonKey: cfg.AnonKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	c.Auth = &AuthClient{c: c}
	return c, nil
}

// APIError is a failed response from the backend, collapsed into one
// human-readable message (the spec's single failure category).
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote call failed with status %d", e.Status)
	}
	return e.Message
}

// remoteError decodes the error body of a non-2xx response. PostgREST and
// GoTrue use different envelopes; the first non-empty message field wins.
func remoteError(status int, body []byte) *APIError {
	var envelope struct {
		Message          string `json:"message"`
		Msg              string `json:"msg"`
		ErrorDescription string `json:"error_description"`
		Err              string `json:"error"`
	}
	_ = json.Unmarshal(body, &envelope)

	msg := envelope.Message
	for _, alt := range []string{envelope.Msg, envelope.ErrorDescription, envelope.Err} {
		if msg == "" {
			msg = alt
		}
	}
	return &APIError{Status: status, Message: msg}
}

// do performs one round trip. A non-nil out receives the decoded 2xx body;
// bodies of 204 responses are skipped.
func (c *Client) do(ctx context.Context, method, url string, headers map[string]string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.anonKey)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return remoteError(resp.StatusCode, raw)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
