// Package upstream is the typed client for the PMS REST API. The API is a
// collaborator: the gateway never owns its records and accepts every
// response as new truth.
package upstream

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

	"pms-app-service/internal/infrastructure/config"
)

// ErrNotFound marks an expected-absence 404: the resource is simply not
// configured yet, callers fall back to defaults without surfacing an error
var ErrNotFound = errors.New("upstream resource not found")

// ConflictError is a 409 carrying the server-provided reason,
// e.g. a room deletion blocked by active reservations
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Client talks to the upstream PMS API
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// NewClient creates an upstream client with an explicit request timeout
func NewClient(cfg *config.Config) *Client {
	return &Client{
		BaseURL: strings.TrimRight(cfg.UpstreamBaseURL, "/"),
		Token:   cfg.UpstreamToken,
		HTTP:    &http.Client{Timeout: cfg.UpstreamTimeout},
	}
}

// do issues one JSON request and decodes the response into out (when out is
// non-nil). 404 maps to ErrNotFound, 409 to ConflictError with the
// server-provided message, other non-2xx statuses to a generic error
// carrying status and body text.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) error {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("error building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("error calling upstream %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		return &ConflictError{Message: readErrorMessage(resp.Body)}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("upstream %s %s returned status %d: %s",
			method, path, resp.StatusCode, readBodyText(resp.Body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding upstream response: %w", err)
	}
	return nil
}

// readErrorMessage extracts the error/message field of a JSON error body,
// falling back to the raw body text
func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(raw) == 0 {
		return "conflict"
	}

	var parsed struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if parsed.Error != "" {
			return parsed.Error
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}
	return strings.TrimSpace(string(raw))
}

// readBodyText returns a trimmed body excerpt for error messages
func readBodyText(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 1024))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}
