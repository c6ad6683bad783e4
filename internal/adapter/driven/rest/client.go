// Package rest implements the platform API ports over HTTP. The transport
// stack is, from the wire up:
//  1. httpcache (ETag-based conditional request caching)
//  2. authorizer (bearer token attachment, 401-driven session cleanup)
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gregjones/httpcache"

	"github.com/lacosdigitais/lacosctl/internal/domain/model"
	"github.com/lacosdigitais/lacosctl/internal/domain/port/driven"
)

// Compile-time interface satisfaction checks.
var (
	_ driven.AuthAPI        = (*Client)(nil)
	_ driven.ContentAPI     = (*Client)(nil)
	_ driven.InstitutionAPI = (*Client)(nil)
)

// Client is the HTTP implementation of the platform API ports.
type Client struct {
	http      *http.Client
	baseURL   string
	installID string
	logger    *slog.Logger
}

// NewClient creates a platform API client. kv is consulted by the
// authorizer transport on every request for the stored bearer token;
// installID, when non-empty, is sent as X-Install-Id.
func NewClient(baseURL string, timeout time.Duration, kv driven.KeyValueStore, installID string, logger *slog.Logger) *Client {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	transport := NewAuthorizer(kv, cacheTransport, logger)

	return &Client{
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		baseURL:   strings.TrimRight(baseURL, "/"),
		installID: installID,
		logger:    logger,
	}
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and
// base URL. This constructor is intended for testing, allowing injection
// of an httptest server; it bypasses the authorizer transport unless the
// caller installed one.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string, logger *slog.Logger) *Client {
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// apiError is a non-2xx response decoded from the platform's error body.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: %d", e.Status)
}

// errorBody is the platform's standard error response shape.
type errorBody struct {
	Error string `json:"error"`
}

// newRequest builds a JSON request against the platform API.
func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.installID != "" {
		req.Header.Set("X-Install-Id", c.installID)
	}

	return req, nil
}

// do executes req and decodes a 2xx JSON body into out (ignored when nil).
// Network failures and malformed bodies come back as *model.TransportError;
// non-2xx statuses come back as *apiError carrying the server's message.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return &model.TransportError{Err: err}
	}
	defer resp.Body.Close()

	// Cap reads; platform payloads are small.
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return &model.TransportError{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body errorBody
		_ = json.Unmarshal(data, &body)
		return &apiError{Status: resp.StatusCode, Message: body.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &model.TransportError{Err: fmt.Errorf("decode %s response: %w", req.URL.Path, err)}
	}
	return nil
}

// get is the common GET-and-decode path.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}
