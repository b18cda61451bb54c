// Package rosterclient is a thin typed client for the scheduling service's
// REST API: employees, shift templates and assignments.
package rosterclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const defaultTimeout = 10 * time.Second

// Client talks to the scheduling service. It is explicitly constructed with
// its base address and headers so tests can point it at a fake server; there
// is no package-level shared instance.
type Client struct {
	baseURL    string
	headers    map[string]string
	httpClient *http.Client
	validate   *validator.Validate
}

// Option configures a Client.
type Option func(*Client)

// WithHeaders sets headers sent on every request (e.g. auth tokens).
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		c.headers = headers
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying http.Client entirely.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		validate:   validator.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// checkPayload runs the client-side required-field check before a write call.
// A failure is a ValidationError, same as a server-side rejection.
func (c *Client) checkPayload(payload any) error {
	if err := c.validate.Struct(payload); err != nil {
		return &ValidationError{Message: err.Error()}
	}
	return nil
}

// do executes one request against the service. A nil out skips response
// decoding (deletes return no content). Transport failures become
// NetworkError; non-2xx statuses are mapped onto the error taxonomy by
// errorFromResponse.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp, path)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorFromResponse maps a non-2xx response onto the error taxonomy:
// 400/422 are validation failures, 404 is a missing record, everything else
// is a server-side failure.
func errorFromResponse(resp *http.Response, path string) error {
	message := readErrorMessage(resp.Body)

	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return &ValidationError{Message: message}
	case http.StatusNotFound:
		resource, id := splitResourcePath(path)
		return &NotFoundError{Resource: resource, ID: id}
	default:
		return &ServerError{StatusCode: resp.StatusCode, Message: message}
	}
}

// readErrorMessage pulls a human-readable message out of an error response
// body, accepting either {"message": "..."} or {"error": "..."} shapes.
func readErrorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 8192))
	if err != nil || len(data) == 0 {
		return ""
	}

	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	return strings.TrimSpace(string(data))
}

// splitResourcePath turns "/employees/42" into ("employees", "42").
func splitResourcePath(path string) (resource, id string) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	resource = parts[0]
	if len(parts) > 1 {
		id = parts[1]
	}
	return resource, id
}
