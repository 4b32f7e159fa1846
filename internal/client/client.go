// Package client is a typed HTTP client for the /api/employees endpoints.
// Records travel in store casing; converting them for view state is the
// caller's job.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/aanand-mishra/employees-api/internal/casing"
)

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	// Message is the server-supplied message, empty when the body had none.
	Message string
	// Detail carries the "error" field of the envelope, if any.
	Detail string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Detail != "" {
		return fmt.Sprintf("api: %d %s: %s", e.StatusCode, msg, e.Detail)
	}
	return fmt.Sprintf("api: %d %s", e.StatusCode, msg)
}

// ServerMessage extracts the server-supplied message from err, if err is
// an *APIError that carries one.
func ServerMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}

// Result is the payload of a successful mutation.
type Result struct {
	Message      string
	InsertedID   int64
	AffectedRows int64
}

// envelope mirrors every response body the API produces.
type envelope struct {
	Success      bool            `json:"success"`
	Message      string          `json:"message"`
	Error        string          `json:"error"`
	EmpData      json.RawMessage `json:"empData"`
	InsertedID   int64           `json:"insertedId"`
	AffectedRows int64           `json:"affectedRows"`
}

// Client calls the employees API rooted at baseURL, e.g.
// "http://localhost:8080/api/employees".
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// New returns a Client. A nil httpClient falls back to http.DefaultClient.
func New(baseURL string, httpClient *http.Client, log *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        log,
	}
}

// List fetches the whole collection.
func (c *Client) List(ctx context.Context) ([]casing.Record, error) {
	env, err := c.do(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}

	records := make([]casing.Record, 0)
	if err := decodeData(env.EmpData, &records); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}

	return records, nil
}

// Get fetches a single record.
func (c *Client) Get(ctx context.Context, id int64) (casing.Record, error) {
	env, err := c.do(ctx, http.MethodGet, c.itemURL(id), nil)
	if err != nil {
		return nil, err
	}

	var record casing.Record
	if err := decodeData(env.EmpData, &record); err != nil {
		return nil, fmt.Errorf("decode employee %d: %w", id, err)
	}

	return record, nil
}

// Create posts a store-casing record.
func (c *Client) Create(ctx context.Context, record casing.Record) (Result, error) {
	env, err := c.do(ctx, http.MethodPost, c.baseURL, record)
	if err != nil {
		return Result{}, err
	}
	return Result{Message: env.Message, InsertedID: env.InsertedID}, nil
}

// Update replaces the record with the given identifier.
func (c *Client) Update(ctx context.Context, id int64, record casing.Record) (Result, error) {
	env, err := c.do(ctx, http.MethodPut, c.itemURL(id), record)
	if err != nil {
		return Result{}, err
	}
	return Result{Message: env.Message, AffectedRows: env.AffectedRows}, nil
}

// Delete removes the record with the given identifier.
func (c *Client) Delete(ctx context.Context, id int64) (Result, error) {
	env, err := c.do(ctx, http.MethodDelete, c.itemURL(id), nil)
	if err != nil {
		return Result{}, err
	}
	return Result{Message: env.Message, AffectedRows: env.AffectedRows}, nil
}

func (c *Client) itemURL(id int64) string {
	return c.baseURL + "/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, url string, body any) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Warn("Failed to close response body", "error", cerr)
		}
	}()

	c.log.Debug("API call", "method", method, "url", url, "status", resp.StatusCode)

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if decodeErr == nil {
			apiErr.Message = env.Message
			apiErr.Detail = env.Error
		}
		return nil, apiErr
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}

	return &env, nil
}

// decodeData decodes empData keeping numbers as json.Number, so that
// identifiers survive without a float round trip.
func decodeData(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return errors.New("response has no empData")
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(v)
}
