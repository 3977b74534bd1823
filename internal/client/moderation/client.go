// Package moderation is a client for the guardian review API plus a local
// queue view that applies decisions optimistically.
package moderation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 64 << 10
)

var (
	// ErrAlreadyReviewed means another reviewer decided first.
	ErrAlreadyReviewed = errors.New("submission already reviewed")
	// ErrNotFound means the submission no longer exists.
	ErrNotFound = errors.New("submission not found")
)

// Item is one submission as shown to a reviewer.
type Item struct {
	ID          int64           `json:"id"`
	Kind        string          `json:"kind"`
	CityID      int64           `json:"city_id"`
	Status      string          `json:"status"`
	Title       string          `json:"title"`
	Summary     string          `json:"summary"`
	Details     string          `json:"details,omitempty"`
	GuestName   string          `json:"guest_name,omitempty"`
	SubmitterID *string         `json:"submitter_id,omitempty"`
	Geometry    json.RawMessage `json:"geometry,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("moderation api: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// Is maps API error codes onto the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrAlreadyReviewed:
		return e.Code == "ALREADY_REVIEWED" || e.Code == "INVALID_TRANSITION"
	case ErrNotFound:
		return e.Code == "SUBMISSION_NOT_FOUND" || e.Code == "NOT_FOUND"
	default:
		return false
	}
}

// Client talks to /api/v1/moderation with a guardian or admin token.
type Client struct {
	baseURL    *url.URL
	token      string
	httpClient *http.Client
}

// NewClient creates a moderation API client
func NewClient(baseURL, token string) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse base URL")
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("base URL must be absolute: %q", baseURL)
	}

	return &Client{
		baseURL:    base,
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// List returns submissions of one kind in the given status, pending when empty.
func (c *Client) List(ctx context.Context, kind, status string, limit int) ([]Item, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var items []Item
	if err := c.do(ctx, http.MethodGet, "/api/v1/moderation/"+url.PathEscape(kind), query, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// Approve publishes a pending submission.
func (c *Client) Approve(ctx context.Context, kind string, id int64) error {
	return c.decide(ctx, kind, id, CommandApprove)
}

// Reject closes a pending submission.
func (c *Client) Reject(ctx context.Context, kind string, id int64) error {
	return c.decide(ctx, kind, id, CommandReject)
}

func (c *Client) decide(ctx context.Context, kind string, id int64, cmd Command) error {
	path := fmt.Sprintf("/api/v1/moderation/%s/%d/%s", url.PathEscape(kind), id, cmd)

	return c.do(ctx, http.MethodPost, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, out any) error {
	target := c.baseURL.JoinPath(path)
	target.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, method, target.String(), http.NoBody)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody<<4))
	if err != nil {
		return errors.Wrap(err, "read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp.StatusCode, body)
	}

	if out == nil {
		return nil
	}

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return errors.Wrap(err, "decode response envelope")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return errors.Wrap(err, "decode response data")
	}

	return nil
}

func decodeAPIError(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status, Code: "HTTP_ERROR", Message: http.StatusText(status)}

	var env struct {
		Error *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&env); err == nil && env.Error != nil {
		apiErr.Code = env.Error.Code
		apiErr.Message = env.Error.Message
	}

	return apiErr
}
