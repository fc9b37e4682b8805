package api

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
)

// DefaultTimeout bounds a single API call when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// Client talks to a posts REST API rooted at a base URL. Every method maps
// to exactly one HTTP request; nothing is cached or retried.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customises a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a client for the API at baseURL, e.g. http://localhost:5002/api.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalised base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// WithBaseURL returns a copy of c pointed at another API root, sharing the HTTP client.
func (c *Client) WithBaseURL(baseURL string) *Client {
	return NewClient(baseURL, WithHTTPClient(c.httpClient))
}

// List fetches all posts in the order the API returns them.
func (c *Client) List(ctx context.Context) ([]Post, error) {
	var posts []Post
	if err := c.do(ctx, http.MethodGet, "/posts", nil, nil, &posts); err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	return posts, nil
}

// Search fetches posts matching the non-empty terms of q.
func (c *Client) Search(ctx context.Context, q SearchQuery) ([]Post, error) {
	if q.Empty() {
		return nil, ErrEmptySearch
	}
	params := url.Values{}
	if q.Title != "" {
		params.Set("title", q.Title)
	}
	if q.Content != "" {
		params.Set("content", q.Content)
	}

	var posts []Post
	if err := c.do(ctx, http.MethodGet, "/posts/search", params, nil, &posts); err != nil {
		return nil, fmt.Errorf("searching posts: %w", err)
	}
	return posts, nil
}

// Sort fetches posts sorted server-side. An empty field falls back to List.
func (c *Client) Sort(ctx context.Context, order SortOrder) ([]Post, error) {
	if order.Field == "" {
		return c.List(ctx)
	}
	params := url.Values{}
	params.Set("sort", order.Field)
	if order.Direction != "" {
		params.Set("direction", order.Direction)
	}

	var posts []Post
	if err := c.do(ctx, http.MethodGet, "/posts", params, nil, &posts); err != nil {
		return nil, fmt.Errorf("sorting posts: %w", err)
	}
	return posts, nil
}

// Create adds a post and returns it as stored by the API.
func (c *Client) Create(ctx context.Context, d Draft) (*Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodPost, "/posts", nil, d, &post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}
	return &post, nil
}

// Update replaces the title and content of post id. Both are required.
func (c *Client) Update(ctx context.Context, id ID, d Draft) (*Post, error) {
	if d.Title == "" || d.Content == "" {
		return nil, ErrMissingFields
	}
	var post Post
	if err := c.do(ctx, http.MethodPut, postPath(id), nil, d, &post); err != nil {
		return nil, fmt.Errorf("updating post %s: %w", id, err)
	}
	return &post, nil
}

// Delete removes post id.
func (c *Client) Delete(ctx context.Context, id ID) error {
	if err := c.do(ctx, http.MethodDelete, postPath(id), nil, nil, nil); err != nil {
		return fmt.Errorf("deleting post %s: %w", id, err)
	}
	return nil
}

func postPath(id ID) string {
	return "/posts/" + url.PathEscape(string(id))
}

// endpoint joins the base URL, path and query parameters.
func (c *Client) endpoint(path string, params url.Values) (string, error) {
	if c.baseURL == "" {
		return "", ErrNoBaseURL
	}
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", c.baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid base URL %q: scheme must be http or https", c.baseURL)
	}
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}
	return u.String(), nil
}

// do issues one request. body, when non-nil, is sent as JSON; out, when
// non-nil, receives the decoded JSON response.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	endpoint, err := c.endpoint(path, params)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return &StatusError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// errorMessage extracts {"error": "..."} from an error body, falling back to the raw text.
func errorMessage(data []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	msg := strings.TrimSpace(string(data))
	if msg == "" {
		return "empty response"
	}
	return msg
}
