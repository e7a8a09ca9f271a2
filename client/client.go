// Package client talks to the content service.
package client

import (
	"blogfeed/storage/models"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

var (
	ErrTransport        = errors.New("content service unreachable")
	ErrUnexpectedStatus = errors.New("content service returned unexpected status")
	ErrDecode           = errors.New("content service returned malformed body")
)

// Result is the outcome of one fetch. Exactly one of Posts or Err is
// meaningful: Err != nil means the fetch failed and Posts is nil.
type Result struct {
	Posts []models.Post
	Err   error
}

func (r Result) OK() bool {
	return r.Err == nil
}

type Client struct {
	baseURL    string
	origin     string
	httpClient *http.Client
}

// New returns a client for the service at baseURL. origin, when set, is
// sent as the Origin header the way a browser on that origin would.
// A nil httpClient uses http.DefaultClient.
func New(baseURL, origin string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    baseURL,
		origin:     origin,
		httpClient: httpClient,
	}
}

func (c *Client) GetPosts(ctx context.Context) ([]models.Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "building request for %s", c.baseURL)
	}
	req.Header.Set("Accept", "application/json")
	if c.origin != "" {
		req.Header.Set("Origin", c.origin)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", ErrTransport, c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Wrapf(ErrUnexpectedStatus, "GET %s: %d", c.baseURL, resp.StatusCode)
	}

	var body models.PostsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrapf(ErrDecode, "GET %s: %v", c.baseURL, err)
	}
	if body.BlogPost == nil {
		return nil, errors.WithMessagef(ErrDecode, "GET %s: missing blogPost", c.baseURL)
	}
	return body.BlogPost, nil
}

func (c *Client) Fetch(ctx context.Context) Result {
	posts, err := c.GetPosts(ctx)
	if err != nil {
		return Result{Err: err}
	}
	return Result{Posts: posts}
}
