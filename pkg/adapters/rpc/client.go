package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/aretw0/knowling/pkg/core"
)

// Client is a core.Backend backed by a remote note service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a client for the service rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// List implements core.Backend.
func (c *Client) List(ctx context.Context) ([]core.Note, error) {
	var resp listResponse
	if err := c.do(ctx, http.MethodGet, "/notes", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Notes, nil
}

// Get implements core.Backend.
func (c *Client) Get(ctx context.Context, id string) (core.Note, error) {
	var note core.Note
	if err := c.do(ctx, http.MethodGet, "/notes/"+url.PathEscape(id), nil, &note); err != nil {
		return core.Note{}, err
	}
	return note, nil
}

// Save implements core.Backend.
func (c *Client) Save(ctx context.Context, id, text string) (core.Note, error) {
	method, path := http.MethodPost, "/notes"
	if id != "" {
		method, path = http.MethodPut, "/notes/"+url.PathEscape(id)
	}

	var note core.Note
	if err := c.do(ctx, method, path, saveRequest{Text: text}, &note); err != nil {
		return core.Note{}, err
	}
	return note, nil
}

// Delete implements core.Backend.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/notes/"+url.PathEscape(id), nil, nil)
}

// Related implements core.Backend.
func (c *Client) Related(ctx context.Context, id string, threshold float64) ([]core.ScoredNote, error) {
	q := url.Values{"threshold": {strconv.FormatFloat(threshold, 'g', -1, 64)}}
	path := "/notes/" + url.PathEscape(id) + "/related?" + q.Encode()

	var resp relatedResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Related, nil
}

// SetCategories implements core.Categorizer.
func (c *Client) SetCategories(ctx context.Context, id string, labels []string) (core.Note, error) {
	if labels == nil {
		labels = []string{}
	}
	var note core.Note
	path := "/notes/" + url.PathEscape(id) + "/categories"
	if err := c.do(ctx, http.MethodPut, path, categoriesRequest{Categories: labels}, &note); err != nil {
		return core.Note{}, err
	}
	return note, nil
}

// Categories implements core.Categorizer.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var resp categoriesResponse
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// statusError turns a non-2xx answer into an error, keeping the server's
// message and mapping well known statuses onto core sentinels.
func statusError(resp *http.Response) error {
	msg := resp.Status
	var er errorResponse
	if data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10)); err == nil {
		if json.Unmarshal(data, &er) == nil && er.Error != "" {
			msg = er.Error
		}
	}

	var kind error
	switch resp.StatusCode {
	case http.StatusNotFound:
		kind = core.ErrNotFound
	case http.StatusForbidden:
		kind = core.ErrReadOnly
	case http.StatusBadRequest:
		kind = core.ErrInvalidID
	case http.StatusNotImplemented:
		kind = core.ErrUnsupported
	}
	if kind != nil {
		return fmt.Errorf("%w: %s", kind, msg)
	}
	return errors.New("remote: " + msg)
}

var (
	_ core.Backend     = (*Client)(nil)
	_ core.Categorizer = (*Client)(nil)
)

// ComponentType implements introspection.Component.
func (c *Client) ComponentType() string {
	return "http"
}
