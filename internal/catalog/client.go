package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-faster/errors"

	"modacart/internal/domain"
)

// HTTPError reports a non-success status from the remote catalog. The caller
// owns retry policy; the client never retries on its own.
type HTTPError struct{ Code int }

func (e *HTTPError) Error() string { return fmt.Sprintf("catalog: http %d", e.Code) }

// Client fetches catalog snapshots and image payloads from the shop backend.
type Client struct {
	base string
	http *http.Client
}

func NewClient(base string, timeout time.Duration) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

type document struct {
	Audiences []domain.Audience `json:"audiences"`
}

// Fetch downloads and decodes the full catalog tree. Cancelling ctx aborts
// the request; a cancelled or failed fetch produces no snapshot and leaves
// no partial state behind.
func (c *Client) Fetch(ctx context.Context) (*Snapshot, error) {
	body, err := c.get(ctx, c.base+"/catalog.json")
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var doc document
	if err := json.NewDecoder(body).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode catalog")
	}
	return NewSnapshot(doc.Audiences), nil
}

// FetchImage downloads one image by its catalog name.
func (c *Client) FetchImage(ctx context.Context, name string) ([]byte, error) {
	body, err := c.get(ctx, c.base+"/images/"+name)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return io.ReadAll(body)
}

func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch")
	}
	if resp.StatusCode >= 400 {
		resp.Body.Close()
		return nil, &HTTPError{Code: resp.StatusCode}
	}
	return resp.Body, nil
}
