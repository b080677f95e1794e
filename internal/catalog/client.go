package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/astrokit/stardrift/internal/star"
)

// maxResponseBytes caps TAP responses so a runaway query cannot consume
// unbounded memory.
const maxResponseBytes = 50 << 20

// Client fetches raw CSV rows from a TAP service.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Client for the given TAP endpoint. An empty
// endpoint selects the Gaia archive.
func NewClient(endpoint string, logger *slog.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// Endpoint returns the configured TAP endpoint.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Query fetches q and parses the rows into a set stamped with epoch.
// Callers that want to cache the raw payload use Fetch and Parse
// separately.
func (c *Client) Query(ctx context.Context, q Query, epoch time.Time) (star.Set, error) {
	data, err := c.Fetch(ctx, q)
	if err != nil {
		return star.Set{}, err
	}
	return Parse(bytes.NewReader(data), epoch, c.logger)
}

// Fetch runs q synchronously and returns the raw CSV payload.
func (c *Client) Fetch(ctx context.Context, q Query) ([]byte, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("REQUEST", "doQuery")
	params.Set("LANG", "ADQL")
	params.Set("FORMAT", "csv")
	params.Set("QUERY", q.ADQL())

	reqURL := c.endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	c.logger.Debug("querying catalog", "endpoint", c.endpoint, "adql", q.ADQL())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from %s", resp.StatusCode, c.endpoint)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if len(body) > maxResponseBytes {
		return nil, fmt.Errorf("response exceeds %d byte limit", maxResponseBytes)
	}

	return body, nil
}
