package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/helxplatform/ddindex/internal/config"
	"github.com/helxplatform/ddindex/internal/retry"
	"github.com/helxplatform/ddindex/pkg/ddindex"
)

// listAmount is the page size requested from the objects/ls endpoint.
const listAmount = 1000

// LakeFSClient implements ddindex.ObjectStore over the lakeFS REST API.
// Requests are authenticated with the access key pair from the lakectl
// configuration. Transient failures (throttling, 5xx, network errors)
// are retried with exponential backoff; anything else is returned
// immediately and aborts the run.
type LakeFSClient struct {
	baseURL         string
	accessKeyID     string
	secretAccessKey string
	client          *http.Client
	executor        *retry.Executor
	logger          ddindex.Logger
}

// NewLakeFSClient creates a client for the configured lakeFS server.
func NewLakeFSClient(cfg *config.LakeFSConfig, logger ddindex.Logger) *LakeFSClient {
	executor := retry.NewExecutor(
		retry.NewHTTPErrorClassifier(),
		retry.NewExponentialBackoff(ddindex.DefaultRetryMaxAttempts,
			retry.WithInitialDelay(ddindex.DefaultRetryInitialDelay),
			retry.WithMaxDelay(ddindex.DefaultRetryMaxDelay),
		),
	).WithOnRetry(func(attempt int, err error, delay time.Duration) {
		logger.Verbose("retrying lakeFS request in %s after transient error: %v", delay, err)
	})

	return &LakeFSClient{
		baseURL:         cfg.EndpointURL,
		accessKeyID:     cfg.AccessKeyID,
		secretAccessKey: cfg.SecretAccessKey,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
		executor: executor,
		logger:   logger,
	}
}

// listResponse is the wire shape of the objects/ls endpoint.
type listResponse struct {
	Pagination struct {
		HasMore    bool   `json:"has_more"`
		NextOffset string `json:"next_offset"`
	} `json:"pagination"`
	Results []struct {
		Path     string `json:"path"`
		PathType string `json:"path_type"`
	} `json:"results"`
}

// List returns the immediate children of path in repository at ref,
// following pagination until the listing is complete. lakeFS reports
// each entry as path_type "object" or "common_prefix"; the raw value is
// passed through so callers can reject anything unexpected.
func (c *LakeFSClient) List(ctx context.Context, repository, ref, path string) ([]ddindex.ObjectEntry, error) {
	var entries []ddindex.ObjectEntry
	after := ""

	for {
		query := url.Values{}
		query.Set("prefix", path)
		query.Set("delimiter", "/")
		query.Set("amount", fmt.Sprintf("%d", listAmount))
		if after != "" {
			query.Set("after", after)
		}

		endpoint := fmt.Sprintf("%s/api/v1/repositories/%s/refs/%s/objects/ls?%s",
			c.baseURL, url.PathEscape(repository), url.PathEscape(ref), query.Encode())

		var page listResponse
		if err := c.getJSON(ctx, endpoint, &page); err != nil {
			return nil, fmt.Errorf("%w: listing %s@%s under %q: %w", ddindex.ErrConnectionFailed, repository, ref, path, err)
		}

		for _, result := range page.Results {
			entryType := ddindex.EntryType(result.PathType)
			if entryType == "common_prefix" {
				entryType = ddindex.EntryTypeDirectory
			}
			entries = append(entries, ddindex.ObjectEntry{
				Path: result.Path,
				Type: entryType,
			})
		}

		if !page.Pagination.HasMore {
			break
		}
		after = page.Pagination.NextOffset
	}

	return entries, nil
}

// Open returns the content of the object at path. The request itself is
// retried on transient failures; once a 2xx response arrives the body is
// streamed to the caller, who must close it.
func (c *LakeFSClient) Open(ctx context.Context, repository, ref, path string) (io.ReadCloser, error) {
	query := url.Values{}
	query.Set("path", path)
	endpoint := fmt.Sprintf("%s/api/v1/repositories/%s/refs/%s/objects?%s",
		c.baseURL, url.PathEscape(repository), url.PathEscape(ref), query.Encode())

	var body io.ReadCloser
	err := c.executor.Execute(ctx, func(ctx context.Context) error {
		resp, err := c.do(ctx, endpoint)
		if err != nil {
			return err
		}
		if resp.StatusCode != http.StatusOK {
			return statusError(resp, endpoint)
		}
		body = resp.Body
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s@%s %q: %w", ddindex.ErrConnectionFailed, repository, ref, path, err)
	}

	return body, nil
}

// getJSON fetches endpoint with retries and decodes the JSON response.
func (c *LakeFSClient) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	return c.executor.Execute(ctx, func(ctx context.Context) error {
		resp, err := c.do(ctx, endpoint)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return statusError(resp, endpoint)
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode lakeFS response: %w", err)
		}
		return nil
	})
}

// do issues one authenticated GET request.
func (c *LakeFSClient) do(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build lakeFS request: %w", err)
	}
	req.SetBasicAuth(c.accessKeyID, c.secretAccessKey)

	return c.client.Do(req)
}

// statusError drains up to a short preview of the body into an
// HTTPStatusError so the retry classifier can inspect the status code.
func statusError(resp *http.Response, endpoint string) error {
	preview, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
	resp.Body.Close()
	return &retry.HTTPStatusError{
		StatusCode: resp.StatusCode,
		Method:     http.MethodGet,
		URL:        endpoint,
		Body:       string(preview),
	}
}

// Verify LakeFSClient implements the interface at compile time
var _ ddindex.ObjectStore = (*LakeFSClient)(nil)
