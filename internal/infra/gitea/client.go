// Package gitea implements the read-only REST client for the Gitea API.
package gitea

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gitea-tools/triage/internal/domain"
)

const (
	// maxPageSize is the service-imposed maximum for the limit parameter.
	maxPageSize = 50

	// defaultPageSize is used by the paginated endpoints.
	defaultPageSize = 50

	requestTimeout = 30 * time.Second
)

// firstPageIgnoresLimit works around a service defect: the page and
// limit parameters are ignored on page 1 of a paginated listing, so the
// first request goes out without them and the effective first-page size
// is whatever the service default happens to be. Flip to false once the
// upstream bug is fixed.
const firstPageIgnoresLimit = true

// Ensure Client implements domain.Forge.
var _ domain.Forge = (*Client)(nil)

// Client talks to one Gitea instance. It is stateless and safe to call
// repeatedly; requests block until response or failure and are never
// retried.
type Client struct {
	httpc   *http.Client
	logger  *slog.Logger
	baseURL string
	token   string
}

// New creates a Client for the API rooted at baseURL. token, when
// non-empty, is sent as an Authorization header on every request.
func New(baseURL, token string, logger *slog.Logger) *Client {
	return &Client{
		httpc:   &http.Client{Timeout: requestTimeout},
		logger:  logger,
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
	}
}

// getJSON performs a single GET and decodes the body as JSON. Failures
// (transport, non-2xx status, undecodable body) are logged together with
// the offending URL and returned; they are never fatal to the caller.
func (c *Client) getJSON(ctx context.Context, rawURL string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn("request failed", "url", rawURL, "error", err)
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err := fmt.Errorf("unexpected status %s", resp.Status)
		c.logger.Warn("request failed", "url", rawURL, "status", resp.StatusCode)
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn("reading response failed", "url", rawURL, "error", err)
		return nil, err
	}

	// An undecodable 2xx body is treated the same as a transport
	// failure: logged, nothing returned.
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		c.logger.Warn("response is not valid JSON", "url", rawURL, "error", err)
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return raw, nil
}

// getAllPages drives getJSON with incrementing page numbers and a fixed
// page size, flattening the array pages into one sequence. Pagination
// stops on an empty or failed page, or on a page shorter than pageSize;
// a failed page terminates pagination and the results accumulated so far
// are still returned. A failed first request yields an empty sequence.
func (c *Client) getAllPages(ctx context.Context, rawURL string, pageSize int) ([]json.RawMessage, error) {
	if pageSize > maxPageSize {
		return nil, fmt.Errorf("%w: %d", domain.ErrPageSizeTooLarge, pageSize)
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	var result []json.RawMessage
	for page := 1; ; page++ {
		pageURL := rawURL
		if page > 1 || !firstPageIgnoresLimit {
			sep := "?"
			if strings.Contains(rawURL, "?") {
				sep = "&"
			}
			pageURL = fmt.Sprintf("%s%spage=%d&limit=%d", rawURL, sep, page, pageSize)
		}
		c.logger.Debug("requesting page", "page", page, "url", pageURL)

		body, err := c.getJSON(ctx, pageURL)
		if err != nil {
			break
		}

		var items []json.RawMessage
		if err := json.Unmarshal(body, &items); err != nil {
			c.logger.Warn("page is not a JSON array", "url", pageURL, "error", err)
			break
		}
		if len(items) == 0 {
			break
		}
		result = append(result, items...)
		if len(items) < pageSize {
			break
		}
	}
	return result, nil
}

// decodeItems unmarshals raw page items into entities, skipping JSON
// nulls and logging items that do not match the expected shape.
func decodeItems[T any](logger *slog.Logger, items []json.RawMessage) []*T {
	result := make([]*T, 0, len(items))
	for _, item := range items {
		if string(item) == "null" {
			continue
		}
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			logger.Warn("skipping undecodable item", "error", err)
			continue
		}
		result = append(result, &v)
	}
	return result
}
