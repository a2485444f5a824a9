package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Belphemur/ShowSearch/internal/apperrors"
	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/parser"
)

// fetchAll performs a single GET against endpoint and decodes the whole body
// with p. Any failure discards the response; there are no partial results.
func fetchAll[T any](ctx context.Context, c *client, endpoint string, p parser.Parser[T]) ([]T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", config.GetUserAgent())
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewTransportError(endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, apperrors.NewStatusError(endpoint, resp.StatusCode)
	}

	records, err := p.Parse(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse response from %s: %w", endpoint, err)
	}
	return records, nil
}

// cachedFetch serves key from the response cache when possible and stores
// fresh results otherwise. The bool reports a cache hit.
func cachedFetch[T any](ctx context.Context, c *client, key string, fetch func() ([]T, error)) ([]T, bool, error) {
	logger := config.GetLogger()

	if c.cache != nil {
		if data, ok := c.cache.Get(ctx, key); ok {
			var records []T
			if err := json.Unmarshal(data, &records); err == nil && records != nil {
				logger.Debug().Str("key", key).Int("count", len(records)).Msg("Serving directory response from cache")
				return records, true, nil
			}
			logger.Warn().Str("key", key).Msg("Discarding unreadable cache entry")
		}
	}

	records, err := fetch()
	if err != nil {
		return nil, false, err
	}

	if c.cache != nil {
		if data, err := json.Marshal(records); err == nil {
			c.cache.Set(ctx, key, data)
		}
	}
	return records, false, nil
}
