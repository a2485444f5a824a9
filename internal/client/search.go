package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/metrics"
	"github.com/Belphemur/ShowSearch/internal/models"
)

// SearchShows queries /search/shows and normalizes every result into a ShowSummary.
func (c *client) SearchShows(ctx context.Context, term string) ([]models.ShowSummary, error) {
	logger := config.GetLogger()
	logger.Info().Str("term", term).Msg("Searching shows")

	endpoint := fmt.Sprintf("%s/search/shows?%s", c.baseURL, url.Values{"q": {term}}.Encode())

	shows, hit, err := cachedFetch(ctx, c, "search:"+term, func() ([]models.ShowSummary, error) {
		return fetchAll(ctx, c, endpoint, c.showParser)
	})
	if err != nil {
		metrics.RecordPipeline(metrics.PipelineSearch, metrics.StatusError, 0)
		return nil, fmt.Errorf("failed to search shows for %q: %w", term, err)
	}

	status := metrics.StatusSuccess
	if hit {
		status = metrics.StatusCacheHit
	}
	metrics.RecordPipeline(metrics.PipelineSearch, status, len(shows))

	logger.Info().Str("term", term).Int("count", len(shows)).Bool("cached", hit).Msg("Show search completed")
	return shows, nil
}
