package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/metrics"
	"github.com/Belphemur/ShowSearch/internal/models"
)

// GetEpisodes queries /shows/{id}/episodes. The id is not validated; an
// unknown show surfaces as a 404 remote call error.
func (c *client) GetEpisodes(ctx context.Context, showID int) ([]models.EpisodeSummary, error) {
	logger := config.GetLogger()
	logger.Info().Int("showID", showID).Msg("Fetching episodes")

	endpoint := fmt.Sprintf("%s/shows/%d/episodes", c.baseURL, showID)

	episodes, hit, err := cachedFetch(ctx, c, "episodes:"+strconv.Itoa(showID), func() ([]models.EpisodeSummary, error) {
		return fetchAll(ctx, c, endpoint, c.episodeParser)
	})
	if err != nil {
		metrics.RecordPipeline(metrics.PipelineEpisodes, metrics.StatusError, 0)
		return nil, fmt.Errorf("failed to get episodes for show %d: %w", showID, err)
	}

	status := metrics.StatusSuccess
	if hit {
		status = metrics.StatusCacheHit
	}
	metrics.RecordPipeline(metrics.PipelineEpisodes, status, len(episodes))

	logger.Info().Int("showID", showID).Int("count", len(episodes)).Bool("cached", hit).Msg("Episode listing completed")
	return episodes, nil
}
