package services

import (
	"context"
	"fmt"

	"github.com/Belphemur/ShowSearch/internal/client"
	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/models"
)

// DefaultShowBrowser implements ShowBrowser on top of a directory client.
//
// Calls are independent: there is no cancellation of an outstanding call when
// a new one starts, so two overlapping searches render in completion order.
type DefaultShowBrowser struct {
	directory client.Client
	renderer  Renderer
}

// NewShowBrowser creates a ShowBrowser that renders through renderer
func NewShowBrowser(directory client.Client, renderer Renderer) ShowBrowser {
	return &DefaultShowBrowser{
		directory: directory,
		renderer:  renderer,
	}
}

// HandleSearch implements ShowBrowser.HandleSearch
func (b *DefaultShowBrowser) HandleSearch(ctx context.Context, term string) ([]models.ShowSummary, error) {
	shows, err := b.directory.SearchShows(ctx, term)
	if err != nil {
		return nil, err
	}

	if err := b.renderer.HideEpisodes(); err != nil {
		return nil, fmt.Errorf("failed to hide episodes: %w", err)
	}
	if err := b.renderer.RenderShows(shows); err != nil {
		return nil, fmt.Errorf("failed to render shows: %w", err)
	}

	logger := config.GetLogger()
	logger.Debug().Str("term", term).Int("count", len(shows)).Msg("Rendered search results")
	return shows, nil
}

// HandleEpisodes implements ShowBrowser.HandleEpisodes
func (b *DefaultShowBrowser) HandleEpisodes(ctx context.Context, showID int) ([]models.EpisodeSummary, error) {
	episodes, err := b.directory.GetEpisodes(ctx, showID)
	if err != nil {
		return nil, err
	}

	if err := b.renderer.RenderEpisodes(episodes); err != nil {
		return nil, fmt.Errorf("failed to render episodes: %w", err)
	}

	logger := config.GetLogger()
	logger.Debug().Int("showID", showID).Int("count", len(episodes)).Msg("Rendered episodes")
	return episodes, nil
}
