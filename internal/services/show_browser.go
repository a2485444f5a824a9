package services

import (
	"context"

	"github.com/Belphemur/ShowSearch/internal/models"
)

// Renderer owns everything the user sees: the list of show cards and the
// episode panel. Implementations need not be safe for concurrent use.
type Renderer interface {
	// RenderShows replaces the show list with shows.
	RenderShows(shows []models.ShowSummary) error
	// HideEpisodes hides the episode panel if it is visible.
	HideEpisodes() error
	// RenderEpisodes fills the episode panel and makes it visible.
	RenderEpisodes(episodes []models.EpisodeSummary) error
}

// ShowBrowser turns user actions into one fetch, normalize and render cycle each
type ShowBrowser interface {
	// HandleSearch runs a show search for term and renders the results,
	// hiding any open episode panel. On failure nothing is rendered.
	HandleSearch(ctx context.Context, term string) ([]models.ShowSummary, error)

	// HandleEpisodes fetches the episodes of showID and renders them in the
	// episode panel. On failure nothing is rendered.
	HandleEpisodes(ctx context.Context, showID int) ([]models.EpisodeSummary, error)
}
