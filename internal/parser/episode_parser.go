package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/models"
)

// EpisodeParser decodes the /shows/{id}/episodes response
type EpisodeParser struct{}

// NewEpisodeParser creates a new episode parser
func NewEpisodeParser() *EpisodeParser {
	return &EpisodeParser{}
}

// Parse decodes the episode list, keeping the directory's order. The result is never nil.
func (p *EpisodeParser) Parse(body io.Reader, contentType string) ([]models.EpisodeSummary, error) {
	reader, err := NewUTF8Reader(body, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to detect charset: %w", err)
	}

	var raw []models.RawEpisode
	if err := json.NewDecoder(reader).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode episodes: %w", err)
	}

	episodes := make([]models.EpisodeSummary, 0, len(raw))
	for _, ep := range raw {
		episodes = append(episodes, models.NewEpisodeSummary(ep))
	}

	logger := config.GetLogger()
	logger.Debug().Int("count", len(episodes)).Msg("Parsed episodes")
	return episodes, nil
}
