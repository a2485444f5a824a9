package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/models"
)

// ShowSearchParser decodes the /search/shows response into show summaries
type ShowSearchParser struct {
	fallbackImage string
}

// NewShowSearchParser creates a parser that substitutes fallbackImage for shows without a poster
func NewShowSearchParser(fallbackImage string) *ShowSearchParser {
	if fallbackImage == "" {
		fallbackImage = config.DefaultMissingImageURL
	}
	return &ShowSearchParser{fallbackImage: fallbackImage}
}

// Parse decodes the search results, keeping the directory's order. The result is never nil.
func (p *ShowSearchParser) Parse(body io.Reader, contentType string) ([]models.ShowSummary, error) {
	reader, err := NewUTF8Reader(body, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to detect charset: %w", err)
	}

	var results []models.SearchResult
	if err := json.NewDecoder(reader).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}

	shows := make([]models.ShowSummary, 0, len(results))
	for _, result := range results {
		shows = append(shows, models.NewShowSummary(result.Show, p.fallbackImage))
	}

	logger := config.GetLogger()
	logger.Debug().Int("count", len(shows)).Msg("Parsed search results")
	return shows, nil
}
