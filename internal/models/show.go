package models

// ShowSummary is the normalized view of a TV show returned by a search
type ShowSummary struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Summary string `json:"summary"` // HTML fragment as provided by the directory
	Image   string `json:"image"`   // Never empty, see NewShowSummary
}

// SearchResult is one entry of the directory's /search/shows response
type SearchResult struct {
	Score float64 `json:"score"`
	Show  RawShow `json:"show"`
}

// RawShow is the show record as the directory sends it
type RawShow struct {
	ID      int       `json:"id"`
	Name    string    `json:"name"`
	Summary string    `json:"summary"`
	Image   *RawImage `json:"image"`
}

// RawImage holds the poster URLs of a show. The directory sends null when a show has no poster.
type RawImage struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}

// NewShowSummary normalizes a raw show. A missing image object or an empty
// medium URL is replaced with fallbackImage.
func NewShowSummary(raw RawShow, fallbackImage string) ShowSummary {
	image := fallbackImage
	if raw.Image != nil && raw.Image.Medium != "" {
		image = raw.Image.Medium
	}

	return ShowSummary{
		ID:      raw.ID,
		Name:    raw.Name,
		Summary: raw.Summary,
		Image:   image,
	}
}
