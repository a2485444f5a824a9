package testutil

import (
	"encoding/json"
)

// ShowOptions contains options for generating a search result entry
type ShowOptions struct {
	ID      int
	Name    string
	Summary string
	// MediumImage is emitted as image.medium. When empty and NullImage is false,
	// the image object is emitted without a medium URL.
	MediumImage string
	NullImage   bool
}

// EpisodeOptions contains options for generating an episode entry.
// Season is emitted as a JSON number unless SeasonAsString is set.
type EpisodeOptions struct {
	ID             int
	Name           string
	Season         int
	SeasonAsString bool
	Number         int
}

// GenerateSearchJSON generates a /search/shows response body shaped like the TVmaze API
func GenerateSearchJSON(shows []ShowOptions) string {
	results := make([]map[string]any, 0, len(shows))
	for i, s := range shows {
		show := map[string]any{
			"id":       s.ID,
			"name":     s.Name,
			"summary":  s.Summary,
			"language": "English",
			"url":      "https://www.tvmaze.com/shows/" + itoa(s.ID),
		}
		switch {
		case s.NullImage:
			show["image"] = nil
		case s.MediumImage != "":
			show["image"] = map[string]any{"medium": s.MediumImage, "original": s.MediumImage + "?original"}
		default:
			show["image"] = map[string]any{"original": "https://static.tvmaze.com/original.jpg"}
		}
		results = append(results, map[string]any{
			"score": 1.0 / float64(i+1),
			"show":  show,
		})
	}
	return mustMarshal(results)
}

// GenerateEpisodesJSON generates a /shows/{id}/episodes response body shaped like the TVmaze API
func GenerateEpisodesJSON(episodes []EpisodeOptions) string {
	out := make([]map[string]any, 0, len(episodes))
	for _, e := range episodes {
		var season any = e.Season
		if e.SeasonAsString {
			season = itoa(e.Season)
		}
		out = append(out, map[string]any{
			"id":      e.ID,
			"name":    e.Name,
			"season":  season,
			"number":  e.Number,
			"airdate": "2013-06-24",
			"runtime": 60,
		})
	}
	return mustMarshal(out)
}

func itoa(v int) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func mustMarshal(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
