package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EpisodeSummary is the normalized view of a single episode of a show
type EpisodeSummary struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Season string `json:"season"`
	Number int    `json:"number"`
}

// RawEpisode is one entry of the directory's /shows/{id}/episodes response
type RawEpisode struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Season Season `json:"season"`
	Number int    `json:"number"`
}

// Season accepts both the numeric form the directory emits and a quoted string.
type Season string

// UnmarshalJSON implements json.Unmarshaler
func (s *Season) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return fmt.Errorf("season: %w", err)
		}
		*s = Season(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("season: %w", err)
	}
	*s = Season(num.String())
	return nil
}

// NewEpisodeSummary selects the episode fields, no defaulting is applied
func NewEpisodeSummary(raw RawEpisode) EpisodeSummary {
	return EpisodeSummary{
		ID:     raw.ID,
		Name:   raw.Name,
		Season: string(raw.Season),
		Number: raw.Number,
	}
}
