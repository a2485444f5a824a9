package parser

import (
	"strings"
	"testing"

	"github.com/Belphemur/ShowSearch/internal/models"
	"github.com/Belphemur/ShowSearch/internal/testutil"
)

func TestEpisodeParser_Parse(t *testing.T) {
	body := testutil.GenerateEpisodesJSON([]testutil.EpisodeOptions{
		{ID: 1, Name: "Pilot", Season: 1, SeasonAsString: true, Number: 1},
		{ID: 2, Name: "The Fight", Season: 1, Number: 2},
		{ID: 14, Name: "Homecoming", Season: 2, Number: 1},
	})

	episodes, err := NewEpisodeParser().Parse(strings.NewReader(body), "application/json; charset=UTF-8")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	expected := []models.EpisodeSummary{
		{ID: 1, Name: "Pilot", Season: "1", Number: 1},
		{ID: 2, Name: "The Fight", Season: "1", Number: 2},
		{ID: 14, Name: "Homecoming", Season: "2", Number: 1},
	}
	if len(episodes) != len(expected) {
		t.Fatalf("Expected %d episodes, got %d", len(expected), len(episodes))
	}
	for i := range expected {
		if episodes[i] != expected[i] {
			t.Errorf("Episode %d: expected %+v, got %+v", i, expected[i], episodes[i])
		}
	}
}

func TestEpisodeParser_EmptyArray(t *testing.T) {
	episodes, err := NewEpisodeParser().Parse(strings.NewReader("[]"), "")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if episodes == nil || len(episodes) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", episodes)
	}
}

func TestEpisodeParser_InvalidJSON(t *testing.T) {
	episodes, err := NewEpisodeParser().Parse(strings.NewReader(`[{"id":"one"}]`), "")
	if err == nil {
		t.Fatal("Expected error for mistyped id")
	}
	if episodes != nil {
		t.Errorf("Expected no partial results, got %v", episodes)
	}
}
