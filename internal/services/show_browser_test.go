package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/Belphemur/ShowSearch/internal/models"
)

// mockClient implements client.Client for testing
type mockClient struct {
	searchShowsFunc func(ctx context.Context, term string) ([]models.ShowSummary, error)
	getEpisodesFunc func(ctx context.Context, showID int) ([]models.EpisodeSummary, error)
}

func (m *mockClient) SearchShows(ctx context.Context, term string) ([]models.ShowSummary, error) {
	if m.searchShowsFunc != nil {
		return m.searchShowsFunc(ctx, term)
	}
	return []models.ShowSummary{}, nil
}

func (m *mockClient) GetEpisodes(ctx context.Context, showID int) ([]models.EpisodeSummary, error) {
	if m.getEpisodesFunc != nil {
		return m.getEpisodesFunc(ctx, showID)
	}
	return []models.EpisodeSummary{}, nil
}

func (m *mockClient) Close() error {
	return nil
}

// recordingRenderer records every call in order
type recordingRenderer struct {
	calls    []string
	shows    []models.ShowSummary
	episodes []models.EpisodeSummary
	failOn   string
}

func (r *recordingRenderer) record(call string) error {
	r.calls = append(r.calls, call)
	if r.failOn == call {
		return errors.New(call + " failed")
	}
	return nil
}

func (r *recordingRenderer) RenderShows(shows []models.ShowSummary) error {
	r.shows = shows
	return r.record("RenderShows")
}

func (r *recordingRenderer) HideEpisodes() error {
	return r.record("HideEpisodes")
}

func (r *recordingRenderer) RenderEpisodes(episodes []models.EpisodeSummary) error {
	r.episodes = episodes
	return r.record("RenderEpisodes")
}

func TestShowBrowser_HandleSearch(t *testing.T) {
	expected := []models.ShowSummary{
		{ID: 975, Name: "Batman", Summary: "<p>Bam</p>", Image: "http://x/img.jpg"},
		{ID: 481, Name: "The Batman", Image: "https://tinyurl.com/tv-missing"},
	}
	var gotTerm string
	mc := &mockClient{searchShowsFunc: func(_ context.Context, term string) ([]models.ShowSummary, error) {
		gotTerm = term
		return expected, nil
	}}
	renderer := &recordingRenderer{}

	shows, err := NewShowBrowser(mc, renderer).HandleSearch(context.Background(), "batman")
	if err != nil {
		t.Fatalf("HandleSearch failed: %v", err)
	}

	if gotTerm != "batman" {
		t.Errorf("Expected term 'batman', got %q", gotTerm)
	}
	if !reflect.DeepEqual(shows, expected) {
		t.Errorf("Expected %+v, got %+v", expected, shows)
	}
	if !reflect.DeepEqual(renderer.calls, []string{"HideEpisodes", "RenderShows"}) {
		t.Errorf("Unexpected renderer calls: %v", renderer.calls)
	}
	if !reflect.DeepEqual(renderer.shows, expected) {
		t.Errorf("Renderer received %+v", renderer.shows)
	}
}

func TestShowBrowser_HandleSearch_EmptyTermForwarded(t *testing.T) {
	called := false
	mc := &mockClient{searchShowsFunc: func(_ context.Context, term string) ([]models.ShowSummary, error) {
		called = true
		if term != "" {
			t.Errorf("Expected empty term, got %q", term)
		}
		return []models.ShowSummary{}, nil
	}}
	renderer := &recordingRenderer{}

	shows, err := NewShowBrowser(mc, renderer).HandleSearch(context.Background(), "")
	if err != nil {
		t.Fatalf("HandleSearch failed: %v", err)
	}
	if !called {
		t.Fatal("Expected the search to be issued for an empty term")
	}
	if shows == nil || len(shows) != 0 {
		t.Errorf("Expected empty list, got %#v", shows)
	}
	if len(renderer.calls) != 2 {
		t.Errorf("Expected an empty list to still be rendered, got calls %v", renderer.calls)
	}
}

func TestShowBrowser_HandleSearch_FailureRendersNothing(t *testing.T) {
	remoteErr := errors.New("remote call failed")
	mc := &mockClient{searchShowsFunc: func(context.Context, string) ([]models.ShowSummary, error) {
		return nil, remoteErr
	}}
	renderer := &recordingRenderer{}

	shows, err := NewShowBrowser(mc, renderer).HandleSearch(context.Background(), "batman")
	if !errors.Is(err, remoteErr) {
		t.Fatalf("Expected the remote error to propagate, got: %v", err)
	}
	if shows != nil {
		t.Errorf("Expected no results, got %v", shows)
	}
	if len(renderer.calls) != 0 {
		t.Errorf("Expected renderer to be untouched, got calls %v", renderer.calls)
	}
}

func TestShowBrowser_HandleSearch_RenderFailure(t *testing.T) {
	mc := &mockClient{}
	renderer := &recordingRenderer{failOn: "RenderShows"}

	if _, err := NewShowBrowser(mc, renderer).HandleSearch(context.Background(), "x"); err == nil {
		t.Fatal("Expected render failure to be reported")
	}
}

func TestShowBrowser_HandleEpisodes(t *testing.T) {
	expected := []models.EpisodeSummary{{ID: 1, Name: "Pilot", Season: "1", Number: 1}}
	var gotID int
	mc := &mockClient{getEpisodesFunc: func(_ context.Context, showID int) ([]models.EpisodeSummary, error) {
		gotID = showID
		return expected, nil
	}}
	renderer := &recordingRenderer{}

	episodes, err := NewShowBrowser(mc, renderer).HandleEpisodes(context.Background(), 1)
	if err != nil {
		t.Fatalf("HandleEpisodes failed: %v", err)
	}
	if gotID != 1 {
		t.Errorf("Expected show id 1, got %d", gotID)
	}
	if !reflect.DeepEqual(episodes, expected) {
		t.Errorf("Expected %+v, got %+v", expected, episodes)
	}
	if !reflect.DeepEqual(renderer.calls, []string{"RenderEpisodes"}) {
		t.Errorf("Unexpected renderer calls: %v", renderer.calls)
	}
}

func TestShowBrowser_HandleEpisodes_FailureRendersNothing(t *testing.T) {
	remoteErr := errors.New("404")
	mc := &mockClient{getEpisodesFunc: func(context.Context, int) ([]models.EpisodeSummary, error) {
		return nil, remoteErr
	}}
	renderer := &recordingRenderer{}

	_, err := NewShowBrowser(mc, renderer).HandleEpisodes(context.Background(), 7)
	if !errors.Is(err, remoteErr) {
		t.Fatalf("Expected the remote error to propagate, got: %v", err)
	}
	if len(renderer.calls) != 0 {
		t.Errorf("Expected renderer to be untouched, got calls %v", renderer.calls)
	}
}
