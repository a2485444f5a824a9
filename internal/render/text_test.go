package render

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Belphemur/ShowSearch/internal/models"
)

func TestTextRenderer_RenderShows(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf)

	err := r.RenderShows([]models.ShowSummary{
		{ID: 975, Name: "Batman", Summary: "<p>Wham! <b>Bam!</b></p>", Image: "http://x/img.jpg"},
		{ID: 481, Name: "The Batman", Image: "https://tinyurl.com/tv-missing"},
	})
	if err != nil {
		t.Fatalf("RenderShows failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"#975 Batman",
		"  Wham! Bam!\n",
		"image: http://x/img.jpg",
		"#481 The Batman",
		"image: https://tinyurl.com/tv-missing",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<p>") {
		t.Errorf("Expected HTML to be stripped, got:\n%s", out)
	}
	if strings.Index(out, "#975") > strings.Index(out, "#481") {
		t.Error("Expected shows in the given order")
	}
}

func TestTextRenderer_RenderShows_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTextRenderer(&buf).RenderShows(nil); err != nil {
		t.Fatalf("RenderShows failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No shows found.") {
		t.Errorf("Unexpected output: %q", buf.String())
	}
}

func TestTextRenderer_Episodes(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf)

	if r.EpisodesVisible() {
		t.Fatal("Expected episode panel hidden initially")
	}

	err := r.RenderEpisodes([]models.EpisodeSummary{
		{ID: 1, Name: "Pilot", Season: "1", Number: 1},
		{ID: 2, Name: "Second", Season: "1", Number: 2},
	})
	if err != nil {
		t.Fatalf("RenderEpisodes failed: %v", err)
	}
	if !r.EpisodesVisible() {
		t.Error("Expected episode panel visible after RenderEpisodes")
	}

	out := buf.String()
	if !strings.Contains(out, "Pilot (season 1, episode 1)") || !strings.Contains(out, "Second (season 1, episode 2)") {
		t.Errorf("Unexpected episode output:\n%s", out)
	}

	if err := r.HideEpisodes(); err != nil {
		t.Fatalf("HideEpisodes failed: %v", err)
	}
	if r.EpisodesVisible() {
		t.Error("Expected episode panel hidden after HideEpisodes")
	}
}

func TestPlainSummary(t *testing.T) {
	tests := []struct {
		name     string
		summary  string
		expected string
	}{
		{name: "empty", summary: "", expected: ""},
		{name: "whitespace only", summary: "  \n ", expected: ""},
		{name: "plain text", summary: "Just text", expected: "Just text"},
		{name: "nested markup", summary: "<p>A <i>dark</i>\n\n knight</p>", expected: "A dark knight"},
		{name: "entities", summary: "<p>Tom &amp; Jerry</p>", expected: "Tom & Jerry"},
		{name: "decomposed accents", summary: "Cafe\u0301", expected: "Caf\u00e9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlainSummary(tt.summary); got != tt.expected {
				t.Errorf("PlainSummary(%q) = %q, want %q", tt.summary, got, tt.expected)
			}
		})
	}
}

func TestPlainSummary_Truncates(t *testing.T) {
	long := "<p>" + strings.Repeat("é", maxSummaryRunes*2) + "</p>"

	got := PlainSummary(long)
	if n := utf8.RuneCountInString(got); n != maxSummaryRunes {
		t.Errorf("Expected %d runes, got %d", maxSummaryRunes, n)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("Expected ellipsis suffix, got %q", got[len(got)-8:])
	}
	if !utf8.ValidString(got) {
		t.Error("Expected valid UTF-8 after truncation")
	}
}
