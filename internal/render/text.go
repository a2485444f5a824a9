package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/unicode/norm"

	"github.com/Belphemur/ShowSearch/internal/models"
)

// maxSummaryRunes caps the plain-text summary printed under each show.
const maxSummaryRunes = 280

// TextRenderer prints shows and episodes for a terminal. Styling degrades to
// plain text when w is not a terminal.
type TextRenderer struct {
	w               io.Writer
	title           lipgloss.Style
	muted           lipgloss.Style
	heading         lipgloss.Style
	episodesVisible bool
}

// NewTextRenderer creates a renderer writing to w
func NewTextRenderer(w io.Writer) *TextRenderer {
	r := lipgloss.NewRenderer(w)
	return &TextRenderer{
		w:       w,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#2196F3")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#8a8f98")),
		heading: r.NewStyle().Bold(true).Underline(true),
	}
}

// RenderShows implements services.Renderer
func (t *TextRenderer) RenderShows(shows []models.ShowSummary) error {
	if len(shows) == 0 {
		_, err := fmt.Fprintln(t.w, t.muted.Render("No shows found."))
		return err
	}

	var sb strings.Builder
	for _, show := range shows {
		sb.WriteString(t.title.Render(fmt.Sprintf("#%d %s", show.ID, show.Name)))
		sb.WriteString("\n")
		if summary := PlainSummary(show.Summary); summary != "" {
			sb.WriteString("  ")
			sb.WriteString(summary)
			sb.WriteString("\n")
		}
		sb.WriteString("  ")
		sb.WriteString(t.muted.Render("image: " + show.Image))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(t.w, sb.String())
	return err
}

// HideEpisodes implements services.Renderer. A terminal cannot take back
// printed lines, so hiding only resets the panel state.
func (t *TextRenderer) HideEpisodes() error {
	t.episodesVisible = false
	return nil
}

// RenderEpisodes implements services.Renderer
func (t *TextRenderer) RenderEpisodes(episodes []models.EpisodeSummary) error {
	var sb strings.Builder
	sb.WriteString(t.heading.Render("Episodes"))
	sb.WriteString("\n")
	if len(episodes) == 0 {
		sb.WriteString(t.muted.Render("  No episodes listed."))
		sb.WriteString("\n")
	}
	for _, ep := range episodes {
		fmt.Fprintf(&sb, "  %s (season %s, episode %d)\n", ep.Name, ep.Season, ep.Number)
	}

	if _, err := io.WriteString(t.w, sb.String()); err != nil {
		return err
	}
	t.episodesVisible = true
	return nil
}

// EpisodesVisible reports whether the episode panel is currently shown
func (t *TextRenderer) EpisodesVisible() bool {
	return t.episodesVisible
}

// PlainSummary strips the markup from an HTML summary, collapses whitespace
// and truncates the result to maxSummaryRunes.
func PlainSummary(summary string) string {
	if strings.TrimSpace(summary) == "" {
		return ""
	}

	text := summary
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(summary)); err == nil {
		text = doc.Text()
	}
	text = norm.NFC.String(strings.Join(strings.Fields(text), " "))

	runes := []rune(text)
	if len(runes) > maxSummaryRunes {
		return strings.TrimRight(string(runes[:maxSummaryRunes-1]), " ") + "…"
	}
	return text
}
