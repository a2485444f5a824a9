package render

import (
	"html/template"
	"io"

	"github.com/Belphemur/ShowSearch/internal/models"
)

// The summary comes from the directory as HTML and is emitted as-is; every
// other field is escaped by html/template.
var htmlTemplates = template.Must(template.New("shows").Parse(`{{range .}}<div data-show-id="{{.ID}}" class="Show col-md-12 col-lg-6 mb-4">
  <div class="media">
    <img src="{{.Image}}" alt="{{.Name}}" class="w-25 me-3">
    <div class="media-body">
      <h5 class="text-primary">{{.Name}}</h5>
      <div><small>{{.Summary}}</small></div>
      <button class="btn btn-outline-light btn-sm Show-getEpisodes">Episodes</button>
    </div>
  </div>
</div>
{{end}}`))

func init() {
	template.Must(htmlTemplates.New("episodes").Parse(`<section id="episodesArea">
  <h2>Episodes</h2>
  <ul id="episodesList">
{{- range .}}
    <li>{{.Name}} (season {{.Season}}, episode {{.Number}})</li>
{{- end}}
  </ul>
</section>
`))
	template.Must(htmlTemplates.New("hidden").Parse(`<section id="episodesArea" hidden></section>
`))
}

// htmlShow carries the summary as trusted markup.
type htmlShow struct {
	ID      int
	Name    string
	Summary template.HTML
	Image   string
}

// HTMLRenderer writes the show cards and the episode panel as HTML fragments
type HTMLRenderer struct {
	w io.Writer
}

// NewHTMLRenderer creates a renderer writing to w
func NewHTMLRenderer(w io.Writer) *HTMLRenderer {
	return &HTMLRenderer{w: w}
}

// RenderShows implements services.Renderer
func (h *HTMLRenderer) RenderShows(shows []models.ShowSummary) error {
	cards := make([]htmlShow, 0, len(shows))
	for _, s := range shows {
		cards = append(cards, htmlShow{
			ID:      s.ID,
			Name:    s.Name,
			Summary: template.HTML(s.Summary), //nolint:gosec // directory summaries are HTML by contract
			Image:   s.Image,
		})
	}
	return htmlTemplates.ExecuteTemplate(h.w, "shows", cards)
}

// HideEpisodes implements services.Renderer
func (h *HTMLRenderer) HideEpisodes() error {
	return htmlTemplates.ExecuteTemplate(h.w, "hidden", nil)
}

// RenderEpisodes implements services.Renderer
func (h *HTMLRenderer) RenderEpisodes(episodes []models.EpisodeSummary) error {
	return htmlTemplates.ExecuteTemplate(h.w, "episodes", episodes)
}
