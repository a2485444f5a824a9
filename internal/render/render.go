// Package render provides the presentation side of the show browser: a
// terminal renderer and an HTML fragment renderer reproducing the web widget's markup.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/Belphemur/ShowSearch/internal/services"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatHTML = "html"
)

// New returns the renderer for format writing to w.
func New(format string, w io.Writer) (services.Renderer, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return NewTextRenderer(w), nil
	case FormatHTML:
		return NewHTMLRenderer(w), nil
	default:
		return nil, fmt.Errorf("unknown render format %q (want %q or %q)", format, FormatText, FormatHTML)
	}
}
