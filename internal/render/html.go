// Package render turns presentation models into HTML pages and terminal text.
package render

import (
	"embed"
	"html/template"
	"io"

	"github.com/tacogips/altadder/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// SubmitParam marks a request sent by the home page form, as opposed to a
// share link.
const SubmitParam = "submit"

// HomePage is the input form, an optional load error and the trusted cards.
type HomePage struct {
	Input string
	Error string
	Cards []view.Card
}

// SourcePage is a displayed source.
type SourcePage struct {
	Model     view.PresentationModel
	ShareLink string
}

// Links returns the deep links with their custom-scheme URLs marked safe.
// Only URLs built by the projector reach this point.
func (p SourcePage) Links() []Link {
	links := make([]Link, 0, len(p.Model.DeepLinks))
	for _, l := range p.Model.DeepLinks {
		links = append(links, Link{Label: l.Label, Href: template.URL(l.URL)})
	}
	return links
}

// Link is a rendered deep link.
type Link struct {
	Label string
	Href  template.URL
}

// Home writes the home page.
func Home(w io.Writer, page HomePage) error {
	return pages.ExecuteTemplate(w, "home", page)
}

// Source writes the source page.
func Source(w io.Writer, page SourcePage) error {
	return pages.ExecuteTemplate(w, "source", page)
}
