// Package view projects a parsed source document into a fully-defined
// presentation model. Projection is pure: it never mutates the document and
// performs no I/O.
package view

import (
	"github.com/tacogips/altadder/internal/source/model"
	"github.com/tacogips/altadder/internal/source/trust"
)

// Placeholder strings used when the document omits a field.
const (
	UnknownSource    = "Unknown Source"
	UnknownDeveloper = "Unknown Developer"
	NoVersions       = "No versions"
	NoApps           = "No apps in this source"
	DefaultFill      = "#f5f5f5"
)

// Banner is the header area of the source view: an image, or a solid fill
// when no image is available.
type Banner struct {
	ImageURL  string `json:"imageURL,omitempty"`
	FillColor string `json:"fillColor,omitempty"`
}

// HasImage reports whether the banner renders an image.
func (b Banner) HasImage() bool {
	return b.ImageURL != ""
}

// Website is the optional website link; its label is the URL itself.
type Website struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}

// AppRow is one rendered app entry.
type AppRow struct {
	IconURL      string `json:"iconURL,omitempty"`
	Name         string `json:"name"`
	Developer    string `json:"developer"`
	Subtitle     string `json:"subtitle"`
	VersionLabel string `json:"versionLabel"`
}

// PresentationModel is everything the source view renders.
type PresentationModel struct {
	SourceURL   string     `json:"sourceURL"`
	Banner      Banner     `json:"banner"`
	Name        string     `json:"name"`
	Trusted     bool       `json:"trusted"`
	Subtitle    string     `json:"subtitle"`
	IconURL     string     `json:"iconURL,omitempty"`
	Description string     `json:"description"`
	Website     *Website   `json:"website,omitempty"`
	DeepLinks   []DeepLink `json:"deepLinks"`
	Apps        []AppRow   `json:"apps"`
	// Placeholder is set, and Apps empty, when the source lists no apps.
	Placeholder string `json:"placeholder,omitempty"`
}

// Project derives the presentation model for doc loaded from resolvedURL.
// It is total: every field has a defined fallback.
func Project(doc *model.SourceDocument, resolvedURL string, registry *trust.Registry) PresentationModel {
	if doc == nil {
		doc = &model.SourceDocument{}
	}
	if registry == nil {
		registry = trust.Default()
	}

	pm := PresentationModel{
		SourceURL:   resolvedURL,
		Banner:      projectBanner(doc),
		Name:        doc.Name.Or(UnknownSource),
		Trusted:     registry.Contains(resolvedURL),
		Subtitle:    doc.Subtitle.String(),
		IconURL:     projectIcon(doc),
		Description: doc.Description.String(),
		DeepLinks:   DeepLinks(resolvedURL, registry),
	}

	if !doc.Website.IsZero() {
		pm.Website = &Website{
			URL:   doc.Website.String(),
			Label: doc.Website.String(),
		}
	}

	pm.Apps, pm.Placeholder = projectApps(doc.Apps)
	return pm
}

// firstAppIcon returns the icon of the first app, or "".
func firstAppIcon(doc *model.SourceDocument) string {
	first, ok := doc.FirstApp()
	if !ok {
		return ""
	}
	return first.IconURL.String()
}

func projectBanner(doc *model.SourceDocument) Banner {
	switch {
	case !doc.HeaderURL.IsZero():
		return Banner{ImageURL: doc.HeaderURL.String()}
	case !doc.IconURL.IsZero():
		return Banner{ImageURL: doc.IconURL.String()}
	}
	if icon := firstAppIcon(doc); icon != "" {
		return Banner{ImageURL: icon}
	}
	return Banner{FillColor: doc.TintColor.Or(DefaultFill)}
}

func projectIcon(doc *model.SourceDocument) string {
	if !doc.IconURL.IsZero() {
		return doc.IconURL.String()
	}
	return firstAppIcon(doc)
}

func projectApps(apps model.AppList) ([]AppRow, string) {
	if len(apps) == 0 {
		return []AppRow{}, NoApps
	}

	rows := make([]AppRow, 0, len(apps))
	for i := range apps {
		app := &apps[i]
		rows = append(rows, AppRow{
			IconURL:      app.IconURL.String(),
			Name:         app.Name.String(),
			Developer:    app.DeveloperName.Or(UnknownDeveloper),
			Subtitle:     app.Subtitle.String(),
			VersionLabel: versionLabel(app),
		})
	}
	return rows, ""
}

func versionLabel(app *model.AppEntry) string {
	latest, ok := app.Latest()
	if !ok {
		return NoVersions
	}
	return "v" + latest.Version.String()
}
