package view

import "github.com/tacogips/altadder/internal/source/model"

// UnknownCardName is shown for trusted sources whose document has no name.
const UnknownCardName = "Unknown"

// Card is the compact summary of a trusted source shown on the home view.
type Card struct {
	URL      string `json:"url"`
	Name     string `json:"name"`
	Subtitle string `json:"subtitle"`
	IconURL  string `json:"iconURL,omitempty"`
}

// ProjectCard derives a trusted source card.
func ProjectCard(doc *model.SourceDocument, url string) Card {
	if doc == nil {
		doc = &model.SourceDocument{}
	}
	return Card{
		URL:      url,
		Name:     doc.Name.Or(UnknownCardName),
		Subtitle: doc.Subtitle.String(),
		IconURL:  doc.IconURL.String(),
	}
}
