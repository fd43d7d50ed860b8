package view

import (
	"github.com/tacogips/altadder/internal/source/trust"
	"github.com/tacogips/altadder/internal/urlutil"
)

// Installer identifies an external installer application.
type Installer string

// Supported installers, in display order.
const (
	AltStore      Installer = "altstore"
	SideStore     Installer = "sidestore"
	Feather       Installer = "feather"
	LiveContainer Installer = "livecontainer"
)

// liveContainerMarker is appended to LiveContainer deep links.
const liveContainerMarker = "via=altadder"

// DeepLink is a custom-scheme URI handing a source to an installer.
type DeepLink struct {
	Installer Installer `json:"installer"`
	Label     string    `json:"label"`
	URL       string    `json:"url"`
}

// DeepLinks formats the installer deep links for resolvedURL. The
// LiveContainer link is omitted for LiveContainer's own catalog.
func DeepLinks(resolvedURL string, registry *trust.Registry) []DeepLink {
	enc := urlutil.EncodeComponent(resolvedURL)

	links := []DeepLink{
		{
			Installer: AltStore,
			Label:     "Add to AltStore",
			URL:       "altstore://source?url=" + enc,
		},
		{
			Installer: SideStore,
			Label:     "Add to SideStore",
			URL:       "sidestore://source?url=" + enc,
		},
		{
			Installer: Feather,
			Label:     "Add to Feather",
			URL:       "feather://source/" + enc,
		},
	}

	if registry == nil || !registry.IsSelfReferential(resolvedURL) {
		links = append(links, DeepLink{
			Installer: LiveContainer,
			Label:     "Add to LiveContainer",
			URL:       "livecontainer://source?url=" + enc + "&" + liveContainerMarker,
		})
	}
	return links
}
