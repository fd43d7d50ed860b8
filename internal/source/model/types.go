// Package model defines the source document consumed from remote catalogs.
package model

// SourceDocument is the remote JSON catalog describing one app source.
// Every field is optional; absent values decode to their zero value.
type SourceDocument struct {
	Name        Text    `json:"name,omitempty"`
	Identifier  Text    `json:"identifier,omitempty"`
	SourceURL   Text    `json:"sourceURL,omitempty"`
	Subtitle    Text    `json:"subtitle,omitempty"`
	Description Text    `json:"description,omitempty"`
	IconURL     Text    `json:"iconURL,omitempty"`
	HeaderURL   Text    `json:"headerURL,omitempty"`
	TintColor   Text    `json:"tintColor,omitempty"`
	Website     Text    `json:"website,omitempty"`
	Apps        AppList `json:"apps,omitempty"`
}

// AppEntry is one installable application listed by a source.
type AppEntry struct {
	Name             Text        `json:"name,omitempty"`
	BundleIdentifier Text        `json:"bundleIdentifier,omitempty"`
	IconURL          Text        `json:"iconURL,omitempty"`
	DeveloperName    Text        `json:"developerName,omitempty"`
	Subtitle         Text        `json:"subtitle,omitempty"`
	Versions         VersionList `json:"versions,omitempty"`
}

// VersionEntry is one published version of an app. The first entry of
// AppEntry.Versions is the latest by convention.
type VersionEntry struct {
	Version Text `json:"version,omitempty"`
	Date    Text `json:"date,omitempty"`

	// Valid is set when the entry was a JSON object. null and scalar
	// entries keep their position in the list but are not usable.
	Valid bool `json:"-"`
}

// FirstApp returns the first app of the document, if any.
func (d *SourceDocument) FirstApp() (AppEntry, bool) {
	if len(d.Apps) == 0 {
		return AppEntry{}, false
	}
	return d.Apps[0], true
}

// Latest returns the first version entry of the app. It reports false when
// the list is empty or its first entry is not an object.
func (a *AppEntry) Latest() (VersionEntry, bool) {
	if len(a.Versions) == 0 || !a.Versions[0].Valid {
		return VersionEntry{}, false
	}
	return a.Versions[0], true
}
