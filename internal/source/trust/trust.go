// Package trust holds the curated allow-list of known-good source URLs.
package trust

// Well-known catalog URLs.
const (
	AltStoreURL      = "https://cdn.altstore.io/file/altstore/apps.json"
	SideStoreURL     = "https://community-apps.sidestore.io/sidecommunity.json"
	LiveContainerURL = "https://raw.githubusercontent.com/LiveContainer/LiveContainer/refs/heads/main/apps.json"
)

// Registry is an immutable set of trusted source URLs matched by exact string
// equality. No normalization is applied.
type Registry struct {
	urls []string
	set  map[string]struct{}
	self string
}

// New creates a registry from urls. selfReferential names the catalog that an
// installer publishes itself; it may be empty.
func New(urls []string, selfReferential string) *Registry {
	r := &Registry{
		urls: make([]string, 0, len(urls)),
		set:  make(map[string]struct{}, len(urls)),
		self: selfReferential,
	}
	for _, u := range urls {
		if _, dup := r.set[u]; dup {
			continue
		}
		r.set[u] = struct{}{}
		r.urls = append(r.urls, u)
	}
	return r
}

var defaultRegistry = New([]string{
	AltStoreURL,
	SideStoreURL,
	LiveContainerURL,
}, LiveContainerURL)

// Default returns the process-wide registry of trusted sources.
func Default() *Registry {
	return defaultRegistry
}

// Contains reports whether url is a trusted source.
func (r *Registry) Contains(url string) bool {
	_, ok := r.set[url]
	return ok
}

// IsSelfReferential reports whether url is the installer-published catalog
// that must not be offered for import into that same installer.
func (r *Registry) IsSelfReferential(url string) bool {
	return r.self != "" && url == r.self
}

// URLs returns the trusted URLs in declaration order.
func (r *Registry) URLs() []string {
	out := make([]string, len(r.urls))
	copy(out, r.urls)
	return out
}
