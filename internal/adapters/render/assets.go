package render

import "contributorsboard/internal/adapters/twitter"

// Asset kinds.
const (
	AssetScript     = "script"
	AssetStylesheet = "stylesheet"
)

// Asset is an external script or stylesheet tag identified by its element id.
type Asset struct {
	ID   string
	Kind string
	URL  string
}

// AssetSet is an ordered set of assets keyed by element id.
type AssetSet struct {
	assets []Asset
	ids    map[string]struct{}
}

// Add appends a unless an asset with the same id is already present.
// It reports whether a was added.
func (s *AssetSet) Add(a Asset) bool {
	if s.ids == nil {
		s.ids = make(map[string]struct{})
	}
	if _, ok := s.ids[a.ID]; ok {
		return false
	}
	s.ids[a.ID] = struct{}{}
	s.assets = append(s.assets, a)
	return true
}

// Scripts returns the script assets in insertion order.
func (s *AssetSet) Scripts() []Asset { return s.byKind(AssetScript) }

// Stylesheets returns the stylesheet assets in insertion order.
func (s *AssetSet) Stylesheets() []Asset { return s.byKind(AssetStylesheet) }

func (s *AssetSet) byKind(kind string) []Asset {
	var out []Asset
	for _, a := range s.assets {
		if a.Kind == kind {
			out = append(out, a)
		}
	}
	return out
}

// Len returns the number of distinct assets.
func (s *AssetSet) Len() int { return len(s.assets) }

// ExternalAssets returns the fonts and the widgets script, or an empty set when external resources are disabled.
func ExternalAssets(enabled bool) *AssetSet {
	s := &AssetSet{}
	if !enabled {
		return s
	}
	s.Add(Asset{ID: twitter.GeistFontCSSID, Kind: AssetStylesheet, URL: twitter.GeistFontCSSURL})
	s.Add(Asset{ID: twitter.GoogleFontsCSSID, Kind: AssetStylesheet, URL: twitter.GoogleFontsCSSURL})
	s.Add(Asset{ID: twitter.WidgetsScriptID, Kind: AssetScript, URL: twitter.WidgetsScriptURL})
	return s
}
