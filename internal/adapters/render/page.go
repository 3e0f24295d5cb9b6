package render

import (
	"html/template"
	"net/url"
	"strconv"

	"contributorsboard/internal/adapters/twitter"
	"contributorsboard/internal/domain"
)

// Detail tabs.
const (
	TabPosts   = "posts"
	TabGallery = "gallery"
)

// State is the board's UI state, carried in the query string.
type State struct {
	Query    string
	Role     domain.Role
	TownHall int
	OpenID   string
	OpenTw   string
	Tab      string
	Image    int // lightbox index, -1 when closed
}

// Values encodes s as query parameters, omitting defaults.
func (s State) Values() url.Values {
	v := url.Values{}
	if s.Query != "" {
		v.Set("q", s.Query)
	}
	if s.Role != "" && s.Role != domain.RoleAll {
		v.Set("role", string(s.Role))
	}
	if s.TownHall != domain.AllTownHalls {
		v.Set("th", strconv.Itoa(s.TownHall))
	}
	if s.OpenID != "" {
		v.Set("open", s.OpenID)
	}
	if s.OpenTw != "" {
		v.Set("tw", s.OpenTw)
	}
	if s.Tab != "" && s.Tab != TabPosts {
		v.Set("tab", s.Tab)
	}
	if s.Image >= 0 {
		v.Set("img", strconv.Itoa(s.Image))
	}
	return v
}

// Post is one entry of the Posts tab.
type Post struct {
	URL       string
	StatusID  string
	EmbedHTML template.HTML // empty when the embed could not be resolved
	Fallback  twitter.LinkFallback
}

// Card is a contributor as listed in the People grid.
type Card struct {
	Contributor *domain.Contributor
	Avatar      string
}

// Awardee is an award entry with its resolved avatar.
type Awardee struct {
	Award  domain.Award
	Avatar string
}

// AwardGroup is one Town Hall section of the awards view.
type AwardGroup struct {
	TownHall *domain.TownHall
	Awardees []Awardee
}

// Detail is the open contributor panel.
type Detail struct {
	Contributor *domain.Contributor
	Avatar      string
	Tab         string
	Posts       []Post
	// Lightbox is set when a gallery image is open.
	Lightbox *domain.Lightbox
}

// Page is the view model shared by the awards and people pages.
type Page struct {
	Title    string
	Path     string
	External bool
	Assets   *AssetSet
	State    State

	Roles       []domain.Role // filter pills, RoleAll first on the people page
	TownHallIDs []int         // select options, AllTownHalls first

	Cards  []Card
	Groups []AwardGroup
	Detail *Detail

	ScriptPollAttempts    int
	ScriptPollDelayMillis int
}

// Link returns the page URL for the current state with the given key/value
// overrides applied. Setting a key to "" removes it.
func (p *Page) Link(kv ...string) string {
	return p.LinkTo(p.Path, kv...)
}

// LinkTo is Link on another path; the People/Awards switch uses it.
func (p *Page) LinkTo(path string, kv ...string) string {
	v := p.State.Values()
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] == "" {
			v.Del(kv[i])
			continue
		}
		v.Set(kv[i], kv[i+1])
	}
	if len(v) == 0 {
		return path
	}
	return path + "?" + v.Encode()
}

// CloseLink drops the detail panel and lightbox from the current state.
func (p *Page) CloseLink() string {
	return p.Link("open", "", "tw", "", "tab", "", "img", "")
}

// OpenLink opens the detail panel for a listed contributor.
func (p *Page) OpenLink(c *domain.Contributor) string {
	return p.Link("open", c.ID, "tw", "", "tab", "", "img", "")
}

// OpenHandleLink opens the detail panel for an award handle.
func (p *Page) OpenHandleLink(handle string) string {
	return p.Link("open", "", "tw", handle, "tab", "", "img", "")
}

// ImageLink opens the lightbox at index i.
func (p *Page) ImageLink(i int) string {
	return p.Link("tab", TabGallery, "img", strconv.Itoa(i))
}
