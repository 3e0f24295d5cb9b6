// Package twitter builds avatar, timeline and post embed links for X/Twitter handles.
package twitter

import (
	"net/url"
	"regexp"
)

// Client-side wait for the widgets script: the page polls for twttr.widgets
// this many times, ScriptPollDelayMillis apart, then gives up silently.
const (
	ScriptPollAttempts    = 60
	ScriptPollDelayMillis = 100
)

// Element ids used to inject external assets at most once per page.
const (
	WidgetsScriptID   = "twitter-widgets"
	WidgetsScriptURL  = "https://platform.twitter.com/widgets.js"
	GeistFontCSSID    = "geist-font-css"
	GeistFontCSSURL   = "https://cdn.jsdelivr.net/npm/geist@1.5.1/font/font.css"
	GoogleFontsCSSID  = "aztec-google-fonts"
	GoogleFontsCSSURL = "https://fonts.googleapis.com/css2?family=EB+Garamond:wght@400;500&family=Martel:wght@300;400&family=Workbench&display=swap"
)

// PlaceholderAvatar is served from the embedded static assets.
const PlaceholderAvatar = "/static/avatar-placeholder.svg"

var statusIDRegex = regexp.MustCompile(`status/([0-9]+)`)

// AvatarURL returns the avatar image URL for handle, or "" when handle is
// empty or external resources are disabled.
func AvatarURL(handle string, enabled bool) string {
	if handle == "" || !enabled {
		return ""
	}
	return "https://unavatar.io/twitter/" + url.PathEscape(handle)
}

// AvatarOrPlaceholder is AvatarURL falling back to PlaceholderAvatar.
func AvatarOrPlaceholder(handle string, enabled bool) string {
	if u := AvatarURL(handle, enabled); u != "" {
		return u
	}
	return PlaceholderAvatar
}

// ProfileURL links to the handle's profile page.
func ProfileURL(handle string) string {
	return "https://x.com/" + url.PathEscape(handle)
}

// TimelineURL is the anchor target the widgets script upgrades into a profile timeline.
func TimelineURL(handle string) string {
	return "https://twitter.com/" + url.PathEscape(handle) + "?ref_src=twsrc%5Etfw"
}

// StatusID extracts the numeric post id from a post URL.
func StatusID(postURL string) (string, bool) {
	m := statusIDRegex.FindStringSubmatch(postURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// LinkFallback is the plain-link rendering of a post used when embeds are
// off or unavailable: host and path+query for parseable URLs, the raw string otherwise.
type LinkFallback struct {
	URL  string
	Host string
	Path string
}

// Fallback builds the LinkFallback for postURL.
func Fallback(postURL string) LinkFallback {
	u, err := url.Parse(postURL)
	if err != nil || u.Host == "" {
		return LinkFallback{URL: postURL}
	}
	path := u.EscapedPath()
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	return LinkFallback{URL: postURL, Host: u.Hostname(), Path: path}
}
