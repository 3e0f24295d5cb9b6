package helpers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"contributorsboard/internal/adapters/render"
	"contributorsboard/internal/domain"
)

// ParseRole reads a role query parameter. ok is false when the parameter is absent,
// so callers can apply their own default.
func ParseRole(r *http.Request, key string) (role domain.Role, ok bool, err error) {
	s := strings.TrimSpace(r.URL.Query().Get(key))
	if s == "" {
		return "", false, nil
	}
	role, err = domain.ParseRole(s)
	if err != nil {
		return "", true, err
	}
	return role, true, nil
}

// ParseTownHall reads a Town Hall id. Missing, "All" and "0" mean domain.AllTownHalls.
func ParseTownHall(r *http.Request, key string) (int, error) {
	s := strings.TrimSpace(r.URL.Query().Get(key))
	s = strings.TrimPrefix(s, "#")
	if s == "" || strings.EqualFold(s, "all") {
		return domain.AllTownHalls, nil
	}
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid %s %q", key, s)
	}
	return id, nil
}

// ParseState reads the board UI state from the query string. The role is left
// empty when absent; invalid lightbox indexes close the lightbox.
func ParseState(r *http.Request) (render.State, error) {
	q := r.URL.Query()
	st := render.State{
		Query:  q.Get("q"),
		OpenID: q.Get("open"),
		OpenTw: strings.TrimPrefix(strings.TrimSpace(q.Get("tw")), "@"),
		Tab:    render.TabPosts,
		Image:  -1,
	}
	role, _, err := ParseRole(r, "role")
	if err != nil {
		return st, err
	}
	st.Role = role
	if st.TownHall, err = ParseTownHall(r, "th"); err != nil {
		return st, err
	}
	if strings.EqualFold(q.Get("tab"), render.TabGallery) {
		st.Tab = render.TabGallery
	}
	if s := q.Get("img"); s != "" {
		if i, err := strconv.Atoi(s); err == nil && i >= 0 {
			st.Image = i
		}
	}
	return st, nil
}
