package domain

import (
	"context"

	"golang.org/x/text/cases"
)

// GalleryItem is an image shown in a contributor's gallery and lightbox.
// swagger:model GalleryItem
type GalleryItem struct {
	Src     string `json:"src" yaml:"src"`
	Href    string `json:"href,omitempty" yaml:"href,omitempty"`
	Caption string `json:"caption,omitempty" yaml:"caption,omitempty"`
}

// Contributor is a person listed in the directory.
// swagger:model Contributor
type Contributor struct {
	ID          string        `json:"id" yaml:"id"`
	DisplayName string        `json:"display_name" yaml:"display_name"`
	Discord     string        `json:"discord,omitempty" yaml:"discord,omitempty"`
	Twitter     string        `json:"twitter,omitempty" yaml:"twitter,omitempty"` // without @
	Roles       []Role        `json:"roles" yaml:"roles"`
	Bio         string        `json:"bio,omitempty" yaml:"bio,omitempty"`
	Tweets      []string      `json:"tweets" yaml:"tweets,omitempty"` // post URLs
	Gallery     []GalleryItem `json:"gallery" yaml:"gallery,omitempty"`
}

// NewPlaceholderContributor returns the synthetic record shown for a handle
// that has no matching contributor.
func NewPlaceholderContributor(handle string) *Contributor {
	return &Contributor{
		ID:          "virtual-" + handle,
		DisplayName: handle,
		Twitter:     handle,
		Roles:       []Role{},
		Tweets:      []string{},
		Gallery:     []GalleryItem{},
	}
}

// HasRole reports whether the contributor holds role r.
func (c *Contributor) HasRole(r Role) bool {
	for _, cr := range c.Roles {
		if cr == r {
			return true
		}
	}
	return false
}

// IsPlaceholder reports whether c was synthesized for an unresolved handle.
func (c *Contributor) IsPlaceholder() bool {
	return c.ID == "virtual-"+c.Twitter && len(c.Roles) == 0 && c.Bio == ""
}

// FindByTwitter returns the contributor whose handle equals handle ignoring case, or nil.
func FindByTwitter(list []*Contributor, handle string) *Contributor {
	if handle == "" {
		return nil
	}
	fold := cases.Fold()
	want := fold.String(handle)
	for _, c := range list {
		if c.Twitter != "" && fold.String(c.Twitter) == want {
			return c
		}
	}
	return nil
}

// ContributorRepository defines read access to the roster.
type ContributorRepository interface {
	// ListContributors returns the roster in curated order.
	ListContributors(ctx context.Context) ([]*Contributor, error)
	// GetByTwitter resolves a contributor by case-insensitive handle. Returns ErrNotFound on miss.
	GetByTwitter(ctx context.Context, handle string) (*Contributor, error)
}
