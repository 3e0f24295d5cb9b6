package domain

import (
	"fmt"
	"strings"
)

// Dataset is the full board content: the role set, the roster and the Town Halls.
// It is loaded once and treated as read-only afterwards.
type Dataset struct {
	Roles        []Role         `json:"roles" yaml:"roles"`
	Contributors []*Contributor `json:"contributors" yaml:"contributors"`
	TownHalls    []*TownHall    `json:"town_halls" yaml:"town_halls"`
}

// Validate checks that every role tag is drawn from d.Roles (which must itself
// be a subset of KnownRoles), contributor ids are unique and non-empty, and
// Town Hall ids are unique and positive.
func (d *Dataset) Validate() error {
	var errs []string
	roles := make(map[Role]struct{}, len(d.Roles))
	for _, r := range d.Roles {
		if !r.IsKnown() {
			errs = append(errs, fmt.Sprintf("role %q is not a known role", r))
		}
		roles[r] = struct{}{}
	}

	ids := make(map[string]struct{}, len(d.Contributors))
	for i, c := range d.Contributors {
		if c == nil {
			errs = append(errs, fmt.Sprintf("contributor #%d is empty", i))
			continue
		}
		if c.ID == "" {
			errs = append(errs, fmt.Sprintf("contributor #%d has no id", i))
		} else if _, dup := ids[c.ID]; dup {
			errs = append(errs, fmt.Sprintf("duplicate contributor id %q", c.ID))
		}
		ids[c.ID] = struct{}{}
		if c.DisplayName == "" {
			errs = append(errs, fmt.Sprintf("contributor %q has no display_name", c.ID))
		}
		for _, r := range c.Roles {
			if _, ok := roles[r]; !ok {
				errs = append(errs, fmt.Sprintf("contributor %q has unknown role %q", c.ID, r))
			}
		}
	}

	halls := make(map[int]struct{}, len(d.TownHalls))
	for i, th := range d.TownHalls {
		if th == nil {
			errs = append(errs, fmt.Sprintf("town hall #%d is empty", i))
			continue
		}
		if th.ID <= 0 {
			errs = append(errs, fmt.Sprintf("town hall #%d has non-positive id %d", i, th.ID))
		} else if _, dup := halls[th.ID]; dup {
			errs = append(errs, fmt.Sprintf("duplicate town hall id %d", th.ID))
		}
		halls[th.ID] = struct{}{}
		for _, a := range th.Awards {
			if _, ok := roles[a.Role]; !ok {
				errs = append(errs, fmt.Sprintf("town hall %d has award with unknown role %q", th.ID, a.Role))
			}
			if a.Twitter == "" {
				errs = append(errs, fmt.Sprintf("town hall %d has award %q without a handle", th.ID, a.Role))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDataset, strings.Join(errs, "; "))
	}
	return nil
}
