package domain

import (
	"context"
	"fmt"
	"strings"
)

// Role is an award or contribution category.
// swagger:model Role
type Role string

const (
	RoleMemeLord           Role = "Meme Lord"
	RoleBugHunter          Role = "Bug Hunter"
	RoleCommunityBuilder   Role = "Community Builder"
	RoleContentCrafter     Role = "Content Crafter"
	RoleNodeRunner         Role = "Node Runner"
	RoleHomestakerSentinel Role = "Homestaker Sentinel"
	RoleContentChronicler  Role = "Content Chronicler"
	RoleProposerCommander  Role = "Proposer Commander"
	RoleHighAttester       Role = "High Attester"

	// RoleAll is the filter wildcard. It is never assigned to a contributor or award.
	RoleAll Role = "All"
)

// KnownRoles is the fixed role set, in display order.
var KnownRoles = []Role{
	RoleMemeLord,
	RoleBugHunter,
	RoleCommunityBuilder,
	RoleContentCrafter,
	RoleNodeRunner,
	RoleHomestakerSentinel,
	RoleContentChronicler,
	RoleProposerCommander,
	RoleHighAttester,
}

// ParseRole resolves s case-insensitively against KnownRoles and RoleAll.
// An empty string parses as RoleAll.
func ParseRole(s string) (Role, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(RoleAll)) {
		return RoleAll, nil
	}
	for _, r := range KnownRoles {
		if strings.EqualFold(s, string(r)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// IsKnown reports whether r is one of KnownRoles.
func (r Role) IsKnown() bool {
	for _, k := range KnownRoles {
		if r == k {
			return true
		}
	}
	return false
}

// RoleRepository lists the roles the board offers as filters.
type RoleRepository interface {
	ListRoles(ctx context.Context) ([]Role, error)
}
