package domain

import "context"

// AllTownHalls selects every Town Hall in AwardeesByRole.
const AllTownHalls = 0

// BoardService is the read side of the contributors board.
type BoardService interface {
	// Roles returns the roles offered as People filters, in display order.
	Roles(ctx context.Context) ([]Role, error)
	// FilterContributors returns contributors matching role (RoleAll for any) and query.
	FilterContributors(ctx context.Context, role Role, query string) ([]*Contributor, error)
	// AwardRoles returns the distinct roles that appear in any award, first-seen order.
	AwardRoles(ctx context.Context) ([]Role, error)
	// DefaultAwardRole returns the role preselected in the awards view.
	DefaultAwardRole(ctx context.Context) (Role, error)
	// AwardeesByRole groups awards for role per Town Hall, newest first. townHall is an id or AllTownHalls.
	AwardeesByRole(ctx context.Context, role Role, townHall int) ([]AwardGroup, error)
	// TownHallIDs returns the distinct Town Hall ids, newest first.
	TownHallIDs(ctx context.Context) ([]int, error)
	// ResolveContributor finds a contributor by handle. Returns ErrNotFound on miss.
	ResolveContributor(ctx context.Context, handle string) (*Contributor, error)
	// OpenPerson resolves the detail view target: by id among the contributors
	// matching role and query, else by handle, else a placeholder for the handle.
	// Returns nil when neither id nor handle is given.
	OpenPerson(ctx context.Context, role Role, query, id, handle string) (*Contributor, error)
}

// EmbedFetcher resolves a post URL into embeddable HTML.
type EmbedFetcher interface {
	// Fetch returns the embed markup or ErrEmbedUnavailable once the retry budget is spent.
	Fetch(ctx context.Context, postURL string) (string, error)
}
