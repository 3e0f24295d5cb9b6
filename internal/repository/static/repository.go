package static

import (
	"context"

	"contributorsboard/internal/domain"
)

// Repository implements the domain repositories over an in-memory Dataset.
// Callers receive copies of the slices; the records themselves are shared and must not be mutated.
type Repository struct {
	ds *domain.Dataset
}

var (
	_ domain.RoleRepository        = (*Repository)(nil)
	_ domain.ContributorRepository = (*Repository)(nil)
	_ domain.TownHallRepository    = (*Repository)(nil)
)

// NewRepository returns a Repository serving ds.
func NewRepository(ds *domain.Dataset) *Repository {
	return &Repository{ds: ds}
}

func (r *Repository) ListRoles(ctx context.Context) ([]domain.Role, error) {
	return append([]domain.Role(nil), r.ds.Roles...), nil
}

func (r *Repository) ListContributors(ctx context.Context) ([]*domain.Contributor, error) {
	return append([]*domain.Contributor(nil), r.ds.Contributors...), nil
}

func (r *Repository) GetByTwitter(ctx context.Context, handle string) (*domain.Contributor, error) {
	if c := domain.FindByTwitter(r.ds.Contributors, handle); c != nil {
		return c, nil
	}
	return nil, domain.ErrNotFound
}

func (r *Repository) ListTownHalls(ctx context.Context) ([]*domain.TownHall, error) {
	return append([]*domain.TownHall(nil), r.ds.TownHalls...), nil
}
