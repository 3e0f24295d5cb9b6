package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"contributorsboard/internal/domain"
)

type boardService struct {
	roleRepo        domain.RoleRepository
	contributorRepo domain.ContributorRepository
	townHallRepo    domain.TownHallRepository
	contextTimeout  time.Duration
}

func NewBoardService(roleRepo domain.RoleRepository,
	contributorRepo domain.ContributorRepository,
	townHallRepo domain.TownHallRepository,
	timeout time.Duration,
) domain.BoardService {
	return &boardService{
		roleRepo:        roleRepo,
		contributorRepo: contributorRepo,
		townHallRepo:    townHallRepo,
		contextTimeout:  timeout,
	}
}

func (s *boardService) Roles(ctx context.Context) ([]domain.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	roles, err := s.roleRepo.ListRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

func (s *boardService) FilterContributors(ctx context.Context, role domain.Role, query string) ([]*domain.Contributor, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	list, err := s.contributorRepo.ListContributors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contributors: %w", err)
	}
	return FilterContributors(list, role, query), nil
}

func (s *boardService) AwardRoles(ctx context.Context) ([]domain.Role, error) {
	townHalls, err := s.townHalls(ctx)
	if err != nil {
		return nil, err
	}
	return AwardRoles(townHalls), nil
}

func (s *boardService) DefaultAwardRole(ctx context.Context) (domain.Role, error) {
	roles, err := s.AwardRoles(ctx)
	if err != nil {
		return "", err
	}
	if slices.Contains(roles, domain.RoleMemeLord) {
		return domain.RoleMemeLord, nil
	}
	return domain.RoleAll, nil
}

func (s *boardService) AwardeesByRole(ctx context.Context, role domain.Role, townHall int) ([]domain.AwardGroup, error) {
	townHalls, err := s.townHalls(ctx)
	if err != nil {
		return nil, err
	}
	return AwardeesByRole(townHalls, role, townHall), nil
}

func (s *boardService) TownHallIDs(ctx context.Context) ([]int, error) {
	townHalls, err := s.townHalls(ctx)
	if err != nil {
		return nil, err
	}
	return TownHallIDs(townHalls), nil
}

func (s *boardService) ResolveContributor(ctx context.Context, handle string) (*domain.Contributor, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")
	c, err := s.contributorRepo.GetByTwitter(ctx, handle)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get contributor by twitter: %w", err)
	}
	return c, nil
}

func (s *boardService) OpenPerson(ctx context.Context, role domain.Role, query, id, handle string) (*domain.Contributor, error) {
	if id == "" && handle == "" {
		return nil, nil
	}
	if id != "" {
		filtered, err := s.FilterContributors(ctx, role, query)
		if err != nil {
			return nil, err
		}
		for _, c := range filtered {
			if c.ID == id {
				return c, nil
			}
		}
	}
	if handle == "" {
		return nil, nil
	}
	c, err := s.ResolveContributor(ctx, handle)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewPlaceholderContributor(strings.TrimPrefix(strings.TrimSpace(handle), "@")), nil
	}
	return c, err
}

func (s *boardService) townHalls(ctx context.Context) ([]*domain.TownHall, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	townHalls, err := s.townHallRepo.ListTownHalls(ctx)
	if err != nil {
		return nil, fmt.Errorf("list town halls: %w", err)
	}
	return townHalls, nil
}

// FilterContributors keeps contributors holding role (any role for RoleAll)
// whose display name, Discord or Twitter handle contains query, ignoring case.
// The input order is preserved.
func FilterContributors(list []*domain.Contributor, role domain.Role, query string) []*domain.Contributor {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))
	out := make([]*domain.Contributor, 0, len(list))
	for _, c := range list {
		if role != domain.RoleAll && !c.HasRole(role) {
			continue
		}
		if q != "" &&
			!strings.Contains(fold.String(c.DisplayName), q) &&
			!strings.Contains(fold.String(c.Discord), q) &&
			!strings.Contains(fold.String(c.Twitter), q) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// AwardRoles returns the distinct roles awarded across townHalls, in first-seen order.
func AwardRoles(townHalls []*domain.TownHall) []domain.Role {
	seen := make(map[domain.Role]struct{})
	roles := []domain.Role{}
	for _, th := range townHalls {
		for _, a := range th.Awards {
			if _, ok := seen[a.Role]; ok {
				continue
			}
			seen[a.Role] = struct{}{}
			roles = append(roles, a.Role)
		}
	}
	return roles
}

// AwardeesByRole returns one group per Town Hall (only the one with id
// townHall unless it is domain.AllTownHalls), newest first, each holding the
// awards for role in issue order.
func AwardeesByRole(townHalls []*domain.TownHall, role domain.Role, townHall int) []domain.AwardGroup {
	selected := make([]*domain.TownHall, 0, len(townHalls))
	for _, th := range townHalls {
		if townHall == domain.AllTownHalls || th.ID == townHall {
			selected = append(selected, th)
		}
	}
	slices.SortStableFunc(selected, func(a, b *domain.TownHall) int { return b.ID - a.ID })

	groups := make([]domain.AwardGroup, 0, len(selected))
	for _, th := range selected {
		awardees := []domain.Award{}
		for _, a := range th.Awards {
			if a.Role == role {
				awardees = append(awardees, a)
			}
		}
		groups = append(groups, domain.AwardGroup{TownHall: th, Awardees: awardees})
	}
	return groups
}

// TownHallIDs returns the distinct Town Hall ids, newest first.
func TownHallIDs(townHalls []*domain.TownHall) []int {
	ids := make([]int, 0, len(townHalls))
	for _, th := range townHalls {
		ids = append(ids, th.ID)
	}
	slices.Sort(ids)
	ids = slices.Compact(ids)
	slices.Reverse(ids)
	return ids
}
