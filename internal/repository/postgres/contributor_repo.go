package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"contributorsboard/internal/domain"
)

type contributorRepository struct {
	DB *sql.DB
}

// NewContributorRepository returns a domain.ContributorRepository implemented with Postgres.
func NewContributorRepository(db *sql.DB) domain.ContributorRepository {
	return &contributorRepository{DB: db}
}

const contributorColumns = `id, display_name, discord, twitter, roles, bio, tweets`

func (r *contributorRepository) ListContributors(ctx context.Context) ([]*domain.Contributor, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+contributorColumns+` FROM contributors ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contributors := []*domain.Contributor{}
	var ids []string
	for rows.Next() {
		c, err := scanContributor(rows)
		if err != nil {
			return nil, err
		}
		contributors = append(contributors, c)
		ids = append(ids, c.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return contributors, nil
	}
	if err := r.attachGalleries(ctx, contributors, ids); err != nil {
		return nil, err
	}
	return contributors, nil
}

func (r *contributorRepository) GetByTwitter(ctx context.Context, handle string) (*domain.Contributor, error) {
	if handle == "" {
		return nil, domain.ErrNotFound
	}
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+contributorColumns+`
		FROM contributors
		WHERE lower(twitter) = lower($1)
		ORDER BY position
		LIMIT 1
	`, handle)
	c, err := scanContributor(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := r.attachGalleries(ctx, []*domain.Contributor{c}, []string{c.ID}); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *contributorRepository) attachGalleries(ctx context.Context, contributors []*domain.Contributor, ids []string) error {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT contributor_id, src, href, caption
		FROM gallery_items
		WHERE contributor_id = ANY($1)
		ORDER BY contributor_id, position
	`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	byContributor := make(map[string][]domain.GalleryItem)
	for rows.Next() {
		var contributorID string
		var item domain.GalleryItem
		var href, caption sql.NullString
		if err := rows.Scan(&contributorID, &item.Src, &href, &caption); err != nil {
			return err
		}
		item.Href = href.String
		item.Caption = caption.String
		byContributor[contributorID] = append(byContributor[contributorID], item)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	for _, c := range contributors {
		if g := byContributor[c.ID]; g != nil {
			c.Gallery = g
		}
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanContributor(s scanner) (*domain.Contributor, error) {
	c := &domain.Contributor{Gallery: []domain.GalleryItem{}}
	var discord, twitter, bio sql.NullString
	var roles, tweets []string
	if err := s.Scan(&c.ID, &c.DisplayName, &discord, &twitter, pq.Array(&roles), &bio, pq.Array(&tweets)); err != nil {
		return nil, err
	}
	c.Discord = discord.String
	c.Twitter = twitter.String
	c.Bio = bio.String
	c.Roles = make([]domain.Role, len(roles))
	for i, role := range roles {
		c.Roles[i] = domain.Role(role)
	}
	c.Tweets = nonNil(tweets)
	return c, nil
}
