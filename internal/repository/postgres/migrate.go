package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/lib/pq"

	"contributorsboard/internal/domain"
)

//go:embed schema.sql
var schema string

// Migrate creates the board tables if they do not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Seed replaces the board content with ds in a single transaction.
func Seed(ctx context.Context, db *sql.DB, ds *domain.Dataset) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{"town_hall_awards", "town_halls", "gallery_items", "contributors", "roles"} {
		if _, err = tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i, role := range ds.Roles {
		if _, err = tx.ExecContext(ctx, `INSERT INTO roles (name, position) VALUES ($1, $2)`, string(role), i); err != nil {
			return fmt.Errorf("insert role %q: %w", role, err)
		}
	}

	for i, c := range ds.Contributors {
		roles := make([]string, len(c.Roles))
		for j, r := range c.Roles {
			roles[j] = string(r)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO contributors (id, position, display_name, discord, twitter, roles, bio, tweets)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, c.ID, i, c.DisplayName, nullString(c.Discord), nullString(c.Twitter), pq.Array(roles), nullString(c.Bio), pq.Array(nonNil(c.Tweets)))
		if err != nil {
			return fmt.Errorf("insert contributor %q: %w", c.ID, err)
		}
		for j, g := range c.Gallery {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO gallery_items (contributor_id, position, src, href, caption)
				VALUES ($1, $2, $3, $4, $5)
			`, c.ID, j, g.Src, nullString(g.Href), nullString(g.Caption))
			if err != nil {
				return fmt.Errorf("insert gallery item %d for %q: %w", j, c.ID, err)
			}
		}
	}

	for _, th := range ds.TownHalls {
		_, err = tx.ExecContext(ctx, `INSERT INTO town_halls (id, date, tweet_url) VALUES ($1, $2, $3)`,
			th.ID, th.Date, nullString(th.TweetURL))
		if err != nil {
			return fmt.Errorf("insert town hall %d: %w", th.ID, err)
		}
		for j, a := range th.Awards {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO town_hall_awards (town_hall_id, position, role, twitter, display_name)
				VALUES ($1, $2, $3, $4, $5)
			`, th.ID, j, string(a.Role), a.Twitter, nullString(a.DisplayName))
			if err != nil {
				return fmt.Errorf("insert award %d for town hall %d: %w", j, th.ID, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
