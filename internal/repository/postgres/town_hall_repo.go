package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"contributorsboard/internal/domain"
)

type townHallRepository struct {
	DB *sql.DB
}

// NewTownHallRepository returns a domain.TownHallRepository implemented with Postgres.
func NewTownHallRepository(db *sql.DB) domain.TownHallRepository {
	return &townHallRepository{DB: db}
}

func (r *townHallRepository) ListTownHalls(ctx context.Context) ([]*domain.TownHall, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, date, tweet_url FROM town_halls ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	townHalls := []*domain.TownHall{}
	var ids []int64
	for rows.Next() {
		th := &domain.TownHall{Awards: []domain.Award{}}
		var tweetURL sql.NullString
		if err := rows.Scan(&th.ID, &th.Date, &tweetURL); err != nil {
			return nil, err
		}
		th.TweetURL = tweetURL.String
		townHalls = append(townHalls, th)
		ids = append(ids, int64(th.ID))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return townHalls, nil
	}

	awardRows, err := r.DB.QueryContext(ctx, `
		SELECT town_hall_id, role, twitter, display_name
		FROM town_hall_awards
		WHERE town_hall_id = ANY($1)
		ORDER BY town_hall_id, position
	`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer awardRows.Close()

	byTownHall := make(map[int][]domain.Award)
	for awardRows.Next() {
		var townHallID int
		var role string
		var a domain.Award
		var displayName sql.NullString
		if err := awardRows.Scan(&townHallID, &role, &a.Twitter, &displayName); err != nil {
			return nil, err
		}
		a.Role = domain.Role(role)
		a.DisplayName = displayName.String
		byTownHall[townHallID] = append(byTownHall[townHallID], a)
	}
	if err := awardRows.Err(); err != nil {
		return nil, err
	}
	for _, th := range townHalls {
		if a := byTownHall[th.ID]; a != nil {
			th.Awards = a
		}
	}
	return townHalls, nil
}
