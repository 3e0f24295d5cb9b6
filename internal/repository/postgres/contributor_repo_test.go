package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contributorsboard/internal/domain"
)

var contributorCols = []string{"id", "display_name", "discord", "twitter", "roles", "bio", "tweets"}

func TestContributorRepository_ListContributors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		check   func(t *testing.T, got []*domain.Contributor)
		wantErr bool
	}{
		{
			name: "roster with galleries",
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(contributorCols).
					AddRow("c1", "Noma", "Noma#7777", "MemeManLabs", `{"Meme Lord","Content Crafter"}`, "Creates memes.", `{https://x.com/Interior/status/463440424141459456}`).
					AddRow("c2", "Kahari", nil, "kahari_dev", `{"Node Runner"}`, nil, `{}`)
				mock.ExpectQuery(`SELECT id, display_name, discord, twitter, roles, bio, tweets FROM contributors ORDER BY position`).
					WillReturnRows(rows)
				mock.ExpectQuery(`SELECT contributor_id, src, href, caption\s+FROM gallery_items\s+WHERE contributor_id = ANY`).
					WithArgs(pq.Array([]string{"c1", "c2"})).
					WillReturnRows(sqlmock.NewRows([]string{"contributor_id", "src", "href", "caption"}).
						AddRow("c1", "https://picsum.photos/seed/az1/800/800", "https://x.com/MemeManLabs", "Poster A").
						AddRow("c1", "https://picsum.photos/seed/az2/800/800", nil, nil))
			},
			check: func(t *testing.T, got []*domain.Contributor) {
				require.Len(t, got, 2)
				assert.Equal(t, []domain.Role{domain.RoleMemeLord, domain.RoleContentCrafter}, got[0].Roles)
				assert.Equal(t, []string{"https://x.com/Interior/status/463440424141459456"}, got[0].Tweets)
				require.Len(t, got[0].Gallery, 2)
				assert.Equal(t, "Poster A", got[0].Gallery[0].Caption)
				assert.Empty(t, got[0].Gallery[1].Href)
				assert.Empty(t, got[1].Discord)
				assert.Empty(t, got[1].Bio)
				assert.NotNil(t, got[1].Gallery)
				assert.Empty(t, got[1].Tweets)
			},
		},
		{
			name: "empty roster skips gallery query",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, display_name`).WillReturnRows(sqlmock.NewRows(contributorCols))
			},
			check: func(t *testing.T, got []*domain.Contributor) {
				assert.NotNil(t, got)
				assert.Empty(t, got)
			},
		},
		{
			name: "query error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, display_name`).WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
		{
			name: "gallery query error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, display_name`).
					WillReturnRows(sqlmock.NewRows(contributorCols).AddRow("c1", "Noma", nil, nil, `{}`, nil, `{}`))
				mock.ExpectQuery(`FROM gallery_items`).WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)
			repo := NewContributorRepository(db)
			got, err := repo.ListContributors(ctx)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestContributorRepository_GetByTwitter(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		handle  string
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		errIs   error
		wantErr bool
	}{
		{
			name:   "case-insensitive match",
			handle: "xznsei",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE lower\(twitter\) = lower\(\$1\)`).
					WithArgs("xznsei").
					WillReturnRows(sqlmock.NewRows(contributorCols).
						AddRow("c4", "XZNSEI", nil, "XZNSEI", `{"Meme Lord"}`, "Aztec Meme Lord winner.", `{}`))
				mock.ExpectQuery(`FROM gallery_items`).
					WithArgs(pq.Array([]string{"c4"})).
					WillReturnRows(sqlmock.NewRows([]string{"contributor_id", "src", "href", "caption"}))
			},
			wantID: "c4",
		},
		{
			name:   "unknown handle",
			handle: "nobody",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE lower\(twitter\)`).
					WithArgs("nobody").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: true,
			errIs:   domain.ErrNotFound,
		},
		{
			name:    "empty handle never queries",
			handle:  "",
			mock:    func(mock sqlmock.Sqlmock) {},
			wantErr: true,
			errIs:   domain.ErrNotFound,
		},
		{
			name:   "db error",
			handle: "x",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE lower\(twitter\)`).WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)
			repo := NewContributorRepository(db)
			got, err := repo.GetByTwitter(ctx, tt.handle)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.True(t, errors.Is(err, tt.errIs))
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, got.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
