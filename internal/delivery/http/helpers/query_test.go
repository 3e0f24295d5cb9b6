package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contributorsboard/internal/adapters/render"
	"contributorsboard/internal/domain"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		url     string
		want    domain.Role
		wantOK  bool
		wantErr bool
	}{
		{"/?role=", "", false, false},
		{"/", "", false, false},
		{"/?role=meme+lord", domain.RoleMemeLord, true, false},
		{"/?role=All", domain.RoleAll, true, false},
		{"/?role=Wizard", "", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, ok, err := ParseRole(httptest.NewRequest("GET", tt.url, nil), "role")
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTownHall(t *testing.T) {
	tests := []struct {
		url     string
		want    int
		wantErr bool
	}{
		{"/", domain.AllTownHalls, false},
		{"/?th=All", domain.AllTownHalls, false},
		{"/?th=0", domain.AllTownHalls, false},
		{"/?th=9", 9, false},
		{"/?th=%239", 9, false},
		{"/?th=nine", 0, true},
		{"/?th=-2", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, err := ParseTownHall(httptest.NewRequest("GET", tt.url, nil), "th")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseState(t *testing.T) {
	st, err := ParseState(httptest.NewRequest("GET", "/people?q=maya&role=Community+Builder&open=c3&tw=@x&tab=GALLERY&img=2", nil))
	require.NoError(t, err)
	assert.Equal(t, render.State{
		Query: "maya", Role: domain.RoleCommunityBuilder, OpenID: "c3", OpenTw: "x", Tab: render.TabGallery, Image: 2,
	}, st)

	st, err = ParseState(httptest.NewRequest("GET", "/people?img=-1&tab=weird", nil))
	require.NoError(t, err)
	assert.Equal(t, -1, st.Image)
	assert.Equal(t, render.TabPosts, st.Tab)
	assert.Equal(t, domain.Role(""), st.Role)

	_, err = ParseState(httptest.NewRequest("GET", "/people?role=Wizard", nil))
	require.Error(t, err)
	_, err = ParseState(httptest.NewRequest("GET", "/awards?th=x", nil))
	require.Error(t, err)
}
