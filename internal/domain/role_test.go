package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"", RoleAll, false},
		{"all", RoleAll, false},
		{"Meme Lord", RoleMemeLord, false},
		{"  high attester ", RoleHighAttester, false},
		{"Grand Wizard", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownRole))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRole_IsKnown(t *testing.T) {
	assert.True(t, RoleNodeRunner.IsKnown())
	assert.False(t, RoleAll.IsKnown())
	assert.False(t, Role("Lurker").IsKnown())
}

func TestContributor_HasRole(t *testing.T) {
	c := &Contributor{ID: "c1", Roles: []Role{RoleMemeLord, RoleContentCrafter}}
	assert.True(t, c.HasRole(RoleContentCrafter))
	assert.False(t, c.HasRole(RoleBugHunter))
}

func TestNewPlaceholderContributor(t *testing.T) {
	p := NewPlaceholderContributor("ment0san")
	assert.Equal(t, "virtual-ment0san", p.ID)
	assert.Equal(t, "ment0san", p.DisplayName)
	assert.Equal(t, "ment0san", p.Twitter)
	assert.Empty(t, p.Roles)
	assert.NotNil(t, p.Tweets)
	assert.NotNil(t, p.Gallery)
	assert.True(t, p.IsPlaceholder())

	real := &Contributor{ID: "c4", DisplayName: "XZNSEI", Twitter: "XZNSEI", Roles: []Role{RoleMemeLord}}
	assert.False(t, real.IsPlaceholder())
}

func TestAward_Name(t *testing.T) {
	assert.Equal(t, "XZNSEI", Award{Twitter: "XZNSEI"}.Name())
	assert.Equal(t, "Noma", Award{Twitter: "MemeManLabs", DisplayName: "Noma"}.Name())
}
