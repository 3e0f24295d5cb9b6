package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func validDataset() *Dataset {
	return &Dataset{
		Roles: []Role{RoleMemeLord, RoleBugHunter},
		Contributors: []*Contributor{
			{ID: "c1", DisplayName: "Noma", Roles: []Role{RoleMemeLord}},
			{ID: "c2", DisplayName: "Kahari", Roles: []Role{RoleBugHunter}},
		},
		TownHalls: []*TownHall{
			{ID: 1, Awards: []Award{{Role: RoleMemeLord, Twitter: "XZNSEI"}}},
		},
	}
}

func TestDataset_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *Dataset)
		wantErr bool
	}{
		{"valid", func(d *Dataset) {}, false},
		{"role outside fixed set", func(d *Dataset) { d.Roles = append(d.Roles, "Lurker") }, true},
		{"contributor role not offered", func(d *Dataset) { d.Contributors[0].Roles = []Role{RoleNodeRunner} }, true},
		{"duplicate contributor id", func(d *Dataset) { d.Contributors[1].ID = "c1" }, true},
		{"missing contributor id", func(d *Dataset) { d.Contributors[1].ID = "" }, true},
		{"missing display name", func(d *Dataset) { d.Contributors[1].DisplayName = "" }, true},
		{"nil contributor", func(d *Dataset) { d.Contributors = append(d.Contributors, nil) }, true},
		{"duplicate town hall", func(d *Dataset) { d.TownHalls = append(d.TownHalls, &TownHall{ID: 1}) }, true},
		{"non-positive town hall", func(d *Dataset) { d.TownHalls[0].ID = 0 }, true},
		{"award unknown role", func(d *Dataset) { d.TownHalls[0].Awards[0].Role = RoleHighAttester }, true},
		{"award without handle", func(d *Dataset) { d.TownHalls[0].Awards[0].Twitter = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDataset()
			tt.mutate(d)
			err := d.Validate()
			if tt.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, ErrInvalidDataset))
				return
			}
			require.NoError(t, err)
		})
	}
}
