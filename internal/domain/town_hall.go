package domain

import (
	"context"
	"time"
)

// Award is one award record issued at a Town Hall.
// swagger:model Award
type Award struct {
	Role        Role   `json:"role" yaml:"role"`
	Twitter     string `json:"twitter" yaml:"twitter"`
	DisplayName string `json:"display_name,omitempty" yaml:"display_name,omitempty"`
}

// Name returns the display name if set, otherwise the handle.
func (a Award) Name() string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	return a.Twitter
}

// TownHall is a dated community event that issues awards.
// swagger:model TownHall
type TownHall struct {
	ID       int       `json:"id" yaml:"id"`
	Date     time.Time `json:"date" yaml:"date"`
	TweetURL string    `json:"tweet_url,omitempty" yaml:"tweet_url,omitempty"`
	Awards   []Award   `json:"awards" yaml:"awards"`
}

// AwardGroup is the set of awards for a single role at one Town Hall.
// swagger:model AwardGroup
type AwardGroup struct {
	TownHall *TownHall `json:"town_hall"`
	Awardees []Award   `json:"awardees"`
}

// TownHallRepository defines read access to Town Halls and their awards.
type TownHallRepository interface {
	// ListTownHalls returns all Town Halls with their awards in issue order.
	ListTownHalls(ctx context.Context) ([]*TownHall, error)
}
