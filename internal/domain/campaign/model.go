package campaign

import (
	"time"

	"github.com/shama2369/trichygold-campaignsc/internal/types"
)

// Campaign is a marketing campaign document. It owns an ordered sequence of
// channels; tag numbers live on the channels, never as standalone records.
type Campaign struct {
	ID string `bson:"_id" json:"id"`

	// Code is the short human-readable campaign code, assigned on create
	Code string `bson:"code" json:"code"`

	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`

	StartDate *time.Time `bson:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate   *time.Time `bson:"end_date,omitempty" json:"end_date,omitempty"`

	Channels []Channel `bson:"channels" json:"channels"`

	// Images holds object-storage keys of uploaded campaign artwork
	Images []string `bson:"images,omitempty" json:"images,omitempty"`

	types.BaseModel `bson:",inline"`
}

// Channel is one marketing activity within a campaign.
type Channel struct {
	Name        string `bson:"name" json:"name"`
	ChannelType string `bson:"channel_type" json:"channel_type"`
	Platform    string `bson:"platform,omitempty" json:"platform,omitempty"`

	// TagNumber is the globally-unique reference code, e.g. IG00001.
	// Optional; channels may be drafted before a tag is requested.
	TagNumber string `bson:"tag_number,omitempty" json:"tag_number,omitempty"`

	Budget float64 `bson:"budget,omitempty" json:"budget,omitempty"`
	Notes  string  `bson:"notes,omitempty" json:"notes,omitempty"`
}

// New creates a campaign with a fresh identifier and campaign code.
func New(name string) *Campaign {
	return &Campaign{
		ID:   types.GenerateUUIDWithPrefix("camp"),
		Code: types.GenerateShortIDWithPrefix("CMP"),
		Name: name,
	}
}
