package dto

import (
	"time"

	"github.com/shama2369/trichygold-campaignsc/internal/domain/tag"
	"github.com/shama2369/trichygold-campaignsc/internal/validator"
)

// AllocateTagRequest asks for the next free reference code for a channel
// type. Platform is accepted for forward compatibility and does not affect
// prefix selection today.
type AllocateTagRequest struct {
	ChannelType string `json:"channel_type" validate:"required" example:"Instagram"`
	Platform    string `json:"platform" example:"Reels"`
}

func (r *AllocateTagRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// AllocateTagResponse carries the allocated tag along with the prefix and
// the counter value that produced it
type AllocateTagResponse struct {
	TagNumber string `json:"tag_number" example:"IG00001"`
	Prefix    string `json:"prefix" example:"IG"`
	Number    int64  `json:"number" example:"1"`
}

// ReconcileResponse acknowledges a completed reconciliation pass
type ReconcileResponse struct {
	Message string `json:"message"`
}

// CounterResponse is one per-prefix counter enriched with the display
// platform name derived from the prefix
type CounterResponse struct {
	Prefix     string    `json:"prefix" example:"IG"`
	Platform   string    `json:"platform" example:"Instagram"`
	LastNumber int64     `json:"last_number" example:"42"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToCounterResponse(c *tag.Counter) *CounterResponse {
	return &CounterResponse{
		Prefix:     c.Prefix,
		Platform:   tag.DisplayName(c.Prefix),
		LastNumber: c.LastNumber,
		UpdatedAt:  c.UpdatedAt,
	}
}

// ListCountersResponse is the counters listing payload
type ListCountersResponse struct {
	Counters []*CounterResponse `json:"counters"`
}
