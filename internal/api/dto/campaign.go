package dto

import (
	"time"

	"github.com/shama2369/trichygold-campaignsc/internal/domain/campaign"
	"github.com/shama2369/trichygold-campaignsc/internal/validator"
)

// ChannelRequest is one channel within a campaign submission
type ChannelRequest struct {
	Name        string  `json:"name" validate:"required" example:"Diwali teaser reel"`
	ChannelType string  `json:"channel_type" validate:"required" example:"Instagram"`
	Platform    string  `json:"platform" example:"Reels"`
	TagNumber   string  `json:"tag_number" example:"IG00001"`
	Budget      float64 `json:"budget" example:"25000"`
	Notes       string  `json:"notes"`
}

func (r *ChannelRequest) toChannel() campaign.Channel {
	return campaign.Channel{
		Name:        r.Name,
		ChannelType: r.ChannelType,
		Platform:    r.Platform,
		TagNumber:   r.TagNumber,
		Budget:      r.Budget,
		Notes:       r.Notes,
	}
}

// CreateCampaignRequest is the payload for creating a campaign
type CreateCampaignRequest struct {
	Name        string           `json:"name" validate:"required" example:"Diwali 2026"`
	Description string           `json:"description"`
	StartDate   *time.Time       `json:"start_date"`
	EndDate     *time.Time       `json:"end_date"`
	Channels    []ChannelRequest `json:"channels" validate:"dive"`
}

func (r *CreateCampaignRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ToCampaign converts the request to a domain campaign with fresh identity
func (r *CreateCampaignRequest) ToCampaign() *campaign.Campaign {
	c := campaign.New(r.Name)
	c.Description = r.Description
	c.StartDate = r.StartDate
	c.EndDate = r.EndDate
	c.Channels = toChannels(r.Channels)
	return c
}

// UpdateCampaignRequest is the payload for updating a campaign. The whole
// channel list is replaced; validation reruns before persisting.
type UpdateCampaignRequest struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description"`
	StartDate   *time.Time       `json:"start_date"`
	EndDate     *time.Time       `json:"end_date"`
	Channels    []ChannelRequest `json:"channels" validate:"dive"`
}

func (r *UpdateCampaignRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func toChannels(reqs []ChannelRequest) []campaign.Channel {
	channels := make([]campaign.Channel, len(reqs))
	for i, ch := range reqs {
		channels[i] = ch.toChannel()
	}
	return channels
}

// ToChannels exposes the channel conversion for validation before persist
func (r *UpdateCampaignRequest) ToChannels() []campaign.Channel {
	return toChannels(r.Channels)
}

// CampaignResponse is the campaign payload returned by the API
type CampaignResponse struct {
	ID          string             `json:"id"`
	Code        string             `json:"code" example:"CMPX2A8Q1"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	StartDate   *time.Time         `json:"start_date,omitempty"`
	EndDate     *time.Time         `json:"end_date,omitempty"`
	Channels    []campaign.Channel `json:"channels"`
	Images      []string           `json:"images,omitempty"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func ToCampaignResponse(c *campaign.Campaign) *CampaignResponse {
	return &CampaignResponse{
		ID:          c.ID,
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Channels:    c.Channels,
		Images:      c.Images,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func ToCampaignResponseList(campaigns []*campaign.Campaign) []*CampaignResponse {
	out := make([]*CampaignResponse, len(campaigns))
	for i, c := range campaigns {
		out[i] = ToCampaignResponse(c)
	}
	return out
}

// UploadImageResponse acknowledges a stored campaign image
type UploadImageResponse struct {
	Key string `json:"key"`
}
