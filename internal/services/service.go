package services

import (
	"context"
	"time"

	"github.com/promowheel/spinwheel-backend/internal/models"
)

// SpinResult carries the winning offer's public fields back to the caller.
type SpinResult struct {
	OfferName        string `json:"offerName"`
	OfferDescription string `json:"offerDescription"`
	CouponCode       string `json:"couponCode"`
}

// PublicOffer is the offer projection safe to expose on the public
// campaign endpoint: weights, limits and coupon codes stay hidden.
type PublicOffer struct {
	ID               string `json:"id"`
	OfferName        string `json:"offerName"`
	OfferDescription string `json:"offerDescription"`
}

// PublicCampaign is the campaign projection for the public wheel page.
type PublicCampaign struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	BrandLogoURL string        `json:"brandLogoUrl,omitempty"`
	IsActive     bool          `json:"isActive"`
	StartDate    time.Time     `json:"startDate"`
	EndDate      time.Time     `json:"endDate"`
	Offers       []PublicOffer `json:"offers"`
}

// SpinService adjudicates spin requests
type SpinService interface {
	Spin(ctx context.Context, slug, phone string, provenance models.Provenance) (*SpinResult, error)
}

// CampaignService serves the public campaign surface
type CampaignService interface {
	GetPublicCampaign(ctx context.Context, slug string) (*PublicCampaign, error)
}
