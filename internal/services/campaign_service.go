package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/promowheel/spinwheel-backend/internal/repositories"
)

// Compile-time check to ensure CampaignServiceImpl implements CampaignService
var _ CampaignService = (*CampaignServiceImpl)(nil)

// CampaignServiceImpl serves the public campaign projection for the wheel page
type CampaignServiceImpl struct {
	campaignRepo repositories.CampaignRepository
	offerRepo    repositories.OfferRepository
}

// NewCampaignService creates a new CampaignServiceImpl
func NewCampaignService(campaignRepo repositories.CampaignRepository, offerRepo repositories.OfferRepository) *CampaignServiceImpl {
	return &CampaignServiceImpl{
		campaignRepo: campaignRepo,
		offerRepo:    offerRepo,
	}
}

// GetPublicCampaign resolves a campaign by slug and projects it down to
// the fields safe for the public wheel page. Weights, redemption limits
// and coupon codes are withheld until a spin is actually won.
func (s *CampaignServiceImpl) GetPublicCampaign(ctx context.Context, slug string) (*PublicCampaign, error) {
	campaign, err := s.campaignRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to resolve campaign %q: %w", slug, err)
	}

	if !campaign.IsOpenAt(time.Now()) {
		return nil, ErrCampaignUnavailable
	}

	offers, err := s.offerRepo.FindByCampaignID(ctx, campaign.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load offers: %w", err)
	}

	publicOffers := make([]PublicOffer, 0, len(offers))
	for _, offer := range offers {
		publicOffers = append(publicOffers, PublicOffer{
			ID:               offer.ID.Hex(),
			OfferName:        offer.OfferName,
			OfferDescription: offer.OfferDescription,
		})
	}

	return &PublicCampaign{
		ID:           campaign.ID.Hex(),
		Name:         campaign.Name,
		BrandLogoURL: campaign.BrandLogoURL,
		IsActive:     campaign.IsActive,
		StartDate:    campaign.StartDate,
		EndDate:      campaign.EndDate,
		Offers:       publicOffers,
	}, nil
}
