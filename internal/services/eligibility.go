package services

import (
	"context"
	"time"

	"github.com/promowheel/spinwheel-backend/internal/models"
)

// checkEligibility validates campaign state and the phone's spin quota
// before any prize logic runs. It has no side effects. On success it
// returns the phone's current spin count, which the selector needs to
// distinguish a first spin from subsequent ones.
//
// Campaign existence is already settled by the slug lookup; the checks
// here short-circuit in order: activity window, then quota.
func (s *SpinServiceImpl) checkEligibility(ctx context.Context, campaign *models.Campaign, phone string) (int64, error) {
	if !campaign.IsOpenAt(time.Now()) {
		return 0, ErrCampaignUnavailable
	}

	spinCount, err := s.spinLogRepo.CountByCampaignAndPhone(ctx, campaign.ID, phone)
	if err != nil {
		return 0, err
	}
	if spinCount >= int64(campaign.MaxSpinsPerPhone) {
		return spinCount, ErrQuotaExceeded
	}

	return spinCount, nil
}
