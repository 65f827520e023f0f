package services

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestEligibilityInactiveCampaign(t *testing.T) {
	f := newFixture(t, 2, testOffer(1, "A", 9, 100, 0))
	f.campaign.IsActive = false

	_, err := f.service.checkEligibility(context.Background(), f.campaign, "1234567890")
	if !errors.Is(err, ErrCampaignUnavailable) {
		t.Fatalf("expected ErrCampaignUnavailable, got %v", err)
	}
}

func TestEligibilityOutsideWindow(t *testing.T) {
	f := newFixture(t, 2, testOffer(1, "A", 9, 100, 0))
	now := time.Now()

	f.campaign.StartDate = now.Add(time.Hour)
	f.campaign.EndDate = now.Add(48 * time.Hour)
	if _, err := f.service.checkEligibility(context.Background(), f.campaign, "1234567890"); !errors.Is(err, ErrCampaignUnavailable) {
		t.Fatalf("not-yet-started campaign: expected ErrCampaignUnavailable, got %v", err)
	}

	f.campaign.StartDate = now.Add(-48 * time.Hour)
	f.campaign.EndDate = now.Add(-time.Hour)
	if _, err := f.service.checkEligibility(context.Background(), f.campaign, "1234567890"); !errors.Is(err, ErrCampaignUnavailable) {
		t.Fatalf("ended campaign: expected ErrCampaignUnavailable, got %v", err)
	}
}

func TestEligibilityWindowCheckPrecedesQuota(t *testing.T) {
	// An unavailable campaign rejects every spin no matter the quota
	// state, so the gate must short-circuit before counting.
	f := newFixture(t, 1, testOffer(1, "A", 9, 100, 0))
	phone := "1234567890"

	if _, err := f.service.Spin(context.Background(), "salon-fest", phone, prov()); err != nil {
		t.Fatalf("setup spin failed: %v", err)
	}

	f.campaign.IsActive = false
	_, err := f.service.checkEligibility(context.Background(), f.campaign, phone)
	if !errors.Is(err, ErrCampaignUnavailable) {
		t.Fatalf("expected ErrCampaignUnavailable before quota check, got %v", err)
	}
}

func TestEligibilityQuota(t *testing.T) {
	f := newFixture(t, 2, testOffer(1, "A", 9, 100, 0), testOffer(2, "B", 7, 100, 0))
	ctx := context.Background()
	phone := "1234567890"

	count, err := f.service.checkEligibility(ctx, f.campaign, phone)
	if err != nil {
		t.Fatalf("fresh identity should be eligible: %v", err)
	}
	if count != 0 {
		t.Fatalf("fresh identity spin count = %d, want 0", count)
	}

	for i := 0; i < 2; i++ {
		if _, err := f.service.Spin(ctx, "salon-fest", phone, prov()); err != nil {
			t.Fatalf("spin %d failed: %v", i+1, err)
		}
	}

	count, err = f.service.checkEligibility(ctx, f.campaign, phone)
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
	if count != 2 {
		t.Fatalf("exhausted identity spin count = %d, want 2", count)
	}
}
