package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"

	"github.com/promowheel/spinwheel-backend/internal/metrics"
	"github.com/promowheel/spinwheel-backend/internal/models"
	"github.com/promowheel/spinwheel-backend/internal/repositories"
)

// Compile-time check to ensure SpinServiceImpl implements SpinService
var _ SpinService = (*SpinServiceImpl)(nil)

// SpinServiceImpl adjudicates spin requests: eligibility gate, prize
// selection, then the redemption ledger write. All processing for one
// (campaign, phone) pair runs under an identity lock from the quota
// check through the ledger append.
type SpinServiceImpl struct {
	campaignRepo repositories.CampaignRepository
	offerRepo    repositories.OfferRepository
	spinLogRepo  repositories.SpinLogRepository
	locks        *identityLocks

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewSpinService creates a new SpinServiceImpl
func NewSpinService(
	campaignRepo repositories.CampaignRepository,
	offerRepo repositories.OfferRepository,
	spinLogRepo repositories.SpinLogRepository,
) *SpinServiceImpl {
	return &SpinServiceImpl{
		campaignRepo: campaignRepo,
		offerRepo:    offerRepo,
		spinLogRepo:  spinLogRepo,
		locks:        newIdentityLocks(),
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// intn draws a uniform int in [0, n); rand.Rand is not goroutine-safe.
func (s *SpinServiceImpl) intn(n int) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Intn(n)
}

// Spin adjudicates one spin request and, on success, durably records the
// award. Every failure is one of the sentinel errors in errors.go;
// callers dispatch with errors.Is.
func (s *SpinServiceImpl) Spin(ctx context.Context, slug, phone string, provenance models.Provenance) (result *SpinResult, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordSpinDuration(outcomeLabel(err), time.Since(start).Seconds())
	}()

	// 1. Resolve campaign
	campaign, err := s.campaignRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to resolve campaign %q: %w", slug, err)
	}

	// Serialize per identity so concurrent double-submissions cannot both
	// pass the quota check before either appends its record.
	unlock := s.locks.Lock(campaign.ID.Hex() + "|" + phone)
	defer unlock()

	// 2. Eligibility gate
	spinCount, err := s.checkEligibility(ctx, campaign, phone)
	if err != nil {
		return nil, err
	}

	// 3. Prize selection
	offers, err := s.offerRepo.FindByCampaignID(ctx, campaign.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load offers: %w", err)
	}

	firstSpin := spinCount == 0
	var wonOfferIDs map[primitive.ObjectID]struct{}
	if !firstSpin {
		ids, err := s.spinLogRepo.FindWonOfferIDs(ctx, campaign.ID, phone)
		if err != nil {
			return nil, fmt.Errorf("failed to load prior wins: %w", err)
		}
		wonOfferIDs = make(map[primitive.ObjectID]struct{}, len(ids))
		for _, id := range ids {
			wonOfferIDs[id] = struct{}{}
		}
	}

	winner, err := selectOffer(offers, wonOfferIDs, firstSpin, s.intn)
	if err != nil {
		if errors.Is(err, ErrInternalSelection) {
			slog.Error("prize selection defect",
				"campaignId", campaign.ID.Hex(),
				"error", err,
			)
		}
		return nil, err
	}

	// 4. Redemption ledger: conditional capacity increment first. The
	// storage layer re-checks the cap inside the update, so losing the
	// race here rejects the spin without re-rolling — the client retries
	// the whole request and re-enters selection with fresh state.
	incremented, err := s.offerRepo.IncrementRedemptionIfAvailable(ctx, winner.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to redeem offer: %w", err)
	}
	if !incremented {
		return nil, ErrCapacityRace
	}

	// 5. Append the ledger entry with award-time snapshots.
	spinLog := &models.SpinLog{
		CampaignID:         campaign.ID,
		Phone:              phone,
		OfferID:            winner.ID,
		OfferNameSnapshot:  winner.OfferName,
		CouponCodeSnapshot: winner.CouponCode,
		IPAddress:          provenance.IPAddress,
		UserAgent:          provenance.UserAgent,
	}
	if err := s.spinLogRepo.Create(ctx, spinLog); err != nil {
		// The counter is committed but the ledger entry is not. This
		// breaks the one-record-per-increment invariant and needs
		// operator reconciliation, so it gets its own error and an
		// error-level log with the ids involved.
		slog.Error("spin log append failed after redemption commit",
			"campaignId", campaign.ID.Hex(),
			"offerId", winner.ID.Hex(),
			"phone", phone,
			"error", err,
		)
		return nil, fmt.Errorf("%w: %v", ErrLedgerWriteFailed, err)
	}

	return &SpinResult{
		OfferName:        winner.OfferName,
		OfferDescription: winner.OfferDescription,
		CouponCode:       winner.CouponCode,
	}, nil
}

// outcomeLabel maps a spin result to its metric label.
func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "won"
	case errors.Is(err, ErrCampaignNotFound):
		return "not_found"
	case errors.Is(err, ErrCampaignUnavailable):
		return "unavailable"
	case errors.Is(err, ErrQuotaExceeded):
		return "quota_exceeded"
	case errors.Is(err, ErrNoPrizeAvailable):
		return "no_prize"
	case errors.Is(err, ErrNoNewPrizesAvailable):
		return "no_new_prizes"
	case errors.Is(err, ErrCapacityRace):
		return "capacity_race"
	case errors.Is(err, ErrLedgerWriteFailed):
		return "ledger_write_failed"
	case errors.Is(err, ErrInternalSelection):
		return "selection_defect"
	default:
		return "error"
	}
}
