package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/promowheel/spinwheel-backend/internal/models"
)

// ErrNotFound is returned by any repository lookup that matches no document.
var ErrNotFound = errors.New("document not found")

// CampaignRepository defines the interface for campaign data operations
type CampaignRepository interface {
	Create(ctx context.Context, campaign *models.Campaign) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error)
	FindBySlug(ctx context.Context, slug string) (*models.Campaign, error)
	EnsureIndexes(ctx context.Context) error
}

// OfferRepository defines the interface for offer data operations
type OfferRepository interface {
	Create(ctx context.Context, offer *models.Offer) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Offer, error)
	FindByCampaignID(ctx context.Context, campaignID primitive.ObjectID) ([]*models.Offer, error)
	// IncrementRedemptionIfAvailable atomically increments the offer's
	// redemption count only while it is below the redemption limit. It
	// returns false when no row matched, i.e. the last slot was taken by
	// a concurrent spin between selection and this call.
	IncrementRedemptionIfAvailable(ctx context.Context, offerID primitive.ObjectID) (bool, error)
	EnsureIndexes(ctx context.Context) error
}

// SpinLogRepository defines the interface for the spin ledger
type SpinLogRepository interface {
	Create(ctx context.Context, log *models.SpinLog) error
	CountByCampaignAndPhone(ctx context.Context, campaignID primitive.ObjectID, phone string) (int64, error)
	FindWonOfferIDs(ctx context.Context, campaignID primitive.ObjectID, phone string) ([]primitive.ObjectID, error)
	EnsureIndexes(ctx context.Context) error
}
