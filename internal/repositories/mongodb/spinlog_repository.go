package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/promowheel/spinwheel-backend/internal/models"
	"github.com/promowheel/spinwheel-backend/internal/repositories"
)

// SpinLogRepository implements the repositories.SpinLogRepository interface
type SpinLogRepository struct {
	collection *mongo.Collection
}

// NewSpinLogRepository creates a new SpinLogRepository
func NewSpinLogRepository(db *mongo.Database) repositories.SpinLogRepository {
	return &SpinLogRepository{
		collection: db.Collection("spin_logs"),
	}
}

// Create appends a ledger entry. Spin logs are insert-only; there is no
// update path in this repository.
func (r *SpinLogRepository) Create(ctx context.Context, log *models.SpinLog) error {
	log.CreatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, log)
	if err != nil {
		return err
	}
	log.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// CountByCampaignAndPhone counts the spins a phone has recorded against a campaign
func (r *SpinLogRepository) CountByCampaignAndPhone(ctx context.Context, campaignID primitive.ObjectID, phone string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"campaignId": campaignID,
		"phone":      phone,
	})
}

// FindWonOfferIDs returns the distinct offer IDs a phone has already won in a campaign
func (r *SpinLogRepository) FindWonOfferIDs(ctx context.Context, campaignID primitive.ObjectID, phone string) ([]primitive.ObjectID, error) {
	values, err := r.collection.Distinct(ctx, "offerId", bson.M{
		"campaignId": campaignID,
		"phone":      phone,
	})
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(values))
	for _, v := range values {
		if id, ok := v.(primitive.ObjectID); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// EnsureIndexes creates the identity history index
func (r *SpinLogRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "campaignId", Value: 1}, {Key: "phone", Value: 1}},
	})
	return err
}
