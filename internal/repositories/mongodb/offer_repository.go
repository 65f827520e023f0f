package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/promowheel/spinwheel-backend/internal/models"
	"github.com/promowheel/spinwheel-backend/internal/repositories"
)

// OfferRepository implements the repositories.OfferRepository interface
type OfferRepository struct {
	collection *mongo.Collection
}

// NewOfferRepository creates a new OfferRepository
func NewOfferRepository(db *mongo.Database) repositories.OfferRepository {
	return &OfferRepository{
		collection: db.Collection("offers"),
	}
}

// Create creates a new offer
func (r *OfferRepository) Create(ctx context.Context, offer *models.Offer) error {
	offer.CreatedAt = time.Now()
	offer.UpdatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, offer)
	if err != nil {
		return err
	}
	offer.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds an offer by ID
func (r *OfferRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Offer, error) {
	var offer models.Offer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&offer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &offer, nil
}

// FindByCampaignID finds all offers for a campaign, in stable ascending
// ID order so selection walks are reproducible.
func (r *OfferRepository) FindByCampaignID(ctx context.Context, campaignID primitive.ObjectID) ([]*models.Offer, error) {
	opts := options.Find().SetSort(bson.M{"_id": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"campaignId": campaignID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var offers []*models.Offer
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, err
	}
	if offers == nil {
		offers = []*models.Offer{}
	}
	return offers, nil
}

// IncrementRedemptionIfAvailable performs the capacity check and the
// increment as a single conditional update. The filter carries the
// capacity condition so the database, not the application, closes the
// window between reading the count and writing it. A ModifiedCount of
// zero means a concurrent spin consumed the last slot.
func (r *OfferRepository) IncrementRedemptionIfAvailable(ctx context.Context, offerID primitive.ObjectID) (bool, error) {
	filter := bson.M{
		"_id":   offerID,
		"$expr": bson.M{"$lt": bson.A{"$redemptionCount", "$maxRedemptionLimit"}},
	}
	update := bson.M{
		"$inc": bson.M{"redemptionCount": 1},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

// EnsureIndexes creates the campaign lookup index
func (r *OfferRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "campaignId", Value: 1}},
	})
	return err
}
