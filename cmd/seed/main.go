package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/promowheel/spinwheel-backend/internal/config"
	"github.com/promowheel/spinwheel-backend/internal/models"
	"github.com/promowheel/spinwheel-backend/internal/repositories"
	mongorepo "github.com/promowheel/spinwheel-backend/internal/repositories/mongodb"
	"github.com/promowheel/spinwheel-backend/pkg/mongodb"
)

// Fixed slug so re-running the seed is idempotent.
const demoSlug = "salon-fest-9Ax3W"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	mongoURI := config.GetEnv("MONGODB_URI", "mongodb://localhost:27017")
	dbName := config.GetEnv("MONGODB_DATABASE", "spinwheel")

	client, err := mongodb.NewClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(dbName)
	campaignRepo := mongorepo.NewCampaignRepository(db)
	offerRepo := mongorepo.NewOfferRepository(db)
	spinLogRepo := mongorepo.NewSpinLogRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, repo := range []interface {
		EnsureIndexes(ctx context.Context) error
	}{campaignRepo, offerRepo, spinLogRepo} {
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Fatalf("Failed to create indexes: %v", err)
		}
	}

	if err := seed(ctx, campaignRepo, offerRepo); err != nil {
		log.Fatalf("Failed to seed data: %v", err)
	}

	log.Println("Seeding completed.")
}

func seed(ctx context.Context, campaignRepo repositories.CampaignRepository, offerRepo repositories.OfferRepository) error {
	existing, err := campaignRepo.FindBySlug(ctx, demoSlug)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return err
	}
	if existing != nil {
		log.Printf("Campaign %q already seeded, skipping", existing.Name)
		return nil
	}

	now := time.Now()
	campaign := &models.Campaign{
		Name:             "Salon Festival",
		BrandLogoURL:     "https://via.placeholder.com/120x120/667eea/ffffff?text=Salon+Fest",
		ShareableSlug:    demoSlug,
		IsActive:         true,
		StartDate:        now.AddDate(0, 0, -1),
		EndDate:          now.AddDate(0, 0, 30),
		MaxSpinsPerPhone: 2,
	}
	if err := campaignRepo.Create(ctx, campaign); err != nil {
		return err
	}
	log.Printf("Campaign seeded: %s (slug %s)", campaign.Name, campaign.ShareableSlug)

	offers := []*models.Offer{
		{
			CampaignID:         campaign.ID,
			OfferName:          "Free Bath",
			OfferDescription:   "Get a complimentary bath for your pet.",
			CouponCode:         "BATH100",
			Weight:             9,
			MaxRedemptionLimit: 100,
		},
		{
			CampaignID:         campaign.ID,
			OfferName:          "Free Haircut",
			OfferDescription:   "Stylish haircut free of charge.",
			CouponCode:         "CUT50",
			Weight:             7,
			MaxRedemptionLimit: 50,
		},
		{
			CampaignID:         campaign.ID,
			OfferName:          "Free Consultation",
			OfferDescription:   "Consult with our experts.",
			CouponCode:         "CONSULTFREE",
			Weight:             0,
			MaxRedemptionLimit: 999,
		},
	}
	for _, offer := range offers {
		if err := offerRepo.Create(ctx, offer); err != nil {
			return err
		}
	}
	log.Printf("Offers seeded: %d", len(offers))

	return nil
}
