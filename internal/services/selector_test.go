package services

import (
	"errors"
	"math/rand"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/promowheel/spinwheel-backend/internal/models"
)

// testOID builds a deterministic ObjectID so ascending-ID ordering in
// tests matches the order of the suffix bytes.
func testOID(suffix byte) primitive.ObjectID {
	var id primitive.ObjectID
	id[0] = 0x65
	id[11] = suffix
	return id
}

func testOffer(suffix byte, name string, weight, limit, redeemed int) *models.Offer {
	return &models.Offer{
		ID:                 testOID(suffix),
		OfferName:          name,
		CouponCode:         name + "-CODE",
		Weight:             weight,
		MaxRedemptionLimit: limit,
		RedemptionCount:    redeemed,
	}
}

func seededIntn(seed int64) func(int) int {
	return rand.New(rand.NewSource(seed)).Intn
}

func TestFirstSpinPicksHighestWeight(t *testing.T) {
	offers := []*models.Offer{
		testOffer(1, "A", 9, 100, 0),
		testOffer(2, "B", 7, 50, 0),
	}

	for i := 0; i < 100; i++ {
		winner, err := selectOffer(offers, nil, true, seededIntn(int64(i)))
		if err != nil {
			t.Fatalf("first spin failed: %v", err)
		}
		if winner.OfferName != "A" {
			t.Fatalf("expected A on first spin, got %s", winner.OfferName)
		}
	}
}

func TestFirstSpinTieBreaksOnLowestID(t *testing.T) {
	// Deliberately pass the higher ID first: input order must not matter.
	offers := []*models.Offer{
		testOffer(5, "later", 9, 10, 0),
		testOffer(2, "earlier", 9, 10, 0),
	}

	winner, err := selectOffer(offers, nil, true, seededIntn(1))
	if err != nil {
		t.Fatalf("first spin failed: %v", err)
	}
	if winner.OfferName != "earlier" {
		t.Fatalf("expected tie to break toward lowest offer id, got %s", winner.OfferName)
	}
}

func TestFirstSpinSkipsZeroWeightAndFullOffers(t *testing.T) {
	offers := []*models.Offer{
		testOffer(1, "zero-weight", 0, 999, 0),
		testOffer(2, "exhausted", 9, 10, 10),
		testOffer(3, "available", 3, 10, 9),
	}

	winner, err := selectOffer(offers, nil, true, seededIntn(1))
	if err != nil {
		t.Fatalf("first spin failed: %v", err)
	}
	if winner.OfferName != "available" {
		t.Fatalf("expected the only capacity-eligible offer, got %s", winner.OfferName)
	}
}

func TestFirstSpinNothingEligible(t *testing.T) {
	offers := []*models.Offer{
		testOffer(1, "zero-weight", 0, 999, 0),
		testOffer(2, "exhausted", 9, 10, 10),
	}

	_, err := selectOffer(offers, nil, true, seededIntn(1))
	if !errors.Is(err, ErrNoPrizeAvailable) {
		t.Fatalf("expected ErrNoPrizeAvailable, got %v", err)
	}
}

func TestSubsequentSpinExcludesWonOffers(t *testing.T) {
	offers := []*models.Offer{
		testOffer(1, "heavy", 1000, 100, 0),
		testOffer(2, "light", 1, 100, 0),
	}
	won := map[primitive.ObjectID]struct{}{
		testOID(1): {},
	}

	intn := seededIntn(7)
	for i := 0; i < 1000; i++ {
		winner, err := selectOffer(offers, won, false, intn)
		if err != nil {
			t.Fatalf("subsequent spin failed: %v", err)
		}
		if winner.OfferName == "heavy" {
			t.Fatal("selected an offer the phone already won")
		}
	}
}

func TestSubsequentSpinExhaustion(t *testing.T) {
	offers := []*models.Offer{
		testOffer(1, "A", 9, 100, 0),
		testOffer(2, "B", 7, 50, 0),
		testOffer(3, "never", 0, 999, 0), // weight 0 is not winnable, so not required
	}
	won := map[primitive.ObjectID]struct{}{
		testOID(1): {},
		testOID(2): {},
	}

	_, err := selectOffer(offers, won, false, seededIntn(1))
	if !errors.Is(err, ErrNoNewPrizesAvailable) {
		t.Fatalf("expected ErrNoNewPrizesAvailable, got %v", err)
	}
}

func TestWeightedDistribution(t *testing.T) {
	offers := []*models.Offer{
		testOffer(1, "A", 9, 1 << 30, 0),
		testOffer(2, "B", 1, 1 << 30, 0),
	}

	const draws = 100000
	intn := seededIntn(42)
	countA := 0
	for i := 0; i < draws; i++ {
		winner, err := selectOffer(offers, nil, false, intn)
		if err != nil {
			t.Fatalf("draw %d failed: %v", i, err)
		}
		if winner.OfferName == "A" {
			countA++
		}
	}

	// Binomial(100000, 0.9) has a standard deviation of ~95 draws, so a
	// ±500 window is beyond five sigma around the 90000 expectation.
	if countA < 89500 || countA > 90500 {
		t.Fatalf("weight-9 offer won %d of %d draws, expected ~90000", countA, draws)
	}
}

func TestWeightedDrawCoversFullRange(t *testing.T) {
	offers := []*models.Offer{
		testOffer(1, "A", 3, 10, 0),
		testOffer(2, "B", 2, 10, 0),
	}

	// Drive the walk with every possible draw value; each must land on a
	// winner, including the boundary values 0 and W-1.
	for r := 0; r < 5; r++ {
		r := r
		winner, err := selectOffer(offers, nil, false, func(n int) int {
			if n != 5 {
				t.Fatalf("expected total weight 5, got %d", n)
			}
			return r
		})
		if err != nil {
			t.Fatalf("draw %d found no winner: %v", r, err)
		}
		want := "A"
		if r >= 3 {
			want = "B"
		}
		if winner.OfferName != want {
			t.Fatalf("draw %d selected %s, want %s", r, winner.OfferName, want)
		}
	}
}
