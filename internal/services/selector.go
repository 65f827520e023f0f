package services

import (
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/promowheel/spinwheel-backend/internal/models"
)

// selectOffer decides which offer a spin wins. It is a pure function
// over its inputs: it never mutates redemption counts or writes records.
// The two selection policies dispatch on firstSpin:
//
//   - first spin: deterministic, highest weight among capacity-eligible
//     offers, ties broken by lowest offer ID;
//   - subsequent spins: weighted random over the capacity-eligible
//     offers the phone has not already won.
//
// intn must return a uniform int in [0, n) for n > 0.
func selectOffer(offers []*models.Offer, wonOfferIDs map[primitive.ObjectID]struct{}, firstSpin bool, intn func(n int) int) (*models.Offer, error) {
	candidates := make([]*models.Offer, 0, len(offers))
	for _, offer := range offers {
		if offer.IsSelectable() {
			candidates = append(candidates, offer)
		}
	}
	// Fixed ascending-ID order keeps both policies independent of the
	// caller's input order.
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ID.Hex() < candidates[j].ID.Hex()
	})

	if firstSpin {
		return selectHighestWeight(candidates)
	}
	return selectWeightedRandom(candidates, wonOfferIDs, intn)
}

// selectHighestWeight picks the heaviest candidate. Candidates arrive in
// ascending ID order, so a strict > comparison breaks weight ties toward
// the lowest offer ID.
func selectHighestWeight(candidates []*models.Offer) (*models.Offer, error) {
	if len(candidates) == 0 {
		return nil, ErrNoPrizeAvailable
	}
	winner := candidates[0]
	for _, offer := range candidates[1:] {
		if offer.Weight > winner.Weight {
			winner = offer
		}
	}
	return winner, nil
}

// selectWeightedRandom draws from the candidates not already won,
// weighting each by its integer weight. The draw is an exact integer
// cumulative-sum walk: r is uniform in [0, W) and the offer whose
// cumulative range contains r wins, so no fallback pick is needed and a
// walk that terminates without a winner is reported as a defect.
func selectWeightedRandom(candidates []*models.Offer, wonOfferIDs map[primitive.ObjectID]struct{}, intn func(n int) int) (*models.Offer, error) {
	eligible := make([]*models.Offer, 0, len(candidates))
	totalWeight := 0
	for _, offer := range candidates {
		if _, won := wonOfferIDs[offer.ID]; won {
			continue
		}
		eligible = append(eligible, offer)
		totalWeight += offer.Weight
	}

	if len(eligible) == 0 {
		return nil, ErrNoNewPrizesAvailable
	}

	r := intn(totalWeight)
	weightSum := 0
	for _, offer := range eligible {
		weightSum += offer.Weight
		if r < weightSum {
			return offer, nil
		}
	}

	return nil, fmt.Errorf("%w: draw %d of total weight %d", ErrInternalSelection, r, totalWeight)
}
