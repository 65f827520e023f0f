package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Offer represents a single prize slot on a campaign's wheel.
// Weight 0 means the offer is displayed but never selectable.
// RedemptionCount is only ever mutated through the conditional
// increment in the offer repository, never by application code.
type Offer struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CampaignID         primitive.ObjectID `bson:"campaignId" json:"campaignId"`
	OfferName          string             `bson:"offerName" json:"offerName"`
	OfferDescription   string             `bson:"offerDescription" json:"offerDescription"`
	CouponCode         string             `bson:"couponCode" json:"couponCode"`
	Weight             int                `bson:"weight" json:"weight"`
	MaxRedemptionLimit int                `bson:"maxRedemptionLimit" json:"maxRedemptionLimit"`
	RedemptionCount    int                `bson:"redemptionCount" json:"redemptionCount"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// HasCapacity reports whether at least one redemption slot remains.
func (o *Offer) HasCapacity() bool {
	return o.RedemptionCount < o.MaxRedemptionLimit
}

// IsSelectable reports whether the offer can ever be won: it must carry
// a positive weight and still have redemption capacity.
func (o *Offer) IsSelectable() bool {
	return o.Weight > 0 && o.HasCapacity()
}
