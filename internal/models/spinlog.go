package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SpinLog is the append-only ledger entry for an awarded spin.
// OfferNameSnapshot and CouponCodeSnapshot freeze the offer's fields at
// award time so later offer edits or deletions never rewrite history.
// A SpinLog is never updated or deleted by normal operation.
type SpinLog struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CampaignID         primitive.ObjectID `bson:"campaignId" json:"campaignId"`
	Phone              string             `bson:"phone" json:"phone"`
	OfferID            primitive.ObjectID `bson:"offerId" json:"offerId"`
	OfferNameSnapshot  string             `bson:"offerNameSnapshot" json:"offerNameSnapshot"`
	CouponCodeSnapshot string             `bson:"couponCodeSnapshot" json:"couponCodeSnapshot"`
	IPAddress          string             `bson:"ipAddress,omitempty" json:"ipAddress,omitempty"`
	UserAgent          string             `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
}

// Provenance carries the request metadata recorded alongside each spin.
type Provenance struct {
	IPAddress string
	UserAgent string
}
