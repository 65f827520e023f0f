package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Campaign represents a spin-the-wheel promotional campaign
type Campaign struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name             string             `bson:"name" json:"name"`
	BrandLogoURL     string             `bson:"brandLogoUrl,omitempty" json:"brandLogoUrl,omitempty"`
	ShareableSlug    string             `bson:"shareableSlug" json:"shareableSlug"`
	IsActive         bool               `bson:"isActive" json:"isActive"`
	StartDate        time.Time          `bson:"startDate" json:"startDate"`
	EndDate          time.Time          `bson:"endDate" json:"endDate"`
	MaxSpinsPerPhone int                `bson:"maxSpinsPerPhone" json:"maxSpinsPerPhone"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsOpenAt reports whether the campaign accepts spins at the given instant.
// The end date is inclusive: a campaign ending today is still spinnable today.
func (c *Campaign) IsOpenAt(t time.Time) bool {
	return c.IsActive && !t.Before(c.StartDate) && !t.After(c.EndDate)
}
