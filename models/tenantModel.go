package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Business is a tenant: one restaurant account. Data isolation everywhere else
// hangs off BusinessID, which is the hex of the Mongo _id and never changes.
// Slug is the human-readable alternate identifier used in QR links; it is
// mutable and unique across tenants.
type Business struct {
	ID            primitive.ObjectID `bson:"_id" json:"-"`
	BusinessID    string             `bson:"businessId" json:"businessId"`
	Name          string             `bson:"name" json:"name" validate:"required"`
	Slug          string             `bson:"slug,omitempty" json:"slug,omitempty"`
	IsOpen        bool               `bson:"isOpen" json:"isOpen"`
	IsActive      bool               `bson:"isActive" json:"isActive"`
	AdminPassword string             `bson:"adminPassword,omitempty" json:"-"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
