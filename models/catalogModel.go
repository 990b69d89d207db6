package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Catalog documents carry only the fields the order pipeline and the catalog
// fan-out events touch. Menu schema validation beyond this lives elsewhere.

type Category struct {
	ID         primitive.ObjectID `bson:"_id" json:"-"`
	CategoryID string             `bson:"categoryId" json:"categoryId"`
	BusinessID string             `bson:"businessId" json:"businessId"`
	Name       string             `bson:"name" json:"name" validate:"required"`
	SortOrder  int                `bson:"sortOrder" json:"sortOrder"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Product struct {
	ID         primitive.ObjectID `bson:"_id" json:"-"`
	ProductID  string             `bson:"productId" json:"productId"`
	BusinessID string             `bson:"businessId" json:"businessId"`
	CategoryID string             `bson:"categoryId,omitempty" json:"categoryId,omitempty"`
	Name       string             `bson:"name" json:"name" validate:"required"`
	Price      float64            `bson:"price" json:"price"`
	Available  bool               `bson:"available" json:"available"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type ToppingOption struct {
	Name  string  `bson:"name" json:"name"`
	Price float64 `bson:"price" json:"price"`
}

type ToppingGroup struct {
	ID             primitive.ObjectID `bson:"_id" json:"-"`
	ToppingGroupID string             `bson:"toppingGroupId" json:"toppingGroupId"`
	BusinessID     string             `bson:"businessId" json:"businessId"`
	Name           string             `bson:"name" json:"name" validate:"required"`
	Options        []ToppingOption    `bson:"options,omitempty" json:"options,omitempty"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
