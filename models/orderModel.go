package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. Transitions only move forward; "completed" is terminal and
// hands the order to the archival pipeline.
const (
	StatusPending    = "pending"
	StatusInProgress = "inProgress"
	StatusCompleted  = "completed"
)

// Order types.
const (
	TypeInSite   = "inSite"
	TypeTakeaway = "takeaway"
	TypeDelivery = "delivery"
)

// ToppingSelection is a price snapshot of one chosen topping.
type ToppingSelection struct {
	ToppingID string  `bson:"toppingId,omitempty" json:"toppingId,omitempty"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
}

// OrderItem snapshots the product name and unit price at order time, so later
// catalog edits never change what the customer agreed to pay.
type OrderItem struct {
	ProductID string             `bson:"productId,omitempty" json:"productId,omitempty"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	UnitPrice float64            `bson:"unitPrice" json:"unitPrice"`
	Quantity  int                `bson:"quantity" json:"quantity" validate:"required,min=1"`
	Toppings  []ToppingSelection `bson:"toppings,omitempty" json:"toppings,omitempty"`
}

// Subtotal is (unit price + topping prices) x quantity.
func (it OrderItem) Subtotal() float64 {
	unit := it.UnitPrice
	for _, t := range it.Toppings {
		unit += t.Price
	}
	return unit * float64(it.Quantity)
}

// Order is a live, in-progress purchase request. OrderID mirrors the hex of
// the Mongo _id and is the only identity; OrderNumber is the human-facing
// counter and is best-effort unique per tenant.
type Order struct {
	ID            primitive.ObjectID `bson:"_id" json:"-"`
	OrderID       string             `bson:"orderId" json:"orderId"`
	BusinessID    string             `bson:"businessId" json:"businessId" validate:"required"`
	OrderNumber   string             `bson:"orderNumber" json:"orderNumber"`
	OrderType     string             `bson:"orderType" json:"orderType" validate:"required"`
	Status        string             `bson:"status" json:"status"`
	CustomerName  string             `bson:"customerName" json:"customerName" validate:"required"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address       string             `bson:"address,omitempty" json:"address,omitempty"`
	TableNumber   string             `bson:"tableNumber,omitempty" json:"tableNumber,omitempty"`
	Items         []OrderItem        `bson:"items" json:"items" validate:"required,min=1,dive"`
	TotalAmount   float64            `bson:"totalAmount" json:"totalAmount"`
	SentToKitchen bool               `bson:"sentToKitchen" json:"sentToKitchen"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ComputeTotal returns the snapshot total over all line items.
func (o Order) ComputeTotal() float64 {
	total := 0.0
	for _, it := range o.Items {
		total += it.Subtotal()
	}
	return total
}
