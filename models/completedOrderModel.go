package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CompletedOrder is the historical copy made the moment an order reaches
// "completed". ReportDate is the local midnight of the completion day, derived
// once and never recomputed. IncludedInReport only ever flips false -> true.
type CompletedOrder struct {
	ID               primitive.ObjectID `bson:"_id" json:"-"`
	CompletedOrderID string             `bson:"completedOrderId" json:"completedOrderId"`
	OrderID          string             `bson:"orderId" json:"orderId"`
	BusinessID       string             `bson:"businessId" json:"businessId"`
	OrderNumber      string             `bson:"orderNumber" json:"orderNumber"`
	OrderType        string             `bson:"orderType" json:"orderType"`
	CustomerName     string             `bson:"customerName" json:"customerName"`
	Phone            string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address          string             `bson:"address,omitempty" json:"address,omitempty"`
	TableNumber      string             `bson:"tableNumber,omitempty" json:"tableNumber,omitempty"`
	Items            []OrderItem        `bson:"items" json:"items"`
	TotalAmount      float64            `bson:"totalAmount" json:"totalAmount"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	CompletedAt      time.Time          `bson:"completedAt" json:"completedAt"`
	ReportDate       time.Time          `bson:"reportDate" json:"reportDate"`
	IncludedInReport bool               `bson:"includedInReport" json:"includedInReport"`
}
