package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// OrderNumberAllocator hands out the human-facing per-tenant order counter.
// Uniqueness is best-effort only: order identity is always the generated id,
// and a duplicate number never corrupts state.
type OrderNumberAllocator struct {
	orders OrderStore
	log    *logrus.Logger
}

func NewOrderNumberAllocator(orders OrderStore, log *logrus.Logger) *OrderNumberAllocator {
	return &OrderNumberAllocator{orders: orders, log: log}
}

// Next reads the tenant's most recent order and increments its number. The
// first order of a tenant gets "1". Any lookup or parse failure falls back to
// a timestamp-derived value instead of aborting order creation.
func (a *OrderNumberAllocator) Next(ctx context.Context, businessID string) string {
	last, err := a.orders.LatestByBusiness(ctx, businessID)
	if errors.Is(err, ErrOrderNotFound) {
		return "1"
	}
	if err != nil {
		a.log.WithFields(logrus.Fields{
			"businessId": businessID,
			"action":     "allocate_order_number",
		}).Warn("latest order lookup failed, falling back to timestamp number")
		return fallbackOrderNumber()
	}
	n, err := strconv.Atoi(last.OrderNumber)
	if err != nil {
		a.log.WithFields(logrus.Fields{
			"businessId":  businessID,
			"orderNumber": last.OrderNumber,
			"action":      "allocate_order_number",
		}).Warn("non-numeric order number, falling back to timestamp number")
		return fallbackOrderNumber()
	}
	return strconv.Itoa(n + 1)
}

func fallbackOrderNumber() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}
