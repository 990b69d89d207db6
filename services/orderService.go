package services

import (
	"context"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Rodluisfelipe/SisRestaurantes-sub001/models"
	"github.com/Rodluisfelipe/SisRestaurantes-sub001/realtime"
)

// statusRank orders the lifecycle. Transitions must strictly increase rank;
// skipping inProgress is allowed, going back is not.
var statusRank = map[string]int{
	models.StatusPending:    0,
	models.StatusInProgress: 1,
	models.StatusCompleted:  2,
}

var orderTypes = map[string]bool{
	models.TypeInSite:   true,
	models.TypeTakeaway: true,
	models.TypeDelivery: true,
}

// CreateOrderRequest is the create input. BusinessID accepts either the
// canonical id or the slug. TotalAmount must be present but the stored total
// is recomputed from the item snapshots, so the invariant holds regardless of
// client arithmetic.
type CreateOrderRequest struct {
	BusinessID   string             `json:"businessId" validate:"required"`
	CustomerName string             `json:"customerName" validate:"required"`
	OrderType    string             `json:"orderType" validate:"required"`
	Phone        string             `json:"phone,omitempty"`
	Address      string             `json:"address,omitempty"`
	TableNumber  string             `json:"tableNumber,omitempty"`
	Items        []models.OrderItem `json:"items" validate:"required,min=1,dive"`
	TotalAmount  *float64           `json:"totalAmount" validate:"required"`
}

// OrderService is the order state machine. It resolves the tenant on entry,
// allocates the order number on creation, triggers archival on completion and
// fans every successful mutation out to the tenant's subscribers.
type OrderService struct {
	resolver   *TenantResolver
	allocator  *OrderNumberAllocator
	orders     OrderStore
	completed  CompletedOrderStore
	publisher  Publisher
	log        *logrus.Logger
	purgeDelay time.Duration
}

func NewOrderService(
	resolver *TenantResolver,
	allocator *OrderNumberAllocator,
	orders OrderStore,
	completed CompletedOrderStore,
	publisher Publisher,
	log *logrus.Logger,
	purgeDelay time.Duration,
) *OrderService {
	return &OrderService{
		resolver:   resolver,
		allocator:  allocator,
		orders:     orders,
		completed:  completed,
		publisher:  publisher,
		log:        log,
		purgeDelay: purgeDelay,
	}
}

func validateCreate(req CreateOrderRequest) error {
	if req.BusinessID == "" {
		return newValidationError("businessId", "is required")
	}
	if req.CustomerName == "" {
		return newValidationError("customerName", "is required")
	}
	if req.OrderType == "" {
		return newValidationError("orderType", "is required")
	}
	if !orderTypes[req.OrderType] {
		return newValidationError("orderType", "must be one of inSite, takeaway, delivery")
	}
	if len(req.Items) == 0 {
		return newValidationError("items", "at least one item is required")
	}
	for i, item := range req.Items {
		if item.Name == "" {
			return newValidationError("items", "item "+strconv.Itoa(i+1)+" has no name")
		}
		if item.Quantity < 1 {
			return newValidationError("items", "item "+strconv.Itoa(i+1)+" quantity must be at least 1")
		}
	}
	if req.TotalAmount == nil {
		return newValidationError("totalAmount", "is required")
	}
	return nil
}

// Create persists a new pending order for the resolved tenant and publishes
// order_created.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*models.Order, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}
	business, err := s.resolver.Resolve(ctx, req.BusinessID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &models.Order{
		ID:           primitive.NewObjectID(),
		BusinessID:   business.BusinessID,
		OrderNumber:  s.allocator.Next(ctx, business.BusinessID),
		OrderType:    req.OrderType,
		Status:       models.StatusPending,
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Address:      req.Address,
		TableNumber:  req.TableNumber,
		Items:        req.Items,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	order.OrderID = order.ID.Hex()
	order.TotalAmount = order.ComputeTotal()

	if err := s.orders.Insert(ctx, order); err != nil {
		s.logOrder(order, "create_order").Error("order insert failed: ", err)
		return nil, err
	}
	s.publisher.Publish(business.BusinessID, realtime.EventOrderCreated, order)
	return order, nil
}

// ChangeStatus applies a forward-only status transition. Moving to inProgress
// forces sentToKitchen; moving to completed archives the order and schedules
// the delayed purge of the live record.
func (s *OrderService) ChangeStatus(ctx context.Context, orderID, status string) (*models.Order, error) {
	if err := checkOrderID(orderID); err != nil {
		return nil, err
	}
	if _, ok := statusRank[status]; !ok {
		return nil, newValidationError("status", "must be one of pending, inProgress, completed")
	}
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if statusRank[status] <= statusRank[order.Status] {
		return nil, newValidationError("status", "cannot move from "+order.Status+" to "+status)
	}

	order.Status = status
	order.UpdatedAt = time.Now()
	if status == models.StatusInProgress {
		order.SentToKitchen = true
	}
	if err := s.orders.Update(ctx, order); err != nil {
		s.logOrder(order, "change_status").Error("order update failed: ", err)
		return nil, err
	}
	s.publisher.Publish(order.BusinessID, realtime.EventOrderUpdated, order)

	if status == models.StatusCompleted {
		if err := s.archive(ctx, order); err != nil {
			// The status change is already committed; the caller sees the
			// archival failure and the live order stays until retried by hand.
			return nil, err
		}
	}
	return order, nil
}

// MarkSentToKitchen flips the kitchen flag without touching the status.
func (s *OrderService) MarkSentToKitchen(ctx context.Context, orderID string) (*models.Order, error) {
	if err := checkOrderID(orderID); err != nil {
		return nil, err
	}
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.SentToKitchen = true
	order.UpdatedAt = time.Now()
	if err := s.orders.Update(ctx, order); err != nil {
		s.logOrder(order, "mark_sent_to_kitchen").Error("order update failed: ", err)
		return nil, err
	}
	s.publisher.Publish(order.BusinessID, realtime.EventOrderUpdated, order)
	return order, nil
}

// Delete removes a live order at any status and publishes order_deleted.
// Deleting a completed order never loses history: the archival copy is the
// system of record once completion happened.
func (s *OrderService) Delete(ctx context.Context, orderID string) error {
	if err := checkOrderID(orderID); err != nil {
		return err
	}
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := s.orders.Delete(ctx, orderID); err != nil {
		return err
	}
	s.publisher.Publish(order.BusinessID, realtime.EventOrderDeleted, map[string]string{"orderId": orderID})
	return nil
}

// Get fetches one live order by id.
func (s *OrderService) Get(ctx context.Context, orderID string) (*models.Order, error) {
	if err := checkOrderID(orderID); err != nil {
		return nil, err
	}
	return s.orders.FindByID(ctx, orderID)
}

// ListByBusiness returns the tenant's live orders; kitchen displays call this
// on connect since the hub has no replay.
func (s *OrderService) ListByBusiness(ctx context.Context, identifier string) ([]models.Order, error) {
	business, err := s.resolver.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return s.orders.FindByBusiness(ctx, business.BusinessID)
}

// archive snapshots the completed order into the historical store, then
// schedules the fire-and-forget purge of the live record. The purge timer is
// process-local and is lost on restart, which leaves the order present in
// both stores; that duplication is accepted.
func (s *OrderService) archive(ctx context.Context, order *models.Order) error {
	now := time.Now()
	completed := &models.CompletedOrder{
		ID:               primitive.NewObjectID(),
		OrderID:          order.OrderID,
		BusinessID:       order.BusinessID,
		OrderNumber:      order.OrderNumber,
		OrderType:        order.OrderType,
		CustomerName:     order.CustomerName,
		Phone:            order.Phone,
		Address:          order.Address,
		TableNumber:      order.TableNumber,
		Items:            order.Items,
		TotalAmount:      order.TotalAmount,
		CreatedAt:        order.CreatedAt,
		CompletedAt:      now,
		ReportDate:       localMidnight(now),
		IncludedInReport: false,
	}
	completed.CompletedOrderID = completed.ID.Hex()

	if err := s.completed.Insert(ctx, completed); err != nil {
		s.logOrder(order, "archive_order").Error("completed order insert failed: ", err)
		return err
	}

	businessID := order.BusinessID
	orderID := order.OrderID
	time.AfterFunc(s.purgeDelay, func() {
		purgeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.orders.Delete(purgeCtx, orderID); err != nil {
			s.log.WithFields(logrus.Fields{
				"businessId": businessID,
				"orderId":    orderID,
				"action":     "purge_order",
			}).Error("delayed purge failed: ", err)
			return
		}
		s.publisher.Publish(businessID, realtime.EventOrderDeleted, map[string]string{"orderId": orderID})
	})
	return nil
}

func (s *OrderService) logOrder(order *models.Order, action string) *logrus.Entry {
	return s.log.WithFields(logrus.Fields{
		"businessId": order.BusinessID,
		"orderId":    order.OrderID,
		"action":     action,
	})
}

func checkOrderID(orderID string) error {
	if _, err := primitive.ObjectIDFromHex(orderID); err != nil {
		return newValidationError("orderId", "malformed order id")
	}
	return nil
}

func localMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
