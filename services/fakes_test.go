package services

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Rodluisfelipe/SisRestaurantes-sub001/models"
)

// In-memory stands-ins for the store interfaces. They copy records on the way
// in and out so tests observe what was persisted, not shared pointers.

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeTenantStore struct {
	tenants []models.Business
}

func (s *fakeTenantStore) FindByID(_ context.Context, businessID string) (*models.Business, error) {
	for i := range s.tenants {
		if s.tenants[i].BusinessID == businessID {
			business := s.tenants[i]
			return &business, nil
		}
	}
	return nil, ErrTenantNotFound
}

func (s *fakeTenantStore) FindBySlug(_ context.Context, slug string) (*models.Business, error) {
	for i := range s.tenants {
		if s.tenants[i].Slug != "" && s.tenants[i].Slug == slug {
			business := s.tenants[i]
			return &business, nil
		}
	}
	return nil, ErrTenantNotFound
}

func (s *fakeTenantStore) SetOpen(_ context.Context, businessID string, open bool) (*models.Business, error) {
	for i := range s.tenants {
		if s.tenants[i].BusinessID == businessID {
			s.tenants[i].IsOpen = open
			business := s.tenants[i]
			return &business, nil
		}
	}
	return nil, ErrTenantNotFound
}

type fakeOrderStore struct {
	mu        sync.Mutex
	orders    map[string]models.Order
	inserted  []string
	latestErr error
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: make(map[string]models.Order)}
}

func (s *fakeOrderStore) Insert(_ context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.OrderID] = *order
	s.inserted = append(s.inserted, order.OrderID)
	return nil
}

func (s *fakeOrderStore) FindByID(_ context.Context, orderID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return &order, nil
}

func (s *fakeOrderStore) FindByBusiness(_ context.Context, businessID string) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := []models.Order{}
	for _, id := range s.inserted {
		if order, ok := s.orders[id]; ok && order.BusinessID == businessID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (s *fakeOrderStore) LatestByBusiness(_ context.Context, businessID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.latestErr != nil {
		return nil, s.latestErr
	}
	for i := len(s.inserted) - 1; i >= 0; i-- {
		if order, ok := s.orders[s.inserted[i]]; ok && order.BusinessID == businessID {
			return &order, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (s *fakeOrderStore) Update(_ context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[order.OrderID]; !ok {
		return ErrOrderNotFound
	}
	s.orders[order.OrderID] = *order
	return nil
}

func (s *fakeOrderStore) Delete(_ context.Context, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[orderID]; !ok {
		return ErrOrderNotFound
	}
	delete(s.orders, orderID)
	return nil
}

func (s *fakeOrderStore) get(orderID string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	return order, ok
}

func (s *fakeOrderStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

type fakeCompletedOrderStore struct {
	mu        sync.Mutex
	completed []models.CompletedOrder
	insertErr error
	markErr   error
}

func (s *fakeCompletedOrderStore) Insert(_ context.Context, completed *models.CompletedOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.insertErr != nil {
		return s.insertErr
	}
	s.completed = append(s.completed, *completed)
	return nil
}

func (s *fakeCompletedOrderStore) FindByBusinessAndWindow(_ context.Context, businessID string, from, to time.Time) ([]models.CompletedOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := []models.CompletedOrder{}
	for _, completed := range s.completed {
		if completed.BusinessID != businessID {
			continue
		}
		if completed.CompletedAt.Before(from) || !completed.CompletedAt.Before(to) {
			continue
		}
		matched = append(matched, completed)
	}
	return matched, nil
}

func (s *fakeCompletedOrderStore) MarkIncludedInReport(_ context.Context, businessID string, completedOrderIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.markErr != nil {
		return s.markErr
	}
	ids := make(map[string]bool, len(completedOrderIDs))
	for _, id := range completedOrderIDs {
		ids[id] = true
	}
	for i := range s.completed {
		if s.completed[i].BusinessID == businessID && ids[s.completed[i].CompletedOrderID] {
			s.completed[i].IncludedInReport = true
		}
	}
	return nil
}

func (s *fakeCompletedOrderStore) DeleteByIDs(_ context.Context, businessID string, completedOrderIDs []string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make(map[string]bool, len(completedOrderIDs))
	for _, id := range completedOrderIDs {
		ids[id] = true
	}
	kept := s.completed[:0]
	var deleted int64
	for _, completed := range s.completed {
		if completed.BusinessID == businessID && ids[completed.CompletedOrderID] {
			deleted++
			continue
		}
		kept = append(kept, completed)
	}
	s.completed = kept
	return deleted, nil
}

func (s *fakeCompletedOrderStore) all() []models.CompletedOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CompletedOrder, len(s.completed))
	copy(out, s.completed)
	return out
}

type publishedEvent struct {
	BusinessID string
	Event      string
	Payload    interface{}
}

type capturingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *capturingPublisher) Publish(businessID string, event string, payload interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{BusinessID: businessID, Event: event, Payload: payload})
}

func (p *capturingPublisher) all() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]publishedEvent, len(p.events))
	copy(out, p.events)
	return out
}

func (p *capturingPublisher) last() (publishedEvent, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.events) == 0 {
		return publishedEvent{}, false
	}
	return p.events[len(p.events)-1], true
}
