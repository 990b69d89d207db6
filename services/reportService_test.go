package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gopkg.in/go-playground/assert.v1"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Rodluisfelipe/SisRestaurantes-sub001/models"
)

func completedOrderAt(businessID string, completedAt time.Time, orderType string, items []models.OrderItem) models.CompletedOrder {
	id := primitive.NewObjectID()
	total := 0.0
	for _, item := range items {
		total += item.Subtotal()
	}
	return models.CompletedOrder{
		ID:               id,
		CompletedOrderID: id.Hex(),
		OrderID:          primitive.NewObjectID().Hex(),
		BusinessID:       businessID,
		OrderType:        orderType,
		CustomerName:     "Dana",
		Items:            items,
		TotalAmount:      total,
		CompletedAt:      completedAt,
		ReportDate:       localMidnight(completedAt),
	}
}

func newReportFixture() (*ReportService, *fakeCompletedOrderStore) {
	completed := &fakeCompletedOrderStore{}
	service := NewReportService(NewTenantResolver(testTenants()), completed, testLogger())
	return service, completed
}

func TestGenerateReportEmptyDay(t *testing.T) {
	service, _ := newReportFixture()

	report, err := service.Generate(context.Background(), "pizza-joint")
	assert.Equal(t, err, nil)
	assert.Equal(t, report.BusinessID, pizzaJointID)
	assert.Equal(t, report.TotalOrders, 0)
	assert.Equal(t, report.TotalSales, 0.0)
	assert.Equal(t, len(report.TopItems), 0)
	for _, orderType := range []string{models.TypeInSite, models.TypeTakeaway, models.TypeDelivery} {
		breakdown, ok := report.OrdersByType[orderType]
		assert.Equal(t, ok, true)
		assert.Equal(t, breakdown.Count, 0)
	}
}

func TestGenerateReportSingleOrder(t *testing.T) {
	service, completed := newReportFixture()
	items := []models.OrderItem{{Name: "Margherita", UnitPrice: 10.0, Quantity: 2}}
	completed.completed = append(completed.completed, completedOrderAt(pizzaJointID, time.Now(), models.TypeInSite, items))

	report, err := service.Generate(context.Background(), "pizza-joint")
	assert.Equal(t, err, nil)
	assert.Equal(t, report.TotalOrders, 1)
	assert.Equal(t, report.TotalSales, 20.0)
	assert.Equal(t, report.OrdersByType[models.TypeInSite].Count, 1)
	assert.Equal(t, report.OrdersByType[models.TypeInSite].Total, 20.0)
	assert.Equal(t, len(report.TopItems), 1)
	assert.Equal(t, report.TopItems[0].Name, "Margherita")
	assert.Equal(t, report.TopItems[0].Quantity, 2)

	// Every matched order is marked, exactly once per report run.
	for _, record := range completed.all() {
		assert.Equal(t, record.IncludedInReport, true)
	}
}

func TestGenerateReportTotalsAreConsistent(t *testing.T) {
	service, completed := newReportFixture()
	now := time.Now()
	completed.completed = append(completed.completed,
		completedOrderAt(pizzaJointID, now, models.TypeInSite, []models.OrderItem{{Name: "Margherita", UnitPrice: 10.0, Quantity: 1}}),
		completedOrderAt(pizzaJointID, now, models.TypeTakeaway, []models.OrderItem{{Name: "Calzone", UnitPrice: 12.0, Quantity: 2}}),
		completedOrderAt(pizzaJointID, now, models.TypeDelivery, []models.OrderItem{{Name: "Diavola", UnitPrice: 11.5, Quantity: 1}}),
	)

	report, err := service.Generate(context.Background(), pizzaJointID)
	assert.Equal(t, err, nil)
	assert.Equal(t, report.TotalOrders, 3)

	sum := 0.0
	for _, breakdown := range report.OrdersByType {
		sum += breakdown.Total
	}
	assert.Equal(t, sum, report.TotalSales)
}

func TestGenerateReportTopItems(t *testing.T) {
	service, completed := newReportFixture()
	now := time.Now()
	items := []models.OrderItem{}
	// 12 distinct products, quantities 12 down to 1.
	for i := 0; i < 12; i++ {
		items = append(items, models.OrderItem{
			Name:      fmt.Sprintf("Product %02d", i),
			UnitPrice: 5.0,
			Quantity:  12 - i,
		})
	}
	completed.completed = append(completed.completed, completedOrderAt(pizzaJointID, now, models.TypeTakeaway, items))

	report, err := service.Generate(context.Background(), "pizza-joint")
	assert.Equal(t, err, nil)
	assert.Equal(t, len(report.TopItems), 10)
	for i := 1; i < len(report.TopItems); i++ {
		if report.TopItems[i].Quantity > report.TopItems[i-1].Quantity {
			t.Fatalf("top items not sorted descending at %d", i)
		}
	}
	assert.Equal(t, report.TopItems[0].Name, "Product 00")
	assert.Equal(t, report.TopItems[0].Quantity, 12)
}

func TestGenerateReportIgnoresOtherDaysAndTenants(t *testing.T) {
	service, completed := newReportFixture()
	now := time.Now()
	items := []models.OrderItem{{Name: "Margherita", UnitPrice: 10.0, Quantity: 1}}
	completed.completed = append(completed.completed,
		completedOrderAt(pizzaJointID, now, models.TypeInSite, items),
		completedOrderAt(pizzaJointID, now.Add(-48*time.Hour), models.TypeInSite, items),
		completedOrderAt(burgerBarID, now, models.TypeInSite, items),
	)

	report, err := service.Generate(context.Background(), "pizza-joint")
	assert.Equal(t, err, nil)
	assert.Equal(t, report.TotalOrders, 1)
}

func TestGenerateReportIsRepeatable(t *testing.T) {
	service, completed := newReportFixture()
	items := []models.OrderItem{{Name: "Margherita", UnitPrice: 10.0, Quantity: 1}}
	completed.completed = append(completed.completed, completedOrderAt(pizzaJointID, time.Now(), models.TypeInSite, items))

	first, err := service.Generate(context.Background(), "pizza-joint")
	assert.Equal(t, err, nil)
	// Marked orders stay in the aggregate: the report is the whole day's
	// view, not a delta.
	second, err := service.Generate(context.Background(), "pizza-joint")
	assert.Equal(t, err, nil)
	assert.Equal(t, second.TotalOrders, first.TotalOrders)
	assert.Equal(t, second.TotalSales, first.TotalSales)
}

func TestGenerateReportUnknownTenant(t *testing.T) {
	service, _ := newReportFixture()

	_, err := service.Generate(context.Background(), "no-such-place")
	if !errors.Is(err, ErrTenantNotFound) {
		t.Fatalf("expected ErrTenantNotFound, got %v", err)
	}
}

func TestCleanupDeletesListedOrders(t *testing.T) {
	service, completed := newReportFixture()
	items := []models.OrderItem{{Name: "Margherita", UnitPrice: 10.0, Quantity: 1}}
	keep := completedOrderAt(pizzaJointID, time.Now(), models.TypeInSite, items)
	drop := completedOrderAt(pizzaJointID, time.Now(), models.TypeInSite, items)
	completed.completed = append(completed.completed, keep, drop)

	deleted, err := service.Cleanup(context.Background(), "pizza-joint", []string{drop.CompletedOrderID, "missing-id"})
	assert.Equal(t, err, nil)
	assert.Equal(t, deleted, int64(1))
	assert.Equal(t, len(completed.all()), 1)
	assert.Equal(t, completed.all()[0].CompletedOrderID, keep.CompletedOrderID)
}

func TestCleanupRequiresIDs(t *testing.T) {
	service, _ := newReportFixture()

	_, err := service.Cleanup(context.Background(), "pizza-joint", nil)
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
