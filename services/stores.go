package services

import (
	"context"
	"time"

	"github.com/Rodluisfelipe/SisRestaurantes-sub001/models"
)

// Store interfaces kept small so the mongo-backed types in database/ and the
// in-memory fakes under test stay interchangeable. A miss is reported with the
// matching sentinel from errors.go, never with a nil record.

type TenantStore interface {
	FindByID(ctx context.Context, businessID string) (*models.Business, error)
	FindBySlug(ctx context.Context, slug string) (*models.Business, error)
	SetOpen(ctx context.Context, businessID string, open bool) (*models.Business, error)
}

type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, orderID string) (*models.Order, error)
	FindByBusiness(ctx context.Context, businessID string) ([]models.Order, error)
	// LatestByBusiness returns the most recently created order for the tenant,
	// or ErrOrderNotFound when the tenant has none.
	LatestByBusiness(ctx context.Context, businessID string) (*models.Order, error)
	Update(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, orderID string) error
}

type CompletedOrderStore interface {
	Insert(ctx context.Context, completed *models.CompletedOrder) error
	FindByBusinessAndWindow(ctx context.Context, businessID string, from, to time.Time) ([]models.CompletedOrder, error)
	MarkIncludedInReport(ctx context.Context, businessID string, completedOrderIDs []string) error
	// DeleteByIDs removes the listed records scoped to the tenant and returns
	// how many actually existed.
	DeleteByIDs(ctx context.Context, businessID string, completedOrderIDs []string) (int64, error)
}

type CatalogStore interface {
	SaveCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, businessID, categoryID string) error
	ListCategories(ctx context.Context, businessID string) ([]models.Category, error)

	SaveProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, businessID, productID string) error
	ListProducts(ctx context.Context, businessID string) ([]models.Product, error)

	SaveToppingGroup(ctx context.Context, group *models.ToppingGroup) error
	DeleteToppingGroup(ctx context.Context, businessID, toppingGroupID string) error
	ListToppingGroups(ctx context.Context, businessID string) ([]models.ToppingGroup, error)
}

// Publisher is the tenant-scoped broadcast side of the realtime hub. Delivery
// is best-effort and must never block a mutation.
type Publisher interface {
	Publish(businessID string, event string, payload interface{})
}
