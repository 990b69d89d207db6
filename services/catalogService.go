package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Rodluisfelipe/SisRestaurantes-sub001/models"
	"github.com/Rodluisfelipe/SisRestaurantes-sub001/realtime"
)

// CatalogService persists the minimal catalog mutations and pushes the fresh
// tenant-scoped list to subscribers after each one, so menus on customer and
// kitchen screens stay current without polling.
type CatalogService struct {
	resolver  *TenantResolver
	catalog   CatalogStore
	publisher Publisher
}

func NewCatalogService(resolver *TenantResolver, catalog CatalogStore, publisher Publisher) *CatalogService {
	return &CatalogService{resolver: resolver, catalog: catalog, publisher: publisher}
}

func (s *CatalogService) SaveCategory(ctx context.Context, identifier string, category models.Category) (*models.Category, error) {
	business, err := s.resolver.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if category.Name == "" {
		return nil, newValidationError("name", "is required")
	}
	if category.CategoryID == "" {
		category.ID = primitive.NewObjectID()
		category.CategoryID = category.ID.Hex()
	}
	category.BusinessID = business.BusinessID
	category.UpdatedAt = time.Now()
	if err := s.catalog.SaveCategory(ctx, &category); err != nil {
		return nil, err
	}
	s.publishCategories(ctx, business.BusinessID)
	return &category, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, identifier, categoryID string) error {
	business, err := s.resolver.Resolve(ctx, identifier)
	if err != nil {
		return err
	}
	if err := s.catalog.DeleteCategory(ctx, business.BusinessID, categoryID); err != nil {
		return err
	}
	s.publishCategories(ctx, business.BusinessID)
	return nil
}

func (s *CatalogService) SaveProduct(ctx context.Context, identifier string, product models.Product) (*models.Product, error) {
	business, err := s.resolver.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if product.Name == "" {
		return nil, newValidationError("name", "is required")
	}
	if product.ProductID == "" {
		product.ID = primitive.NewObjectID()
		product.ProductID = product.ID.Hex()
	}
	product.BusinessID = business.BusinessID
	product.UpdatedAt = time.Now()
	if err := s.catalog.SaveProduct(ctx, &product); err != nil {
		return nil, err
	}
	s.publishProducts(ctx, business.BusinessID)
	return &product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, identifier, productID string) error {
	business, err := s.resolver.Resolve(ctx, identifier)
	if err != nil {
		return err
	}
	if err := s.catalog.DeleteProduct(ctx, business.BusinessID, productID); err != nil {
		return err
	}
	s.publishProducts(ctx, business.BusinessID)
	return nil
}

func (s *CatalogService) SaveToppingGroup(ctx context.Context, identifier string, group models.ToppingGroup) (*models.ToppingGroup, error) {
	business, err := s.resolver.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if group.Name == "" {
		return nil, newValidationError("name", "is required")
	}
	if group.ToppingGroupID == "" {
		group.ID = primitive.NewObjectID()
		group.ToppingGroupID = group.ID.Hex()
	}
	group.BusinessID = business.BusinessID
	group.UpdatedAt = time.Now()
	if err := s.catalog.SaveToppingGroup(ctx, &group); err != nil {
		return nil, err
	}
	s.publishToppingGroups(ctx, business.BusinessID)
	return &group, nil
}

func (s *CatalogService) DeleteToppingGroup(ctx context.Context, identifier, toppingGroupID string) error {
	business, err := s.resolver.Resolve(ctx, identifier)
	if err != nil {
		return err
	}
	if err := s.catalog.DeleteToppingGroup(ctx, business.BusinessID, toppingGroupID); err != nil {
		return err
	}
	s.publishToppingGroups(ctx, business.BusinessID)
	return nil
}

func (s *CatalogService) publishCategories(ctx context.Context, businessID string) {
	if list, err := s.catalog.ListCategories(ctx, businessID); err == nil {
		s.publisher.Publish(businessID, realtime.EventCategoriesUpdate, list)
	}
}

func (s *CatalogService) publishProducts(ctx context.Context, businessID string) {
	if list, err := s.catalog.ListProducts(ctx, businessID); err == nil {
		s.publisher.Publish(businessID, realtime.EventProductsUpdate, list)
	}
}

func (s *CatalogService) publishToppingGroups(ctx context.Context, businessID string) {
	if list, err := s.catalog.ListToppingGroups(ctx, businessID); err == nil {
		s.publisher.Publish(businessID, realtime.EventToppingGroupsUpdate, list)
	}
}
