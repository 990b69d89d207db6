package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Rodluisfelipe/SisRestaurantes-sub001/models"
	"github.com/Rodluisfelipe/SisRestaurantes-sub001/services"
)

// CatalogStore is the mongo-backed services.CatalogStore over the three
// catalog collections.
type CatalogStore struct {
	categories    *mongo.Collection
	products      *mongo.Collection
	toppingGroups *mongo.Collection
}

func NewCatalogStore(client *mongo.Client) *CatalogStore {
	return &CatalogStore{
		categories:    OpenCollection(client, "category"),
		products:      OpenCollection(client, "product"),
		toppingGroups: OpenCollection(client, "toppingGroup"),
	}
}

func upsertOpts() *options.ReplaceOptions {
	return options.Replace().SetUpsert(true)
}

func (s *CatalogStore) SaveCategory(ctx context.Context, category *models.Category) error {
	filter := bson.M{"businessId": category.BusinessID, "categoryId": category.CategoryID}
	_, err := s.categories.ReplaceOne(ctx, filter, category, upsertOpts())
	return err
}

func (s *CatalogStore) DeleteCategory(ctx context.Context, businessID, categoryID string) error {
	result, err := s.categories.DeleteOne(ctx, bson.M{"businessId": businessID, "categoryId": categoryID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return services.ErrCatalogItemNotFound
	}
	return nil
}

func (s *CatalogStore) ListCategories(ctx context.Context, businessID string) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.M{"sortOrder": 1})
	cursor, err := s.categories.Find(ctx, bson.M{"businessId": businessID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CatalogStore) SaveProduct(ctx context.Context, product *models.Product) error {
	filter := bson.M{"businessId": product.BusinessID, "productId": product.ProductID}
	_, err := s.products.ReplaceOne(ctx, filter, product, upsertOpts())
	return err
}

func (s *CatalogStore) DeleteProduct(ctx context.Context, businessID, productID string) error {
	result, err := s.products.DeleteOne(ctx, bson.M{"businessId": businessID, "productId": productID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return services.ErrCatalogItemNotFound
	}
	return nil
}

func (s *CatalogStore) ListProducts(ctx context.Context, businessID string) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := s.products.Find(ctx, bson.M{"businessId": businessID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *CatalogStore) SaveToppingGroup(ctx context.Context, group *models.ToppingGroup) error {
	filter := bson.M{"businessId": group.BusinessID, "toppingGroupId": group.ToppingGroupID}
	_, err := s.toppingGroups.ReplaceOne(ctx, filter, group, upsertOpts())
	return err
}

func (s *CatalogStore) DeleteToppingGroup(ctx context.Context, businessID, toppingGroupID string) error {
	result, err := s.toppingGroups.DeleteOne(ctx, bson.M{"businessId": businessID, "toppingGroupId": toppingGroupID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return services.ErrCatalogItemNotFound
	}
	return nil
}

func (s *CatalogStore) ListToppingGroups(ctx context.Context, businessID string) ([]models.ToppingGroup, error) {
	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := s.toppingGroups.Find(ctx, bson.M{"businessId": businessID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	groups := []models.ToppingGroup{}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}
