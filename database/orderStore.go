package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Rodluisfelipe/SisRestaurantes-sub001/models"
	"github.com/Rodluisfelipe/SisRestaurantes-sub001/services"
)

// OrderStore is the mongo-backed services.OrderStore over the live order
// collection.
type OrderStore struct {
	col *mongo.Collection
}

func NewOrderStore(client *mongo.Client) *OrderStore {
	return &OrderStore{col: OpenCollection(client, "order")}
}

func (s *OrderStore) Insert(ctx context.Context, order *models.Order) error {
	_, err := s.col.InsertOne(ctx, order)
	return err
}

func (s *OrderStore) FindByID(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	err := s.col.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, services.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderStore) FindByBusiness(ctx context.Context, businessID string) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": 1})
	cursor, err := s.col.Find(ctx, bson.M{"businessId": businessID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderStore) LatestByBusiness(ctx context.Context, businessID string) (*models.Order, error) {
	opts := options.FindOne().SetSort(bson.M{"createdAt": -1})
	var order models.Order
	err := s.col.FindOne(ctx, bson.M{"businessId": businessID}, opts).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, services.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderStore) Update(ctx context.Context, order *models.Order) error {
	// Last write wins; there is no version field on orders.
	result, err := s.col.ReplaceOne(ctx, bson.M{"orderId": order.OrderID}, order)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return services.ErrOrderNotFound
	}
	return nil
}

func (s *OrderStore) Delete(ctx context.Context, orderID string) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"orderId": orderID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return services.ErrOrderNotFound
	}
	return nil
}
