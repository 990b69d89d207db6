package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Rodluisfelipe/SisRestaurantes-sub001/models"
)

// CompletedOrderStore is the mongo-backed services.CompletedOrderStore over
// the archival collection.
type CompletedOrderStore struct {
	col *mongo.Collection
}

func NewCompletedOrderStore(client *mongo.Client) *CompletedOrderStore {
	return &CompletedOrderStore{col: OpenCollection(client, "completedOrder")}
}

func (s *CompletedOrderStore) Insert(ctx context.Context, completed *models.CompletedOrder) error {
	_, err := s.col.InsertOne(ctx, completed)
	return err
}

func (s *CompletedOrderStore) FindByBusinessAndWindow(ctx context.Context, businessID string, from, to time.Time) ([]models.CompletedOrder, error) {
	filter := bson.M{
		"businessId":  businessID,
		"completedAt": bson.M{"$gte": from, "$lt": to},
	}
	opts := options.Find().SetSort(bson.M{"completedAt": 1})
	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.CompletedOrder{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *CompletedOrderStore) MarkIncludedInReport(ctx context.Context, businessID string, completedOrderIDs []string) error {
	filter := bson.M{
		"businessId":       businessID,
		"completedOrderId": bson.M{"$in": completedOrderIDs},
	}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "includedInReport", Value: true}}}}
	_, err := s.col.UpdateMany(ctx, filter, update)
	return err
}

func (s *CompletedOrderStore) DeleteByIDs(ctx context.Context, businessID string, completedOrderIDs []string) (int64, error) {
	filter := bson.M{
		"businessId":       businessID,
		"completedOrderId": bson.M{"$in": completedOrderIDs},
	}
	result, err := s.col.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
