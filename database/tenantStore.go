package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Rodluisfelipe/SisRestaurantes-sub001/models"
	"github.com/Rodluisfelipe/SisRestaurantes-sub001/services"
)

// TenantStore is the mongo-backed services.TenantStore.
type TenantStore struct {
	col *mongo.Collection
}

func NewTenantStore(client *mongo.Client) *TenantStore {
	return &TenantStore{col: OpenCollection(client, "business")}
}

func (s *TenantStore) FindByID(ctx context.Context, businessID string) (*models.Business, error) {
	objectID, err := primitive.ObjectIDFromHex(businessID)
	if err != nil {
		return nil, services.ErrTenantNotFound
	}
	var business models.Business
	err = s.col.FindOne(ctx, bson.M{"_id": objectID}).Decode(&business)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, services.ErrTenantNotFound
	}
	if err != nil {
		return nil, err
	}
	return &business, nil
}

func (s *TenantStore) FindBySlug(ctx context.Context, slug string) (*models.Business, error) {
	var business models.Business
	err := s.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&business)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, services.ErrTenantNotFound
	}
	if err != nil {
		return nil, err
	}
	return &business, nil
}

func (s *TenantStore) SetOpen(ctx context.Context, businessID string, open bool) (*models.Business, error) {
	objectID, err := primitive.ObjectIDFromHex(businessID)
	if err != nil {
		return nil, services.ErrTenantNotFound
	}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "isOpen", Value: open},
		{Key: "updatedAt", Value: time.Now()},
	}}}
	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var business models.Business
	err = s.col.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(&business)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, services.ErrTenantNotFound
	}
	if err != nil {
		return nil, err
	}
	return &business, nil
}
