package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Rodluisfelipe/SisRestaurantes-sub001/models"
)

// TenantResolver maps an ambiguous business identifier (canonical id or slug)
// to the tenant record. Every tenant-scoped operation resolves once at its
// entry so the rest of the system only ever sees canonical ids.
type TenantResolver struct {
	tenants TenantStore
}

func NewTenantResolver(tenants TenantStore) *TenantResolver {
	return &TenantResolver{tenants: tenants}
}

// Resolve tries the canonical id first when the identifier is shaped like one,
// then falls back to the slug. A miss on both is ErrTenantNotFound and callers
// must treat it as a client error, not scan further.
func (r *TenantResolver) Resolve(ctx context.Context, identifier string) (*models.Business, error) {
	if identifier == "" {
		return nil, ErrTenantNotFound
	}
	if _, err := primitive.ObjectIDFromHex(identifier); err == nil {
		business, err := r.tenants.FindByID(ctx, identifier)
		if err == nil {
			return business, nil
		}
		if !errors.Is(err, ErrTenantNotFound) {
			return nil, err
		}
	}
	return r.tenants.FindBySlug(ctx, identifier)
}
