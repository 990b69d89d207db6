package services

import (
	"context"

	"github.com/Rodluisfelipe/SisRestaurantes-sub001/models"
	"github.com/Rodluisfelipe/SisRestaurantes-sub001/realtime"
)

// BusinessService covers the tenant-facing mutations the realtime screens
// watch; tenant provisioning itself happens elsewhere.
type BusinessService struct {
	resolver  *TenantResolver
	tenants   TenantStore
	publisher Publisher
}

func NewBusinessService(resolver *TenantResolver, tenants TenantStore, publisher Publisher) *BusinessService {
	return &BusinessService{resolver: resolver, tenants: tenants, publisher: publisher}
}

// SetOpen flips the open/closed flag and publishes business_status_update.
func (s *BusinessService) SetOpen(ctx context.Context, identifier string, open bool) (*models.Business, error) {
	business, err := s.resolver.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}
	updated, err := s.tenants.SetOpen(ctx, business.BusinessID, open)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(updated.BusinessID, realtime.EventBusinessStatusUpdate, updated)
	return updated, nil
}
