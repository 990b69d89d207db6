package services

import (
	"context"
	"errors"
	"testing"

	"gopkg.in/go-playground/assert.v1"

	"github.com/Rodluisfelipe/SisRestaurantes-sub001/models"
)

const (
	pizzaJointID = "64b0c0ffee0123456789abcd"
	burgerBarID  = "64b0c0ffee0123456789abce"
)

func testTenants() *fakeTenantStore {
	return &fakeTenantStore{tenants: []models.Business{
		{BusinessID: pizzaJointID, Name: "Pizza Joint", Slug: "pizza-joint", IsActive: true},
		{BusinessID: burgerBarID, Name: "Burger Bar", IsActive: true},
	}}
}

func TestResolveByCanonicalID(t *testing.T) {
	resolver := NewTenantResolver(testTenants())

	business, err := resolver.Resolve(context.Background(), pizzaJointID)
	assert.Equal(t, err, nil)
	assert.Equal(t, business.BusinessID, pizzaJointID)
	assert.Equal(t, business.Slug, "pizza-joint")
}

func TestResolveBySlug(t *testing.T) {
	resolver := NewTenantResolver(testTenants())

	business, err := resolver.Resolve(context.Background(), "pizza-joint")
	assert.Equal(t, err, nil)
	assert.Equal(t, business.BusinessID, pizzaJointID)
}

func TestResolveUnknownIdentifier(t *testing.T) {
	resolver := NewTenantResolver(testTenants())

	for _, identifier := range []string{"", "no-such-place", "64b0c0ffee0123456789ffff"} {
		_, err := resolver.Resolve(context.Background(), identifier)
		if !errors.Is(err, ErrTenantNotFound) {
			t.Fatalf("identifier %q: expected ErrTenantNotFound, got %v", identifier, err)
		}
	}
}

func TestResolveIDShapedSlugFallsBack(t *testing.T) {
	// An identifier shaped like an ObjectID that matches no tenant id must
	// still be tried as a slug.
	store := testTenants()
	store.tenants[1].Slug = "64b0c0ffee0123456789beef"
	resolver := NewTenantResolver(store)

	business, err := resolver.Resolve(context.Background(), "64b0c0ffee0123456789beef")
	assert.Equal(t, err, nil)
	assert.Equal(t, business.BusinessID, burgerBarID)
}
