package services

import (
	"context"
	"testing"

	"dealerdesk/internal/apperrors"
	"dealerdesk/internal/repositories/interfaces"
	"dealerdesk/internal/repositories/records"
	"dealerdesk/internal/store"
	"dealerdesk/pkg/logger"
)

func newSeedService(t *testing.T) (*SeedService, interfaces.VehicleRepository, interfaces.CustomerRepository) {
	t.Helper()

	s := store.NewMemoryStore()
	s.SetUniqueKeys("vehicles", "vin")
	s.SetUniqueKeys("customers", "email")

	log := logger.NewNop()
	vehicles := records.NewVehicleRepository(s, nil, log)
	customers := records.NewCustomerRepository(s)

	return NewSeedService(vehicles, customers, log), vehicles, customers
}

func TestSeedPopulatesEmptyDatabase(t *testing.T) {
	service, vehicles, customers := newSeedService(t)
	ctx := context.Background()

	result, err := service.Seed(ctx)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if result.Vehicles != 3 || result.Customers != 2 {
		t.Fatalf("unexpected counts: %+v", result)
	}

	inventory, err := vehicles.List(ctx, interfaces.VehicleFilter{})
	if err != nil {
		t.Fatalf("List vehicles: %v", err)
	}
	if len(inventory) != 3 {
		t.Fatalf("expected 3 vehicles, got %d", len(inventory))
	}

	book, err := customers.List(ctx)
	if err != nil {
		t.Fatalf("List customers: %v", err)
	}
	if len(book) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(book))
	}
}

func TestSeedRefusesNonEmptyDatabase(t *testing.T) {
	service, _, _ := newSeedService(t)
	ctx := context.Background()

	if _, err := service.Seed(ctx); err != nil {
		t.Fatalf("first Seed: %v", err)
	}

	_, err := service.Seed(ctx)
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error on reseed, got %v", err)
	}
}
