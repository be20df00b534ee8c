package records

import (
	"context"
	"sync"
	"testing"
	"time"

	"dealerdesk/internal/apperrors"
	"dealerdesk/internal/models"
	"dealerdesk/internal/repositories/interfaces"
	"dealerdesk/internal/store"
	"dealerdesk/internal/utils"
	"dealerdesk/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestVehicleCreateDefaults(t *testing.T) {
	repos := newTestRepos(t)

	vehicle := repos.mustCreateVehicle(t, "wba123456789abcde")

	if vehicle.ID.IsZero() {
		t.Fatal("expected a generated identifier")
	}
	if vehicle.VIN != "WBA123456789ABCDE" {
		t.Errorf("VIN %q was not normalized to uppercase", vehicle.VIN)
	}
	if vehicle.Status != models.VehicleStatusAvailable {
		t.Errorf("status %q, want %q", vehicle.Status, models.VehicleStatusAvailable)
	}
	if vehicle.CreatedAt.IsZero() {
		t.Error("created_at was not stamped")
	}
}

func TestVehicleDuplicateVIN(t *testing.T) {
	repos := newTestRepos(t)

	repos.mustCreateVehicle(t, "WBA123456789ABCDE")

	duplicate := &models.Vehicle{
		Make:         "BMW",
		Model:        "M3",
		Year:         2020,
		Price:        60000,
		VIN:          "wba123456789abcde",
		FuelType:     models.FuelTypePetrol,
		Transmission: models.TransmissionManual,
		BodyType:     models.BodyTypeCoupe,
	}
	err := repos.vehicles.Create(context.Background(), duplicate)
	if !apperrors.IsDuplicate(err) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestVehicleListFilters(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	first := repos.mustCreateVehicle(t, "WBA111111111111AA")
	second := repos.mustCreateVehicle(t, "WBA222222222222BB")

	if err := repos.vehicles.UpdateStatus(ctx, second.ID, models.VehicleStatusSold); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	available, err := repos.vehicles.List(ctx, interfaces.VehicleFilter{Status: models.VehicleStatusAvailable})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(available) != 1 || available[0].ID != first.ID {
		t.Fatalf("expected only the available vehicle, got %d", len(available))
	}

	all, err := repos.vehicles.List(ctx, interfaces.VehicleFilter{Make: "BMW"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 vehicles for make filter, got %d", len(all))
	}

	none, err := repos.vehicles.List(ctx, interfaces.VehicleFilter{Model: "X5"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no vehicles for model X5, got %d", len(none))
	}
}

func TestVehicleImagePaths(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	vehicle := repos.mustCreateVehicle(t, "WBA333333333333CC")

	if err := repos.vehicles.AddImages(ctx, vehicle.ID, []string{"a.jpg", "b.jpg"}); err != nil {
		t.Fatalf("AddImages: %v", err)
	}
	if err := repos.vehicles.AddImages(ctx, vehicle.ID, []string{"c.jpg"}); err != nil {
		t.Fatalf("AddImages: %v", err)
	}

	got, err := repos.vehicles.GetByID(ctx, vehicle.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.ImagePaths) != 3 {
		t.Fatalf("expected 3 image paths, got %v", got.ImagePaths)
	}

	if err := repos.vehicles.RemoveImage(ctx, vehicle.ID, "b.jpg"); err != nil {
		t.Fatalf("RemoveImage: %v", err)
	}

	got, err = repos.vehicles.GetByID(ctx, vehicle.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.ImagePaths) != 2 {
		t.Fatalf("expected 2 image paths after removal, got %v", got.ImagePaths)
	}
	for _, path := range got.ImagePaths {
		if path == "b.jpg" {
			t.Fatal("removed path still present")
		}
	}
}

// recordingCache counts operations so tests can observe cache traffic.
type recordingCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	sets    int
	deletes int
}

func newRecordingCache() *recordingCache {
	return &recordingCache{entries: make(map[string][]byte)}
}

func (c *recordingCache) Get(ctx context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; !ok {
		return context.Canceled // any non-nil error means miss
	}
	return nil
}

func (c *recordingCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = []byte("cached")
	c.sets++
	return nil
}

func (c *recordingCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
	}
	c.deletes++
	return nil
}

func TestVehicleInventoryCaching(t *testing.T) {
	s := store.NewMemoryStore()
	cache := newRecordingCache()
	vehicles := NewVehicleRepository(s, cache, logger.NewNop())
	ctx := context.Background()

	vehicle := &models.Vehicle{
		Make:         "Audi",
		Model:        "RS6",
		Year:         2022,
		Price:        120000,
		VIN:          "WAU111111111111AA",
		FuelType:     models.FuelTypePetrol,
		Transmission: models.TransmissionAutomatic,
		BodyType:     models.BodyTypeWagon,
	}
	if err := vehicles.Create(ctx, vehicle); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if cache.deletes == 0 {
		t.Error("create did not invalidate the inventory cache")
	}

	// The unfiltered available listing is the only cacheable query.
	if _, err := vehicles.List(ctx, interfaces.VehicleFilter{Status: models.VehicleStatusAvailable}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if cache.sets != 1 {
		t.Errorf("expected 1 cache set, got %d", cache.sets)
	}
	if _, ok := cache.entries[utils.CacheKeyVehicleInventory]; !ok {
		t.Error("inventory cache key not populated")
	}

	if _, err := vehicles.List(ctx, interfaces.VehicleFilter{Make: "Audi", Status: models.VehicleStatusAvailable}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if cache.sets != 1 {
		t.Errorf("filtered listing must not be cached, sets=%d", cache.sets)
	}

	deletesBefore := cache.deletes
	if err := vehicles.UpdateStatus(ctx, vehicle.ID, models.VehicleStatusMaintenance); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if cache.deletes == deletesBefore {
		t.Error("status update did not invalidate the inventory cache")
	}
}

func TestVehicleDeleteMissing(t *testing.T) {
	repos := newTestRepos(t)

	err := repos.vehicles.Delete(context.Background(), primitive.NewObjectID())
	if !apperrors.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
