package records

import (
	"context"
	"strings"

	"dealerdesk/internal/models"
	"dealerdesk/internal/repositories/interfaces"
	"dealerdesk/internal/store"
	"dealerdesk/internal/utils"
	"dealerdesk/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type vehicleRepository struct {
	coll  store.Collection
	cache CacheService
	log   *logger.Logger
}

func NewVehicleRepository(s store.Store, cache CacheService, log *logger.Logger) interfaces.VehicleRepository {
	return &vehicleRepository{
		coll:  s.Collection("vehicles"),
		cache: cache,
		log:   log.WithCollection("vehicles"),
	}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	// Normalize VIN to uppercase; the unique index is case-sensitive.
	vehicle.VIN = strings.ToUpper(vehicle.VIN)
	if vehicle.Status == "" {
		vehicle.Status = models.VehicleStatusAvailable
	}

	id, err := r.coll.Insert(ctx, vehicle)
	if err != nil {
		return err
	}

	r.invalidateInventory(ctx)
	return r.coll.FindByID(ctx, id, vehicle)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.coll.FindByID(ctx, id, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) List(ctx context.Context, filter interfaces.VehicleFilter) ([]*models.Vehicle, error) {
	// The unfiltered available-inventory listing is the hot path for the
	// public storefront, so it gets a short-lived cache.
	cacheable := filter.Make == "" && filter.Model == "" && filter.Status == models.VehicleStatusAvailable

	if cacheable && r.cache != nil {
		var cached []*models.Vehicle
		if err := r.cache.Get(ctx, utils.CacheKeyVehicleInventory, &cached); err == nil {
			return cached, nil
		}
	}

	query := store.Filter{}
	if filter.Make != "" {
		query["make"] = filter.Make
	}
	if filter.Model != "" {
		query["model"] = filter.Model
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	var vehicles []*models.Vehicle
	if err := r.coll.FindAll(ctx, query, store.DefaultSort, &vehicles); err != nil {
		return nil, err
	}

	if cacheable && r.cache != nil {
		if err := r.cache.Set(ctx, utils.CacheKeyVehicleInventory, vehicles, utils.VehicleCacheTTL); err != nil {
			r.log.WithError(err).Debug("failed to cache vehicle inventory")
		}
	}

	return vehicles, nil
}

func (r *vehicleRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	if vin, exists := updates["vin"]; exists {
		if vinStr, ok := vin.(string); ok {
			updates["vin"] = strings.ToUpper(vinStr)
		}
	}

	if err := r.coll.Update(ctx, id, updates); err != nil {
		return err
	}

	r.invalidateInventory(ctx)
	return nil
}

func (r *vehicleRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.VehicleStatus) error {
	return r.Update(ctx, id, map[string]interface{}{"status": status})
}

func (r *vehicleRepository) AddImages(ctx context.Context, id primitive.ObjectID, paths []string) error {
	vehicle, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return r.Update(ctx, id, map[string]interface{}{
		"image_paths": append(vehicle.ImagePaths, paths...),
	})
}

func (r *vehicleRepository) RemoveImage(ctx context.Context, id primitive.ObjectID, path string) error {
	vehicle, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	remaining := make([]string, 0, len(vehicle.ImagePaths))
	for _, existing := range vehicle.ImagePaths {
		if existing != path {
			remaining = append(remaining, existing)
		}
	}

	return r.Update(ctx, id, map[string]interface{}{"image_paths": remaining})
}

func (r *vehicleRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := r.coll.Delete(ctx, id); err != nil {
		return err
	}

	r.invalidateInventory(ctx)
	return nil
}

func (r *vehicleRepository) invalidateInventory(ctx context.Context) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Delete(ctx, utils.CacheKeyVehicleInventory); err != nil {
		r.log.WithError(err).Debug("failed to invalidate vehicle inventory cache")
	}
}
