package records

import (
	"context"

	"dealerdesk/internal/apperrors"
	"dealerdesk/internal/models"
	"dealerdesk/internal/repositories/interfaces"
	"dealerdesk/internal/store"
	"dealerdesk/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type saleRepository struct {
	coll      store.Collection
	vehicles  interfaces.VehicleRepository
	customers interfaces.CustomerRepository
	log       *logger.Logger
}

func NewSaleRepository(s store.Store, vehicles interfaces.VehicleRepository, customers interfaces.CustomerRepository, log *logger.Logger) interfaces.SaleRepository {
	return &saleRepository{
		coll:      s.Collection("sales"),
		vehicles:  vehicles,
		customers: customers,
		log:       log.WithCollection("sales"),
	}
}

// Create inserts the sale row and then marks the vehicle sold. The two
// steps are not atomic: if the status update fails the sale row stays and
// the error is surfaced, leaving a recoverable inconsistency for an
// operator to resolve.
func (r *saleRepository) Create(ctx context.Context, sale *models.Sale) error {
	if _, err := r.vehicles.GetByID(ctx, sale.VehicleID); err != nil {
		return err
	}
	if _, err := r.customers.GetByID(ctx, sale.CustomerID); err != nil {
		return err
	}

	id, err := r.coll.Insert(ctx, sale)
	if err != nil {
		return err
	}

	if err := r.vehicles.UpdateStatus(ctx, sale.VehicleID, models.VehicleStatusSold); err != nil {
		r.log.WithFields(map[string]interface{}{
			"sale_id":    id.Hex(),
			"vehicle_id": sale.VehicleID.Hex(),
		}).WithError(err).Warn("sale recorded but vehicle status was not updated")
		return apperrors.Persistence("sale recorded but vehicle status update failed", err)
	}

	return r.coll.FindByID(ctx, id, sale)
}

func (r *saleRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.SaleDetail, error) {
	var sale models.Sale
	if err := r.coll.FindByID(ctx, id, &sale); err != nil {
		return nil, err
	}
	return r.hydrate(ctx, &sale), nil
}

func (r *saleRepository) List(ctx context.Context) ([]*models.SaleDetail, error) {
	var sales []*models.Sale
	if err := r.coll.FindAll(ctx, store.Filter{}, store.DefaultSort, &sales); err != nil {
		return nil, err
	}

	details := make([]*models.SaleDetail, 0, len(sales))
	for _, sale := range sales {
		details = append(details, r.hydrate(ctx, sale))
	}
	return details, nil
}

func (r *saleRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return r.coll.Update(ctx, id, updates)
}

// Delete reads the sale first so a missing id fails with not-found before
// anything is mutated, then removes the row and releases the vehicle.
func (r *saleRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	var sale models.Sale
	if err := r.coll.FindByID(ctx, id, &sale); err != nil {
		return err
	}

	if err := r.coll.Delete(ctx, id); err != nil {
		return err
	}

	if err := r.vehicles.UpdateStatus(ctx, sale.VehicleID, models.VehicleStatusAvailable); err != nil {
		r.log.WithFields(map[string]interface{}{
			"sale_id":    id.Hex(),
			"vehicle_id": sale.VehicleID.Hex(),
		}).WithError(err).Warn("sale deleted but vehicle status was not restored")
		return apperrors.Persistence("sale deleted but vehicle status update failed", err)
	}

	return nil
}

// hydrate attaches the referenced vehicle and customer records; a missing
// reference leaves the field nil rather than failing the whole read.
func (r *saleRepository) hydrate(ctx context.Context, sale *models.Sale) *models.SaleDetail {
	detail := &models.SaleDetail{Sale: *sale}

	if vehicle, err := r.vehicles.GetByID(ctx, sale.VehicleID); err == nil {
		detail.Vehicle = vehicle
	}
	if customer, err := r.customers.GetByID(ctx, sale.CustomerID); err == nil {
		detail.Customer = customer
	}

	return detail
}
