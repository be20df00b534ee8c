package interfaces

import (
	"context"

	"dealerdesk/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VehicleFilter holds the equality filters the inventory screens use.
// Zero-valued fields are ignored.
type VehicleFilter struct {
	Make   string
	Model  string
	Status models.VehicleStatus
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *models.Vehicle) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error)
	List(ctx context.Context, filter VehicleFilter) ([]*models.Vehicle, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.VehicleStatus) error
	AddImages(ctx context.Context, id primitive.ObjectID, paths []string) error
	RemoveImage(ctx context.Context, id primitive.ObjectID, path string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
