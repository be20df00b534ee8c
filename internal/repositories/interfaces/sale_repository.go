package interfaces

import (
	"context"

	"dealerdesk/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SaleRepository owns the sale/vehicle-status coupling: creating a sale
// marks the vehicle sold, deleting it marks the vehicle available again.
// The two steps are best-effort, not transactional.
type SaleRepository interface {
	Create(ctx context.Context, sale *models.Sale) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.SaleDetail, error)
	List(ctx context.Context) ([]*models.SaleDetail, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
