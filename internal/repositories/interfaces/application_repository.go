package interfaces

import (
	"context"

	"dealerdesk/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApplicationRepository is insert-oriented: applications arrive through
// the intake pipeline and are only read, status-tracked and removed from
// the back office afterwards.
type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error)
	List(ctx context.Context) ([]*models.Application, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ApplicationStatus) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
