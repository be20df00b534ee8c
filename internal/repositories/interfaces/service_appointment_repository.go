package interfaces

import (
	"context"

	"dealerdesk/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ServiceAppointmentRepository interface {
	Create(ctx context.Context, appointment *models.ServiceAppointment) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.ServiceAppointment, error)
	// List returns appointments soonest-first, optionally filtered by status.
	List(ctx context.Context, status models.AppointmentStatus) ([]*models.ServiceAppointment, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
