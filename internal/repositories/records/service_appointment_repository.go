package records

import (
	"context"

	"dealerdesk/internal/models"
	"dealerdesk/internal/repositories/interfaces"
	"dealerdesk/internal/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointments list soonest-first, unlike every other collection.
var appointmentSort = store.Sort{Field: "appointment_date", Ascending: true}

type serviceAppointmentRepository struct {
	coll      store.Collection
	customers interfaces.CustomerRepository
}

func NewServiceAppointmentRepository(s store.Store, customers interfaces.CustomerRepository) interfaces.ServiceAppointmentRepository {
	return &serviceAppointmentRepository{
		coll:      s.Collection("service_appointments"),
		customers: customers,
	}
}

func (r *serviceAppointmentRepository) Create(ctx context.Context, appointment *models.ServiceAppointment) error {
	if _, err := r.customers.GetByID(ctx, appointment.CustomerID); err != nil {
		return err
	}

	if appointment.Status == "" {
		appointment.Status = models.AppointmentStatusScheduled
	}

	id, err := r.coll.Insert(ctx, appointment)
	if err != nil {
		return err
	}
	return r.coll.FindByID(ctx, id, appointment)
}

func (r *serviceAppointmentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ServiceAppointment, error) {
	var appointment models.ServiceAppointment
	if err := r.coll.FindByID(ctx, id, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *serviceAppointmentRepository) List(ctx context.Context, status models.AppointmentStatus) ([]*models.ServiceAppointment, error) {
	filter := store.Filter{}
	if status != "" {
		filter["status"] = status
	}

	var appointments []*models.ServiceAppointment
	if err := r.coll.FindAll(ctx, filter, appointmentSort, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *serviceAppointmentRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return r.coll.Update(ctx, id, updates)
}

func (r *serviceAppointmentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.coll.Delete(ctx, id)
}
