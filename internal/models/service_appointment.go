package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "scheduled"
	AppointmentStatusInProgress AppointmentStatus = "in_progress"
	AppointmentStatusCompleted  AppointmentStatus = "completed"
	AppointmentStatusCancelled  AppointmentStatus = "cancelled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusInProgress,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// ServiceAppointment links a customer and optionally one of our vehicles;
// VehicleInfo carries a free-text description when the car being serviced
// is not in inventory.
type ServiceAppointment struct {
	ID              primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	CustomerID      primitive.ObjectID  `json:"customer_id" bson:"customer_id" validate:"required"`
	VehicleID       *primitive.ObjectID `json:"vehicle_id,omitempty" bson:"vehicle_id,omitempty"`
	VehicleInfo     string              `json:"vehicle_info,omitempty" bson:"vehicle_info,omitempty"`
	AppointmentDate time.Time           `json:"appointment_date" bson:"appointment_date" validate:"required"`
	ServiceType     string              `json:"service_type" bson:"service_type" validate:"required"`
	Status          AppointmentStatus   `json:"status" bson:"status"`
	Notes           string              `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt       time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}
