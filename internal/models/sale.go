package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentMethod string

const (
	PaymentMethodCash    PaymentMethod = "cash"
	PaymentMethodFinance PaymentMethod = "finance"
	PaymentMethodLease   PaymentMethod = "lease"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentMethodCash, PaymentMethodFinance, PaymentMethodLease:
		return true
	}
	return false
}

// Sale references exactly one vehicle and one customer. Creating a sale
// also flips the vehicle status to sold; deleting it flips the status
// back. The two steps are not atomic.
type Sale struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	VehicleID     primitive.ObjectID `json:"vehicle_id" bson:"vehicle_id" validate:"required"`
	CustomerID    primitive.ObjectID `json:"customer_id" bson:"customer_id" validate:"required"`
	SalePrice     float64            `json:"sale_price" bson:"sale_price" validate:"required,gt=0"`
	SaleDate      time.Time          `json:"sale_date" bson:"sale_date" validate:"required"`
	PaymentMethod PaymentMethod      `json:"payment_method" bson:"payment_method" validate:"required"`
	Salesperson   string             `json:"salesperson" bson:"salesperson"`
	Notes         string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// SaleDetail is a sale hydrated with its referenced records for listing
// screens. Either reference may be nil if the row was removed since.
type SaleDetail struct {
	Sale     `bson:",inline"`
	Vehicle  *Vehicle  `json:"vehicle,omitempty" bson:"-"`
	Customer *Customer `json:"customer,omitempty" bson:"-"`
}
