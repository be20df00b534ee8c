package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer email is unique across the collection.
type Customer struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName string             `json:"first_name" bson:"first_name" validate:"required"`
	LastName  string             `json:"last_name" bson:"last_name" validate:"required"`
	Email     string             `json:"email" bson:"email" validate:"required,email"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,phone"`
	Address   string             `json:"address,omitempty" bson:"address,omitempty"`
	City      string             `json:"city,omitempty" bson:"city,omitempty"`
	State     string             `json:"state,omitempty" bson:"state,omitempty"`
	Zip       string             `json:"zip,omitempty" bson:"zip,omitempty"`
	Notes     string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}
