package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusReviewing ApplicationStatus = "reviewing"
	ApplicationStatusApproved  ApplicationStatus = "approved"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewing,
		ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application is a job application from the careers intake form. The two
// document paths point into the id_documents bucket and may be empty: an
// application whose uploads failed is still valid.
type Application struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName       string             `json:"first_name" bson:"first_name" validate:"required"`
	LastName        string             `json:"last_name" bson:"last_name" validate:"required"`
	Email           string             `json:"email" bson:"email" validate:"required,email"`
	SSN             string             `json:"ssn,omitempty" bson:"ssn,omitempty"`
	Phone           string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Address         string             `json:"address,omitempty" bson:"address,omitempty"`
	City            string             `json:"city,omitempty" bson:"city,omitempty"`
	State           string             `json:"state,omitempty" bson:"state,omitempty"`
	Zip             string             `json:"zip,omitempty" bson:"zip,omitempty"`
	ReferenceNumber string             `json:"reference_number" bson:"reference_number"`
	IDFrontPath     string             `json:"id_front_path,omitempty" bson:"id_front_path,omitempty"`
	IDBackPath      string             `json:"id_back_path,omitempty" bson:"id_back_path,omitempty"`
	Status          ApplicationStatus  `json:"status" bson:"status"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}
