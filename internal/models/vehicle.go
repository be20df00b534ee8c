package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "available"
	VehicleStatusPending     VehicleStatus = "pending"
	VehicleStatusSold        VehicleStatus = "sold"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
)

func (s VehicleStatus) Valid() bool {
	switch s {
	case VehicleStatusAvailable, VehicleStatusPending, VehicleStatusSold, VehicleStatusMaintenance:
		return true
	}
	return false
}

type FuelType string

const (
	FuelTypePetrol   FuelType = "petrol"
	FuelTypeDiesel   FuelType = "diesel"
	FuelTypeElectric FuelType = "electric"
	FuelTypeHybrid   FuelType = "hybrid"
)

func (f FuelType) Valid() bool {
	switch f {
	case FuelTypePetrol, FuelTypeDiesel, FuelTypeElectric, FuelTypeHybrid:
		return true
	}
	return false
}

type Transmission string

const (
	TransmissionAutomatic     Transmission = "automatic"
	TransmissionManual        Transmission = "manual"
	TransmissionSemiAutomatic Transmission = "semi-automatic"
)

func (t Transmission) Valid() bool {
	switch t {
	case TransmissionAutomatic, TransmissionManual, TransmissionSemiAutomatic:
		return true
	}
	return false
}

type BodyType string

const (
	BodyTypeSedan       BodyType = "sedan"
	BodyTypeSUV         BodyType = "suv"
	BodyTypeCoupe       BodyType = "coupe"
	BodyTypeConvertible BodyType = "convertible"
	BodyTypeHatchback   BodyType = "hatchback"
	BodyTypeWagon       BodyType = "wagon"
	BodyTypePickup      BodyType = "pickup"
)

func (b BodyType) Valid() bool {
	switch b {
	case BodyTypeSedan, BodyTypeSUV, BodyTypeCoupe, BodyTypeConvertible,
		BodyTypeHatchback, BodyTypeWagon, BodyTypePickup:
		return true
	}
	return false
}

// Vehicle is a unit of dealership inventory. ImagePaths holds object-store
// keys in the vehicle_images bucket, in display order; the blobs themselves
// are managed explicitly through the media service.
type Vehicle struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Make         string             `json:"make" bson:"make" validate:"required"`
	Model        string             `json:"model" bson:"model" validate:"required"`
	Year         int                `json:"year" bson:"year" validate:"required,gte=1900,lte=2100"`
	Price        float64            `json:"price" bson:"price" validate:"required,gt=0"`
	Mileage      int                `json:"mileage" bson:"mileage" validate:"gte=0"`
	VIN          string             `json:"vin" bson:"vin" validate:"required,vin"`
	Color        string             `json:"color" bson:"color"`
	FuelType     FuelType           `json:"fuel_type" bson:"fuel_type" validate:"required"`
	Transmission Transmission       `json:"transmission" bson:"transmission" validate:"required"`
	BodyType     BodyType           `json:"body_type" bson:"body_type" validate:"required"`
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
	Features     []string           `json:"features,omitempty" bson:"features,omitempty"`
	Status       VehicleStatus      `json:"status" bson:"status"`
	ImagePaths   []string           `json:"image_paths" bson:"image_paths"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}
