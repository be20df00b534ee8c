package services

import (
	"context"
	"time"

	"dealerdesk/internal/apperrors"
	"dealerdesk/internal/models"
	"dealerdesk/internal/repositories/interfaces"
	"dealerdesk/pkg/logger"
)

// SeedService loads a small sample inventory for fresh environments.
// Seeding a non-empty database is refused rather than deduplicated.
type SeedService struct {
	vehicles  interfaces.VehicleRepository
	customers interfaces.CustomerRepository
	log       *logger.Logger
}

func NewSeedService(vehicles interfaces.VehicleRepository, customers interfaces.CustomerRepository, log *logger.Logger) *SeedService {
	return &SeedService{
		vehicles:  vehicles,
		customers: customers,
		log:       log,
	}
}

type SeedResult struct {
	Vehicles  int `json:"vehicles"`
	Customers int `json:"customers"`
}

func (s *SeedService) Seed(ctx context.Context) (*SeedResult, error) {
	existing, err := s.vehicles.List(ctx, interfaces.VehicleFilter{})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, apperrors.Validation("database already contains vehicles, refusing to seed")
	}

	result := &SeedResult{}

	for _, vehicle := range sampleVehicles() {
		if err := s.vehicles.Create(ctx, vehicle); err != nil {
			return result, err
		}
		result.Vehicles++
	}

	for _, customer := range sampleCustomers() {
		if err := s.customers.Create(ctx, customer); err != nil {
			return result, err
		}
		result.Customers++
	}

	s.log.WithFields(map[string]interface{}{
		"vehicles":  result.Vehicles,
		"customers": result.Customers,
	}).Info("sample data seeded")

	return result, nil
}

func sampleVehicles() []*models.Vehicle {
	return []*models.Vehicle{
		{
			Make:         "Porsche",
			Model:        "911 GT2 RS",
			Year:         2022,
			Price:        120000,
			Mileage:      5000,
			VIN:          "WP0AD2A72JK123456",
			Color:        "Yellow",
			FuelType:     models.FuelTypePetrol,
			Transmission: models.TransmissionAutomatic,
			BodyType:     models.BodyTypeCoupe,
			Description:  "Stunning Porsche 911 GT2 RS with low mileage. This vehicle is in excellent condition.",
			Features:     []string{"Leather Seats", "Navigation System", "Bluetooth", "Heated Seats", "Premium Sound"},
			Status:       models.VehicleStatusAvailable,
		},
		{
			Make:         "Mercedes-Benz",
			Model:        "AMG GT",
			Year:         2023,
			Price:        95000,
			Mileage:      2000,
			VIN:          "WDDYJ7JA3KA123457",
			Color:        "Silver",
			FuelType:     models.FuelTypePetrol,
			Transmission: models.TransmissionAutomatic,
			BodyType:     models.BodyTypeCoupe,
			Description:  "Beautiful Mercedes-AMG GT with premium features and excellent performance.",
			Features:     []string{"Leather Seats", "Navigation System", "Bluetooth", "Heated Seats", "Premium Sound"},
			Status:       models.VehicleStatusAvailable,
		},
		{
			Make:         "Lamborghini",
			Model:        "Aventador",
			Year:         2022,
			Price:        150000,
			Mileage:      3000,
			VIN:          "ZHWES4ZF8LLA12345",
			Color:        "Orange",
			FuelType:     models.FuelTypePetrol,
			Transmission: models.TransmissionManual,
			BodyType:     models.BodyTypeCoupe,
			Description:  "Iconic Lamborghini Aventador with striking design and incredible performance.",
			Features:     []string{"Leather Seats", "Navigation System", "Bluetooth", "Carbon Fiber Interior", "Premium Sound"},
			Status:       models.VehicleStatusAvailable,
		},
	}
}

func sampleCustomers() []*models.Customer {
	return []*models.Customer{
		{
			FirstName: "James",
			LastName:  "Wilson",
			Email:     "james.wilson@example.com",
			Phone:     "+1 555 010 2001",
			City:      "Austin",
			State:     "TX",
			Notes:     "Repeat buyer, interested in sports coupes. Last contact " + time.Now().Format("2006-01-02") + ".",
		},
		{
			FirstName: "Maria",
			LastName:  "Garcia",
			Email:     "maria.garcia@example.com",
			Phone:     "+1 555 010 2002",
			City:      "Dallas",
			State:     "TX",
		},
	}
}
