package records

import (
	"context"
	"testing"
	"time"

	"dealerdesk/internal/models"
	"dealerdesk/internal/repositories/interfaces"
	"dealerdesk/internal/store"
	"dealerdesk/pkg/logger"
)

// testRepos wires every repository over a shared in-memory store with
// the same unique constraints the migrations create.
type testRepos struct {
	store        *store.MemoryStore
	vehicles     interfaces.VehicleRepository
	customers    interfaces.CustomerRepository
	sales        interfaces.SaleRepository
	appointments interfaces.ServiceAppointmentRepository
	applications interfaces.ApplicationRepository
}

func newTestRepos(t *testing.T) *testRepos {
	t.Helper()

	s := store.NewMemoryStore()
	s.SetUniqueKeys("vehicles", "vin")
	s.SetUniqueKeys("customers", "email")
	s.SetUniqueKeys("applications", "reference_number")

	log := logger.NewNop()
	vehicles := NewVehicleRepository(s, nil, log)
	customers := NewCustomerRepository(s)

	return &testRepos{
		store:        s,
		vehicles:     vehicles,
		customers:    customers,
		sales:        NewSaleRepository(s, vehicles, customers, log),
		appointments: NewServiceAppointmentRepository(s, customers),
		applications: NewApplicationRepository(s),
	}
}

func (r *testRepos) mustCreateVehicle(t *testing.T, vin string) *models.Vehicle {
	t.Helper()

	vehicle := &models.Vehicle{
		Make:         "BMW",
		Model:        "M5",
		Year:         2021,
		Price:        80000,
		Mileage:      12000,
		VIN:          vin,
		Color:        "Black",
		FuelType:     models.FuelTypePetrol,
		Transmission: models.TransmissionAutomatic,
		BodyType:     models.BodyTypeSedan,
	}
	if err := r.vehicles.Create(context.Background(), vehicle); err != nil {
		t.Fatalf("create vehicle: %v", err)
	}
	return vehicle
}

func (r *testRepos) mustCreateCustomer(t *testing.T, email string) *models.Customer {
	t.Helper()

	customer := &models.Customer{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     email,
		Phone:     "+1 555 010 9000",
	}
	if err := r.customers.Create(context.Background(), customer); err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return customer
}

func (r *testRepos) mustCreateAppointment(t *testing.T, customer *models.Customer, at time.Time) *models.ServiceAppointment {
	t.Helper()

	appointment := &models.ServiceAppointment{
		CustomerID:      customer.ID,
		VehicleInfo:     "2015 Honda Civic",
		AppointmentDate: at,
		ServiceType:     "oil change",
	}
	if err := r.appointments.Create(context.Background(), appointment); err != nil {
		t.Fatalf("create appointment: %v", err)
	}
	return appointment
}
