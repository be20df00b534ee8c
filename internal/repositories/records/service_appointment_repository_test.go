package records

import (
	"context"
	"testing"
	"time"

	"dealerdesk/internal/apperrors"
	"dealerdesk/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAppointmentCreateDefaults(t *testing.T) {
	repos := newTestRepos(t)
	customer := repos.mustCreateCustomer(t, "jane.doe@example.com")

	appointment := repos.mustCreateAppointment(t, customer, time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC))

	if appointment.Status != models.AppointmentStatusScheduled {
		t.Errorf("status %q, want %q", appointment.Status, models.AppointmentStatusScheduled)
	}
	if appointment.ID.IsZero() {
		t.Fatal("expected a generated identifier")
	}
}

func TestAppointmentCreateMissingCustomer(t *testing.T) {
	repos := newTestRepos(t)

	appointment := &models.ServiceAppointment{
		CustomerID:      primitive.NewObjectID(),
		VehicleInfo:     "2012 Ford Focus",
		AppointmentDate: time.Now().Add(24 * time.Hour),
		ServiceType:     "inspection",
	}
	err := repos.appointments.Create(context.Background(), appointment)
	if !apperrors.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestAppointmentListSoonestFirst(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()
	customer := repos.mustCreateCustomer(t, "jane.doe@example.com")

	later := repos.mustCreateAppointment(t, customer, time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC))
	sooner := repos.mustCreateAppointment(t, customer, time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC))
	latest := repos.mustCreateAppointment(t, customer, time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC))

	appointments, err := repos.appointments.List(ctx, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(appointments) != 3 {
		t.Fatalf("expected 3 appointments, got %d", len(appointments))
	}
	if appointments[0].ID != sooner.ID || appointments[1].ID != later.ID || appointments[2].ID != latest.ID {
		t.Fatal("appointments are not ordered soonest-first")
	}
}

func TestAppointmentListByStatus(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()
	customer := repos.mustCreateCustomer(t, "jane.doe@example.com")

	appointment := repos.mustCreateAppointment(t, customer, time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC))
	repos.mustCreateAppointment(t, customer, time.Date(2025, 8, 2, 9, 0, 0, 0, time.UTC))

	if err := repos.appointments.Update(ctx, appointment.ID, map[string]interface{}{
		"status": models.AppointmentStatusCompleted,
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	completed, err := repos.appointments.List(ctx, models.AppointmentStatusCompleted)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(completed) != 1 || completed[0].ID != appointment.ID {
		t.Fatalf("expected only the completed appointment, got %d", len(completed))
	}
}
