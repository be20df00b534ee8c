package records

import (
	"context"
	"testing"

	"dealerdesk/internal/apperrors"
	"dealerdesk/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newApplication(reference string) *models.Application {
	return &models.Application{
		FirstName:       "Sam",
		LastName:        "Taylor",
		Email:           "sam.taylor@example.com",
		ReferenceNumber: reference,
	}
}

func TestApplicationCreateDefaultsToPending(t *testing.T) {
	repos := newTestRepos(t)

	application := newApplication("APP-A1B2C3D4")
	if err := repos.applications.Create(context.Background(), application); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if application.Status != models.ApplicationStatusPending {
		t.Errorf("status %q, want %q", application.Status, models.ApplicationStatusPending)
	}
	if application.CreatedAt.IsZero() {
		t.Error("created_at was not stamped")
	}
}

func TestApplicationDuplicateReference(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	if err := repos.applications.Create(ctx, newApplication("APP-SAME")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	err := repos.applications.Create(ctx, newApplication("APP-SAME"))
	if !apperrors.IsDuplicate(err) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestApplicationUpdateStatus(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	application := newApplication("APP-STATUS01")
	if err := repos.applications.Create(ctx, application); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repos.applications.UpdateStatus(ctx, application.ID, models.ApplicationStatusApproved); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	got, err := repos.applications.GetByID(ctx, application.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != models.ApplicationStatusApproved {
		t.Errorf("status %q, want approved", got.Status)
	}
}

func TestApplicationUpdateStatusMissing(t *testing.T) {
	repos := newTestRepos(t)

	err := repos.applications.UpdateStatus(context.Background(), primitive.NewObjectID(), models.ApplicationStatusRejected)
	if !apperrors.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
