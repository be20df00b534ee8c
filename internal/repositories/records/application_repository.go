package records

import (
	"context"

	"dealerdesk/internal/models"
	"dealerdesk/internal/repositories/interfaces"
	"dealerdesk/internal/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type applicationRepository struct {
	coll store.Collection
}

func NewApplicationRepository(s store.Store) interfaces.ApplicationRepository {
	return &applicationRepository{coll: s.Collection("applications")}
}

func (r *applicationRepository) Create(ctx context.Context, application *models.Application) error {
	if application.Status == "" {
		application.Status = models.ApplicationStatusPending
	}

	id, err := r.coll.Insert(ctx, application)
	if err != nil {
		return err
	}
	return r.coll.FindByID(ctx, id, application)
}

func (r *applicationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error) {
	var application models.Application
	if err := r.coll.FindByID(ctx, id, &application); err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) List(ctx context.Context) ([]*models.Application, error) {
	var applications []*models.Application
	if err := r.coll.FindAll(ctx, store.Filter{}, store.DefaultSort, &applications); err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ApplicationStatus) error {
	return r.coll.Update(ctx, id, map[string]interface{}{"status": status})
}

func (r *applicationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.coll.Delete(ctx, id)
}
