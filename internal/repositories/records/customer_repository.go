package records

import (
	"context"

	"dealerdesk/internal/models"
	"dealerdesk/internal/repositories/interfaces"
	"dealerdesk/internal/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type customerRepository struct {
	coll store.Collection
}

func NewCustomerRepository(s store.Store) interfaces.CustomerRepository {
	return &customerRepository{coll: s.Collection("customers")}
}

func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	id, err := r.coll.Insert(ctx, customer)
	if err != nil {
		return err
	}
	return r.coll.FindByID(ctx, id, customer)
}

func (r *customerRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Customer, error) {
	var customer models.Customer
	if err := r.coll.FindByID(ctx, id, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) List(ctx context.Context) ([]*models.Customer, error) {
	var customers []*models.Customer
	if err := r.coll.FindAll(ctx, store.Filter{}, store.DefaultSort, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return r.coll.Update(ctx, id, updates)
}

func (r *customerRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.coll.Delete(ctx, id)
}
