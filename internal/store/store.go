// Package store is the record persistence contract every repository is
// built on: generic single-collection CRUD with timestamp bookkeeping.
// The backend generates identifiers; inserts stamp created_at and
// updated_at, updates re-stamp updated_at. Filters are equality-only.
package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Filter holds equality conditions, field name to required value.
type Filter map[string]interface{}

type Sort struct {
	Field     string
	Ascending bool
}

// DefaultSort orders newest-first; service appointments override this
// with soonest-first on appointment_date.
var DefaultSort = Sort{Field: "created_at", Ascending: false}

type Collection interface {
	// FindAll decodes every matching document into out, which must be a
	// pointer to a slice.
	FindAll(ctx context.Context, filter Filter, sort Sort, out interface{}) error
	FindByID(ctx context.Context, id primitive.ObjectID, out interface{}) error
	// Insert stores the document and returns the generated identifier.
	Insert(ctx context.Context, doc interface{}) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type Store interface {
	Collection(name string) Collection
}

// toDocument flattens a typed record into a generic document and stamps
// identifier and timestamps. updated_at starts equal to created_at.
func toDocument(doc interface{}) (bson.M, primitive.ObjectID, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, primitive.NilObjectID, err
	}

	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, primitive.NilObjectID, err
	}

	id := primitive.NewObjectID()
	now := time.Now().UTC().Truncate(time.Millisecond)
	m["_id"] = id
	m["created_at"] = now
	m["updated_at"] = now

	return m, id, nil
}
