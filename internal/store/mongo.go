package store

import (
	"context"
	"fmt"
	"time"

	"dealerdesk/internal/apperrors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) Collection(name string) Collection {
	return &mongoCollection{name: name, coll: s.db.Collection(name)}
}

type mongoCollection struct {
	name string
	coll *mongo.Collection
}

func (c *mongoCollection) FindAll(ctx context.Context, filter Filter, sort Sort, out interface{}) error {
	query := bson.M{}
	for field, value := range filter {
		query[field] = value
	}

	direction := -1
	if sort.Ascending {
		direction = 1
	}
	opts := options.Find().SetSort(bson.D{{Key: sort.Field, Value: direction}})

	cursor, err := c.coll.Find(ctx, query, opts)
	if err != nil {
		return apperrors.Persistence(fmt.Sprintf("failed to fetch %s", c.name), err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return apperrors.Persistence(fmt.Sprintf("failed to decode %s", c.name), err)
	}

	return nil
}

func (c *mongoCollection) FindByID(ctx context.Context, id primitive.ObjectID, out interface{}) error {
	err := c.coll.FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return apperrors.NotFound(recordName(c.name))
		}
		return apperrors.Persistence(fmt.Sprintf("failed to fetch %s", c.name), err)
	}
	return nil
}

func (c *mongoCollection) Insert(ctx context.Context, doc interface{}) (primitive.ObjectID, error) {
	document, id, err := toDocument(doc)
	if err != nil {
		return primitive.NilObjectID, apperrors.Persistence(fmt.Sprintf("failed to encode %s", c.name), err)
	}

	_, err = c.coll.InsertOne(ctx, document)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, apperrors.DuplicateKey(
				fmt.Sprintf("%s violates a unique constraint", recordName(c.name)), err)
		}
		return primitive.NilObjectID, apperrors.Persistence(fmt.Sprintf("failed to create %s", recordName(c.name)), err)
	}

	return id, nil
}

func (c *mongoCollection) Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error {
	updates := bson.M{}
	for field, value := range fields {
		updates[field] = value
	}
	updates["updated_at"] = time.Now().UTC().Truncate(time.Millisecond)

	result, err := c.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.DuplicateKey(
				fmt.Sprintf("%s violates a unique constraint", recordName(c.name)), err)
		}
		return apperrors.Persistence(fmt.Sprintf("failed to update %s", recordName(c.name)), err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound(recordName(c.name))
	}

	return nil
}

func (c *mongoCollection) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperrors.Persistence(fmt.Sprintf("failed to delete %s", recordName(c.name)), err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NotFound(recordName(c.name))
	}

	return nil
}

// recordName turns a collection name into the singular used in error
// messages: "vehicles" -> "vehicle".
func recordName(collection string) string {
	if len(collection) > 1 && collection[len(collection)-1] == 's' {
		return collection[:len(collection)-1]
	}
	return collection
}
