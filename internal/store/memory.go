package store

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"dealerdesk/internal/apperrors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is a map-backed Store with the same semantics as the Mongo
// implementation, including configurable unique keys. It backs the test
// suite and local development without a database.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string]*memoryCollection
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]*memoryCollection)}
}

// SetUniqueKeys declares fields whose values must be unique within the
// collection, the in-memory stand-in for a unique index.
func (s *MemoryStore) SetUniqueKeys(collection string, fields ...string) {
	c := s.collection(collection)
	c.mu.Lock()
	c.unique = fields
	c.mu.Unlock()
}

func (s *MemoryStore) Collection(name string) Collection {
	return s.collection(name)
}

func (s *MemoryStore) collection(name string) *memoryCollection {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[name]
	if !ok {
		c = &memoryCollection{name: name, docs: make(map[primitive.ObjectID]bson.M)}
		s.collections[name] = c
	}
	return c
}

type memoryCollection struct {
	mu     sync.RWMutex
	name   string
	docs   map[primitive.ObjectID]bson.M
	unique []string
}

func (c *memoryCollection) FindAll(ctx context.Context, filter Filter, sortSpec Sort, out interface{}) error {
	c.mu.RLock()
	var matched []bson.M
	for _, doc := range c.docs {
		if matchesFilter(doc, filter) {
			matched = append(matched, doc)
		}
	}
	c.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		a := matched[i][sortSpec.Field]
		b := matched[j][sortSpec.Field]
		if sortSpec.Ascending {
			return lessValue(a, b)
		}
		return lessValue(b, a)
	})

	return decodeSlice(matched, out)
}

func (c *memoryCollection) FindByID(ctx context.Context, id primitive.ObjectID, out interface{}) error {
	c.mu.RLock()
	doc, ok := c.docs[id]
	c.mu.RUnlock()

	if !ok {
		return apperrors.NotFound(recordName(c.name))
	}
	return decodeDocument(doc, out)
}

func (c *memoryCollection) Insert(ctx context.Context, doc interface{}) (primitive.ObjectID, error) {
	document, id, err := toDocument(doc)
	if err != nil {
		return primitive.NilObjectID, apperrors.Persistence(fmt.Sprintf("failed to encode %s", c.name), err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, field := range c.unique {
		value, ok := document[field]
		if !ok || value == "" {
			continue
		}
		for _, existing := range c.docs {
			if equalValue(existing[field], value) {
				return primitive.NilObjectID, apperrors.DuplicateKey(
					fmt.Sprintf("%s violates a unique constraint on %s", recordName(c.name), field), nil)
			}
		}
	}

	c.docs[id] = document
	return id, nil
}

func (c *memoryCollection) Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc, ok := c.docs[id]
	if !ok {
		return apperrors.NotFound(recordName(c.name))
	}

	for _, field := range c.unique {
		value, ok := fields[field]
		if !ok || value == "" {
			continue
		}
		for otherID, existing := range c.docs {
			if otherID != id && equalValue(existing[field], value) {
				return apperrors.DuplicateKey(
					fmt.Sprintf("%s violates a unique constraint on %s", recordName(c.name), field), nil)
			}
		}
	}

	for field, value := range fields {
		doc[field] = normalizeValue(value)
	}
	doc["updated_at"] = time.Now().UTC().Truncate(time.Millisecond)

	return nil
}

func (c *memoryCollection) Delete(ctx context.Context, id primitive.ObjectID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.docs[id]; !ok {
		return apperrors.NotFound(recordName(c.name))
	}
	delete(c.docs, id)
	return nil
}

func matchesFilter(doc bson.M, filter Filter) bool {
	for field, want := range filter {
		if !equalValue(doc[field], want) {
			return false
		}
	}
	return true
}

// equalValue compares across the typed values repositories pass in and
// the generic values a BSON round-trip produces (typed strings become
// plain strings, time.Time becomes primitive.DateTime).
func equalValue(a, b interface{}) bool {
	if aID, ok := a.(primitive.ObjectID); ok {
		bID, ok := b.(primitive.ObjectID)
		return ok && aID == bID
	}
	if reflect.DeepEqual(a, b) {
		return true
	}
	return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b)
}

func lessValue(a, b interface{}) bool {
	switch av := a.(type) {
	case primitive.DateTime:
		if bv, ok := b.(primitive.DateTime); ok {
			return av < bv
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Before(bv)
		}
	case int32:
		if bv, ok := b.(int32); ok {
			return av < bv
		}
	case int64:
		if bv, ok := b.(int64); ok {
			return av < bv
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return av < bv
		}
	case string:
		if bv, ok := b.(string); ok {
			return av < bv
		}
	}
	return fmt.Sprintf("%v", a) < fmt.Sprintf("%v", b)
}

// normalizeValue runs a single value through the BSON codec so stored
// documents look the same whether they came from Insert or Update.
func normalizeValue(value interface{}) interface{} {
	raw, err := bson.Marshal(bson.M{"v": value})
	if err != nil {
		return value
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return value
	}
	return m["v"]
}

func decodeDocument(doc bson.M, out interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return apperrors.Persistence("failed to encode record", err)
	}
	if err := bson.Unmarshal(raw, out); err != nil {
		return apperrors.Persistence("failed to decode record", err)
	}
	return nil
}

// decodeSlice decodes documents into out, a pointer to a slice of structs
// or struct pointers, mirroring mongo's cursor.All.
func decodeSlice(docs []bson.M, out interface{}) error {
	outValue := reflect.ValueOf(out)
	if outValue.Kind() != reflect.Ptr || outValue.Elem().Kind() != reflect.Slice {
		return apperrors.Persistence("result argument must be a pointer to a slice", nil)
	}

	sliceValue := outValue.Elem()
	elemType := sliceValue.Type().Elem()

	result := reflect.MakeSlice(sliceValue.Type(), 0, len(docs))
	for _, doc := range docs {
		var target reflect.Value
		if elemType.Kind() == reflect.Ptr {
			target = reflect.New(elemType.Elem())
		} else {
			target = reflect.New(elemType)
		}

		if err := decodeDocument(doc, target.Interface()); err != nil {
			return err
		}

		if elemType.Kind() == reflect.Ptr {
			result = reflect.Append(result, target)
		} else {
			result = reflect.Append(result, target.Elem())
		}
	}

	sliceValue.Set(result)
	return nil
}
