package store

import (
	"context"
	"testing"
	"time"

	"dealerdesk/internal/apperrors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type note struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Rank      int                `bson:"rank"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at,omitempty"`
}

func TestInsertStampsIdentifierAndTimestamps(t *testing.T) {
	coll := NewMemoryStore().Collection("notes")
	ctx := context.Background()

	id, err := coll.Insert(ctx, &note{Title: "first"})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if id.IsZero() {
		t.Fatal("expected a generated identifier")
	}

	var got note
	if err := coll.FindByID(ctx, id, &got); err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.ID != id {
		t.Errorf("stored id %s, want %s", got.ID.Hex(), id.Hex())
	}
	if got.CreatedAt.IsZero() {
		t.Error("created_at was not stamped")
	}
	if !got.UpdatedAt.Equal(got.CreatedAt) {
		t.Errorf("updated_at %v should start equal to created_at %v", got.UpdatedAt, got.CreatedAt)
	}
}

func TestFindByIDMissing(t *testing.T) {
	coll := NewMemoryStore().Collection("notes")

	var got note
	err := coll.FindByID(context.Background(), primitive.NewObjectID(), &got)
	if !apperrors.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestFindAllEqualityFilter(t *testing.T) {
	coll := NewMemoryStore().Collection("notes")
	ctx := context.Background()

	for _, title := range []string{"keep", "drop", "keep"} {
		if _, err := coll.Insert(ctx, &note{Title: title}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	var got []note
	if err := coll.FindAll(ctx, Filter{"title": "keep"}, DefaultSort, &got); err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	for _, n := range got {
		if n.Title != "keep" {
			t.Errorf("unexpected title %q", n.Title)
		}
	}
}

func TestFindAllSortAscending(t *testing.T) {
	coll := NewMemoryStore().Collection("notes")
	ctx := context.Background()

	for _, rank := range []int{3, 1, 2} {
		if _, err := coll.Insert(ctx, &note{Title: "n", Rank: rank}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	var got []note
	if err := coll.FindAll(ctx, Filter{}, Sort{Field: "rank", Ascending: true}, &got); err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	for i, want := range []int{1, 2, 3} {
		if got[i].Rank != want {
			t.Fatalf("position %d has rank %d, want %d", i, got[i].Rank, want)
		}
	}
}

func TestFindAllNewestFirstDefault(t *testing.T) {
	coll := NewMemoryStore().Collection("notes")
	ctx := context.Background()

	// Timestamps are millisecond-precision, so space the inserts out.
	for _, title := range []string{"oldest", "middle", "newest"} {
		if _, err := coll.Insert(ctx, &note{Title: title}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	var got []*note
	if err := coll.FindAll(ctx, Filter{}, DefaultSort, &got); err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if got[0].Title != "newest" || got[2].Title != "oldest" {
		t.Fatalf("wrong order: %s, %s, %s", got[0].Title, got[1].Title, got[2].Title)
	}
}

func TestUpdateFieldsAndRestamp(t *testing.T) {
	coll := NewMemoryStore().Collection("notes")
	ctx := context.Background()

	id, err := coll.Insert(ctx, &note{Title: "before"})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	var created note
	if err := coll.FindByID(ctx, id, &created); err != nil {
		t.Fatalf("FindByID: %v", err)
	}

	time.Sleep(2 * time.Millisecond)
	if err := coll.Update(ctx, id, map[string]interface{}{"title": "after"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	var got note
	if err := coll.FindByID(ctx, id, &got); err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Title != "after" {
		t.Errorf("title %q, want %q", got.Title, "after")
	}
	if !got.UpdatedAt.After(created.UpdatedAt) {
		t.Errorf("updated_at %v was not advanced past %v", got.UpdatedAt, created.UpdatedAt)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("created_at changed from %v to %v", created.CreatedAt, got.CreatedAt)
	}
}

func TestUpdateMissing(t *testing.T) {
	coll := NewMemoryStore().Collection("notes")

	err := coll.Update(context.Background(), primitive.NewObjectID(), map[string]interface{}{"title": "x"})
	if !apperrors.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestDeleteMissing(t *testing.T) {
	coll := NewMemoryStore().Collection("notes")

	err := coll.Delete(context.Background(), primitive.NewObjectID())
	if !apperrors.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestUniqueKeyOnInsert(t *testing.T) {
	s := NewMemoryStore()
	s.SetUniqueKeys("notes", "title")
	coll := s.Collection("notes")
	ctx := context.Background()

	if _, err := coll.Insert(ctx, &note{Title: "same"}); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	_, err := coll.Insert(ctx, &note{Title: "same"})
	if !apperrors.IsDuplicate(err) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestUniqueKeyOnUpdate(t *testing.T) {
	s := NewMemoryStore()
	s.SetUniqueKeys("notes", "title")
	coll := s.Collection("notes")
	ctx := context.Background()

	if _, err := coll.Insert(ctx, &note{Title: "taken"}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	id, err := coll.Insert(ctx, &note{Title: "free"})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	err = coll.Update(ctx, id, map[string]interface{}{"title": "taken"})
	if !apperrors.IsDuplicate(err) {
		t.Fatalf("expected duplicate error, got %v", err)
	}

	// Re-writing a record's own value is not a conflict.
	if err := coll.Update(ctx, id, map[string]interface{}{"title": "free"}); err != nil {
		t.Fatalf("Update with own value: %v", err)
	}
}
