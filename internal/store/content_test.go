package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

// testDoc returns a unique document name so parallel test runs don't collide.
func testDoc(t *testing.T) string {
	t.Helper()
	return "test-" + uuid.NewString()[:8]
}

func TestContentStoreMissingDocumentIsNotAnError(t *testing.T) {
	db := testDB(t)
	s := NewContentStore(db)
	ctx := context.Background()

	fields, err := s.GetDocument(ctx, "text-content", "never-created")
	if err != nil {
		t.Fatalf("GetDocument: %v", err)
	}
	if len(fields) != 0 {
		t.Errorf("expected empty map, got %v", fields)
	}

	_, ok, err := s.GetField(ctx, "text-content", "never-created", "hero-title-1")
	if err != nil {
		t.Fatalf("GetField: %v", err)
	}
	if ok {
		t.Error("missing document should report ok=false")
	}
}

func TestContentStoreMergeAndRead(t *testing.T) {
	db := testDB(t)
	s := NewContentStore(db)
	ctx := context.Background()
	doc := testDoc(t)
	t.Cleanup(func() { cleanDocument(t, db, "text-content", doc) })

	if err := s.MergeField(ctx, "text-content", doc, "hero-title-1", "SKY LIMIT"); err != nil {
		t.Fatalf("MergeField: %v", err)
	}

	val, ok, err := s.GetField(ctx, "text-content", doc, "hero-title-1")
	if err != nil {
		t.Fatalf("GetField: %v", err)
	}
	if !ok || val != "SKY LIMIT" {
		t.Errorf("got (%q, %v), want (SKY LIMIT, true)", val, ok)
	}

	// A field that was never written is absent even though the document exists.
	_, ok, err = s.GetField(ctx, "text-content", doc, "hero-subtitle")
	if err != nil {
		t.Fatalf("GetField: %v", err)
	}
	if ok {
		t.Error("unwritten field should report ok=false")
	}
}

func TestContentStoreMergePreservesSiblings(t *testing.T) {
	db := testDB(t)
	s := NewContentStore(db)
	ctx := context.Background()
	doc := testDoc(t)
	t.Cleanup(func() { cleanDocument(t, db, "text-content", doc) })

	if err := s.MergeField(ctx, "text-content", doc, "hero-title-1", "SKY LIMIT"); err != nil {
		t.Fatalf("MergeField: %v", err)
	}
	if err := s.MergeField(ctx, "text-content", doc, "hero-subtitle", "Wedding Films"); err != nil {
		t.Fatalf("MergeField: %v", err)
	}
	// Overwrite the first field; the second must survive.
	if err := s.MergeField(ctx, "text-content", doc, "hero-title-1", "NEW TITLE"); err != nil {
		t.Fatalf("MergeField: %v", err)
	}

	fields, err := s.GetDocument(ctx, "text-content", doc)
	if err != nil {
		t.Fatalf("GetDocument: %v", err)
	}
	if fields["hero-title-1"] != "NEW TITLE" {
		t.Errorf("hero-title-1 = %q, want NEW TITLE", fields["hero-title-1"])
	}
	if fields["hero-subtitle"] != "Wedding Films" {
		t.Errorf("hero-subtitle = %q, want Wedding Films (sibling clobbered)", fields["hero-subtitle"])
	}
}

func TestContentStoreLastWriteWins(t *testing.T) {
	db := testDB(t)
	s := NewContentStore(db)
	ctx := context.Background()
	doc := testDoc(t)
	t.Cleanup(func() { cleanDocument(t, db, "text-content", doc) })

	for _, v := range []string{"v1", "v2"} {
		if err := s.MergeField(ctx, "text-content", doc, "field", v); err != nil {
			t.Fatalf("MergeField(%s): %v", v, err)
		}
	}

	val, ok, err := s.GetField(ctx, "text-content", doc, "field")
	if err != nil || !ok {
		t.Fatalf("GetField: ok=%v err=%v", ok, err)
	}
	if val != "v2" {
		t.Errorf("got %q, want v2 (no history kept)", val)
	}
}

func TestContentStoreDeleteDocumentIdempotent(t *testing.T) {
	db := testDB(t)
	s := NewContentStore(db)
	ctx := context.Background()
	doc := testDoc(t)

	if err := s.MergeField(ctx, "text-content", doc, "field", "v"); err != nil {
		t.Fatalf("MergeField: %v", err)
	}
	if err := s.DeleteDocument(ctx, "text-content", doc); err != nil {
		t.Fatalf("DeleteDocument: %v", err)
	}
	// Second delete of an absent document is still success.
	if err := s.DeleteDocument(ctx, "text-content", doc); err != nil {
		t.Errorf("DeleteDocument (absent): %v", err)
	}
}

func TestContentStoreTriplesDoNotCrossContaminate(t *testing.T) {
	db := testDB(t)
	s := NewContentStore(db)
	ctx := context.Background()
	docA, docB := testDoc(t), testDoc(t)
	t.Cleanup(func() {
		cleanDocument(t, db, "text-content", docA)
		cleanDocument(t, db, "other-content", docA)
		cleanDocument(t, db, "text-content", docB)
	})

	if err := s.MergeField(ctx, "text-content", docA, "title", "A"); err != nil {
		t.Fatalf("MergeField: %v", err)
	}
	if err := s.MergeField(ctx, "other-content", docA, "title", "B"); err != nil {
		t.Fatalf("MergeField: %v", err)
	}
	if err := s.MergeField(ctx, "text-content", docB, "title", "C"); err != nil {
		t.Fatalf("MergeField: %v", err)
	}

	for _, tt := range []struct {
		collection, doc, want string
	}{
		{"text-content", docA, "A"},
		{"other-content", docA, "B"},
		{"text-content", docB, "C"},
	} {
		val, ok, err := s.GetField(ctx, tt.collection, tt.doc, "title")
		if err != nil || !ok {
			t.Fatalf("GetField(%s/%s): ok=%v err=%v", tt.collection, tt.doc, ok, err)
		}
		if val != tt.want {
			t.Errorf("%s/%s = %q, want %q", tt.collection, tt.doc, val, tt.want)
		}
	}
}
