package models

import "testing"

func TestTestimonialDraftPersist(t *testing.T) {
	draft := TestimonialDraft{
		Quote:       "They captured our day perfectly.",
		Description: "Summer wedding at the lake",
		Client:      "Emma & James",
	}

	persisted := draft.Persist(4, 3)

	if persisted.ID != 4 {
		t.Errorf("ID = %d, want 4", persisted.ID)
	}
	if persisted.Order != 3 {
		t.Errorf("Order = %d, want 3", persisted.Order)
	}
	if persisted.ImageID != "testimonial-4" {
		t.Errorf("ImageID = %q, want testimonial-4", persisted.ImageID)
	}
	if persisted.Quote != draft.Quote || persisted.Client != draft.Client {
		t.Error("draft fields should carry over unchanged")
	}
}

func TestCanonicalImagePath(t *testing.T) {
	tm := Testimonial{ID: 2}
	if got := tm.CanonicalImagePath(); got != "home/testimonial-2.jpg" {
		t.Errorf("CanonicalImagePath() = %q, want home/testimonial-2.jpg", got)
	}
}

func TestFilmImagePath(t *testing.T) {
	f := Film{ID: "sarah-and-tom"}
	if got := f.ImagePath(); got != "films/sarah-and-tom.jpg" {
		t.Errorf("ImagePath() = %q", got)
	}
}
