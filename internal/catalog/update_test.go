package catalog

import (
	"testing"

	"github.com/globalreach-edu/consultancy-api/internal/models"
)

func baseClass() *models.Class {
	c := &models.Class{
		Level:      "beginner",
		Instructor: "Ms. Rai",
	}
	c.Title = "IELTS Prep"
	c.Slug = "ielts-prep"
	c.Status = StatusActive
	c.Description = "Full prep course"
	return c
}

func TestBuildUpdateEmptyPayload(t *testing.T) {
	rec := baseClass()

	res := BuildUpdate(rec, map[string]string{})

	if res.Changed || res.TitleChanged {
		t.Fatalf("empty payload reported changes: %+v", res)
	}
	if rec.Title != "IELTS Prep" || rec.Status != StatusActive {
		t.Fatalf("empty payload mutated record: %+v", rec)
	}
}

func TestBuildUpdateTitleCarryForward(t *testing.T) {
	rec := baseClass()

	// Empty title keeps the stored one; it cannot be blanked.
	res := BuildUpdate(rec, map[string]string{"title": ""})
	if res.TitleChanged || rec.Title != "IELTS Prep" {
		t.Fatalf("empty title overwrote stored value: %q", rec.Title)
	}

	res = BuildUpdate(rec, map[string]string{"title": "PTE Prep"})
	if !res.TitleChanged || !res.Changed {
		t.Fatalf("title change not reported: %+v", res)
	}
	if rec.Title != "PTE Prep" {
		t.Fatalf("title = %q, want %q", rec.Title, "PTE Prep")
	}

	// Same title again is a no-op.
	res = BuildUpdate(rec, map[string]string{"title": "PTE Prep"})
	if res.Changed {
		t.Fatalf("unchanged title reported as change")
	}
}

func TestBuildUpdateStatusCarryForward(t *testing.T) {
	rec := baseClass()

	if res := BuildUpdate(rec, map[string]string{"status": ""}); res.Changed {
		t.Fatalf("empty status reported as change")
	}
	if rec.Status != StatusActive {
		t.Fatalf("empty status overwrote stored value: %q", rec.Status)
	}

	BuildUpdate(rec, map[string]string{"status": StatusInactive})
	if rec.Status != StatusInactive {
		t.Fatalf("status = %q, want %q", rec.Status, StatusInactive)
	}
}

func TestBuildUpdateTextFieldsOverwriteWhenPresent(t *testing.T) {
	rec := baseClass()

	// Recognized text fields may be blanked explicitly.
	res := BuildUpdate(rec, map[string]string{"description": ""})
	if !res.Changed {
		t.Fatalf("blanking description not reported as change")
	}
	if rec.Description != "" {
		t.Fatalf("description = %q, want empty", rec.Description)
	}

	BuildUpdate(rec, map[string]string{"instructor": "Mr. Shrestha"})
	if rec.Instructor != "Mr. Shrestha" {
		t.Fatalf("instructor = %q", rec.Instructor)
	}

	// Absent fields carry forward.
	if rec.Level != "beginner" {
		t.Fatalf("level lost on unrelated update: %q", rec.Level)
	}
}

func TestBuildUpdateIgnoresUnknownKeys(t *testing.T) {
	rec := baseClass()

	res := BuildUpdate(rec, map[string]string{"no_such_field": "x", "id": "99"})
	if res.Changed {
		t.Fatalf("unknown keys reported as change")
	}
	if rec.ID != 0 {
		t.Fatalf("id mutated by payload")
	}
}
