package models

import (
	"testing"
	"time"
)

func TestTestimonialStruct(t *testing.T) {
	ts := Testimonial{
		User:      "user1",
		Name:      "Alex",
		Role:      "Member",
		Content:   "Great program!",
		Rating:    5,
		Status:    StatusApproved,
		CreatedAt: time.Now(),
	}

	if ts.Status != "approved" {
		t.Errorf("Expected status 'approved', got '%s'", ts.Status)
	}
	if ts.Rating != 5 {
		t.Errorf("Expected rating 5, got %d", ts.Rating)
	}
	if ts.CreatedAt.IsZero() {
		t.Errorf("Expected non-zero CreatedAt")
	}
}

func TestDefaultTestimonials(t *testing.T) {
	defaults := DefaultTestimonials()
	if len(defaults) != 3 {
		t.Fatalf("Expected 3 default testimonials, got %d", len(defaults))
	}

	seen := map[string]bool{}
	for _, d := range defaults {
		if !d.IsPlaceholder() {
			t.Errorf("Expected placeholder id prefix on '%s'", d.ID)
		}
		if seen[d.Content] {
			t.Errorf("Duplicate default content: %s", d.Content)
		}
		seen[d.Content] = true
		if d.Rating < 1 || d.Rating > 5 {
			t.Errorf("Default rating out of bounds: %d", d.Rating)
		}
		if d.Content == "" || len(d.Content) > 1000 {
			t.Errorf("Default content out of bounds: %q", d.Content)
		}
	}
}

func TestFeedEntryOf(t *testing.T) {
	ts := Testimonial{Name: "Alex", Role: "Member", Content: "c", Rating: 4}
	e := FeedEntryOf(ts)
	if e.IsPlaceholder() {
		t.Errorf("Stored entry must not look like a placeholder, id=%q", e.ID)
	}
	if e.Content != "c" || e.Rating != 4 {
		t.Errorf("Unexpected feed entry: %+v", e)
	}
}

func TestIdentityIsAdmin(t *testing.T) {
	if (Identity{Roles: []string{"member"}}).IsAdmin() {
		t.Error("member should not be admin")
	}
	if !(Identity{Roles: []string{"member", "admin"}}).IsAdmin() {
		t.Error("expected admin role to be recognized")
	}
}
