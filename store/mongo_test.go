package store

import (
	"context"
	"testing"

	"fitapi/models"

	"go.mongodb.org/mongo-driver/bson"
)

// NOTE: These tests are lightweight structural tests; full integration would require a running MongoDB.
// They focus on error paths prior to real DB interactions or after Init guard conditions.

func TestPingWithoutInit(t *testing.T) {
	ctx := context.Background()
	if err := Ping(ctx); err == nil {
		// Expect error because client not initialized
		t.Fatalf("expected error when ping before Init")
	}
}

func TestTestimonialOpsWithoutInit(t *testing.T) {
	ctx := context.Background()
	if _, err := InsertTestimonial(ctx, dummyTestimonial()); err == nil {
		t.Fatalf("expected error when inserting before Init")
	}
	if _, err := FindTestimonials(ctx, bson.M{}, nil, nil, 3); err == nil {
		t.Fatalf("expected error when listing before Init")
	}
	if _, err := CountTestimonials(ctx, bson.M{}); err == nil {
		t.Fatalf("expected error when counting before Init")
	}
	if _, err := GetTestimonial(ctx, "652f1a7b9c4de1f2a3b4c5d6"); err == nil {
		t.Fatalf("expected error when fetching before Init")
	}
	if err := DeleteTestimonial(ctx, "652f1a7b9c4de1f2a3b4c5d6"); err == nil {
		t.Fatalf("expected error when deleting before Init")
	}
}

func TestWorkoutAndPlanOpsWithoutInit(t *testing.T) {
	ctx := context.Background()
	if _, err := InsertWorkout(ctx, models.Workout{User: "u", Title: "Push Day"}); err == nil {
		t.Fatalf("expected error when inserting workout before Init")
	}
	if _, err := FindPlansByUser(ctx, "u"); err == nil {
		t.Fatalf("expected error when listing plans before Init")
	}
}

func TestChatOpsWithoutInit(t *testing.T) {
	ctx := context.Background()
	if err := InsertChatMessage(ctx, models.ChatMessage{MessageID: "m1", UserID: "u", Content: "hi"}); err == nil {
		t.Fatalf("expected error when inserting chat message before Init")
	}
	if _, err := FindChatHistory(ctx, "u", 0); err == nil {
		t.Fatalf("expected error when reading history before Init")
	}
}

// dummyTestimonial creates a minimal valid testimonial
func dummyTestimonial() models.Testimonial {
	return models.Testimonial{User: "u", Name: "A", Role: "Member", Content: "c", Rating: 5, Status: models.StatusApproved}
}
