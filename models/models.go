package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Testimonial statuses. The public feed only ever serves approved entries.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// PlaceholderIDPrefix marks non-persisted feed entries; clients derive
// isDefault from it.
const PlaceholderIDPrefix = "default"

// Testimonial is the stored shape of a member testimonial.
type Testimonial struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User      string             `bson:"user,omitempty" json:"user,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Role      string             `bson:"role" json:"role"`
	Content   string             `bson:"content" json:"content"`
	Rating    int                `bson:"rating" json:"rating"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// FeedEntry is the wire shape served by the public feed. Stored entries carry
// their object id in hex; placeholders carry a sentinel id.
type FeedEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsPlaceholder reports whether the entry is one of the built-in defaults.
func (e FeedEntry) IsPlaceholder() bool {
	return strings.HasPrefix(e.ID, PlaceholderIDPrefix)
}

// FeedEntryOf converts a stored testimonial to its feed representation.
func FeedEntryOf(t Testimonial) FeedEntry {
	return FeedEntry{
		ID:        t.ID.Hex(),
		Name:      t.Name,
		Role:      t.Role,
		Content:   t.Content,
		Rating:    t.Rating,
		CreatedAt: t.CreatedAt,
	}
}

// DefaultTestimonials returns the placeholder entries used to pad the public
// feed. They are never persisted.
func DefaultTestimonials() []FeedEntry {
	return []FeedEntry{
		{
			ID:        "default1",
			Name:      "Sarah M.",
			Role:      "Member",
			Content:   "The meal plans fit my schedule perfectly and I finally stopped guessing what to eat. Down 8kg in four months!",
			Rating:    5,
			CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        "default2",
			Name:      "Daniel K.",
			Role:      "Member",
			Content:   "I train three times a week with the generated workouts and my lifts have never progressed faster.",
			Rating:    5,
			CreatedAt: time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        "default3",
			Name:      "Priya S.",
			Role:      "Member",
			Content:   "Snapping a photo of my lunch and getting the macros back instantly keeps me honest. Highly recommend.",
			Rating:    4,
			CreatedAt: time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
		},
	}
}

// Identity is the authenticated caller extracted from a verified token.
type Identity struct {
	Subject string
	Name    string
	Roles   []string
}

// IsAdmin reports whether the identity carries the admin role.
func (id Identity) IsAdmin() bool {
	for _, r := range id.Roles {
		if r == "admin" {
			return true
		}
	}
	return false
}

// Workout is a logged or planned training session.
type Workout struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User      string             `bson:"user" json:"user"`
	Title     string             `bson:"title" json:"title"`
	Focus     string             `bson:"focus,omitempty" json:"focus,omitempty"`
	Exercises []Exercise         `bson:"exercises" json:"exercises"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type Exercise struct {
	Name string `bson:"name" json:"name"`
	Sets int    `bson:"sets" json:"sets"`
	Reps int    `bson:"reps" json:"reps"`
}

// NutritionPlan is a saved meal plan, either user-authored or AI-generated.
type NutritionPlan struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User      string             `bson:"user" json:"user"`
	Title     string             `bson:"title" json:"title"`
	Meals     []Meal             `bson:"meals" json:"meals"`
	Calories  float64            `bson:"calories,omitempty" json:"calories,omitempty"`
	Generated bool               `bson:"generated" json:"generated"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type Meal struct {
	Name     string     `bson:"name" json:"name"`
	Foods    []FoodItem `bson:"foods" json:"foods"`
	Calories float64    `bson:"calories" json:"calories"`
	Protein  float64    `bson:"protein" json:"protein"`
	Carbs    float64    `bson:"carbs" json:"carbs"`
	Fats     float64    `bson:"fats" json:"fats"`
}

type FoodItem struct {
	Name  string  `bson:"name" json:"name"`
	Grams float64 `bson:"grams" json:"grams"`
}

// ChatMessage is a single coach-chat message flowing through the pipeline.
type ChatMessage struct {
	MessageID string    `bson:"message_id" json:"message_id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Role      string    `bson:"role" json:"role"` // user or assistant
	Content   string    `bson:"content" json:"content"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// ActivityEvent is a fire-and-forget audit record published on writes.
type ActivityEvent struct {
	EventID   string    `json:"event_id"`
	Kind      string    `json:"kind"` // e.g. testimonial.created
	Subject   string    `json:"subject,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
