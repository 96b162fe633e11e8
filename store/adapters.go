package store

import (
	"context"

	"fitapi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Adapters expose store functions as objects implementing the feed and api
// repository interfaces.

type FeedAdapter struct{}

func (FeedAdapter) Find(ctx context.Context, filter bson.M, sort bson.D, projection bson.M, limit int64) ([]models.Testimonial, error) {
	return FindTestimonials(ctx, filter, sort, projection, limit)
}
func (FeedAdapter) Count(ctx context.Context, filter bson.M) (int64, error) {
	return CountTestimonials(ctx, filter)
}

type TestimonialAdapter struct{}

func (TestimonialAdapter) Insert(ctx context.Context, t models.Testimonial) (primitive.ObjectID, error) {
	return InsertTestimonial(ctx, t)
}
func (TestimonialAdapter) Get(ctx context.Context, id string) (models.Testimonial, error) {
	return GetTestimonial(ctx, id)
}
func (TestimonialAdapter) Update(ctx context.Context, id string, set bson.M) (models.Testimonial, error) {
	return UpdateTestimonial(ctx, id, set)
}
func (TestimonialAdapter) Delete(ctx context.Context, id string) error {
	return DeleteTestimonial(ctx, id)
}
func (TestimonialAdapter) FindByUser(ctx context.Context, user string) ([]models.Testimonial, error) {
	return FindTestimonialsByUser(ctx, user)
}

type WorkoutAdapter struct{}

func (WorkoutAdapter) Insert(ctx context.Context, w models.Workout) (primitive.ObjectID, error) {
	return InsertWorkout(ctx, w)
}
func (WorkoutAdapter) FindByUser(ctx context.Context, user string) ([]models.Workout, error) {
	return FindWorkoutsByUser(ctx, user)
}
func (WorkoutAdapter) Get(ctx context.Context, id, user string) (models.Workout, error) {
	return GetWorkout(ctx, id, user)
}
func (WorkoutAdapter) Update(ctx context.Context, id, user string, set bson.M) (models.Workout, error) {
	return UpdateWorkout(ctx, id, user, set)
}
func (WorkoutAdapter) Delete(ctx context.Context, id, user string) error {
	return DeleteWorkout(ctx, id, user)
}

type PlanAdapter struct{}

func (PlanAdapter) Insert(ctx context.Context, p models.NutritionPlan) (primitive.ObjectID, error) {
	return InsertPlan(ctx, p)
}
func (PlanAdapter) FindByUser(ctx context.Context, user string) ([]models.NutritionPlan, error) {
	return FindPlansByUser(ctx, user)
}
func (PlanAdapter) Get(ctx context.Context, id, user string) (models.NutritionPlan, error) {
	return GetPlan(ctx, id, user)
}
func (PlanAdapter) Delete(ctx context.Context, id, user string) error {
	return DeletePlan(ctx, id, user)
}

type ChatAdapter struct{}

func (ChatAdapter) Insert(ctx context.Context, msg models.ChatMessage) error {
	return InsertChatMessage(ctx, msg)
}
func (ChatAdapter) History(ctx context.Context, user string, limit int64) ([]models.ChatMessage, error) {
	return FindChatHistory(ctx, user, limit)
}
func (ChatAdapter) Clear(ctx context.Context, user string) (int64, error) {
	return DeleteChatHistory(ctx, user)
}
