package ai

import (
	"context"
	"strings"

	"fitapi/models"
)

// Advisory methods. On transport failure the typed default is returned
// alongside the error so callers can log it and still render something; a
// malformed reply silently degrades to the default.

func (c *Client) MealPlan(ctx context.Context, req models.MealPlanRequest) (models.MealPlan, error) {
	text, err := c.generate(ctx, []Part{{Text: buildMealPlanPrompt(req)}}, &GenerationConfig{Temperature: 0.7})
	if err != nil {
		return DefaultMealPlan(req), err
	}
	return ParseJSONOrDefault(text, DefaultMealPlan(req)), nil
}

func (c *Client) WorkoutPlan(ctx context.Context, req models.WorkoutRequest) (models.WorkoutPlan, error) {
	text, err := c.generate(ctx, []Part{{Text: buildWorkoutPrompt(req)}}, &GenerationConfig{Temperature: 0.7})
	if err != nil {
		return DefaultWorkoutPlan(req), err
	}
	return ParseJSONOrDefault(text, DefaultWorkoutPlan(req)), nil
}

func (c *Client) AnalyzeFood(ctx context.Context, imageB64, mimeType string) (models.FoodAnalysis, error) {
	parts := []Part{
		{Text: analyzeFoodPrompt},
		{InlineData: &InlineData{MimeType: mimeType, Data: imageB64}},
	}
	text, err := c.generate(ctx, parts, nil)
	if err != nil {
		return DefaultFoodAnalysis(), err
	}
	return ParseJSONOrDefault(text, DefaultFoodAnalysis()), nil
}

// CoachReply returns a free-text answer for the chat coach.
func (c *Client) CoachReply(ctx context.Context, message string) (string, error) {
	text, err := c.generate(ctx, []Part{{Text: buildCoachPrompt(message)}}, &GenerationConfig{Temperature: 0.9, MaxOutputTokens: 512})
	if err != nil {
		return "I couldn't reach the coach right now. Please try again in a moment.", err
	}
	return strings.TrimSpace(text), nil
}

// DefaultMealPlan is the fallback served when generation or parsing fails.
func DefaultMealPlan(req models.MealPlanRequest) models.MealPlan {
	return models.MealPlan{
		Meals: []models.Meal{
			{
				Name: "Breakfast",
				Foods: []models.FoodItem{
					{Name: "Oats", Grams: 80},
					{Name: "Greek Yogurt", Grams: 170},
					{Name: "Blueberries", Grams: 100},
				},
				Calories: 450, Protein: 28, Carbs: 62, Fats: 9,
			},
			{
				Name: "Lunch",
				Foods: []models.FoodItem{
					{Name: "Chicken Breast (cooked)", Grams: 150},
					{Name: "Brown Rice (cooked)", Grams: 185},
					{Name: "Broccoli", Grams: 150},
					{Name: "Avocado", Grams: 50},
				},
				Calories: 620, Protein: 48, Carbs: 58, Fats: 18,
			},
			{
				Name: "Dinner",
				Foods: []models.FoodItem{
					{Name: "Salmon (cooked)", Grams: 140},
					{Name: "Sweet Potato (raw)", Grams: 200},
					{Name: "Spinach", Grams: 100},
					{Name: "Almonds", Grams: 20},
				},
				Calories: 580, Protein: 40, Carbs: 48, Fats: 24,
			},
		},
		Notes: "Balanced default plan. Adjust portions to your daily calorie target.",
	}
}

// DefaultWorkoutPlan is the fallback served when generation or parsing fails.
func DefaultWorkoutPlan(req models.WorkoutRequest) models.WorkoutPlan {
	return models.WorkoutPlan{
		Days: []models.WorkoutDay{
			{
				Day: "Monday", Focus: "Push",
				Exercises: []models.Exercise{
					{Name: "Bench Press", Sets: 4, Reps: 8},
					{Name: "Overhead Press", Sets: 3, Reps: 10},
					{Name: "Incline Dumbbell Press", Sets: 3, Reps: 12},
					{Name: "Triceps Pushdown", Sets: 3, Reps: 12},
				},
			},
			{
				Day: "Wednesday", Focus: "Pull",
				Exercises: []models.Exercise{
					{Name: "Deadlift", Sets: 3, Reps: 5},
					{Name: "Pull-Up", Sets: 4, Reps: 8},
					{Name: "Barbell Row", Sets: 3, Reps: 10},
					{Name: "Biceps Curl", Sets: 3, Reps: 12},
				},
			},
			{
				Day: "Friday", Focus: "Legs",
				Exercises: []models.Exercise{
					{Name: "Back Squat", Sets: 4, Reps: 8},
					{Name: "Romanian Deadlift", Sets: 3, Reps: 10},
					{Name: "Walking Lunge", Sets: 3, Reps: 12},
					{Name: "Standing Calf Raise", Sets: 4, Reps: 15},
				},
			},
		},
		Notes: "Default 3-day full-body split. Progress weight when all sets hit the top of the rep range.",
	}
}

// DefaultFoodAnalysis is the fallback served when analysis fails.
func DefaultFoodAnalysis() models.FoodAnalysis {
	return models.FoodAnalysis{
		FoodName:   "Unknown food",
		Calories:   0,
		Protein:    0,
		Carbs:      0,
		Fats:       0,
		Confidence: "low",
	}
}
