package ai

import (
	"fmt"
	"strings"

	"fitapi/models"
)

func buildMealPlanPrompt(req models.MealPlanRequest) string {
	prompt := "You are a professional nutritionist. Create a one-day meal plan based on the user's requirements.\n\n"

	prompt += "USER PROFILE:\n"
	if req.Goal != "" {
		prompt += fmt.Sprintf("- Goal: %s\n", req.Goal)
	}
	if req.DietType != "" {
		prompt += fmt.Sprintf("- Diet Type: %s\n", req.DietType)
	}
	if req.DailyCalories > 0 {
		prompt += fmt.Sprintf("- Daily Calories: %.0f\n", req.DailyCalories)
	}
	mealsPerDay := req.MealsPerDay
	if mealsPerDay <= 0 {
		mealsPerDay = 3
	}
	prompt += fmt.Sprintf("- Meals per Day: %d\n", mealsPerDay)
	if len(req.Allergies) > 0 {
		prompt += fmt.Sprintf("- Allergies/Foods to Avoid: %s\n", strings.Join(req.Allergies, ", "))
	}
	if len(req.Likes) > 0 {
		prompt += fmt.Sprintf("- Food Preferences: %s\n", strings.Join(req.Likes, ", "))
	}
	prompt += "\n"

	prompt += "RULES:\n"
	prompt += "- All portions in grams only, never cups or ounces.\n"
	prompt += "- Whole, single-ingredient foods; no oils or condiments.\n"
	prompt += "- Per-meal macros should sum close to the daily targets.\n\n"

	prompt += "Respond with ONLY a JSON object, no other text, in this exact shape:\n"
	prompt += `{"meals":[{"name":"Breakfast","foods":[{"name":"Oats","grams":80}],"calories":450,"protein":25,"carbs":60,"fats":12}],"notes":"..."}`
	return prompt
}

func buildWorkoutPrompt(req models.WorkoutRequest) string {
	prompt := "You are a certified strength and conditioning coach. Create a weekly workout plan.\n\n"

	prompt += "USER PROFILE:\n"
	if req.Goal != "" {
		prompt += fmt.Sprintf("- Goal: %s\n", req.Goal)
	}
	if req.Level != "" {
		prompt += fmt.Sprintf("- Experience Level: %s\n", req.Level)
	}
	days := req.DaysPerWeek
	if days <= 0 {
		days = 3
	}
	prompt += fmt.Sprintf("- Training Days per Week: %d\n", days)
	if len(req.Equipment) > 0 {
		prompt += fmt.Sprintf("- Available Equipment: %s\n", strings.Join(req.Equipment, ", "))
	}
	prompt += "\n"

	prompt += "RULES:\n"
	prompt += "- Balance pushing, pulling and lower-body work across the week.\n"
	prompt += "- 4-6 exercises per day with sets and reps.\n\n"

	prompt += "Respond with ONLY a JSON object, no other text, in this exact shape:\n"
	prompt += `{"days":[{"day":"Monday","focus":"Push","exercises":[{"name":"Bench Press","sets":4,"reps":8}]}],"notes":"..."}`
	return prompt
}

const analyzeFoodPrompt = "You are a nutrition analysis assistant. Identify the food in the image and estimate its macros for the visible portion.\n\n" +
	"Respond with ONLY a JSON object, no other text, in this exact shape:\n" +
	`{"food_name":"...","calories":0,"protein":0,"carbs":0,"fats":0,"confidence":"high|medium|low"}`

func buildCoachPrompt(message string) string {
	return "You are a friendly fitness and nutrition coach. Answer the member's question concisely and practically. " +
		"Keep it under 120 words and do not give medical advice.\n\nMember: " + message
}
