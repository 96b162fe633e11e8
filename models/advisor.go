package models

// Request/response shapes for the advisory (generative AI) endpoints.
// These mirror what the frontend preference forms collect.

type MealPlanRequest struct {
	Goal          string   `json:"goal"`
	DietType      string   `json:"diet_type"`
	DailyCalories float64  `json:"daily_calories"`
	MealsPerDay   int      `json:"meals_per_day"`
	Allergies     []string `json:"allergies,omitempty"`
	Likes         []string `json:"likes,omitempty"`
}

type MealPlan struct {
	Meals []Meal `json:"meals"`
	Notes string `json:"notes,omitempty"`
}

type WorkoutRequest struct {
	Goal        string   `json:"goal"`
	Level       string   `json:"level"`
	DaysPerWeek int      `json:"days_per_week"`
	Equipment   []string `json:"equipment,omitempty"`
}

type WorkoutPlan struct {
	Days  []WorkoutDay `json:"days"`
	Notes string       `json:"notes,omitempty"`
}

type WorkoutDay struct {
	Day       string     `json:"day"`
	Focus     string     `json:"focus"`
	Exercises []Exercise `json:"exercises"`
}

// FoodAnalysis is the structured result of a food-image analysis.
type FoodAnalysis struct {
	FoodName   string  `json:"food_name"`
	Calories   float64 `json:"calories"`
	Protein    float64 `json:"protein"`
	Carbs      float64 `json:"carbs"`
	Fats       float64 `json:"fats"`
	Confidence string  `json:"confidence"`
}
