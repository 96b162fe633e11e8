package api

import (
	"encoding/json"
	"net/http"

	"fitapi/logger"
	"fitapi/models"
)

// Advisory endpoints always answer 200 with usable data; a degraded
// collaborator yields the built-in defaults instead of an error.

func (s *Server) handleMealPlan(w http.ResponseWriter, r *http.Request) {
	var req models.MealPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	plan, err := s.advisor.MealPlan(r.Context(), req)
	if err != nil {
		logger.Warn("meal plan generation degraded", err)
	}
	writeSuccess(w, http.StatusOK, map[string]interface{}{"mealPlan": plan})
}

func (s *Server) handleWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	var req models.WorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	plan, err := s.advisor.WorkoutPlan(r.Context(), req)
	if err != nil {
		logger.Warn("workout plan generation degraded", err)
	}
	writeSuccess(w, http.StatusOK, map[string]interface{}{"workoutPlan": plan})
}

func (s *Server) handleAnalyzeFood(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Image    string `json:"image"` // base64
		MimeType string `json:"mime_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Image == "" {
		writeFail(w, http.StatusBadRequest, "image is required")
		return
	}
	if req.MimeType == "" {
		req.MimeType = "image/jpeg"
	}
	analysis, err := s.advisor.AnalyzeFood(r.Context(), req.Image, req.MimeType)
	if err != nil {
		logger.Warn("food analysis degraded", err)
	}
	writeSuccess(w, http.StatusOK, map[string]interface{}{"analysis": analysis})
}
