package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"fitapi/logger"
	"fitapi/models"
	"fitapi/store"
)

const workoutNotFound = "No workout found with that ID"

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())
	list, err := s.workouts.FindByUser(r.Context(), id.Subject)
	if err != nil {
		logger.Error("list workouts failed", err, logger.FieldKV("user", id.Subject))
		writeFail(w, http.StatusInternalServerError, "Could not fetch workouts")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"results": len(list),
		"data":    map[string]interface{}{"workouts": list},
	})
}

func (s *Server) handleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeFail(w, http.StatusBadRequest, "Could not read request body")
		return
	}
	if err := s.workoutCreate.Validate(body); err != nil {
		writeFail(w, http.StatusBadRequest, err.Error())
		return
	}
	var wk models.Workout
	if err := json.Unmarshal(body, &wk); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	id := identityFrom(r.Context())
	wk.User = id.Subject
	wk.CreatedAt = time.Now().UTC()

	oid, err := s.workouts.Insert(r.Context(), wk)
	if err != nil {
		logger.Error("insert workout failed", err)
		writeFail(w, http.StatusInternalServerError, "Could not save workout")
		return
	}
	wk.ID = oid
	writeSuccess(w, http.StatusCreated, map[string]interface{}{"workout": wk})
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())
	wk, err := s.workouts.Get(r.Context(), r.PathValue("id"), id.Subject)
	if err == store.ErrNotFound {
		writeFail(w, http.StatusNotFound, workoutNotFound)
		return
	}
	if err != nil {
		logger.Error("get workout failed", err)
		writeFail(w, http.StatusInternalServerError, "Could not fetch workout")
		return
	}
	writeSuccess(w, http.StatusOK, map[string]interface{}{"workout": wk})
}

func (s *Server) handlePatchWorkout(w http.ResponseWriter, r *http.Request) {
	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	set := bson.M{}
	for _, k := range []string{"title", "focus", "notes", "exercises"} {
		if v, ok := fields[k]; ok {
			set[k] = v
		}
	}
	if len(set) == 0 {
		writeFail(w, http.StatusBadRequest, "No updatable fields supplied")
		return
	}

	id := identityFrom(r.Context())
	wk, err := s.workouts.Update(r.Context(), r.PathValue("id"), id.Subject, set)
	if err == store.ErrNotFound {
		writeFail(w, http.StatusNotFound, workoutNotFound)
		return
	}
	if err != nil {
		logger.Error("update workout failed", err)
		writeFail(w, http.StatusInternalServerError, "Could not update workout")
		return
	}
	writeSuccess(w, http.StatusOK, map[string]interface{}{"workout": wk})
}

func (s *Server) handleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())
	err := s.workouts.Delete(r.Context(), r.PathValue("id"), id.Subject)
	if err == store.ErrNotFound {
		writeFail(w, http.StatusNotFound, workoutNotFound)
		return
	}
	if err != nil {
		logger.Error("delete workout failed", err)
		writeFail(w, http.StatusInternalServerError, "Could not delete workout")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
