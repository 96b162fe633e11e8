package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"fitapi/logger"
	"fitapi/models"
	"fitapi/store"
)

const planNotFound = "No nutrition plan found with that ID"

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())
	list, err := s.plans.FindByUser(r.Context(), id.Subject)
	if err != nil {
		logger.Error("list nutrition plans failed", err, logger.FieldKV("user", id.Subject))
		writeFail(w, http.StatusInternalServerError, "Could not fetch nutrition plans")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"results": len(list),
		"data":    map[string]interface{}{"plans": list},
	})
}

func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeFail(w, http.StatusBadRequest, "Could not read request body")
		return
	}
	if err := s.planCreate.Validate(body); err != nil {
		writeFail(w, http.StatusBadRequest, err.Error())
		return
	}
	var p models.NutritionPlan
	if err := json.Unmarshal(body, &p); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	id := identityFrom(r.Context())
	p.User = id.Subject
	p.CreatedAt = time.Now().UTC()

	oid, err := s.plans.Insert(r.Context(), p)
	if err != nil {
		logger.Error("insert nutrition plan failed", err)
		writeFail(w, http.StatusInternalServerError, "Could not save nutrition plan")
		return
	}
	p.ID = oid
	writeSuccess(w, http.StatusCreated, map[string]interface{}{"plan": p})
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())
	p, err := s.plans.Get(r.Context(), r.PathValue("id"), id.Subject)
	if err == store.ErrNotFound {
		writeFail(w, http.StatusNotFound, planNotFound)
		return
	}
	if err != nil {
		logger.Error("get nutrition plan failed", err)
		writeFail(w, http.StatusInternalServerError, "Could not fetch nutrition plan")
		return
	}
	writeSuccess(w, http.StatusOK, map[string]interface{}{"plan": p})
}

func (s *Server) handleDeletePlan(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())
	err := s.plans.Delete(r.Context(), r.PathValue("id"), id.Subject)
	if err == store.ErrNotFound {
		writeFail(w, http.StatusNotFound, planNotFound)
		return
	}
	if err != nil {
		logger.Error("delete nutrition plan failed", err)
		writeFail(w, http.StatusInternalServerError, "Could not delete nutrition plan")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
