package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"fitapi/logger"
	"fitapi/models"
	"fitapi/store"
)

const testimonialNotFound = "No testimonial found with that ID"

// handleListTestimonials serves the public feed. This endpoint never returns
// a non-2xx for store failures; the feed degrades to defaults instead.
func (s *Server) handleListTestimonials(w http.ResponseWriter, r *http.Request) {
	res := s.feed.List(r.Context(), r.URL.Query())
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "success",
		"results":   res.Results,
		"total":     res.Total,
		"isDefault": res.IsDefault,
		"data":      map[string]interface{}{"testimonials": res.Testimonials},
	})
}

func (s *Server) handleCreateTestimonial(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeFail(w, http.StatusBadRequest, "Could not read request body")
		return
	}
	if err := s.testimonialCreate.Validate(body); err != nil {
		writeFail(w, http.StatusBadRequest, err.Error())
		return
	}
	var t models.Testimonial
	if err := json.Unmarshal(body, &t); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	id := identityFrom(r.Context())
	t.User = id.Subject
	if t.Name == "" {
		if id.Name != "" {
			t.Name = id.Name
		} else {
			t.Name = "Anonymous"
		}
	}
	if t.Role == "" {
		t.Role = "Member"
	}
	// Submissions go live immediately; there is no moderation gate.
	t.Status = models.StatusApproved
	t.CreatedAt = time.Now().UTC()

	oid, err := s.testimonials.Insert(r.Context(), t)
	if err != nil {
		logger.Error("insert testimonial failed", err)
		writeFail(w, http.StatusInternalServerError, "Could not save testimonial")
		return
	}
	t.ID = oid

	s.publishActivity("testimonial.created", id.Subject, oid.Hex())
	writeSuccess(w, http.StatusCreated, map[string]interface{}{"testimonial": t})
}

func (s *Server) handleMyTestimonials(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())
	list, err := s.testimonials.FindByUser(r.Context(), id.Subject)
	if err != nil {
		logger.Error("list own testimonials failed", err, logger.FieldKV("user", id.Subject))
		writeFail(w, http.StatusInternalServerError, "Could not fetch testimonials")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"results": len(list),
		"data":    map[string]interface{}{"testimonials": list},
	})
}

func (s *Server) handleGetTestimonial(w http.ResponseWriter, r *http.Request) {
	t, err := s.testimonials.Get(r.Context(), r.PathValue("id"))
	if err == store.ErrNotFound {
		writeFail(w, http.StatusNotFound, testimonialNotFound)
		return
	}
	if err != nil {
		logger.Error("get testimonial failed", err)
		writeFail(w, http.StatusInternalServerError, "Could not fetch testimonial")
		return
	}
	writeSuccess(w, http.StatusOK, map[string]interface{}{"testimonial": t})
}

func (s *Server) handlePatchTestimonial(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeFail(w, http.StatusBadRequest, "Could not read request body")
		return
	}
	if err := s.testimonialPatch.Validate(body); err != nil {
		writeFail(w, http.StatusBadRequest, err.Error())
		return
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(body, &fields); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}

	t, err := s.testimonials.Update(r.Context(), r.PathValue("id"), set)
	if err == store.ErrNotFound {
		writeFail(w, http.StatusNotFound, testimonialNotFound)
		return
	}
	if err != nil {
		logger.Error("update testimonial failed", err)
		writeFail(w, http.StatusInternalServerError, "Could not update testimonial")
		return
	}
	writeSuccess(w, http.StatusOK, map[string]interface{}{"testimonial": t})
}

func (s *Server) handleDeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	err := s.testimonials.Delete(r.Context(), r.PathValue("id"))
	if err == store.ErrNotFound {
		writeFail(w, http.StatusNotFound, testimonialNotFound)
		return
	}
	if err != nil {
		logger.Error("delete testimonial failed", err)
		writeFail(w, http.StatusInternalServerError, "Could not delete testimonial")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// publishActivity emits a fire-and-forget audit event; failures are logged only.
func (s *Server) publishActivity(kind, subject, detail string) {
	if s.producer == nil {
		return
	}
	ev := models.ActivityEvent{
		EventID:   uuid.NewString(),
		Kind:      kind,
		Subject:   subject,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.producer.PublishActivity(ctx, ev); err != nil {
			logger.Warn("activity publish failed", err, logger.FieldKV("kind", kind))
		}
	}()
}
