package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"fitapi/feed"
	"fitapi/metrics"
	"fitapi/models"
)

// TestimonialRepository abstracts single-document testimonial operations.
type TestimonialRepository interface {
	Insert(ctx context.Context, t models.Testimonial) (primitive.ObjectID, error)
	Get(ctx context.Context, id string) (models.Testimonial, error)
	Update(ctx context.Context, id string, set bson.M) (models.Testimonial, error)
	Delete(ctx context.Context, id string) error
	FindByUser(ctx context.Context, user string) ([]models.Testimonial, error)
}

// WorkoutRepository abstracts workout persistence.
type WorkoutRepository interface {
	Insert(ctx context.Context, w models.Workout) (primitive.ObjectID, error)
	FindByUser(ctx context.Context, user string) ([]models.Workout, error)
	Get(ctx context.Context, id, user string) (models.Workout, error)
	Update(ctx context.Context, id, user string, set bson.M) (models.Workout, error)
	Delete(ctx context.Context, id, user string) error
}

// PlanRepository abstracts nutrition-plan persistence.
type PlanRepository interface {
	Insert(ctx context.Context, p models.NutritionPlan) (primitive.ObjectID, error)
	FindByUser(ctx context.Context, user string) ([]models.NutritionPlan, error)
	Get(ctx context.Context, id, user string) (models.NutritionPlan, error)
	Delete(ctx context.Context, id, user string) error
}

// ChatRepository abstracts chat history persistence.
type ChatRepository interface {
	Insert(ctx context.Context, msg models.ChatMessage) error
	History(ctx context.Context, user string, limit int64) ([]models.ChatMessage, error)
	Clear(ctx context.Context, user string) (int64, error)
}

// Advisor abstracts the generative-AI collaborator.
type Advisor interface {
	MealPlan(ctx context.Context, req models.MealPlanRequest) (models.MealPlan, error)
	WorkoutPlan(ctx context.Context, req models.WorkoutRequest) (models.WorkoutPlan, error)
	AnalyzeFood(ctx context.Context, imageB64, mimeType string) (models.FoodAnalysis, error)
	CoachReply(ctx context.Context, message string) (string, error)
}

// Producer abstracts Kafka publishing.
type Producer interface {
	PublishChat(ctx context.Context, msg models.ChatMessage) error
	PublishActivity(ctx context.Context, ev models.ActivityEvent) error
	PublishDLQ(ctx context.Context, msg models.ChatMessage, reason string) error
}

// TokenVerifier abstracts OIDC token verification.
type TokenVerifier interface {
	Verify(ctx context.Context, raw string) (models.Identity, error)
}

type Server struct {
	mux          *http.ServeMux
	hub          *Hub
	feed         *feed.Feed
	testimonials TestimonialRepository
	workouts     WorkoutRepository
	plans        PlanRepository
	chat         ChatRepository
	advisor      Advisor
	producer     Producer
	verifier     TokenVerifier
	ready        func(ctx context.Context) error
	chatMaxLen   int
	broadcastC   <-chan models.ChatMessage

	testimonialCreate *PayloadValidator
	testimonialPatch  *PayloadValidator
	workoutCreate     *PayloadValidator
	planCreate        *PayloadValidator
}

type Deps struct {
	Feed         *feed.Feed
	Testimonials TestimonialRepository
	Workouts     WorkoutRepository
	Plans        PlanRepository
	Chat         ChatRepository
	Advisor      Advisor
	Producer     Producer
	Verifier     TokenVerifier
	Ready        func(ctx context.Context) error
	ChatMaxLen   int
	Broadcast    <-chan models.ChatMessage
}

func NewServer(d Deps) *Server {
	if d.ChatMaxLen <= 0 {
		d.ChatMaxLen = 1000
	}
	s := &Server{
		mux:          http.NewServeMux(),
		hub:          NewHub(),
		feed:         d.Feed,
		testimonials: d.Testimonials,
		workouts:     d.Workouts,
		plans:        d.Plans,
		chat:         d.Chat,
		advisor:      d.Advisor,
		producer:     d.Producer,
		verifier:     d.Verifier,
		ready:        d.Ready,
		chatMaxLen:   d.ChatMaxLen,
		broadcastC:   d.Broadcast,

		testimonialCreate: NewPayloadValidator(testimonialCreateSchema),
		testimonialPatch:  NewPayloadValidator(testimonialPatchSchema),
		workoutCreate:     NewPayloadValidator(workoutCreateSchema),
		planCreate:        NewPayloadValidator(planCreateSchema),
	}
	s.routes()
	if s.broadcastC != nil {
		go s.broadcastLoop()
	}
	return s
}

// handle registers the handler under both the bare path and the /api prefix.
func (s *Server) handle(method, path string, h http.HandlerFunc) {
	s.mux.HandleFunc(method+" "+path, h)
	s.mux.HandleFunc(method+" /api"+path, h)
}

func (s *Server) routes() {
	s.handle("GET", "/testimonials", s.handleListTestimonials)
	s.handle("POST", "/testimonials", s.withAuth(s.handleCreateTestimonial))
	s.handle("GET", "/testimonials/my-testimonials", s.withAuth(s.handleMyTestimonials))
	s.handle("GET", "/testimonials/{id}", s.withAdmin(s.handleGetTestimonial))
	s.handle("PATCH", "/testimonials/{id}", s.withAdmin(s.handlePatchTestimonial))
	s.handle("DELETE", "/testimonials/{id}", s.withAdmin(s.handleDeleteTestimonial))

	s.handle("GET", "/workouts", s.withAuth(s.handleListWorkouts))
	s.handle("POST", "/workouts", s.withAuth(s.handleCreateWorkout))
	s.handle("GET", "/workouts/{id}", s.withAuth(s.handleGetWorkout))
	s.handle("PATCH", "/workouts/{id}", s.withAuth(s.handlePatchWorkout))
	s.handle("DELETE", "/workouts/{id}", s.withAuth(s.handleDeleteWorkout))

	s.handle("GET", "/nutrition-plans", s.withAuth(s.handleListPlans))
	s.handle("POST", "/nutrition-plans", s.withAuth(s.handleCreatePlan))
	s.handle("GET", "/nutrition-plans/{id}", s.withAuth(s.handleGetPlan))
	s.handle("DELETE", "/nutrition-plans/{id}", s.withAuth(s.handleDeletePlan))

	s.handle("GET", "/chat/history", s.withAuth(s.handleChatHistory))
	s.handle("DELETE", "/chat/history", s.withAuth(s.handleClearChat))
	s.handle("GET", "/chat/ws", s.handleChatWS)

	s.handle("POST", "/ai/meal-plan", s.withAuth(s.handleMealPlan))
	s.handle("POST", "/ai/workout", s.withAuth(s.handleWorkoutPlan))
	s.handle("POST", "/ai/analyze-food", s.withAuth(s.handleAnalyzeFood))

	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.HandleFunc("GET /readyz", s.handleReady)
	s.mux.HandleFunc("GET /metrics", metrics.Handler)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.mux.ServeHTTP(w, r) }

// --- auth ---

type ctxKey int

const identityKey ctxKey = iota

func identityFrom(ctx context.Context) models.Identity {
	id, _ := ctx.Value(identityKey).(models.Identity)
	return id
}

func (s *Server) authenticate(r *http.Request) (models.Identity, bool) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return models.Identity{}, false
	}
	id, err := s.verifier.Verify(r.Context(), strings.TrimPrefix(auth, "Bearer "))
	if err != nil {
		return models.Identity{}, false
	}
	return id, true
}

func (s *Server) withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.authenticate(r)
		if !ok {
			writeFail(w, http.StatusUnauthorized, "Invalid or missing token")
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), identityKey, id)))
	}
}

func (s *Server) withAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.authenticate(r)
		if !ok {
			writeFail(w, http.StatusUnauthorized, "Invalid or missing token")
			return
		}
		if !id.IsAdmin() {
			writeFail(w, http.StatusForbidden, "Admin access required")
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), identityKey, id)))
	}
}

// --- response envelope ---

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, code int, data interface{}) {
	writeJSON(w, code, map[string]interface{}{"status": "success", "data": data})
}

func writeFail(w http.ResponseWriter, code int, message string) {
	status := "fail"
	if code >= 500 {
		status = "error"
	}
	writeJSON(w, code, map[string]interface{}{"status": status, "message": message})
}

// --- health ---

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.ready != nil {
		if err := s.ready(r.Context()); err != nil {
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
