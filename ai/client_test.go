package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeModelServer emulates the collaborator's generateContent endpoint.
func fakeModelServer(t *testing.T, reply string, capture *Request) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}
		resp := Response{Candidates: []Candidate{{Content: Content{Parts: []Part{{Text: reply}}}}}}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestMealPlanParsesStructuredReply(t *testing.T) {
	reply := "```json\n{\"meals\":[{\"name\":\"Breakfast\",\"foods\":[{\"name\":\"Eggs\",\"grams\":120}],\"calories\":350,\"protein\":24,\"carbs\":2,\"fats\":26}],\"notes\":\"ok\"}\n```"
	var captured Request
	srv := fakeModelServer(t, reply, &captured)
	defer srv.Close()

	c := NewClient("test-key", srv.URL, "gemini-2.0-flash")
	plan, err := c.MealPlan(context.Background(), models.MealPlanRequest{Goal: "cut", DailyCalories: 2000})
	require.NoError(t, err)
	require.Len(t, plan.Meals, 1)
	assert.Equal(t, "Eggs", plan.Meals[0].Foods[0].Name)

	// request carries the prompt in contents[0].parts[0].text
	require.Len(t, captured.Contents, 1)
	require.NotEmpty(t, captured.Contents[0].Parts)
	assert.Contains(t, captured.Contents[0].Parts[0].Text, "nutritionist")
}

func TestMealPlanDefaultsOnGarbageReply(t *testing.T) {
	srv := fakeModelServer(t, "sorry, no can do", nil)
	defer srv.Close()

	c := NewClient("test-key", srv.URL, "gemini-2.0-flash")
	plan, err := c.MealPlan(context.Background(), models.MealPlanRequest{})
	require.NoError(t, err)
	assert.Equal(t, DefaultMealPlan(models.MealPlanRequest{}), plan)
}

func TestMealPlanDefaultsOnTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, "gemini-2.0-flash")
	plan, err := c.MealPlan(context.Background(), models.MealPlanRequest{})
	assert.Error(t, err)
	assert.NotEmpty(t, plan.Meals, "a default plan is still returned")
}

func TestAnalyzeFoodSendsInlineData(t *testing.T) {
	reply := `{"food_name":"grilled chicken","calories":240,"protein":44,"carbs":0,"fats":6,"confidence":"medium"}`
	var captured Request
	srv := fakeModelServer(t, reply, &captured)
	defer srv.Close()

	c := NewClient("test-key", srv.URL, "gemini-2.0-flash")
	res, err := c.AnalyzeFood(context.Background(), "aGVsbG8=", "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "grilled chicken", res.FoodName)

	require.Len(t, captured.Contents, 1)
	require.Len(t, captured.Contents[0].Parts, 2)
	require.NotNil(t, captured.Contents[0].Parts[1].InlineData)
	assert.Equal(t, "image/jpeg", captured.Contents[0].Parts[1].InlineData.MimeType)
	assert.Equal(t, "aGVsbG8=", captured.Contents[0].Parts[1].InlineData.Data)
}

func TestCoachReplyFallbackText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, "gemini-2.0-flash")
	reply, err := c.CoachReply(context.Background(), "how much protein do I need?")
	assert.Error(t, err)
	assert.NotEmpty(t, reply)
}
