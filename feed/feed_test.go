package feed

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"fitapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockRepo struct {
	docs       []models.Testimonial
	findErr    error
	countErr   error
	lastFilter bson.M
	lastSort   bson.D
}

func (m *mockRepo) Find(ctx context.Context, filter bson.M, sort bson.D, projection bson.M, limit int64) ([]models.Testimonial, error) {
	m.lastFilter = filter
	m.lastSort = sort
	if m.findErr != nil {
		return nil, m.findErr
	}
	out := m.docs
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockRepo) Count(ctx context.Context, filter bson.M) (int64, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return int64(len(m.docs)), nil
}

func stored(content string, rating int, age time.Duration) models.Testimonial {
	return models.Testimonial{
		ID:        primitive.NewObjectID(),
		Name:      "Member Name",
		Role:      "Member",
		Content:   content,
		Rating:    rating,
		Status:    models.StatusApproved,
		CreatedAt: time.Now().Add(-age),
	}
}

func TestStatusFilterIsSovereign(t *testing.T) {
	repo := &mockRepo{}
	f := New(repo, 3)

	f.List(context.Background(), url.Values{"status": {"pending"}})
	assert.Equal(t, models.StatusApproved, repo.lastFilter["status"])

	f.List(context.Background(), url.Values{"status": {"rejected"}, "rating": {"5"}})
	assert.Equal(t, models.StatusApproved, repo.lastFilter["status"])
	assert.Equal(t, 5, repo.lastFilter["rating"], "non-control keys are forwarded, numeric values cast")
}

func TestControlKeysNotForwarded(t *testing.T) {
	repo := &mockRepo{}
	f := New(repo, 3)
	f.List(context.Background(), url.Values{
		"page": {"2"}, "limit": {"50"}, "sort": {"rating"}, "fields": {"content"},
	})
	for _, key := range []string{"page", "limit", "sort", "fields"} {
		assert.NotContains(t, repo.lastFilter, key)
	}
}

func TestCapNeverExceeded(t *testing.T) {
	repo := &mockRepo{docs: []models.Testimonial{
		stored("a", 5, time.Hour),
		stored("b", 5, 2*time.Hour),
		stored("c", 4, 3*time.Hour),
		stored("d", 4, 4*time.Hour),
		stored("e", 3, 5*time.Hour),
	}}
	f := New(repo, 3)
	res := f.List(context.Background(), url.Values{})

	assert.Equal(t, 3, res.Results)
	assert.Len(t, res.Testimonials, 3)
	assert.False(t, res.IsDefault)
	assert.EqualValues(t, 5, res.Total)
	assert.Equal(t, "a", res.Testimonials[0].Content)
}

func TestEmptyStoreServesPlaceholders(t *testing.T) {
	f := New(&mockRepo{}, 3)
	res := f.List(context.Background(), url.Values{})

	require.Equal(t, 3, res.Results)
	assert.True(t, res.IsDefault)
	assert.EqualValues(t, 3, res.Total)
	for _, e := range res.Testimonials {
		assert.True(t, e.IsPlaceholder())
	}
}

func TestBackfillSkipsDuplicateContent(t *testing.T) {
	defaults := models.DefaultTestimonials()
	repo := &mockRepo{docs: []models.Testimonial{stored(defaults[1].Content, 5, time.Hour)}}
	f := New(repo, 3)
	res := f.List(context.Background(), url.Values{})

	require.Equal(t, 3, res.Results)
	assert.True(t, res.IsDefault)
	assert.False(t, res.Testimonials[0].IsPlaceholder())
	assert.Equal(t, defaults[0].ID, res.Testimonials[1].ID)
	assert.Equal(t, defaults[2].ID, res.Testimonials[2].ID)

	contents := map[string]bool{}
	for _, e := range res.Testimonials {
		assert.False(t, contents[e.Content], "no two entries share content")
		contents[e.Content] = true
	}
}

func TestStoreFailureFallsBackToDefaults(t *testing.T) {
	repo := &mockRepo{findErr: errors.New("connection reset")}
	f := New(repo, 3)
	res := f.List(context.Background(), url.Values{})

	require.Equal(t, 3, res.Results)
	assert.True(t, res.IsDefault)
	for _, e := range res.Testimonials {
		assert.True(t, e.IsPlaceholder())
	}
}

func TestCountFailureAlsoFallsBack(t *testing.T) {
	repo := &mockRepo{docs: []models.Testimonial{stored("real", 5, time.Hour)}, countErr: errors.New("timeout")}
	f := New(repo, 3)
	res := f.List(context.Background(), url.Values{})

	assert.True(t, res.IsDefault)
	assert.Equal(t, 3, res.Results)
}

func TestTotalNeverBelowResults(t *testing.T) {
	repo := &mockRepo{docs: []models.Testimonial{stored("only one", 5, time.Hour)}}
	f := New(repo, 3)
	res := f.List(context.Background(), url.Values{})

	assert.Equal(t, 3, res.Results)
	assert.GreaterOrEqual(t, res.Total, int64(res.Results))
}

func TestResolveSortDefaultsToNewestFirst(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, ResolveSort(""))
	assert.Equal(t, bson.D{{Key: "rating", Value: 1}, {Key: "createdAt", Value: -1}}, ResolveSort("rating,-createdAt"))
}

func TestResolveFields(t *testing.T) {
	assert.Nil(t, ResolveFields(""))
	assert.Equal(t, bson.M{"content": 1, "rating": 1}, ResolveFields("content, rating"))
}
