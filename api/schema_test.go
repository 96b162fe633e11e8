package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestimonialCreateSchema(t *testing.T) {
	v := NewPayloadValidator(testimonialCreateSchema)

	assert.NoError(t, v.Validate([]byte(`{"content":"Loved it","rating":5}`)))
	assert.NoError(t, v.Validate([]byte(`{"content":"ok","rating":1,"name":"Jo","role":"Coach"}`)))

	assert.Error(t, v.Validate([]byte(`{"rating":5}`)), "content is required")
	assert.Error(t, v.Validate([]byte(`{"content":"x","rating":0}`)))
	assert.Error(t, v.Validate([]byte(`{"content":"x","rating":6}`)))
	assert.Error(t, v.Validate([]byte(`{"content":"x","rating":4.5}`)), "rating must be an integer")
	assert.Error(t, v.Validate([]byte(`{"content":"x","rating":5,"status":"approved"}`)), "unknown fields rejected")
	assert.Error(t, v.Validate([]byte(`not json`)))
}

func TestTestimonialPatchSchema(t *testing.T) {
	v := NewPayloadValidator(testimonialPatchSchema)

	assert.NoError(t, v.Validate([]byte(`{"status":"rejected"}`)))
	assert.NoError(t, v.Validate([]byte(`{"content":"edited"}`)))

	assert.Error(t, v.Validate([]byte(`{}`)), "empty patch rejected")
	assert.Error(t, v.Validate([]byte(`{"status":"published"}`)), "status outside the enum")
}

func TestValidatorCompilesOnce(t *testing.T) {
	v := NewPayloadValidator(workoutCreateSchema)
	require.NoError(t, v.Validate([]byte(`{"title":"Push day","exercises":[{"name":"Bench","sets":3,"reps":8}]}`)))
	require.NoError(t, v.Validate([]byte(`{"title":"Pull day","exercises":[{"name":"Row","sets":4,"reps":10}]}`)))
	require.Error(t, v.Validate([]byte(`{"title":"Rest day"}`)), "exercises are required")
}
