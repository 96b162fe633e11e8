package api

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// PayloadValidator validates request bodies against a pre-compiled JSON schema.
type PayloadValidator struct {
	once   sync.Once
	schema *gojsonschema.Schema
	err    error
	source string
}

func NewPayloadValidator(source string) *PayloadValidator {
	return &PayloadValidator{source: source}
}

func (v *PayloadValidator) load() {
	v.schema, v.err = gojsonschema.NewSchema(gojsonschema.NewStringLoader(v.source))
	if v.err != nil {
		v.err = fmt.Errorf("compile schema: %w", v.err)
	}
}

func (v *PayloadValidator) Validate(doc []byte) error {
	v.once.Do(v.load)
	if v.err != nil {
		return v.err
	}
	res, err := v.schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return err
	}
	if !res.Valid() {
		var msgs []string
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%s", strings.Join(msgs, "; "))
	}
	return nil
}

const testimonialCreateSchema = `{
	"type": "object",
	"required": ["content", "rating"],
	"additionalProperties": false,
	"properties": {
		"content": {"type": "string", "minLength": 1, "maxLength": 1000},
		"rating": {"type": "integer", "minimum": 1, "maximum": 5},
		"name": {"type": "string", "maxLength": 100},
		"role": {"type": "string", "maxLength": 100}
	}
}`

const testimonialPatchSchema = `{
	"type": "object",
	"minProperties": 1,
	"additionalProperties": false,
	"properties": {
		"content": {"type": "string", "minLength": 1, "maxLength": 1000},
		"rating": {"type": "integer", "minimum": 1, "maximum": 5},
		"name": {"type": "string", "maxLength": 100},
		"role": {"type": "string", "maxLength": 100},
		"status": {"type": "string", "enum": ["pending", "approved", "rejected"]}
	}
}`

const workoutCreateSchema = `{
	"type": "object",
	"required": ["title", "exercises"],
	"additionalProperties": false,
	"properties": {
		"title": {"type": "string", "minLength": 1, "maxLength": 200},
		"focus": {"type": "string", "maxLength": 100},
		"notes": {"type": "string", "maxLength": 2000},
		"exercises": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["name", "sets", "reps"],
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"sets": {"type": "integer", "minimum": 1},
					"reps": {"type": "integer", "minimum": 1}
				}
			}
		}
	}
}`

const planCreateSchema = `{
	"type": "object",
	"required": ["title", "meals"],
	"additionalProperties": false,
	"properties": {
		"title": {"type": "string", "minLength": 1, "maxLength": 200},
		"calories": {"type": "number", "minimum": 0},
		"generated": {"type": "boolean"},
		"meals": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["name", "foods"],
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"foods": {
						"type": "array",
						"items": {
							"type": "object",
							"required": ["name", "grams"],
							"properties": {
								"name": {"type": "string", "minLength": 1},
								"grams": {"type": "number", "minimum": 0}
							}
						}
					},
					"calories": {"type": "number", "minimum": 0},
					"protein": {"type": "number", "minimum": 0},
					"carbs": {"type": "number", "minimum": 0},
					"fats": {"type": "number", "minimum": 0}
				}
			}
		}
	}
}`
