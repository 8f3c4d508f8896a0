package generation

import (
	_ "embed"
	"encoding/json"
	"errors"
	"math"
	"strings"

	"github.com/codecraft/roadmap-api/internal/schemas"
	"github.com/codecraft/roadmap-api/internal/types"
)

//go:embed roadmap.schema.json
var roadmapSchema string

//go:embed resume_analysis.schema.json
var resumeAnalysisSchema string

// ValidateRoadmap parses a sanitized payload and checks it against the
// roadmap shape. On success it returns the typed document; otherwise a
// *ValidationError. No partial documents are ever returned.
func ValidateRoadmap(payload string) (*types.RoadmapDocument, error) {
	if err := checkShape(roadmapSchema, payload); err != nil {
		return nil, err
	}

	var doc types.RoadmapDocument
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return nil, &ValidationError{Reason: ReasonInvalidValue, Detail: "payload does not decode into a roadmap", Cause: err}
	}

	// The schema enforces minLength on strings; whitespace-only values
	// still slip through it.
	for _, section := range doc.Sections {
		if strings.TrimSpace(section.Title) == "" {
			return nil, &ValidationError{Reason: ReasonInvalidValue, Field: "sections.title", Detail: "section title is blank"}
		}
		for _, topic := range section.Topics {
			if strings.TrimSpace(topic.Title) == "" {
				return nil, &ValidationError{Reason: ReasonInvalidValue, Field: "topics.title", Detail: "topic title is blank"}
			}
			if strings.TrimSpace(topic.Description) == "" {
				return nil, &ValidationError{Reason: ReasonInvalidValue, Field: "topics.description", Detail: "topic description is blank"}
			}
		}
	}

	return &doc, nil
}

// ValidateResumeAnalysis parses a sanitized payload and checks it against
// the resume-analysis shape.
func ValidateResumeAnalysis(payload string) (*types.ResumeAnalysis, error) {
	if err := checkShape(resumeAnalysisSchema, payload); err != nil {
		return nil, err
	}

	// Decode score as float first: JSON has no integer type, and the
	// schema accepts numbers with a zero fraction (e.g. 87.0).
	var raw struct {
		Score       float64 `json:"score"`
		Strengths   string  `json:"strengths"`
		Weaknesses  string  `json:"weaknesses"`
		Suggestions string  `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, &ValidationError{Reason: ReasonInvalidValue, Detail: "payload does not decode into an analysis", Cause: err}
	}

	if math.Trunc(raw.Score) != raw.Score {
		return nil, &ValidationError{Reason: ReasonInvalidValue, Field: "score", Detail: "score must be an integer"}
	}
	for field, value := range map[string]string{
		"strengths":   raw.Strengths,
		"weaknesses":  raw.Weaknesses,
		"suggestions": raw.Suggestions,
	} {
		if strings.TrimSpace(value) == "" {
			return nil, &ValidationError{Reason: ReasonInvalidValue, Field: field, Detail: field + " is blank"}
		}
	}

	return &types.ResumeAnalysis{
		Score:       int(raw.Score),
		Strengths:   raw.Strengths,
		Weaknesses:  raw.Weaknesses,
		Suggestions: raw.Suggestions,
	}, nil
}

// checkShape runs structural validation of the payload against a JSON
// Schema and converts the outcome into the pipeline's error taxonomy.
func checkShape(schema, payload string) error {
	if !json.Valid([]byte(payload)) {
		return &ValidationError{Reason: ReasonParse, Detail: "payload is not valid JSON"}
	}

	err := schemas.ValidateJSONString(schema, payload)
	if err == nil {
		return nil
	}

	var ve *schemas.ValidationError
	if errors.As(err, &ve) && len(ve.Errors) > 0 {
		return fromSchemaError(ve.Errors[0], err)
	}
	return &ValidationError{Reason: ReasonParse, Detail: "payload could not be checked", Cause: err}
}

// fromSchemaError maps a gojsonschema field error onto a ValidationError.
func fromSchemaError(fe schemas.FieldError, cause error) *ValidationError {
	// gojsonschema reports missing properties as "<name> is required".
	if name, ok := strings.CutSuffix(fe.Message, " is required"); ok {
		return &ValidationError{Reason: ReasonMissingField, Field: name, Cause: cause}
	}
	field := fe.Field
	if field == "(root)" {
		field = ""
	}
	return &ValidationError{Reason: ReasonInvalidValue, Field: field, Detail: fe.Message, Cause: cause}
}
