// Package extraction turns free-text job postings into structured,
// prioritized requirement sets. Two interchangeable strategies exist: an
// AI strategy backed by the LLM client and a multilingual keyword heuristic.
// The caller never observes which strategy ran; any AI failure falls back
// to the heuristic transparently.
package extraction

import (
	"context"
	_ "embed"
	"encoding/json"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/gap-advisor/internal/llm"
	"github.com/jonathan/gap-advisor/internal/prompts"
	"github.com/jonathan/gap-advisor/internal/types"
)

//go:embed requirements_schema.json
var requirementsSchema []byte

// Extractor extracts structured requirements from job posting text.
type Extractor struct {
	client   llm.Client
	validate *validator.Validate
}

// NewExtractor creates an Extractor. The client may be nil, in which case
// only the heuristic strategy is available.
func NewExtractor(client llm.Client) *Extractor {
	return &Extractor{
		client:   client,
		validate: validator.New(),
	}
}

// Extract analyzes a job posting and returns its structured requirements.
// When useAI is true the AI strategy runs first; on any failure (call error,
// malformed JSON, schema or record validation) a warning is logged and the
// heuristic strategy produces the result instead.
func (e *Extractor) Extract(ctx context.Context, jobText string, useAI bool) (*types.JobRequirements, error) {
	if strings.TrimSpace(jobText) == "" {
		return nil, &InputError{Message: "job posting text is empty"}
	}

	if useAI && e.client != nil {
		reqs, err := e.extractWithAI(ctx, jobText)
		if err == nil {
			return reqs, nil
		}
		log.Printf("Warning: AI extraction failed, using heuristic analysis: %v", err)
	}

	return e.extractHeuristic(jobText), nil
}

// aiSkill is the wire format for a single skill record in the AI response.
type aiSkill struct {
	Name     string `json:"name" validate:"required,min=1"`
	Priority string `json:"priority" validate:"omitempty,oneof=must_have nice_to_have preferred"`
	Context  string `json:"context"`
}

// aiRequirements is the wire format of the full AI extraction response.
type aiRequirements struct {
	TechnicalSkills  []aiSkill `json:"technical_skills"`
	SoftSkills       []aiSkill `json:"soft_skills"`
	Languages        []aiSkill `json:"languages"`
	Certifications   []aiSkill `json:"certifications"`
	ExperienceYears  int       `json:"experience_years"`
	EducationLevel   string    `json:"education_level"`
	Responsibilities []string  `json:"responsibilities"`
	Benefits         []string  `json:"benefits"`
}

func (e *Extractor) extractWithAI(ctx context.Context, jobText string) (*types.JobRequirements, error) {
	template := prompts.MustGet("extraction.json", "extract-job-requirements")
	prompt := prompts.Format(template, map[string]string{
		"JobText": jobText,
	})

	responseText, err := e.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &ExtractionError{Message: "LLM call failed", Cause: err}
	}
	responseText = llm.CleanJSONBlock(responseText)

	if err := validateAgainstSchema(responseText); err != nil {
		return nil, err
	}

	var wire aiRequirements
	if err := json.Unmarshal([]byte(responseText), &wire); err != nil {
		return nil, &ExtractionError{Message: "failed to parse JSON response", Cause: err}
	}

	return e.buildRequirements(&wire)
}

// validateAgainstSchema checks the raw AI payload against the embedded
// JSON Schema before unmarshalling.
func validateAgainstSchema(jsonText string) error {
	schemaLoader := gojsonschema.NewBytesLoader(requirementsSchema)
	docLoader := gojsonschema.NewStringLoader(jsonText)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return &ExtractionError{Message: "schema validation failed", Cause: err}
	}
	if !result.Valid() {
		var descs []string
		for _, desc := range result.Errors() {
			descs = append(descs, desc.String())
		}
		return &ExtractionError{Message: "response does not match schema: " + strings.Join(descs, "; ")}
	}
	return nil
}

// buildRequirements converts validated wire records into the domain model.
// A record with a missing priority defaults to nice_to_have; a record
// failing validation invalidates the whole payload so the heuristic
// fallback produces a consistent result instead of a half-parsed one.
func (e *Extractor) buildRequirements(wire *aiRequirements) (*types.JobRequirements, error) {
	convert := func(records []aiSkill, category types.SkillCategory) ([]types.Skill, error) {
		skills := make([]types.Skill, 0, len(records))
		for _, rec := range records {
			if err := e.validate.Struct(&rec); err != nil {
				return nil, &ExtractionError{Message: "malformed skill record", Cause: err}
			}
			priority := types.RequirementPriority(rec.Priority)
			if rec.Priority == "" {
				priority = types.PriorityNiceToHave
			}
			skills = append(skills, types.Skill{
				Name:     rec.Name,
				Category: category,
				Priority: priority,
				Context:  rec.Context,
			})
		}
		return skills, nil
	}

	technical, err := convert(wire.TechnicalSkills, types.CategoryTechnical)
	if err != nil {
		return nil, err
	}
	soft, err := convert(wire.SoftSkills, types.CategorySoft)
	if err != nil {
		return nil, err
	}
	languages, err := convert(wire.Languages, types.CategoryLanguage)
	if err != nil {
		return nil, err
	}
	certifications, err := convert(wire.Certifications, types.CategoryCertification)
	if err != nil {
		return nil, err
	}

	return &types.JobRequirements{
		TechnicalSkills:  technical,
		SoftSkills:       soft,
		Languages:        languages,
		Certifications:   certifications,
		ExperienceYears:  wire.ExperienceYears,
		EducationLevel:   wire.EducationLevel,
		Responsibilities: wire.Responsibilities,
		Benefits:         wire.Benefits,
	}, nil
}
