// Package gap compares a resume against a job posting's requirements and
// produces a deterministic match score, a classified set of skill gaps,
// and seed questions about the most critical ones.
package gap

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/gap-advisor/internal/cvparse"
	"github.com/jonathan/gap-advisor/internal/extraction"
	"github.com/jonathan/gap-advisor/internal/llm"
	"github.com/jonathan/gap-advisor/internal/types"
)

// Scoring constants. The formula is part of the external contract and must
// stay reproducible: basic coverage minus critical and experience penalties.
const (
	criticalGapPenalty   = 5
	experiencePenaltyPer = 3
	experiencePenaltyMax = 15
)

// Resolver computes gap analyses between resumes and job postings.
type Resolver struct {
	parser    *cvparse.Parser
	extractor *extraction.Extractor
	client    llm.Client
}

// NewResolver creates a Resolver. The client may be nil; all AI-dependent
// paths then use their deterministic fallbacks.
func NewResolver(client llm.Client) *Resolver {
	return &Resolver{
		parser:    cvparse.NewParser(),
		extractor: extraction.NewExtractor(client),
		client:    client,
	}
}

// Resolve runs the full analysis for a (resume, job) pair.
// Only InputError crosses this boundary: AI failures inside extraction or
// question seeding are absorbed by fallbacks, so the caller always receives
// a complete, internally consistent result.
func (r *Resolver) Resolve(ctx context.Context, cvText, jobText string, useAI bool) (*types.GapAnalysisResult, error) {
	if strings.TrimSpace(cvText) == "" {
		return nil, &InputError{Message: "resume text is empty"}
	}
	if strings.TrimSpace(jobText) == "" {
		return nil, &InputError{Message: "job posting text is empty"}
	}

	cvData, err := r.parser.ParseText(cvText)
	if err != nil {
		return nil, &InputError{Message: err.Error()}
	}

	requirements, err := r.extractor.Extract(ctx, jobText, useAI)
	if err != nil {
		return nil, &InputError{Message: err.Error()}
	}

	result := r.compare(cvData, requirements)

	if useAI {
		result.SuggestedQuestions = r.suggestQuestions(ctx, result)
	}

	return result, nil
}

// compare matches every required skill against the resume text and fills
// in gaps, found skills, the experience gap, and the match score.
func (r *Resolver) compare(cvData *types.CVData, requirements *types.JobRequirements) *types.GapAnalysisResult {
	result := &types.GapAnalysisResult{
		ID:              uuid.New(),
		CVData:          cvData,
		JobRequirements: requirements,
	}

	cvTextLower := strings.ToLower(cvData.RawText)

	result.TechnicalGaps = findSkillGaps(requirements.TechnicalSkills, cvTextLower)
	result.SoftSkillGaps = findSkillGaps(requirements.SoftSkills, cvTextLower)
	result.LanguageGaps = findSkillGaps(requirements.Languages, cvTextLower)
	result.CertificationGaps = findSkillGaps(requirements.Certifications, cvTextLower)

	for _, skill := range requirements.GetAllSkills() {
		if skillInText(skill.Name, cvTextLower) {
			result.SkillsFound = append(result.SkillsFound, skill)
		}
	}

	if requirements.ExperienceYears > 0 {
		if cvYears, ok := extraction.ExperienceYears(cvData.RawText); ok && cvYears < requirements.ExperienceYears {
			result.ExperienceGap = requirements.ExperienceYears - cvYears
		}
	}

	result.MatchScore = matchScore(result)

	return result
}

// findSkillGaps returns a gap for every required skill absent from the
// resume, retaining the source priority and context.
func findSkillGaps(required []types.Skill, cvTextLower string) []types.SkillGap {
	var gaps []types.SkillGap
	for _, skill := range required {
		if !skillInText(skill.Name, cvTextLower) {
			gaps = append(gaps, types.SkillGap{
				SkillName: skill.Name,
				Priority:  skill.Priority,
				Context:   skill.Context,
				FoundInCV: false,
			})
		}
	}
	return gaps
}

// matchScore computes the deterministic 0-100 score:
// coverage percentage, minus 5 per critical gap, minus min(expGap*3, 15),
// clamped at 0 and rounded to 2 decimals. Zero required skills score 100.
func matchScore(result *types.GapAnalysisResult) float64 {
	required := result.JobRequirements.GetAllSkills()
	if len(required) == 0 {
		return 100.0
	}

	basic := float64(len(result.SkillsFound)) / float64(len(required)) * 100

	criticalPenalty := float64(len(result.GetCriticalGaps()) * criticalGapPenalty)

	experiencePenalty := 0.0
	if result.ExperienceGap > 0 {
		experiencePenalty = math.Min(float64(result.ExperienceGap*experiencePenaltyPer), experiencePenaltyMax)
	}

	score := basic - criticalPenalty - experiencePenalty
	if score < 0 {
		score = 0
	}
	return math.Round(score*100) / 100
}
