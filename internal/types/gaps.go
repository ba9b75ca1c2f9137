package types

import "github.com/google/uuid"

// SkillGap represents a required skill that was not detected in the resume.
type SkillGap struct {
	SkillName string              `json:"skill_name"`
	Priority  RequirementPriority `json:"priority"`
	Context   string              `json:"context,omitempty"`
	FoundInCV bool                `json:"found_in_cv"`
}

// IsCritical reports whether this gap is a missing must-have requirement.
func (g *SkillGap) IsCritical() bool {
	return g.Priority == PriorityMustHave && !g.FoundInCV
}

// GapAnalysisResult is the outcome of comparing a resume against a job
// posting's requirements. It is created once per (resume, job) pair and
// never mutated afterwards except by a full re-run.
type GapAnalysisResult struct {
	ID              uuid.UUID        `json:"id"`
	CVData          *CVData          `json:"cv_data"`
	JobRequirements *JobRequirements `json:"job_requirements"`

	SkillsFound []Skill `json:"skills_found"`

	TechnicalGaps     []SkillGap `json:"technical_gaps"`
	SoftSkillGaps     []SkillGap `json:"soft_skill_gaps"`
	LanguageGaps      []SkillGap `json:"language_gaps"`
	CertificationGaps []SkillGap `json:"certification_gaps"`

	// ExperienceGap is the number of missing years of experience.
	// Zero means no shortfall was detected.
	ExperienceGap int `json:"experience_gap,omitempty"`

	SuggestedQuestions []string `json:"suggested_questions,omitempty"`

	// MatchScore is a deterministic 0-100 metric, rounded to 2 decimals.
	MatchScore float64 `json:"match_score"`
}

// GetAllGaps returns every gap across all four categories, in category
// order (technical, soft, language, certification).
func (r *GapAnalysisResult) GetAllGaps() []SkillGap {
	all := make([]SkillGap, 0, len(r.TechnicalGaps)+len(r.SoftSkillGaps)+len(r.LanguageGaps)+len(r.CertificationGaps))
	all = append(all, r.TechnicalGaps...)
	all = append(all, r.SoftSkillGaps...)
	all = append(all, r.LanguageGaps...)
	all = append(all, r.CertificationGaps...)
	return all
}

// GetCriticalGaps returns only the gaps on missing must-have requirements.
func (r *GapAnalysisResult) GetCriticalGaps() []SkillGap {
	var critical []SkillGap
	for _, g := range r.GetAllGaps() {
		if g.IsCritical() {
			critical = append(critical, g)
		}
	}
	return critical
}

// GapSummary holds aggregate counts for a gap analysis.
type GapSummary struct {
	TotalGaps          int     `json:"total_gaps"`
	CriticalGaps       int     `json:"critical_gaps"`
	TechnicalGaps      int     `json:"technical_gaps"`
	SoftSkillGaps      int     `json:"soft_skill_gaps"`
	LanguageGaps       int     `json:"language_gaps"`
	CertificationGaps  int     `json:"certification_gaps"`
	MatchScore         float64 `json:"match_score"`
	ExperienceGapYears int     `json:"experience_gap_years,omitempty"`
}

// GetGapSummary computes aggregate counts over the analysis.
func (r *GapAnalysisResult) GetGapSummary() GapSummary {
	return GapSummary{
		TotalGaps:          len(r.GetAllGaps()),
		CriticalGaps:       len(r.GetCriticalGaps()),
		TechnicalGaps:      len(r.TechnicalGaps),
		SoftSkillGaps:      len(r.SoftSkillGaps),
		LanguageGaps:       len(r.LanguageGaps),
		CertificationGaps:  len(r.CertificationGaps),
		MatchScore:         r.MatchScore,
		ExperienceGapYears: r.ExperienceGap,
	}
}

// Recommendations buckets advice messages derived from a gap analysis.
type Recommendations struct {
	Critical   []string `json:"critical"`
	Important  []string `json:"important"`
	NiceToHave []string `json:"nice_to_have"`
}
