// Package types provides type definitions for structured data used throughout the gap-advisor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RequirementPriority indicates how strongly a job posting demands a skill.
type RequirementPriority string

// Priority levels recognized in job postings.
const (
	PriorityMustHave   RequirementPriority = "must_have"
	PriorityNiceToHave RequirementPriority = "nice_to_have"
	PriorityPreferred  RequirementPriority = "preferred"
)

// Valid reports whether p is one of the recognized priority values.
func (p RequirementPriority) Valid() bool {
	switch p {
	case PriorityMustHave, PriorityNiceToHave, PriorityPreferred:
		return true
	}
	return false
}

// SkillCategory classifies an extracted skill.
type SkillCategory string

// Skill categories recognized in job postings.
const (
	CategoryTechnical     SkillCategory = "technical"
	CategorySoft          SkillCategory = "soft"
	CategoryLanguage      SkillCategory = "language"
	CategoryCertification SkillCategory = "certification"
)

// Skill represents a single requirement extracted from a job posting.
// Skills are immutable once created.
type Skill struct {
	Name     string              `json:"name"`
	Category SkillCategory       `json:"category"`
	Priority RequirementPriority `json:"priority"`
	Context  string              `json:"context,omitempty"`
}

// JobRequirements holds the structured requirements extracted from a job posting.
// A skill appears in exactly one category list.
type JobRequirements struct {
	TechnicalSkills  []Skill  `json:"technical_skills"`
	SoftSkills       []Skill  `json:"soft_skills"`
	Languages        []Skill  `json:"languages"`
	Certifications   []Skill  `json:"certifications"`
	ExperienceYears  int      `json:"experience_years,omitempty"`
	EducationLevel   string   `json:"education_level,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Benefits         []string `json:"benefits,omitempty"`
}

// GetAllSkills returns every required skill across all four categories,
// in category order (technical, soft, language, certification).
func (r *JobRequirements) GetAllSkills() []Skill {
	all := make([]Skill, 0, len(r.TechnicalSkills)+len(r.SoftSkills)+len(r.Languages)+len(r.Certifications))
	all = append(all, r.TechnicalSkills...)
	all = append(all, r.SoftSkills...)
	all = append(all, r.Languages...)
	all = append(all, r.Certifications...)
	return all
}

// GetMustHaves returns only the must-have skills across all categories.
func (r *JobRequirements) GetMustHaves() []Skill {
	var musts []Skill
	for _, s := range r.GetAllSkills() {
		if s.Priority == PriorityMustHave {
			musts = append(musts, s)
		}
	}
	return musts
}

// RequirementsSummary holds aggregate counts over a JobRequirements.
type RequirementsSummary struct {
	TotalSkills             int  `json:"total_skills"`
	MustHaveSkills          int  `json:"must_have_skills"`
	NiceToHaveSkills        int  `json:"nice_to_have_skills"`
	TechnicalSkillsCount    int  `json:"technical_skills_count"`
	SoftSkillsCount         int  `json:"soft_skills_count"`
	LanguagesCount          int  `json:"languages_count"`
	CertificationsCount     int  `json:"certifications_count"`
	ExperienceYears         int  `json:"experience_years,omitempty"`
	HasEducationRequirement bool `json:"has_education_requirement"`
	ResponsibilitiesCount   int  `json:"responsibilities_count"`
	BenefitsCount           int  `json:"benefits_count"`
}

// Summary computes aggregate counts for the requirement set.
func (r *JobRequirements) Summary() RequirementsSummary {
	all := r.GetAllSkills()
	musts := r.GetMustHaves()
	return RequirementsSummary{
		TotalSkills:             len(all),
		MustHaveSkills:          len(musts),
		NiceToHaveSkills:        len(all) - len(musts),
		TechnicalSkillsCount:    len(r.TechnicalSkills),
		SoftSkillsCount:         len(r.SoftSkills),
		LanguagesCount:          len(r.Languages),
		CertificationsCount:     len(r.Certifications),
		ExperienceYears:         r.ExperienceYears,
		HasEducationRequirement: r.EducationLevel != "",
		ResponsibilitiesCount:   len(r.Responsibilities),
		BenefitsCount:           len(r.Benefits),
	}
}
