package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRequirements() *JobRequirements {
	return &JobRequirements{
		TechnicalSkills: []Skill{
			{Name: "Python", Category: CategoryTechnical, Priority: PriorityMustHave},
			{Name: "Redis", Category: CategoryTechnical, Priority: PriorityNiceToHave},
		},
		SoftSkills: []Skill{
			{Name: "Leadership", Category: CategorySoft, Priority: PriorityPreferred},
		},
		Languages: []Skill{
			{Name: "English", Category: CategoryLanguage, Priority: PriorityMustHave},
		},
		Certifications:   []Skill{},
		ExperienceYears:  5,
		EducationLevel:   "Bachelor's degree",
		Responsibilities: []string{"Build services"},
		Benefits:         []string{"Remote work", "Stock options"},
	}
}

func TestRequirementPriority_Valid(t *testing.T) {
	assert.True(t, PriorityMustHave.Valid())
	assert.True(t, PriorityNiceToHave.Valid())
	assert.True(t, PriorityPreferred.Valid())
	assert.False(t, RequirementPriority("critical").Valid())
	assert.False(t, RequirementPriority("").Valid())
}

func TestJobRequirements_GetAllSkills(t *testing.T) {
	reqs := sampleRequirements()

	all := reqs.GetAllSkills()

	require.Len(t, all, 4)
	// Category order: technical, soft, language, certification.
	assert.Equal(t, "Python", all[0].Name)
	assert.Equal(t, "Redis", all[1].Name)
	assert.Equal(t, "Leadership", all[2].Name)
	assert.Equal(t, "English", all[3].Name)
}

func TestJobRequirements_GetMustHaves(t *testing.T) {
	reqs := sampleRequirements()

	musts := reqs.GetMustHaves()

	require.Len(t, musts, 2)
	assert.Equal(t, "Python", musts[0].Name)
	assert.Equal(t, "English", musts[1].Name)
}

func TestJobRequirements_Summary(t *testing.T) {
	summary := sampleRequirements().Summary()

	assert.Equal(t, 4, summary.TotalSkills)
	assert.Equal(t, 2, summary.MustHaveSkills)
	assert.Equal(t, 2, summary.NiceToHaveSkills)
	assert.Equal(t, 2, summary.TechnicalSkillsCount)
	assert.Equal(t, 1, summary.SoftSkillsCount)
	assert.Equal(t, 1, summary.LanguagesCount)
	assert.Equal(t, 0, summary.CertificationsCount)
	assert.Equal(t, 5, summary.ExperienceYears)
	assert.True(t, summary.HasEducationRequirement)
	assert.Equal(t, 1, summary.ResponsibilitiesCount)
	assert.Equal(t, 2, summary.BenefitsCount)
}

func TestJobRequirements_EmptySummary(t *testing.T) {
	summary := (&JobRequirements{}).Summary()

	assert.Zero(t, summary.TotalSkills)
	assert.False(t, summary.HasEducationRequirement)
}
