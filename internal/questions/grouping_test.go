package questions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/gap-advisor/internal/types"
)

func question(skill string, priority types.RequirementPriority, category types.QuestionCategory) *types.Question {
	return &types.Question{
		Text:     "About " + skill + "?",
		Gap:      &types.SkillGap{SkillName: skill, Priority: priority},
		Category: category,
		Priority: priority,
	}
}

func TestGroup_ClustersByCategory(t *testing.T) {
	e := NewEngine(nil, types.LanguageEnglish)
	generated := []*types.Question{
		question("Docker", types.PriorityMustHave, types.QuestionTechnical),
		question("Leadership", types.PriorityNiceToHave, types.QuestionSoftSkill),
		question("Kubernetes", types.PriorityMustHave, types.QuestionTechnical),
	}

	groups := e.Group(generated)

	require.Len(t, groups, 2)
	assert.Equal(t, types.QuestionTechnical, groups[0].Category)
	assert.Len(t, groups[0].Questions, 2)
	assert.Equal(t, types.QuestionSoftSkill, groups[1].Category)
	assert.Len(t, groups[1].Questions, 1)
}

func TestGroup_OrdersByPriorityScore(t *testing.T) {
	e := NewEngine(nil, types.LanguageEnglish)

	// One must-have technical question (10) against three nice-to-have
	// soft-skill questions (15): the soft group ranks first.
	generated := []*types.Question{
		question("Docker", types.PriorityMustHave, types.QuestionTechnical),
		question("Leadership", types.PriorityNiceToHave, types.QuestionSoftSkill),
		question("Teamwork", types.PriorityNiceToHave, types.QuestionSoftSkill),
		question("Communication", types.PriorityNiceToHave, types.QuestionSoftSkill),
	}

	groups := e.Group(generated)

	require.Len(t, groups, 2)
	assert.Equal(t, types.QuestionSoftSkill, groups[0].Category)
	assert.Equal(t, 15, groups[0].PriorityScore())
	assert.Equal(t, types.QuestionTechnical, groups[1].Category)
	assert.Equal(t, 10, groups[1].PriorityScore())
}

func TestGroup_IntroTexts(t *testing.T) {
	e := NewEngine(nil, types.LanguageEnglish)
	generated := []*types.Question{
		question("Docker", types.PriorityMustHave, types.QuestionTechnical),
		question("Terraform", types.PriorityNiceToHave, types.QuestionCertification),
		question("5 years experience", types.PriorityMustHave, types.QuestionExperience),
	}

	groups := e.Group(generated)
	require.Len(t, groups, 3)

	intros := make(map[types.QuestionCategory]string)
	for _, g := range groups {
		intros[g.Category] = g.IntroText
	}

	assert.Equal(t, e.templates.IntroCritical, intros[types.QuestionTechnical])
	assert.Equal(t, e.templates.IntroNice, intros[types.QuestionCertification])
	// The synthesized experience question is must-have, so its group also
	// gets the critical intro.
	assert.Equal(t, e.templates.IntroCritical, intros[types.QuestionExperience])
}

func TestGroup_ExperienceIntroForNonCriticalGroup(t *testing.T) {
	e := NewEngine(nil, types.LanguageEnglish)

	groups := e.Group([]*types.Question{
		question("2 years experience", types.PriorityNiceToHave, types.QuestionExperience),
	})

	require.Len(t, groups, 1)
	assert.Equal(t, e.templates.IntroExperience, groups[0].IntroText)
}

func TestGroup_Empty(t *testing.T) {
	e := NewEngine(nil, types.LanguageEnglish)
	assert.Empty(t, e.Group(nil))
}
