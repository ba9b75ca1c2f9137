package questions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/gap-advisor/internal/types"
)

func TestInferCategory(t *testing.T) {
	tests := []struct {
		skill    string
		expected types.QuestionCategory
	}{
		{"English", types.QuestionLanguage},
		{"Advanced Spanish", types.QuestionLanguage},
		{"Français", types.QuestionTechnical}, // only the keyword forms match
		{"French", types.QuestionLanguage},
		{"AWS Certified Solutions Architect", types.QuestionCertification},
		{"Azure", types.QuestionCertification},
		{"Scrum certification", types.QuestionCertification},
		{"Leadership", types.QuestionSoftSkill},
		{"Trabajo en equipo", types.QuestionSoftSkill},
		{"Python", types.QuestionTechnical},
		{"Kubernetes", types.QuestionTechnical},
		{"", types.QuestionTechnical},
	}

	for _, tt := range tests {
		t.Run(tt.skill, func(t *testing.T) {
			gap := &types.SkillGap{SkillName: tt.skill}
			assert.Equal(t, tt.expected, InferCategory(gap))
		})
	}
}

func TestInferCategory_LanguageBeatsCertification(t *testing.T) {
	// "English certification" hits both rule families; languages are
	// consulted first.
	gap := &types.SkillGap{SkillName: "English certification"}
	assert.Equal(t, types.QuestionLanguage, InferCategory(gap))
}
