package gap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillInText_DirectMatch(t *testing.T) {
	assert.True(t, skillInText("Python", "senior python developer"))
	assert.False(t, skillInText("Python", "senior java developer"))
}

func TestSkillInText_KnownAliases(t *testing.T) {
	tests := []struct {
		skill string
		text  string
	}{
		{"Kubernetes", "deployed workloads on k8s clusters"},
		{"JavaScript", "wrote js for the frontend"},
		{"JavaScript", "built node.js services"},
		{"TypeScript", "migrated the codebase to ts"},
		{"PostgreSQL", "tuned postgres queries"},
		{"React", "shipped reactjs components"},
		{"Vue", "vuejs single page apps"},
		{"Angular", "maintained an angularjs app"},
	}

	for _, tt := range tests {
		t.Run(tt.skill, func(t *testing.T) {
			assert.True(t, skillInText(tt.skill, tt.text))
		})
	}
}

func TestSkillInText_GeneratedVariants(t *testing.T) {
	// Space and hyphen variants are derived from the skill name itself.
	assert.True(t, skillInText("Machine Learning", "machinelearning pipelines"))
	assert.True(t, skillInText("Machine Learning", "machine-learning pipelines"))
	assert.True(t, skillInText("CI-CD", "cicd tooling"))
}

func TestSkillVariations_AlwaysIncludesGenerated(t *testing.T) {
	variations := skillVariations("data science")

	assert.Contains(t, variations, "datascience")
	assert.Contains(t, variations, "data-science")
}
