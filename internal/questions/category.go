package questions

import (
	"strings"

	"github.com/jonathan/gap-advisor/internal/types"
)

// categoryRule maps a keyword found in a skill name to a question category.
type categoryRule struct {
	keyword  string
	category types.QuestionCategory
}

// categoryRules is the lookup table for category inference, consulted in
// order: language names win over certification keywords, which win over
// soft-skill keywords. Anything unmatched is technical.
var categoryRules = []categoryRule{
	// Spoken languages
	{"english", types.QuestionLanguage},
	{"spanish", types.QuestionLanguage},
	{"french", types.QuestionLanguage},
	{"german", types.QuestionLanguage},
	{"portuguese", types.QuestionLanguage},
	{"italian", types.QuestionLanguage},
	{"inglés", types.QuestionLanguage},
	{"español", types.QuestionLanguage},
	{"francés", types.QuestionLanguage},
	{"alemán", types.QuestionLanguage},
	{"portugués", types.QuestionLanguage},
	{"italiano", types.QuestionLanguage},

	// Certifications and cloud providers
	{"certified", types.QuestionCertification},
	{"certification", types.QuestionCertification},
	{"certificate", types.QuestionCertification},
	{"aws", types.QuestionCertification},
	{"azure", types.QuestionCertification},
	{"gcp", types.QuestionCertification},
	{"certificado", types.QuestionCertification},
	{"certificación", types.QuestionCertification},

	// Soft skills
	{"leadership", types.QuestionSoftSkill},
	{"communication", types.QuestionSoftSkill},
	{"teamwork", types.QuestionSoftSkill},
	{"problem-solving", types.QuestionSoftSkill},
	{"liderazgo", types.QuestionSoftSkill},
	{"comunicación", types.QuestionSoftSkill},
	{"trabajo en equipo", types.QuestionSoftSkill},
}

// InferCategory determines the question category for a gap from its skill
// name via keyword lookup. Defaults to technical.
func InferCategory(gap *types.SkillGap) types.QuestionCategory {
	skillLower := strings.ToLower(gap.SkillName)
	for _, rule := range categoryRules {
		if strings.Contains(skillLower, rule.keyword) {
			return rule.category
		}
	}
	return types.QuestionTechnical
}
