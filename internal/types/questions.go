package types

// Language selects the language used for generated questions.
type Language string

// Supported question languages.
const (
	LanguageSpanish    Language = "es"
	LanguageEnglish    Language = "en"
	LanguagePortuguese Language = "pt"
	LanguageFrench     Language = "fr"
)

// QuestionCategory classifies a generated question.
type QuestionCategory string

// Question categories. These are broader than skill categories: an
// experience question has no corresponding skill category.
const (
	QuestionTechnical     QuestionCategory = "technical"
	QuestionSoftSkill     QuestionCategory = "soft_skill"
	QuestionLanguage      QuestionCategory = "language"
	QuestionCertification QuestionCategory = "certification"
	QuestionExperience    QuestionCategory = "experience"
)

// Question is a follow-up question generated for a specific gap.
type Question struct {
	Text     string              `json:"text"`
	Gap      *SkillGap           `json:"gap"`
	Category QuestionCategory    `json:"category"`
	Priority RequirementPriority `json:"priority"`
	FollowUp string              `json:"follow_up,omitempty"`
}

// IsCritical mirrors the owning gap's criticality.
func (q *Question) IsCritical() bool {
	return q.Gap != nil && q.Gap.IsCritical()
}

// QuestionGroup clusters questions of the same category.
type QuestionGroup struct {
	Category  QuestionCategory `json:"category"`
	Questions []*Question      `json:"questions"`
	IntroText string           `json:"intro_text,omitempty"`
}

// AddQuestion appends a question to the group.
func (g *QuestionGroup) AddQuestion(q *Question) {
	g.Questions = append(g.Questions, q)
}

// PriorityScore ranks the group: 10 points per must-have question,
// 5 for everything else.
func (g *QuestionGroup) PriorityScore() int {
	score := 0
	for _, q := range g.Questions {
		if q.Priority == PriorityMustHave {
			score += 10
		} else {
			score += 5
		}
	}
	return score
}
