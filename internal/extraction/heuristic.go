package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/jonathan/gap-advisor/internal/types"
)

// priorityWindow is the number of characters inspected around a keyword
// hit when inferring its priority.
const priorityWindow = 100

// mustHaveKeywords mark a requirement as mandatory when they appear near
// a skill mention (English, Spanish, Portuguese, French).
var mustHaveKeywords = []string{
	"required", "must have", "must-have", "mandatory", "essential",
	"requerido", "obligatorio", "esencial", "indispensable",
	"exigido", "necessário", "obrigatório",
	"requis", "obligatoire", "essentiel",
}

// niceToHaveKeywords mark a requirement as optional.
var niceToHaveKeywords = []string{
	"nice to have", "nice-to-have", "preferred", "desirable", "plus", "bonus",
	"preferible", "deseable", "valorable", "se valora",
	"preferível", "desejável",
	"préféré", "souhaitable",
}

// technicalSkillIndicators is the fixed dictionary of technology terms the
// heuristic strategy scans for.
var technicalSkillIndicators = []string{
	"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "go", "rust",
	"react", "angular", "vue", "node", "django", "flask", "spring",
	"sql", "mysql", "postgresql", "mongodb", "redis",
	"docker", "kubernetes", "aws", "azure", "gcp", "terraform",
	"git", "ci/cd", "jenkins", "github actions",
	"machine learning", "deep learning", "ai", "data science",
}

// softSkillIndicators is the fixed dictionary of soft-skill terms across
// the four supported languages.
var softSkillIndicators = []string{
	"leadership", "communication", "teamwork", "problem solving",
	"liderazgo", "comunicación", "trabajo en equipo", "resolución de problemas",
	"liderança", "comunicação", "trabalho em equipe",
	"travail d'équipe",
}

// experienceYearPatterns match required/held years of experience across
// the four supported languages. Patterns are tried in order; the first
// numeric match wins.
var experienceYearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*(?:years?|años|anos|ans)\s+(?:of\s+)?(?:experience|experiencia|experiência|expérience)`),
	regexp.MustCompile(`(?:experience|experiencia|experiência|expérience).*?(\d+)\+?\s*(?:years?|años|anos|ans)`),
	regexp.MustCompile(`(\d+)\+?\s*(?:years?|años|anos|ans)`),
}

// extractHeuristic scans the posting against the fixed keyword dictionaries.
// Languages and certifications are not detected heuristically; only the AI
// strategy populates those categories.
func (e *Extractor) extractHeuristic(jobText string) *types.JobRequirements {
	textLower := strings.ToLower(jobText)

	var technical []types.Skill
	for _, term := range technicalSkillIndicators {
		if strings.Contains(textLower, term) {
			technical = append(technical, types.Skill{
				Name:     titleCase(term),
				Category: types.CategoryTechnical,
				Priority: inferPriority(textLower, term),
			})
		}
	}

	var soft []types.Skill
	for _, term := range softSkillIndicators {
		if strings.Contains(textLower, term) {
			soft = append(soft, types.Skill{
				Name:     titleCase(term),
				Category: types.CategorySoft,
				Priority: inferPriority(textLower, term),
			})
		}
	}

	reqs := &types.JobRequirements{
		TechnicalSkills: technical,
		SoftSkills:      soft,
	}
	if years, ok := ExperienceYears(jobText); ok {
		reqs.ExperienceYears = years
	}
	return reqs
}

// inferPriority inspects a window around the first occurrence of the skill.
// Nice-to-have keywords win over must-have keywords; with no keyword in the
// window the priority defaults to must_have. Downstream critical-gap
// penalties depend on that positive bias, so it must not change.
func inferPriority(textLower, skill string) types.RequirementPriority {
	idx := strings.Index(textLower, strings.ToLower(skill))
	if idx == -1 {
		return types.PriorityNiceToHave
	}

	start := idx - priorityWindow
	if start < 0 {
		start = 0
	}
	end := idx + len(skill) + priorityWindow
	if end > len(textLower) {
		end = len(textLower)
	}
	window := textLower[start:end]

	for _, keyword := range niceToHaveKeywords {
		if strings.Contains(window, keyword) {
			return types.PriorityNiceToHave
		}
	}
	for _, keyword := range mustHaveKeywords {
		if strings.Contains(window, keyword) {
			return types.PriorityMustHave
		}
	}

	return types.PriorityMustHave
}

// ExperienceYears extracts a years-of-experience figure from free text.
// The same patterns serve job postings and resumes. Returns false when
// no pattern matches.
func ExperienceYears(text string) (int, bool) {
	textLower := strings.ToLower(text)
	for _, pattern := range experienceYearPatterns {
		match := pattern.FindStringSubmatch(textLower)
		if match == nil {
			continue
		}
		years, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		return years, true
	}
	return 0, false
}

// titleCase upper-cases the first letter of every alphabetic run,
// e.g. "machine learning" -> "Machine Learning", "ci/cd" -> "Ci/Cd".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevAlpha := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevAlpha {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevAlpha = true
		} else {
			b.WriteRune(r)
			prevAlpha = false
		}
	}
	return b.String()
}
