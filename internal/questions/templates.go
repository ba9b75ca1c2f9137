package questions

import (
	"strconv"
	"strings"

	"github.com/jonathan/gap-advisor/internal/types"
)

// TemplateSet holds the per-category question templates and group intro
// texts for one language. Placeholders: {skill}, {years}, {current}.
type TemplateSet struct {
	Technical     string
	SoftSkill     string
	Language      string
	Certification string
	Experience    string

	IntroCritical   string
	IntroNice       string
	IntroExperience string
}

// ForCategory returns the template for a question category. Unknown
// categories fall back to the technical template.
func (t *TemplateSet) ForCategory(category types.QuestionCategory) string {
	switch category {
	case types.QuestionSoftSkill:
		return t.SoftSkill
	case types.QuestionLanguage:
		return t.Language
	case types.QuestionCertification:
		return t.Certification
	case types.QuestionExperience:
		return t.Experience
	default:
		return t.Technical
	}
}

// Render substitutes the template placeholders.
func (t *TemplateSet) Render(template, skill string, years, current int) string {
	result := strings.ReplaceAll(template, "{skill}", skill)
	result = strings.ReplaceAll(result, "{years}", strconv.Itoa(years))
	result = strings.ReplaceAll(result, "{current}", strconv.Itoa(current))
	return result
}

// templateSets holds parallel templates for every supported language.
// Every category must have a template in every language.
var templateSets = map[types.Language]*TemplateSet{
	types.LanguageSpanish: {
		Technical:       "La vacante requiere {skill} pero no lo veo en tu CV. ¿Tienes experiencia con {skill}? Si es así, describe brevemente cómo lo has usado.",
		SoftSkill:       "Esta posición valora mucho {skill}. ¿Podrías compartir un ejemplo donde hayas demostrado {skill}?",
		Language:        "Se requiere {skill} para este puesto. ¿Cuál es tu nivel de dominio? (básico, intermedio, avanzado, nativo)",
		Certification:   "La vacante menciona {skill}. ¿Cuentas con esta certificación o experiencia equivalente?",
		Experience:      "Se requieren {years} años de experiencia, pero en tu CV veo {current} años. ¿Tienes experiencia adicional relevante que no hayas incluido?",
		IntroCritical:   "He identificado algunos requisitos importantes (must-have) de la vacante que no aparecen claramente en tu CV:",
		IntroNice:       "También hay algunas habilidades deseables (nice-to-have) que podrían fortalecer tu candidatura:",
		IntroExperience: "Sobre tu experiencia profesional:",
	},
	types.LanguageEnglish: {
		Technical:       "The position requires {skill} but I don't see it in your CV. Do you have experience with {skill}? If so, briefly describe how you've used it.",
		SoftSkill:       "This position highly values {skill}. Could you share an example where you've demonstrated {skill}?",
		Language:        "{skill} is required for this role. What's your proficiency level? (basic, intermediate, advanced, native)",
		Certification:   "The job posting mentions {skill}. Do you have this certification or equivalent experience?",
		Experience:      "{years} years of experience are required, but I see {current} years in your CV. Do you have additional relevant experience not included?",
		IntroCritical:   "I've identified some important must-have requirements from the job posting that aren't clearly shown in your CV:",
		IntroNice:       "There are also some nice-to-have skills that could strengthen your application:",
		IntroExperience: "About your professional experience:",
	},
	types.LanguagePortuguese: {
		Technical:       "A vaga requer {skill} mas não vejo isso no seu CV. Você tem experiência com {skill}? Se sim, descreva brevemente como o usou.",
		SoftSkill:       "Esta posição valoriza muito {skill}. Poderia compartilhar um exemplo onde demonstrou {skill}?",
		Language:        "É necessário {skill} para esta vaga. Qual é seu nível de domínio? (básico, intermediário, avançado, nativo)",
		Certification:   "A vaga menciona {skill}. Você possui esta certificação ou experiência equivalente?",
		Experience:      "São necessários {years} anos de experiência, mas vejo {current} anos no seu CV. Tem experiência adicional relevante não incluída?",
		IntroCritical:   "Identifiquei alguns requisitos importantes (must-have) da vaga que não aparecem claramente no seu CV:",
		IntroNice:       "Também há algumas habilidades desejáveis (nice-to-have) que poderiam fortalecer sua candidatura:",
		IntroExperience: "Sobre sua experiência profissional:",
	},
	types.LanguageFrench: {
		Technical:       "Le poste nécessite {skill} mais je ne le vois pas dans votre CV. Avez-vous de l'expérience avec {skill}? Si oui, décrivez brièvement comment vous l'avez utilisé.",
		SoftSkill:       "Ce poste valorise beaucoup {skill}. Pourriez-vous partager un exemple où vous avez démontré {skill}?",
		Language:        "{skill} est requis pour ce poste. Quel est votre niveau de maîtrise? (basique, intermédiaire, avancé, natif)",
		Certification:   "L'offre mentionne {skill}. Avez-vous cette certification ou une expérience équivalente?",
		Experience:      "{years} ans d'expérience sont requis, mais je vois {current} ans dans votre CV. Avez-vous une expérience supplémentaire pertinente non incluse?",
		IntroCritical:   "J'ai identifié quelques exigences importantes (must-have) de l'offre qui n'apparaissent pas clairement dans votre CV:",
		IntroNice:       "Il y a aussi quelques compétences souhaitables (nice-to-have) qui pourraient renforcer votre candidature:",
		IntroExperience: "À propos de votre expérience professionnelle:",
	},
}

// languageInstructions tell the model which language to answer in.
var languageInstructions = map[types.Language]string{
	types.LanguageSpanish:    "en español",
	types.LanguageEnglish:    "in English",
	types.LanguagePortuguese: "em português",
	types.LanguageFrench:     "en français",
}

// TemplatesFor returns the template set for a language, defaulting to
// Spanish for unknown values.
func TemplatesFor(lang types.Language) *TemplateSet {
	if set, ok := templateSets[lang]; ok {
		return set
	}
	return templateSets[types.LanguageSpanish]
}
