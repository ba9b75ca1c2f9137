// Package cvparse extracts structured data from plain-text resumes.
// PDF extraction is handled by an external collaborator; this package only
// deals with text that has already been pulled out of the source document.
package cvparse

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/gap-advisor/internal/types"
)

// ParseError reports a resume that cannot be parsed.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cv parse error: %s", e.Message)
}

// sectionKeywords identify common resume sections across the four
// supported languages. Detection is presence-based; the parser does not
// attempt to split the text into per-section bodies.
var sectionKeywords = map[string][]string{
	"experience": {
		"experiencia", "experience", "experiência", "expérience",
		"trabajo", "work", "trabalho", "travail",
		"empleo", "employment", "emploi",
	},
	"education": {
		"educación", "education", "educação", "éducation",
		"formación", "training", "formação", "formation",
		"estudios", "studies", "estudos", "études",
	},
	"skills": {
		"habilidades", "skills", "competências", "compétences",
		"tecnologías", "technologies", "tecnologias",
		"herramientas", "tools", "ferramentas", "outils",
	},
	"summary": {
		"resumen", "summary", "resumo", "résumé",
		"perfil", "profile", "sobre mí", "about",
		"objetivo", "objective", "objectif",
	},
}

// dateRangePattern matches employment date ranges like "2019 - 2022" or
// "2020 – present", used to estimate the number of work entries.
var dateRangePattern = regexp.MustCompile(`(?i)\b(?:19|20)\d{2}\s*[-–—]\s*(?:(?:19|20)\d{2}|present|presente|actual|current|aujourd'hui)`)

// Parser parses plain-text resumes into CVData.
type Parser struct{}

// NewParser creates a resume parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseText parses a plain-text resume. Returns a ParseError when the text
// is empty or whitespace.
func (p *Parser) ParseText(text string) (*types.CVData, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Message: "resume text is empty"}
	}

	trimmed := strings.TrimSpace(text)
	return &types.CVData{
		RawText:  trimmed,
		Sections: detectSections(trimmed),
		Metadata: types.CVMetadata{
			Format: "text",
			Length: len(text),
			Lines:  len(strings.Split(text, "\n")),
		},
		WorkEntries: countWorkEntries(trimmed),
	}, nil
}

// detectSections flags which common resume sections appear in the text.
func detectSections(text string) map[string]string {
	sections := make(map[string]string)
	textLower := strings.ToLower(text)

	for name, keywords := range sectionKeywords {
		for _, keyword := range keywords {
			if strings.Contains(textLower, keyword) {
				sections[name] = "detected"
				break
			}
		}
	}
	return sections
}

// countWorkEntries estimates how many work-experience entries the resume
// holds by counting employment date ranges.
func countWorkEntries(text string) int {
	return len(dateRangePattern.FindAllString(text, -1))
}
