// Package questions generates ordered, language-aware follow-up questions
// from a gap analysis, prioritizing the most critical missing requirements.
package questions

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/gap-advisor/internal/llm"
	"github.com/jonathan/gap-advisor/internal/prompts"
	"github.com/jonathan/gap-advisor/internal/types"
)

// yearsPerWorkEntry is the coarse per-position estimate used when
// comparing required experience to the resume. The resume parser does not
// produce a parsed total, so the engine multiplies the entry count.
const yearsPerWorkEntry = 2

// maxNiceGapsInPrompt caps the nice-to-have gaps listed in the AI prompt.
const maxNiceGapsInPrompt = 5

// Engine generates adaptive questions from gap analysis results.
type Engine struct {
	client    llm.Client
	language  types.Language
	templates *TemplateSet
}

// NewEngine creates an Engine. The client may be nil; generation then
// always uses the template fallback.
func NewEngine(client llm.Client, language types.Language) *Engine {
	return &Engine{
		client:    client,
		language:  language,
		templates: TemplatesFor(language),
	}
}

// SetLanguage swaps the active template set. The shared per-language
// tables are never mutated.
func (e *Engine) SetLanguage(language types.Language) {
	e.language = language
	e.templates = TemplatesFor(language)
}

// Language returns the currently active question language.
func (e *Engine) Language() types.Language {
	return e.language
}

// Generate produces at most maxQuestions questions for the analysis.
// With useAI the model is asked for contextual questions first; any
// failure or empty reply falls back to the deterministic templates.
func (e *Engine) Generate(ctx context.Context, result *types.GapAnalysisResult, maxQuestions int, prioritizeCritical, useAI bool) []*types.Question {
	if result == nil || maxQuestions <= 0 {
		return nil
	}

	if useAI && e.client != nil {
		generated, err := e.generateWithAI(ctx, result, maxQuestions)
		if err != nil {
			log.Printf("Warning: AI question generation failed, using templates: %v", err)
		} else if len(generated) > 0 {
			if len(generated) > maxQuestions {
				generated = generated[:maxQuestions]
			}
			return generated
		}
	}

	return e.generateFromTemplates(result, maxQuestions, prioritizeCritical)
}

// generateFromTemplates renders one question per gap through the active
// language's per-category templates, critical gaps first when requested.
func (e *Engine) generateFromTemplates(result *types.GapAnalysisResult, maxQuestions int, prioritizeCritical bool) []*types.Question {
	gaps := result.GetAllGaps()

	if prioritizeCritical {
		sort.SliceStable(gaps, func(i, j int) bool {
			ci, cj := gaps[i].IsCritical(), gaps[j].IsCritical()
			if ci != cj {
				return ci
			}
			return gaps[i].SkillName < gaps[j].SkillName
		})
	}

	requiredYears := result.JobRequirements.ExperienceYears
	currentYears := estimateCVYears(result.CVData)

	var generated []*types.Question
	for i := range gaps {
		if len(generated) >= maxQuestions {
			break
		}
		gap := gaps[i]
		category := InferCategory(&gap)
		text := e.templates.Render(e.templates.ForCategory(category), gap.SkillName, requiredYears, currentYears)
		generated = append(generated, &types.Question{
			Text:     text,
			Gap:      &gap,
			Category: category,
			Priority: gap.Priority,
		})
	}

	if result.ExperienceGap > 0 && len(generated) < maxQuestions {
		if q := e.experienceQuestion(result); q != nil {
			generated = append(generated, q)
		}
	}

	if len(generated) > maxQuestions {
		generated = generated[:maxQuestions]
	}
	return generated
}

// experienceQuestion synthesizes a question about the experience shortfall.
func (e *Engine) experienceQuestion(result *types.GapAnalysisResult) *types.Question {
	if result.ExperienceGap <= 0 {
		return nil
	}

	requiredYears := result.JobRequirements.ExperienceYears
	currentYears := estimateCVYears(result.CVData)
	text := e.templates.Render(e.templates.Experience, "", requiredYears, currentYears)

	expGap := &types.SkillGap{
		SkillName: fmt.Sprintf("%d years experience", requiredYears),
		Priority:  types.PriorityMustHave,
		Context:   "Required professional experience",
		FoundInCV: false,
	}

	return &types.Question{
		Text:     text,
		Gap:      expGap,
		Category: types.QuestionExperience,
		Priority: types.PriorityMustHave,
	}
}

// generateWithAI builds a single prompt from the gap, CV, and job
// summaries and parses the numbered reply.
func (e *Engine) generateWithAI(ctx context.Context, result *types.GapAnalysisResult, maxQuestions int) ([]*types.Question, error) {
	template := prompts.MustGet("questions.json", "adaptive-questions")
	prompt := prompts.Format(template, map[string]string{
		"GapsSummary":  gapsSummary(result),
		"CVSummary":    cvSummary(result.CVData),
		"JobSummary":   jobSummary(result.JobRequirements),
		"MaxQuestions": strconv.Itoa(maxQuestions),
		"Language":     languageInstructions[e.language],
	})

	responseText, err := e.client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, err
	}

	return e.parseAIQuestions(responseText, result), nil
}

// parseAIQuestions assigns the Nth numbered line of the reply to the Nth
// entry of the combined gap list. Known defect kept for compatibility:
// the coupling is purely positional, so a model returning a different
// number of lines than gaps silently misattributes questions to gaps.
func (e *Engine) parseAIQuestions(responseText string, result *types.GapAnalysisResult) []*types.Question {
	gaps := result.GetAllGaps()

	var generated []*types.Question
	gapIndex := 0
	for _, line := range strings.Split(responseText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || gapIndex >= len(gaps) {
			continue
		}
		first := line[0]
		if !(first >= '0' && first <= '9') && first != '-' {
			continue
		}

		text := line
		if idx := strings.Index(text, "."); idx >= 0 {
			text = text[idx+1:]
		}
		text = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(text), "-"))
		if text == "" {
			continue
		}

		gap := gaps[gapIndex]
		category := InferCategory(&gap)
		generated = append(generated, &types.Question{
			Text:     text,
			Gap:      &gap,
			Category: category,
			Priority: gap.Priority,
		})
		gapIndex++
	}

	return generated
}

// gapsSummary renders the identified gaps for the AI prompt.
func gapsSummary(result *types.GapAnalysisResult) string {
	var lines []string

	allGaps := result.GetAllGaps()
	var critical, nice []types.SkillGap
	for _, g := range allGaps {
		if g.IsCritical() {
			critical = append(critical, g)
		} else {
			nice = append(nice, g)
		}
	}

	if len(critical) > 0 {
		lines = append(lines, "**Critical gaps (must-have):**")
		for i := range critical {
			lines = append(lines, fmt.Sprintf("  - %s (%s)", critical[i].SkillName, InferCategory(&critical[i])))
		}
	}

	if len(nice) > 0 {
		if len(nice) > maxNiceGapsInPrompt {
			nice = nice[:maxNiceGapsInPrompt]
		}
		lines = append(lines, "", "**Desirable gaps (nice-to-have):**")
		for i := range nice {
			lines = append(lines, fmt.Sprintf("  - %s (%s)", nice[i].SkillName, InferCategory(&nice[i])))
		}
	}

	if result.ExperienceGap > 0 {
		lines = append(lines, "", fmt.Sprintf("**Experience gap:** %d years missing", result.ExperienceGap))
	}

	if len(lines) == 0 {
		return "No significant gaps"
	}
	return strings.Join(lines, "\n")
}

// cvSummary renders a short resume summary for the AI prompt.
func cvSummary(cvData *types.CVData) string {
	if cvData == nil {
		return "Basic CV"
	}

	var lines []string
	if cvData.WorkEntries > 0 {
		lines = append(lines, fmt.Sprintf("**Work experience:** %d positions", cvData.WorkEntries))
	}
	if len(cvData.Sections) > 0 {
		names := make([]string, 0, len(cvData.Sections))
		for name := range cvData.Sections {
			names = append(names, name)
		}
		sort.Strings(names)
		lines = append(lines, fmt.Sprintf("**Sections:** %s", strings.Join(names, ", ")))
	}

	if len(lines) == 0 {
		return "Basic CV"
	}
	return strings.Join(lines, "\n")
}

// jobSummary renders a short requirement summary for the AI prompt.
func jobSummary(requirements *types.JobRequirements) string {
	if requirements == nil {
		return "Basic requirements"
	}

	var lines []string

	var musts []string
	for _, s := range requirements.TechnicalSkills {
		if s.Priority == types.PriorityMustHave {
			musts = append(musts, s.Name)
		}
	}
	if len(musts) > 5 {
		musts = musts[:5]
	}
	if len(musts) > 0 {
		lines = append(lines, fmt.Sprintf("**Must-have:** %s", strings.Join(musts, ", ")))
	}

	if requirements.ExperienceYears > 0 {
		lines = append(lines, fmt.Sprintf("**Years of experience:** %d", requirements.ExperienceYears))
	}

	if len(requirements.Languages) > 0 {
		names := make([]string, len(requirements.Languages))
		for i, lang := range requirements.Languages {
			names[i] = lang.Name
		}
		lines = append(lines, fmt.Sprintf("**Languages:** %s", strings.Join(names, ", ")))
	}

	if len(lines) == 0 {
		return "Basic requirements"
	}
	return strings.Join(lines, "\n")
}

// estimateCVYears estimates total years of experience from the resume
// as work entries times a flat per-position average.
func estimateCVYears(cvData *types.CVData) int {
	if cvData == nil {
		return 0
	}
	return cvData.WorkEntries * yearsPerWorkEntry
}
