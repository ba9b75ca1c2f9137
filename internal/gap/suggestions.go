package gap

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/gap-advisor/internal/llm"
	"github.com/jonathan/gap-advisor/internal/prompts"
	"github.com/jonathan/gap-advisor/internal/types"
)

// maxSeedQuestions caps both the gaps sent to the model and the questions
// kept from its reply.
const maxSeedQuestions = 5

// fallbackQuestionTemplate is the deterministic seed question used when the
// AI call fails or no client is configured.
const fallbackQuestionTemplate = "The posting requires %s, but I don't see it in your résumé. Do you have experience with %s? If so, briefly describe how you used it."

// suggestQuestions asks the model for 3-5 questions about the top critical
// gaps. Only a failed call falls back to the deterministic template; a
// successful reply is used as parsed, even when no question line parses.
func (r *Resolver) suggestQuestions(ctx context.Context, result *types.GapAnalysisResult) []string {
	criticalGaps := result.GetCriticalGaps()
	if len(criticalGaps) == 0 {
		return nil
	}
	if len(criticalGaps) > maxSeedQuestions {
		criticalGaps = criticalGaps[:maxSeedQuestions]
	}

	if r.client != nil {
		questions, err := r.seedWithAI(ctx, criticalGaps)
		if err == nil {
			return questions
		}
		log.Printf("Warning: AI question seeding failed, using templates: %v", err)
	}

	return fallbackQuestions(criticalGaps)
}

func (r *Resolver) seedWithAI(ctx context.Context, criticalGaps []types.SkillGap) ([]string, error) {
	names := make([]string, len(criticalGaps))
	for i, g := range criticalGaps {
		names[i] = g.SkillName
	}

	template := prompts.MustGet("questions.json", "seed-gap-questions")
	prompt := prompts.Format(template, map[string]string{
		"GapNames": strings.Join(names, ", "),
	})

	responseText, err := r.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, err
	}

	questions := parseQuestionLines(responseText)
	if len(questions) > maxSeedQuestions {
		questions = questions[:maxSeedQuestions]
	}
	return questions, nil
}

// parseQuestionLines pulls questions out of a numbered or bulleted list.
func parseQuestionLines(text string) []string {
	var questions []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		first := line[0]
		if !(first >= '0' && first <= '9') && first != '-' {
			continue
		}
		question := line
		if idx := strings.Index(question, "."); idx >= 0 {
			question = question[idx+1:]
		}
		question = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(question), "-"))
		if question != "" {
			questions = append(questions, question)
		}
	}
	return questions
}

// fallbackQuestions renders the deterministic template for each gap.
func fallbackQuestions(criticalGaps []types.SkillGap) []string {
	questions := make([]string, 0, len(criticalGaps))
	for _, g := range criticalGaps {
		questions = append(questions, fmt.Sprintf(fallbackQuestionTemplate, g.SkillName, g.SkillName))
	}
	return questions
}

// Recommendations buckets advice derived from the analysis: one entry per
// unmet must-have (capped at 3) plus a count summary, an experience message
// when a shortfall exists, and a count summary of non-critical gaps.
func (r *Resolver) Recommendations(result *types.GapAnalysisResult) types.Recommendations {
	var recs types.Recommendations

	criticalGaps := result.GetCriticalGaps()
	if len(criticalGaps) > 0 {
		recs.Critical = append(recs.Critical,
			fmt.Sprintf("There are %d critical skills missing that are must-haves for this posting.", len(criticalGaps)))
		capped := criticalGaps
		if len(capped) > 3 {
			capped = capped[:3]
		}
		for _, g := range capped {
			recs.Critical = append(recs.Critical,
				fmt.Sprintf("Highlight experience with %s if you have it.", g.SkillName))
		}
	}

	if result.ExperienceGap > 0 {
		recs.Important = append(recs.Important,
			fmt.Sprintf("The posting requires %d years of experience. Consider highlighting all of your relevant experience.",
				result.JobRequirements.ExperienceYears))
	}

	nonCritical := 0
	for _, g := range result.GetAllGaps() {
		if !g.IsCritical() {
			nonCritical++
		}
	}
	if nonCritical > 0 {
		recs.NiceToHave = append(recs.NiceToHave,
			fmt.Sprintf("There are %d desirable skills you could mention if you have them.", nonCritical))
	}

	return recs
}
