package questions

import (
	"sort"

	"github.com/jonathan/gap-advisor/internal/types"
)

// Group clusters questions by category, attaches the appropriate intro
// text, and sorts groups by descending priority score.
func (e *Engine) Group(generated []*types.Question) []*types.QuestionGroup {
	byCategory := make(map[types.QuestionCategory]*types.QuestionGroup)
	var groups []*types.QuestionGroup

	for _, q := range generated {
		group, ok := byCategory[q.Category]
		if !ok {
			group = &types.QuestionGroup{
				Category:  q.Category,
				IntroText: e.categoryIntro(q.Category, q.Priority),
			}
			byCategory[q.Category] = group
			groups = append(groups, group)
		}
		group.AddQuestion(q)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].PriorityScore() > groups[j].PriorityScore()
	})

	return groups
}

// categoryIntro picks the intro string for a group based on the first
// question's priority: must-have gaps get the critical intro regardless of
// category, experience groups their own, everything else the nice-to-have
// intro.
func (e *Engine) categoryIntro(category types.QuestionCategory, priority types.RequirementPriority) string {
	switch {
	case priority == types.PriorityMustHave:
		return e.templates.IntroCritical
	case category == types.QuestionExperience:
		return e.templates.IntroExperience
	default:
		return e.templates.IntroNice
	}
}
