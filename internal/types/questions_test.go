package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestion_IsCritical(t *testing.T) {
	critical := &Question{
		Gap: &SkillGap{SkillName: "Docker", Priority: PriorityMustHave},
	}
	assert.True(t, critical.IsCritical())

	nice := &Question{
		Gap: &SkillGap{SkillName: "Redis", Priority: PriorityNiceToHave},
	}
	assert.False(t, nice.IsCritical())

	noGap := &Question{Text: "Anything else?"}
	assert.False(t, noGap.IsCritical())
}

func TestQuestionGroup_AddQuestion(t *testing.T) {
	group := &QuestionGroup{Category: QuestionTechnical}

	group.AddQuestion(&Question{Text: "Q1"})
	group.AddQuestion(&Question{Text: "Q2"})

	assert.Len(t, group.Questions, 2)
}

func TestQuestionGroup_PriorityScore(t *testing.T) {
	group := &QuestionGroup{
		Questions: []*Question{
			{Priority: PriorityMustHave},
			{Priority: PriorityMustHave},
			{Priority: PriorityNiceToHave},
			{Priority: PriorityPreferred},
		},
	}

	// 10 per must-have, 5 for everything else.
	assert.Equal(t, 30, group.PriorityScore())
}

func TestQuestionGroup_EmptyScore(t *testing.T) {
	assert.Zero(t, (&QuestionGroup{}).PriorityScore())
}
