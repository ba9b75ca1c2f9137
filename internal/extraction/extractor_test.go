package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/gap-advisor/internal/llm"
	"github.com/jonathan/gap-advisor/internal/types"
)

const aiResponseOK = `{
	"technical_skills": [
		{"name": "Python", "priority": "must_have", "context": "5+ years of Python"},
		{"name": "Terraform", "priority": "nice_to_have", "context": ""}
	],
	"soft_skills": [
		{"name": "Leadership", "priority": "must_have", "context": "team lead role"}
	],
	"languages": [
		{"name": "English", "priority": "must_have", "context": ""}
	],
	"certifications": [],
	"experience_years": 5,
	"education_level": "Bachelor's degree",
	"responsibilities": ["Design services", "Review code"],
	"benefits": ["Remote work"]
}`

func staticClient(response string) llm.Client {
	return llm.ClientFunc(func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
		return response, nil
	})
}

func failingClient(err error) llm.Client {
	return llm.ClientFunc(func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
		return "", err
	})
}

func TestExtract_EmptyInput(t *testing.T) {
	e := NewExtractor(nil)

	_, err := e.Extract(context.Background(), "   \n\t ", false)

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
}

func TestExtract_HeuristicWhenAIDisabled(t *testing.T) {
	// The client must never be called when useAI is false.
	client := llm.ClientFunc(func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
		t.Fatal("client should not be called")
		return "", nil
	})
	e := NewExtractor(client)

	reqs, err := e.Extract(context.Background(), "Python developer, 3 years of experience.", false)
	require.NoError(t, err)

	require.Len(t, reqs.TechnicalSkills, 1)
	assert.Equal(t, "Python", reqs.TechnicalSkills[0].Name)
	assert.Equal(t, 3, reqs.ExperienceYears)
}

func TestExtract_HeuristicWhenClientNil(t *testing.T) {
	e := NewExtractor(nil)

	reqs, err := e.Extract(context.Background(), "Docker and Kubernetes wanted.", true)
	require.NoError(t, err)

	names := make([]string, 0, len(reqs.TechnicalSkills))
	for _, s := range reqs.TechnicalSkills {
		names = append(names, s.Name)
	}
	assert.ElementsMatch(t, []string{"Docker", "Kubernetes"}, names)
}

func TestExtract_AISuccess(t *testing.T) {
	e := NewExtractor(staticClient(aiResponseOK))

	reqs, err := e.Extract(context.Background(), "some job posting", true)
	require.NoError(t, err)

	require.Len(t, reqs.TechnicalSkills, 2)
	assert.Equal(t, "Python", reqs.TechnicalSkills[0].Name)
	assert.Equal(t, types.PriorityMustHave, reqs.TechnicalSkills[0].Priority)
	assert.Equal(t, "5+ years of Python", reqs.TechnicalSkills[0].Context)
	assert.Equal(t, types.PriorityNiceToHave, reqs.TechnicalSkills[1].Priority)

	require.Len(t, reqs.SoftSkills, 1)
	assert.Equal(t, types.CategorySoft, reqs.SoftSkills[0].Category)
	require.Len(t, reqs.Languages, 1)
	assert.Equal(t, types.CategoryLanguage, reqs.Languages[0].Category)
	assert.Empty(t, reqs.Certifications)

	assert.Equal(t, 5, reqs.ExperienceYears)
	assert.Equal(t, "Bachelor's degree", reqs.EducationLevel)
	assert.Len(t, reqs.Responsibilities, 2)
	assert.Len(t, reqs.Benefits, 1)
}

func TestExtract_AISuccessWithMarkdownFences(t *testing.T) {
	e := NewExtractor(staticClient("```json\n" + aiResponseOK + "\n```"))

	reqs, err := e.Extract(context.Background(), "some job posting", true)
	require.NoError(t, err)
	assert.Len(t, reqs.TechnicalSkills, 2)
}

func TestExtract_MissingPriorityDefaultsToNiceToHave(t *testing.T) {
	response := `{"technical_skills": [{"name": "Rust"}]}`
	e := NewExtractor(staticClient(response))

	reqs, err := e.Extract(context.Background(), "some job posting", true)
	require.NoError(t, err)

	require.Len(t, reqs.TechnicalSkills, 1)
	assert.Equal(t, types.PriorityNiceToHave, reqs.TechnicalSkills[0].Priority)
}

func TestExtract_FallsBackOnClientError(t *testing.T) {
	e := NewExtractor(failingClient(errors.New("quota exceeded")))

	reqs, err := e.Extract(context.Background(), "Python developer wanted.", true)
	require.NoError(t, err)

	// Heuristic result, not the AI one.
	require.Len(t, reqs.TechnicalSkills, 1)
	assert.Equal(t, "Python", reqs.TechnicalSkills[0].Name)
}

func TestExtract_FallsBackOnInvalidJSON(t *testing.T) {
	e := NewExtractor(staticClient("I'd be happy to help with that!"))

	reqs, err := e.Extract(context.Background(), "Docker administrator wanted.", true)
	require.NoError(t, err)

	require.Len(t, reqs.TechnicalSkills, 1)
	assert.Equal(t, "Docker", reqs.TechnicalSkills[0].Name)
}

func TestExtract_FallsBackOnSchemaViolation(t *testing.T) {
	// Skill record without a name violates the schema.
	response := `{"technical_skills": [{"priority": "must_have"}]}`
	e := NewExtractor(staticClient(response))

	reqs, err := e.Extract(context.Background(), "Docker administrator wanted.", true)
	require.NoError(t, err)

	require.Len(t, reqs.TechnicalSkills, 1)
	assert.Equal(t, "Docker", reqs.TechnicalSkills[0].Name)
}

func TestExtract_FallsBackOnInvalidPriorityValue(t *testing.T) {
	response := `{"technical_skills": [{"name": "Python", "priority": "critical"}]}`
	e := NewExtractor(staticClient(response))

	reqs, err := e.Extract(context.Background(), "Kubernetes operator wanted.", true)
	require.NoError(t, err)

	require.Len(t, reqs.TechnicalSkills, 1)
	assert.Equal(t, "Kubernetes", reqs.TechnicalSkills[0].Name)
}

func TestValidateAgainstSchema_AcceptsNullFields(t *testing.T) {
	err := validateAgainstSchema(`{"technical_skills": null, "experience_years": null, "education_level": null}`)
	assert.NoError(t, err)
}

func TestValidateAgainstSchema_RejectsNegativeExperience(t *testing.T) {
	err := validateAgainstSchema(`{"experience_years": -2}`)

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
}

func TestBuildRequirements_MalformedRecordInvalidatesPayload(t *testing.T) {
	// A blank name passes JSON parsing but fails record validation; the
	// whole payload is rejected rather than half-converted.
	e := NewExtractor(nil)
	wire := &aiRequirements{
		TechnicalSkills: []aiSkill{
			{Name: "Python", Priority: "must_have"},
			{Name: ""},
		},
	}

	_, err := e.buildRequirements(wire)

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Contains(t, extractionErr.Error(), "malformed skill record")
}
