package assembler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nens2012/life-aid-nexus/internal/catalog"
	"github.com/nens2012/life-aid-nexus/internal/models"
	"github.com/nens2012/life-aid-nexus/internal/prompts"
	"github.com/nens2012/life-aid-nexus/internal/rules"
	"github.com/nens2012/life-aid-nexus/internal/safety"
)

type fixture struct {
	asm   *Assembler
	table *rules.Table
}

func newFixture(t *testing.T, c *catalog.Catalog) fixture {
	t.Helper()
	phrases, err := prompts.Default()
	require.NoError(t, err)
	table, err := rules.DefaultTable()
	require.NoError(t, err)
	return fixture{asm: New(phrases, c), table: table}
}

func (f fixture) assemble(lang models.Language, facts models.ExtractedFacts, v safety.Verdict) *models.StructuredResponse {
	return f.asm.Assemble(Input{Language: lang, Facts: facts, Verdict: v, Rule: f.table.Match(facts)})
}

func intPtr(n int) *int { return &n }

func TestAssemble_Emergency(t *testing.T) {
	fx := newFixture(t, catalog.Default())
	facts := models.ExtractedFacts{
		Gender:   models.GenderUnknown,
		Symptoms: []models.SymptomID{models.SymptomChestPain, models.SymptomCough, models.SymptomFever},
		Intents:  []models.IntentID{models.IntentNutrition},
	}
	verdict := safety.Verdict{Level: models.SafetyUrgent, Reasons: []string{"symptom:chest_pain"}}

	for _, lang := range models.SupportedLanguages {
		t.Run(string(lang), func(t *testing.T) {
			resp := fx.assemble(lang, facts, verdict)

			assert.Equal(t, models.ResponseEmergency, resp.Intent)
			assert.Equal(t, models.SafetyUrgent, resp.SafetyLevel)
			assert.Empty(t, resp.Components)
			assert.Empty(t, resp.Conditions)
			assert.Empty(t, resp.Advice)
			assert.NotEmpty(t, resp.NextSteps)
			assert.NotEmpty(t, resp.Disclaimer)
			require.NotNil(t, resp.Emergency)
			assert.Equal(t, safety.Contacts(lang), resp.Emergency.Contacts)
			assert.Contains(t, resp.Emergency.Message, safety.PrimaryNumber(lang))
			assert.Equal(t, []string{"symptom:chest_pain"}, resp.Emergency.Reasons)
		})
	}
}

func TestAssemble_SingleIntent(t *testing.T) {
	fx := newFixture(t, catalog.Default())
	facts := models.ExtractedFacts{
		Gender:   models.GenderUnknown,
		Symptoms: []models.SymptomID{models.SymptomCough, models.SymptomFever},
	}

	resp := fx.assemble(models.LangEnglish, facts, safety.Verdict{Level: models.SafetySafe})

	assert.Equal(t, models.ResponseSymptomAssessment, resp.Intent)
	assert.Equal(t, models.SafetyCaution, resp.SafetyLevel, "rule level raises a safe verdict")
	assert.Equal(t, "Viral Infection (Common Cold/Flu)", resp.Conditions[0])
	assert.NotEmpty(t, resp.Advice)
	assert.Contains(t, resp.Summary, "Viral Infection")
	assert.Nil(t, resp.Emergency)

	require.Len(t, resp.Components, 1)
	c := resp.Components[0]
	assert.Equal(t, models.ComponentMedicalAdvice, c.Type)
	assert.Equal(t, models.PriorityHigh, c.Priority)
	data, ok := c.Data.(models.MedicalAdviceData)
	require.True(t, ok)
	assert.Equal(t, "viral_infection", data.RuleID)
	assert.Equal(t, resp.Advice, data.Recommendations)

	assert.Contains(t, resp.Suggestions, "Share your age and gender for more personalised advice")
}

func TestAssemble_FallbackRuleSummary(t *testing.T) {
	fx := newFixture(t, catalog.Default())
	phrases, err := prompts.Default()
	require.NoError(t, err)

	for _, lang := range models.SupportedLanguages {
		t.Run(string(lang), func(t *testing.T) {
			resp := fx.assemble(lang, models.ExtractedFacts{Gender: models.GenderUnknown}, safety.Verdict{Level: models.SafetySafe})
			assert.Equal(t, phrases.FallbackMessage(lang), resp.Summary)

			tired := models.ExtractedFacts{Gender: models.GenderUnknown, Symptoms: []models.SymptomID{models.SymptomFatigue}}
			resp = fx.assemble(lang, tired, safety.Verdict{Level: models.SafetySafe})
			assert.Equal(t, phrases.Text(prompts.MsgSummaryMedical, lang, nil), resp.Summary)
		})
	}
}

func TestAssemble_SingleIntentKnownProfile(t *testing.T) {
	fx := newFixture(t, catalog.Default())
	facts := models.ExtractedFacts{
		Age:      intPtr(30),
		Gender:   models.GenderFemale,
		Symptoms: []models.SymptomID{models.SymptomInsomnia},
	}

	resp := fx.assemble(models.LangEnglish, facts, safety.Verdict{Level: models.SafetySafe})

	assert.Equal(t, models.SafetySafe, resp.SafetyLevel)
	assert.NotContains(t, resp.Suggestions, "Share your age and gender for more personalised advice")
}

func TestAssemble_CautionVerdictIsKept(t *testing.T) {
	fx := newFixture(t, catalog.Default())
	facts := models.ExtractedFacts{Gender: models.GenderUnknown}

	resp := fx.assemble(models.LangHindi, facts, safety.Verdict{Level: models.SafetyCaution})

	assert.Equal(t, models.SafetyCaution, resp.SafetyLevel)
	assert.Equal(t, rules.FallbackRuleID, resp.Components[0].Data.(models.MedicalAdviceData).RuleID)
}

func TestAssemble_MealAndWorkout(t *testing.T) {
	fx := newFixture(t, catalog.Default())
	facts := models.ExtractedFacts{
		Gender:          models.GenderUnknown,
		Intents:         []models.IntentID{models.IntentFitness, models.IntentNutrition},
		Modifiers:       []models.Modifier{models.ModifierLowCarb},
		DurationMinutes: intPtr(20),
	}

	resp := fx.assemble(models.LangEnglish, facts, safety.Verdict{Level: models.SafetySafe})

	assert.Equal(t, models.ResponseMultiIntent, resp.Intent)
	assert.Equal(t, MultiIntentConfidence, resp.Confidence)
	assert.Equal(t,
		[]models.ComponentType{models.ComponentMealSuggestion, models.ComponentWorkoutPlan},
		resp.ComponentTypes())
	assert.Contains(t, resp.Summary, "meal")
	assert.Contains(t, resp.Summary, "workout")
	assert.Empty(t, resp.Conditions)

	meal := resp.Components[0].Data.(models.MealSuggestionData)
	assert.Equal(t, string(catalog.MealLowCarb), meal.Variant)
	assert.Equal(t, "Low-Carb Lunch Options", resp.Components[0].Title)

	workout := resp.Components[1].Data.(models.WorkoutPlanData)
	assert.Equal(t, 20, workout.DurationMinutes)
	assert.Equal(t, 160, workout.EstimatedCalories)
	assert.Equal(t, "20-Minute Home Workout", resp.Components[1].Title)
}

func TestAssemble_SingleMealSummary(t *testing.T) {
	fx := newFixture(t, catalog.Default())
	meals, ok := catalog.Default().MealsFor(catalog.MealGeneral)
	require.True(t, ok)
	require.Len(t, meals, 1)

	facts := models.ExtractedFacts{Gender: models.GenderUnknown, Intents: []models.IntentID{models.IntentNutrition}}
	resp := fx.assemble(models.LangEnglish, facts, safety.Verdict{Level: models.SafetySafe})

	assert.Equal(t, "I've suggested a healthy meal option.", resp.Summary)
}

func TestAssemble_MultiIntentDeduplicates(t *testing.T) {
	fx := newFixture(t, catalog.Default())
	facts := models.ExtractedFacts{
		Gender: models.GenderUnknown,
		Intents: []models.IntentID{
			models.IntentBarcode, models.IntentFitness, models.IntentNutrition, models.IntentTracking,
		},
	}

	resp := fx.assemble(models.LangEnglish, facts, safety.Verdict{Level: models.SafetySafe})

	assert.Equal(t, []models.ComponentType{
		models.ComponentMealSuggestion,
		models.ComponentBarcodeScan,
		models.ComponentWorkoutPlan,
		models.ComponentWellnessTracking,
	}, resp.ComponentTypes())

	count := func(list []string, s string) int {
		n := 0
		for _, v := range list {
			if v == s {
				n++
			}
		}
		return n
	}
	assert.Equal(t, 1, count(resp.Suggestions, "Find alternatives"))
	assert.Equal(t, 1, count(resp.NextSteps, "Track your progress"))
	assert.Equal(t, "Choose one of the suggested meals", resp.NextSteps[0])
}

func TestAssemble_MultiIntentWithSymptoms(t *testing.T) {
	fx := newFixture(t, catalog.Default())
	facts := models.ExtractedFacts{
		Gender:   models.GenderUnknown,
		Symptoms: []models.SymptomID{models.SymptomFever},
		Intents:  []models.IntentID{models.IntentScheduling},
	}

	resp := fx.assemble(models.LangGujarati, facts, safety.Verdict{Level: models.SafetySafe})

	assert.Equal(t, []models.ComponentType{
		models.ComponentMedicalAdvice,
		models.ComponentAppointmentBooking,
	}, resp.ComponentTypes())
	assert.Equal(t, models.SafetyCaution, resp.SafetyLevel)
	assert.NotEmpty(t, resp.Conditions)
	assert.Len(t, strings.Split(resp.Summary, ". "), 2)
}

func TestAssemble_MissingCatalogDataOmitsComponent(t *testing.T) {
	c := catalog.Default()
	c.Meals = nil
	fx := newFixture(t, c)
	facts := models.ExtractedFacts{
		Gender:  models.GenderUnknown,
		Intents: []models.IntentID{models.IntentFitness, models.IntentNutrition},
	}

	resp := fx.assemble(models.LangEnglish, facts, safety.Verdict{Level: models.SafetySafe})

	assert.Equal(t, []models.ComponentType{models.ComponentWorkoutPlan}, resp.ComponentTypes())
	assert.NotContains(t, resp.Summary, "meal")
}

func TestAssemble_EmptyCatalogFallsBackToSingleIntent(t *testing.T) {
	fx := newFixture(t, &catalog.Catalog{})
	facts := models.ExtractedFacts{
		Gender:  models.GenderUnknown,
		Intents: []models.IntentID{models.IntentNutrition},
	}

	resp := fx.assemble(models.LangEnglish, facts, safety.Verdict{Level: models.SafetySafe})

	assert.Equal(t, models.ResponseSymptomAssessment, resp.Intent)
	assert.Equal(t, []models.ComponentType{models.ComponentMedicalAdvice}, resp.ComponentTypes())
}

func TestMealVariantPrecedence(t *testing.T) {
	both := models.ExtractedFacts{Modifiers: []models.Modifier{models.ModifierBreakfast, models.ModifierLowCarb}}
	assert.Equal(t, catalog.MealBreakfast, mealVariant(both))
	assert.Equal(t, catalog.MealGeneral, mealVariant(models.ExtractedFacts{}))
}

func TestWorkoutMinutes(t *testing.T) {
	tests := []struct {
		name string
		in   *int
		want int
	}{
		{"default", nil, DefaultWorkoutMinutes},
		{"in range", intPtr(30), 30},
		{"too short", intPtr(1), MinWorkoutMinutes},
		{"too long", intPtr(600), MaxWorkoutMinutes},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WorkoutMinutes(models.ExtractedFacts{DurationMinutes: tt.in}))
		})
	}
}
