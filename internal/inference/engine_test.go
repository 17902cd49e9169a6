package inference

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nens2012/life-aid-nexus/internal/models"
	"github.com/nens2012/life-aid-nexus/internal/rules"
	"github.com/nens2012/life-aid-nexus/internal/safety"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New()
	require.NoError(t, err)
	return e
}

func intPtr(n int) *int { return &n }

func TestAssess_EndToEndEnglish(t *testing.T) {
	e := newEngine(t)

	res := e.Assess(models.RawInput{
		Text:     "I'm a 28-year-old male with fever and cough for 3 days",
		Language: models.LangEnglish,
	})

	require.NotNil(t, res.Facts.Age)
	assert.Equal(t, 28, *res.Facts.Age)
	assert.Equal(t, models.GenderMale, res.Facts.Gender)
	assert.Equal(t, "viral_infection", res.RuleID)

	resp := res.Response
	assert.Contains(t, resp.Conditions, "Viral Infection (Common Cold/Flu)")
	assert.Equal(t, models.SafetyCaution, resp.SafetyLevel)
	assert.NotEmpty(t, resp.Advice)
	assert.NotEmpty(t, resp.Disclaimer)
}

func TestAssess_EmergencyInEveryLanguage(t *testing.T) {
	e := newEngine(t)
	inputs := map[models.Language]string{
		models.LangEnglish:  "severe chest pain and can't breathe",
		models.LangHindi:    "सीने में दर्द और सांस नहीं आ रही",
		models.LangGujarati: "છાતીમાં દુખાવો અને શ્વાસ લેવામાં તકલીફ",
	}

	for lang, text := range inputs {
		t.Run(string(lang), func(t *testing.T) {
			res := e.Assess(models.RawInput{Text: text, Language: lang})

			assert.True(t, res.Verdict.Urgent())
			assert.Empty(t, res.RuleID)
			resp := res.Response
			assert.Equal(t, models.SafetyUrgent, resp.SafetyLevel)
			assert.Empty(t, resp.Components)
			assert.Empty(t, resp.Advice)
			require.NotNil(t, resp.Emergency)
			assert.Contains(t, resp.Emergency.Message, safety.PrimaryNumber(lang))
		})
	}
}

func TestAssess_EmergencyOverridesOtherSymptoms(t *testing.T) {
	e := newEngine(t)

	res := e.Assess(models.RawInput{
		Text:     "fever, cough, headache and I fainted, also want a lunch idea",
		Language: models.LangEnglish,
	})

	assert.Equal(t, models.ResponseEmergency, res.Response.Intent)
	assert.Empty(t, res.Response.Components)
	assert.Empty(t, res.Response.Conditions)
}

func TestAssess_NoKeywordsUsesFallback(t *testing.T) {
	e := newEngine(t)

	res := e.Assess(models.RawInput{Text: "hello there", Language: models.LangEnglish})

	assert.Equal(t, rules.FallbackRuleID, res.RuleID)
	assert.Equal(t, models.SafetySafe, res.Response.SafetyLevel)
	assert.Equal(t, models.ResponseSymptomAssessment, res.Response.Intent)
	assert.NotEmpty(t, res.Response.Advice)
}

func TestAssess_ViralInfectionInEveryLanguage(t *testing.T) {
	e := newEngine(t)
	rule, ok := e.Table().Lookup("viral_infection")
	require.True(t, ok)

	inputs := map[models.Language]string{
		models.LangEnglish:  "I have fever and cough",
		models.LangHindi:    "मुझे बुखार और खांसी है",
		models.LangGujarati: "મને તાવ અને ખાંસી છે",
	}
	for lang, text := range inputs {
		t.Run(string(lang), func(t *testing.T) {
			res := e.Assess(models.RawInput{Text: text, Language: lang})
			want := rule.Resolve(lang, res.Facts)

			assert.Equal(t, "viral_infection", res.RuleID)
			assert.Equal(t, want.Conditions, res.Response.Conditions)
			assert.Equal(t, want.Advice, res.Response.Advice)
			assert.Equal(t, lang, res.Response.Language)
		})
	}
}

func TestAssess_Idempotent(t *testing.T) {
	e := newEngine(t)
	inputs := []models.RawInput{
		{Text: "I'm a 28-year-old male with fever and cough", Language: models.LangEnglish},
		{Text: "severe chest pain", Language: models.LangHindi},
		{Text: "low carb lunch and a 10 min morning workout", Language: models.LangGujarati},
		{Text: "", Language: models.LangEnglish},
	}

	for _, in := range inputs {
		first := e.Assess(in)
		second := e.Assess(in)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Assess(%q) not idempotent (-first +second):\n%s", in.Text, diff)
		}
	}
}

func TestAssess_ElderVariant(t *testing.T) {
	e := newEngine(t)
	rule, ok := e.Table().Lookup("viral_infection")
	require.True(t, ok)

	var elder string
	for _, v := range rule.Variants {
		if v.When == rules.AgeAbove(rules.ElderAge) {
			elder = v.Advice[models.LangEnglish]
		}
	}
	require.NotEmpty(t, elder)

	tests := []struct {
		name string
		age  *int
		want bool
	}{
		{"age unset", nil, false},
		{"age 40", intPtr(40), false},
		{"age 70", intPtr(70), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.Assess(models.RawInput{Text: "fever and cough", Language: models.LangEnglish, KnownAge: tt.age})
			assert.Equal(t, tt.want, containsString(res.Response.Advice, elder))
		})
	}
}

func TestAssess_MealAndWorkout(t *testing.T) {
	e := newEngine(t)

	res := e.Assess(models.RawInput{
		Text:     "Suggest a low-carb lunch and a 20 minute workout",
		Language: models.LangEnglish,
	})

	resp := res.Response
	assert.Equal(t, models.ResponseMultiIntent, resp.Intent)
	assert.Equal(t,
		[]models.ComponentType{models.ComponentMealSuggestion, models.ComponentWorkoutPlan},
		resp.ComponentTypes())
	assert.Contains(t, resp.Summary, "meal")
	assert.Contains(t, resp.Summary, "workout")
}

func TestAssess_KnownProfileFillsGaps(t *testing.T) {
	e := newEngine(t)

	res := e.Assess(models.RawInput{
		Text:           "I feel tired",
		Language:       models.LangEnglish,
		KnownAge:       intPtr(33),
		KnownGender:    models.GenderFemale,
		MedicalHistory: []string{"Pregnant (2nd trimester)"},
	})

	require.NotNil(t, res.Facts.Age)
	assert.Equal(t, 33, *res.Facts.Age)
	assert.Equal(t, models.GenderFemale, res.Facts.Gender)
	assert.Equal(t, []models.HistoryID{models.HistoryPregnancy}, res.Facts.History)
	assert.Equal(t, models.SafetyCaution, res.Verdict.Level)
}

func TestAssess_TextBeatsKnownProfile(t *testing.T) {
	e := newEngine(t)

	res := e.Assess(models.RawInput{
		Text:        "I am a 45 year old man with a headache",
		Language:    models.LangEnglish,
		KnownAge:    intPtr(30),
		KnownGender: models.GenderFemale,
	})

	require.NotNil(t, res.Facts.Age)
	assert.Equal(t, 45, *res.Facts.Age)
	assert.Equal(t, models.GenderMale, res.Facts.Gender)
}

func TestAssess_UnknownLanguageUsesDefault(t *testing.T) {
	e := newEngine(t)

	res := e.Assess(models.RawInput{Text: "fever", Language: "fr"})

	assert.Equal(t, models.DefaultLanguage, res.Response.Language)
}

func TestNew_RejectsInvalidTables(t *testing.T) {
	_, err := New(WithRules(nil))
	assert.Error(t, err)

	broken := rules.Builtin()
	broken = broken[:len(broken)-1]
	_, err = New(WithRules(broken))
	assert.ErrorContains(t, err, "fallback")
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestAssess_UnrecognisedInputAsksToRephrase(t *testing.T) {
	e := newEngine(t)

	for _, text := range []string{"", "\xff\xfe garbage"} {
		for _, lang := range models.SupportedLanguages {
			res := e.Assess(models.RawInput{Text: text, Language: lang})

			assert.Equal(t, rules.FallbackRuleID, res.RuleID)
			assert.Equal(t, e.Phrases().FallbackMessage(lang), res.Response.Summary, "text %q lang %s", text, lang)
			assert.NotContains(t, res.Response.Summary, "General Wellness Concern")
		}
	}
}

func TestAssess_WorkoutDurationIsClamped(t *testing.T) {
	e := newEngine(t)

	res := e.Assess(models.RawInput{Text: "plan a workout for 9999 minutes", Language: models.LangEnglish})

	require.Len(t, res.Response.Components, 1)
	plan, ok := res.Response.Components[0].Data.(models.WorkoutPlanData)
	require.True(t, ok)
	assert.Equal(t, 120, plan.DurationMinutes)
	assert.Contains(t, res.Response.Summary, "120-minute")
}
