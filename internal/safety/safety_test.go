package safety

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nens2012/life-aid-nexus/internal/extract"
	"github.com/nens2012/life-aid-nexus/internal/models"
)

func classify(text string) Verdict {
	return Classify(text, extract.Extract(text))
}

func TestClassify_EmergencyPhrasesInEveryLanguage(t *testing.T) {
	for _, text := range []string{
		"severe chest pain and can't breathe",
		"I think I'm having a heart attack",
		"my friend is unconscious",
		"I want to kill myself",
		"सीने में दर्द हो रहा है",
		"सांस नहीं आ रही",
		"છાતીમાં દુખાવો થાય છે",
		"શ્વાસ લેવામાં તકલીફ",
		"fever and a rash all over",
		"headache with blurred vision",
	} {
		t.Run(text, func(t *testing.T) {
			v := classify(text)
			assert.Equal(t, models.SafetyUrgent, v.Level)
			assert.NotEmpty(t, v.Reasons)
		})
	}
}

func TestClassify_UrgentIsNeverDowngraded(t *testing.T) {
	v := classify("mild headache, a little cough, and chest pain")
	assert.Equal(t, models.SafetyUrgent, v.Level)
	assert.Contains(t, v.Reasons, "symptom:chest_pain")
}

func TestClassify_Caution(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		facts models.ExtractedFacts
	}{
		{name: "phrase", text: "my cough is getting worse"},
		{name: "hindi phrase", text: "तेज बुखार है"},
		{name: "pregnancy history", text: "", facts: models.ExtractedFacts{History: []models.HistoryID{models.HistoryPregnancy}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facts := tt.facts
			if tt.text != "" {
				facts = extract.Extract(tt.text)
			}
			assert.Equal(t, models.SafetyCaution, Classify(tt.text, facts).Level)
		})
	}
}

func TestClassify_Safe(t *testing.T) {
	for _, text := range []string{"", "hello there", "I have a mild headache", "suggest a healthy lunch"} {
		v := classify(text)
		assert.Equal(t, models.SafetySafe, v.Level, text)
		assert.Empty(t, v.Reasons)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	text := "severe chest pain and can't breathe"
	assert.Equal(t, classify(text), classify(text))
}

func TestContacts(t *testing.T) {
	assert.Equal(t, "911", PrimaryNumber(models.LangEnglish))
	assert.Equal(t, "102", PrimaryNumber(models.LangHindi))
	assert.Equal(t, "108", PrimaryNumber(models.LangGujarati))
	assert.Equal(t, "911", PrimaryNumber(models.Language("fr")))

	c := Contacts(models.LangEnglish)
	c[0].Number = "000"
	assert.Equal(t, "911", PrimaryNumber(models.LangEnglish))
}

func TestNew_RejectsMissingLanguage(t *testing.T) {
	_, err := New(&Rules{
		UrgentPhrases:  map[models.Language][]string{models.LangEnglish: {"x"}},
		CautionPhrases: map[models.Language][]string{models.LangEnglish: {"y"}},
	})
	require.Error(t, err)
}
