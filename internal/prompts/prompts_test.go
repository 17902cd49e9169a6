package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nens2012/life-aid-nexus/internal/models"
)

func TestDefault_IsComplete(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	for _, ct := range []models.ComponentType{
		models.ComponentMedicalAdvice,
		models.ComponentMealSuggestion,
		models.ComponentWorkoutPlan,
		models.ComponentBarcodeScan,
		models.ComponentAppointmentBooking,
		models.ComponentWellnessTracking,
	} {
		for _, lang := range models.SupportedLanguages {
			assert.NotEmpty(t, p.List(NextStepsFor(ct), lang), "next steps for %s/%s", ct, lang)
			assert.NotEmpty(t, p.List(SuggestionsFor(ct), lang), "suggestions for %s/%s", ct, lang)
		}
	}
}

func TestText_RendersVariables(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	out := p.Text(MsgEmergency, models.LangHindi, map[string]any{"number": "112"})
	assert.Contains(t, out, "(112)")

	out = p.Text(MsgSummaryWorkout, models.LangEnglish, map[string]any{"minutes": 20, "calories": 160})
	assert.Equal(t, "I've created a 20-minute workout plan that burns about 160 calories.", out)
}

func TestText_UnknownFallsBack(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	assert.Equal(t, p.FallbackMessage(models.LangGujarati), p.Text("nope", models.LangGujarati, nil))
	assert.Equal(t, p.Text(MsgDisclaimer, models.LangEnglish, nil), p.Text(MsgDisclaimer, "fr", nil))
}

func TestList_ReturnsCopy(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	first := p.List(ListEmergencyActions, models.LangEnglish)
	first[0] = "changed"
	assert.NotEqual(t, "changed", p.List(ListEmergencyActions, models.LangEnglish)[0])
	assert.Nil(t, p.List("missing", models.LangEnglish))
}

func TestNew_Validation(t *testing.T) {
	full := localized{models.LangEnglish: "a", models.LangHindi: "b", models.LangGujarati: "c"}

	tests := []struct {
		name     string
		messages map[MessageID]Message
		lists    map[ListID]localizedList
		wantErr  string
	}{
		{
			name:     "fallback required",
			messages: map[MessageID]Message{MsgError: {Text: full}},
			wantErr:  "required",
		},
		{
			name: "missing language",
			messages: map[MessageID]Message{
				MsgFallback: {Text: localized{models.LangEnglish: "a", models.LangHindi: "b"}},
			},
			wantErr: "missing gu",
		},
		{
			name: "undeclared variable",
			messages: map[MessageID]Message{
				MsgFallback: {Text: localized{models.LangEnglish: "{{.who}}", models.LangHindi: "b", models.LangGujarati: "c"}},
			},
			wantErr: `message "fallback" (en)`,
		},
		{
			name:     "uneven list",
			messages: map[MessageID]Message{MsgFallback: {Text: full}},
			lists: map[ListID]localizedList{
				ListEmergencyActions: {
					models.LangEnglish:  {"a", "b"},
					models.LangHindi:    {"a"},
					models.LangGujarati: {"a", "b"},
				},
			},
			wantErr: "hi has 1 entries",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.messages, tt.lists)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
