// Package prompts holds every localized user-facing sentence the service
// produces. Messages are langchaingo prompt templates so variable
// substitution is checked once at startup.
package prompts

import (
	"fmt"
	"slices"
	"strings"

	lcprompts "github.com/tmc/langchaingo/prompts"

	"github.com/nens2012/life-aid-nexus/internal/models"
)

type MessageID string

const (
	MsgDisclaimer         MessageID = "disclaimer"
	MsgEmergency          MessageID = "emergency"
	MsgFallback           MessageID = "fallback"
	MsgError              MessageID = "error"
	MsgAskProfile         MessageID = "ask_profile"
	MsgSummarySymptoms    MessageID = "summary_symptoms"
	MsgSummaryMedical     MessageID = "summary_medical"
	MsgSummaryMeal        MessageID = "summary_meal"
	MsgSummaryMealOne     MessageID = "summary_meal_one"
	MsgSummaryWorkout     MessageID = "summary_workout"
	MsgSummaryBarcode     MessageID = "summary_barcode"
	MsgSummaryAppointment MessageID = "summary_appointment"
	MsgSummaryTracking    MessageID = "summary_tracking"
	MsgTitleMedical       MessageID = "title_medical"
	MsgDescMedical        MessageID = "desc_medical"
	MsgTitleMealLowCarb   MessageID = "title_meal_low_carb"
	MsgDescMealLowCarb    MessageID = "desc_meal_low_carb"
	MsgTitleMealBreakfast MessageID = "title_meal_breakfast"
	MsgDescMealBreakfast  MessageID = "desc_meal_breakfast"
	MsgTitleMealGeneral   MessageID = "title_meal_general"
	MsgDescMealGeneral    MessageID = "desc_meal_general"
	MsgTitleWorkout       MessageID = "title_workout"
	MsgDescWorkout        MessageID = "desc_workout"
	MsgTitleWorkoutAM     MessageID = "title_workout_morning"
	MsgDescWorkoutAM      MessageID = "desc_workout_morning"
	MsgTitleBarcode       MessageID = "title_barcode"
	MsgDescBarcode        MessageID = "desc_barcode"
	MsgTitleAppointment   MessageID = "title_appointment"
	MsgDescAppointment    MessageID = "desc_appointment"
	MsgTitleTracking      MessageID = "title_tracking"
	MsgDescTracking       MessageID = "desc_tracking"
)

type ListID string

const (
	ListEmergencyActions ListID = "emergency_actions"
	ListSymptomNextSteps ListID = "symptom_next_steps"
	ListSymptomFollowUps ListID = "symptom_suggestions"
)

const (
	listNextStepsPrefix   = "next_steps."
	listSuggestionsPrefix = "suggestions."
)

// NextStepsFor names the next-step list contributed by a component type.
func NextStepsFor(t models.ComponentType) ListID { return ListID(listNextStepsPrefix + string(t)) }

// SuggestionsFor names the follow-up suggestion list for a component type.
func SuggestionsFor(t models.ComponentType) ListID { return ListID(listSuggestionsPrefix + string(t)) }

// Message is one localized template and the variables it consumes.
type Message struct {
	Vars []string
	Text map[models.Language]string
}

type localized = map[models.Language]string

type localizedList = map[models.Language][]string

// Phrasebook renders localized messages and lists. It is immutable after New.
type Phrasebook struct {
	messages  map[MessageID]Message
	templates map[MessageID]map[models.Language]lcprompts.PromptTemplate
	lists     map[ListID]localizedList
}

// New compiles messages and lists and checks that every entry is present in
// every supported language and renders with its declared variables.
func New(messages map[MessageID]Message, lists map[ListID]localizedList) (*Phrasebook, error) {
	p := &Phrasebook{
		messages:  messages,
		templates: make(map[MessageID]map[models.Language]lcprompts.PromptTemplate, len(messages)),
		lists:     lists,
	}
	if _, ok := messages[MsgFallback]; !ok {
		return nil, fmt.Errorf("message %q is required", MsgFallback)
	}

	for id, msg := range messages {
		byLang := make(map[models.Language]lcprompts.PromptTemplate, len(msg.Text))
		sample := make(map[string]any, len(msg.Vars))
		for _, v := range msg.Vars {
			sample[v] = "x"
		}
		for _, lang := range models.SupportedLanguages {
			text := msg.Text[lang]
			if strings.TrimSpace(text) == "" {
				return nil, fmt.Errorf("message %q: missing %s text", id, lang)
			}
			tmpl := lcprompts.NewPromptTemplate(text, msg.Vars)
			out, err := tmpl.Format(sample)
			if err != nil {
				return nil, fmt.Errorf("message %q (%s): %w", id, lang, err)
			}
			if strings.Contains(out, "<no value>") {
				return nil, fmt.Errorf("message %q (%s) references an undeclared variable", id, lang)
			}
			byLang[lang] = tmpl
		}
		p.templates[id] = byLang
	}

	for id, list := range lists {
		want := len(list[models.DefaultLanguage])
		for _, lang := range models.SupportedLanguages {
			if len(list[lang]) == 0 {
				return nil, fmt.Errorf("list %q: missing %s entries", id, lang)
			}
			if len(list[lang]) != want {
				return nil, fmt.Errorf("list %q: %s has %d entries, %s has %d", id, lang, len(list[lang]), models.DefaultLanguage, want)
			}
		}
	}
	return p, nil
}

// Default returns the built-in phrasebook.
func Default() (*Phrasebook, error) {
	return New(builtinMessages, builtinLists)
}

// Text renders message id in lang with vars. Unknown ids render the fallback
// message; templates are verified by New so rendering does not fail in
// practice.
func (p *Phrasebook) Text(id MessageID, lang models.Language, vars map[string]any) string {
	byLang, ok := p.templates[id]
	if !ok {
		byLang = p.templates[MsgFallback]
	}
	tmpl, ok := byLang[lang]
	if !ok {
		tmpl = byLang[models.DefaultLanguage]
	}
	out, err := tmpl.Format(vars)
	if err != nil {
		return p.messages[MsgFallback].Text[models.DefaultLanguage]
	}
	return out
}

// List returns a fresh copy of list id in lang, or nil if the list is unknown.
func (p *Phrasebook) List(id ListID, lang models.Language) []string {
	list, ok := p.lists[id]
	if !ok {
		return nil
	}
	entries, ok := list[lang]
	if !ok {
		entries = list[models.DefaultLanguage]
	}
	return slices.Clone(entries)
}

// FallbackMessage is the localized "please rephrase" reply.
func (p *Phrasebook) FallbackMessage(lang models.Language) string {
	return p.Text(MsgFallback, lang, nil)
}

// ErrorMessage is the localized reply attached to failed requests.
func (p *Phrasebook) ErrorMessage(lang models.Language) string {
	return p.Text(MsgError, lang, nil)
}
