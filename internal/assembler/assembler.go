// Package assembler turns a safety verdict, matched rule and extracted facts
// into a complete StructuredResponse. Every slice in the output is freshly
// allocated.
package assembler

import (
	"slices"
	"strings"

	"github.com/nens2012/life-aid-nexus/internal/catalog"
	"github.com/nens2012/life-aid-nexus/internal/models"
	"github.com/nens2012/life-aid-nexus/internal/prompts"
	"github.com/nens2012/life-aid-nexus/internal/rules"
	"github.com/nens2012/life-aid-nexus/internal/safety"
)

const (
	EmergencyConfidence   = 0.99
	MultiIntentConfidence = 0.95

	DefaultWorkoutMinutes = 15
	MinWorkoutMinutes     = 5
	MaxWorkoutMinutes     = 120
)

// multiIntents select the multi-intent path when any is present.
var multiIntents = []models.IntentID{
	models.IntentNutrition,
	models.IntentFitness,
	models.IntentScheduling,
	models.IntentTracking,
	models.IntentBarcode,
}

// Input is everything the assembler needs for one turn.
type Input struct {
	Language models.Language
	Facts    models.ExtractedFacts
	Verdict  safety.Verdict
	Rule     *rules.Rule
}

type Assembler struct {
	phrases *prompts.Phrasebook
	catalog *catalog.Catalog
}

func New(phrases *prompts.Phrasebook, c *catalog.Catalog) *Assembler {
	return &Assembler{phrases: phrases, catalog: c}
}

// IsMultiIntent reports whether facts ask for anything beyond symptom advice.
func IsMultiIntent(f models.ExtractedFacts) bool {
	return slices.ContainsFunc(multiIntents, f.HasIntent)
}

// Assemble picks the emergency, multi-intent or single-intent path. An urgent
// verdict always wins; a multi-intent request that yields no component
// degrades to the single-intent path.
func (a *Assembler) Assemble(in Input) *models.StructuredResponse {
	lang := in.Language
	if !lang.Valid() {
		lang = models.DefaultLanguage
	}

	if in.Verdict.Urgent() {
		return a.Emergency(lang, in.Verdict)
	}
	if IsMultiIntent(in.Facts) {
		if resp := a.multi(lang, in); resp != nil {
			return resp
		}
	}
	return a.single(lang, in)
}

// Emergency builds the urgent response: no conditions, advice or components,
// only the emergency message, immediate actions and local contacts.
func (a *Assembler) Emergency(lang models.Language, v safety.Verdict) *models.StructuredResponse {
	msg := a.phrases.Text(prompts.MsgEmergency, lang, map[string]any{"number": safety.PrimaryNumber(lang)})
	reasons := []string{}
	reasons = append(reasons, v.Reasons...)

	return &models.StructuredResponse{
		Intent:      models.ResponseEmergency,
		Language:    lang,
		Confidence:  EmergencyConfidence,
		SafetyLevel: models.SafetyUrgent,
		Conditions:  []string{},
		Advice:      []string{},
		Components:  []models.ResponseComponent{},
		Summary:     msg,
		NextSteps:   a.phrases.List(prompts.ListEmergencyActions, lang),
		Suggestions: []string{},
		Disclaimer:  a.phrases.Text(prompts.MsgDisclaimer, lang, nil),
		Emergency: &models.EmergencyNotice{
			Message:  msg,
			Contacts: safety.Contacts(lang),
			Reasons:  reasons,
		},
	}
}

func (a *Assembler) single(lang models.Language, in Input) *models.StructuredResponse {
	resolved := in.Rule.Resolve(lang, in.Facts)
	level := models.MaxSafety(in.Verdict.Level, resolved.Level)

	var summary string
	switch {
	case resolved.RuleID == rules.FallbackRuleID && len(in.Facts.Symptoms) == 0:
		summary = a.phrases.FallbackMessage(lang)
	case resolved.RuleID == rules.FallbackRuleID || len(resolved.Conditions) == 0:
		summary = a.phrases.Text(prompts.MsgSummaryMedical, lang, nil)
	default:
		summary = a.phrases.Text(prompts.MsgSummarySymptoms, lang, map[string]any{"condition": resolved.Conditions[0]})
	}

	suggestions := a.phrases.List(prompts.ListSymptomFollowUps, lang)
	if !in.Facts.AgeKnown() || !in.Facts.Gender.Known() {
		suggestions = append(suggestions, a.phrases.Text(prompts.MsgAskProfile, lang, nil))
	}

	return &models.StructuredResponse{
		Intent:      models.ResponseSymptomAssessment,
		Language:    lang,
		Confidence:  resolved.Confidence,
		SafetyLevel: level,
		Conditions:  slices.Clone(resolved.Conditions),
		Advice:      slices.Clone(resolved.Advice),
		Components:  []models.ResponseComponent{a.medicalComponent(lang, resolved, level)},
		Summary:     summary,
		NextSteps:   a.phrases.List(prompts.ListSymptomNextSteps, lang),
		Suggestions: suggestions,
		Disclaimer:  a.phrases.Text(prompts.MsgDisclaimer, lang, nil),
	}
}

// multi returns nil when no component could be built.
func (a *Assembler) multi(lang models.Language, in Input) *models.StructuredResponse {
	f := in.Facts
	level := in.Verdict.Level
	conditions, advice := []string{}, []string{}

	var components []models.ResponseComponent
	var sentences []string
	add := func(c models.ResponseComponent, sentence string) {
		components = append(components, c)
		sentences = append(sentences, sentence)
	}

	if len(f.Symptoms) > 0 || f.HasIntent(models.IntentMedical) {
		resolved := in.Rule.Resolve(lang, f)
		level = models.MaxSafety(level, resolved.Level)
		conditions = slices.Clone(resolved.Conditions)
		advice = slices.Clone(resolved.Advice)
		add(a.medicalComponent(lang, resolved, level), a.phrases.Text(prompts.MsgSummaryMedical, lang, nil))
	}
	if f.HasIntent(models.IntentNutrition) {
		if c, n, ok := a.mealComponent(lang, f); ok {
			sentence := a.phrases.Text(prompts.MsgSummaryMeal, lang, map[string]any{"count": n})
			if n == 1 {
				sentence = a.phrases.Text(prompts.MsgSummaryMealOne, lang, nil)
			}
			add(c, sentence)
		}
	}
	if f.HasIntent(models.IntentBarcode) {
		if c, name, ok := a.barcodeComponent(lang); ok {
			add(c, a.phrases.Text(prompts.MsgSummaryBarcode, lang, map[string]any{"product": name}))
		}
	}
	if f.HasIntent(models.IntentFitness) {
		if c, data, ok := a.workoutComponent(lang, f); ok {
			add(c, a.phrases.Text(prompts.MsgSummaryWorkout, lang, map[string]any{
				"minutes":  data.DurationMinutes,
				"calories": data.EstimatedCalories,
			}))
		}
	}
	if f.HasIntent(models.IntentScheduling) {
		if c, specialty, ok := a.appointmentComponent(lang); ok {
			add(c, a.phrases.Text(prompts.MsgSummaryAppointment, lang, map[string]any{"specialty": specialty}))
		}
	}
	if f.HasIntent(models.IntentTracking) {
		if c, n, ok := a.trackingComponent(lang); ok {
			add(c, a.phrases.Text(prompts.MsgSummaryTracking, lang, map[string]any{"count": n}))
		}
	}

	if len(components) == 0 {
		return nil
	}

	var nextSteps, suggestions []string
	for _, c := range components {
		nextSteps = appendUnique(nextSteps, a.phrases.List(prompts.NextStepsFor(c.Type), lang)...)
		suggestions = appendUnique(suggestions, a.phrases.List(prompts.SuggestionsFor(c.Type), lang)...)
	}

	return &models.StructuredResponse{
		Intent:      models.ResponseMultiIntent,
		Language:    lang,
		Confidence:  MultiIntentConfidence,
		SafetyLevel: level,
		Conditions:  conditions,
		Advice:      advice,
		Components:  components,
		Summary:     strings.Join(sentences, " "),
		NextSteps:   nonNil(nextSteps),
		Suggestions: nonNil(suggestions),
		Disclaimer:  a.phrases.Text(prompts.MsgDisclaimer, lang, nil),
	}
}

func (a *Assembler) medicalComponent(lang models.Language, r rules.Resolved, level models.SafetyLevel) models.ResponseComponent {
	priority := models.PriorityMedium
	if level >= models.SafetyCaution {
		priority = models.PriorityHigh
	}
	return models.ResponseComponent{
		Type:        models.ComponentMedicalAdvice,
		Title:       a.phrases.Text(prompts.MsgTitleMedical, lang, nil),
		Description: a.phrases.Text(prompts.MsgDescMedical, lang, nil),
		Priority:    priority,
		Actionable:  true,
		Data: models.MedicalAdviceData{
			RuleID:          r.RuleID,
			Conditions:      slices.Clone(r.Conditions),
			Recommendations: slices.Clone(r.Advice),
			WhenToSeekHelp:  nonNil(slices.Clone(r.WhenToSeekHelp)),
			SafetyLevel:     level,
		},
	}
}

func mealVariant(f models.ExtractedFacts) catalog.MealVariant {
	switch {
	case f.HasModifier(models.ModifierBreakfast):
		return catalog.MealBreakfast
	case f.HasModifier(models.ModifierLowCarb):
		return catalog.MealLowCarb
	default:
		return catalog.MealGeneral
	}
}

var mealText = map[catalog.MealVariant][2]prompts.MessageID{
	catalog.MealBreakfast: {prompts.MsgTitleMealBreakfast, prompts.MsgDescMealBreakfast},
	catalog.MealLowCarb:   {prompts.MsgTitleMealLowCarb, prompts.MsgDescMealLowCarb},
	catalog.MealGeneral:   {prompts.MsgTitleMealGeneral, prompts.MsgDescMealGeneral},
}

func (a *Assembler) mealComponent(lang models.Language, f models.ExtractedFacts) (models.ResponseComponent, int, bool) {
	v := mealVariant(f)
	meals, ok := a.catalog.MealsFor(v)
	if !ok {
		return models.ResponseComponent{}, 0, false
	}
	ids := mealText[v]
	return models.ResponseComponent{
		Type:        models.ComponentMealSuggestion,
		Title:       a.phrases.Text(ids[0], lang, nil),
		Description: a.phrases.Text(ids[1], lang, nil),
		Priority:    models.PriorityMedium,
		Actionable:  true,
		Data:        models.MealSuggestionData{Variant: string(v), Meals: meals},
	}, len(meals), true
}

// WorkoutMinutes is the requested duration clamped to the supported range.
func WorkoutMinutes(f models.ExtractedFacts) int {
	if f.DurationMinutes == nil {
		return DefaultWorkoutMinutes
	}
	return min(max(*f.DurationMinutes, MinWorkoutMinutes), MaxWorkoutMinutes)
}

func (a *Assembler) workoutComponent(lang models.Language, f models.ExtractedFacts) (models.ResponseComponent, models.WorkoutPlanData, bool) {
	variant, title, desc := catalog.WorkoutGeneral, prompts.MsgTitleWorkout, prompts.MsgDescWorkout
	if f.HasModifier(models.ModifierMorning) {
		variant, title, desc = catalog.WorkoutMorning, prompts.MsgTitleWorkoutAM, prompts.MsgDescWorkoutAM
	}
	w, ok := a.catalog.WorkoutFor(variant)
	if !ok {
		return models.ResponseComponent{}, models.WorkoutPlanData{}, false
	}

	minutes := WorkoutMinutes(f)
	data := models.WorkoutPlanData{
		Name:              w.Name,
		DurationMinutes:   minutes,
		EstimatedCalories: minutes * catalog.CaloriesPerMinute,
		Difficulty:        w.Difficulty,
		Equipment:         w.Equipment,
		Exercises:         w.Exercises,
		Instructions:      w.Instructions,
	}
	return models.ResponseComponent{
		Type:        models.ComponentWorkoutPlan,
		Title:       a.phrases.Text(title, lang, map[string]any{"minutes": minutes}),
		Description: a.phrases.Text(desc, lang, nil),
		Priority:    models.PriorityHigh,
		Actionable:  true,
		Data:        data,
	}, data, true
}

func (a *Assembler) barcodeComponent(lang models.Language) (models.ResponseComponent, string, bool) {
	p, ok := a.catalog.ScannedProduct()
	if !ok {
		return models.ResponseComponent{}, "", false
	}
	return models.ResponseComponent{
		Type:        models.ComponentBarcodeScan,
		Title:       a.phrases.Text(prompts.MsgTitleBarcode, lang, nil),
		Description: a.phrases.Text(prompts.MsgDescBarcode, lang, nil),
		Priority:    models.PriorityMedium,
		Actionable:  true,
		Data:        models.BarcodeScanData{Product: p},
	}, p.Name, true
}

func (a *Assembler) appointmentComponent(lang models.Language) (models.ResponseComponent, string, bool) {
	appt, ok := a.catalog.AppointmentSlots()
	if !ok {
		return models.ResponseComponent{}, "", false
	}
	return models.ResponseComponent{
		Type:        models.ComponentAppointmentBooking,
		Title:       a.phrases.Text(prompts.MsgTitleAppointment, lang, nil),
		Description: a.phrases.Text(prompts.MsgDescAppointment, lang, nil),
		Priority:    models.PriorityMedium,
		Actionable:  true,
		Data:        appt,
	}, appt.Specialty, true
}

func (a *Assembler) trackingComponent(lang models.Language) (models.ResponseComponent, int, bool) {
	metrics, ok := a.catalog.TrackingMetrics()
	if !ok {
		return models.ResponseComponent{}, 0, false
	}
	return models.ResponseComponent{
		Type:        models.ComponentWellnessTracking,
		Title:       a.phrases.Text(prompts.MsgTitleTracking, lang, nil),
		Description: a.phrases.Text(prompts.MsgDescTracking, lang, nil),
		Priority:    models.PriorityLow,
		Actionable:  true,
		Data:        models.WellnessTrackingData{Metrics: metrics},
	}, len(metrics), true
}

// appendUnique appends items not already in dst, preserving first occurrence.
func appendUnique(dst []string, items ...string) []string {
	for _, s := range items {
		if !slices.Contains(dst, s) {
			dst = append(dst, s)
		}
	}
	return dst
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
