package models

import (
	"fmt"
	"slices"
	"strings"
)

// Language is a supported locale tag.
type Language string

const (
	LangEnglish  Language = "en"
	LangHindi    Language = "hi"
	LangGujarati Language = "gu"

	DefaultLanguage = LangEnglish
)

// SupportedLanguages lists every locale the rule and phrase tables must cover.
var SupportedLanguages = []Language{LangEnglish, LangHindi, LangGujarati}

func (l Language) Valid() bool {
	return slices.Contains(SupportedLanguages, l)
}

// ParseLanguage normalizes a tag such as "hi-IN" or "GU". Unknown tags map to
// DefaultLanguage.
func ParseLanguage(tag string) Language {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		tag = tag[:i]
	}
	if l := Language(tag); l.Valid() {
		return l
	}
	return DefaultLanguage
}

// Gender is an enumerated gender value. GenderUnknown is explicit and never
// collides with a stated value.
type Gender string

const (
	GenderUnknown Gender = "unknown"
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderOther   Gender = "other"
)

func (g Gender) Known() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// ParseGender accepts the stored enumeration values; anything else is unknown.
func ParseGender(s string) Gender {
	switch g := Gender(strings.ToLower(strings.TrimSpace(s))); g {
	case GenderMale, GenderFemale, GenderOther:
		return g
	default:
		return GenderUnknown
	}
}

// SafetyLevel orders severities: safe < caution < urgent.
type SafetyLevel int

const (
	SafetySafe SafetyLevel = iota
	SafetyCaution
	SafetyUrgent
)

func (s SafetyLevel) String() string {
	switch s {
	case SafetySafe:
		return "safe"
	case SafetyCaution:
		return "caution"
	case SafetyUrgent:
		return "urgent"
	default:
		return fmt.Sprintf("SafetyLevel(%d)", int(s))
	}
}

func (s SafetyLevel) MarshalText() ([]byte, error) {
	switch s {
	case SafetySafe, SafetyCaution, SafetyUrgent:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("invalid safety level %d", int(s))
	}
}

func (s *SafetyLevel) UnmarshalText(b []byte) error {
	switch string(b) {
	case "safe":
		*s = SafetySafe
	case "caution":
		*s = SafetyCaution
	case "urgent":
		*s = SafetyUrgent
	default:
		return fmt.Errorf("invalid safety level %q", string(b))
	}
	return nil
}

// MaxSafety returns the more severe of two levels.
func MaxSafety(a, b SafetyLevel) SafetyLevel {
	if b > a {
		return b
	}
	return a
}

// SymptomID is a language-independent symptom key.
type SymptomID string

const (
	SymptomFever           SymptomID = "fever"
	SymptomCough           SymptomID = "cough"
	SymptomHeadache        SymptomID = "headache"
	SymptomNausea          SymptomID = "nausea"
	SymptomDizziness       SymptomID = "dizziness"
	SymptomFatigue         SymptomID = "fatigue"
	SymptomSoreThroat      SymptomID = "sore_throat"
	SymptomDiarrhea        SymptomID = "diarrhea"
	SymptomStomachPain     SymptomID = "stomach_pain"
	SymptomMenstrualCramps SymptomID = "menstrual_cramps"
	SymptomInsomnia        SymptomID = "insomnia"
	SymptomStress          SymptomID = "stress"
	SymptomRash            SymptomID = "rash"
	SymptomVisionChange    SymptomID = "vision_change"

	// Emergency-grade symptoms.
	SymptomChestPain       SymptomID = "chest_pain"
	SymptomBreathlessness  SymptomID = "breathlessness"
	SymptomHeavyBleeding   SymptomID = "heavy_bleeding"
	SymptomUnconsciousness SymptomID = "unconsciousness"
	SymptomSelfHarm        SymptomID = "self_harm"
	SymptomSeizure         SymptomID = "seizure"
	SymptomStrokeSigns     SymptomID = "stroke_signs"
)

// IntentID is a coarse request category.
type IntentID string

const (
	IntentMedical    IntentID = "medical"
	IntentNutrition  IntentID = "nutrition"
	IntentFitness    IntentID = "fitness"
	IntentScheduling IntentID = "scheduling"
	IntentTracking   IntentID = "tracking"
	IntentBarcode    IntentID = "barcode"
)

// HistoryID is a canonical medical-history condition.
type HistoryID string

const (
	HistoryDiabetes     HistoryID = "diabetes"
	HistoryHypertension HistoryID = "hypertension"
	HistoryPregnancy    HistoryID = "pregnancy"
	HistoryAsthma       HistoryID = "asthma"
)

// Modifier refines how a component is built.
type Modifier string

const (
	ModifierLowCarb   Modifier = "low_carb"
	ModifierMorning   Modifier = "morning"
	ModifierBreakfast Modifier = "breakfast"
)

// RawInput is one user turn plus any facts already known about the user.
type RawInput struct {
	Text           string
	Language       Language
	KnownAge       *int
	KnownGender    Gender
	MedicalHistory []string
}

// ExtractedFacts holds everything recognized in a single turn. Set-valued
// fields are sorted and free of duplicates.
type ExtractedFacts struct {
	Age             *int        `json:"age,omitempty"`
	Gender          Gender      `json:"gender"`
	Symptoms        []SymptomID `json:"symptoms"`
	Intents         []IntentID  `json:"intents"`
	History         []HistoryID `json:"history"`
	Modifiers       []Modifier  `json:"modifiers"`
	DurationMinutes *int        `json:"duration_minutes,omitempty"`
}

func (f ExtractedFacts) HasSymptom(id SymptomID) bool { return slices.Contains(f.Symptoms, id) }
func (f ExtractedFacts) HasIntent(id IntentID) bool { return slices.Contains(f.Intents, id) }
func (f ExtractedFacts) HasHistory(id HistoryID) bool { return slices.Contains(f.History, id) }
func (f ExtractedFacts) HasModifier(m Modifier) bool { return slices.Contains(f.Modifiers, m) }
func (f ExtractedFacts) AgeKnown() bool { return f.Age != nil }

// AgeAbove reports whether the age is known and strictly greater than n.
func (f ExtractedFacts) AgeAbove(n int) bool {
	return f.Age != nil && *f.Age > n
}

// SortedSet returns a sorted copy of ids without duplicates. A nil or empty
// input yields an empty, non-nil slice.
func SortedSet[T ~string](ids []T) []T {
	out := make([]T, 0, len(ids))
	out = append(out, ids...)
	slices.Sort(out)
	return slices.Compact(out)
}
