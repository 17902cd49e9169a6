package models

import (
	"encoding/json"
	"fmt"
)

// Response intent labels.
const (
	ResponseEmergency         = "emergency"
	ResponseSymptomAssessment = "symptom_assessment"
	ResponseMultiIntent       = "multi_intent"
)

// ComponentType tags a ResponseComponent variant.
type ComponentType string

const (
	ComponentMealSuggestion     ComponentType = "meal_suggestion"
	ComponentWorkoutPlan        ComponentType = "workout_plan"
	ComponentMedicalAdvice      ComponentType = "medical_advice"
	ComponentBarcodeScan        ComponentType = "barcode_scan"
	ComponentAppointmentBooking ComponentType = "appointment_booking"
	ComponentWellnessTracking   ComponentType = "wellness_tracking"
)

// Priority of a component in the UI.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ComponentData is implemented only by the payload types in this package.
type ComponentData interface {
	ComponentType() ComponentType
	isComponentData()
}

type Meal struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Calories     int      `json:"calories"`
	PrepMinutes  int      `json:"prep_minutes"`
	Difficulty   string   `json:"difficulty"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	ProteinG     int      `json:"protein_g"`
	CarbsG       int      `json:"carbs_g"`
	FatG         int      `json:"fat_g"`
	FiberG       int      `json:"fiber_g"`
	Tags         []string `json:"tags"`
	Allergens    []string `json:"allergens"`
}

type MealSuggestionData struct {
	Variant string `json:"variant"`
	Meals   []Meal `json:"meals"`
}

type Exercise struct {
	Name            string   `json:"name"`
	Sets            int      `json:"sets"`
	DurationSeconds int      `json:"duration_seconds"`
	Instructions    []string `json:"instructions"`
}

type WorkoutPlanData struct {
	Name              string     `json:"name"`
	DurationMinutes   int        `json:"duration_minutes"`
	EstimatedCalories int        `json:"estimated_calories"`
	Difficulty        string     `json:"difficulty"`
	Equipment         []string   `json:"equipment"`
	Exercises         []Exercise `json:"exercises"`
	Instructions      []string   `json:"instructions"`
}

type MedicalAdviceData struct {
	RuleID          string      `json:"rule_id"`
	Conditions      []string    `json:"conditions"`
	Recommendations []string    `json:"recommendations"`
	WhenToSeekHelp  []string    `json:"when_to_seek_help"`
	SafetyLevel     SafetyLevel `json:"safety_level"`
}

type Product struct {
	Barcode         string   `json:"barcode"`
	Name            string   `json:"name"`
	Brand           string   `json:"brand"`
	Healthy         bool     `json:"healthy"`
	HealthScore     int      `json:"health_score"`
	Calories        int      `json:"calories"`
	ProteinG        int      `json:"protein_g"`
	CarbsG          int      `json:"carbs_g"`
	FatG            int      `json:"fat_g"`
	FiberG          int      `json:"fiber_g"`
	SugarG          int      `json:"sugar_g"`
	SodiumMg        int      `json:"sodium_mg"`
	Recommendations []string `json:"recommendations"`
	Alternatives    []string `json:"alternatives"`
}

type BarcodeScanData struct {
	Product Product `json:"product"`
}

type AppointmentSlot struct {
	Day  string `json:"day"`
	Time string `json:"time"`
	Mode string `json:"mode"`
}

type AppointmentBookingData struct {
	Specialty string            `json:"specialty"`
	Slots     []AppointmentSlot `json:"slots"`
}

type TrackingMetric struct {
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	Target    string `json:"target"`
	Frequency string `json:"frequency"`
}

type WellnessTrackingData struct {
	Metrics []TrackingMetric `json:"metrics"`
}

func (MealSuggestionData) ComponentType() ComponentType { return ComponentMealSuggestion }
func (WorkoutPlanData) ComponentType() ComponentType { return ComponentWorkoutPlan }
func (MedicalAdviceData) ComponentType() ComponentType { return ComponentMedicalAdvice }
func (BarcodeScanData) ComponentType() ComponentType { return ComponentBarcodeScan }
func (AppointmentBookingData) ComponentType() ComponentType { return ComponentAppointmentBooking }
func (WellnessTrackingData) ComponentType() ComponentType { return ComponentWellnessTracking }

func (MealSuggestionData) isComponentData() {}
func (WorkoutPlanData) isComponentData() {}
func (MedicalAdviceData) isComponentData() {}
func (BarcodeScanData) isComponentData() {}
func (AppointmentBookingData) isComponentData() {}
func (WellnessTrackingData) isComponentData() {}

// ResponseComponent is one self-contained block of a response.
type ResponseComponent struct {
	Type        ComponentType `json:"type"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Priority    Priority      `json:"priority"`
	Actionable  bool          `json:"actionable"`
	Data        ComponentData `json:"data"`
}

// UnmarshalJSON decodes Data into the payload type named by Type.
func (c *ResponseComponent) UnmarshalJSON(b []byte) error {
	var raw struct {
		Type        ComponentType   `json:"type"`
		Title       string          `json:"title"`
		Description string          `json:"description"`
		Priority    Priority        `json:"priority"`
		Actionable  bool            `json:"actionable"`
		Data        json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var data ComponentData
	var err error
	switch raw.Type {
	case ComponentMealSuggestion:
		data, err = decodeData[MealSuggestionData](raw.Data)
	case ComponentWorkoutPlan:
		data, err = decodeData[WorkoutPlanData](raw.Data)
	case ComponentMedicalAdvice:
		data, err = decodeData[MedicalAdviceData](raw.Data)
	case ComponentBarcodeScan:
		data, err = decodeData[BarcodeScanData](raw.Data)
	case ComponentAppointmentBooking:
		data, err = decodeData[AppointmentBookingData](raw.Data)
	case ComponentWellnessTracking:
		data, err = decodeData[WellnessTrackingData](raw.Data)
	default:
		return fmt.Errorf("unknown component type %q", raw.Type)
	}
	if err != nil {
		return fmt.Errorf("decode %s data: %w", raw.Type, err)
	}

	*c = ResponseComponent{
		Type:        raw.Type,
		Title:       raw.Title,
		Description: raw.Description,
		Priority:    raw.Priority,
		Actionable:  raw.Actionable,
		Data:        data,
	}
	return nil
}

func decodeData[T ComponentData](b json.RawMessage) (ComponentData, error) {
	var v T
	if len(b) == 0 || string(b) == "null" {
		return v, nil
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}

type EmergencyContact struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

// EmergencyNotice is attached only to urgent responses.
type EmergencyNotice struct {
	Message  string             `json:"message"`
	Contacts []EmergencyContact `json:"contacts"`
	Reasons  []string           `json:"reasons"`
}

// StructuredResponse is the result of one turn. It is never mutated after
// assembly.
type StructuredResponse struct {
	Intent      string              `json:"intent"`
	Language    Language            `json:"language"`
	Confidence  float64             `json:"confidence"`
	SafetyLevel SafetyLevel         `json:"safety_level"`
	Conditions  []string            `json:"conditions"`
	Advice      []string            `json:"advice"`
	Components  []ResponseComponent `json:"components"`
	Summary     string              `json:"summary"`
	NextSteps   []string            `json:"next_steps"`
	Suggestions []string            `json:"suggestions"`
	Disclaimer  string              `json:"disclaimer"`
	Emergency   *EmergencyNotice    `json:"emergency,omitempty"`
}

// ComponentTypes lists the component types in response order.
func (r *StructuredResponse) ComponentTypes() []ComponentType {
	out := make([]ComponentType, 0, len(r.Components))
	for _, c := range r.Components {
		out = append(out, c.Type)
	}
	return out
}
