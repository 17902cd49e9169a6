// Package catalog holds the fixed example entries used to build response
// components: meals, workouts, a scanned product, appointment slots and
// tracking metrics. Entries are English only.
package catalog

import (
	"slices"

	"github.com/nens2012/life-aid-nexus/internal/models"
)

type MealVariant string

const (
	MealLowCarb   MealVariant = "low_carb"
	MealBreakfast MealVariant = "breakfast"
	MealGeneral   MealVariant = "general"
)

type WorkoutVariant string

const (
	WorkoutMorning WorkoutVariant = "morning"
	WorkoutGeneral WorkoutVariant = "general"
)

// CaloriesPerMinute is the flat burn rate used for workout estimates.
const CaloriesPerMinute = 8

// Workout is a routine template; duration is chosen per request.
type Workout struct {
	Name         string
	Difficulty   string
	Equipment    []string
	Exercises    []models.Exercise
	Instructions []string
}

// Catalog is read-only after construction. Accessors return deep copies and
// report false when an entry is missing or empty.
type Catalog struct {
	Meals       map[MealVariant][]models.Meal
	Workouts    map[WorkoutVariant]Workout
	Product     *models.Product
	Appointment *models.AppointmentBookingData
	Tracking    []models.TrackingMetric
}

func (c *Catalog) MealsFor(v MealVariant) ([]models.Meal, bool) {
	meals := c.Meals[v]
	if len(meals) == 0 {
		return nil, false
	}
	out := make([]models.Meal, len(meals))
	for i, m := range meals {
		m.Ingredients = slices.Clone(m.Ingredients)
		m.Instructions = slices.Clone(m.Instructions)
		m.Tags = slices.Clone(m.Tags)
		m.Allergens = cloneNonNil(m.Allergens)
		out[i] = m
	}
	return out, true
}

func (c *Catalog) WorkoutFor(v WorkoutVariant) (Workout, bool) {
	w, ok := c.Workouts[v]
	if !ok || len(w.Exercises) == 0 {
		return Workout{}, false
	}
	exercises := make([]models.Exercise, len(w.Exercises))
	for i, e := range w.Exercises {
		e.Instructions = slices.Clone(e.Instructions)
		exercises[i] = e
	}
	w.Exercises = exercises
	w.Equipment = slices.Clone(w.Equipment)
	w.Instructions = slices.Clone(w.Instructions)
	return w, true
}

func (c *Catalog) ScannedProduct() (models.Product, bool) {
	if c.Product == nil {
		return models.Product{}, false
	}
	p := *c.Product
	p.Recommendations = slices.Clone(p.Recommendations)
	p.Alternatives = slices.Clone(p.Alternatives)
	return p, true
}

func (c *Catalog) AppointmentSlots() (models.AppointmentBookingData, bool) {
	if c.Appointment == nil || len(c.Appointment.Slots) == 0 {
		return models.AppointmentBookingData{}, false
	}
	a := *c.Appointment
	a.Slots = slices.Clone(a.Slots)
	return a, true
}

func (c *Catalog) TrackingMetrics() ([]models.TrackingMetric, bool) {
	if len(c.Tracking) == 0 {
		return nil, false
	}
	return slices.Clone(c.Tracking), true
}

func cloneNonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}

// Default returns a fresh copy of the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		Meals: map[MealVariant][]models.Meal{
			MealLowCarb: {
				{
					Name:        "Grilled Chicken Salad",
					Description: "Fresh mixed greens with grilled chicken and avocado",
					Category:    "lunch",
					Calories:    320,
					PrepMinutes: 15,
					Difficulty:  "easy",
					Ingredients: []string{"chicken breast", "mixed greens", "avocado", "olive oil", "lemon"},
					Instructions: []string{
						"Season chicken breast with salt and pepper",
						"Grill chicken for 6-7 minutes per side",
						"Slice chicken and arrange over mixed greens",
						"Add sliced avocado and drizzle with olive oil and lemon",
					},
					ProteinG:  35, CarbsG: 12, FatG: 18, FiberG: 8,
					Tags:      []string{"low-carb", "high-protein", "gluten-free"},
					Allergens: []string{},
				},
				{
					Name:        "Cauliflower Rice Bowl",
					Description: "Cauliflower rice with broccoli and almonds",
					Category:    "lunch",
					Calories:    280,
					PrepMinutes: 20,
					Difficulty:  "easy",
					Ingredients: []string{"cauliflower rice", "broccoli", "almonds", "lemon", "olive oil"},
					Instructions: []string{
						"Sauté cauliflower rice in olive oil for 5 minutes",
						"Add chopped broccoli and cook for 3 minutes",
						"Season with salt, pepper, and lemon juice",
						"Top with sliced almonds",
					},
					ProteinG:  12, CarbsG: 8, FatG: 22, FiberG: 6,
					Tags:      []string{"low-carb", "vegetarian", "gluten-free"},
					Allergens: []string{"nuts"},
				},
			},
			MealBreakfast: {
				{
					Name:        "Protein Oatmeal Bowl",
					Description: "Energizing oatmeal with protein powder and toppings",
					Category:    "breakfast",
					Calories:    350,
					PrepMinutes: 10,
					Difficulty:  "easy",
					Ingredients: []string{"oats", "protein powder", "banana", "almonds", "honey"},
					Instructions: []string{
						"Cook oats with water or milk",
						"Mix in protein powder",
						"Top with sliced banana and almonds",
						"Drizzle with honey",
					},
					ProteinG:  25, CarbsG: 45, FatG: 8, FiberG: 6,
					Tags:      []string{"high-protein", "fiber-rich", "energy-boosting"},
					Allergens: []string{"nuts"},
				},
				{
					Name:        "Green Smoothie Bowl",
					Description: "Nutrient-packed smoothie bowl with fresh toppings",
					Category:    "breakfast",
					Calories:    280,
					PrepMinutes: 5,
					Difficulty:  "easy",
					Ingredients: []string{"spinach", "banana", "mango", "protein powder", "coconut milk"},
					Instructions: []string{
						"Blend all ingredients until smooth",
						"Pour into bowl",
						"Top with granola and berries",
					},
					ProteinG:  20, CarbsG: 35, FatG: 6, FiberG: 8,
					Tags:      []string{"vegetarian", "vitamin-rich", "quick-prep"},
					Allergens: []string{},
				},
			},
			MealGeneral: {
				{
					Name:        "Mediterranean Quinoa Bowl",
					Description: "Nutritious quinoa bowl with Mediterranean flavors",
					Category:    "lunch",
					Calories:    420,
					PrepMinutes: 25,
					Difficulty:  "moderate",
					Ingredients: []string{"quinoa", "cherry tomatoes", "cucumber", "feta cheese", "olives", "olive oil"},
					Instructions: []string{
						"Cook quinoa according to package directions",
						"Chop vegetables and mix with quinoa",
						"Add crumbled feta and olives",
						"Drizzle with olive oil and lemon",
					},
					ProteinG:  18, CarbsG: 52, FatG: 16, FiberG: 8,
					Tags:      []string{"vegetarian", "mediterranean", "balanced"},
					Allergens: []string{"dairy"},
				},
			},
		},
		Workouts: map[WorkoutVariant]Workout{
			WorkoutMorning: {
				Name:       "Morning Energy Boost",
				Difficulty: "beginner",
				Equipment:  []string{"None"},
				Exercises: []models.Exercise{
					{Name: "Sun Salutations", Sets: 1, DurationSeconds: 180, Instructions: []string{
						"Start in mountain pose",
						"Reach arms up and back",
						"Fold forward to touch toes",
						"Step back to plank",
						"Lower to cobra pose",
						"Return to downward dog",
						"Step forward and rise up",
					}},
					{Name: "High Knees", Sets: 1, DurationSeconds: 120, Instructions: []string{
						"Stand tall with feet hip-width apart",
						"Lift knees up to hip level",
						"Pump arms naturally",
						"Maintain quick pace",
					}},
					{Name: "Bodyweight Squats", Sets: 1, DurationSeconds: 120, Instructions: []string{
						"Stand with feet shoulder-width apart",
						"Lower down as if sitting in chair",
						"Keep chest up and core engaged",
						"Return to standing position",
					}},
				},
				Instructions: routineInstructions(),
			},
			WorkoutGeneral: {
				Name:       "Quick Energy Boost",
				Difficulty: "beginner",
				Equipment:  []string{"None"},
				Exercises: []models.Exercise{
					{Name: "Jumping Jacks", Sets: 1, DurationSeconds: 60, Instructions: []string{
						"Start standing",
						"Jump feet apart while raising arms",
						"Return to start position",
						"Maintain steady rhythm",
					}},
					{Name: "Push-ups", Sets: 1, DurationSeconds: 60, Instructions: []string{
						"Start in plank position",
						"Lower chest to ground",
						"Push back up to start",
						"Keep core engaged",
					}},
					{Name: "Mountain Climbers", Sets: 1, DurationSeconds: 60, Instructions: []string{
						"Start in plank position",
						"Alternate bringing knees to chest",
						"Maintain plank position",
						"Keep core tight",
					}},
				},
				Instructions: routineInstructions(),
			},
		},
		Product: &models.Product{
			Barcode:     "1234567890123",
			Name:        "Organic Granola Bars",
			Brand:       "Nature's Valley",
			Healthy:     true,
			HealthScore: 7,
			Calories:    190,
			ProteinG:    4,
			CarbsG:      29,
			FatG:        7,
			FiberG:      3,
			SugarG:      12,
			SodiumMg:    140,
			Recommendations: []string{
				"Good source of fiber",
				"Contains natural sugars",
				"Moderate portion size recommended",
			},
			Alternatives: []string{
				"Homemade granola bars",
				"Mixed nuts and dried fruit",
				"Greek yogurt with berries",
			},
		},
		Appointment: &models.AppointmentBookingData{
			Specialty: "General Physician",
			Slots: []models.AppointmentSlot{
				{Day: "Monday", Time: "10:00", Mode: "video"},
				{Day: "Wednesday", Time: "14:30", Mode: "in_person"},
				{Day: "Friday", Time: "17:00", Mode: "video"},
			},
		},
		Tracking: []models.TrackingMetric{
			{Name: "Water intake", Unit: "glasses", Target: "8", Frequency: "daily"},
			{Name: "Sleep", Unit: "hours", Target: "7-9", Frequency: "daily"},
			{Name: "Steps", Unit: "steps", Target: "8000", Frequency: "daily"},
			{Name: "Mood", Unit: "scale 1-5", Target: "4+", Frequency: "daily"},
		},
	}
}

func routineInstructions() []string {
	return []string{
		"Warm up with light movement for 2 minutes",
		"Complete each exercise for the specified duration",
		"Rest 30 seconds between exercises",
		"Cool down with stretching for 2 minutes",
	}
}
