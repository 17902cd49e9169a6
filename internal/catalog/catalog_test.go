package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_HasEveryEntry(t *testing.T) {
	c := Default()

	for _, v := range []MealVariant{MealLowCarb, MealBreakfast, MealGeneral} {
		meals, ok := c.MealsFor(v)
		require.True(t, ok, "meals %s", v)
		assert.NotEmpty(t, meals)
	}
	for _, v := range []WorkoutVariant{WorkoutMorning, WorkoutGeneral} {
		w, ok := c.WorkoutFor(v)
		require.True(t, ok, "workout %s", v)
		assert.Len(t, w.Exercises, 3)
	}

	p, ok := c.ScannedProduct()
	require.True(t, ok)
	assert.Equal(t, "Organic Granola Bars", p.Name)
	assert.Equal(t, 190, p.Calories)

	_, ok = c.AppointmentSlots()
	assert.True(t, ok)
	_, ok = c.TrackingMetrics()
	assert.True(t, ok)
}

func TestAccessors_ReturnCopies(t *testing.T) {
	c := Default()

	meals, _ := c.MealsFor(MealLowCarb)
	meals[0].Ingredients[0] = "tofu"
	meals[0].Name = "changed"
	again, _ := c.MealsFor(MealLowCarb)
	assert.Equal(t, "chicken breast", again[0].Ingredients[0])
	assert.Equal(t, "Grilled Chicken Salad", again[0].Name)

	w, _ := c.WorkoutFor(WorkoutGeneral)
	w.Exercises[0].Instructions[0] = "changed"
	w2, _ := c.WorkoutFor(WorkoutGeneral)
	assert.Equal(t, "Start standing", w2.Exercises[0].Instructions[0])
}

func TestAccessors_MissingData(t *testing.T) {
	c := &Catalog{}

	_, ok := c.MealsFor(MealGeneral)
	assert.False(t, ok)
	_, ok = c.WorkoutFor(WorkoutMorning)
	assert.False(t, ok)
	_, ok = c.ScannedProduct()
	assert.False(t, ok)
	_, ok = c.AppointmentSlots()
	assert.False(t, ok)
	_, ok = c.TrackingMetrics()
	assert.False(t, ok)
}
