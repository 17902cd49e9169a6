package profile

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nens2012/life-aid-nexus/internal/models"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestRegistration_ValidateNormalizes(t *testing.T) {
	p, err := Registration{
		Name:   "  Asha Patel ",
		Email:  " Asha@Example.COM ",
		Gender: "Female",
	}.Validate(now)
	require.NoError(t, err)

	assert.Equal(t, "Asha Patel", p.Name)
	assert.Equal(t, "asha@example.com", p.Email)
	assert.Equal(t, models.GenderFemale, p.Gender)
	assert.NotNil(t, p.HealthGoals)
	assert.NotNil(t, p.Medications)
}

func TestRegistration_ValidateReportsEveryField(t *testing.T) {
	_, err := Registration{
		Name:              strings.Repeat("x", MaxNameLength+1),
		Email:             "not-an-email",
		DateOfBirth:       date(2030, 1, 1),
		Gender:            "robot",
		HealthGoals:       make([]string, MaxHealthGoals+1),
		MedicalConditions: make([]string, MaxMedicalConditions+1),
		Medications:       make([]string, MaxMedications+1),
	}.Validate(now)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))

	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.Equal(t, []string{
		"name", "email", "date_of_birth", "gender",
		"health_goals", "medical_conditions", "medications",
	}, fields)
}

func TestRegistration_ValidateRequired(t *testing.T) {
	_, err := Registration{Name: "   "}.Validate(now)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []FieldError{
		{Field: "name", Message: "Name is required"},
		{Field: "email", Message: "Email is required"},
	}, verr.Fields)
}

func TestProfile_Age(t *testing.T) {
	tests := []struct {
		name string
		dob  *time.Time
		want *int
	}{
		{"no date of birth", nil, nil},
		{"birthday passed", date(1990, 1, 10), intPtr(35)},
		{"birthday not yet", date(1990, 12, 10), intPtr(34)},
		{"birthday today", date(1990, 6, 15), intPtr(35)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Profile{DateOfBirth: tt.dob}
			assert.Equal(t, tt.want, p.Age(now))
		})
	}
}

func TestService_RegisterAndGet(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore())
	svc.now = func() time.Time { return now }

	p, err := svc.Register(ctx, Registration{
		Name:              "Ravi",
		Email:             "ravi@example.com",
		DateOfBirth:       date(1950, 3, 1),
		Gender:            "male",
		MedicalConditions: []string{"Type 2 diabetes"},
	})
	require.NoError(t, err)
	assert.False(t, p.ID.IsZero())
	assert.Equal(t, now, p.CreatedAt)

	got, err := svc.Get(ctx, p.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, p.Email, got.Email)

	facts, err := svc.HealthFacts(ctx, p.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 75, *facts.Age)
	assert.Equal(t, models.GenderMale, facts.Gender)
	assert.Equal(t, []string{"Type 2 diabetes"}, facts.MedicalHistory)

	_, err = svc.Register(ctx, Registration{Name: "Other", Email: "RAVI@example.com"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestService_GetUnknown(t *testing.T) {
	svc := NewService(NewMemoryStore())

	_, err := svc.Get(context.Background(), "not-hex")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Get(context.Background(), "65a1b2c3d4e5f60718293a4b")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMongoStore(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}
	ctx := context.Background()
	store, err := NewMongoStore(ctx, uri, "life_aid_nexus_test")
	require.NoError(t, err)
	defer store.Close(ctx)

	email := "mongo-" + time.Now().Format("150405.000000") + "@example.com"
	p := &Profile{Name: "Mongo", Email: email, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, store.Create(ctx, p))
	assert.ErrorIs(t, store.Create(ctx, &Profile{Name: "Dup", Email: email}), ErrDuplicateEmail)

	got, err := store.Get(ctx, p.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, email, got.Email)
}

func intPtr(n int) *int { return &n }
