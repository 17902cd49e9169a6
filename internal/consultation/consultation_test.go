package consultation

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nens2012/life-aid-nexus/internal/models"
)

func sampleResponse() *models.StructuredResponse {
	return &models.StructuredResponse{
		Intent:      models.ResponseSymptomAssessment,
		Language:    models.LangEnglish,
		SafetyLevel: models.SafetyCaution,
		Conditions:  []string{"Viral Infection (Common Cold/Flu)"},
		Advice:      []string{"Rest", "Drink fluids"},
		Summary:     "Based on your symptoms...",
		Disclaimer:  "Consult a doctor.",
	}
}

func TestNewRecord_CopiesResponse(t *testing.T) {
	resp := sampleResponse()
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	rec := NewRecord("s1", "u1", "viral_infection", models.ExtractedFacts{Gender: models.GenderMale}, resp, at)

	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.Equal(t, models.SafetyCaution, rec.SafetyLevel)
	assert.Equal(t, at, rec.CreatedAt)

	resp.Advice[0] = "changed"
	assert.Equal(t, "Rest", rec.Advice[0])
}

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		rec := NewRecord("s1", "", "fever", models.ExtractedFacts{}, sampleResponse(), base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, repo.Save(ctx, rec))
		ids = append(ids, rec.ID)
	}
	require.NoError(t, repo.Save(ctx, NewRecord("s2", "", "fever", models.ExtractedFacts{}, sampleResponse(), base)))

	got, err := repo.GetByID(ctx, ids[1])
	require.NoError(t, err)
	assert.Equal(t, ids[1], got.ID)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := repo.ListBySession(ctx, "s1", 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, ids[2], list[0].ID)
	assert.Equal(t, ids[1], list[1].ID)

	empty, err := repo.ListBySession(ctx, "missing", 10)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestPostgresRepository(t *testing.T) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}
	ctx := context.Background()
	require.NoError(t, Migrate(url))
	db, err := Open(ctx, url)
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	sessionID := "pg-" + uuid.NewString()
	rec := NewRecord(sessionID, "u1", "viral_infection", models.ExtractedFacts{
		Gender:   models.GenderFemale,
		Symptoms: []models.SymptomID{models.SymptomFever},
	}, sampleResponse(), time.Now())
	require.NoError(t, repo.Save(ctx, rec))

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Conditions, got.Conditions)
	assert.Equal(t, rec.Facts.Symptoms, got.Facts.Symptoms)
	assert.Equal(t, models.SafetyCaution, got.SafetyLevel)

	list, err := repo.ListBySession(ctx, sessionID, 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
