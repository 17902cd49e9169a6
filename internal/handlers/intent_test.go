package handlers

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nens2012/life-aid-nexus/internal/alert"
	"github.com/nens2012/life-aid-nexus/internal/consultation"
	"github.com/nens2012/life-aid-nexus/internal/inference"
	"github.com/nens2012/life-aid-nexus/internal/memory"
	"github.com/nens2012/life-aid-nexus/internal/models"
	"github.com/nens2012/life-aid-nexus/internal/profile"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []alert.Event
	err    error
}

func (p *recordingPublisher) PublishUrgent(_ context.Context, e alert.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

type failingStore struct{}

func (failingStore) Load(context.Context, string) (*memory.HealthContext, error) {
	return nil, errors.New("redis: connection refused")
}
func (failingStore) Save(context.Context, *memory.HealthContext) error { return nil }
func (failingStore) Delete(context.Context, string) error { return nil }
func (failingStore) Exists(context.Context, string) (bool, error) { return false, nil }

type fixture struct {
	handler       *IntentHandler
	sessions      *memory.Manager
	profiles      *profile.Service
	consultations *consultation.MemoryRepository
	alerts        *recordingPublisher
}

func newFixture(t *testing.T, store memory.Store) *fixture {
	t.Helper()
	engine, err := inference.New()
	require.NoError(t, err)

	f := &fixture{
		sessions:      memory.NewManager(store, nil),
		profiles:      profile.NewService(profile.NewMemoryStore()),
		consultations: consultation.NewMemoryRepository(),
		alerts:        &recordingPublisher{},
	}
	f.handler = NewIntentHandler(Dependencies{
		Engine:        engine,
		Sessions:      f.sessions,
		Profiles:      f.profiles,
		Consultations: f.consultations,
		Alerts:        f.alerts,
	})
	return f
}

func TestProcessIntent_Symptoms(t *testing.T) {
	f := newFixture(t, memory.NewMemoryStore(time.Hour))
	ctx := context.Background()

	resp, err := f.handler.ProcessIntent(ctx, &models.IntentRequest{
		SessionID:   "s1",
		UserMessage: "I'm a 28-year-old male with fever and cough for 3 days",
		Language:    "en",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusOK, resp.Status)
	assert.Equal(t, "s1", resp.SessionID)
	assert.NotEmpty(t, resp.RequestID)
	require.NotNil(t, resp.Response)
	assert.Contains(t, resp.Response.Conditions, "Viral Infection (Common Cold/Flu)")
	assert.Equal(t, resp.Response.Summary, resp.UserMessage)
	assert.Empty(t, f.alerts.events)

	hc, err := f.sessions.Load(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, hc.Age)
	assert.Equal(t, 28, *hc.Age)
	assert.Equal(t, models.GenderMale, hc.Gender)
	assert.Len(t, hc.Turns, 2)

	records, err := f.consultations.ListBySession(ctx, "s1", 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "viral_infection", records[0].RuleID)
}

func TestProcessIntent_RemembersAgeAcrossTurns(t *testing.T) {
	f := newFixture(t, memory.NewMemoryStore(time.Hour))
	ctx := context.Background()

	_, err := f.handler.ProcessIntent(ctx, &models.IntentRequest{SessionID: "s1", UserMessage: "I am 70 years old", Language: "en"})
	require.NoError(t, err)

	resp, err := f.handler.ProcessIntent(ctx, &models.IntentRequest{SessionID: "s1", UserMessage: "I have fever and cough", Language: "en"})
	require.NoError(t, err)

	advice := resp.Response.Advice
	require.NotEmpty(t, advice)
	noElder, err := f.handler.ProcessIntent(ctx, &models.IntentRequest{SessionID: "s2", UserMessage: "I have fever and cough", Language: "en"})
	require.NoError(t, err)
	assert.Greater(t, len(advice), len(noElder.Response.Advice))
}

func TestProcessIntent_RejectedAgeKeepsSessionAge(t *testing.T) {
	f := newFixture(t, memory.NewMemoryStore(time.Hour))
	ctx := context.Background()

	_, err := f.handler.ProcessIntent(ctx, &models.IntentRequest{SessionID: "s1", UserMessage: "I am 70 years old"})
	require.NoError(t, err)

	resp, err := f.handler.ProcessIntent(ctx, &models.IntentRequest{SessionID: "s1", UserMessage: "I have fever and cough", KnownAge: intPtr(130)})
	require.NoError(t, err)
	assert.Equal(t, models.StatusError, resp.Status)

	hc, err := f.sessions.Load(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, hc.Age)
	assert.Equal(t, 70, *hc.Age)
}

func TestProcessIntent_Emergency(t *testing.T) {
	f := newFixture(t, memory.NewMemoryStore(time.Hour))

	resp, err := f.handler.ProcessIntent(context.Background(), &models.IntentRequest{
		SessionID:   "s1",
		UserID:      "u1",
		UserMessage: "सीने में दर्द और सांस नहीं आ रही",
		Language:    "hi-IN",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusEmergency, resp.Status)
	assert.Equal(t, models.LangHindi, resp.Response.Language)
	require.Len(t, f.alerts.events, 1)
	e := f.alerts.events[0]
	assert.Equal(t, "s1", e.SessionID)
	assert.Equal(t, "u1", e.UserID)
	assert.Equal(t, resp.RequestID, e.RequestID)
	assert.NotEmpty(t, e.Reasons)
}

func TestProcessIntent_AlertFailureStillResponds(t *testing.T) {
	f := newFixture(t, memory.NewMemoryStore(time.Hour))
	f.alerts.err = errors.New("broker down")

	resp, err := f.handler.ProcessIntent(context.Background(), &models.IntentRequest{
		SessionID:   "s1",
		UserMessage: "severe chest pain and can't breathe",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusEmergency, resp.Status)
}

func TestProcessIntent_SeedsFromProfile(t *testing.T) {
	f := newFixture(t, memory.NewMemoryStore(time.Hour))
	ctx := context.Background()

	dob := time.Now().AddDate(-33, 0, -10)
	p, err := f.profiles.Register(ctx, profile.Registration{
		Name:              "Asha",
		Email:             "asha@example.com",
		DateOfBirth:       &dob,
		Gender:            "female",
		MedicalConditions: []string{"Pregnant (2nd trimester)"},
	})
	require.NoError(t, err)

	resp, err := f.handler.ProcessIntent(ctx, &models.IntentRequest{
		SessionID:   "s1",
		UserID:      p.ID.Hex(),
		UserMessage: "I feel tired",
		Language:    "en",
	})
	require.NoError(t, err)
	assert.Equal(t, models.SafetyCaution, resp.Response.SafetyLevel)

	hc, err := f.sessions.Load(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, hc.ProfileSeeded)
	require.NotNil(t, hc.Age)
	assert.Equal(t, 33, *hc.Age)
	assert.Equal(t, models.GenderFemale, hc.Gender)
	assert.Equal(t, []models.HistoryID{models.HistoryPregnancy}, hc.MedicalHistory)
}

func TestProcessIntent_UnknownProfileIgnored(t *testing.T) {
	f := newFixture(t, memory.NewMemoryStore(time.Hour))

	resp, err := f.handler.ProcessIntent(context.Background(), &models.IntentRequest{
		SessionID:   "s1",
		UserID:      "000000000000000000000000",
		UserMessage: "I have a headache",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusOK, resp.Status)
}

func TestProcessIntent_StoreFailureDegrades(t *testing.T) {
	f := newFixture(t, failingStore{})

	resp, err := f.handler.ProcessIntent(context.Background(), &models.IntentRequest{
		SessionID:   "s1",
		UserMessage: "I have fever and cough",
		KnownAge:    intPtr(70),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusOK, resp.Status)
	require.NotNil(t, resp.Response)
	assert.Contains(t, resp.Response.Conditions, "Viral Infection (Common Cold/Flu)")
}

func TestProcessIntent_GeneratesSessionID(t *testing.T) {
	f := newFixture(t, memory.NewMemoryStore(time.Hour))

	resp, err := f.handler.ProcessIntent(context.Background(), &models.IntentRequest{UserMessage: "hello"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, models.StatusOK, resp.Status)
}

func TestProcessIntent_InvalidRequests(t *testing.T) {
	f := newFixture(t, memory.NewMemoryStore(time.Hour))
	tests := []struct {
		name    string
		request models.IntentRequest
		wantMsg string
	}{
		{"empty message", models.IntentRequest{SessionID: "s1", UserMessage: "   "}, "user_message is required"},
		{"too long", models.IntentRequest{SessionID: "s1", UserMessage: strings.Repeat("a", models.MaxMessageBytes+1)}, "exceeds"},
		{"bad age", models.IntentRequest{SessionID: "s1", UserMessage: "hi", KnownAge: intPtr(-3)}, "out of range"},
		{"zero age", models.IntentRequest{SessionID: "s1", UserMessage: "hi", KnownAge: intPtr(0)}, "out of range"},
		{"implausible age", models.IntentRequest{SessionID: "s1", UserMessage: "hi", KnownAge: intPtr(130)}, "out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := f.handler.ProcessIntent(context.Background(), &tt.request)
			require.NoError(t, err)

			assert.Equal(t, models.StatusError, resp.Status)
			require.NotNil(t, resp.ErrorCode)
			assert.Equal(t, models.ErrorInvalidRequest, *resp.ErrorCode)
			assert.Contains(t, *resp.ErrorMessage, tt.wantMsg)
			assert.NotEmpty(t, resp.UserMessage)
			assert.Nil(t, resp.Response)
		})
	}
}

func TestProcessIntent_CancelledContext(t *testing.T) {
	f := newFixture(t, memory.NewMemoryStore(time.Hour))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := f.handler.ProcessIntent(ctx, &models.IntentRequest{SessionID: "s1", UserMessage: "hello"})
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, resp)
	assert.Equal(t, models.ErrorTimeout, *resp.ErrorCode)
}

func TestCreateErrorResponse_Localized(t *testing.T) {
	f := newFixture(t, memory.NewMemoryStore(time.Hour))

	en := f.handler.CreateErrorResponse("s1", "en", models.ErrorParseError, "bad json")
	gu := f.handler.CreateErrorResponse("s1", "gu", models.ErrorParseError, "bad json")

	assert.Equal(t, models.StatusError, en.Status)
	assert.NotEqual(t, en.UserMessage, gu.UserMessage)
}

func intPtr(n int) *int { return &n }
