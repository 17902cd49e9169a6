package memory

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/nens2012/life-aid-nexus/internal/models"
)

// MaxTurns bounds the conversation kept per session; older turns are dropped.
const MaxTurns = 20

// Turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single message in a conversation
type Turn struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthContext is what the service remembers about a session between turns.
type HealthContext struct {
	SessionID      string             `json:"session_id"`
	UserID         string             `json:"user_id,omitempty"`
	Age            *int               `json:"age,omitempty"`
	Gender         models.Gender      `json:"gender"`
	MedicalHistory []models.HistoryID `json:"medical_history"`
	ProfileSeeded  bool               `json:"profile_seeded,omitempty"`
	Turns          []Turn             `json:"turns"`
	StartedAt      time.Time          `json:"started_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// NewHealthContext returns an empty context for sessionID.
func NewHealthContext(sessionID string, now time.Time) *HealthContext {
	return &HealthContext{
		SessionID:      sessionID,
		Gender:         models.GenderUnknown,
		MedicalHistory: []models.HistoryID{},
		Turns:          []Turn{},
		StartedAt:      now,
		UpdatedAt:      now,
	}
}

// Merge folds one turn's facts into the context. Newly stated age and gender
// overwrite stored values; history accumulates.
func (hc *HealthContext) Merge(f models.ExtractedFacts) {
	if f.Age != nil {
		age := *f.Age
		hc.Age = &age
	}
	if f.Gender.Known() {
		hc.Gender = f.Gender
	}
	if len(f.History) > 0 {
		hc.MedicalHistory = models.SortedSet(append(slices.Clone(hc.MedicalHistory), f.History...))
	}
}

// AddTurn appends a message, keeping at most MaxTurns.
func (hc *HealthContext) AddTurn(role, content string, at time.Time) {
	hc.Turns = append(hc.Turns, Turn{Role: role, Content: content, Timestamp: at})
	if n := len(hc.Turns); n > MaxTurns {
		hc.Turns = slices.Clone(hc.Turns[n-MaxTurns:])
	}
	hc.UpdatedAt = at
}

// RawInput builds the engine input for text using what the context knows.
func (hc *HealthContext) RawInput(text string, lang models.Language) models.RawInput {
	history := make([]string, 0, len(hc.MedicalHistory))
	for _, h := range hc.MedicalHistory {
		history = append(history, string(h))
	}
	in := models.RawInput{
		Text:           text,
		Language:       lang,
		KnownGender:    hc.Gender,
		MedicalHistory: history,
	}
	if hc.Age != nil {
		age := *hc.Age
		in.KnownAge = &age
	}
	return in
}

// Clone returns a deep copy.
func (hc *HealthContext) Clone() *HealthContext {
	out := *hc
	if hc.Age != nil {
		age := *hc.Age
		out.Age = &age
	}
	out.MedicalHistory = slices.Clone(hc.MedicalHistory)
	out.Turns = slices.Clone(hc.Turns)
	return &out
}

var ErrNoSession = errors.New("session id is required")

// Store defines the interface for health context storage.
// Load returns an empty context, not an error, for unknown sessions.
type Store interface {
	Load(ctx context.Context, sessionID string) (*HealthContext, error)
	Save(ctx context.Context, hc *HealthContext) error
	Delete(ctx context.Context, sessionID string) error
	Exists(ctx context.Context, sessionID string) (bool, error)
}
