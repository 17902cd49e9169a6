// Package consultation records every assessed turn so it can be reviewed and
// exported as a report.
package consultation

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/nens2012/life-aid-nexus/internal/models"
)

var ErrNotFound = errors.New("consultation not found")

// Record is one assessed turn.
type Record struct {
	ID          uuid.UUID             `json:"id"`
	SessionID   string                `json:"session_id"`
	UserID      string                `json:"user_id,omitempty"`
	Language    models.Language       `json:"language"`
	Intent      string                `json:"intent"`
	SafetyLevel models.SafetyLevel    `json:"safety_level"`
	RuleID      string                `json:"rule_id,omitempty"`
	Conditions  []string              `json:"conditions"`
	Advice      []string              `json:"advice"`
	Summary     string                `json:"summary"`
	Disclaimer  string                `json:"disclaimer"`
	Facts       models.ExtractedFacts `json:"facts"`
	CreatedAt   time.Time             `json:"created_at"`
}

// NewRecord captures resp for a session.
func NewRecord(sessionID, userID, ruleID string, facts models.ExtractedFacts, resp *models.StructuredResponse, at time.Time) *Record {
	return &Record{
		ID:          uuid.New(),
		SessionID:   sessionID,
		UserID:      userID,
		Language:    resp.Language,
		Intent:      resp.Intent,
		SafetyLevel: resp.SafetyLevel,
		RuleID:      ruleID,
		Conditions:  slices.Clone(resp.Conditions),
		Advice:      slices.Clone(resp.Advice),
		Summary:     resp.Summary,
		Disclaimer:  resp.Disclaimer,
		Facts:       facts,
		CreatedAt:   at.UTC(),
	}
}

type Repository interface {
	Save(ctx context.Context, r *Record) error
	GetByID(ctx context.Context, id uuid.UUID) (*Record, error)
	// ListBySession returns the newest records first, at most limit.
	ListBySession(ctx context.Context, sessionID string, limit int) ([]*Record, error)
}
