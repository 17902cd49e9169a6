// Package alert publishes an event for every urgent turn so an operator or
// downstream service can follow up.
package alert

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/nens2012/life-aid-nexus/internal/models"
)

const (
	DefaultSubject    = "wellness.alert.urgent"
	DefaultExchange   = "wellness_alerts"
	DefaultRoutingKey = "alert.urgent"
)

// Event is the JSON payload of an urgent alert.
type Event struct {
	ID         uuid.UUID          `json:"id"`
	SessionID  string             `json:"session_id"`
	UserID     string             `json:"user_id,omitempty"`
	RequestID  string             `json:"request_id"`
	Language   models.Language    `json:"language"`
	Level      models.SafetyLevel `json:"level"`
	Reasons    []string           `json:"reasons"`
	OccurredAt time.Time          `json:"occurred_at"`
}

// NewEvent builds an event for an urgent verdict.
func NewEvent(sessionID, userID, requestID string, lang models.Language, level models.SafetyLevel, reasons []string, at time.Time) Event {
	r := slices.Clone(reasons)
	if r == nil {
		r = []string{}
	}
	return Event{
		ID:         uuid.New(),
		SessionID:  sessionID,
		UserID:     userID,
		RequestID:  requestID,
		Language:   lang,
		Level:      level,
		Reasons:    r,
		OccurredAt: at.UTC(),
	}
}

type Publisher interface {
	PublishUrgent(ctx context.Context, e Event) error
	Close() error
}

// Nop drops every event.
type Nop struct{}

func (Nop) PublishUrgent(context.Context, Event) error { return nil }
func (Nop) Close() error { return nil }
