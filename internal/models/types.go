package models

import "time"

// IntentRequest is the transport envelope for one user turn (NATS or HTTP).
type IntentRequest struct {
	SessionID      string   `json:"session_id"`
	UserID         string   `json:"user_id,omitempty"`
	UserMessage    string   `json:"user_message"`
	Language       string   `json:"language"`
	KnownAge       *int     `json:"known_age,omitempty"`
	KnownGender    string   `json:"known_gender,omitempty"`
	MedicalHistory []string `json:"medical_history,omitempty"`
}

// IntentResponse is returned for every request, including failed ones.
type IntentResponse struct {
	SessionID    string              `json:"session_id"`
	RequestID    string              `json:"request_id"`
	Status       string              `json:"status"` // "OK", "EMERGENCY", "ERROR"
	Response     *StructuredResponse `json:"response,omitempty"`
	UserMessage  string              `json:"user_message,omitempty"`
	ErrorCode    *string             `json:"error_code,omitempty"`
	ErrorMessage *string             `json:"error_message,omitempty"`
	GeneratedAt  time.Time           `json:"generated_at"`
}

// Status constants
const (
	StatusOK        = "OK"
	StatusEmergency = "EMERGENCY"
	StatusError     = "ERROR"
)

// Error codes
const (
	ErrorInvalidRequest = "INVALID_REQUEST"
	ErrorParseError     = "PARSE_ERROR"
	ErrorTimeout        = "TIMEOUT"
	ErrorInternal       = "INTERNAL_ERROR"
)

// MaxMessageBytes bounds a single user message.
const MaxMessageBytes = 4000
