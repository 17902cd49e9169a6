// Package profile stores registered users and the health facts they chose to
// share (date of birth, gender, conditions).
package profile

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nens2012/life-aid-nexus/internal/models"
)

const (
	MaxNameLength        = 100
	MaxHealthGoals       = 10
	MaxMedicalConditions = 20
	MaxMedications       = 50
)

var (
	ErrNotFound       = errors.New("profile not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type Profile struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	Email             string             `bson:"email" json:"email"`
	DateOfBirth       *time.Time         `bson:"date_of_birth,omitempty" json:"date_of_birth,omitempty"`
	Gender            models.Gender      `bson:"gender,omitempty" json:"gender,omitempty"`
	HealthGoals       []string           `bson:"health_goals" json:"health_goals"`
	MedicalConditions []string           `bson:"medical_conditions" json:"medical_conditions"`
	Medications       []string           `bson:"medications" json:"medications"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updated_at"`
}

// Age in whole years at now, or nil without a date of birth.
func (p *Profile) Age(now time.Time) *int {
	if p.DateOfBirth == nil {
		return nil
	}
	dob := p.DateOfBirth.UTC()
	now = now.UTC()
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		return nil
	}
	return &age
}

// Registration is the client-supplied part of a profile.
type Registration struct {
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	DateOfBirth       *time.Time `json:"date_of_birth,omitempty"`
	Gender            string     `json:"gender,omitempty"`
	HealthGoals       []string   `json:"health_goals,omitempty"`
	MedicalConditions []string   `json:"medical_conditions,omitempty"`
	Medications       []string   `json:"medications,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every failing field.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "invalid profile: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) add(field, msg string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: msg})
}

// Validate normalizes r and converts it to a Profile. All problems are
// reported together as a *ValidationError.
func (r Registration) Validate(now time.Time) (*Profile, error) {
	verr := &ValidationError{}
	p := &Profile{
		Name:              strings.TrimSpace(r.Name),
		Email:             strings.ToLower(strings.TrimSpace(r.Email)),
		DateOfBirth:       r.DateOfBirth,
		Gender:            models.GenderUnknown,
		HealthGoals:       nonNil(r.HealthGoals),
		MedicalConditions: nonNil(r.MedicalConditions),
		Medications:       nonNil(r.Medications),
	}

	switch {
	case p.Name == "":
		verr.add("name", "Name is required")
	case len([]rune(p.Name)) > MaxNameLength:
		verr.add("name", fmt.Sprintf("Name cannot be more than %d characters", MaxNameLength))
	}

	switch {
	case p.Email == "":
		verr.add("email", "Email is required")
	case !emailRe.MatchString(p.Email):
		verr.add("email", "Please provide a valid email address")
	}

	if p.DateOfBirth != nil && p.DateOfBirth.After(now) {
		verr.add("date_of_birth", "Date of birth cannot be in the future")
	}

	if g := strings.TrimSpace(r.Gender); g != "" {
		p.Gender = models.ParseGender(g)
		if !p.Gender.Known() {
			verr.add("gender", "Gender must be either male, female, or other")
		}
	}

	if len(p.HealthGoals) > MaxHealthGoals {
		verr.add("health_goals", fmt.Sprintf("Cannot have more than %d health goals", MaxHealthGoals))
	}
	if len(p.MedicalConditions) > MaxMedicalConditions {
		verr.add("medical_conditions", fmt.Sprintf("Cannot have more than %d medical conditions", MaxMedicalConditions))
	}
	if len(p.Medications) > MaxMedications {
		verr.add("medications", fmt.Sprintf("Cannot have more than %d medications", MaxMedications))
	}

	if len(verr.Fields) > 0 {
		return nil, verr
	}
	return p, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Store persists profiles. Create returns ErrDuplicateEmail when the email
// is taken; Get returns ErrNotFound for unknown or malformed ids.
type Store interface {
	Create(ctx context.Context, p *Profile) error
	Get(ctx context.Context, id string) (*Profile, error)
}

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Register validates r and stores the resulting profile.
func (s *Service) Register(ctx context.Context, r Registration) (*Profile, error) {
	now := s.now().UTC()
	p, err := r.Validate(now)
	if err != nil {
		return nil, err
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Profile, error) {
	return s.store.Get(ctx, id)
}

// HealthFacts is the subset of a profile the assessment engine can use.
type HealthFacts struct {
	Age            *int
	Gender         models.Gender
	MedicalHistory []string
}

func (s *Service) HealthFacts(ctx context.Context, id string) (HealthFacts, error) {
	p, err := s.store.Get(ctx, id)
	if err != nil {
		return HealthFacts{}, err
	}
	return HealthFacts{
		Age:            p.Age(s.now()),
		Gender:         p.Gender,
		MedicalHistory: append([]string(nil), p.MedicalConditions...),
	}, nil
}
