package profile

import (
	"context"
	"slices"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu      sync.RWMutex
	byID    map[primitive.ObjectID]*Profile
	byEmail map[string]primitive.ObjectID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:    make(map[primitive.ObjectID]*Profile),
		byEmail: make(map[string]primitive.ObjectID),
	}
}

func (s *MemoryStore) Create(_ context.Context, p *Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[p.Email]; taken {
		return ErrDuplicateEmail
	}
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	s.byID[p.ID] = clone(p)
	s.byEmail[p.Email] = p.ID
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Profile, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[oid]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(p), nil
}

func clone(p *Profile) *Profile {
	out := *p
	if p.DateOfBirth != nil {
		dob := *p.DateOfBirth
		out.DateOfBirth = &dob
	}
	out.HealthGoals = slices.Clone(p.HealthGoals)
	out.MedicalConditions = slices.Clone(p.MedicalConditions)
	out.Medications = slices.Clone(p.Medications)
	return &out
}
