package consultation

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository keeps records in process.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]Record
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[uuid.UUID]Record)}
}

func (r *MemoryRepository) Save(_ context.Context, rec *Record) error {
	r.mu.Lock()
	r.records[rec.ID] = *rec
	r.mu.Unlock()
	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Record, error) {
	r.mu.RLock()
	rec, ok := r.records[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (r *MemoryRepository) ListBySession(_ context.Context, sessionID string, limit int) ([]*Record, error) {
	r.mu.RLock()
	out := []*Record{}
	for _, rec := range r.records {
		if rec.SessionID == sessionID {
			rec := rec
			out = append(out, &rec)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
