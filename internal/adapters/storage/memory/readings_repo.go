package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"soulbuddy/internal/domain/readings"
)

type readingsRepo struct {
	mu   sync.RWMutex
	byID map[string]readings.Reading
}

func NewReadingsRepo() readings.Repository {
	return &readingsRepo{
		byID: make(map[string]readings.Reading),
	}
}

func (r *readingsRepo) Create(ctx context.Context, rd readings.Reading) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rd.ID) == "" {
		return errors.New("reading id required")
	}
	if _, exists := r.byID[rd.ID]; exists {
		return errors.New("reading already exists")
	}
	r.byID[rd.ID] = rd
	return nil
}

func (r *readingsRepo) GetByID(ctx context.Context, id string) (readings.Reading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rd, ok := r.byID[id]
	if !ok {
		return readings.Reading{}, readings.ErrNotFound
	}
	return rd, nil
}

func (r *readingsRepo) ListRecent(ctx context.Context, limit int) ([]readings.Reading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]readings.Reading, 0, len(r.byID))
	for _, rd := range r.byID {
		out = append(out, rd)
	}

	// created_at desc; id como desempate para orden estable
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
