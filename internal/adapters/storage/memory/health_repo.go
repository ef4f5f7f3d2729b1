package memory

import (
	"context"
	"sync"

	"doggohub/internal/domain/health"
)

type healthRepo struct {
	mu     sync.RWMutex
	byID   map[int64]health.Record
	nextID int64
}

func NewHealthRepo() health.Repository {
	return &healthRepo{
		byID:   make(map[int64]health.Record),
		nextID: 1,
	}
}

func (r *healthRepo) Create(ctx context.Context, rec health.Record) (health.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec.ID = r.nextID
	r.nextID++
	r.byID[rec.ID] = rec
	return rec, nil
}

func (r *healthRepo) GetByID(ctx context.Context, id int64) (health.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return health.Record{}, health.ErrNotFound
	}
	return rec, nil
}

func (r *healthRepo) ListByDog(ctx context.Context, dogID int64) ([]health.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]health.Record, 0)
	for id := int64(1); id < r.nextID; id++ {
		rec, ok := r.byID[id]
		if ok && rec.DogID == dogID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *healthRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}
