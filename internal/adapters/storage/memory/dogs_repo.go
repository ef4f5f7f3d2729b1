package memory

import (
	"context"
	"sync"

	"doggohub/internal/domain/dogs"
)

// DogLinks es la tabla de asociación dog_owners en memoria. La comparten
// los repos de dogs y owners del mismo paquete.
type DogLinks struct {
	mu      sync.RWMutex
	ownerBy map[int64]int64 // dog id -> owner id
}

func NewDogLinks() *DogLinks {
	return &DogLinks{ownerBy: make(map[int64]int64)}
}

func (l *DogLinks) link(dogID, ownerID int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ownerBy[dogID] = ownerID
}

func (l *DogLinks) unlink(dogID int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.ownerBy, dogID)
}

func (l *DogLinks) unlinkOwner(ownerID int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for dogID, oid := range l.ownerBy {
		if oid == ownerID {
			delete(l.ownerBy, dogID)
		}
	}
}

func (l *DogLinks) ownerOf(dogID int64) (int64, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	id, ok := l.ownerBy[dogID]
	return id, ok
}

type dogsRepo struct {
	mu     sync.RWMutex
	byID   map[int64]dogs.Dog
	nextID int64
	links  *DogLinks
}

func NewDogsRepo(links *DogLinks) dogs.Repository {
	return &dogsRepo{
		byID:   make(map[int64]dogs.Dog),
		nextID: 1,
		links:  links,
	}
}

func (r *dogsRepo) Create(ctx context.Context, d dogs.Dog) (dogs.Dog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d.ID = r.nextID
	r.nextID++
	r.byID[d.ID] = d
	r.links.link(d.ID, d.OwnerID)
	return d, nil
}

func (r *dogsRepo) GetByID(ctx context.Context, id int64) (dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	if !ok {
		return dogs.Dog{}, dogs.ErrNotFound
	}
	return d, nil
}

func (r *dogsRepo) ListByOwner(ctx context.Context, ownerID int64) ([]dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]dogs.Dog, 0)
	for _, d := range r.byID {
		if d.OwnerID == ownerID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *dogsRepo) ListIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	list, _ := r.ListByOwner(ctx, ownerID)
	ids := make([]int64, 0, len(list))
	for _, d := range list {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

func (r *dogsRepo) Update(ctx context.Context, d dogs.Dog) (dogs.Dog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[d.ID]
	if !ok {
		return dogs.Dog{}, dogs.ErrNotFound
	}

	// Solo name y weight son mutables; el resto se conserva del store.
	current.Name = d.Name
	current.Weight = d.Weight
	r.byID[d.ID] = current
	return current, nil
}

func (r *dogsRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	r.links.unlink(id)
	return nil
}
