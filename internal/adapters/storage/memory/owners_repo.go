package memory

import (
	"context"
	"sync"

	"doggohub/internal/domain/owners"
)

type ownersRepo struct {
	mu     sync.RWMutex
	byID   map[int64]owners.Owner
	nextID int64

	// dogOwner lo comparte el repo de perros del mismo paquete para
	// resolver GetByDogID sin ir a otro store.
	links *DogLinks
}

func NewOwnersRepo(links *DogLinks) owners.Repository {
	return &ownersRepo{
		byID:   make(map[int64]owners.Owner),
		nextID: 1,
		links:  links,
	}
}

func (r *ownersRepo) Create(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if existing.Email == o.Email {
			return owners.Owner{}, owners.ErrEmailTaken
		}
	}

	o.ID = r.nextID
	r.nextID++
	r.byID[o.ID] = o
	return o, nil
}

func (r *ownersRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	return o, nil
}

func (r *ownersRepo) GetByDogID(ctx context.Context, dogID int64) (owners.Owner, error) {
	ownerID, ok := r.links.ownerOf(dogID)
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	return r.GetByID(ctx, ownerID)
}

func (r *ownersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]owners.Owner, 0, len(r.byID))
	for id := int64(1); id < r.nextID; id++ {
		if o, ok := r.byID[id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *ownersRepo) Update(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[o.ID]; !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	for id, existing := range r.byID {
		if id != o.ID && existing.Email == o.Email {
			return owners.Owner{}, owners.ErrEmailTaken
		}
	}
	r.byID[o.ID] = o
	return o, nil
}

func (r *ownersRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	r.links.unlinkOwner(id)
	return nil
}
