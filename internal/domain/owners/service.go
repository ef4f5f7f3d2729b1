package owners

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("owner not found")
	ErrEmailTaken   = errors.New("email already in use")
)

type Service struct {
	repo Repository
	dogs DogIDSource
}

func NewService(repo Repository, dogs DogIDSource) *Service {
	return &Service{repo: repo, dogs: dogs}
}

type CreateInput struct {
	Name  string
	Email string
}

type UpdateInput struct {
	// nil o vacío = no tocar (PATCH parcial).
	Name  *string
	Email *string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Owner, error) {
	if strings.TrimSpace(in.Email) == "" {
		return Owner{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	o, err := s.repo.Create(ctx, Owner{
		Name:  strings.TrimSpace(in.Name),
		Email: strings.TrimSpace(in.Email),
	})
	if err != nil {
		return Owner{}, err
	}
	return s.withDogIDs(ctx, o)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Owner, error) {
	o, err := s.validAndGet(ctx, id)
	if err != nil {
		return Owner{}, err
	}
	return s.withDogIDs(ctx, o)
}

// GetByDogID resuelve el dueño de un perro. Lo usa el servicio de perros
// para incrustar el owner en sus respuestas.
func (s *Service) GetByDogID(ctx context.Context, dogID int64) (Owner, error) {
	o, err := s.repo.GetByDogID(ctx, dogID)
	if err != nil {
		return Owner{}, err
	}
	return s.withDogIDs(ctx, o)
}

func (s *Service) List(ctx context.Context) ([]Owner, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Owner, 0, len(list))
	for _, o := range list {
		o, err = s.withDogIDs(ctx, o)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Owner, error) {
	o, err := s.validAndGet(ctx, id)
	if err != nil {
		return Owner{}, err
	}

	changed := false
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		o.Name = strings.TrimSpace(*in.Name)
		changed = true
	}
	if in.Email != nil && strings.TrimSpace(*in.Email) != "" {
		o.Email = strings.TrimSpace(*in.Email)
		changed = true
	}

	if changed {
		o, err = s.repo.Update(ctx, o)
		if err != nil {
			return Owner{}, err
		}
	}
	return s.withDogIDs(ctx, o)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.validAndGet(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) validAndGet(ctx context.Context, id int64) (Owner, error) {
	if id <= 0 {
		return Owner{}, fmt.Errorf("%w: owner id must be positive, got %d", ErrInvalidInput, id)
	}
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Owner{}, fmt.Errorf("%w: id=%d", ErrNotFound, id)
		}
		return Owner{}, err
	}
	return o, nil
}

// withDogIDs recalcula la lista derivada de IDs de perros (orden asc por id).
func (s *Service) withDogIDs(ctx context.Context, o Owner) (Owner, error) {
	ids, err := s.dogs.ListIDsByOwner(ctx, o.ID)
	if err != nil {
		return Owner{}, err
	}
	if ids == nil {
		ids = []int64{}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	o.DogIDs = ids
	return o, nil
}
