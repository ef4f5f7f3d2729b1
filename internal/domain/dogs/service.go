package dogs

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"doggohub/internal/domain/owners"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("dog not found")
)

type Service struct {
	repo   Repository
	owners OwnerSource
	now    func() time.Time
}

func NewService(repo Repository, ownerSrc OwnerSource) *Service {
	return &Service{
		repo:   repo,
		owners: ownerSrc,
		now:    time.Now,
	}
}

type CreateInput struct {
	Name     string
	BirthDay time.Time
	Breed    Breed
	Color    Color
	Gender   Gender
	Weight   *int
	OwnerID  int64
}

type UpdateInput struct {
	// nil = no tocar. Solo name y weight son actualizables.
	Name   *string
	Weight *int
}

// Create valida presencia de todos los campos antes de tocar el store,
// exige que el owner exista y devuelve el perro junto con su dueño.
func (s *Service) Create(ctx context.Context, in CreateInput) (Dog, owners.Owner, error) {
	if err := validateNewDog(in); err != nil {
		return Dog{}, owners.Owner{}, err
	}

	if _, err := s.owners.GetByID(ctx, in.OwnerID); err != nil {
		return Dog{}, owners.Owner{}, err
	}

	d, err := s.repo.Create(ctx, newDog(in, s.now()))
	if err != nil {
		return Dog{}, owners.Owner{}, err
	}

	owner, err := s.owners.GetByDogID(ctx, d.ID)
	if err != nil {
		return Dog{}, owners.Owner{}, err
	}
	return d, owner, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Dog, owners.Owner, error) {
	d, err := s.validAndGet(ctx, id)
	if err != nil {
		return Dog{}, owners.Owner{}, err
	}

	owner, err := s.owners.GetByDogID(ctx, id)
	if err != nil {
		return Dog{}, owners.Owner{}, err
	}
	return d, owner, nil
}

// ListByOwner devuelve los perros del owner ordenados por fecha de
// registro ascendente. El orden lo impone el servicio, no el store.
func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]Dog, owners.Owner, error) {
	owner, err := s.owners.GetByID(ctx, ownerID)
	if err != nil {
		return nil, owners.Owner{}, err
	}

	list, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, owners.Owner{}, err
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].RegistrationTime.Before(list[j].RegistrationTime)
	})
	return list, owner, nil
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Dog, owners.Owner, error) {
	d, err := s.validAndGet(ctx, id)
	if err != nil {
		return Dog{}, owners.Owner{}, err
	}

	changed := false
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		d.Name = strings.TrimSpace(*in.Name)
		changed = true
	}
	if in.Weight != nil {
		d.Weight = *in.Weight
		changed = true
	}

	if changed {
		d, err = s.repo.Update(ctx, d)
		if err != nil {
			return Dog{}, owners.Owner{}, err
		}
	}

	owner, err := s.owners.GetByDogID(ctx, id)
	if err != nil {
		return Dog{}, owners.Owner{}, err
	}
	return d, owner, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.validAndGet(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) validAndGet(ctx context.Context, id int64) (Dog, error) {
	if id <= 0 {
		return Dog{}, fmt.Errorf("%w: dog id must be positive, got %d", ErrInvalidInput, id)
	}
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Dog{}, fmt.Errorf("%w: id=%d", ErrNotFound, id)
		}
		return Dog{}, err
	}
	return d, nil
}

func validateNewDog(in CreateInput) error {
	if strings.TrimSpace(in.Name) == "" || in.BirthDay.IsZero() ||
		in.Breed == "" || in.Color == "" || in.Gender == "" || in.Weight == nil {
		return fmt.Errorf("%w: all dog fields are required", ErrInvalidInput)
	}
	if !in.Breed.Valid() {
		return fmt.Errorf("%w: unknown breed %q", ErrInvalidInput, in.Breed)
	}
	if !in.Color.Valid() {
		return fmt.Errorf("%w: unknown color %q", ErrInvalidInput, in.Color)
	}
	if !in.Gender.Valid() {
		return fmt.Errorf("%w: unknown gender %q", ErrInvalidInput, in.Gender)
	}
	return nil
}
