package health

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"doggohub/internal/domain/dogs"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("health record not found")
)

type Service struct {
	repo Repository
	dogs DogSource
	now  func() time.Time
}

func NewService(repo Repository, dogSrc DogSource) *Service {
	return &Service{
		repo: repo,
		dogs: dogSrc,
		now:  time.Now,
	}
}

type CreateInput struct {
	DogID int64
	Text  string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Record, error) {
	if strings.TrimSpace(in.Text) == "" {
		return Record{}, fmt.Errorf("%w: record text is required", ErrInvalidInput)
	}

	if err := s.validDog(ctx, in.DogID); err != nil {
		return Record{}, err
	}

	return s.repo.Create(ctx, Record{
		DogID: in.DogID,
		Text:  strings.TrimSpace(in.Text),
		Visit: dateOnly(s.now()),
	})
}

func (s *Service) GetByID(ctx context.Context, id int64) (Record, error) {
	return s.validAndGet(ctx, id)
}

func (s *Service) ListByDog(ctx context.Context, dogID int64) ([]Record, error) {
	if err := s.validDog(ctx, dogID); err != nil {
		return nil, err
	}
	return s.repo.ListByDog(ctx, dogID)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.validAndGet(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) validAndGet(ctx context.Context, id int64) (Record, error) {
	if id <= 0 {
		return Record{}, fmt.Errorf("%w: record id must be positive, got %d", ErrInvalidInput, id)
	}
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Record{}, fmt.Errorf("%w: id=%d", ErrNotFound, id)
		}
		return Record{}, err
	}
	return rec, nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (s *Service) validDog(ctx context.Context, dogID int64) error {
	if dogID <= 0 {
		return fmt.Errorf("%w: dog id must be positive, got %d", ErrInvalidInput, dogID)
	}
	if _, err := s.dogs.GetByID(ctx, dogID); err != nil {
		if errors.Is(err, dogs.ErrNotFound) {
			return fmt.Errorf("%w: id=%d", dogs.ErrNotFound, dogID)
		}
		return err
	}
	return nil
}
