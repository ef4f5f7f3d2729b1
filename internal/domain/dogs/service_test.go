package dogs

import (
	"context"
	"errors"
	"testing"
	"time"

	"doggohub/internal/domain/owners"
)

// -------------------------
// Test repo y owner source
// -------------------------

type testRepo struct {
	byID   map[int64]Dog
	nextID int64
	writes int
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Dog{}, nextID: 1}
}

func (r *testRepo) Create(ctx context.Context, d Dog) (Dog, error) {
	r.writes++
	d.ID = r.nextID
	r.nextID++
	r.byID[d.ID] = d
	return d, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Dog, error) {
	d, ok := r.byID[id]
	if !ok {
		return Dog{}, ErrNotFound
	}
	return d, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerID int64) ([]Dog, error) {
	out := make([]Dog, 0)
	for _, d := range r.byID {
		if d.OwnerID == ownerID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *testRepo) ListIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	list, _ := r.ListByOwner(ctx, ownerID)
	ids := make([]int64, 0, len(list))
	for _, d := range list {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

func (r *testRepo) Update(ctx context.Context, d Dog) (Dog, error) {
	r.writes++
	current, ok := r.byID[d.ID]
	if !ok {
		return Dog{}, ErrNotFound
	}
	current.Name = d.Name
	current.Weight = d.Weight
	r.byID[d.ID] = current
	return current, nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	r.writes++
	delete(r.byID, id)
	return nil
}

type testOwners struct {
	byID map[int64]owners.Owner
	repo *testRepo
}

func (o *testOwners) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	if id <= 0 {
		return owners.Owner{}, owners.ErrInvalidInput
	}
	owner, ok := o.byID[id]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	owner.DogIDs, _ = o.repo.ListIDsByOwner(ctx, id)
	return owner, nil
}

func (o *testOwners) GetByDogID(ctx context.Context, dogID int64) (owners.Owner, error) {
	d, err := o.repo.GetByID(ctx, dogID)
	if err != nil {
		return owners.Owner{}, owners.ErrNotFound
	}
	return o.GetByID(ctx, d.OwnerID)
}

func newFixture() (*Service, *testRepo) {
	repo := newTestRepo()
	src := &testOwners{
		byID: map[int64]owners.Owner{1: {ID: 1, Name: "Boris", Email: "b@x.ru"}},
		repo: repo,
	}
	return NewService(repo, src), repo
}

func validInput() CreateInput {
	weight := 30
	return CreateInput{
		Name:     "Vegas",
		BirthDay: time.Date(2019, 5, 15, 0, 0, 0, 0, time.UTC),
		Breed:    BreedLabrador,
		Color:    ColorWhite,
		Gender:   GenderMale,
		Weight:   &weight,
		OwnerID:  1,
	}
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_MissingFieldFailsWithoutWrites(t *testing.T) {
	svc, repo := newFixture()

	cases := map[string]func(*CreateInput){
		"name":     func(in *CreateInput) { in.Name = "" },
		"birthDay": func(in *CreateInput) { in.BirthDay = time.Time{} },
		"breed":    func(in *CreateInput) { in.Breed = "" },
		"color":    func(in *CreateInput) { in.Color = "" },
		"gender":   func(in *CreateInput) { in.Gender = "" },
		"weight":   func(in *CreateInput) { in.Weight = nil },
	}

	for field, clear := range cases {
		in := validInput()
		clear(&in)
		if _, _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("missing %s: expected ErrInvalidInput, got %v", field, err)
		}
	}
	if repo.writes != 0 {
		t.Fatalf("expected no store writes, got %d", repo.writes)
	}
}

func TestService_Create_UnknownEnumValue(t *testing.T) {
	svc, _ := newFixture()

	in := validInput()
	in.Breed = "DRAGON"
	if _, _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown breed, got %v", err)
	}
}

func TestService_Create_UnknownOwnerFailsWithoutInsert(t *testing.T) {
	svc, repo := newFixture()

	in := validInput()
	in.OwnerID = 42
	_, _, err := svc.Create(context.Background(), in)
	if !errors.Is(err, owners.ErrNotFound) {
		t.Fatalf("expected owners.ErrNotFound, got %v", err)
	}
	if repo.writes != 0 {
		t.Fatalf("expected no dog insert, got %d writes", repo.writes)
	}
}

func TestService_Create_SetsRegistrationTimeAndEmbedsOwner(t *testing.T) {
	svc, _ := newFixture()
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	d, owner, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if d.ID == 0 {
		t.Fatalf("expected generated id")
	}
	if !d.RegistrationTime.Equal(now) {
		t.Fatalf("expected registration time %v, got %v", now, d.RegistrationTime)
	}
	if owner.ID != 1 {
		t.Fatalf("expected embedded owner 1, got %+v", owner)
	}
	if len(owner.DogIDs) != 1 || owner.DogIDs[0] != d.ID {
		t.Fatalf("expected owner dog list [%d], got %v", d.ID, owner.DogIDs)
	}
}

func TestService_GetByID_RejectsNonPositiveID(t *testing.T) {
	svc, _ := newFixture()

	for _, id := range []int64{0, -1} {
		if _, _, err := svc.GetByID(context.Background(), id); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("id=%d: expected ErrInvalidInput, got %v", id, err)
		}
	}
}

func TestService_ListByOwner_SortedByRegistrationTime(t *testing.T) {
	svc, repo := newFixture()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	// inserción fuera de orden cronológico
	for i, offset := range []time.Duration{2 * time.Hour, 0, time.Hour} {
		in := validInput()
		in.Name = []string{"Rex", "Vegas", "Sharik"}[i]
		svc.now = func() time.Time { return base.Add(offset) }
		if _, _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("create #%d: %v", i, err)
		}
	}
	if repo.writes != 3 {
		t.Fatalf("expected 3 writes, got %d", repo.writes)
	}

	list, owner, err := svc.ListByOwner(context.Background(), 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if owner.ID != 1 {
		t.Fatalf("expected owner 1, got %+v", owner)
	}
	want := []string{"Vegas", "Sharik", "Rex"}
	if len(list) != len(want) {
		t.Fatalf("expected %d dogs, got %d", len(want), len(list))
	}
	for i := range want {
		if list[i].Name != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], list[i].Name)
		}
	}
}

func TestService_Update_NilFieldsLeaveDogUnchanged(t *testing.T) {
	svc, _ := newFixture()

	created, _, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, _, err := svc.Update(context.Background(), created.ID, UpdateInput{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated != created {
		t.Fatalf("expected dog unchanged, got %+v vs %+v", updated, created)
	}
}

func TestService_Update_OnlyNameAndWeight(t *testing.T) {
	svc, _ := newFixture()

	created, _, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	name := "Vegas II"
	weight := 33
	updated, _, err := svc.Update(context.Background(), created.ID, UpdateInput{Name: &name, Weight: &weight})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Vegas II" || updated.Weight != 33 {
		t.Fatalf("expected updated name/weight, got %+v", updated)
	}
	if updated.Breed != created.Breed || !updated.BirthDay.Equal(created.BirthDay) {
		t.Fatalf("immutable fields changed: %+v", updated)
	}
}

func TestService_Delete_ThenGetFails(t *testing.T) {
	svc, _ := newFixture()

	created, _, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, _, err := svc.GetByID(context.Background(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
