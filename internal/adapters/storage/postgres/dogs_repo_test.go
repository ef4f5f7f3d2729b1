package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"doggohub/internal/domain/dogs"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func dogRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "birth_day", "breed", "color", "gender", "weight", "reg_time", "owner_id",
	})
}

func TestDogsRepo_Create_InsertsDogAndLinkInOneTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	repo := NewDogsRepo(db)

	birth := time.Date(2019, 5, 15, 0, 0, 0, 0, time.UTC)
	reg := time.Date(2023, 1, 2, 10, 30, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO dogs`).
		WithArgs("Vegas", birth, "LABRADOR", "WHITE", "MALE", 30, reg).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectExec(`INSERT INTO dog_owners`).
		WithArgs(int64(5), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT d.id`).
		WithArgs(int64(5)).
		WillReturnRows(dogRows().AddRow(int64(5), "Vegas", birth, "LABRADOR", "WHITE", "MALE", 30, reg, int64(1)))

	d, err := repo.Create(context.Background(), dogs.Dog{
		Name:             "Vegas",
		BirthDay:         birth,
		Breed:            dogs.BreedLabrador,
		Color:            dogs.ColorWhite,
		Gender:           dogs.GenderMale,
		Weight:           30,
		RegistrationTime: reg,
		OwnerID:          1,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if d.ID != 5 || d.OwnerID != 1 || d.Breed != dogs.BreedLabrador {
		t.Fatalf("unexpected dog: %+v", d)
	}

	if mockErr := mock.ExpectationsWereMet(); mockErr != nil {
		t.Fatalf("unmet sqlmock expectations: %v", mockErr)
	}
}

func TestDogsRepo_Create_LinkFailureRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	repo := NewDogsRepo(db)

	birth := time.Date(2019, 5, 15, 0, 0, 0, 0, time.UTC)
	reg := time.Date(2023, 1, 2, 10, 30, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO dogs`).
		WithArgs("Vegas", birth, "LABRADOR", "WHITE", "MALE", 30, reg).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectExec(`INSERT INTO dog_owners`).
		WithArgs(int64(5), int64(1)).
		WillReturnError(errors.New("owner vanished"))
	mock.ExpectRollback()

	_, err = repo.Create(context.Background(), dogs.Dog{
		Name:             "Vegas",
		BirthDay:         birth,
		Breed:            dogs.BreedLabrador,
		Color:            dogs.ColorWhite,
		Gender:           dogs.GenderMale,
		Weight:           30,
		RegistrationTime: reg,
		OwnerID:          1,
	})
	if err == nil {
		t.Fatal("expected error when the association insert fails")
	}

	if mockErr := mock.ExpectationsWereMet(); mockErr != nil {
		t.Fatalf("unmet sqlmock expectations: %v", mockErr)
	}
}

func TestDogsRepo_GetByID_NoRowsIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	repo := NewDogsRepo(db)

	mock.ExpectQuery(`SELECT d.id`).
		WithArgs(int64(42)).
		WillReturnRows(dogRows())

	_, err = repo.GetByID(context.Background(), 42)
	if !errors.Is(err, dogs.ErrNotFound) {
		t.Fatalf("expected dogs.ErrNotFound, got %v", err)
	}
}

func TestDogsRepo_Update_ZeroRowsAffectedIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	repo := NewDogsRepo(db)

	mock.ExpectExec(`UPDATE dogs`).
		WithArgs(int64(9), "Rex", 25).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err = repo.Update(context.Background(), dogs.Dog{ID: 9, Name: "Rex", Weight: 25})
	if !errors.Is(err, dogs.ErrNotFound) {
		t.Fatalf("expected dogs.ErrNotFound, got %v", err)
	}
}
