package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"doggohub/internal/domain/dogs"
)

type DogsRepo struct {
	db *sql.DB
}

func NewDogsRepo(db *sql.DB) *DogsRepo {
	return &DogsRepo{db: db}
}

// Create inserta el perro y su fila dog_owners en una transacción: no
// puede quedar un perro sin asociación si el segundo insert falla.
func (r *DogsRepo) Create(ctx context.Context, d dogs.Dog) (dogs.Dog, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return dogs.Dog{}, fmt.Errorf("begin insert dog: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO dogs (name, birth_day, breed, color, gender, weight, reg_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		d.Name,
		d.BirthDay,
		string(d.Breed),
		string(d.Color),
		string(d.Gender),
		d.Weight,
		d.RegistrationTime,
	).Scan(&id)
	if err != nil {
		return dogs.Dog{}, fmt.Errorf("insert dog: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO dog_owners (dog_id, owner_id)
		VALUES ($1, $2)
	`, id, d.OwnerID); err != nil {
		return dogs.Dog{}, fmt.Errorf("insert dog owner link: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return dogs.Dog{}, fmt.Errorf("commit insert dog: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *DogsRepo) GetByID(ctx context.Context, id int64) (dogs.Dog, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT d.id, d.name, d.birth_day, d.breed, d.color, d.gender, d.weight, d.reg_time, dow.owner_id
		FROM dogs d
		JOIN dog_owners dow ON d.id = dow.dog_id
		WHERE d.id = $1
	`, id)

	d, err := scanDog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dogs.Dog{}, dogs.ErrNotFound
		}
		return dogs.Dog{}, fmt.Errorf("select dog: %w", err)
	}
	return d, nil
}

func (r *DogsRepo) ListByOwner(ctx context.Context, ownerID int64) ([]dogs.Dog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT d.id, d.name, d.birth_day, d.breed, d.color, d.gender, d.weight, d.reg_time, dow.owner_id
		FROM dogs d
		JOIN dog_owners dow ON d.id = dow.dog_id
		WHERE dow.owner_id = $1
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("select dogs by owner: %w", err)
	}
	defer rows.Close()

	out := make([]dogs.Dog, 0)
	for rows.Next() {
		d, err := scanDog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan dog: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DogsRepo) ListIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT d.id
		FROM dogs d
		JOIN dog_owners dow ON d.id = dow.dog_id
		WHERE dow.owner_id = $1
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("select dog ids by owner: %w", err)
	}
	defer rows.Close()

	out := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan dog id: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *DogsRepo) Update(ctx context.Context, d dogs.Dog) (dogs.Dog, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE dogs
		SET name = $2, weight = $3
		WHERE id = $1
	`, d.ID, d.Name, d.Weight)
	if err != nil {
		return dogs.Dog{}, fmt.Errorf("update dog: %w", err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return dogs.Dog{}, dogs.ErrNotFound
	}

	return r.GetByID(ctx, d.ID)
}

// Delete borra la fila del perro; la asociación y sus registros de salud
// caen por los ON DELETE CASCADE del esquema.
func (r *DogsRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM dogs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete dog: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDog(row rowScanner) (dogs.Dog, error) {
	var d dogs.Dog
	var breed, color, gender string
	if err := row.Scan(
		&d.ID,
		&d.Name,
		&d.BirthDay,
		&breed,
		&color,
		&gender,
		&d.Weight,
		&d.RegistrationTime,
		&d.OwnerID,
	); err != nil {
		return dogs.Dog{}, err
	}
	d.Breed = dogs.Breed(breed)
	d.Color = dogs.Color(color)
	d.Gender = dogs.Gender(gender)
	return d, nil
}
