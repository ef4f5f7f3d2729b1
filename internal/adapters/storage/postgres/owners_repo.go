package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"doggohub/internal/domain/owners"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

// Create inserta y relee la fila persistida. La unicidad del email la
// garantiza el índice único de la tabla; el 23505 se traduce aquí.
func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO owners (name, email)
		VALUES ($1, $2)
		RETURNING id
	`, o.Name, o.Email).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return owners.Owner{}, owners.ErrEmailTaken
		}
		return owners.Owner{}, fmt.Errorf("insert owner: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *OwnersRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email
		FROM owners
		WHERE id = $1
	`, id)

	var o owners.Owner
	if err := row.Scan(&o.ID, &o.Name, &o.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return owners.Owner{}, owners.ErrNotFound
		}
		return owners.Owner{}, fmt.Errorf("select owner: %w", err)
	}
	return o, nil
}

func (r *OwnersRepo) GetByDogID(ctx context.Context, dogID int64) (owners.Owner, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT o.id, o.name, o.email
		FROM owners o
		JOIN dog_owners dow ON o.id = dow.owner_id
		WHERE dow.dog_id = $1
	`, dogID)

	var o owners.Owner
	if err := row.Scan(&o.ID, &o.Name, &o.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return owners.Owner{}, owners.ErrNotFound
		}
		return owners.Owner{}, fmt.Errorf("select owner by dog: %w", err)
	}
	return o, nil
}

func (r *OwnersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email
		FROM owners
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select owners: %w", err)
	}
	defer rows.Close()

	out := make([]owners.Owner, 0)
	for rows.Next() {
		var o owners.Owner
		if err := rows.Scan(&o.ID, &o.Name, &o.Email); err != nil {
			return nil, fmt.Errorf("scan owner: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *OwnersRepo) Update(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE owners
		SET name = $2, email = $3
		WHERE id = $1
	`, o.ID, o.Name, o.Email)
	if err != nil {
		if isUniqueViolation(err) {
			return owners.Owner{}, owners.ErrEmailTaken
		}
		return owners.Owner{}, fmt.Errorf("update owner: %w", err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return owners.Owner{}, owners.ErrNotFound
	}

	return r.GetByID(ctx, o.ID)
}

// Delete no verifica existencia previa; eso es responsabilidad del servicio.
func (r *OwnersRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM owners WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete owner: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
