package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"doggohub/internal/domain/health"
)

type HealthRepo struct {
	db *sql.DB
}

func NewHealthRepo(db *sql.DB) *HealthRepo {
	return &HealthRepo{db: db}
}

func (r *HealthRepo) Create(ctx context.Context, rec health.Record) (health.Record, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO health_records (dog_id, text, visit)
		VALUES ($1, $2, $3)
		RETURNING id
	`, rec.DogID, rec.Text, rec.Visit).Scan(&id)
	if err != nil {
		return health.Record{}, fmt.Errorf("insert health record: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *HealthRepo) GetByID(ctx context.Context, id int64) (health.Record, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, dog_id, text, visit
		FROM health_records
		WHERE id = $1
	`, id)

	var rec health.Record
	if err := row.Scan(&rec.ID, &rec.DogID, &rec.Text, &rec.Visit); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return health.Record{}, health.ErrNotFound
		}
		return health.Record{}, fmt.Errorf("select health record: %w", err)
	}
	return rec, nil
}

// ListByDog conserva el orden de retorno del store; el contrato no pide
// orden cronológico.
func (r *HealthRepo) ListByDog(ctx context.Context, dogID int64) ([]health.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, dog_id, text, visit
		FROM health_records
		WHERE dog_id = $1
	`, dogID)
	if err != nil {
		return nil, fmt.Errorf("select health records by dog: %w", err)
	}
	defer rows.Close()

	out := make([]health.Record, 0)
	for rows.Next() {
		var rec health.Record
		if err := rows.Scan(&rec.ID, &rec.DogID, &rec.Text, &rec.Visit); err != nil {
			return nil, fmt.Errorf("scan health record: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *HealthRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM health_records WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete health record: %w", err)
	}
	return nil
}
