package health

import (
	"context"

	"doggohub/internal/domain/dogs"
)

type Repository interface {
	// Create persiste el registro y devuelve la fila con el ID generado.
	Create(ctx context.Context, rec Record) (Record, error)
	GetByID(ctx context.Context, id int64) (Record, error)
	// ListByDog devuelve los registros en el orden en que los entrega el
	// store; aquí no se impone orden cronológico.
	ListByDog(ctx context.Context, dogID int64) ([]Record, error)
	Delete(ctx context.Context, id int64) error
}

// DogSource valida existencia de perros. Lo implementan los repos de
// dogs directamente, igual que el servicio original usaba el repositorio
// de perros y no su servicio.
type DogSource interface {
	GetByID(ctx context.Context, id int64) (dogs.Dog, error)
}
