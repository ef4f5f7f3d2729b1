package dogs

import (
	"context"

	"doggohub/internal/domain/owners"
)

type Repository interface {
	// Create persiste el perro y su fila de asociación dog_owners en una
	// sola transacción, y devuelve la fila tal como quedó en el store.
	Create(ctx context.Context, d Dog) (Dog, error)
	GetByID(ctx context.Context, id int64) (Dog, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]Dog, error)
	ListIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error)
	// Update solo escribe name y weight; el resto es inmutable.
	Update(ctx context.Context, d Dog) (Dog, error)
	Delete(ctx context.Context, id int64) error
}

// OwnerSource es lo que el servicio necesita del módulo owners: validar
// existencia y resolver el dueño (con su lista de perros al día) para
// incrustarlo en las respuestas.
type OwnerSource interface {
	GetByID(ctx context.Context, id int64) (owners.Owner, error)
	GetByDogID(ctx context.Context, dogID int64) (owners.Owner, error)
}
