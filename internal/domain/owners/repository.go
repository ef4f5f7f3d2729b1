package owners

import "context"

type Repository interface {
	// Create persiste el owner y devuelve la fila tal como quedó en el
	// store (con ID generado). Email duplicado -> ErrEmailTaken.
	Create(ctx context.Context, o Owner) (Owner, error)
	GetByID(ctx context.Context, id int64) (Owner, error)
	// GetByDogID resuelve el owner a través de la asociación dog_owners.
	GetByDogID(ctx context.Context, dogID int64) (Owner, error)
	List(ctx context.Context) ([]Owner, error)
	Update(ctx context.Context, o Owner) (Owner, error)
	Delete(ctx context.Context, id int64) error
}

// DogIDSource expone los IDs de perros de un owner sin importar el
// paquete dogs (evita el ciclo owners <-> dogs).
type DogIDSource interface {
	ListIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error)
}
