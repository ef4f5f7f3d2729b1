package dogs

import "time"

// Dog es un perro registrado. OwnerID viene de la fila de asociación
// dog_owners que se crea junto con el perro. Tras la creación solo
// Name y Weight son mutables.
type Dog struct {
	ID   int64
	Name string

	BirthDay time.Time // solo fecha
	Breed    Breed
	Color    Color
	Gender   Gender
	Weight   int

	RegistrationTime time.Time
	OwnerID          int64
}
