package health

import "time"

// Record es una entrada de historia clínica de un perro. Visit la asigna
// el servidor al crear el registro; el caller no la manda.
type Record struct {
	ID    int64
	DogID int64
	Text  string
	Visit time.Time // solo fecha
}
