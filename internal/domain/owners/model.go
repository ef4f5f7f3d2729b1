package owners

// Owner es un dueño registrado. DogIDs es derivado: se recalcula desde
// la tabla de perros en cada lectura, nunca se persiste.
type Owner struct {
	ID    int64
	Name  string
	Email string

	DogIDs []int64
}
