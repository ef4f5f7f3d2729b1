package owners

// Response es la forma de salida del owner. Igual que en el resto del
// sistema: sin email, con la lista derivada de IDs de perros.
type Response struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Dogs []int64 `json:"dogs"`
}

func ToResponse(o Owner) Response {
	dogs := o.DogIDs
	if dogs == nil {
		dogs = []int64{}
	}
	return Response{
		ID:   o.ID,
		Name: o.Name,
		Dogs: dogs,
	}
}
