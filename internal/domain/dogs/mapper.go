package dogs

import (
	"time"

	"doggohub/internal/domain/owners"
)

const dateLayout = "2006-01-02"

type Response struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	BirthDay string          `json:"birthDay"`
	Breed    Breed           `json:"breed"`
	Color    Color           `json:"color"`
	Gender   Gender          `json:"gender"`
	Weight   int             `json:"weight"`
	Owner    owners.Response `json:"owner"`
}

// newDog arma la entidad desde la entrada de creación; el timestamp de
// registro lo aporta el servicio. Aquí no hay validación.
func newDog(in CreateInput, now time.Time) Dog {
	weight := 0
	if in.Weight != nil {
		weight = *in.Weight
	}
	return Dog{
		Name:             in.Name,
		BirthDay:         in.BirthDay,
		Breed:            in.Breed,
		Color:            in.Color,
		Gender:           in.Gender,
		Weight:           weight,
		RegistrationTime: now,
		OwnerID:          in.OwnerID,
	}
}

func ToResponse(d Dog, owner owners.Owner) Response {
	return Response{
		ID:       d.ID,
		Name:     d.Name,
		BirthDay: d.BirthDay.Format(dateLayout),
		Breed:    d.Breed,
		Color:    d.Color,
		Gender:   d.Gender,
		Weight:   d.Weight,
		Owner:    owners.ToResponse(owner),
	}
}
