package dogs

import (
	"testing"
	"time"

	"doggohub/internal/domain/owners"
)

// El round-trip request -> entidad -> respuesta debe conservar todos los
// campos que vienen en la petición de creación.
func TestMapper_RoundTripPreservesRequestFields(t *testing.T) {
	weight := 30
	in := CreateInput{
		Name:     "Vegas",
		BirthDay: time.Date(2019, 5, 15, 0, 0, 0, 0, time.UTC),
		Breed:    BreedLabrador,
		Color:    ColorWhite,
		Gender:   GenderMale,
		Weight:   &weight,
		OwnerID:  1,
	}
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)

	d := newDog(in, now)
	if !d.RegistrationTime.Equal(now) {
		t.Fatalf("expected registration time from context, got %v", d.RegistrationTime)
	}
	if d.OwnerID != 1 {
		t.Fatalf("expected owner id 1, got %d", d.OwnerID)
	}

	resp := ToResponse(d, owners.Owner{ID: 1, Name: "Boris"})

	if resp.Name != in.Name {
		t.Errorf("name: expected %q, got %q", in.Name, resp.Name)
	}
	if resp.BirthDay != "2019-05-15" {
		t.Errorf("birthDay: expected 2019-05-15, got %s", resp.BirthDay)
	}
	if resp.Breed != in.Breed || resp.Color != in.Color || resp.Gender != in.Gender {
		t.Errorf("enums changed: %+v", resp)
	}
	if resp.Weight != *in.Weight {
		t.Errorf("weight: expected %d, got %d", *in.Weight, resp.Weight)
	}
	if resp.Owner.ID != 1 {
		t.Errorf("expected embedded owner id 1, got %d", resp.Owner.ID)
	}
}

func TestMapper_ResponseDogListNeverNull(t *testing.T) {
	resp := ToResponse(Dog{ID: 3, Name: "Rex"}, owners.Owner{ID: 1})
	if resp.Owner.Dogs == nil {
		t.Fatalf("expected empty slice for owner dogs, got nil")
	}
}
