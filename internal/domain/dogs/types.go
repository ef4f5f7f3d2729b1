package dogs

type Breed string

const (
	BreedLabrador       Breed = "LABRADOR"
	BreedGermanShepherd Breed = "GERMAN_SHEPHERD"
	BreedGoldenRetriever Breed = "GOLDEN_RETRIEVER"
	BreedBulldog        Breed = "BULLDOG"
	BreedPoodle         Breed = "POODLE"
	BreedBeagle         Breed = "BEAGLE"
	BreedDachshund      Breed = "DACHSHUND"
	BreedHusky          Breed = "HUSKY"
	BreedCorgi          Breed = "CORGI"
	BreedMongrel        Breed = "MONGREL"
)

type Color string

const (
	ColorWhite   Color = "WHITE"
	ColorBlack   Color = "BLACK"
	ColorBrown   Color = "BROWN"
	ColorGinger  Color = "GINGER"
	ColorGrey    Color = "GREY"
	ColorSpotted Color = "SPOTTED"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

func (b Breed) Valid() bool {
	switch b {
	case BreedLabrador, BreedGermanShepherd, BreedGoldenRetriever, BreedBulldog,
		BreedPoodle, BreedBeagle, BreedDachshund, BreedHusky, BreedCorgi, BreedMongrel:
		return true
	}
	return false
}

func (c Color) Valid() bool {
	switch c {
	case ColorWhite, ColorBlack, ColorBrown, ColorGinger, ColorGrey, ColorSpotted:
		return true
	}
	return false
}

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}
