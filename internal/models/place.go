package models

// Place is a thematic category assigned to board cells
type Place string

const (
	// PlaceSupermarket is the red cell
	PlaceSupermarket Place = "supermercado"

	// PlaceFair is the yellow cell (open-air market)
	PlaceFair Place = "feria"

	// PlaceBakery is the green cell
	PlaceBakery Place = "panaderia"

	// PlaceBank is the blue cell; landing here triggers a bank event instead of a mission
	PlaceBank Place = "banco"

	// PlaceCornerShop is the purple cell
	PlaceCornerShop Place = "almacen"

	// PlaceBookshop is the orange cell
	PlaceBookshop Place = "libreria"
)

// PlaceOrder is the colour order of the die faces and of the board cells
var PlaceOrder = []Place{
	PlaceSupermarket,
	PlaceFair,
	PlaceBakery,
	PlaceBank,
	PlaceCornerShop,
	PlaceBookshop,
}

// placeInfo holds display metadata for a place
type placeInfo struct {
	name  string
	color string
	emoji string
}

var places = map[Place]placeInfo{
	PlaceSupermarket: {name: "Supermercado", color: "rojo", emoji: "🟥"},
	PlaceFair:        {name: "Feria", color: "amarillo", emoji: "🟨"},
	PlaceBakery:      {name: "Panadería", color: "verde", emoji: "🟩"},
	PlaceBank:        {name: "Banco", color: "azul", emoji: "🟦"},
	PlaceCornerShop:  {name: "Almacén", color: "morado", emoji: "🟪"},
	PlaceBookshop:    {name: "Librería", color: "naranjo", emoji: "🟧"},
}

// IsValid reports whether p is one of the known places
func (p Place) IsValid() bool {
	_, ok := places[p]
	return ok
}

// IsBank reports whether landing on p triggers a bank event
func (p Place) IsBank() bool {
	return p == PlaceBank
}

// DisplayName returns the human-readable place name
func (p Place) DisplayName() string {
	if info, ok := places[p]; ok {
		return info.name
	}
	return string(p)
}

// Color returns the colour name of the die face for p
func (p Place) Color() string {
	return places[p].color
}

// Emoji returns the square emoji used to draw p
func (p Place) Emoji() string {
	if info, ok := places[p]; ok {
		return info.emoji
	}
	return "⬜"
}

// Difficulty is the session-wide mission tier
type Difficulty string

const (
	// DifficultyBasic selects simple additions and subtractions
	DifficultyBasic Difficulty = "basico"

	// DifficultyIntermediate adds multiplications and change-making
	DifficultyIntermediate Difficulty = "intermedio"

	// DifficultyAdvanced uses mixed operations
	DifficultyAdvanced Difficulty = "avanzado"
)

// IsValid reports whether d is one of the three tiers
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBasic, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// MissionKind is the arithmetic category of a mission
type MissionKind string

const (
	MissionKindAddition       MissionKind = "suma"
	MissionKindSubtraction    MissionKind = "resta"
	MissionKindMultiplication MissionKind = "multiplicacion"
	MissionKindMixed          MissionKind = "mixta"
)
