package models

// DenominationKey identifies a coin or note. "101" is the old $100 coin.
type DenominationKey string

// DenominationKind separates coins from notes for display
type DenominationKind string

const (
	DenominationKindCoin DenominationKind = "moneda"
	DenominationKindNote DenominationKind = "billete"
)

// Denomination is a currency unit with a fixed face value
type Denomination struct {
	Key   DenominationKey
	Value int
	Label string
	Kind  DenominationKind
	Image string
}

// Wallet maps each denomination to the number of units held
type Wallet map[DenominationKey]int
