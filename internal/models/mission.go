package models

// Mission is a word problem asking the player to build an amount of money
type Mission struct {
	// ID is the unique content identifier, e.g. "sup-basico-1"
	ID string

	// Place is where the mission is offered
	Place Place

	// Title is the short card title
	Title string

	// Description is the full statement shown to the player
	Description string

	// Amount is the value the player must build, in pesos
	Amount int

	// Difficulty is the tier the mission belongs to
	Difficulty Difficulty

	// Kind is the arithmetic category (content variety only)
	Kind MissionKind

	// Deduction is what is actually charged to the wallet when it differs from Amount
	Deduction *int
}

// AmountOwed returns the amount debited on success
func (m *Mission) AmountOwed() int {
	if m.Deduction != nil {
		return *m.Deduction
	}
	return m.Amount
}
