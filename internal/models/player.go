package models

// PlayerSetup is what the setup screen provides for each player
type PlayerSetup struct {
	// ID is the external identifier (a Discord user ID when played in Discord)
	ID string

	// Name is the display name
	Name string

	// Color is the token colour
	Color string

	// Avatar is the token image reference
	Avatar string
}

// Player is a participant with board and money progress
type Player struct {
	ID     string
	Name   string
	Color  string
	Avatar string

	// Position is the cell index on the track
	Position int

	// Wallet is the starting composition of the player's money
	Wallet Wallet

	// Stars counts completed missions
	Stars int

	// WalletTotalOverride supersedes the wallet sum once a direct debit or credit is applied
	WalletTotalOverride *int
}
