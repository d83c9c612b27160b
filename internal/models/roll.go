package models

import (
	"time"
)

// Roll records a colour die throw and the movement it caused
type Roll struct {
	// PlayerID is the player who rolled
	PlayerID string

	// Place is the colour the die landed on
	Place Place

	// From is the position before moving
	From int

	// Steps is how many cells the token has to advance
	Steps int

	// Timestamp is when the roll was made
	Timestamp time.Time
}
