package models

// RankingEntry is one line of the standings
type RankingEntry struct {
	// Rank is 1-based; the lowest remaining money ranks first
	Rank int

	PlayerID   string
	PlayerName string

	// Total is the player's effective wallet total
	Total int

	// Stars is carried for display only
	Stars int
}
