package ledger

import "github.com/KirkDiggler/cuentasclaras/internal/models"

// AddEntryInput contains parameters for adding a ledger entry
type AddEntryInput struct {
	Entry *models.LedgerEntry
}

// GetEntriesForSessionInput contains parameters for listing a session's movements
type GetEntriesForSessionInput struct {
	SessionID string

	// PlayerID narrows the list to one player when set
	PlayerID string

	// Limit keeps only the most recent entries when positive
	Limit int
}

// GetEntriesForSessionOutput contains a session's movements, oldest first
type GetEntriesForSessionOutput struct {
	Entries []*models.LedgerEntry
}

// DeleteEntriesInput contains parameters for deleting a session's movements
type DeleteEntriesInput struct {
	SessionID string
}
