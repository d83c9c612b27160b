package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/cuentasclaras/internal/repositories/ledger Repository

import (
	"context"
)

// Repository records the money movements of a session
type Repository interface {
	// AddEntry appends a movement to its session's ledger
	AddEntry(ctx context.Context, input *AddEntryInput) error

	// GetEntriesForSession retrieves a session's movements, oldest first
	GetEntriesForSession(ctx context.Context, input *GetEntriesForSessionInput) (*GetEntriesForSessionOutput, error)

	// DeleteEntries deletes every movement of a session
	DeleteEntries(ctx context.Context, input *DeleteEntriesInput) error
}
