package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/cuentasclaras/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/cuentasclaras/internal/models"
)

// Repository stores live session snapshots and channel lobbies
type Repository interface {
	// SaveSession persists a session snapshot
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// GetSessionByChannel retrieves the session hosted in a channel
	GetSessionByChannel(ctx context.Context, input *GetSessionByChannelInput) (*models.Session, error)

	// DeleteSession removes a session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// GetActiveSessions retrieves every session whose countdown is still running
	GetActiveSessions(ctx context.Context, input *GetActiveSessionsInput) (*GetActiveSessionsOutput, error)

	// SaveLobby persists a channel lobby
	SaveLobby(ctx context.Context, input *SaveLobbyInput) error

	// GetLobby retrieves the lobby open in a channel
	GetLobby(ctx context.Context, input *GetLobbyInput) (*models.Lobby, error)

	// DeleteLobby removes a channel lobby
	DeleteLobby(ctx context.Context, input *DeleteLobbyInput) error
}
