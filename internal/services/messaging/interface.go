package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/cuentasclaras/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetEventMessage returns the title and body shown after a turn-ending event
	GetEventMessage(ctx context.Context, input *GetEventMessageInput) (*GetEventMessageOutput, error)

	// GetJoinLobbyMessage returns a message for when a player joins a lobby
	GetJoinLobbyMessage(ctx context.Context, input *GetJoinLobbyMessageInput) (*GetJoinLobbyMessageOutput, error)

	// GetTurnMessage returns the prompt for the active player
	GetTurnMessage(ctx context.Context, input *GetTurnMessageInput) (*GetTurnMessageOutput, error)

	// GetTimeUpMessage returns the closing message with the final standings
	GetTimeUpMessage(ctx context.Context, input *GetTimeUpMessageInput) (*GetTimeUpMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
