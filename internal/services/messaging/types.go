package messaging

import (
	"github.com/KirkDiggler/cuentasclaras/internal/dice"
	"github.com/KirkDiggler/cuentasclaras/internal/models"
	"github.com/KirkDiggler/cuentasclaras/internal/money"
)

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Roller picks among equivalent phrasings; defaults to a random roller
	Roller dice.Roller

	// Formatter renders amounts; defaults to es-CL
	Formatter *money.Formatter
}

// GetEventMessageInput contains the event to describe
type GetEventMessageInput struct {
	Event *models.Event

	// PlayerName is the display name of Event.PlayerID
	PlayerName string
}

// GetEventMessageOutput contains the modal-style message
type GetEventMessageOutput struct {
	Title   string
	Message string
}

// GetJoinLobbyMessageInput contains parameters for a join message
type GetJoinLobbyMessageInput struct {
	PlayerName string

	// AlreadyJoined indicates the player was in the lobby before
	AlreadyJoined bool

	// PlayerCount is the lobby size after joining
	PlayerCount int
}

// GetJoinLobbyMessageOutput contains the join message
type GetJoinLobbyMessageOutput struct {
	Message string
}

// GetTurnMessageInput contains the turn state to prompt for
type GetTurnMessageInput struct {
	PlayerName string
	Phase      models.Phase

	// Place is the place being resolved, empty when idle
	Place models.Place
}

// GetTurnMessageOutput contains the prompt
type GetTurnMessageOutput struct {
	Message string
}

// GetTimeUpMessageInput contains the final standings
type GetTimeUpMessageInput struct {
	Ranking []models.RankingEntry
}

// GetTimeUpMessageOutput contains the closing message
type GetTimeUpMessageOutput struct {
	Title   string
	Message string
}

// GetErrorMessageInput contains the error to explain
type GetErrorMessageInput struct {
	Err error
}

// GetErrorMessageOutput contains the explanation
type GetErrorMessageOutput struct {
	Message string
}
