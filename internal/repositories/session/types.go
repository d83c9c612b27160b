package session

import "github.com/KirkDiggler/cuentasclaras/internal/models"

type SaveSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	SessionID string
}

type GetSessionByChannelInput struct {
	ChannelID string
}

type DeleteSessionInput struct {
	SessionID string
}

type GetActiveSessionsInput struct {
}

type GetActiveSessionsOutput struct {
	Sessions []*models.Session
}

type SaveLobbyInput struct {
	Lobby *models.Lobby
}

type GetLobbyInput struct {
	ChannelID string
}

type DeleteLobbyInput struct {
	ChannelID string
}
