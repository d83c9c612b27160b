package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/cuentasclaras/internal/services/game Service

import "context"

// Service defines the interface for game operations
type Service interface {
	// OpenLobby opens a lobby in a channel with its creator as the first player
	OpenLobby(ctx context.Context, input *OpenLobbyInput) (*OpenLobbyOutput, error)

	// JoinLobby adds a player to a channel's lobby
	JoinLobby(ctx context.Context, input *JoinLobbyInput) (*JoinLobbyOutput, error)

	// StartSession turns the lobby into a running session
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// Roll throws the colour die for the active player
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)

	// AcceptMission opens the amount builder for the offered mission
	AcceptMission(ctx context.Context, input *AcceptMissionInput) (*AcceptMissionOutput, error)

	// RequestAnotherMission swaps the offered mission for another at the same place
	RequestAnotherMission(ctx context.Context, input *RequestAnotherMissionInput) (*RequestAnotherMissionOutput, error)

	// AdjustBuilder adds or removes coins and notes from the builder tray
	AdjustBuilder(ctx context.Context, input *AdjustBuilderInput) (*AdjustBuilderOutput, error)

	// ClearBuilder empties the builder tray
	ClearBuilder(ctx context.Context, input *ClearBuilderInput) (*ClearBuilderOutput, error)

	// SubmitAmount resolves the mission with a typed amount, or the tray when no amount is given
	SubmitAmount(ctx context.Context, input *SubmitAmountInput) (*SubmitAmountOutput, error)

	// SkipTurn passes the turn to the next player
	SkipTurn(ctx context.Context, input *SkipTurnInput) (*SkipTurnOutput, error)

	// GetSession returns the current snapshot for a channel
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// GetRanking returns the standings for a channel
	GetRanking(ctx context.Context, input *GetRankingInput) (*GetRankingOutput, error)

	// GetLedger returns the recent money movements of a session
	GetLedger(ctx context.Context, input *GetLedgerInput) (*GetLedgerOutput, error)

	// EndSession stops a session, discards its state and returns the final standings
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// Resume restarts every session that was still running when the process stopped
	Resume(ctx context.Context) error

	// Close stops every running session without discarding state
	Close()
}
