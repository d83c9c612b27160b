package game

import (
	"time"

	"github.com/KirkDiggler/cuentasclaras/internal/board"
	"github.com/KirkDiggler/cuentasclaras/internal/common/clock"
	"github.com/KirkDiggler/cuentasclaras/internal/common/uuid"
	"github.com/KirkDiggler/cuentasclaras/internal/denomination"
	"github.com/KirkDiggler/cuentasclaras/internal/dice"
	"github.com/KirkDiggler/cuentasclaras/internal/engine"
	"github.com/KirkDiggler/cuentasclaras/internal/missions"
	"github.com/KirkDiggler/cuentasclaras/internal/models"
	ledgerRepo "github.com/KirkDiggler/cuentasclaras/internal/repositories/ledger"
	sessionRepo "github.com/KirkDiggler/cuentasclaras/internal/repositories/session"
)

// Config holds the configuration for the game service
type Config struct {
	// StepInterval is the movement cadence, defaults to the engine's
	StepInterval time.Duration

	// DefaultMinutes is used when a lobby is opened without a duration
	DefaultMinutes int

	// Repository dependencies
	SessionRepo sessionRepo.Repository
	LedgerRepo  ledgerRepo.Repository

	// Content
	Board         *board.Topology
	Missions      missions.Selector
	Denominations *denomination.Catalog

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Listener receives updates the players did not ask for, optional
	Listener Listener
}

// UpdateKind says why a session changed on its own
type UpdateKind string

const (
	// UpdateStep is one cell of movement
	UpdateStep UpdateKind = "step"

	// UpdateLanded is the end of movement; Landing says what happened
	UpdateLanded UpdateKind = "landed"

	// UpdateCountdown is a minute boundary, or every ten seconds in the last minute
	UpdateCountdown UpdateKind = "countdown"

	// UpdateTimeUp is the tick that ended the session
	UpdateTimeUp UpdateKind = "time_up"
)

// Update is pushed to the listener from a session's loop
type Update struct {
	Kind    UpdateKind
	Session *models.Session

	// Landing is set for UpdateLanded
	Landing *engine.Landing

	// Ranking is set for UpdateTimeUp
	Ranking []models.RankingEntry

	// Err is set when landing failed, e.g. a place without missions
	Err error
}

// Listener is notified on a session's goroutine; it must return quickly and
// must not call back into the Service
type Listener interface {
	SessionUpdated(update *Update)
}

// OpenLobbyInput contains parameters for opening a lobby
type OpenLobbyInput struct {
	ChannelID   string
	CreatorID   string
	CreatorName string
	Avatar      string

	// Minutes is clamped to the session bounds; zero uses the default
	Minutes    int
	Difficulty models.Difficulty
}

// OpenLobbyOutput contains the opened lobby
type OpenLobbyOutput struct {
	Lobby *models.Lobby
}

// JoinLobbyInput contains parameters for joining a lobby
type JoinLobbyInput struct {
	ChannelID  string
	PlayerID   string
	PlayerName string
	Avatar     string
}

// JoinLobbyOutput contains the updated lobby
type JoinLobbyOutput struct {
	Lobby *models.Lobby

	// AlreadyJoined is true when the player was in the lobby before
	AlreadyJoined bool
}

// StartSessionInput contains parameters for starting a session
type StartSessionInput struct {
	ChannelID   string
	RequesterID string
}

// StartSessionOutput contains the new session
type StartSessionOutput struct {
	Session *models.Session
}

// RollInput contains parameters for a roll
type RollInput struct {
	ChannelID string
	PlayerID  string
}

// RollOutput contains the roll and the session right after it
type RollOutput struct {
	Roll *models.Roll

	// Landing is set when the token did not need to move
	Landing *engine.Landing

	Session *models.Session
}

// AcceptMissionInput contains parameters for accepting a mission
type AcceptMissionInput struct {
	ChannelID string
	PlayerID  string
}

// AcceptMissionOutput contains the session with the builder open
type AcceptMissionOutput struct {
	Session *models.Session
}

// RequestAnotherMissionInput contains parameters for swapping a mission
type RequestAnotherMissionInput struct {
	ChannelID string
	PlayerID  string
}

// RequestAnotherMissionOutput contains the new mission
type RequestAnotherMissionOutput struct {
	Mission *models.Mission
	Session *models.Session
}

// AdjustBuilderInput contains parameters for changing the builder tray
type AdjustBuilderInput struct {
	ChannelID string
	PlayerID  string
	Key       models.DenominationKey
	Delta     int
}

// AdjustBuilderOutput contains the tray total after the change
type AdjustBuilderOutput struct {
	Total   int
	Session *models.Session
}

// ClearBuilderInput contains parameters for emptying the builder tray
type ClearBuilderInput struct {
	ChannelID string
	PlayerID  string
}

// ClearBuilderOutput contains the session with an empty tray
type ClearBuilderOutput struct {
	Session *models.Session
}

// SubmitAmountInput contains parameters for resolving a mission
type SubmitAmountInput struct {
	ChannelID string
	PlayerID  string

	// Amount is submitted as typed; nil submits the builder tray
	Amount *int
}

// SubmitAmountOutput contains the outcome
type SubmitAmountOutput struct {
	Event   *models.Event
	Session *models.Session
}

// SkipTurnInput contains parameters for skipping a turn
type SkipTurnInput struct {
	ChannelID string
	PlayerID  string
}

// SkipTurnOutput contains the outcome
type SkipTurnOutput struct {
	Event   *models.Event
	Session *models.Session
}

// GetSessionInput contains parameters for reading a session
type GetSessionInput struct {
	ChannelID string
}

// GetSessionOutput contains the snapshot
type GetSessionOutput struct {
	Session *models.Session
}

// GetRankingInput contains parameters for reading the standings
type GetRankingInput struct {
	ChannelID string
}

// GetRankingOutput contains the standings, lowest total first
type GetRankingOutput struct {
	Ranking []models.RankingEntry

	// Final is true once the countdown has run out
	Final bool
}

// GetLedgerInput contains parameters for reading money movements
type GetLedgerInput struct {
	ChannelID string

	// PlayerID narrows the list to one player when set
	PlayerID string

	// Limit keeps only the most recent entries when positive
	Limit int
}

// GetLedgerOutput contains the movements, oldest first
type GetLedgerOutput struct {
	Entries []*models.LedgerEntry
}

// EndSessionInput contains parameters for ending a session
type EndSessionInput struct {
	ChannelID   string
	RequesterID string
}

// EndSessionOutput contains the final standings
type EndSessionOutput struct {
	Ranking []models.RankingEntry
}
