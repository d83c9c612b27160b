package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound  GameError = "no session in this channel"
	ErrSessionExists    GameError = "a session is already running in this channel"
	ErrLobbyNotFound    GameError = "no lobby open in this channel"
	ErrLobbyExists      GameError = "a lobby is already open in this channel"
	ErrLobbyFull        GameError = "lobby is at maximum capacity"
	ErrNotCreator       GameError = "only the creator can do that"
	ErrNotYourTurn      GameError = "it is not this player's turn"
	ErrServiceClosed    GameError = "service is shutting down"
	ErrInvalidInput     GameError = "invalid input"
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilSessionRepo   GameError = "session repository cannot be nil"
	ErrNilLedgerRepo    GameError = "ledger repository cannot be nil"
	ErrNilBoard         GameError = "board cannot be nil"
	ErrNilMissions      GameError = "mission catalog cannot be nil"
	ErrNilDenominations GameError = "denomination catalog cannot be nil"
	ErrNilDiceRoller    GameError = "dice roller cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
)
