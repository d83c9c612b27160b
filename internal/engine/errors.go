package engine

// EngineError is a custom error type for turn engine errors
type EngineError string

// Error implements the error interface
func (e EngineError) Error() string {
	return string(e)
}

const (
	// Construction errors
	ErrNilConfig          EngineError = "config cannot be nil"
	ErrNilBoard           EngineError = "board cannot be nil"
	ErrNilMissions        EngineError = "mission selector cannot be nil"
	ErrNilDenominations   EngineError = "denomination catalog cannot be nil"
	ErrNilRoller          EngineError = "roller cannot be nil"
	ErrNilSnapshot        EngineError = "snapshot cannot be nil"
	ErrInvalidPlayerCount EngineError = "a session needs between 1 and 4 players"
	ErrInvalidDifficulty  EngineError = "invalid difficulty"
	ErrNoBankEvents       EngineError = "at least one bank event is required"
	ErrInvalidTurn        EngineError = "turn does not point at a player"

	// Play errors
	ErrInvalidPhase        EngineError = "action not allowed in the current phase"
	ErrTimeExpired         EngineError = "session time is over"
	ErrUnknownDenomination EngineError = "unknown denomination"
)
