package engine

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/cuentasclaras/internal/board"
	"github.com/KirkDiggler/cuentasclaras/internal/common/clock"
	"github.com/KirkDiggler/cuentasclaras/internal/denomination"
	"github.com/KirkDiggler/cuentasclaras/internal/dice"
	"github.com/KirkDiggler/cuentasclaras/internal/missions"
	"github.com/KirkDiggler/cuentasclaras/internal/models"
)

const (
	// DefaultStepInterval is the movement cadence between cells
	DefaultStepInterval = 220 * time.Millisecond

	DefaultMinutes = 45
	MinMinutes     = 5
	MaxMinutes     = 60

	MaxPlayers = 4
)

// DefaultColors are handed out to players who do not pick one
var DefaultColors = []string{"#f87171", "#60a5fa", "#34d399", "#fbbf24"}

// BankEvent is one face of the bank draw
type BankEvent struct {
	Reason models.LedgerReason

	// Delta is applied to the effective total; debits are negative
	Delta int
}

// DefaultBankEvents are drawn uniformly when a token lands on the bank
var DefaultBankEvents = []BankEvent{
	{Reason: models.LedgerReasonBankCommission, Delta: -1000},
	{Reason: models.LedgerReasonBankCorrection, Delta: 1500},
	{Reason: models.LedgerReasonBankMaintenance, Delta: -500},
}

// Config holds everything a game needs to start
type Config struct {
	// SessionID, ChannelID and CreatorID are copied into snapshots
	SessionID string
	ChannelID string
	CreatorID string

	Board         *board.Topology
	Missions      missions.Selector
	Denominations *denomination.Catalog
	Roller        dice.Roller

	// Clock stamps rolls; defaults to the system clock
	Clock clock.Clock

	Players    []models.PlayerSetup
	Minutes    int
	Difficulty models.Difficulty

	// BankEvents defaults to DefaultBankEvents
	BankEvents []BankEvent

	// StepInterval defaults to DefaultStepInterval
	StepInterval time.Duration
}

func (cfg *Config) validateDependencies() error {
	if cfg == nil {
		return ErrNilConfig
	}
	if cfg.Board == nil {
		return ErrNilBoard
	}
	if cfg.Missions == nil {
		return ErrNilMissions
	}
	if cfg.Denominations == nil {
		return ErrNilDenominations
	}
	if cfg.Roller == nil {
		return ErrNilRoller
	}
	return nil
}

// ClampMinutes applies the session length bounds; zero means the default
func ClampMinutes(minutes int) int {
	if minutes == 0 {
		return DefaultMinutes
	}
	if minutes < MinMinutes {
		return MinMinutes
	}
	if minutes > MaxMinutes {
		return MaxMinutes
	}
	return minutes
}

// normalizeDifficulty defaults an empty tier to basico
func normalizeDifficulty(d models.Difficulty) (models.Difficulty, error) {
	if d == "" {
		return models.DifficultyBasic, nil
	}
	if !d.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, d)
	}
	return d, nil
}

// newPlayers fills in setup defaults and hands out starting wallets
func newPlayers(setups []models.PlayerSetup, start int, catalog *denomination.Catalog) ([]*models.Player, error) {
	if len(setups) < 1 || len(setups) > MaxPlayers {
		return nil, ErrInvalidPlayerCount
	}

	players := make([]*models.Player, 0, len(setups))
	for i, s := range setups {
		p := &models.Player{
			ID:       s.ID,
			Name:     s.Name,
			Color:    s.Color,
			Avatar:   s.Avatar,
			Position: start,
			Wallet:   catalog.StartingWallet(),
		}
		if p.ID == "" {
			p.ID = fmt.Sprintf("jugador-%d", i+1)
		}
		if p.Name == "" {
			p.Name = fmt.Sprintf("Jugador %d", i+1)
		}
		if p.Color == "" {
			p.Color = DefaultColors[i%len(DefaultColors)]
		}
		players = append(players, p)
	}
	return players, nil
}
