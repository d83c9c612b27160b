// Package engine is the turn state machine: dice, movement, landing, missions,
// wallet accounting and the session countdown. It has no timers of its own; a
// caller drives movement through AdvanceOneStep and the countdown through Tick.
package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/KirkDiggler/cuentasclaras/internal/board"
	"github.com/KirkDiggler/cuentasclaras/internal/common/clock"
	"github.com/KirkDiggler/cuentasclaras/internal/denomination"
	"github.com/KirkDiggler/cuentasclaras/internal/dice"
	"github.com/KirkDiggler/cuentasclaras/internal/missions"
	"github.com/KirkDiggler/cuentasclaras/internal/models"
	"github.com/KirkDiggler/cuentasclaras/internal/wallet"
)

// Game is one session's state. It is not safe for concurrent use; the owner
// serializes every call.
type Game struct {
	board         *board.Topology
	missions      missions.Selector
	denominations *denomination.Catalog
	roller        dice.Roller
	clock         clock.Clock
	bankEvents    []BankEvent
	stepInterval  time.Duration

	session *models.Session
}

// Landing is what happened when a token stopped on a cell
type Landing struct {
	Place models.Place

	// Mission is offered for every place but the bank
	Mission *models.Mission

	// Event is set for bank landings
	Event *models.Event
}

// RollResult is the outcome of a roll
type RollResult struct {
	Roll *models.Roll

	// Landing is set when no movement was needed
	Landing *Landing
}

// StepResult is the outcome of one cell of movement
type StepResult struct {
	PlayerID  string
	Position  int
	Remaining int

	// Landing is set on the last step
	Landing *Landing
}

// New creates a game from setup input
func New(cfg *Config) (*Game, error) {
	if err := cfg.validateDependencies(); err != nil {
		return nil, err
	}

	difficulty, err := normalizeDifficulty(cfg.Difficulty)
	if err != nil {
		return nil, err
	}

	players, err := newPlayers(cfg.Players, cfg.Board.Start(), cfg.Denominations)
	if err != nil {
		return nil, err
	}

	g, err := newGame(cfg)
	if err != nil {
		return nil, err
	}

	duration := ClampMinutes(cfg.Minutes) * 60
	now := g.clock.Now()
	g.session = &models.Session{
		ID:              cfg.SessionID,
		ChannelID:       cfg.ChannelID,
		CreatorID:       cfg.CreatorID,
		Phase:           models.PhaseIdle,
		Difficulty:      difficulty,
		DurationSeconds: duration,
		TimeLeft:        duration,
		Players:         players,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	return g, nil
}

// Restore resumes a game from a snapshot; cfg.Players, Minutes and Difficulty are ignored
func Restore(cfg *Config, snapshot *models.Session) (*Game, error) {
	if err := cfg.validateDependencies(); err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, ErrNilSnapshot
	}
	if len(snapshot.Players) < 1 || len(snapshot.Players) > MaxPlayers {
		return nil, ErrInvalidPlayerCount
	}
	if snapshot.Turn < 0 || snapshot.Turn >= len(snapshot.Players) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTurn, snapshot.Turn)
	}

	g, err := newGame(cfg)
	if err != nil {
		return nil, err
	}
	g.session = copySession(snapshot)
	return g, nil
}

func newGame(cfg *Config) (*Game, error) {
	events := cfg.BankEvents
	if events == nil {
		events = DefaultBankEvents
	}
	if len(events) == 0 {
		return nil, ErrNoBankEvents
	}

	c := cfg.Clock
	if c == nil {
		c = &clock.DefaultClock{}
	}

	interval := cfg.StepInterval
	if interval <= 0 {
		interval = DefaultStepInterval
	}

	return &Game{
		board:         cfg.Board,
		missions:      cfg.Missions,
		denominations: cfg.Denominations,
		roller:        cfg.Roller,
		clock:         c,
		bankEvents:    append([]BankEvent(nil), events...),
		stepInterval:  interval,
	}, nil
}

// TickInterval is how often the owner should call AdvanceOneStep while moving
func (g *Game) TickInterval() time.Duration {
	return g.stepInterval
}

// Phase returns the current turn phase
func (g *Game) Phase() models.Phase {
	return g.session.Phase
}

// Expired reports whether the countdown has run out
func (g *Game) Expired() bool {
	return g.session.Expired()
}

// Roll throws the colour die for the active player. Rolling while a mission is
// offered or being built abandons it.
func (g *Game) Roll() (*RollResult, error) {
	if g.Expired() {
		return nil, ErrTimeExpired
	}
	if g.session.Phase == models.PhaseMoving {
		return nil, ErrInvalidPhase
	}

	player := g.session.ActivePlayer()
	places := g.board.Places()
	place := places[dice.Pick(g.roller, len(places))]
	steps := g.board.StepsToNext(player.Position, place)

	roll := &models.Roll{
		PlayerID:  player.ID,
		Place:     place,
		From:      player.Position,
		Steps:     steps,
		Timestamp: g.clock.Now(),
	}

	g.clearTurnState()
	g.session.LastRoll = roll
	g.session.LastEvent = nil
	g.session.ActivePlace = place
	g.touch()

	result := &RollResult{Roll: copyRoll(roll)}
	if steps == 0 {
		landing, err := g.land(place)
		if err != nil {
			return result, err
		}
		result.Landing = landing
		return result, nil
	}

	g.session.Phase = models.PhaseMoving
	g.session.StepsRemaining = steps
	return result, nil
}

// AdvanceOneStep moves the active token one cell. Movement already under way
// finishes even after the countdown runs out.
func (g *Game) AdvanceOneStep() (*StepResult, error) {
	if g.session.Phase != models.PhaseMoving {
		return nil, ErrInvalidPhase
	}

	player := g.session.ActivePlayer()
	player.Position = g.board.Normalize(player.Position + 1)
	g.session.StepsRemaining--
	g.touch()

	result := &StepResult{
		PlayerID:  player.ID,
		Position:  player.Position,
		Remaining: g.session.StepsRemaining,
	}
	if g.session.StepsRemaining > 0 {
		return result, nil
	}

	landing, err := g.land(g.session.ActivePlace)
	if err != nil {
		return result, err
	}
	result.Landing = landing
	return result, nil
}

// land resolves the cell the token stopped on
func (g *Game) land(place models.Place) (*Landing, error) {
	g.session.StepsRemaining = 0

	if place.IsBank() {
		event := g.applyBankEvent()
		return &Landing{Place: place, Event: copyEvent(event)}, nil
	}

	mission, err := g.missions.Select(place, g.session.Difficulty, g.roller)
	if err != nil {
		g.clearTurnState()
		return nil, fmt.Errorf("failed to draw mission for %s: %w", place, err)
	}

	g.session.Phase = models.PhaseMissionOffered
	g.session.Mission = mission
	return &Landing{Place: place, Mission: copyMission(mission)}, nil
}

func (g *Game) applyBankEvent() *models.Event {
	player := g.session.ActivePlayer()
	bank := g.bankEvents[dice.Pick(g.roller, len(g.bankEvents))]

	before := wallet.EffectiveTotal(g.denominations, player)
	after := before + bank.Delta
	if after < 0 {
		after = 0
	}
	player.WalletTotalOverride = &after

	event := &models.Event{
		Kind:     models.EventKindBank,
		PlayerID: player.ID,
		Amount:   after - before,
		Charged:  -bank.Delta,
		Reason:   bank.Reason,
		Balance:  after,
	}
	g.endTurn(event)
	return event
}

// AcceptMission opens the amount builder for the offered mission
func (g *Game) AcceptMission() error {
	if err := g.requirePhase(models.PhaseMissionOffered); err != nil {
		return err
	}

	g.session.Phase = models.PhaseBuilding
	g.session.Builder = models.Wallet{}
	g.touch()
	return nil
}

// RequestAnotherMission redraws a mission for the same place
func (g *Game) RequestAnotherMission() (*models.Mission, error) {
	if err := g.requirePhase(models.PhaseMissionOffered); err != nil {
		return nil, err
	}

	mission, err := g.missions.Select(g.session.ActivePlace, g.session.Difficulty, g.roller)
	if err != nil {
		return nil, fmt.Errorf("failed to draw mission for %s: %w", g.session.ActivePlace, err)
	}

	g.session.Mission = mission
	g.touch()
	return copyMission(mission), nil
}

// AdjustBuilder adds or removes coins or notes from the tray, never below zero
func (g *Game) AdjustBuilder(key models.DenominationKey, delta int) (int, error) {
	if err := g.requirePhase(models.PhaseBuilding); err != nil {
		return 0, err
	}
	if _, ok := g.denominations.Get(key); !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownDenomination, key)
	}

	g.session.Builder = wallet.Adjust(g.session.Builder, key, delta)
	g.touch()
	return wallet.TotalValue(g.denominations, g.session.Builder), nil
}

// ClearBuilder empties the tray
func (g *Game) ClearBuilder() error {
	if err := g.requirePhase(models.PhaseBuilding); err != nil {
		return err
	}

	g.session.Builder = models.Wallet{}
	g.touch()
	return nil
}

// BuilderTotal is the value currently on the tray
func (g *Game) BuilderTotal() int {
	return wallet.TotalValue(g.denominations, g.session.Builder)
}

// SubmitBuilder submits the tray's total
func (g *Game) SubmitBuilder() (*models.Event, error) {
	return g.SubmitAmount(g.BuilderTotal())
}

// SubmitAmount resolves the mission. A wrong amount is an outcome, not an error:
// the wallet is untouched and the turn passes.
func (g *Game) SubmitAmount(total int) (*models.Event, error) {
	if err := g.requirePhase(models.PhaseBuilding); err != nil {
		return nil, err
	}

	player := g.session.ActivePlayer()
	mission := g.session.Mission

	event := &models.Event{
		PlayerID:  player.ID,
		Built:     total,
		Target:    mission.Amount,
		MissionID: mission.ID,
	}

	before := wallet.EffectiveTotal(g.denominations, player)
	if total == mission.Amount {
		owed := mission.AmountOwed()
		after := before - owed
		if after < 0 {
			after = 0
		}
		player.WalletTotalOverride = &after
		player.Stars++

		event.Kind = models.EventKindMissionSuccess
		event.Reason = models.LedgerReasonMission
		event.Charged = owed
		event.Amount = after - before
		event.Balance = after
	} else {
		event.Kind = models.EventKindMissionFailure
		event.Balance = before
	}

	g.endTurn(event)
	return copyEvent(event), nil
}

// SkipTurn passes to the next player, abandoning any mission
func (g *Game) SkipTurn() (*models.Event, error) {
	if g.Expired() {
		return nil, ErrTimeExpired
	}
	if g.session.Phase == models.PhaseMoving {
		return nil, ErrInvalidPhase
	}

	player := g.session.ActivePlayer()
	event := &models.Event{
		Kind:     models.EventKindTurnSkipped,
		PlayerID: player.ID,
		Balance:  wallet.EffectiveTotal(g.denominations, player),
	}
	g.endTurn(event)
	return copyEvent(event), nil
}

// Tick counts one second down. It returns true on the tick that ends the session.
func (g *Game) Tick() bool {
	if g.session.TimeLeft <= 0 {
		return false
	}
	g.session.TimeLeft--
	g.touch()
	return g.session.TimeLeft == 0
}

// Ranking orders players by effective total, lowest first; ties keep turn order
func (g *Game) Ranking() []models.RankingEntry {
	entries := make([]models.RankingEntry, 0, len(g.session.Players))
	for _, p := range g.session.Players {
		entries = append(entries, models.RankingEntry{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Total:      wallet.EffectiveTotal(g.denominations, p),
			Stars:      p.Stars,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Total < entries[j].Total
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// Total is a player's effective wallet total
func (g *Game) Total(playerID string) (int, bool) {
	for _, p := range g.session.Players {
		if p.ID == playerID {
			return wallet.EffectiveTotal(g.denominations, p), true
		}
	}
	return 0, false
}

// Snapshot returns a deep copy of the session state
func (g *Game) Snapshot() *models.Session {
	return copySession(g.session)
}

func (g *Game) requirePhase(phase models.Phase) error {
	if g.Expired() {
		return ErrTimeExpired
	}
	if g.session.Phase != phase {
		return ErrInvalidPhase
	}
	return nil
}

func (g *Game) endTurn(event *models.Event) {
	g.clearTurnState()
	g.session.LastEvent = event
	g.session.Turn = (g.session.Turn + 1) % len(g.session.Players)
	g.touch()
}

func (g *Game) clearTurnState() {
	g.session.Phase = models.PhaseIdle
	g.session.ActivePlace = ""
	g.session.Mission = nil
	g.session.Builder = nil
	g.session.StepsRemaining = 0
}

func (g *Game) touch() {
	g.session.UpdatedAt = g.clock.Now()
}
