package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
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

// service implements the Service interface
type service struct {
	sessionRepo sessionRepo.Repository
	ledgerRepo  ledgerRepo.Repository

	board         *board.Topology
	missions      missions.Selector
	denominations *denomination.Catalog

	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID
	listener      Listener

	stepInterval   time.Duration
	defaultMinutes int

	mu     sync.Mutex
	actors map[string]*actor
	closed bool

	// locks serialise lobby and lifecycle changes per channel
	locks map[string]*sync.Mutex
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.LedgerRepo == nil {
		return nil, ErrNilLedgerRepo
	}
	if cfg.Board == nil {
		return nil, ErrNilBoard
	}
	if cfg.Missions == nil {
		return nil, ErrNilMissions
	}
	if cfg.Denominations == nil {
		return nil, ErrNilDenominations
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		sessionRepo:    cfg.SessionRepo,
		ledgerRepo:     cfg.LedgerRepo,
		board:          cfg.Board,
		missions:       cfg.Missions,
		denominations:  cfg.Denominations,
		diceRoller:     cfg.DiceRoller,
		clock:          cfg.Clock,
		uuidGenerator:  cfg.UUIDGenerator,
		listener:       cfg.Listener,
		stepInterval:   cfg.StepInterval,
		defaultMinutes: cfg.DefaultMinutes,
		actors:         make(map[string]*actor),
		locks:          make(map[string]*sync.Mutex),
	}, nil
}

func (s *service) engineConfig() *engine.Config {
	return &engine.Config{
		Board:         s.board,
		Missions:      s.missions,
		Denominations: s.denominations,
		Roller:        s.diceRoller,
		Clock:         s.clock,
		StepInterval:  s.stepInterval,
	}
}

// OpenLobby opens a lobby in a channel with its creator as the first player
func (s *service) OpenLobby(ctx context.Context, input *OpenLobbyInput) (*OpenLobbyOutput, error) {
	if input == nil || input.ChannelID == "" || input.CreatorID == "" {
		return nil, fmt.Errorf("%w: channel and creator are required", ErrInvalidInput)
	}

	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = models.DifficultyBasic
	}
	if !difficulty.IsValid() {
		return nil, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidInput, difficulty)
	}

	unlock := s.lockChannel(input.ChannelID)
	defer unlock()

	if _, err := s.findSession(ctx, input.ChannelID); err == nil {
		return nil, ErrSessionExists
	} else if !errors.Is(err, ErrSessionNotFound) {
		return nil, err
	}

	_, err := s.sessionRepo.GetLobby(ctx, &sessionRepo.GetLobbyInput{ChannelID: input.ChannelID})
	if err == nil {
		return nil, ErrLobbyExists
	}
	if !errors.Is(err, sessionRepo.ErrLobbyNotFound) {
		return nil, fmt.Errorf("failed to get lobby: %w", err)
	}

	minutes := input.Minutes
	if minutes == 0 {
		minutes = s.defaultMinutes
	}

	lobby := &models.Lobby{
		ChannelID:  input.ChannelID,
		CreatorID:  input.CreatorID,
		Minutes:    engine.ClampMinutes(minutes),
		Difficulty: difficulty,
		Players: []models.PlayerSetup{
			{ID: input.CreatorID, Name: input.CreatorName, Avatar: input.Avatar},
		},
		CreatedAt: s.clock.Now(),
	}

	if err := s.sessionRepo.SaveLobby(ctx, &sessionRepo.SaveLobbyInput{Lobby: lobby}); err != nil {
		return nil, fmt.Errorf("failed to save lobby: %w", err)
	}

	return &OpenLobbyOutput{Lobby: lobby}, nil
}

// JoinLobby adds a player to a channel's lobby
func (s *service) JoinLobby(ctx context.Context, input *JoinLobbyInput) (*JoinLobbyOutput, error) {
	if input == nil || input.ChannelID == "" || input.PlayerID == "" {
		return nil, fmt.Errorf("%w: channel and player are required", ErrInvalidInput)
	}

	unlock := s.lockChannel(input.ChannelID)
	defer unlock()

	lobby, err := s.getLobby(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	if lobby.HasPlayer(input.PlayerID) {
		return &JoinLobbyOutput{Lobby: lobby, AlreadyJoined: true}, nil
	}
	if len(lobby.Players) >= engine.MaxPlayers {
		return nil, ErrLobbyFull
	}

	lobby.Players = append(lobby.Players, models.PlayerSetup{
		ID:     input.PlayerID,
		Name:   input.PlayerName,
		Avatar: input.Avatar,
	})

	if err := s.sessionRepo.SaveLobby(ctx, &sessionRepo.SaveLobbyInput{Lobby: lobby}); err != nil {
		return nil, fmt.Errorf("failed to save lobby: %w", err)
	}

	return &JoinLobbyOutput{Lobby: lobby}, nil
}

// StartSession turns the lobby into a running session
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, fmt.Errorf("%w: channel is required", ErrInvalidInput)
	}

	unlock := s.lockChannel(input.ChannelID)
	defer unlock()

	lobby, err := s.getLobby(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}
	if lobby.CreatorID != input.RequesterID {
		return nil, ErrNotCreator
	}

	cfg := s.engineConfig()
	cfg.SessionID = s.uuidGenerator.NewUUID()
	cfg.ChannelID = lobby.ChannelID
	cfg.CreatorID = lobby.CreatorID
	cfg.Players = lobby.Players
	cfg.Minutes = lobby.Minutes
	cfg.Difficulty = lobby.Difficulty

	g, err := engine.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	// The channel is claimed before anything is stored
	a, err := s.reserve(g)
	if err != nil {
		return nil, err
	}

	snap := g.Snapshot()
	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: snap}); err != nil {
		s.release(a)
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	if err := s.sessionRepo.DeleteLobby(ctx, &sessionRepo.DeleteLobbyInput{ChannelID: lobby.ChannelID}); err != nil {
		log.Printf("Failed to delete lobby for channel %s: %v", lobby.ChannelID, err)
	}

	go s.run(a)

	log.Printf("Session %s started in channel %s with %d players", snap.ID, snap.ChannelID, len(snap.Players))
	return &StartSessionOutput{Session: snap}, nil
}

// Roll throws the colour die for the active player
func (s *service) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	output := &RollOutput{}
	err := s.act(ctx, input.ChannelID, input.PlayerID, func(a *actor, g *engine.Game) error {
		result, err := g.Roll()
		if result == nil {
			return err
		}
		output.Roll = result.Roll
		output.Landing = result.Landing
		if result.Landing != nil && result.Landing.Event != nil {
			s.recordEvent(a, result.Landing.Event)
		}
		output.Session = s.persist(a, g.Snapshot())
		return err
	})
	if err != nil && output.Roll == nil {
		return nil, err
	}
	return output, err
}

// AcceptMission opens the amount builder for the offered mission
func (s *service) AcceptMission(ctx context.Context, input *AcceptMissionInput) (*AcceptMissionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	output := &AcceptMissionOutput{}
	err := s.act(ctx, input.ChannelID, input.PlayerID, func(a *actor, g *engine.Game) error {
		if err := g.AcceptMission(); err != nil {
			return err
		}
		output.Session = s.persist(a, g.Snapshot())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

// RequestAnotherMission swaps the offered mission for another at the same place
func (s *service) RequestAnotherMission(ctx context.Context, input *RequestAnotherMissionInput) (*RequestAnotherMissionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	output := &RequestAnotherMissionOutput{}
	err := s.act(ctx, input.ChannelID, input.PlayerID, func(a *actor, g *engine.Game) error {
		mission, err := g.RequestAnotherMission()
		if err != nil {
			return err
		}
		output.Mission = mission
		output.Session = s.persist(a, g.Snapshot())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

// AdjustBuilder adds or removes coins and notes from the builder tray
func (s *service) AdjustBuilder(ctx context.Context, input *AdjustBuilderInput) (*AdjustBuilderOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	output := &AdjustBuilderOutput{}
	err := s.act(ctx, input.ChannelID, input.PlayerID, func(a *actor, g *engine.Game) error {
		total, err := g.AdjustBuilder(input.Key, input.Delta)
		if err != nil {
			return err
		}
		output.Total = total
		output.Session = s.persist(a, g.Snapshot())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

// ClearBuilder empties the builder tray
func (s *service) ClearBuilder(ctx context.Context, input *ClearBuilderInput) (*ClearBuilderOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	output := &ClearBuilderOutput{}
	err := s.act(ctx, input.ChannelID, input.PlayerID, func(a *actor, g *engine.Game) error {
		if err := g.ClearBuilder(); err != nil {
			return err
		}
		output.Session = s.persist(a, g.Snapshot())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

// SubmitAmount resolves the mission with a typed amount, or the tray when no amount is given
func (s *service) SubmitAmount(ctx context.Context, input *SubmitAmountInput) (*SubmitAmountOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	output := &SubmitAmountOutput{}
	err := s.act(ctx, input.ChannelID, input.PlayerID, func(a *actor, g *engine.Game) error {
		var event *models.Event
		var err error
		if input.Amount != nil {
			event, err = g.SubmitAmount(*input.Amount)
		} else {
			event, err = g.SubmitBuilder()
		}
		if err != nil {
			return err
		}

		s.recordEvent(a, event)
		output.Event = event
		output.Session = s.persist(a, g.Snapshot())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

// SkipTurn passes the turn to the next player
func (s *service) SkipTurn(ctx context.Context, input *SkipTurnInput) (*SkipTurnOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	output := &SkipTurnOutput{}
	err := s.act(ctx, input.ChannelID, input.PlayerID, func(a *actor, g *engine.Game) error {
		event, err := g.SkipTurn()
		if err != nil {
			return err
		}
		output.Event = event
		output.Session = s.persist(a, g.Snapshot())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

// GetSession returns the current snapshot for a channel
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrInvalidInput
	}

	snap, err := s.findSession(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}
	return &GetSessionOutput{Session: snap}, nil
}

// GetRanking returns the standings for a channel
func (s *service) GetRanking(ctx context.Context, input *GetRankingInput) (*GetRankingOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrInvalidInput
	}

	if a := s.actorFor(input.ChannelID); a != nil {
		output := &GetRankingOutput{}
		err := a.do(ctx, func(g *engine.Game) error {
			output.Ranking = g.Ranking()
			output.Final = g.Expired()
			return nil
		})
		if err != nil {
			return nil, err
		}
		return output, nil
	}

	// Sessions that expired before a restart are only in the store
	snap, err := s.loadSession(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}
	g, err := engine.Restore(s.engineConfig(), snap)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}
	return &GetRankingOutput{Ranking: g.Ranking(), Final: g.Expired()}, nil
}

// GetLedger returns the recent money movements of a session
func (s *service) GetLedger(ctx context.Context, input *GetLedgerInput) (*GetLedgerOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrInvalidInput
	}

	snap, err := s.findSession(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	entries, err := s.ledgerRepo.GetEntriesForSession(ctx, &ledgerRepo.GetEntriesForSessionInput{
		SessionID: snap.ID,
		PlayerID:  input.PlayerID,
		Limit:     input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger: %w", err)
	}

	return &GetLedgerOutput{Entries: entries.Entries}, nil
}

// EndSession stops a session, discards its state and returns the final standings
func (s *service) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrInvalidInput
	}

	unlock := s.lockChannel(input.ChannelID)
	defer unlock()

	snap, err := s.findSession(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}
	if snap.CreatorID != input.RequesterID {
		return nil, ErrNotCreator
	}

	s.mu.Lock()
	a := s.actors[input.ChannelID]
	delete(s.actors, input.ChannelID)
	s.mu.Unlock()

	if a != nil {
		a.stop()
		// The loop is gone; the engine is ours now
		snap = a.game.Snapshot()
	}

	g, err := engine.Restore(s.engineConfig(), snap)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}
	ranking := g.Ranking()

	if err := s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{SessionID: snap.ID}); err != nil && !errors.Is(err, sessionRepo.ErrSessionNotFound) {
		return nil, fmt.Errorf("failed to delete session: %w", err)
	}
	if err := s.ledgerRepo.DeleteEntries(ctx, &ledgerRepo.DeleteEntriesInput{SessionID: snap.ID}); err != nil {
		return nil, fmt.Errorf("failed to delete ledger: %w", err)
	}

	log.Printf("Session %s ended in channel %s", snap.ID, snap.ChannelID)
	return &EndSessionOutput{Ranking: ranking}, nil
}

// Resume restarts every session that was still running when the process stopped
func (s *service) Resume(ctx context.Context) error {
	output, err := s.sessionRepo.GetActiveSessions(ctx, &sessionRepo.GetActiveSessionsInput{})
	if err != nil {
		return fmt.Errorf("failed to get active sessions: %w", err)
	}

	for _, snap := range output.Sessions {
		if s.actorFor(snap.ChannelID) != nil {
			continue
		}

		g, err := engine.Restore(s.engineConfig(), snap)
		if err != nil {
			log.Printf("Skipping session %s: %v", snap.ID, err)
			continue
		}
		if err := s.start(g); err != nil {
			return err
		}
		log.Printf("Resumed session %s in channel %s", snap.ID, snap.ChannelID)
	}

	return nil
}

// Close stops every running session without discarding state
func (s *service) Close() {
	s.mu.Lock()
	s.closed = true
	actors := make([]*actor, 0, len(s.actors))
	for channelID, a := range s.actors {
		actors = append(actors, a)
		delete(s.actors, channelID)
	}
	s.mu.Unlock()

	for _, a := range actors {
		a.stop()
	}
}

// start registers and launches a session loop
func (s *service) start(g *engine.Game) error {
	a, err := s.reserve(g)
	if err != nil {
		return err
	}

	go s.run(a)
	return nil
}

// reserve registers a session for its channel without starting its loop
func (s *service) reserve(g *engine.Game) (*actor, error) {
	a := newActor(g)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		a.cancel()
		return nil, ErrServiceClosed
	}
	if _, ok := s.actors[a.channelID]; ok {
		a.cancel()
		return nil, ErrSessionExists
	}
	s.actors[a.channelID] = a
	return a, nil
}

// release drops a reserved session whose loop never started
func (s *service) release(a *actor) {
	s.mu.Lock()
	if s.actors[a.channelID] == a {
		delete(s.actors, a.channelID)
	}
	s.mu.Unlock()

	a.cancel()
	close(a.done)
}

// lockChannel takes the channel's lifecycle lock and returns its release
func (s *service) lockChannel(channelID string) func() {
	s.mu.Lock()
	l, ok := s.locks[channelID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[channelID] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func (s *service) actorFor(channelID string) *actor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.actors[channelID]
}

// act runs fn on the channel's session after checking it is playerID's turn
func (s *service) act(ctx context.Context, channelID, playerID string, fn func(a *actor, g *engine.Game) error) error {
	if channelID == "" || playerID == "" {
		return fmt.Errorf("%w: channel and player are required", ErrInvalidInput)
	}

	a := s.actorFor(channelID)
	if a == nil {
		return ErrSessionNotFound
	}

	return a.do(ctx, func(g *engine.Game) error {
		if g.Expired() {
			return engine.ErrTimeExpired
		}
		snap := g.Snapshot()
		if active := snap.ActivePlayer(); active == nil || active.ID != playerID {
			return ErrNotYourTurn
		}
		return fn(a, g)
	})
}

// findSession reads the live snapshot, falling back to the store
func (s *service) findSession(ctx context.Context, channelID string) (*models.Session, error) {
	if a := s.actorFor(channelID); a != nil {
		var snap *models.Session
		err := a.do(ctx, func(g *engine.Game) error {
			snap = g.Snapshot()
			return nil
		})
		if err != nil {
			return nil, err
		}
		return snap, nil
	}
	return s.loadSession(ctx, channelID)
}

func (s *service) loadSession(ctx context.Context, channelID string) (*models.Session, error) {
	snap, err := s.sessionRepo.GetSessionByChannel(ctx, &sessionRepo.GetSessionByChannelInput{
		ChannelID: channelID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return snap, nil
}

func (s *service) getLobby(ctx context.Context, channelID string) (*models.Lobby, error) {
	lobby, err := s.sessionRepo.GetLobby(ctx, &sessionRepo.GetLobbyInput{ChannelID: channelID})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrLobbyNotFound) {
			return nil, ErrLobbyNotFound
		}
		return nil, fmt.Errorf("failed to get lobby: %w", err)
	}
	return lobby, nil
}

// persist mirrors the snapshot to the store; a failed write is only logged
func (s *service) persist(a *actor, snap *models.Session) *models.Session {
	if err := s.sessionRepo.SaveSession(a.ctx, &sessionRepo.SaveSessionInput{Session: snap}); err != nil {
		log.Printf("Session %s: failed to save snapshot: %v", a.sessionID, err)
	}
	return snap
}

// recordEvent appends money-moving events to the session ledger
func (s *service) recordEvent(a *actor, event *models.Event) {
	if event == nil || event.Reason == "" {
		return
	}

	entry := &models.LedgerEntry{
		ID:        s.uuidGenerator.NewUUID(),
		SessionID: a.sessionID,
		PlayerID:  event.PlayerID,
		Reason:    event.Reason,
		Delta:     event.Amount,
		Balance:   event.Balance,
		MissionID: event.MissionID,
		Timestamp: s.clock.Now(),
	}
	if err := s.ledgerRepo.AddEntry(a.ctx, &ledgerRepo.AddEntryInput{Entry: entry}); err != nil {
		log.Printf("Session %s: failed to record %s for %s: %v", a.sessionID, event.Reason, event.PlayerID, err)
	}
}
