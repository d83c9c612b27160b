package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/cuentasclaras/internal/board"
	clockMocks "github.com/KirkDiggler/cuentasclaras/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/cuentasclaras/internal/common/uuid/mocks"
	"github.com/KirkDiggler/cuentasclaras/internal/denomination"
	diceMocks "github.com/KirkDiggler/cuentasclaras/internal/dice/mocks"
	"github.com/KirkDiggler/cuentasclaras/internal/engine"
	"github.com/KirkDiggler/cuentasclaras/internal/missions"
	"github.com/KirkDiggler/cuentasclaras/internal/models"
	ledgerRepo "github.com/KirkDiggler/cuentasclaras/internal/repositories/ledger"
	ledgerMocks "github.com/KirkDiggler/cuentasclaras/internal/repositories/ledger/mocks"
	sessionRepo "github.com/KirkDiggler/cuentasclaras/internal/repositories/session"
	sessionMocks "github.com/KirkDiggler/cuentasclaras/internal/repositories/session/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// Die faces in board order; from cell 0 the feria is 1 step away and the bank 3
const (
	faceFair = 2
	faceBank = 4
)

type recordingListener struct {
	updates chan *Update
}

func (l *recordingListener) SessionUpdated(update *Update) {
	l.updates <- update
}

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockSessionRepo *sessionMocks.MockRepository
	mockLedgerRepo  *ledgerMocks.MockRepository
	mockDiceRoller  *diceMocks.MockRoller
	mockClock       *clockMocks.MockClock
	mockCountdown   *clockMocks.MockTicker
	mockMovement    *clockMocks.MockTicker
	mockUUID        *uuidMocks.MockUUID
	listener        *recordingListener
	gameService     *service
	ctx             context.Context

	countdownC chan time.Time
	movementC  chan time.Time

	// Test data
	testTime      time.Time
	testChannelID string
	testCreatorID string
	testPlayerID  string
	testSessionID string

	board         *board.Topology
	denominations *denomination.Catalog
	missions      *missions.Catalog
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockLedgerRepo = ledgerMocks.NewMockRepository(s.mockCtrl)
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockCountdown = clockMocks.NewMockTicker(s.mockCtrl)
	s.mockMovement = clockMocks.NewMockTicker(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.listener = &recordingListener{updates: make(chan *Update, 64)}
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testChannelID = "test-channel-id"
	s.testCreatorID = "test-creator-id"
	s.testPlayerID = "test-player-id"
	s.testSessionID = "test-session-id"

	s.countdownC = make(chan time.Time)
	s.movementC = make(chan time.Time)

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockClock.EXPECT().NewTicker(time.Second).Return(s.mockCountdown).AnyTimes()
	s.mockClock.EXPECT().NewTicker(engine.DefaultStepInterval).Return(s.mockMovement).AnyTimes()
	s.mockCountdown.EXPECT().C().Return((<-chan time.Time)(s.countdownC)).AnyTimes()
	s.mockCountdown.EXPECT().Stop().AnyTimes()
	s.mockMovement.EXPECT().C().Return((<-chan time.Time)(s.movementC)).AnyTimes()
	s.mockMovement.EXPECT().Stop().AnyTimes()

	var err error
	s.board, err = board.New(nil)
	s.Require().NoError(err)
	s.denominations, err = denomination.Load()
	s.Require().NoError(err)
	s.missions, err = missions.New([]models.Mission{
		{ID: "fer-1", Place: models.PlaceFair, Amount: 1500, Difficulty: models.DifficultyBasic, Kind: models.MissionKindAddition},
	})
	s.Require().NoError(err)

	s.gameService, err = New(s.config())
	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.gameService.Close()
	s.mockCtrl.Finish()
}

func TestGameServiceSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

func (s *GameServiceTestSuite) config() *Config {
	return &Config{
		DefaultMinutes: 10,
		SessionRepo:    s.mockSessionRepo,
		LedgerRepo:     s.mockLedgerRepo,
		Board:          s.board,
		Missions:       s.missions,
		Denominations:  s.denominations,
		DiceRoller:     s.mockDiceRoller,
		Clock:          s.mockClock,
		UUIDGenerator:  s.mockUUID,
		Listener:       s.listener,
	}
}

func (s *GameServiceTestSuite) lobby(playerIDs ...string) *models.Lobby {
	lobby := &models.Lobby{
		ChannelID:  s.testChannelID,
		CreatorID:  s.testCreatorID,
		Minutes:    5,
		Difficulty: models.DifficultyBasic,
		CreatedAt:  s.testTime,
	}
	for _, id := range playerIDs {
		lobby.Players = append(lobby.Players, models.PlayerSetup{ID: id, Name: id})
	}
	return lobby
}

// startSession runs a session for the creator and the test player
func (s *GameServiceTestSuite) startSession() *models.Session {
	s.mockSessionRepo.EXPECT().
		GetLobby(gomock.Any(), &sessionRepo.GetLobbyInput{ChannelID: s.testChannelID}).
		Return(s.lobby(s.testCreatorID, s.testPlayerID), nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID)
	s.mockSessionRepo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.mockSessionRepo.EXPECT().
		DeleteLobby(gomock.Any(), &sessionRepo.DeleteLobbyInput{ChannelID: s.testChannelID}).
		Return(nil)

	output, err := s.gameService.StartSession(s.ctx, &StartSessionInput{
		ChannelID:   s.testChannelID,
		RequesterID: s.testCreatorID,
	})
	s.Require().NoError(err)
	return output.Session
}

// snapshot builds a stored session without going through the service
func (s *GameServiceTestSuite) snapshot(timeLeft int) *models.Session {
	g, err := engine.New(&engine.Config{
		SessionID:     s.testSessionID,
		ChannelID:     s.testChannelID,
		CreatorID:     s.testCreatorID,
		Board:         s.board,
		Missions:      s.missions,
		Denominations: s.denominations,
		Roller:        s.mockDiceRoller,
		Clock:         s.mockClock,
		Players: []models.PlayerSetup{
			{ID: s.testCreatorID},
			{ID: s.testPlayerID},
		},
		Minutes: 5,
	})
	s.Require().NoError(err)

	snap := g.Snapshot()
	snap.TimeLeft = timeLeft
	return snap
}

func (s *GameServiceTestSuite) nextUpdate() *Update {
	select {
	case update := <-s.listener.updates:
		return update
	case <-time.After(time.Second):
		s.FailNow("no update received")
		return nil
	}
}

func (s *GameServiceTestSuite) TestNew_ValidatesConfig() {
	testCases := []struct {
		name   string
		mutate func(cfg *Config)
		want   error
	}{
		{name: "session repo", mutate: func(cfg *Config) { cfg.SessionRepo = nil }, want: ErrNilSessionRepo},
		{name: "ledger repo", mutate: func(cfg *Config) { cfg.LedgerRepo = nil }, want: ErrNilLedgerRepo},
		{name: "board", mutate: func(cfg *Config) { cfg.Board = nil }, want: ErrNilBoard},
		{name: "missions", mutate: func(cfg *Config) { cfg.Missions = nil }, want: ErrNilMissions},
		{name: "denominations", mutate: func(cfg *Config) { cfg.Denominations = nil }, want: ErrNilDenominations},
		{name: "dice", mutate: func(cfg *Config) { cfg.DiceRoller = nil }, want: ErrNilDiceRoller},
		{name: "clock", mutate: func(cfg *Config) { cfg.Clock = nil }, want: ErrNilClock},
		{name: "uuid", mutate: func(cfg *Config) { cfg.UUIDGenerator = nil }, want: ErrNilUUIDGenerator},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := s.config()
			tc.mutate(cfg)

			svc, err := New(cfg)
			s.Nil(svc)
			s.ErrorIs(err, tc.want)
		})
	}

	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)
}

func (s *GameServiceTestSuite) TestOpenLobby() {
	s.mockSessionRepo.EXPECT().
		GetSessionByChannel(gomock.Any(), &sessionRepo.GetSessionByChannelInput{ChannelID: s.testChannelID}).
		Return(nil, sessionRepo.ErrSessionNotFound)
	s.mockSessionRepo.EXPECT().
		GetLobby(gomock.Any(), &sessionRepo.GetLobbyInput{ChannelID: s.testChannelID}).
		Return(nil, sessionRepo.ErrLobbyNotFound)

	var saved *models.Lobby
	s.mockSessionRepo.EXPECT().SaveLobby(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveLobbyInput) error {
			saved = input.Lobby
			return nil
		})

	output, err := s.gameService.OpenLobby(s.ctx, &OpenLobbyInput{
		ChannelID:   s.testChannelID,
		CreatorID:   s.testCreatorID,
		CreatorName: "Rosa",
	})
	s.Require().NoError(err)
	s.Equal(saved, output.Lobby)
	s.Equal(10, output.Lobby.Minutes)
	s.Equal(models.DifficultyBasic, output.Lobby.Difficulty)
	s.Require().Len(output.Lobby.Players, 1)
	s.Equal("Rosa", output.Lobby.Players[0].Name)
	s.Equal(s.testTime, output.Lobby.CreatedAt)
}

func (s *GameServiceTestSuite) TestOpenLobby_ClampsMinutes() {
	s.mockSessionRepo.EXPECT().GetSessionByChannel(gomock.Any(), gomock.Any()).Return(nil, sessionRepo.ErrSessionNotFound)
	s.mockSessionRepo.EXPECT().GetLobby(gomock.Any(), gomock.Any()).Return(nil, sessionRepo.ErrLobbyNotFound)
	s.mockSessionRepo.EXPECT().SaveLobby(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.gameService.OpenLobby(s.ctx, &OpenLobbyInput{
		ChannelID:  s.testChannelID,
		CreatorID:  s.testCreatorID,
		Minutes:    90,
		Difficulty: models.DifficultyAdvanced,
	})
	s.Require().NoError(err)
	s.Equal(60, output.Lobby.Minutes)
	s.Equal(models.DifficultyAdvanced, output.Lobby.Difficulty)
}

func (s *GameServiceTestSuite) TestOpenLobby_Rejects() {
	_, err := s.gameService.OpenLobby(s.ctx, &OpenLobbyInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, ErrInvalidInput)

	_, err = s.gameService.OpenLobby(s.ctx, &OpenLobbyInput{
		ChannelID:  s.testChannelID,
		CreatorID:  s.testCreatorID,
		Difficulty: "experto",
	})
	s.ErrorIs(err, ErrInvalidInput)

	s.mockSessionRepo.EXPECT().GetSessionByChannel(gomock.Any(), gomock.Any()).Return(s.snapshot(0), nil)
	_, err = s.gameService.OpenLobby(s.ctx, &OpenLobbyInput{
		ChannelID: s.testChannelID,
		CreatorID: s.testCreatorID,
	})
	s.ErrorIs(err, ErrSessionExists)

	s.mockSessionRepo.EXPECT().GetSessionByChannel(gomock.Any(), gomock.Any()).Return(nil, sessionRepo.ErrSessionNotFound)
	s.mockSessionRepo.EXPECT().GetLobby(gomock.Any(), gomock.Any()).Return(s.lobby(s.testCreatorID), nil)
	_, err = s.gameService.OpenLobby(s.ctx, &OpenLobbyInput{
		ChannelID: s.testChannelID,
		CreatorID: s.testCreatorID,
	})
	s.ErrorIs(err, ErrLobbyExists)
}

func (s *GameServiceTestSuite) TestJoinLobby() {
	s.mockSessionRepo.EXPECT().GetLobby(gomock.Any(), gomock.Any()).Return(s.lobby(s.testCreatorID), nil)
	s.mockSessionRepo.EXPECT().SaveLobby(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.gameService.JoinLobby(s.ctx, &JoinLobbyInput{
		ChannelID:  s.testChannelID,
		PlayerID:   s.testPlayerID,
		PlayerName: "Tomás",
	})
	s.Require().NoError(err)
	s.False(output.AlreadyJoined)
	s.Require().Len(output.Lobby.Players, 2)
	s.Equal("Tomás", output.Lobby.Players[1].Name)
}

func (s *GameServiceTestSuite) TestJoinLobby_AlreadyJoined() {
	s.mockSessionRepo.EXPECT().GetLobby(gomock.Any(), gomock.Any()).Return(s.lobby(s.testCreatorID, s.testPlayerID), nil)

	output, err := s.gameService.JoinLobby(s.ctx, &JoinLobbyInput{
		ChannelID: s.testChannelID,
		PlayerID:  s.testPlayerID,
	})
	s.Require().NoError(err)
	s.True(output.AlreadyJoined)
	s.Len(output.Lobby.Players, 2)
}

func (s *GameServiceTestSuite) TestJoinLobby_Full() {
	s.mockSessionRepo.EXPECT().GetLobby(gomock.Any(), gomock.Any()).Return(s.lobby("a", "b", "c", "d"), nil)

	_, err := s.gameService.JoinLobby(s.ctx, &JoinLobbyInput{
		ChannelID: s.testChannelID,
		PlayerID:  s.testPlayerID,
	})
	s.ErrorIs(err, ErrLobbyFull)
}

func (s *GameServiceTestSuite) TestJoinLobby_NoLobby() {
	s.mockSessionRepo.EXPECT().GetLobby(gomock.Any(), gomock.Any()).Return(nil, sessionRepo.ErrLobbyNotFound)

	_, err := s.gameService.JoinLobby(s.ctx, &JoinLobbyInput{
		ChannelID: s.testChannelID,
		PlayerID:  s.testPlayerID,
	})
	s.ErrorIs(err, ErrLobbyNotFound)
}

func (s *GameServiceTestSuite) TestStartSession() {
	session := s.startSession()

	s.Equal(s.testSessionID, session.ID)
	s.Equal(s.testChannelID, session.ChannelID)
	s.Equal(s.testCreatorID, session.CreatorID)
	s.Equal(300, session.TimeLeft)
	s.Require().Len(session.Players, 2)
	s.Equal(s.testCreatorID, session.Players[0].ID)

	// Served by the running session, not the store
	output, err := s.gameService.GetSession(s.ctx, &GetSessionInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.Equal(s.testSessionID, output.Session.ID)
}

func (s *GameServiceTestSuite) TestStartSession_OnlyCreator() {
	s.mockSessionRepo.EXPECT().GetLobby(gomock.Any(), gomock.Any()).Return(s.lobby(s.testCreatorID, s.testPlayerID), nil)

	_, err := s.gameService.StartSession(s.ctx, &StartSessionInput{
		ChannelID:   s.testChannelID,
		RequesterID: s.testPlayerID,
	})
	s.ErrorIs(err, ErrNotCreator)
}

func (s *GameServiceTestSuite) TestRoll_Rejects() {
	_, err := s.gameService.Roll(s.ctx, &RollInput{ChannelID: s.testChannelID, PlayerID: s.testCreatorID})
	s.ErrorIs(err, ErrSessionNotFound)

	s.startSession()

	_, err = s.gameService.Roll(s.ctx, &RollInput{ChannelID: s.testChannelID, PlayerID: s.testPlayerID})
	s.ErrorIs(err, ErrNotYourTurn)

	_, err = s.gameService.Roll(s.ctx, &RollInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *GameServiceTestSuite) TestMissionTurn() {
	s.startSession()

	s.mockDiceRoller.EXPECT().Roll(6).Return(faceFair)
	roll, err := s.gameService.Roll(s.ctx, &RollInput{ChannelID: s.testChannelID, PlayerID: s.testCreatorID})
	s.Require().NoError(err)
	s.Equal(models.PlaceFair, roll.Roll.Place)
	s.Equal(1, roll.Roll.Steps)
	s.Nil(roll.Landing)
	s.Equal(models.PhaseMoving, roll.Session.Phase)

	s.movementC <- s.testTime
	update := s.nextUpdate()
	s.Equal(UpdateLanded, update.Kind)
	s.Require().NotNil(update.Landing)
	s.Equal("fer-1", update.Landing.Mission.ID)
	s.Equal(models.PhaseMissionOffered, update.Session.Phase)

	accepted, err := s.gameService.AcceptMission(s.ctx, &AcceptMissionInput{ChannelID: s.testChannelID, PlayerID: s.testCreatorID})
	s.Require().NoError(err)
	s.Equal(models.PhaseBuilding, accepted.Session.Phase)

	adjusted, err := s.gameService.AdjustBuilder(s.ctx, &AdjustBuilderInput{
		ChannelID: s.testChannelID, PlayerID: s.testCreatorID, Key: "1000", Delta: 1,
	})
	s.Require().NoError(err)
	s.Equal(1000, adjusted.Total)

	adjusted, err = s.gameService.AdjustBuilder(s.ctx, &AdjustBuilderInput{
		ChannelID: s.testChannelID, PlayerID: s.testCreatorID, Key: "500", Delta: 1,
	})
	s.Require().NoError(err)
	s.Equal(1500, adjusted.Total)

	s.mockUUID.EXPECT().NewUUID().Return("entry-1")
	s.mockLedgerRepo.EXPECT().
		AddEntry(gomock.Any(), &ledgerRepo.AddEntryInput{Entry: &models.LedgerEntry{
			ID:        "entry-1",
			SessionID: s.testSessionID,
			PlayerID:  s.testCreatorID,
			Reason:    models.LedgerReasonMission,
			Delta:     -1500,
			Balance:   71550,
			MissionID: "fer-1",
			Timestamp: s.testTime,
		}}).
		Return(nil)

	submitted, err := s.gameService.SubmitAmount(s.ctx, &SubmitAmountInput{ChannelID: s.testChannelID, PlayerID: s.testCreatorID})
	s.Require().NoError(err)
	s.Equal(models.EventKindMissionSuccess, submitted.Event.Kind)
	s.Equal(1500, submitted.Event.Built)
	s.Equal(1, submitted.Session.Turn)
	s.Equal(1, submitted.Session.Players[0].Stars)
}

func (s *GameServiceTestSuite) TestSubmitAmount_TypedMismatchSkipsLedger() {
	s.startSession()

	s.mockDiceRoller.EXPECT().Roll(6).Return(faceFair)
	_, err := s.gameService.Roll(s.ctx, &RollInput{ChannelID: s.testChannelID, PlayerID: s.testCreatorID})
	s.Require().NoError(err)
	s.movementC <- s.testTime
	s.nextUpdate()

	_, err = s.gameService.AcceptMission(s.ctx, &AcceptMissionInput{ChannelID: s.testChannelID, PlayerID: s.testCreatorID})
	s.Require().NoError(err)

	amount := 1400
	output, err := s.gameService.SubmitAmount(s.ctx, &SubmitAmountInput{
		ChannelID: s.testChannelID,
		PlayerID:  s.testCreatorID,
		Amount:    &amount,
	})
	s.Require().NoError(err)
	s.Equal(models.EventKindMissionFailure, output.Event.Kind)
	s.Equal(1400, output.Event.Built)
	s.Equal(1500, output.Event.Target)
	s.Equal(1, output.Session.Turn)
}

func (s *GameServiceTestSuite) TestBankLanding_RecordsLedger() {
	s.startSession()

	s.mockDiceRoller.EXPECT().Roll(6).Return(faceBank)
	_, err := s.gameService.Roll(s.ctx, &RollInput{ChannelID: s.testChannelID, PlayerID: s.testCreatorID})
	s.Require().NoError(err)

	s.movementC <- s.testTime
	s.Equal(UpdateStep, s.nextUpdate().Kind)
	s.movementC <- s.testTime
	step := s.nextUpdate()
	s.Equal(UpdateStep, step.Kind)
	s.Equal(2, step.Session.Players[0].Position)

	s.mockDiceRoller.EXPECT().Roll(3).Return(2)
	s.mockUUID.EXPECT().NewUUID().Return("entry-1")
	s.mockLedgerRepo.EXPECT().AddEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerRepo.AddEntryInput) error {
			s.Equal(models.LedgerReasonBankCorrection, input.Entry.Reason)
			s.Equal(1500, input.Entry.Delta)
			s.Equal(74550, input.Entry.Balance)
			return nil
		})

	s.movementC <- s.testTime
	landed := s.nextUpdate()
	s.Equal(UpdateLanded, landed.Kind)
	s.Require().NotNil(landed.Landing.Event)
	s.Equal(models.EventKindBank, landed.Landing.Event.Kind)
	s.Equal(1, landed.Session.Turn)
	s.Equal(models.PhaseIdle, landed.Session.Phase)
}

func (s *GameServiceTestSuite) TestSkipTurn() {
	s.startSession()

	output, err := s.gameService.SkipTurn(s.ctx, &SkipTurnInput{ChannelID: s.testChannelID, PlayerID: s.testCreatorID})
	s.Require().NoError(err)
	s.Equal(models.EventKindTurnSkipped, output.Event.Kind)
	s.Equal(1, output.Session.Turn)

	_, err = s.gameService.SkipTurn(s.ctx, &SkipTurnInput{ChannelID: s.testChannelID, PlayerID: s.testCreatorID})
	s.ErrorIs(err, ErrNotYourTurn)
}

func (s *GameServiceTestSuite) TestCountdown() {
	s.startSession()

	for i := 0; i < 300; i++ {
		s.countdownC <- s.testTime
	}

	var kinds []UpdateKind
	for i := 0; i < 10; i++ {
		kinds = append(kinds, s.nextUpdate().Kind)
	}
	s.Empty(s.listener.updates)

	// 4:00, 3:00, 2:00, 1:00, then every ten seconds
	for _, kind := range kinds[:9] {
		s.Equal(UpdateCountdown, kind)
	}
	s.Equal(UpdateTimeUp, kinds[9])

	_, err := s.gameService.Roll(s.ctx, &RollInput{ChannelID: s.testChannelID, PlayerID: s.testCreatorID})
	s.ErrorIs(err, engine.ErrTimeExpired)

	ranking, err := s.gameService.GetRanking(s.ctx, &GetRankingInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.True(ranking.Final)
	s.Len(ranking.Ranking, 2)
}

func (s *GameServiceTestSuite) TestEndSession() {
	s.startSession()

	_, err := s.gameService.EndSession(s.ctx, &EndSessionInput{ChannelID: s.testChannelID, RequesterID: s.testPlayerID})
	s.ErrorIs(err, ErrNotCreator)

	s.mockSessionRepo.EXPECT().
		DeleteSession(gomock.Any(), &sessionRepo.DeleteSessionInput{SessionID: s.testSessionID}).
		Return(nil)
	s.mockLedgerRepo.EXPECT().
		DeleteEntries(gomock.Any(), &ledgerRepo.DeleteEntriesInput{SessionID: s.testSessionID}).
		Return(nil)

	output, err := s.gameService.EndSession(s.ctx, &EndSessionInput{ChannelID: s.testChannelID, RequesterID: s.testCreatorID})
	s.Require().NoError(err)
	s.Require().Len(output.Ranking, 2)
	s.Equal(s.testCreatorID, output.Ranking[0].PlayerID)

	s.mockSessionRepo.EXPECT().GetSessionByChannel(gomock.Any(), gomock.Any()).Return(nil, sessionRepo.ErrSessionNotFound)
	_, err = s.gameService.GetSession(s.ctx, &GetSessionInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *GameServiceTestSuite) TestResume() {
	snap := s.snapshot(120)
	s.mockSessionRepo.EXPECT().GetActiveSessions(gomock.Any(), gomock.Any()).
		Return(&sessionRepo.GetActiveSessionsOutput{Sessions: []*models.Session{snap}}, nil)

	s.Require().NoError(s.gameService.Resume(s.ctx))

	output, err := s.gameService.GetSession(s.ctx, &GetSessionInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.Equal(120, output.Session.TimeLeft)

	s.mockSessionRepo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)
	skipped, err := s.gameService.SkipTurn(s.ctx, &SkipTurnInput{ChannelID: s.testChannelID, PlayerID: s.testCreatorID})
	s.Require().NoError(err)
	s.Equal(1, skipped.Session.Turn)
}

func (s *GameServiceTestSuite) TestResume_StoreFailure() {
	s.mockSessionRepo.EXPECT().GetActiveSessions(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	s.Error(s.gameService.Resume(s.ctx))
}

func (s *GameServiceTestSuite) TestGetRanking_FromStore() {
	s.mockSessionRepo.EXPECT().GetSessionByChannel(gomock.Any(), gomock.Any()).Return(s.snapshot(0), nil)

	output, err := s.gameService.GetRanking(s.ctx, &GetRankingInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.True(output.Final)
	s.Len(output.Ranking, 2)
}

func (s *GameServiceTestSuite) TestGetLedger() {
	s.startSession()

	entries := []*models.LedgerEntry{{ID: "entry-1", SessionID: s.testSessionID}}
	s.mockLedgerRepo.EXPECT().
		GetEntriesForSession(gomock.Any(), &ledgerRepo.GetEntriesForSessionInput{SessionID: s.testSessionID, Limit: 5}).
		Return(&ledgerRepo.GetEntriesForSessionOutput{Entries: entries}, nil)

	output, err := s.gameService.GetLedger(s.ctx, &GetLedgerInput{ChannelID: s.testChannelID, Limit: 5})
	s.Require().NoError(err)
	s.Equal(entries, output.Entries)
}
