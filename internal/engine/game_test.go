package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/cuentasclaras/internal/board"
	clockMocks "github.com/KirkDiggler/cuentasclaras/internal/common/clock/mocks"
	"github.com/KirkDiggler/cuentasclaras/internal/denomination"
	diceMocks "github.com/KirkDiggler/cuentasclaras/internal/dice/mocks"
	"github.com/KirkDiggler/cuentasclaras/internal/missions"
	"github.com/KirkDiggler/cuentasclaras/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// Die faces in board order: supermercado=1 feria=2 panaderia=3 banco=4 almacen=5 libreria=6.
// From cell 0 the feria is 1 step away, the panaderia 2 and the bank 3.
const (
	faceFair     = 2
	faceBakery   = 3
	faceBank     = 4
	faceBookshop = 6

	startingTotal = 73050
)

type GameTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRoller *diceMocks.MockRoller
	mockClock  *clockMocks.MockClock

	board         *board.Topology
	denominations *denomination.Catalog
	missions      *missions.Catalog
	now           time.Time
}

func (s *GameTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.now = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.now).AnyTimes()

	var err error
	s.board, err = board.New(nil)
	s.Require().NoError(err)

	s.denominations, err = denomination.Load()
	s.Require().NoError(err)

	deduction := 3800
	// One card per place so draws never touch the roller, except the bookshop
	s.missions, err = missions.New([]models.Mission{
		{ID: "fer-1", Place: models.PlaceFair, Amount: 1500, Difficulty: models.DifficultyBasic, Kind: models.MissionKindAddition},
		{ID: "sup-1", Place: models.PlaceSupermarket, Amount: 2300, Difficulty: models.DifficultyBasic, Kind: models.MissionKindAddition},
		{ID: "alm-1", Place: models.PlaceCornerShop, Amount: 80000, Difficulty: models.DifficultyBasic, Kind: models.MissionKindMultiplication},
		{ID: "lib-1", Place: models.PlaceBookshop, Amount: 6200, Difficulty: models.DifficultyBasic, Kind: models.MissionKindSubtraction, Deduction: &deduction},
		{ID: "lib-2", Place: models.PlaceBookshop, Amount: 900, Difficulty: models.DifficultyBasic, Kind: models.MissionKindAddition},
	})
	s.Require().NoError(err)
}

func (s *GameTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameTestSuite(t *testing.T) {
	suite.Run(t, new(GameTestSuite))
}

func (s *GameTestSuite) config(players int) *Config {
	setups := make([]models.PlayerSetup, players)
	for i := range setups {
		setups[i] = models.PlayerSetup{ID: string(rune('a' + i))}
	}
	return &Config{
		SessionID:     "session-1",
		ChannelID:     "channel-1",
		Board:         s.board,
		Missions:      s.missions,
		Denominations: s.denominations,
		Roller:        s.mockRoller,
		Clock:         s.mockClock,
		Players:       setups,
		Minutes:       5,
	}
}

func (s *GameTestSuite) newGame(players int) *Game {
	g, err := New(s.config(players))
	s.Require().NoError(err)
	return g
}

// moveTo rolls face and walks until the token lands
func (s *GameTestSuite) moveTo(g *Game, face int) *Landing {
	s.mockRoller.EXPECT().Roll(6).Return(face)

	result, err := g.Roll()
	s.Require().NoError(err)
	if result.Landing != nil {
		return result.Landing
	}

	for {
		step, err := g.AdvanceOneStep()
		s.Require().NoError(err)
		if step.Landing != nil {
			return step.Landing
		}
	}
}

func (s *GameTestSuite) TestNew_AppliesSetupDefaults() {
	g := s.newGame(2)
	snap := g.Snapshot()

	s.Equal("session-1", snap.ID)
	s.Equal("channel-1", snap.ChannelID)
	s.Equal(models.PhaseIdle, snap.Phase)
	s.Equal(models.DifficultyBasic, snap.Difficulty)
	s.Equal(300, snap.TimeLeft)
	s.Equal(300, snap.DurationSeconds)
	s.Equal(0, snap.Turn)
	s.Require().Len(snap.Players, 2)
	s.Equal("Jugador 1", snap.Players[0].Name)
	s.Equal("Jugador 2", snap.Players[1].Name)
	s.Equal("#f87171", snap.Players[0].Color)
	s.Equal("#60a5fa", snap.Players[1].Color)
	s.Equal(0, snap.Players[0].Position)
	s.Nil(snap.Players[0].WalletTotalOverride)
	s.Equal(DefaultStepInterval, g.TickInterval())

	total, ok := g.Total("a")
	s.True(ok)
	s.Equal(startingTotal, total)
}

func (s *GameTestSuite) TestNew_KeepsProvidedSetup() {
	cfg := s.config(1)
	cfg.Players[0] = models.PlayerSetup{ID: "u1", Name: "Rosa", Color: "#000000", Avatar: "gato"}
	cfg.Difficulty = models.DifficultyAdvanced
	cfg.StepInterval = time.Second

	g, err := New(cfg)
	s.Require().NoError(err)

	p := g.Snapshot().Players[0]
	s.Equal("u1", p.ID)
	s.Equal("Rosa", p.Name)
	s.Equal("#000000", p.Color)
	s.Equal("gato", p.Avatar)
	s.Equal(models.DifficultyAdvanced, g.Snapshot().Difficulty)
	s.Equal(time.Second, g.TickInterval())
}

func (s *GameTestSuite) TestClampMinutes() {
	testCases := []struct {
		name    string
		minutes int
		want    int
	}{
		{name: "zero uses default", minutes: 0, want: 45},
		{name: "below minimum", minutes: 3, want: 5},
		{name: "negative", minutes: -4, want: 5},
		{name: "above maximum", minutes: 90, want: 60},
		{name: "in range", minutes: 10, want: 10},
		{name: "bounds", minutes: 60, want: 60},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, ClampMinutes(tc.minutes))
		})
	}
}

func (s *GameTestSuite) TestNew_ValidatesInput() {
	testCases := []struct {
		name   string
		mutate func(cfg *Config)
		want   error
	}{
		{name: "no board", mutate: func(cfg *Config) { cfg.Board = nil }, want: ErrNilBoard},
		{name: "no missions", mutate: func(cfg *Config) { cfg.Missions = nil }, want: ErrNilMissions},
		{name: "no denominations", mutate: func(cfg *Config) { cfg.Denominations = nil }, want: ErrNilDenominations},
		{name: "no roller", mutate: func(cfg *Config) { cfg.Roller = nil }, want: ErrNilRoller},
		{name: "no players", mutate: func(cfg *Config) { cfg.Players = nil }, want: ErrInvalidPlayerCount},
		{name: "too many players", mutate: func(cfg *Config) { cfg.Players = make([]models.PlayerSetup, 5) }, want: ErrInvalidPlayerCount},
		{name: "bad difficulty", mutate: func(cfg *Config) { cfg.Difficulty = "experto" }, want: ErrInvalidDifficulty},
		{name: "empty bank events", mutate: func(cfg *Config) { cfg.BankEvents = []BankEvent{} }, want: ErrNoBankEvents},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := s.config(2)
			tc.mutate(cfg)

			g, err := New(cfg)
			s.Nil(g)
			s.ErrorIs(err, tc.want)
		})
	}

	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)
}

func (s *GameTestSuite) TestRoll_StartsMovement() {
	g := s.newGame(2)
	s.mockRoller.EXPECT().Roll(6).Return(faceBank)

	result, err := g.Roll()
	s.Require().NoError(err)
	s.Nil(result.Landing)
	s.Equal(models.PlaceBank, result.Roll.Place)
	s.Equal(3, result.Roll.Steps)
	s.Equal(0, result.Roll.From)
	s.Equal("a", result.Roll.PlayerID)
	s.Equal(s.now, result.Roll.Timestamp)

	snap := g.Snapshot()
	s.Equal(models.PhaseMoving, snap.Phase)
	s.Equal(models.PlaceBank, snap.ActivePlace)
	s.Equal(3, snap.StepsRemaining)
}

func (s *GameTestSuite) TestMoving_BlocksOtherActions() {
	g := s.newGame(2)
	s.mockRoller.EXPECT().Roll(6).Return(faceBank)
	_, err := g.Roll()
	s.Require().NoError(err)

	before := g.Snapshot()

	_, err = g.Roll()
	s.ErrorIs(err, ErrInvalidPhase)
	_, err = g.SkipTurn()
	s.ErrorIs(err, ErrInvalidPhase)
	s.ErrorIs(g.AcceptMission(), ErrInvalidPhase)
	_, err = g.SubmitAmount(1500)
	s.ErrorIs(err, ErrInvalidPhase)

	s.Equal(before, g.Snapshot())
}

func (s *GameTestSuite) TestAdvanceOneStep_MovesOneCellAtATime() {
	g := s.newGame(1)
	s.mockRoller.EXPECT().Roll(6).Return(faceBookshop)
	_, err := g.Roll()
	s.Require().NoError(err)

	for want := 1; want < 5; want++ {
		step, err := g.AdvanceOneStep()
		s.Require().NoError(err)
		s.Equal(want, step.Position)
		s.Equal(5-want, step.Remaining)
		s.Nil(step.Landing)
	}

	s.mockRoller.EXPECT().Roll(2).Return(1)
	step, err := g.AdvanceOneStep()
	s.Require().NoError(err)
	s.Equal(5, step.Position)
	s.Require().NotNil(step.Landing)
	s.Equal(models.PlaceBookshop, step.Landing.Place)
	s.Equal("lib-1", step.Landing.Mission.ID)
	s.Equal(models.PhaseMissionOffered, g.Phase())
}

func (s *GameTestSuite) TestAdvanceOneStep_RequiresMovement() {
	g := s.newGame(1)

	_, err := g.AdvanceOneStep()
	s.ErrorIs(err, ErrInvalidPhase)
}

func (s *GameTestSuite) TestBankLanding() {
	testCases := []struct {
		name   string
		face   int
		total  int
		reason models.LedgerReason
		amount int
	}{
		{name: "commission", face: 1, total: 72050, reason: models.LedgerReasonBankCommission, amount: -1000},
		{name: "correction", face: 2, total: 74550, reason: models.LedgerReasonBankCorrection, amount: 1500},
		{name: "maintenance", face: 3, total: 72550, reason: models.LedgerReasonBankMaintenance, amount: -500},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			g := s.newGame(2)
			s.mockRoller.EXPECT().Roll(3).Return(tc.face)

			landing := s.moveTo(g, faceBank)
			s.Nil(landing.Mission)
			s.Require().NotNil(landing.Event)
			s.Equal(models.EventKindBank, landing.Event.Kind)
			s.Equal(tc.reason, landing.Event.Reason)
			s.Equal(tc.amount, landing.Event.Amount)
			s.Equal(tc.total, landing.Event.Balance)

			snap := g.Snapshot()
			s.Equal(1, snap.Turn)
			s.Equal(models.PhaseIdle, snap.Phase)
			s.Empty(snap.ActivePlace)
			s.Nil(snap.Mission)
			s.Equal(3, snap.Players[0].Position)
			s.Require().NotNil(snap.Players[0].WalletTotalOverride)
			s.Equal(tc.total, *snap.Players[0].WalletTotalOverride)
			s.Equal(tc.reason, snap.LastEvent.Reason)

			total, _ := g.Total("a")
			s.Equal(tc.total, total)
		})
	}
}

func (s *GameTestSuite) TestBankLanding_FloorsAtZero() {
	snapshot := s.newGame(1).Snapshot()
	low := 300
	snapshot.Players[0].WalletTotalOverride = &low

	g, err := Restore(s.config(1), snapshot)
	s.Require().NoError(err)

	s.mockRoller.EXPECT().Roll(3).Return(1)
	landing := s.moveTo(g, faceBank)

	s.Equal(0, landing.Event.Balance)
	s.Equal(-300, landing.Event.Amount)
	s.Equal(1000, landing.Event.Charged)
}

func (s *GameTestSuite) TestMissionSuccess() {
	g := s.newGame(2)

	landing := s.moveTo(g, faceFair)
	s.Require().NotNil(landing.Mission)
	s.Equal(1500, landing.Mission.Amount)

	s.Require().NoError(g.AcceptMission())
	s.Equal(models.PhaseBuilding, g.Phase())

	event, err := g.SubmitAmount(1500)
	s.Require().NoError(err)
	s.Equal(models.EventKindMissionSuccess, event.Kind)
	s.Equal(1500, event.Built)
	s.Equal(1500, event.Target)
	s.Equal(1500, event.Charged)
	s.Equal(-1500, event.Amount)
	s.Equal(startingTotal-1500, event.Balance)
	s.Equal("fer-1", event.MissionID)

	snap := g.Snapshot()
	s.Equal(1, snap.Players[0].Stars)
	s.Equal(1, snap.Turn)
	s.Equal(models.PhaseIdle, snap.Phase)
	s.Nil(snap.Mission)
	s.Nil(snap.Builder)
	s.Empty(snap.ActivePlace)

	total, _ := g.Total("a")
	s.Equal(startingTotal-1500, total)
}

func (s *GameTestSuite) TestMissionFailure() {
	g := s.newGame(2)
	s.moveTo(g, faceFair)
	s.Require().NoError(g.AcceptMission())

	event, err := g.SubmitAmount(1400)
	s.Require().NoError(err)
	s.Equal(models.EventKindMissionFailure, event.Kind)
	s.Equal(1400, event.Built)
	s.Equal(1500, event.Target)
	s.Equal(0, event.Amount)
	s.Equal(startingTotal, event.Balance)

	snap := g.Snapshot()
	s.Equal(0, snap.Players[0].Stars)
	s.Nil(snap.Players[0].WalletTotalOverride)
	s.Equal(1, snap.Turn)
	s.Equal(models.PhaseIdle, snap.Phase)
	s.Nil(snap.Mission)
}

func (s *GameTestSuite) TestMissionSuccess_UsesDeduction() {
	g := s.newGame(1)
	s.mockRoller.EXPECT().Roll(2).Return(1)
	s.moveTo(g, faceBookshop)
	s.Require().NoError(g.AcceptMission())

	event, err := g.SubmitAmount(6200)
	s.Require().NoError(err)
	s.Equal(models.EventKindMissionSuccess, event.Kind)
	s.Equal(6200, event.Built)
	s.Equal(3800, event.Charged)
	s.Equal(startingTotal-3800, event.Balance)
}

func (s *GameTestSuite) TestMissionSuccess_FloorsAtZero() {
	g := s.newGame(1)
	// Almacen is four cells away
	s.moveTo(g, 5)
	s.Require().NoError(g.AcceptMission())

	event, err := g.SubmitAmount(80000)
	s.Require().NoError(err)
	s.Equal(0, event.Balance)
	s.Equal(-startingTotal, event.Amount)
	s.Equal(1, g.Snapshot().Players[0].Stars)
}

func (s *GameTestSuite) TestBuilder() {
	g := s.newGame(1)
	s.moveTo(g, faceFair)

	_, err := g.AdjustBuilder("1000", 1)
	s.ErrorIs(err, ErrInvalidPhase)

	s.Require().NoError(g.AcceptMission())

	total, err := g.AdjustBuilder("1000", 1)
	s.Require().NoError(err)
	s.Equal(1000, total)

	total, err = g.AdjustBuilder("500", 2)
	s.Require().NoError(err)
	s.Equal(2000, total)

	total, err = g.AdjustBuilder("500", -1)
	s.Require().NoError(err)
	s.Equal(1500, total)

	_, err = g.AdjustBuilder("3", 1)
	s.ErrorIs(err, ErrUnknownDenomination)
	s.Equal(1500, g.BuilderTotal())

	event, err := g.SubmitBuilder()
	s.Require().NoError(err)
	s.Equal(models.EventKindMissionSuccess, event.Kind)
	s.Equal(1500, event.Built)
}

func (s *GameTestSuite) TestBuilder_ClampsAndClears() {
	g := s.newGame(1)
	s.moveTo(g, faceFair)
	s.Require().NoError(g.AcceptMission())

	total, err := g.AdjustBuilder("100", -1_000_000)
	s.Require().NoError(err)
	s.Equal(0, total)
	s.Equal(0, g.Snapshot().Builder["100"])

	_, err = g.AdjustBuilder("10000", 3)
	s.Require().NoError(err)
	s.Require().NoError(g.ClearBuilder())
	s.Equal(0, g.BuilderTotal())
	s.Equal(models.PhaseBuilding, g.Phase())
}

func (s *GameTestSuite) TestRequestAnotherMission() {
	g := s.newGame(1)
	s.mockRoller.EXPECT().Roll(2).Return(1)
	landing := s.moveTo(g, faceBookshop)
	s.Equal("lib-1", landing.Mission.ID)

	s.mockRoller.EXPECT().Roll(2).Return(2)
	mission, err := g.RequestAnotherMission()
	s.Require().NoError(err)
	s.Equal("lib-2", mission.ID)

	snap := g.Snapshot()
	s.Equal(models.PhaseMissionOffered, snap.Phase)
	s.Equal(models.PlaceBookshop, snap.ActivePlace)
	s.Equal("lib-2", snap.Mission.ID)
	s.Equal(0, snap.Turn)
}

func (s *GameTestSuite) TestRequestAnotherMission_SingleCardIsStable() {
	g := s.newGame(1)
	s.moveTo(g, faceFair)

	for i := 0; i < 3; i++ {
		mission, err := g.RequestAnotherMission()
		s.Require().NoError(err)
		s.Equal("fer-1", mission.ID)
		s.Equal(models.PhaseMissionOffered, g.Phase())
	}
}

func (s *GameTestSuite) TestRequestAnotherMission_OutsideOffer() {
	g := s.newGame(1)

	_, err := g.RequestAnotherMission()
	s.ErrorIs(err, ErrInvalidPhase)

	s.moveTo(g, faceFair)
	s.Require().NoError(g.AcceptMission())

	_, err = g.RequestAnotherMission()
	s.ErrorIs(err, ErrInvalidPhase)
	s.ErrorIs(g.AcceptMission(), ErrInvalidPhase)
}

func (s *GameTestSuite) TestLanding_NoMissionForPlace() {
	g := s.newGame(2)
	s.mockRoller.EXPECT().Roll(6).Return(faceBakery)
	_, err := g.Roll()
	s.Require().NoError(err)

	_, err = g.AdvanceOneStep()
	s.Require().NoError(err)

	step, err := g.AdvanceOneStep()
	s.ErrorIs(err, missions.ErrNoMissionAvailable)
	s.Require().NotNil(step)
	s.Equal(2, step.Position)

	snap := g.Snapshot()
	s.Equal(models.PhaseIdle, snap.Phase)
	s.Empty(snap.ActivePlace)
	s.Equal(0, snap.Turn)

	_, err = g.SkipTurn()
	s.Require().NoError(err)
}

func (s *GameTestSuite) TestRoll_AbandonsOfferedMission() {
	g := s.newGame(1)
	s.moveTo(g, faceFair)
	s.Require().NoError(g.AcceptMission())
	_, err := g.AdjustBuilder("1000", 1)
	s.Require().NoError(err)

	s.mockRoller.EXPECT().Roll(6).Return(faceBank)
	_, err = g.Roll()
	s.Require().NoError(err)

	snap := g.Snapshot()
	s.Equal(models.PhaseMoving, snap.Phase)
	s.Nil(snap.Mission)
	s.Nil(snap.Builder)
	s.Equal(models.PlaceBank, snap.ActivePlace)
	s.Equal(2, snap.StepsRemaining)
}

func (s *GameTestSuite) TestSkipTurn_IsCyclic() {
	g := s.newGame(3)

	for i := 0; i < 3; i++ {
		event, err := g.SkipTurn()
		s.Require().NoError(err)
		s.Equal(models.EventKindTurnSkipped, event.Kind)
	}
	s.Equal(0, g.Snapshot().Turn)

	_, err := g.SkipTurn()
	s.Require().NoError(err)
	s.Equal(1, g.Snapshot().Turn)
}

func (s *GameTestSuite) TestTurnEndingActions_AreCyclic() {
	g := s.newGame(3)

	// Submit, bank and skip each end one turn
	s.moveTo(g, faceFair)
	s.Require().NoError(g.AcceptMission())
	_, err := g.SubmitAmount(1)
	s.Require().NoError(err)

	s.mockRoller.EXPECT().Roll(3).Return(2)
	s.moveTo(g, faceBank)

	_, err = g.SkipTurn()
	s.Require().NoError(err)

	s.Equal(0, g.Snapshot().Turn)
}

func (s *GameTestSuite) TestTick() {
	g := s.newGame(1)

	for i := 0; i < 299; i++ {
		s.False(g.Tick())
	}
	s.Equal(1, g.Snapshot().TimeLeft)
	s.True(g.Snapshot().Danger())
	s.False(g.Expired())

	s.True(g.Tick())
	s.True(g.Expired())
	s.False(g.Snapshot().Danger())

	s.False(g.Tick())
	s.Equal(0, g.Snapshot().TimeLeft)
}

func (s *GameTestSuite) TestExpired_FreezesState() {
	g := s.newGame(2)
	s.moveTo(g, faceFair)
	s.Require().NoError(g.AcceptMission())
	s.expire(g)

	before := g.Snapshot()

	_, err := g.Roll()
	s.ErrorIs(err, ErrTimeExpired)
	_, err = g.SubmitAmount(1500)
	s.ErrorIs(err, ErrTimeExpired)
	_, err = g.SubmitBuilder()
	s.ErrorIs(err, ErrTimeExpired)
	_, err = g.AdjustBuilder("1000", 1)
	s.ErrorIs(err, ErrTimeExpired)
	_, err = g.SkipTurn()
	s.ErrorIs(err, ErrTimeExpired)
	_, err = g.RequestAnotherMission()
	s.ErrorIs(err, ErrTimeExpired)
	s.ErrorIs(g.AcceptMission(), ErrTimeExpired)
	s.ErrorIs(g.ClearBuilder(), ErrTimeExpired)

	s.Equal(before, g.Snapshot())
	s.Equal(models.PhaseBuilding, before.Phase)
}

func (s *GameTestSuite) TestExpired_MovementStillLands() {
	g := s.newGame(1)
	s.mockRoller.EXPECT().Roll(6).Return(faceFair)
	_, err := g.Roll()
	s.Require().NoError(err)
	s.expire(g)

	step, err := g.AdvanceOneStep()
	s.Require().NoError(err)
	s.Require().NotNil(step.Landing)
	s.Equal(models.PhaseMissionOffered, g.Phase())

	s.ErrorIs(g.AcceptMission(), ErrTimeExpired)
}

func (s *GameTestSuite) TestRanking() {
	g := s.newGame(3)

	// Player a gets the correction, player b pays a mission
	s.mockRoller.EXPECT().Roll(3).Return(2)
	s.moveTo(g, faceBank)
	s.moveTo(g, faceFair)
	s.Require().NoError(g.AcceptMission())
	_, err := g.SubmitAmount(1500)
	s.Require().NoError(err)
	s.expire(g)

	ranking := g.Ranking()
	s.Require().Len(ranking, 3)

	s.Equal(1, ranking[0].Rank)
	s.Equal("b", ranking[0].PlayerID)
	s.Equal(startingTotal-1500, ranking[0].Total)
	s.Equal(1, ranking[0].Stars)

	s.Equal(2, ranking[1].Rank)
	s.Equal("c", ranking[1].PlayerID)
	s.Equal(startingTotal, ranking[1].Total)

	s.Equal(3, ranking[2].Rank)
	s.Equal("a", ranking[2].PlayerID)
	s.Equal(startingTotal+1500, ranking[2].Total)
}

func (s *GameTestSuite) TestRanking_TiesKeepTurnOrder() {
	g := s.newGame(4)

	ranking := g.Ranking()
	s.Require().Len(ranking, 4)
	for i, want := range []string{"a", "b", "c", "d"} {
		s.Equal(want, ranking[i].PlayerID)
		s.Equal(i+1, ranking[i].Rank)
		s.Equal(startingTotal, ranking[i].Total)
	}
}

func (s *GameTestSuite) TestSnapshot_IsDeepCopy() {
	g := s.newGame(1)
	s.moveTo(g, faceFair)

	snap := g.Snapshot()
	snap.Players[0].Wallet["20000"] = 99
	snap.Players[0].Position = 10
	snap.Mission.Amount = 1

	fresh := g.Snapshot()
	s.NotEqual(99, fresh.Players[0].Wallet["20000"])
	s.Equal(1, fresh.Players[0].Position)
	s.Equal(1500, fresh.Mission.Amount)
}

func (s *GameTestSuite) TestRestore_ContinuesPlay() {
	g := s.newGame(2)
	s.moveTo(g, faceFair)

	restored, err := Restore(s.config(2), g.Snapshot())
	s.Require().NoError(err)
	s.Equal(models.PhaseMissionOffered, restored.Phase())

	s.Require().NoError(restored.AcceptMission())
	event, err := restored.SubmitAmount(1500)
	s.Require().NoError(err)
	s.Equal(models.EventKindMissionSuccess, event.Kind)

	// The original is untouched
	s.Equal(models.PhaseMissionOffered, g.Phase())
}

func (s *GameTestSuite) TestRestore_Validates() {
	_, err := Restore(s.config(1), nil)
	s.ErrorIs(err, ErrNilSnapshot)

	_, err = Restore(s.config(1), &models.Session{})
	s.ErrorIs(err, ErrInvalidPlayerCount)

	snapshot := s.newGame(2).Snapshot()
	snapshot.Turn = 2
	_, err = Restore(s.config(2), snapshot)
	s.ErrorIs(err, ErrInvalidTurn)

	snapshot.Turn = -1
	_, err = Restore(s.config(2), snapshot)
	s.ErrorIs(err, ErrInvalidTurn)

	cfg := s.config(1)
	cfg.Roller = nil
	_, err = Restore(cfg, s.newGame(1).Snapshot())
	s.True(errors.Is(err, ErrNilRoller))
}

func (s *GameTestSuite) expire(g *Game) {
	for !g.Expired() {
		g.Tick()
	}
}
