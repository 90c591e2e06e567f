package league

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/hoopsclient/internal/dependencies/mocks"
	"github.com/mcoot/hoopsclient/internal/model"
	"github.com/mcoot/hoopsclient/internal/testutil"
)

// Fixture IDs used below
const (
	lebron  = 1 // SF 42.5
	curry   = 2 // PG 45.0
	jokic   = 5 // C 43.0
	embiid  = 6 // C 41.5
	luka    = 7 // PG 43.5
	lillard = 9 // PG 37.5
)

type StoreSuite struct {
	suite.Suite
	clock  *mocks.MockClock
	random *mocks.MockRandom
	store  *Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.store = New(s.clock, s.random, testutil.NopLogger())
}

// Market tests

func (s *StoreSuite) TestPlayersSeeded() {
	players := s.store.Players()
	s.Len(players, 12)
	s.Equal(1, players[0].ID)
	s.Equal("LeBron James", players[0].Name)
	s.Equal("Small Forward", players[0].Position)
}

func (s *StoreSuite) TestPlayersByPosition() {
	guards := s.store.PlayersByPosition("pg")
	s.Len(guards, 3)
	for _, p := range guards {
		s.Equal(model.PositionPointGuard, p.PositionShort)
	}

	s.Empty(s.store.PlayersByPosition("XX"))
}

func (s *StoreSuite) TestPlayerNotFound() {
	_, err := s.store.Player(999)
	s.ErrorIs(err, ErrPlayerNotFound)
}

// Team tests

func (s *StoreSuite) TestCreateTeamDefaults() {
	team := s.store.CreateTeam("u1", "bob", "")

	s.Equal("bob's Team", team.TeamName)
	s.Equal(DefaultBudget, team.Budget)
	s.Equal(DefaultBudget, team.TotalBudget)
	s.Equal(model.FormationStandard, team.Formation)
	s.Empty(team.Players)
	s.Require().NotNil(team.Rank)
	s.Equal(1, *team.Rank)
}

func (s *StoreSuite) TestTeamNotFound() {
	_, err := s.store.Team("nobody")
	s.ErrorIs(err, ErrTeamNotFound)
}

func (s *StoreSuite) TestAddPlayerSpendsBudget() {
	s.store.CreateTeam("u1", "bob", "Ballers")

	team, err := s.store.AddPlayer("u1", lebron, "")
	s.Require().NoError(err)

	s.Len(team.Players, 1)
	s.Equal(DefaultBudget-42.5, team.Budget)
}

func (s *StoreSuite) TestAddPlayerTwiceFails() {
	s.store.CreateTeam("u1", "bob", "")
	_, _ = s.store.AddPlayer("u1", lebron, "")

	_, err := s.store.AddPlayer("u1", lebron, "")
	s.ErrorIs(err, ErrAlreadyOnTeam)
}

func (s *StoreSuite) TestAddPlayerPositionMismatch() {
	s.store.CreateTeam("u1", "bob", "")

	_, err := s.store.AddPlayer("u1", lebron, model.PositionCenter)
	s.ErrorIs(err, ErrPositionMismatch)

	_, err = s.store.AddPlayer("u1", lebron, "sf")
	s.NoError(err)
}

func (s *StoreSuite) TestAddPlayerRespectsFormationSlots() {
	s.store.CreateTeam("u1", "bob", "")
	_, err := s.store.AddPlayer("u1", jokic, "")
	s.Require().NoError(err)

	_, err = s.store.AddPlayer("u1", embiid, "")
	s.ErrorIs(err, ErrPositionFull)
}

func (s *StoreSuite) TestAddPlayerRespectsBudget() {
	s.store.CreateTeam("u1", "bob", "")
	_, err := s.store.SetFormation("u1", model.FormationSmallBall)
	s.Require().NoError(err)

	for _, id := range []int{curry, luka, lillard, lebron} {
		_, err := s.store.AddPlayer("u1", id, "")
		s.Require().NoError(err)
	}
	// 168.5 spent; Giannis costs 44
	_, err = s.store.AddPlayer("u1", 3, "")
	s.ErrorIs(err, ErrBudgetExceeded)
}

func (s *StoreSuite) TestRemovePlayerRefundsBudget() {
	s.store.CreateTeam("u1", "bob", "")
	_, _ = s.store.AddPlayer("u1", lebron, "")

	team, err := s.store.RemovePlayer("u1", lebron)
	s.Require().NoError(err)
	s.Empty(team.Players)
	s.Equal(DefaultBudget, team.Budget)

	_, err = s.store.RemovePlayer("u1", lebron)
	s.ErrorIs(err, ErrNotOnTeam)
}

func (s *StoreSuite) TestSetFormation() {
	s.store.CreateTeam("u1", "bob", "")

	team, err := s.store.SetFormation("u1", model.FormationTwinTowers)
	s.Require().NoError(err)
	s.Equal(model.FormationTwinTowers, team.Formation)

	_, err = s.store.SetFormation("u1", "zone")
	s.ErrorIs(err, model.ErrUnknownFormation)
}

func (s *StoreSuite) TestSetFormationConflict() {
	s.store.CreateTeam("u1", "bob", "")
	_, _ = s.store.AddPlayer("u1", jokic, "")

	_, err := s.store.SetFormation("u1", model.FormationSmallBall)
	s.ErrorIs(err, ErrFormationConflict)
}

func (s *StoreSuite) TestSetTeamName() {
	s.store.CreateTeam("u1", "bob", "Old")

	team, err := s.store.SetTeamName("u1", "New")
	s.Require().NoError(err)
	s.Equal("New", team.TeamName)
}

func (s *StoreSuite) TestValidate() {
	s.store.CreateTeam("u1", "bob", "")
	_, _ = s.store.AddPlayer("u1", jokic, "")

	ok, err := s.store.Validate("u1", lebron)
	s.Require().NoError(err)
	s.True(ok.Valid)
	s.Require().NotNil(ok.BudgetRemaining)
	s.Equal(DefaultBudget-43.0, *ok.BudgetRemaining)

	full, err := s.store.Validate("u1", embiid)
	s.Require().NoError(err)
	s.False(full.Valid)
	s.Equal(ErrPositionFull.Error(), full.Message)

	_, err = s.store.Validate("u1", 999)
	s.ErrorIs(err, ErrPlayerNotFound)
}

// Ranking tests

func (s *StoreSuite) TestSimulateRoundAwardsPointsAndRanks() {
	s.store.CreateTeam("u1", "alice", "")
	s.store.CreateTeam("u2", "bob", "")
	_, _ = s.store.AddPlayer("u2", lebron, "")

	// Player 1 (LeBron) gets 30, every other player 0
	s.random.Queue(30)
	s.store.SimulateRound()

	top := s.store.Top(10)
	s.Require().Len(top, 2)
	s.Equal("u2", top[0].UserID)
	s.Equal(30, top[0].Points)
	s.Equal(1, top[0].Rank)
	s.Equal("u1", top[1].UserID)
	s.Equal(2, top[1].Rank)

	stats, err := s.store.Stats("u2")
	s.Require().NoError(err)
	s.Equal(30, stats.TotalPoints)
	s.Equal(30, stats.WeeklyPoints)
	s.Equal(1, stats.Rank)
	s.Equal(1, stats.WeeklyRankChange)
}

func (s *StoreSuite) TestSimulateRoundRecordsActivity() {
	s.store.CreateTeam("u1", "alice", "")
	s.store.CreateTeam("u2", "bob", "")
	_, _ = s.store.AddPlayer("u2", lebron, "")
	s.random.Queue(30)
	s.store.SimulateRound()

	activity, err := s.store.Activity("u2", 10)
	s.Require().NoError(err)
	s.Require().Len(activity, 3)
	s.Equal(model.ActivityRankChange, activity[0].Type)
	s.Equal(model.ActivityPointsEarned, activity[1].Type)
	s.Require().NotNil(activity[1].Points)
	s.Equal(30, *activity[1].Points)
	s.Equal(model.ActivityPlayerAdded, activity[2].Type)
	s.Equal("2024-01-01T12:00:00Z", activity[2].Timestamp)

	limited, _ := s.store.Activity("u2", 1)
	s.Len(limited, 1)
}

func (s *StoreSuite) TestLeaderboardPaging() {
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		s.store.CreateTeam("id-"+name, name, "")
	}

	page := s.store.Leaderboard("id-d", 2, 2)
	s.Equal(5, page.Total)
	s.Require().Len(page.Leaderboard, 2)
	s.Equal("c", page.Leaderboard[0].Username)
	s.Equal(3, page.Leaderboard[0].Rank)
	s.Require().NotNil(page.UserPosition)
	s.Equal(4, page.UserPosition.Rank)

	empty := s.store.Leaderboard("id-a", 9, 2)
	s.Empty(empty.Leaderboard)
	s.Equal(5, empty.Total)
}

func (s *StoreSuite) TestPosition() {
	s.store.CreateTeam("u1", "alice", "")

	entry, err := s.store.Position("u1")
	s.Require().NoError(err)
	s.Equal(1, entry.Rank)

	_, err = s.store.Position("nobody")
	s.ErrorIs(err, ErrTeamNotFound)
}

func (s *StoreSuite) TestDashboard() {
	s.store.CreateTeam("u1", "alice", "Ballers")
	_, _ = s.store.AddPlayer("u1", lebron, "")
	_, _ = s.store.AddPlayer("u1", curry, "")

	dash, err := s.store.Dashboard("u1", 5)
	s.Require().NoError(err)

	s.Equal(2, dash.Stats.TotalPlayers)
	s.Equal(87.5, dash.Stats.BudgetUsed)
	s.Equal(DefaultBudget-87.5, dash.Stats.BudgetRemaining)
	s.Len(dash.RecentActivity, 2)
	s.Require().Len(dash.Leagues, 1)
	s.Equal(GlobalLeagueName, dash.Leagues[0].Name)
	s.Equal(1, dash.Leagues[0].YourRank)
	s.Require().Len(dash.TopPerformers, 2)
	s.Equal("Stephen Curry", dash.TopPerformers[0].PlayerName)
}
