// Package league holds the in-memory fantasy game state served by the fake API.
package league

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mcoot/hoopsclient/internal/dependencies/clock"
	"github.com/mcoot/hoopsclient/internal/dependencies/random"
	"github.com/mcoot/hoopsclient/internal/model"
)

// Errors
var (
	ErrPlayerNotFound    = errors.New("player not found")
	ErrTeamNotFound      = errors.New("team not found")
	ErrAlreadyOnTeam     = errors.New("player already on team")
	ErrNotOnTeam         = errors.New("player not on team")
	ErrBudgetExceeded    = errors.New("budget exceeded")
	ErrPositionFull      = errors.New("no free slot for this position")
	ErrPositionMismatch  = errors.New("player does not play this position")
	ErrFormationConflict = errors.New("current roster does not fit formation")
)

// Game constants
const (
	DefaultBudget    = 200.0
	DefaultFormation = model.FormationStandard
	GlobalLeagueID   = "global"
	GlobalLeagueName = "Global League"

	maxActivity    = 50
	topPerformers  = 3
	minRoundPoints = 0
	maxRoundPoints = 60
)

// role groups positions the way formations count them
type role int

const (
	roleGuard role = iota
	roleForward
	roleCenter
)

func roleOf(position string) role {
	switch position {
	case model.PositionPointGuard, model.PositionShootingGuard:
		return roleGuard
	case model.PositionSmallForward, model.PositionPowerForward:
		return roleForward
	default:
		return roleCenter
	}
}

func slots(f model.Formation, r role) int {
	switch r {
	case roleGuard:
		return f.Guards
	case roleForward:
		return f.Forwards
	default:
		return f.Center
	}
}

// team is the server-side record behind model.UserTeam
type team struct {
	id        string
	userID    string
	username  string
	name      string
	formation string
	players   []int
	points    int

	weeklyPoints  int
	weekStartRank int
	lastRank      int
	activity      []model.RecentActivity
}

// Store is the fantasy game state. All methods are safe for concurrent use.
type Store struct {
	clock  clock.Clock
	random random.Random
	logger *slog.Logger

	mu      sync.RWMutex
	players map[int]model.Player
	order   []int
	teams   map[string]*team
}

// New creates a store seeded with the default player market
func New(clk clock.Clock, rnd random.Random, logger *slog.Logger) *Store {
	s := &Store{
		clock:   clk,
		random:  rnd,
		logger:  logger.With(slog.String("component", "league")),
		players: make(map[int]model.Player),
		teams:   make(map[string]*team),
	}
	for _, p := range seedPlayers() {
		s.players[p.ID] = p
		s.order = append(s.order, p.ID)
	}
	return s
}

// Players returns the whole market in ID order
func (s *Store) Players() []model.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Player, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.players[id])
	}
	return out
}

// PlayersByPosition returns the players whose short position matches
func (s *Store) PlayersByPosition(position string) []model.Player {
	position = strings.ToUpper(position)
	out := []model.Player{}
	for _, p := range s.Players() {
		if p.PositionShort == position {
			out = append(out, p)
		}
	}
	return out
}

// Player returns a single player
func (s *Store) Player(id int) (model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[id]
	if !ok {
		return model.Player{}, ErrPlayerNotFound
	}
	return p, nil
}

// CreateTeam gives a new user an empty team
func (s *Store) CreateTeam(userID, username, teamName string) model.UserTeam {
	if teamName == "" {
		teamName = username + "'s Team"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := &team{
		id:        uuid.NewString(),
		userID:    userID,
		username:  username,
		name:      teamName,
		formation: DefaultFormation,
	}
	s.teams[userID] = t
	t.lastRank = s.rankLocked(userID)
	t.weekStartRank = t.lastRank
	return s.viewLocked(t)
}

// Team returns the user's team
func (s *Store) Team(userID string) (model.UserTeam, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teams[userID]
	if !ok {
		return model.UserTeam{}, ErrTeamNotFound
	}
	return s.viewLocked(t), nil
}

// Validate reports whether playerID could be added to the user's team
func (s *Store) Validate(userID string, playerID int) (model.ValidationResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[userID]
	if !ok {
		return model.ValidationResult{}, ErrTeamNotFound
	}

	remaining := s.remainingLocked(t)
	result := model.ValidationResult{Valid: true, BudgetRemaining: &remaining}
	if err := s.checkAddLocked(t, playerID, ""); err != nil {
		if errors.Is(err, ErrPlayerNotFound) {
			return model.ValidationResult{}, err
		}
		result.Valid = false
		result.Message = err.Error()
	}
	return result, nil
}

// AddPlayer adds playerID to the user's team. A non-empty position must match
// the player's short position.
func (s *Store) AddPlayer(userID string, playerID int, position string) (model.UserTeam, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.teams[userID]
	if !ok {
		return model.UserTeam{}, ErrTeamNotFound
	}
	if err := s.checkAddLocked(t, playerID, position); err != nil {
		return model.UserTeam{}, err
	}

	t.players = append(t.players, playerID)
	s.recordLocked(t, model.ActivityPlayerAdded, fmt.Sprintf("Added %s to your team", s.players[playerID].Name), nil)
	return s.viewLocked(t), nil
}

// RemovePlayer removes playerID from the user's team
func (s *Store) RemovePlayer(userID string, playerID int) (model.UserTeam, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.teams[userID]
	if !ok {
		return model.UserTeam{}, ErrTeamNotFound
	}

	idx := -1
	for i, id := range t.players {
		if id == playerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.UserTeam{}, ErrNotOnTeam
	}

	t.players = append(t.players[:idx], t.players[idx+1:]...)
	s.recordLocked(t, model.ActivityPlayerRemoved, fmt.Sprintf("Removed %s from your team", s.players[playerID].Name), nil)
	return s.viewLocked(t), nil
}

// SetFormation switches the team's formation if the roster fits it
func (s *Store) SetFormation(userID, formation string) (model.UserTeam, error) {
	f, err := model.LookupFormation(formation)
	if err != nil {
		return model.UserTeam{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.teams[userID]
	if !ok {
		return model.UserTeam{}, ErrTeamNotFound
	}

	counts := s.roleCountsLocked(t)
	for r, n := range counts {
		if n > slots(f, r) {
			return model.UserTeam{}, ErrFormationConflict
		}
	}

	t.formation = f.Key
	return s.viewLocked(t), nil
}

// SetTeamName renames the team
func (s *Store) SetTeamName(userID, name string) (model.UserTeam, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.teams[userID]
	if !ok {
		return model.UserTeam{}, ErrTeamNotFound
	}
	t.name = name
	return s.viewLocked(t), nil
}


// SimulateRound awards every rostered player random points, credits them to
// the teams that hold them and records rank changes
func (s *Store) SimulateRound() {
	s.mu.Lock()
	defer s.mu.Unlock()

	earned := make(map[int]int, len(s.players))
	for _, id := range s.order {
		pts := random.Between(s.random, minRoundPoints, maxRoundPoints)
		earned[id] = pts
		p := s.players[id]
		p.Points += pts
		s.players[id] = p
	}

	for _, t := range s.teams {
		gained := 0
		for _, id := range t.players {
			gained += earned[id]
		}
		if gained == 0 {
			continue
		}
		t.points += gained
		t.weeklyPoints += gained
		s.recordLocked(t, model.ActivityPointsEarned, fmt.Sprintf("Your team earned %d points", gained), &gained)
	}

	for _, t := range s.teams {
		rank := s.rankLocked(t.userID)
		if rank != t.lastRank {
			s.recordLocked(t, model.ActivityRankChange, fmt.Sprintf("You moved from #%d to #%d", t.lastRank, rank), nil)
			t.lastRank = rank
		}
	}

	s.logger.Info("round simulated", slog.Int("teams", len(s.teams)))
}

// Leaderboard returns a page of the ranking. page is 1-based.
func (s *Store) Leaderboard(userID string, page, pageSize int) model.LeaderboardResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.rankingLocked()
	resp := model.LeaderboardResponse{
		Leaderboard: []model.LeaderboardEntry{},
		Total:       len(entries),
		Page:        page,
		PageSize:    pageSize,
	}

	start := (page - 1) * pageSize
	if start < len(entries) {
		end := min(start+pageSize, len(entries))
		resp.Leaderboard = entries[start:end]
	}

	for i := range entries {
		if entries[i].UserID == userID {
			e := entries[i]
			resp.UserPosition = &e
			break
		}
	}
	return resp
}

// Position returns the user's leaderboard entry
func (s *Store) Position(userID string) (model.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.rankingLocked() {
		if e.UserID == userID {
			return e, nil
		}
	}
	return model.LeaderboardEntry{}, ErrTeamNotFound
}

// Top returns the first limit leaderboard entries
func (s *Store) Top(limit int) []model.LeaderboardEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.rankingLocked()
	if limit < len(entries) {
		entries = entries[:limit]
	}
	return entries
}

// Stats returns the dashboard headline numbers for the user
func (s *Store) Stats(userID string) (model.UserStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[userID]
	if !ok {
		return model.UserStats{}, ErrTeamNotFound
	}
	return s.statsLocked(t), nil
}

// Activity returns the user's latest limit activity entries, newest first
func (s *Store) Activity(userID string, limit int) ([]model.RecentActivity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[userID]
	if !ok {
		return nil, ErrTeamNotFound
	}
	return s.activityLocked(t, limit), nil
}

// Leagues returns the leagues the user belongs to
func (s *Store) Leagues(userID string) ([]model.League, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.teams[userID]; !ok {
		return nil, ErrTeamNotFound
	}
	return s.leaguesLocked(userID), nil
}

// Dashboard aggregates stats, activity, leagues and top performers
func (s *Store) Dashboard(userID string, activityLimit int) (model.DashboardData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[userID]
	if !ok {
		return model.DashboardData{}, ErrTeamNotFound
	}

	return model.DashboardData{
		Stats:          s.statsLocked(t),
		RecentActivity: s.activityLocked(t, activityLimit),
		Leagues:        s.leaguesLocked(userID),
		TopPerformers:  s.topPerformersLocked(t),
	}, nil
}

func (s *Store) checkAddLocked(t *team, playerID int, position string) error {
	p, ok := s.players[playerID]
	if !ok {
		return ErrPlayerNotFound
	}
	for _, id := range t.players {
		if id == playerID {
			return ErrAlreadyOnTeam
		}
	}
	if position != "" && !strings.EqualFold(position, p.PositionShort) {
		return fmt.Errorf("%w: %s is a %s", ErrPositionMismatch, p.Name, p.PositionShort)
	}

	f := model.Formations[t.formation]
	r := roleOf(p.PositionShort)
	if s.roleCountsLocked(t)[r] >= slots(f, r) {
		return ErrPositionFull
	}

	if price(p) > s.remainingLocked(t) {
		return ErrBudgetExceeded
	}
	return nil
}

func (s *Store) roleCountsLocked(t *team) map[role]int {
	counts := map[role]int{}
	for _, id := range t.players {
		counts[roleOf(s.players[id].PositionShort)]++
	}
	return counts
}

func (s *Store) remainingLocked(t *team) float64 {
	return DefaultBudget - s.spentLocked(t)
}

func (s *Store) spentLocked(t *team) float64 {
	spent := 0.0
	for _, id := range t.players {
		spent += price(s.players[id])
	}
	return spent
}

func (s *Store) viewLocked(t *team) model.UserTeam {
	players := make([]model.Player, 0, len(t.players))
	for _, id := range t.players {
		players = append(players, s.players[id])
	}
	rank := s.rankLocked(t.userID)
	return model.UserTeam{
		ID:          t.id,
		UserID:      t.userID,
		TeamName:    t.name,
		Budget:      s.remainingLocked(t),
		TotalBudget: DefaultBudget,
		Formation:   t.formation,
		Players:     players,
		Points:      t.points,
		Rank:        &rank,
	}
}

func (s *Store) statsLocked(t *team) model.UserStats {
	spent := s.spentLocked(t)
	return model.UserStats{
		TotalPoints:      t.points,
		Rank:             s.rankLocked(t.userID),
		WeeklyPoints:     t.weeklyPoints,
		WeeklyRankChange: t.weekStartRank - s.rankLocked(t.userID),
		TotalPlayers:     len(t.players),
		BudgetUsed:       spent,
		BudgetRemaining:  DefaultBudget - spent,
	}
}

func (s *Store) activityLocked(t *team, limit int) []model.RecentActivity {
	out := []model.RecentActivity{}
	for i := len(t.activity) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, t.activity[i])
	}
	return out
}

func (s *Store) leaguesLocked(userID string) []model.League {
	return []model.League{{
		ID:       GlobalLeagueID,
		Name:     GlobalLeagueName,
		Members:  len(s.teams),
		YourRank: s.rankLocked(userID),
	}}
}

func (s *Store) topPerformersLocked(t *team) []model.TopPerformer {
	out := make([]model.TopPerformer, 0, len(t.players))
	for _, id := range t.players {
		p := s.players[id]
		out = append(out, model.TopPerformer{PlayerID: strconv.Itoa(p.ID), PlayerName: p.Name, Points: p.Points})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Points > out[j].Points })
	if len(out) > topPerformers {
		out = out[:topPerformers]
	}
	return out
}

// rankingLocked orders teams by points, then username
func (s *Store) rankingLocked() []model.LeaderboardEntry {
	entries := make([]model.LeaderboardEntry, 0, len(s.teams))
	for _, t := range s.teams {
		entries = append(entries, model.LeaderboardEntry{
			UserID:   t.userID,
			Username: t.username,
			TeamName: t.name,
			Points:   t.points,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].Username < entries[j].Username
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

func (s *Store) rankLocked(userID string) int {
	for _, e := range s.rankingLocked() {
		if e.UserID == userID {
			return e.Rank
		}
	}
	return 0
}

// recordLocked appends an activity entry, keeping the most recent maxActivity
func (s *Store) recordLocked(t *team, kind, message string, points *int) {
	t.activity = append(t.activity, model.RecentActivity{
		ID:        uuid.NewString(),
		Type:      kind,
		Message:   message,
		Timestamp: s.clock.Now().Format(time.RFC3339),
		Points:    points,
	})
	if len(t.activity) > maxActivity {
		t.activity = t.activity[len(t.activity)-maxActivity:]
	}
}

// price parses the market price; the API serves it as a decimal string
func price(p model.Player) float64 {
	v, err := strconv.ParseFloat(p.Price, 64)
	if err != nil {
		return 0
	}
	return v
}
