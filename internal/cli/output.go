package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/mcoot/hoopsclient/internal/client"
	"github.com/mcoot/hoopsclient/internal/model"
	"github.com/mcoot/hoopsclient/internal/session"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == OutputJSON {
		errData := map[string]any{
			"error": errorBody(err),
		}
		data, _ := json.Marshal(errData)
		_, _ = fmt.Fprintln(o.errOut, string(data))
	} else {
		_, _ = fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

// errorBody describes err for JSON output, adding the client error kind when known
func errorBody(err error) map[string]any {
	body := map[string]any{"message": err.Error()}
	if kind := client.KindOf(err); kind != client.KindUnknown {
		body["kind"] = kind.String()
		if status := client.StatusOf(err); status != 0 {
			body["status"] = status
		}
	}
	return body
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == OutputJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.out, string(data))
	} else {
		_, _ = fmt.Fprintln(o.out, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case session.State:
		o.printSession(v)
	case WhoAmI:
		o.printWhoAmI(v)
	case model.UserIdentity:
		o.printUser(v)
	case model.Player:
		o.printPlayer(v)
	case []model.Player:
		o.printPlayers(v)
	case model.UserTeam:
		o.printTeam(v)
	case model.ValidationResult:
		o.printValidation(v)
	case []model.Formation:
		o.printFormations(v)
	case model.LeaderboardResponse:
		o.printLeaderboard(v)
	case model.LeaderboardEntry:
		o.printEntry(v)
	case []model.LeaderboardEntry:
		o.printEntries(v)
	case model.DashboardData:
		o.printDashboard(v)
	case model.UserStats:
		o.printStats(v)
	case []model.RecentActivity:
		o.printActivity(v)
	case []model.League:
		o.printLeagues(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// WhoAmI describes the persisted session
type WhoAmI struct {
	Status         string              `json:"status"`
	User           *model.UserIdentity `json:"user,omitempty"`
	TokenExpiresAt *time.Time          `json:"tokenExpiresAt,omitempty"`
	TokenExpired   bool                `json:"tokenExpired"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.out, format, args...)
}

func (o *Output) table(header string, rows func(w io.Writer)) {
	tw := tabwriter.NewWriter(o.out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, header)
	rows(tw)
	_ = tw.Flush()
}

func (o *Output) printUser(u model.UserIdentity) {
	o.printf("User: %s (%s)\n", u.Username, u.ID)
	o.printf("Email: %s\n", u.Email)
	if u.TeamName != "" {
		o.printf("Team: %s\n", u.TeamName)
	}
}

func (o *Output) printSession(s session.State) {
	if !s.IsAuthenticated || s.User == nil {
		o.printf("Not logged in\n")
		return
	}
	o.printf("Logged in as %s\n", s.User.Username)
	o.printUser(*s.User)
}

func (o *Output) printWhoAmI(w WhoAmI) {
	o.printf("Status: %s\n", w.Status)
	if w.User != nil {
		o.printUser(*w.User)
	}
	if w.TokenExpiresAt != nil {
		state := "valid"
		if w.TokenExpired {
			state = "expired"
		}
		o.printf("Token expires: %s (%s)\n", w.TokenExpiresAt.Format(time.RFC3339), state)
	}
}

func (o *Output) printPlayer(p model.Player) {
	o.printf("Player: %s (#%d)\n", p.Name, p.ID)
	o.printf("Position: %s (%s)\n", p.Position, p.PositionShort)
	o.printf("Team: %s\n", p.Team)
	o.printf("Price: %s\n", p.Price)
	o.printf("Points: %d\n", p.Points)
	o.printf("Averages: %s pts, %s reb, %s ast, %s stl, %s blk\n",
		p.Stats.Points, p.Stats.Rebounds, p.Stats.Assists, p.Stats.Steals, p.Stats.Blocks)
}

func (o *Output) printPlayers(players []model.Player) {
	if len(players) == 0 {
		o.printf("No players\n")
		return
	}
	o.table("ID\tNAME\tPOS\tTEAM\tPRICE\tPOINTS", func(w io.Writer) {
		for _, p := range players {
			_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\n", p.ID, p.Name, p.PositionShort, p.Team, p.Price, p.Points)
		}
	})
}

func (o *Output) printTeam(t model.UserTeam) {
	o.printf("Team: %s\n", t.TeamName)
	o.printf("Formation: %s\n", t.Formation)
	o.printf("Budget: %.1f of %.1f remaining\n", t.Budget, t.TotalBudget)
	o.printf("Points: %d\n", t.Points)
	if t.Rank != nil {
		o.printf("Rank: #%d\n", *t.Rank)
	}
	o.printf("Players (%d):\n", len(t.Players))
	for _, p := range t.Players {
		o.printf("  - %s (#%d) %s, %s\n", p.Name, p.ID, p.PositionShort, p.Price)
	}
}

func (o *Output) printValidation(v model.ValidationResult) {
	if v.Valid {
		o.printf("Player can be added\n")
	} else {
		o.printf("Player cannot be added: %s\n", v.Message)
	}
	if v.BudgetRemaining != nil {
		o.printf("Budget remaining: %.1f\n", *v.BudgetRemaining)
	}
}

func (o *Output) printFormations(formations []model.Formation) {
	o.table("KEY\tNAME\tGUARDS\tFORWARDS\tCENTER", func(w io.Writer) {
		for _, f := range formations {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n", f.Key, f.Name, f.Guards, f.Forwards, f.Center)
		}
	})
}

func (o *Output) printEntries(entries []model.LeaderboardEntry) {
	if len(entries) == 0 {
		o.printf("No entries\n")
		return
	}
	o.table("RANK\tUSER\tTEAM\tPOINTS", func(w io.Writer) {
		for _, e := range entries {
			_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", e.Rank, e.Username, e.TeamName, e.Points)
		}
	})
}

func (o *Output) printLeaderboard(l model.LeaderboardResponse) {
	o.printf("Leaderboard (page %d, %d teams)\n", l.Page, l.Total)
	o.printEntries(l.Leaderboard)
	if l.UserPosition != nil {
		o.printf("\nYou: #%d with %d points\n", l.UserPosition.Rank, l.UserPosition.Points)
	}
}

func (o *Output) printEntry(e model.LeaderboardEntry) {
	o.printf("Rank: #%d\n", e.Rank)
	o.printf("User: %s\n", e.Username)
	o.printf("Team: %s\n", e.TeamName)
	o.printf("Points: %d\n", e.Points)
}

func (o *Output) printStats(s model.UserStats) {
	o.printf("Total points: %d\n", s.TotalPoints)
	o.printf("Rank: #%d (%s this week)\n", s.Rank, signed(s.WeeklyRankChange))
	o.printf("Weekly points: %d\n", s.WeeklyPoints)
	o.printf("Players: %d\n", s.TotalPlayers)
	o.printf("Budget: %.1f used, %.1f remaining\n", s.BudgetUsed, s.BudgetRemaining)
}

func (o *Output) printActivity(items []model.RecentActivity) {
	if len(items) == 0 {
		o.printf("No recent activity\n")
		return
	}
	for _, a := range items {
		line := fmt.Sprintf("[%s] %s", a.Timestamp, a.Message)
		if a.Points != nil {
			line += fmt.Sprintf(" (+%d)", *a.Points)
		}
		o.printf("%s\n", line)
	}
}

func (o *Output) printLeagues(leagues []model.League) {
	o.table("LEAGUE\tMEMBERS\tYOUR RANK", func(w io.Writer) {
		for _, l := range leagues {
			_, _ = fmt.Fprintf(w, "%s\t%d\t#%d\n", l.Name, l.Members, l.YourRank)
		}
	})
}

func (o *Output) printDashboard(d model.DashboardData) {
	o.printStats(d.Stats)

	if len(d.TopPerformers) > 0 {
		names := make([]string, 0, len(d.TopPerformers))
		for _, p := range d.TopPerformers {
			names = append(names, fmt.Sprintf("%s (%d)", p.PlayerName, p.Points))
		}
		o.printf("Top performers: %s\n", strings.Join(names, ", "))
	}

	o.printf("\nRecent activity:\n")
	o.printActivity(d.RecentActivity)

	if len(d.Leagues) > 0 {
		o.printf("\n")
		o.printLeagues(d.Leagues)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	o.printf("Status: %s\n", h.Status)
}

func signed(n int) string {
	if n > 0 {
		return fmt.Sprintf("+%d", n)
	}
	return fmt.Sprintf("%d", n)
}
