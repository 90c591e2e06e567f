package fakeapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/hoopsclient/internal/dependencies/clock"
	"github.com/mcoot/hoopsclient/internal/dependencies/random"
	"github.com/mcoot/hoopsclient/internal/fakeapi"
	"github.com/mcoot/hoopsclient/internal/fakeapi/accounts"
	"github.com/mcoot/hoopsclient/internal/fakeapi/league"
	"github.com/mcoot/hoopsclient/internal/fakeapi/response"
	"github.com/mcoot/hoopsclient/internal/model"
	"github.com/mcoot/hoopsclient/internal/testutil"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler  http.Handler
	accounts *accounts.Service
	league   *league.Store
}

type serverOptions struct {
	tokenOnRegister bool
	enableDev       bool
}

func newTestServer(t *testing.T, opts ...serverOptions) *testServer {
	t.Helper()

	opt := serverOptions{tokenOnRegister: true, enableDev: true}
	if len(opts) > 0 {
		opt = opts[0]
	}

	logger := testutil.NopLogger()
	accountService := accounts.New(clock.New(), accounts.Config{BcryptCost: bcrypt.MinCost})
	store := league.New(clock.New(), random.New(), logger)

	router := fakeapi.NewRouter(fakeapi.RouterConfig{
		Logger:          logger,
		Accounts:        accountService,
		League:          store,
		TokenOnRegister: opt.tokenOnRegister,
		EnableDev:       opt.enableDev,
	})

	return &testServer{handler: router, accounts: accountService, league: store}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// register creates an account and returns its token
func (ts *testServer) register(t *testing.T, username, email string) string {
	t.Helper()

	rr := ts.request(http.MethodPost, "/auth/register", model.RegisterRequest{
		Username: username,
		Email:    email,
		Password: "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp response.RegisterResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func detail(t *testing.T, rr *httptest.ResponseRecorder) any {
	t.Helper()
	var body struct {
		Detail any `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body.Detail
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestRegisterUsesDocumentFieldNames(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/auth/register", model.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		TeamName: "Hoopers",
	}, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	user := raw["user"].(map[string]any)
	assert.NotEmpty(t, user["_id"])
	assert.Equal(t, "alice", user["name"])
	assert.Equal(t, "Hoopers", user["team_name"])
	assert.NotEmpty(t, raw["access_token"])
	assert.Equal(t, "bearer", raw["token_type"])

	// The payload normalizes like any other auth response
	payload, err := model.ParseAuthResponse(rr.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "alice", payload.User.Username)
	assert.Equal(t, raw["access_token"], payload.Token)
}

func TestRegisterWithoutToken(t *testing.T) {
	ts := newTestServer(t, serverOptions{tokenOnRegister: false})

	rr := ts.request(http.MethodPost, "/auth/register", model.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.NotContains(t, rr.Body.String(), "access_token")
}

func TestRegisterValidation(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/auth/register", model.RegisterRequest{Username: "alice"}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	issues, ok := detail(t, rr).([]any)
	require.True(t, ok)
	assert.Len(t, issues, 2)

	rr = ts.request(http.MethodPost, "/auth/register", model.RegisterRequest{
		Username: "alice", Email: "a@b.com", Password: "one", ConfirmPassword: "two",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Passwords do not match", detail(t, rr))

	rr = ts.request(http.MethodPost, "/auth/register", "not an object", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "alice", "alice@example.com")

	rr := ts.request(http.MethodPost, "/auth/register", model.RegisterRequest{
		Username: "alice2", Email: "ALICE@example.com", Password: "secret123",
	}, "")
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "Email already registered", detail(t, rr))
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "alice", "alice@example.com")

	rr := ts.request(http.MethodPost, "/auth/login", model.LoginRequest{
		Email: "alice@example.com", Password: "secret123",
	}, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.User.Username)
	assert.NotEmpty(t, resp.User.ID)
	assert.NotEmpty(t, resp.Token)

	rr = ts.request(http.MethodPost, "/auth/login", model.LoginRequest{
		Email: "alice@example.com", Password: "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid email or password", detail(t, rr))
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/team", "/leaderboard", "/leaderboard/me", "/dashboard", "/dashboard/stats"} {
		rr := ts.request(http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code, path)
		assert.Equal(t, "Not authenticated", detail(t, rr), path)

		rr = ts.request(http.MethodGet, path, nil, "garbage")
		assert.Equal(t, http.StatusUnauthorized, rr.Code, path)
		assert.Equal(t, "Could not validate credentials", detail(t, rr), path)
	}
}

func TestPlayers(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/players/", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var players []model.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
	assert.Len(t, players, 12)

	rr = ts.request(http.MethodGet, "/players?position=sg", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
	require.NotEmpty(t, players)
	for _, p := range players {
		assert.Equal(t, model.PositionShootingGuard, p.PositionShort)
	}

	rr = ts.request(http.MethodGet, "/players/5", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/players/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = ts.request(http.MethodGet, "/players/99", nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Player not found", detail(t, rr))
}

func TestTeamLifecycle(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register(t, "alice", "alice@example.com")

	rr := ts.request(http.MethodPost, "/team/players", model.AddPlayerRequest{PlayerID: "2", Position: "PG"}, token)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = ts.request(http.MethodPost, "/team/players", model.AddPlayerRequest{PlayerID: "2"}, token)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = ts.request(http.MethodPost, "/team/players", model.AddPlayerRequest{}, token)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	rr = ts.request(http.MethodPost, "/team/validate", model.ValidatePlayerRequest{PlayerID: "2"}, token)
	require.Equal(t, http.StatusOK, rr.Code)
	var result model.ValidationResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.False(t, result.Valid)

	rr = ts.request(http.MethodPut, "/team/formation", model.UpdateFormationRequest{Formation: "zone"}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Unknown formation", detail(t, rr))

	rr = ts.request(http.MethodPut, "/team/name", model.UpdateTeamNameRequest{TeamName: "Splash"}, token)
	require.Equal(t, http.StatusOK, rr.Code)
	var team model.UserTeam
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &team))
	assert.Equal(t, "Splash", team.TeamName)

	rr = ts.request(http.MethodDelete, "/team/players/2", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &team))
	assert.Empty(t, team.Players)

	rr = ts.request(http.MethodDelete, "/team/players/2", nil, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// The rename reaches the account too
	rr = ts.request(http.MethodPost, "/auth/login", model.LoginRequest{Email: "alice@example.com", Password: "secret123"}, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"teamName":"Splash"`)
}

func TestLeaderboardPaging(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register(t, "alice", "alice@example.com")
	ts.register(t, "bob", "bob@example.com")

	rr := ts.request(http.MethodGet, "/leaderboard?page=2&pageSize=1", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	var board model.LeaderboardResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &board))
	assert.Equal(t, 2, board.Total)
	assert.Len(t, board.Leaderboard, 1)
	assert.Equal(t, 2, board.Page)

	rr = ts.request(http.MethodGet, "/leaderboard?page=0", nil, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = ts.request(http.MethodGet, "/leaderboard/top?limit=1", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	var top []model.LeaderboardEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &top))
	assert.Len(t, top, 1)
}

func TestDashboard(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register(t, "alice", "alice@example.com")

	rr := ts.request(http.MethodGet, "/dashboard", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	var data model.DashboardData
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &data))
	assert.Equal(t, 1, data.Stats.Rank)
	require.Len(t, data.Leagues, 1)
	assert.Equal(t, league.GlobalLeagueName, data.Leagues[0].Name)

	rr = ts.request(http.MethodGet, "/dashboard/activity?limit=3", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestDevRoutes(t *testing.T) {
	ts := newTestServer(t)
	rr := ts.request(http.MethodPost, "/dev/simulate", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	ts = newTestServer(t, serverOptions{tokenOnRegister: true, enableDev: false})
	rr = ts.request(http.MethodPost, "/dev/simulate", nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
