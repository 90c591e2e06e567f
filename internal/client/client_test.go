package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/hoopsclient/internal/model"
	"github.com/mcoot/hoopsclient/internal/testutil"
)

// fakeSession records HandleUnauthorized calls
type fakeSession struct {
	mu           sync.Mutex
	token        string
	unauthorized int
}

func (s *fakeSession) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *fakeSession) HandleUnauthorized(context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unauthorized++
	s.token = ""
}

func (s *fakeSession) unauthorizedCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unauthorized
}

// capturedRequest is what the test server saw
type capturedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   string
}

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *[]capturedRequest) {
	t.Helper()

	var mu sync.Mutex
	var seen []capturedRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		seen = append(seen, capturedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
			Body:   string(b),
		})
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv, &seen
}

func newTestClient(srv *httptest.Server, sess Session) *Client {
	return New(Config{BaseURL: srv.URL + "/", Logger: testutil.NopLogger()}, sess)
}

// Request tests

func TestRequestAttachesBearerToken(t *testing.T) {
	srv, seen := newTestServer(t, http.StatusOK, `{}`)
	c := newTestClient(srv, &fakeSession{token: "tok123"})

	resp, err := c.Request(context.Background(), "/team", RequestOptions{})
	require.NoError(t, err)
	_ = resp.Body.Close()

	require.Len(t, *seen, 1)
	got := (*seen)[0]
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/team", got.Path)
	assert.Equal(t, "Bearer tok123", got.Header.Get(HeaderAuthorization))
	assert.Equal(t, "application/json", got.Header.Get(HeaderContentType))
	assert.NotEmpty(t, got.Header.Get(HeaderRequestID))
}

func TestRequestWithoutTokenSendsNoAuthorization(t *testing.T) {
	srv, seen := newTestServer(t, http.StatusOK, `{}`)

	for _, sess := range []Session{nil, &fakeSession{}} {
		c := newTestClient(srv, sess)
		resp, err := c.Request(context.Background(), "/players/", RequestOptions{})
		require.NoError(t, err)
		_ = resp.Body.Close()
	}

	require.Len(t, *seen, 2)
	for _, r := range *seen {
		assert.Empty(t, r.Header.Get(HeaderAuthorization))
	}
}

func TestRequestContentTypeCanBeOverridden(t *testing.T) {
	srv, seen := newTestServer(t, http.StatusOK, `{}`)
	c := newTestClient(srv, nil)

	resp, err := c.Request(context.Background(), "/upload", RequestOptions{
		Method: http.MethodPost,
		Body:   strings.NewReader("a,b"),
		Header: http.Header{"Content-Type": {"text/csv"}, "X-Extra": {"1"}},
	})
	require.NoError(t, err)
	_ = resp.Body.Close()

	got := (*seen)[0]
	assert.Equal(t, "text/csv", got.Header.Get(HeaderContentType))
	assert.Equal(t, "1", got.Header.Get("X-Extra"))
	assert.Equal(t, "a,b", got.Body)
}

func TestRequestUnauthorizedClearsSessionOnceAndReturnsResponse(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusUnauthorized, `{"detail":"Not authenticated"}`)
	sess := &fakeSession{token: "expired"}
	c := newTestClient(srv, sess)

	resp, err := c.Request(context.Background(), "/team", RequestOptions{})
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 1, sess.unauthorizedCalls())
	assert.Empty(t, sess.Token())

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Not authenticated")
}

func TestRequestOtherStatusesDoNotClearSession(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusForbidden, http.StatusNotFound, http.StatusInternalServerError} {
		srv, _ := newTestServer(t, status, `{}`)
		sess := &fakeSession{token: "tok"}
		c := newTestClient(srv, sess)

		resp, err := c.Request(context.Background(), "/team", RequestOptions{})
		require.NoError(t, err)
		_ = resp.Body.Close()

		assert.Equal(t, 0, sess.unauthorizedCalls(), "status %d", status)
		assert.Equal(t, "tok", sess.Token())
	}
}

func TestRequestTransportFailure(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{}`)
	url := srv.URL
	srv.Close()

	c := New(Config{BaseURL: url, Logger: testutil.NopLogger()}, nil)
	_, err := c.Request(context.Background(), "/team", RequestOptions{})

	require.Error(t, err)
	assert.Equal(t, KindTransport, KindOf(err))
}

// Typed helper tests

func TestGetDecodesBody(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `[{"id":1,"name":"LeBron James","positionShort":"SF","price":"42.5"}]`)
	c := newTestClient(srv, nil)

	players, err := Get[[]model.Player](context.Background(), c, "/players/")
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "LeBron James", players[0].Name)
	assert.Equal(t, "42.5", players[0].Price)
}

func TestPostEncodesData(t *testing.T) {
	srv, seen := newTestServer(t, http.StatusOK, `{"valid":true}`)
	c := newTestClient(srv, nil)

	result, err := Post[model.ValidationResult](context.Background(), c, "/team/validate", model.ValidatePlayerRequest{PlayerID: "7"})
	require.NoError(t, err)
	assert.True(t, result.Valid)

	got := (*seen)[0]
	assert.Equal(t, http.MethodPost, got.Method)
	assert.JSONEq(t, `{"playerId":"7"}`, got.Body)
}

func TestPostWithoutDataSendsEmptyBody(t *testing.T) {
	srv, seen := newTestServer(t, http.StatusOK, `{}`)
	c := newTestClient(srv, nil)

	_, err := Post[map[string]any](context.Background(), c, "/ping", nil)
	require.NoError(t, err)
	assert.Empty(t, (*seen)[0].Body)
}

func TestPutAndDeleteUseMethods(t *testing.T) {
	srv, seen := newTestServer(t, http.StatusOK, `{}`)
	c := newTestClient(srv, nil)

	_, err := Put[map[string]any](context.Background(), c, "/team/name", map[string]string{"teamName": "X"})
	require.NoError(t, err)
	_, err = Delete[map[string]any](context.Background(), c, "/team/players/3")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, (*seen)[0].Method)
	assert.Equal(t, http.MethodDelete, (*seen)[1].Method)
	assert.Equal(t, "/team/players/3", (*seen)[1].Path)
}

func TestEmptySuccessBodyYieldsZeroValue(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusNoContent, ``)
	c := newTestClient(srv, nil)

	team, err := Delete[model.UserTeam](context.Background(), c, "/team/players/3")
	require.NoError(t, err)
	assert.Equal(t, model.UserTeam{}, team)
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantKind    Kind
		wantMessage string
	}{
		{
			name:        "detail string",
			status:      http.StatusBadRequest,
			body:        `{"detail":"Budget exceeded"}`,
			wantKind:    KindServer,
			wantMessage: "Budget exceeded",
		},
		{
			name:        "validation detail array",
			status:      http.StatusUnprocessableEntity,
			body:        `{"detail":[{"loc":["body","playerId"],"msg":"field required"},{"msg":"value too long"}]}`,
			wantKind:    KindServer,
			wantMessage: "field required; value too long",
		},
		{
			name:        "unparseable body",
			status:      http.StatusBadGateway,
			body:        `<html>bad gateway</html>`,
			wantKind:    KindUnparseable,
			wantMessage: DefaultErrorMessage,
		},
		{
			name:        "json without detail",
			status:      http.StatusInternalServerError,
			body:        `{"error":"boom"}`,
			wantKind:    KindUnparseable,
			wantMessage: DefaultErrorMessage,
		},
		{
			name:        "empty detail",
			status:      http.StatusConflict,
			body:        `{"detail":""}`,
			wantKind:    KindUnparseable,
			wantMessage: DefaultErrorMessage,
		},
		{
			name:        "unauthorized with detail",
			status:      http.StatusUnauthorized,
			body:        `{"detail":"Token expired"}`,
			wantKind:    KindUnauthorized,
			wantMessage: "Token expired",
		},
		{
			name:        "unauthorized without body",
			status:      http.StatusUnauthorized,
			body:        ``,
			wantKind:    KindUnauthorized,
			wantMessage: DefaultErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, tt.status, tt.body)
			c := newTestClient(srv, nil)

			_, err := Get[model.UserTeam](context.Background(), c, "/team")
			require.Error(t, err)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantKind, apiErr.Kind)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMessage, err.Error())
			assert.Equal(t, tt.status, StatusOf(err))
		})
	}
}

func TestUnauthorizedHelperClearsSessionExactlyOnce(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusUnauthorized, `{"detail":"Not authenticated"}`)
	sess := &fakeSession{token: "tok"}
	c := newTestClient(srv, sess)

	_, err := Get[model.UserTeam](context.Background(), c, "/team")

	assert.Equal(t, KindUnauthorized, KindOf(err))
	assert.Equal(t, 1, sess.unauthorizedCalls())
}

func TestDecodeError(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{"id": "not-a-number"}`)
	c := newTestClient(srv, nil)

	_, err := Get[model.Player](context.Background(), c, "/players/1")

	assert.Equal(t, KindDecode, KindOf(err))
	var typeErr *json.UnmarshalTypeError
	assert.ErrorAs(t, err, &typeErr)
}

func TestEncodeError(t *testing.T) {
	srv, seen := newTestServer(t, http.StatusOK, `{}`)
	c := newTestClient(srv, nil)

	_, err := Post[map[string]any](context.Background(), c, "/x", map[string]any{"bad": make(chan int)})

	assert.Equal(t, KindEncode, KindOf(err))
	assert.Empty(t, *seen)
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(io.EOF))
	assert.Equal(t, 0, StatusOf(io.EOF))
	assert.Equal(t, "unknown", KindUnknown.String())
	assert.Equal(t, "unauthorized", KindUnauthorized.String())
}

func TestBaseURLTrimsTrailingSlash(t *testing.T) {
	c := New(Config{BaseURL: "http://api.example.com/"}, nil)
	assert.Equal(t, "http://api.example.com", c.BaseURL())
}
