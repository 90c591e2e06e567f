package factory

import (
	"context"
	"net/http/httptest"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/hoopsclient/internal/dependencies/mocks"
	"github.com/mcoot/hoopsclient/internal/fakeapi"
	"github.com/mcoot/hoopsclient/internal/fakeapi/accounts"
	"github.com/mcoot/hoopsclient/internal/navigation"
	"github.com/mcoot/hoopsclient/internal/storage/memory"
	"github.com/mcoot/hoopsclient/internal/testutil"
)

// TestApp is a client App talking to an in-process fake API
type TestApp struct {
	*App

	// FakeAPI is the server side; Server serves its handler
	FakeAPI *FakeAPI
	Server  *httptest.Server

	// Test control
	MemoryStorage *memory.Storage
	Navigator     *navigation.Recorder
	MockClock     *mocks.MockClock
	MockRandom    *mocks.MockRandom
}

// TestAppOptions tweak NewTestApp
type TestAppOptions struct {
	// NoTokenOnRegister makes /auth/register answer without a token
	NoTokenOnRegister bool
}

// NewTestApp creates an App wired to a fake API with mocked clock and
// randomness. Call Close when done.
func NewTestApp(opts ...TestAppOptions) *TestApp {
	var opt TestAppOptions
	if len(opts) > 0 {
		opt = opts[0]
	}

	logger := testutil.NopLogger()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	api := newFakeAPIWithDependencies(
		fakeapi.Config{TokenOnRegister: !opt.NoTokenOnRegister, EnableDev: true},
		mockClock,
		mockRandom,
		accounts.Config{Secret: []byte("test-secret"), TokenTTL: time.Hour, BcryptCost: bcrypt.MinCost},
		logger,
	)
	server := httptest.NewServer(api.Handler)

	store := memory.New()
	nav := navigation.NewRecorder()

	app, err := newWithDependencies(context.Background(), store, mockClock, Config{
		BaseURL:   server.URL,
		Navigator: nav,
	}, logger)
	if err != nil {
		// memory storage cannot fail to load
		panic(err)
	}

	return &TestApp{
		App:           app,
		FakeAPI:       api,
		Server:        server,
		MemoryStorage: store,
		Navigator:     nav,
		MockClock:     mockClock,
		MockRandom:    mockRandom,
	}
}

// Reopen builds a second App over the same storage, as a restarted process would
func (t *TestApp) Reopen() (*App, error) {
	return newWithDependencies(context.Background(), t.MemoryStorage, t.MockClock, Config{
		BaseURL:   t.Server.URL,
		Navigator: t.Navigator,
	}, testutil.NopLogger())
}

// Close stops the fake API server
func (t *TestApp) Close() {
	t.Server.Close()
	_ = t.App.Close()
}
