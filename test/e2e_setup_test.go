// File: test/e2e_setup_test.go
package test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/websocket"

	"github.com/lguibr/curver/bollywood"
	"github.com/lguibr/curver/server"
	"github.com/lguibr/curver/utils"
)

// E2ESetupResult holds the results of the setup function.
type E2ESetupResult struct {
	Engine *bollywood.Engine
	Server *httptest.Server
	WsURL  string
	Origin string
	Cfg    utils.Config
}

// FastConfig shortens every timing knob so rounds complete within a test.
func FastConfig() utils.Config {
	cfg := utils.DefaultConfig()
	cfg.TickPeriod = 5 * time.Millisecond
	cfg.Countdown = 50 * time.Millisecond
	cfg.TickCountToSync = 2
	return cfg
}

// SetupE2ETest initializes the engine, the game server, and a test HTTP
// server fronting it.
func SetupE2ETest(t *testing.T, cfg utils.Config) E2ESetupResult {
	t.Helper()

	engine := bollywood.NewEngine()
	gameServer := server.New(engine, cfg)
	assert.NotNil(t, gameServer.RouterPID(), "router PID should not be nil")
	time.Sleep(50 * time.Millisecond)

	s := httptest.NewServer(gameServer.Handler())

	return E2ESetupResult{
		Engine: engine,
		Server: s,
		WsURL:  "ws" + strings.TrimPrefix(s.URL, "http") + "/ws",
		Origin: "http://localhost/",
		Cfg:    cfg,
	}
}

// TeardownE2ETest shuts down the engine and closes the server.
func TeardownE2ETest(t *testing.T, setupResult E2ESetupResult, shutdownTimeout time.Duration) {
	t.Helper()
	if setupResult.Server != nil {
		setupResult.Server.Close()
	}
	if setupResult.Engine != nil {
		setupResult.Engine.Shutdown(shutdownTimeout)
	}
}

// DialE2E opens one websocket client against the test server.
func DialE2E(t *testing.T, setupResult E2ESetupResult) *websocket.Conn {
	t.Helper()
	ws, err := websocket.Dial(setupResult.WsURL, "", setupResult.Origin)
	assert.NoError(t, err, "websocket dial should succeed")
	return ws
}
