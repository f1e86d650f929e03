// File: server/server.go
package server

import (
	"net/http"

	"golang.org/x/net/websocket"

	"github.com/lguibr/curver/bollywood"
	"github.com/lguibr/curver/game"
	"github.com/lguibr/curver/utils"
)

// Server ties the actor engine to the HTTP surface. It spawns the router
// and hands each websocket connection to HandleSubscribe.
type Server struct {
	engine    *bollywood.Engine
	cfg       utils.Config
	routerPID *bollywood.PID
}

// New spawns the router actor and returns a ready server.
func New(engine *bollywood.Engine, cfg utils.Config) *Server {
	routerPID := engine.Spawn(bollywood.NewProps(game.NewRouterProducer(engine, cfg)))
	return &Server{
		engine:    engine,
		cfg:       cfg,
		routerPID: routerPID,
	}
}

// RouterPID exposes the router identity, used by tests for introspection.
func (s *Server) RouterPID() *bollywood.PID {
	return s.routerPID
}

// Handler builds the HTTP mux: the websocket endpoint plus a health probe.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", websocket.Handler(s.HandleSubscribe))
	mux.HandleFunc("/health", s.HandleHealth)
	return mux
}

// HandleHealth answers liveness probes with an empty 200.
func (s *Server) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
