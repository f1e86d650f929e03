// File: test/helpers_test.go
package test

import (
	"fmt"
	"testing"
	"time"

	"golang.org/x/net/websocket"
)

// ServerFrame is the superset shape of every frame the server can emit,
// decoded loosely so tests can switch on Type.
type ServerFrame struct {
	Type       string               `json:"type"`
	RoomID     string               `json:"roomId"`
	UserID     string               `json:"userId"`
	Reason     string               `json:"reason"`
	Message    string               `json:"message"`
	GameState  string               `json:"gameState"`
	Players    []PlayerFrame        `json:"players"`
	Paths      map[string]PathFrame `json:"paths"`
	Outcome    *OutcomeFrame        `json:"outcome"`
	ScoreBoard map[string]uint32    `json:"scoreBoard"`
}

type PlayerFrame struct {
	ID               string  `json:"id"`
	X                float64 `json:"x"`
	Y                float64 `json:"y"`
	AngleUnitVectorX float64 `json:"angleUnitVectorX"`
	AngleUnitVectorY float64 `json:"angleUnitVectorY"`
	IsReady          bool    `json:"isReady"`
}

type PathFrame struct {
	Nodes [][2]float64 `json:"nodes"`
}

type OutcomeFrame struct {
	Type   string `json:"type"`
	UserID string `json:"userId"`
}

// ReadFrame reads one frame with a deadline.
func ReadFrame(t *testing.T, ws *websocket.Conn, timeout time.Duration) (*ServerFrame, error) {
	t.Helper()

	if err := ws.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return nil, fmt.Errorf("failed to set read deadline: %w", err)
	}

	var frame ServerFrame
	if err := websocket.JSON.Receive(ws, &frame); err != nil {
		return nil, err
	}
	return &frame, nil
}

// WaitForFrame discards frames until one matches the predicate or the
// overall deadline passes. Broadcast-heavy phases interleave many update
// frames, so most assertions scan rather than read a fixed position.
func WaitForFrame(t *testing.T, ws *websocket.Conn, timeout time.Duration, match func(*ServerFrame) bool) (*ServerFrame, error) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, fmt.Errorf("no matching frame within %v", timeout)
		}
		frame, err := ReadFrame(t, ws, remaining)
		if err != nil {
			return nil, fmt.Errorf("read while waiting for frame: %w", err)
		}
		if match(frame) {
			return frame, nil
		}
	}
}

// WaitForFrameType scans for the next frame of the given type.
func WaitForFrameType(t *testing.T, ws *websocket.Conn, timeout time.Duration, frameType string) (*ServerFrame, error) {
	t.Helper()
	return WaitForFrame(t, ws, timeout, func(f *ServerFrame) bool {
		return f.Type == frameType
	})
}

// SendFrame marshals and sends one client frame.
func SendFrame(t *testing.T, ws *websocket.Conn, frame interface{}) error {
	t.Helper()
	return websocket.JSON.Send(ws, frame)
}
