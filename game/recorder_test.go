// File: game/recorder_test.go
package game

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lguibr/curver/bollywood"
)

// recorderActor stands in for a connection writer and records every frame
// delivered to it.
type recorderActor struct {
	mu       sync.Mutex
	received []interface{}
}

func (a *recorderActor) Receive(ctx bollywood.Context) {
	switch ctx.Message().(type) {
	case bollywood.Started, bollywood.Stopping, bollywood.Stopped:
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.received = append(a.received, ctx.Message())
}

func (a *recorderActor) Frames() []interface{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	frames := make([]interface{}, len(a.received))
	copy(frames, a.received)
	return frames
}

// newRecorderClient spawns a recorder and wraps it in a client handle.
func newRecorderClient(t *testing.T, engine *bollywood.Engine) (*recorderActor, ClientHandle) {
	t.Helper()
	recorder := &recorderActor{}
	pid := engine.Spawn(bollywood.NewProps(func() bollywood.Actor { return recorder }))
	assert.NotNil(t, pid, "recorder PID should not be nil")
	return recorder, NewClientHandle(engine, pid)
}

// findFrame returns the first recorded frame of type T.
func findFrame[T any](recorder *recorderActor) (*T, bool) {
	for _, frame := range recorder.Frames() {
		if typed, ok := frame.(T); ok {
			return &typed, true
		}
	}
	return nil, false
}

// countFrames counts recorded frames of type T.
func countFrames[T any](recorder *recorderActor) int {
	count := 0
	for _, frame := range recorder.Frames() {
		if _, ok := frame.(T); ok {
			count++
		}
	}
	return count
}

// waitFor polls cond until it holds or the timeout passes.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}
