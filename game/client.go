// File: game/client.go
package game

import "github.com/lguibr/curver/bollywood"

// ClientHandle is a cheap, copyable reference to one connected client's
// outbound channel. Rooms and the router hold handles for delivery; the
// actual websocket write happens inside the per-connection writer actor the
// handle points at. Once that actor is stopped (connection closed), further
// deliveries are silently dropped by the engine.
type ClientHandle struct {
	engine *bollywood.Engine
	pid    *bollywood.PID
}

// NewClientHandle builds a handle around a connection writer actor.
func NewClientHandle(engine *bollywood.Engine, pid *bollywood.PID) ClientHandle {
	return ClientHandle{engine: engine, pid: pid}
}

// Deliver enqueues an outbound frame for this client. Non-blocking; drops
// when the writer is gone or its mailbox is full.
func (c ClientHandle) Deliver(msg interface{}) {
	if c.engine == nil || c.pid == nil {
		return
	}
	c.engine.Send(c.pid, msg, nil)
}

// PID exposes the writer actor identity, used by tests and for logging.
func (c ClientHandle) PID() *bollywood.PID {
	return c.pid
}
