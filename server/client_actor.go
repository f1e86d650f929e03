// File: server/client_actor.go
package server

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/websocket"

	"github.com/lguibr/curver/bollywood"
)

// ClientWriterActor serializes all outbound frames for one websocket
// connection. Every message that reaches its mailbox, other than actor
// lifecycle notifications, is a wire struct and is written as JSON.
type ClientWriterActor struct {
	ws     *websocket.Conn
	userID uuid.UUID
}

// NewClientWriterProducer builds the producer for a connection's writer.
func NewClientWriterProducer(ws *websocket.Conn, userID uuid.UUID) bollywood.Producer {
	return func() bollywood.Actor {
		return &ClientWriterActor{ws: ws, userID: userID}
	}
}

func (c *ClientWriterActor) Receive(ctx bollywood.Context) {
	switch ctx.Message().(type) {
	case bollywood.Started, bollywood.Stopping, bollywood.Stopped:
		return
	}

	if err := websocket.JSON.Send(c.ws, ctx.Message()); err != nil {
		// The connection is usually already gone; the read loop handles
		// the actual teardown.
		logrus.WithFields(logrus.Fields{
			"userId": c.userID,
			"error":  err,
		}).Debug("Failed to write frame to client")
	}
}
