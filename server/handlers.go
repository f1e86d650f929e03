// File: server/handlers.go
package server

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/websocket"

	"github.com/lguibr/curver/bollywood"
	"github.com/lguibr/curver/game"
)

// HandleSubscribe owns one websocket connection for its whole life. It
// mints the connection's user id, spawns the outbound writer actor and then
// runs the read loop inline until the peer disconnects. Each decoded frame
// is forwarded to the router with the sender's identity attached; frames
// that do not decode are echoed back as a faultyMessage.
func (s *Server) HandleSubscribe(ws *websocket.Conn) {
	userID := uuid.New()

	writerPID := s.engine.Spawn(bollywood.NewProps(NewClientWriterProducer(ws, userID)))
	if writerPID == nil {
		ws.Close()
		return
	}
	client := game.NewClientHandle(s.engine, writerPID)

	logrus.WithField("userId", userID).Info("Client connected")

	for {
		var raw string
		if err := websocket.Message.Receive(ws, &raw); err != nil {
			if err != io.EOF {
				logrus.WithFields(logrus.Fields{
					"userId": userID,
					"error":  err,
				}).Debug("Read loop ended")
			}
			break
		}

		msg, err := game.DecodeClientMessage([]byte(raw))
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"userId": userID,
				"error":  err,
			}).Warn("Discarding unparseable frame")
			client.Deliver(game.NewFaultyMessage(raw))
			continue
		}

		s.engine.Send(s.routerPID, game.ForwardedMessage{
			Msg:    msg,
			UserID: userID,
			Client: client,
		}, nil)
	}

	// A dropped connection leaves like a polite client would.
	s.engine.Send(s.routerPID, game.ForwardedMessage{
		Msg:    game.LeaveRoom{},
		UserID: userID,
		Client: client,
	}, nil)
	s.engine.Stop(writerPID)

	logrus.WithField("userId", userID).Info("Client disconnected")
}
