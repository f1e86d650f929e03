// File: game/router_actor.go
package game

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lguibr/curver/bollywood"
	"github.com/lguibr/curver/utils"
)

// RouterActor is the entry point for every decoded client message. It owns
// the room registry and the user-to-room index, spawns rooms on demand and
// retires them when their last member leaves. Room-scoped messages are
// forwarded to the owning RoomActor.
type RouterActor struct {
	engine *bollywood.Engine
	cfg    utils.Config

	rooms    map[uuid.UUID]*bollywood.PID
	userRoom map[uuid.UUID]uuid.UUID
}

// NewRouterProducer builds the producer for the single router actor.
func NewRouterProducer(engine *bollywood.Engine, cfg utils.Config) bollywood.Producer {
	return func() bollywood.Actor {
		return &RouterActor{
			engine:   engine,
			cfg:      cfg,
			rooms:    make(map[uuid.UUID]*bollywood.PID),
			userRoom: make(map[uuid.UUID]uuid.UUID),
		}
	}
}

func (r *RouterActor) Receive(ctx bollywood.Context) {
	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		logrus.Info("Router started")
	case bollywood.Stopping:
		logrus.Info("Router stopping")
	case ForwardedMessage:
		r.handleClientMessage(ctx, msg)
	case RoomEmpty:
		r.handleRoomEmpty(msg.RoomID)
	case RoomListRequest:
		ctx.Reply(RoomListResponse{Rooms: r.roomSizes()})
	}
}

func (r *RouterActor) handleClientMessage(ctx bollywood.Context, fwd ForwardedMessage) {
	switch m := fwd.Msg.(type) {
	case CreateRoom:
		r.handleCreateRoom(ctx, fwd)
	case JoinRoom:
		r.handleJoinRoom(fwd, m.RoomID)
	case LeaveRoom:
		r.handleLeaveRoom(fwd)
	case Rotate, IsReady:
		r.forwardToRoom(fwd)
	default:
		logrus.WithFields(logrus.Fields{
			"userId":  fwd.UserID,
			"message": fwd.Msg,
		}).Warn("Router received unexpected client message")
	}
}

func (r *RouterActor) handleCreateRoom(ctx bollywood.Context, fwd ForwardedMessage) {
	r.leaveCurrentRoom(fwd)

	roomID := uuid.New()
	pid := r.engine.Spawn(bollywood.NewProps(NewRoomProducer(r.engine, r.cfg, roomID, ctx.Self())))
	if pid == nil {
		fwd.Client.Deliver(NewJoinRoomError("server is shutting down"))
		return
	}

	r.rooms[roomID] = pid
	r.userRoom[fwd.UserID] = roomID

	logrus.WithFields(logrus.Fields{
		"roomId": roomID,
		"userId": fwd.UserID,
	}).Info("Room created")

	fwd.Client.Deliver(NewJoinedRoom(roomID, fwd.UserID))
	r.engine.Send(pid, ForwardedMessage{
		Msg:    JoinRoom{RoomID: roomID},
		UserID: fwd.UserID,
		Client: fwd.Client,
	}, ctx.Self())
}

func (r *RouterActor) handleJoinRoom(fwd ForwardedMessage, roomID uuid.UUID) {
	pid, ok := r.rooms[roomID]
	if !ok {
		fwd.Client.Deliver(NewJoinRoomError(RoomNotFoundError{RoomID: roomID}.Error()))
		return
	}

	r.leaveCurrentRoom(fwd)
	r.userRoom[fwd.UserID] = roomID

	fwd.Client.Deliver(NewJoinedRoom(roomID, fwd.UserID))
	r.engine.Send(pid, fwd, nil)
}

func (r *RouterActor) handleLeaveRoom(fwd ForwardedMessage) {
	roomID, ok := r.userRoom[fwd.UserID]
	if !ok {
		fwd.Client.Deliver(NewLeaveRoomError(NotInRoomError{}.Error()))
		return
	}

	delete(r.userRoom, fwd.UserID)
	if pid, ok := r.rooms[roomID]; ok {
		r.engine.Send(pid, fwd, nil)
	}
	fwd.Client.Deliver(NewLeftRoom())
}

// leaveCurrentRoom detaches a user from its current room, if any, before a
// create or join moves it elsewhere. A user is never in two rooms at once.
func (r *RouterActor) leaveCurrentRoom(fwd ForwardedMessage) {
	roomID, ok := r.userRoom[fwd.UserID]
	if !ok {
		return
	}
	delete(r.userRoom, fwd.UserID)
	if pid, ok := r.rooms[roomID]; ok {
		r.engine.Send(pid, ForwardedMessage{
			Msg:    LeaveRoom{},
			UserID: fwd.UserID,
			Client: fwd.Client,
		}, nil)
	}
}

func (r *RouterActor) forwardToRoom(fwd ForwardedMessage) {
	roomID, ok := r.userRoom[fwd.UserID]
	if !ok {
		logrus.WithField("userId", fwd.UserID).Debug("Dropping room-scoped message from roomless user")
		return
	}
	if pid, ok := r.rooms[roomID]; ok {
		r.engine.Send(pid, fwd, nil)
	}
}

func (r *RouterActor) handleRoomEmpty(roomID uuid.UUID) {
	pid, ok := r.rooms[roomID]
	if !ok {
		return
	}
	delete(r.rooms, roomID)
	r.engine.Stop(pid)
	logrus.WithField("roomId", roomID).Info("Room retired")
}

func (r *RouterActor) roomSizes() map[uuid.UUID]int {
	sizes := make(map[uuid.UUID]int, len(r.rooms))
	for roomID := range r.rooms {
		sizes[roomID] = 0
	}
	for _, roomID := range r.userRoom {
		if _, ok := sizes[roomID]; ok {
			sizes[roomID]++
		}
	}
	return sizes
}
