// File: game/router_actor_test.go
package game

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/lguibr/curver/bollywood"
)

func setupRouterTest(t *testing.T) (*bollywood.Engine, *bollywood.PID) {
	t.Helper()

	engine := bollywood.NewEngine()
	routerPID := engine.Spawn(bollywood.NewProps(NewRouterProducer(engine, fastRoomConfig())))
	assert.NotNil(t, routerPID)
	time.Sleep(20 * time.Millisecond)

	return engine, routerPID
}

func TestRouter_CreateRoomJoinsCreator(t *testing.T) {
	engine, routerPID := setupRouterTest(t)
	defer engine.Shutdown(time.Second)

	recorder, client := newRecorderClient(t, engine)
	userID := uuid.New()

	engine.Send(routerPID, ForwardedMessage{Msg: CreateRoom{}, UserID: userID, Client: client}, nil)

	ok := waitFor(t, time.Second, func() bool {
		_, found := findFrame[JoinedRoom](recorder)
		return found
	})
	assert.True(t, ok)

	joined, _ := findFrame[JoinedRoom](recorder)
	assert.Equal(t, userID, joined.UserID)
	assert.NotEqual(t, uuid.Nil, joined.RoomID)

	ok = waitFor(t, time.Second, func() bool {
		update, found := findLastUpdate(recorder)
		return found && len(update.Players) == 1
	})
	assert.True(t, ok, "the creator is a member of the new room")
}

func TestRouter_JoinUnknownRoomFails(t *testing.T) {
	engine, routerPID := setupRouterTest(t)
	defer engine.Shutdown(time.Second)

	recorder, client := newRecorderClient(t, engine)
	ghostRoom := uuid.New()

	engine.Send(routerPID, ForwardedMessage{Msg: JoinRoom{RoomID: ghostRoom}, UserID: uuid.New(), Client: client}, nil)

	ok := waitFor(t, time.Second, func() bool {
		_, found := findFrame[JoinRoomError](recorder)
		return found
	})
	assert.True(t, ok)

	joinErr, _ := findFrame[JoinRoomError](recorder)
	assert.Equal(t, "Room "+ghostRoom.String()+" does not exist", joinErr.Reason)
}

func TestRouter_JoinExistingRoom(t *testing.T) {
	engine, routerPID := setupRouterTest(t)
	defer engine.Shutdown(time.Second)

	creatorRecorder, creatorClient := newRecorderClient(t, engine)
	joinerRecorder, joinerClient := newRecorderClient(t, engine)
	creator, joiner := uuid.New(), uuid.New()

	engine.Send(routerPID, ForwardedMessage{Msg: CreateRoom{}, UserID: creator, Client: creatorClient}, nil)

	ok := waitFor(t, time.Second, func() bool {
		_, found := findFrame[JoinedRoom](creatorRecorder)
		return found
	})
	assert.True(t, ok)
	created, _ := findFrame[JoinedRoom](creatorRecorder)

	engine.Send(routerPID, ForwardedMessage{Msg: JoinRoom{RoomID: created.RoomID}, UserID: joiner, Client: joinerClient}, nil)

	ok = waitFor(t, time.Second, func() bool {
		joined, found := findFrame[JoinedRoom](joinerRecorder)
		return found && joined.RoomID == created.RoomID
	})
	assert.True(t, ok)

	ok = waitFor(t, time.Second, func() bool {
		update, found := findLastUpdate(creatorRecorder)
		return found && len(update.Players) == 2
	})
	assert.True(t, ok, "the creator sees the joiner arrive")
}

func TestRouter_LeaveWithoutRoomFails(t *testing.T) {
	engine, routerPID := setupRouterTest(t)
	defer engine.Shutdown(time.Second)

	recorder, client := newRecorderClient(t, engine)

	engine.Send(routerPID, ForwardedMessage{Msg: LeaveRoom{}, UserID: uuid.New(), Client: client}, nil)

	ok := waitFor(t, time.Second, func() bool {
		_, found := findFrame[LeaveRoomError](recorder)
		return found
	})
	assert.True(t, ok)

	leaveErr, _ := findFrame[LeaveRoomError](recorder)
	assert.Equal(t, "You are not in a room", leaveErr.Reason)
}

func TestRouter_LeaveThenRoomRetires(t *testing.T) {
	engine, routerPID := setupRouterTest(t)
	defer engine.Shutdown(time.Second)

	recorder, client := newRecorderClient(t, engine)
	userID := uuid.New()

	engine.Send(routerPID, ForwardedMessage{Msg: CreateRoom{}, UserID: userID, Client: client}, nil)

	ok := waitFor(t, time.Second, func() bool {
		_, found := findFrame[JoinedRoom](recorder)
		return found
	})
	assert.True(t, ok)

	engine.Send(routerPID, ForwardedMessage{Msg: LeaveRoom{}, UserID: userID, Client: client}, nil)

	ok = waitFor(t, time.Second, func() bool {
		_, found := findFrame[LeftRoom](recorder)
		return found
	})
	assert.True(t, ok)

	ok = waitFor(t, time.Second, func() bool {
		response, err := engine.Ask(routerPID, RoomListRequest{}, time.Second)
		if err != nil {
			return false
		}
		return len(response.(RoomListResponse).Rooms) == 0
	})
	assert.True(t, ok, "an emptied room is removed from the registry")
}

func TestRouter_RoomListCountsMembers(t *testing.T) {
	engine, routerPID := setupRouterTest(t)
	defer engine.Shutdown(time.Second)

	creatorRecorder, creatorClient := newRecorderClient(t, engine)
	_, joinerClient := newRecorderClient(t, engine)
	creator, joiner := uuid.New(), uuid.New()

	engine.Send(routerPID, ForwardedMessage{Msg: CreateRoom{}, UserID: creator, Client: creatorClient}, nil)

	ok := waitFor(t, time.Second, func() bool {
		_, found := findFrame[JoinedRoom](creatorRecorder)
		return found
	})
	assert.True(t, ok)
	created, _ := findFrame[JoinedRoom](creatorRecorder)

	engine.Send(routerPID, ForwardedMessage{Msg: JoinRoom{RoomID: created.RoomID}, UserID: joiner, Client: joinerClient}, nil)

	ok = waitFor(t, time.Second, func() bool {
		response, err := engine.Ask(routerPID, RoomListRequest{}, time.Second)
		if err != nil {
			return false
		}
		rooms := response.(RoomListResponse).Rooms
		return rooms[created.RoomID] == 2
	})
	assert.True(t, ok)
}

func TestRouter_SwitchingRoomsLeavesTheOldOne(t *testing.T) {
	engine, routerPID := setupRouterTest(t)
	defer engine.Shutdown(time.Second)

	firstRecorder, firstClient := newRecorderClient(t, engine)
	hopperRecorder, hopperClient := newRecorderClient(t, engine)
	resident, hopper := uuid.New(), uuid.New()

	engine.Send(routerPID, ForwardedMessage{Msg: CreateRoom{}, UserID: resident, Client: firstClient}, nil)

	ok := waitFor(t, time.Second, func() bool {
		_, found := findFrame[JoinedRoom](firstRecorder)
		return found
	})
	assert.True(t, ok)
	firstRoom, _ := findFrame[JoinedRoom](firstRecorder)

	engine.Send(routerPID, ForwardedMessage{Msg: JoinRoom{RoomID: firstRoom.RoomID}, UserID: hopper, Client: hopperClient}, nil)

	ok = waitFor(t, time.Second, func() bool {
		_, found := findFrame[JoinedRoom](hopperRecorder)
		return found
	})
	assert.True(t, ok)

	// The hopper creates a fresh room, implicitly leaving the first one.
	engine.Send(routerPID, ForwardedMessage{Msg: CreateRoom{}, UserID: hopper, Client: hopperClient}, nil)

	ok = waitFor(t, time.Second, func() bool {
		eliminated, found := findFrame[UserEliminated](firstRecorder)
		return found && eliminated.UserID == hopper
	})
	assert.True(t, ok, "the first room sees the hopper leave")

	ok = waitFor(t, time.Second, func() bool {
		response, err := engine.Ask(routerPID, RoomListRequest{}, time.Second)
		if err != nil {
			return false
		}
		rooms := response.(RoomListResponse).Rooms
		return len(rooms) == 2 && rooms[firstRoom.RoomID] == 1
	})
	assert.True(t, ok)
}
