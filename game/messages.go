// File: game/messages.go
package game

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// GameState is the lifecycle phase of a room.
type GameState string

const (
	StateWaiting   GameState = "waiting"
	StateCountdown GameState = "countdown"
	StateStarted   GameState = "started"
)

// --- Inbound Wire Messages (Client -> Server) ---

// Inbound message type discriminators.
const (
	TypeCreateRoom = "createRoom"
	TypeJoinRoom   = "joinRoom"
	TypeLeaveRoom  = "leaveRoom"
	TypeRotate     = "rotate"
	TypeIsReady    = "isReady"
)

// CreateRoom asks the router to mint a fresh room and join the sender to it.
type CreateRoom struct{}

// JoinRoom asks the router to place the sender into an existing room.
type JoinRoom struct {
	RoomID uuid.UUID
}

// LeaveRoom removes the sender from whichever room it is in.
type LeaveRoom struct{}

// Rotate overwrites the sender's heading. The client is trusted to supply a
// unit vector; no magnitude validation is performed.
type Rotate struct {
	AngleUnitVectorX float64
	AngleUnitVectorY float64
}

// IsReady sets the sender's readiness flag for the next round.
type IsReady struct {
	IsReady bool
}

// inboundFrame is the superset JSON shape every client frame decodes into
// before being narrowed by its type discriminator.
type inboundFrame struct {
	Type             string  `json:"type"`
	RoomID           string  `json:"roomId"`
	AngleUnitVectorX float64 `json:"angleUnitVectorX"`
	AngleUnitVectorY float64 `json:"angleUnitVectorY"`
	IsReady          bool    `json:"isReady"`
}

// DecodeClientMessage parses one raw text frame into its typed inbound
// variant. Unknown discriminators and malformed JSON are both decode errors;
// the connection adapter answers those with a faultyMessage.
func DecodeClientMessage(raw []byte) (interface{}, error) {
	var frame inboundFrame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return nil, fmt.Errorf("malformed frame: %w", err)
	}

	switch frame.Type {
	case TypeCreateRoom:
		return CreateRoom{}, nil
	case TypeJoinRoom:
		roomID, err := uuid.Parse(frame.RoomID)
		if err != nil {
			return nil, fmt.Errorf("malformed room id %q: %w", frame.RoomID, err)
		}
		return JoinRoom{RoomID: roomID}, nil
	case TypeLeaveRoom:
		return LeaveRoom{}, nil
	case TypeRotate:
		return Rotate{
			AngleUnitVectorX: frame.AngleUnitVectorX,
			AngleUnitVectorY: frame.AngleUnitVectorY,
		}, nil
	case TypeIsReady:
		return IsReady{IsReady: frame.IsReady}, nil
	default:
		return nil, fmt.Errorf("unknown message type %q", frame.Type)
	}
}

// --- Outbound Wire Messages (Server -> Client) ---

// JoinedRoom confirms room entry and tells the client its own identity.
type JoinedRoom struct {
	Type   string    `json:"type"` // "joinedRoom"
	RoomID uuid.UUID `json:"roomId"`
	UserID uuid.UUID `json:"userId"`
}

func NewJoinedRoom(roomID, userID uuid.UUID) JoinedRoom {
	return JoinedRoom{Type: "joinedRoom", RoomID: roomID, UserID: userID}
}

// JoinRoomError reports a failed join; no state changed.
type JoinRoomError struct {
	Type   string `json:"type"` // "joinRoomError"
	Reason string `json:"reason"`
}

func NewJoinRoomError(reason string) JoinRoomError {
	return JoinRoomError{Type: "joinRoomError", Reason: reason}
}

// LeftRoom confirms the sender was removed from its room.
type LeftRoom struct {
	Type string `json:"type"` // "leftRoom"
}

func NewLeftRoom() LeftRoom {
	return LeftRoom{Type: "leftRoom"}
}

// LeaveRoomError reports a leave attempt by a client that is in no room.
type LeaveRoomError struct {
	Type   string `json:"type"` // "leaveRoomError"
	Reason string `json:"reason"`
}

func NewLeaveRoomError(reason string) LeaveRoomError {
	return LeaveRoomError{Type: "leaveRoomError", Reason: reason}
}

// Update is the per-tick state-of-the-world broadcast.
type Update struct {
	Type      string    `json:"type"` // "update"
	Players   []Player  `json:"players"`
	GameState GameState `json:"gameState"`
}

func NewUpdate(players []Player, state GameState) Update {
	return Update{Type: "update", Players: players, GameState: state}
}

// SyncPaths carries a deep copy of every trail in the room, broadcast once
// per TickCountToSync ticks so clients can correct prediction drift.
type SyncPaths struct {
	Type  string              `json:"type"` // "syncPaths"
	Paths map[uuid.UUID]*Path `json:"paths"`
}

func NewSyncPaths(paths map[uuid.UUID]*Path) SyncPaths {
	return SyncPaths{Type: "syncPaths", Paths: paths}
}

// Outcome is how a round ended: a winner, or a tie when the last players
// died on the same tick.
type Outcome struct {
	Type   string     `json:"type"` // "winner" | "tie"
	UserID *uuid.UUID `json:"userId,omitempty"`
}

func WinnerOutcome(userID uuid.UUID) Outcome {
	return Outcome{Type: "winner", UserID: &userID}
}

func TieOutcome() Outcome {
	return Outcome{Type: "tie"}
}

// GameEnded announces the round outcome along with the room's scoreboard.
type GameEnded struct {
	Type       string               `json:"type"` // "gameEnded"
	Outcome    Outcome              `json:"outcome"`
	ScoreBoard map[uuid.UUID]uint32 `json:"scoreBoard"`
}

func NewGameEnded(outcome Outcome, scoreBoard map[uuid.UUID]uint32) GameEnded {
	return GameEnded{Type: "gameEnded", Outcome: outcome, ScoreBoard: scoreBoard}
}

// UserEliminated announces a player hitting a wall, a trail, or leaving.
type UserEliminated struct {
	Type   string    `json:"type"` // "userEliminated"
	UserID uuid.UUID `json:"userId"`
}

func NewUserEliminated(userID uuid.UUID) UserEliminated {
	return UserEliminated{Type: "userEliminated", UserID: userID}
}

// FaultyMessage echoes a frame the server could not parse back to its sender.
type FaultyMessage struct {
	Type    string `json:"type"` // "faultyMessage"
	Message string `json:"message"`
}

func NewFaultyMessage(original string) FaultyMessage {
	return FaultyMessage{Type: "faultyMessage", Message: original}
}

// --- Actor Messages (Internal Communication) ---

// ForwardedMessage wraps a decoded client message with the sender's identity
// and outbound handle as it travels from the connection adapter through the
// router into a room.
type ForwardedMessage struct {
	Msg    interface{}
	UserID uuid.UUID
	Client ClientHandle
}

// RoomTick is posted by a room's tick loop into its own mailbox.
type RoomTick struct{}

// RoomEmpty notifies the router that a room lost its last member and should
// be retired.
type RoomEmpty struct {
	RoomID uuid.UUID
}

// RoomListRequest asks the router for active rooms and their sizes (via Ask).
type RoomListRequest struct{}

// RoomListResponse maps room ids to member counts.
type RoomListResponse struct {
	Rooms map[uuid.UUID]int
}
