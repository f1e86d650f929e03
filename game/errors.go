// File: game/errors.go
package game

import (
	"fmt"

	"github.com/google/uuid"
)

// RoomNotFoundError is the reason behind every joinRoomError for an unknown
// room id. Its text is part of the wire contract.
type RoomNotFoundError struct {
	RoomID uuid.UUID
}

func (e RoomNotFoundError) Error() string {
	return fmt.Sprintf("Room %s does not exist", e.RoomID)
}

// NotInRoomError is the reason behind a leaveRoomError for a client that is
// in no room.
type NotInRoomError struct{}

func (e NotInRoomError) Error() string {
	return "You are not in a room"
}
