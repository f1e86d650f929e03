// File: game/player.go
package game

import "github.com/google/uuid"

// Player is the live record for one connected participant in a room. It is
// created on join, mutated only by its owning room, and doubles as the wire
// representation inside update broadcasts.
type Player struct {
	ID               uuid.UUID `json:"id"`
	X                float64   `json:"x"`
	Y                float64   `json:"y"`
	AngleUnitVectorX float64   `json:"angleUnitVectorX"`
	AngleUnitVectorY float64   `json:"angleUnitVectorY"`
	IsReady          bool      `json:"isReady"`
}

// NewPlayer creates a player parked at the origin with a zero heading.
// Positions and headings are assigned when a round starts.
func NewPlayer(id uuid.UUID) *Player {
	return &Player{ID: id}
}

// Advance moves the player delta map units along its heading.
func (p *Player) Advance(delta float64) {
	p.X += p.AngleUnitVectorX * delta
	p.Y += p.AngleUnitVectorY * delta
}

// OutOfBounds reports whether the player has left the map rectangle.
// The boundary itself is still in bounds.
func (p *Player) OutOfBounds(width, height float64) bool {
	return p.X < 0 || p.X > width || p.Y < 0 || p.Y > height
}

// Reset parks the player back at the origin and clears its readiness, the
// state every survivor returns to when a round ends.
func (p *Player) Reset() {
	p.X = 0
	p.Y = 0
	p.AngleUnitVectorX = 0
	p.AngleUnitVectorY = 0
	p.IsReady = false
}
