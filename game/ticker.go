// File: game/ticker.go
package game

import (
	"github.com/google/uuid"

	"github.com/lguibr/curver/utils"
)

// Ticker is the simulation engine for one round. It borrows the owning
// room's players, paths, members and scores for the duration of the round;
// the room only ever runs Tick from inside its own message loop, so the
// borrowed maps have a single writer.
type Ticker struct {
	cfg utils.Config

	players map[uuid.UUID]*Player
	paths   map[uuid.UUID]*Path
	members map[uuid.UUID]ClientHandle
	scores  map[uuid.UUID]uint32
	state   *GameState

	tickCount uint32

	// draw, when set, renders the live trails after each sync broadcast.
	draw func(paths map[uuid.UUID]*Path)
}

// NewTicker wires a tick engine over a room's state for one round.
func NewTicker(
	cfg utils.Config,
	players map[uuid.UUID]*Player,
	paths map[uuid.UUID]*Path,
	members map[uuid.UUID]ClientHandle,
	scores map[uuid.UUID]uint32,
	state *GameState,
) *Ticker {
	return &Ticker{
		cfg:     cfg,
		players: players,
		paths:   paths,
		members: members,
		scores:  scores,
		state:   state,
	}
}

// Tick advances the simulation by one step and returns the round outcome
// once one exists; nil means the round continues.
//
// Per player: step forward, check the map bounds, then check the motion
// segment against every trail in the room including the player's own. A
// trail-collision victim still gets its final node appended so the full
// trail stays a hazard; a player that flew off the map does not, since its
// last position is outside the playable area.
func (t *Ticker) Tick() *Outcome {
	var eliminated []uuid.UUID

	for id, player := range t.players {
		player.Advance(t.cfg.DeltaPerTick)

		if player.OutOfBounds(t.cfg.MapWidth, t.cfg.MapHeight) {
			eliminated = append(eliminated, id)
			continue
		}

		for _, path := range t.paths {
			if path.CollidesWith(player, t.cfg.DeltaPerTick) {
				eliminated = append(eliminated, id)
				break
			}
		}

		t.appendToPath(id, Node{player.X, player.Y})
	}

	for _, id := range eliminated {
		delete(t.players, id)
		t.broadcast(NewUserEliminated(id))
	}

	t.broadcastUpdate()

	outcome := t.computeOutcome()
	if outcome != nil {
		t.finishRound(*outcome)
	}

	if t.tickCount%t.cfg.TickCountToSync == 0 {
		t.broadcast(NewSyncPaths(t.clonePaths()))
		if t.draw != nil {
			t.draw(t.paths)
		}
	}
	t.tickCount++

	return outcome
}

// appendToPath records a post-step position, creating the trail lazily so
// mid-round joiners grow one too.
func (t *Ticker) appendToPath(id uuid.UUID, node Node) {
	path, ok := t.paths[id]
	if !ok {
		path = &Path{}
		t.paths[id] = path
	}
	path.Append(node)
}

func (t *Ticker) computeOutcome() *Outcome {
	switch len(t.players) {
	case 0:
		outcome := TieOutcome()
		return &outcome
	case 1:
		for id := range t.players {
			outcome := WinnerOutcome(id)
			return &outcome
		}
	}
	return nil
}

// finishRound settles scores, announces the outcome and returns the room to
// the waiting state. Eliminated members get a fresh player record so the
// whole room can ready up for the next round.
func (t *Ticker) finishRound(outcome Outcome) {
	if outcome.UserID != nil {
		t.scores[*outcome.UserID]++
	}

	t.broadcast(NewGameEnded(outcome, t.cloneScores()))

	for _, player := range t.players {
		player.Reset()
	}
	for id := range t.members {
		if _, alive := t.players[id]; !alive {
			t.players[id] = NewPlayer(id)
		}
	}

	*t.state = StateWaiting
	t.broadcastUpdate()
}

// --- Broadcasting ---

func (t *Ticker) broadcastUpdate() {
	t.broadcast(NewUpdate(t.snapshotPlayers(), *t.state))
}

func (t *Ticker) broadcast(msg interface{}) {
	for _, client := range t.members {
		client.Deliver(msg)
	}
}

// snapshotPlayers copies player values out of room storage so broadcasts
// never alias state the next tick will mutate.
func (t *Ticker) snapshotPlayers() []Player {
	players := make([]Player, 0, len(t.players))
	for _, player := range t.players {
		players = append(players, *player)
	}
	return players
}

func (t *Ticker) clonePaths() map[uuid.UUID]*Path {
	paths := make(map[uuid.UUID]*Path, len(t.paths))
	for id, path := range t.paths {
		paths[id] = path.Clone()
	}
	return paths
}

func (t *Ticker) cloneScores() map[uuid.UUID]uint32 {
	scores := make(map[uuid.UUID]uint32, len(t.scores))
	for id, score := range t.scores {
		scores[id] = score
	}
	return scores
}
