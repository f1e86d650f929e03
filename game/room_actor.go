// File: game/room_actor.go
package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lguibr/curver/bollywood"
	"github.com/lguibr/curver/utils"
)

// spawnRadiusFactor scales the spawn circle radius off the shorter map side.
const spawnRadiusFactor = 0.4

// RoomActor owns one game room: its members, their players and trails, the
// scoreboard and the round lifecycle. All mutation happens inside Receive,
// except the tick loop goroutine, which only posts RoomTick messages back
// into this actor's mailbox.
type RoomActor struct {
	engine    *bollywood.Engine
	cfg       utils.Config
	id        uuid.UUID
	routerPID *bollywood.PID

	members map[uuid.UUID]ClientHandle
	players map[uuid.UUID]*Player
	paths   map[uuid.UUID]*Path
	scores  map[uuid.UUID]uint32
	state   GameState

	ticker   *Ticker
	stopTick chan struct{}
}

// NewRoomProducer builds the producer the router uses to spawn a room.
func NewRoomProducer(engine *bollywood.Engine, cfg utils.Config, id uuid.UUID, routerPID *bollywood.PID) bollywood.Producer {
	return func() bollywood.Actor {
		return &RoomActor{
			engine:    engine,
			cfg:       cfg,
			id:        id,
			routerPID: routerPID,
			members:   make(map[uuid.UUID]ClientHandle),
			players:   make(map[uuid.UUID]*Player),
			paths:     make(map[uuid.UUID]*Path),
			scores:    make(map[uuid.UUID]uint32),
			state:     StateWaiting,
		}
	}
}

func (r *RoomActor) Receive(ctx bollywood.Context) {
	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		logrus.WithField("roomId", r.id).Info("Room started")
	case bollywood.Stopping:
		r.stopTickLoop()
		logrus.WithField("roomId", r.id).Info("Room stopping")
	case ForwardedMessage:
		r.handleClientMessage(ctx, msg)
	case RoomTick:
		r.handleTick()
	}
}

func (r *RoomActor) handleClientMessage(ctx bollywood.Context, fwd ForwardedMessage) {
	switch m := fwd.Msg.(type) {
	case JoinRoom:
		r.handleJoin(fwd.UserID, fwd.Client)
	case CreateRoom:
		// The router always rewrites a create into a join before forwarding.
		panic("room received CreateRoom, broken router dispatch")
	case LeaveRoom:
		r.handleLeave(fwd.UserID)
	case IsReady:
		r.handleReady(ctx, fwd.UserID, m.IsReady)
	case Rotate:
		r.handleRotate(fwd.UserID, m)
	default:
		logrus.WithFields(logrus.Fields{
			"roomId":  r.id,
			"userId":  fwd.UserID,
			"message": fwd.Msg,
		}).Warn("Room received unexpected client message")
	}
}

// handleJoin admits a user. A join during a running round places the player
// at the origin with a zero heading, so it stands still until the next
// round repositions everyone.
func (r *RoomActor) handleJoin(userID uuid.UUID, client ClientHandle) {
	r.members[userID] = client
	r.players[userID] = NewPlayer(userID)
	if _, ok := r.scores[userID]; !ok {
		r.scores[userID] = 0
	}

	logrus.WithFields(logrus.Fields{
		"roomId": r.id,
		"userId": userID,
	}).Info("User joined room")

	r.broadcastUpdate()
}

func (r *RoomActor) handleLeave(userID uuid.UUID) {
	if _, ok := r.members[userID]; !ok {
		return
	}

	delete(r.members, userID)
	delete(r.players, userID)
	delete(r.paths, userID)
	delete(r.scores, userID)

	logrus.WithFields(logrus.Fields{
		"roomId": r.id,
		"userId": userID,
	}).Info("User left room")

	r.broadcast(NewUserEliminated(userID))
	r.broadcastUpdate()

	if len(r.members) == 0 {
		r.stopTickLoop()
		if r.routerPID != nil {
			r.engine.Send(r.routerPID, RoomEmpty{RoomID: r.id}, nil)
		}
	}
}

func (r *RoomActor) handleReady(ctx bollywood.Context, userID uuid.UUID, ready bool) {
	player, ok := r.players[userID]
	if !ok {
		return
	}
	player.IsReady = ready
	r.broadcastUpdate()
	r.maybeStartGame(ctx)
}

// handleRotate trusts the client's heading. The vector is applied as sent;
// a non-unit vector simply makes that player faster or slower.
func (r *RoomActor) handleRotate(userID uuid.UUID, m Rotate) {
	player, ok := r.players[userID]
	if !ok {
		return
	}
	player.AngleUnitVectorX = m.AngleUnitVectorX
	player.AngleUnitVectorY = m.AngleUnitVectorY
}

// maybeStartGame fires the countdown once everyone present is ready. The
// ready transition is only honored from the waiting state, so a ready toggle
// mid-round cannot spawn a second tick loop.
func (r *RoomActor) maybeStartGame(ctx bollywood.Context) {
	if r.state != StateWaiting {
		return
	}
	if len(r.players) < r.cfg.MinPlayersToStart {
		return
	}
	for _, player := range r.players {
		if !player.IsReady {
			return
		}
	}

	logrus.WithFields(logrus.Fields{
		"roomId":  r.id,
		"players": len(r.players),
	}).Info("All players ready, starting countdown")

	for id := range r.paths {
		delete(r.paths, id)
	}
	r.positionPlayersOnCircle()

	r.state = StateCountdown
	r.broadcast(NewUpdate(r.snapshotPlayers(), r.state))

	// The countdown deliberately blocks the room's message loop. Messages
	// sent during the pause queue in the mailbox and are observed after the
	// round is already running.
	time.Sleep(r.cfg.Countdown)

	r.state = StateStarted
	r.broadcast(NewUpdate(r.snapshotPlayers(), r.state))

	r.ticker = NewTicker(r.cfg, r.players, r.paths, r.members, r.scores, &r.state)
	if r.cfg.DebugUI {
		r.ticker.draw = drawTrails(r.cfg)
	}
	r.startTickLoop(ctx.Engine(), ctx.Self())
}

// positionPlayersOnCircle scatters players on a circle around the map
// center at random angles, each heading straight for the center. Spacing is
// intentionally not uniform.
func (r *RoomActor) positionPlayersOnCircle() {
	radius := spawnRadiusFactor * math.Min(r.cfg.MapWidth, r.cfg.MapHeight)
	centerX := r.cfg.MapWidth / 2
	centerY := r.cfg.MapHeight / 2

	angle := rand.Float64() * 2 * math.Pi
	for _, player := range r.players {
		player.X = centerX + radius*math.Cos(angle)
		player.Y = centerY + radius*math.Sin(angle)
		player.AngleUnitVectorX = (centerX - player.X) / radius
		player.AngleUnitVectorY = (centerY - player.Y) / radius

		angle += rand.Float64() * 2 * math.Pi
		angle = math.Mod(angle, 2*math.Pi)
	}
}

func (r *RoomActor) handleTick() {
	if r.state != StateStarted || r.ticker == nil {
		return
	}
	if outcome := r.ticker.Tick(); outcome != nil {
		logrus.WithFields(logrus.Fields{
			"roomId":  r.id,
			"outcome": outcome.Type,
		}).Info("Round ended")
		r.stopTickLoop()
		r.ticker = nil
	}
}

// startTickLoop runs the round clock in its own goroutine. The goroutine
// never touches room state directly; each beat is posted into the room's
// mailbox as a RoomTick.
func (r *RoomActor) startTickLoop(engine *bollywood.Engine, self *bollywood.PID) {
	r.stopTick = make(chan struct{})
	stop := r.stopTick

	go func() {
		ticker := time.NewTicker(r.cfg.TickPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				engine.Send(self, RoomTick{}, nil)
			}
		}
	}()
}

func (r *RoomActor) stopTickLoop() {
	if r.stopTick != nil {
		close(r.stopTick)
		r.stopTick = nil
	}
}

func (r *RoomActor) broadcastUpdate() {
	r.broadcast(NewUpdate(r.snapshotPlayers(), r.state))
}

func (r *RoomActor) broadcast(msg interface{}) {
	for _, client := range r.members {
		client.Deliver(msg)
	}
}

func (r *RoomActor) snapshotPlayers() []Player {
	players := make([]Player, 0, len(r.players))
	for _, player := range r.players {
		players = append(players, *player)
	}
	return players
}
