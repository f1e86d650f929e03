// File: game/path.go
package game

// Path is the append-only trail a player leaves behind during a round.
// Trails persist for the whole round, including past their owner's
// elimination, so they stay hazards until the next reset.
type Path struct {
	Nodes []Node `json:"nodes"`
}

// Append pushes a node onto the tail of the trail.
func (p *Path) Append(node Node) {
	p.Nodes = append(p.Nodes, node)
}

// CollidesWith reports whether the player's current motion segment crosses
// any stored consecutive segment of this trail. The motion segment runs
// from where the player was one tick ago to where it is now.
func (p *Path) CollidesWith(player *Player, delta float64) bool {
	if len(p.Nodes) < 2 {
		return false
	}

	motionStart := Node{
		player.X - player.AngleUnitVectorX*delta,
		player.Y - player.AngleUnitVectorY*delta,
	}
	motionEnd := Node{player.X, player.Y}

	for i := 0; i < len(p.Nodes)-1; i++ {
		if SegmentsIntersect(p.Nodes[i], p.Nodes[i+1], motionStart, motionEnd) {
			return true
		}
	}

	return false
}

// Clone returns a deep copy, used when trails are snapshotted into a sync
// broadcast so the wire never aliases room-owned storage.
func (p *Path) Clone() *Path {
	nodes := make([]Node, len(p.Nodes))
	copy(nodes, p.Nodes)
	return &Path{Nodes: nodes}
}
