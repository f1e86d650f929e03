// File: game/geometry.go
package game

// Node is a single sampled position on the map. As a two-element array it
// serializes to the [x, y] JSON shape clients consume in path syncs.
type Node [2]float64

// X returns the horizontal coordinate of the node.
func (n Node) X() float64 { return n[0] }

// Y returns the vertical coordinate of the node.
func (n Node) Y() float64 { return n[1] }

// SegmentsIntersect reports whether the open segments AB and CD properly
// intersect, using the standard parametric form.
//
// Endpoint touching does not count: the inequalities are strict, which is
// what keeps a player's own most recent trail node from registering as a
// collision with the player's current motion segment. Parallel and colinear
// segments never intersect under this predicate.
func SegmentsIntersect(a, b, c, d Node) bool {
	x1, y1 := a.X(), a.Y()
	x2, y2 := b.X(), b.Y()
	x3, y3 := c.X(), c.Y()
	x4, y4 := d.X(), d.Y()

	denominator := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denominator == 0 {
		return false
	}

	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denominator
	u := -((x1-x2)*(y1-y3) - (y1-y2)*(x1-x3)) / denominator

	return t > 0 && t < 1 && u > 0 && u < 1
}
