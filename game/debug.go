// File: game/debug.go
package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lguibr/asciiring/helpers"

	"github.com/lguibr/curver/render"
	"github.com/lguibr/curver/utils"
)

const (
	debugCols = 120
	debugRows = 40
)

// drawTrails returns the debug terminal renderer a room attaches to its
// ticker when the server runs with the debug UI enabled. It repaints the
// whole playfield on every trail sync.
func drawTrails(cfg utils.Config) func(paths map[uuid.UUID]*Path) {
	return func(paths map[uuid.UUID]*Path) {
		trails := make([][][2]float64, 0, len(paths))
		for _, path := range paths {
			nodes := make([][2]float64, len(path.Nodes))
			for i, node := range path.Nodes {
				nodes[i] = [2]float64(node)
			}
			trails = append(trails, nodes)
		}

		pixels := render.RasterizeTrails(trails, cfg.MapWidth, cfg.MapHeight, debugCols, debugRows)
		helpers.ClearScreen()
		fmt.Print(render.RenderToASCII(pixels))
	}
}
