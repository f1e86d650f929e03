// File: utils/config.go
package utils

import "time"

const (
	// TickRate is the fixed simulation rate in ticks per second.
	TickRate = 20

	// DeltaPosPerSecond is how far a player travels per second, in map units.
	DeltaPosPerSecond = 10.0
)

// Config holds all configurable server and game parameters.
type Config struct {
	// Network
	Address string `json:"address"` // Bind address for the HTTP/WebSocket listener
	Port    int    `json:"port"`    // Bind port

	// Timing
	TickPeriod      time.Duration `json:"tickPeriod"`      // Time between simulation ticks
	Countdown       time.Duration `json:"countdown"`       // Delay between all-ready and round start
	TickCountToSync uint32        `json:"tickCountToSync"` // Ticks between full path sync broadcasts

	// Map & Movement
	MapWidth     float64 `json:"mapWidth"`     // Playable area width in map units
	MapHeight    float64 `json:"mapHeight"`    // Playable area height in map units
	DeltaPerTick float64 `json:"deltaPerTick"` // Distance a player travels per tick

	// Rooms
	MinPlayersToStart int `json:"minPlayersToStart"` // Readiness threshold for starting a round

	// Debugging
	DebugUI bool `json:"debugUI"` // Draw live trails to the terminal on sync ticks
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		// Network
		Address: "0.0.0.0",
		Port:    8080,

		// Timing
		TickPeriod:      time.Second / TickRate, // 50ms
		Countdown:       3 * time.Second,
		TickCountToSync: 20, // one sync per second

		// Map & Movement
		MapWidth:     150.0,
		MapHeight:    100.0,
		DeltaPerTick: DeltaPosPerSecond / TickRate, // 0.5

		// Rooms
		MinPlayersToStart: 2,

		// Debugging
		DebugUI: false,
	}
}
