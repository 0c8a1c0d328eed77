package common

import "github.com/jakecoffman/cp"

const (
	// Gravity is the downward acceleration in pixels per second squared.
	Gravity = 1000.0

	SpawnX = 100.0
	SpawnY = 100.0
)

// Spawn is where a freshly loaded character starts.
func Spawn() cp.Vector {
	return cp.Vector{X: SpawnX, Y: SpawnY}
}

// TickSeconds converts a ticks-per-second rate to a fixed step in seconds.
func TickSeconds(tps int) float64 {
	if tps <= 0 {
		return 0
	}
	return 1.0 / float64(tps)
}
