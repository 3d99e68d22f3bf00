// Package station declares the read-only view the engine has of the
// simulator's stations, and the routing tables the engine publishes back.
// Observer is implemented by the simulator; this package never constructs
// one itself, matching the engine's "consumed from the simulator" external
// interface.
package station

import "github.com/katalvlaran/cargoflow/cargo"

// Position is a station's map coordinate, used only to compute manhattan
// distance between two stations.
type Position struct {
	X, Y int32
}

// Link describes one directed transport link a station offers for a given
// cargo, as reported by the observer. The observer is expected to have
// already summed capacity across vehicles serving the same pair; the
// graph builder sums again defensively in case it has not.
type Link struct {
	Neighbour cargo.StationID
	Capacity  uint32
}

// Observer is the read-only view the engine holds of the simulator's
// stations. It is never locked by the engine: callers tolerate a station
// going invalid between one call and the next, since validity is
// rechecked at every stage that matters (build and publish).
type Observer interface {
	// Exists reports whether id currently refers to a live station.
	Exists(id cargo.StationID) bool

	// Position returns id's map coordinate. Only meaningful if Exists(id).
	Position(id cargo.StationID) Position

	// Links returns every outgoing link id offers for cargo c.
	Links(id cargo.StationID, c cargo.ID) []Link

	// Accepts reports whether id accepts deliveries of cargo c.
	Accepts(id cargo.StationID, c cargo.ID) bool

	// Supply returns how many units of cargo c station id currently has
	// waiting for a route.
	Supply(id cargo.StationID, c cargo.ID) uint32

	// PoolSize returns an upper bound on station identifiers currently in
	// use: every live station has an id in [0, PoolSize()). The registry's
	// cursor wraps at this bound, mirroring the station pool it scans.
	PoolSize() cargo.StationID
}

// Distance computes the manhattan distance between two positions, the
// only distance metric the engine ever needs.
func Distance(a, b Position) uint32 {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return uint32(dx + dy)
}
