// Package scenario builds small synthetic cargo.Component graphs — paths,
// cycles, complete graphs, stars, and grids — for use in tests, the same
// role the teacher's builder package plays for
// generic graphs. Unlike builder, a scenario constructor's output is a
// cargo.Component ready to feed straight into the demand calculator and MCF
// solver: every node gets a station id, a supply/demand seed, and a
// distance computed the same manhattan way the real graph builder does.
package scenario

import (
	"github.com/katalvlaran/cargoflow/cargo"
	"github.com/katalvlaran/cargoflow/config"
)

// nodeConfig holds the per-constructor knobs every shape shares: how much
// capacity each edge carries, how much supply/demand each node starts
// with, and the configuration snapshot the resulting component is stamped
// with.
type nodeConfig struct {
	capacity uint32
	supply   uint32
	demand   uint32
	settings config.Snapshot
}

// Option configures a scenario constructor, following the same
// functional-options shape the rest of this engine's packages use.
type Option func(*nodeConfig)

func defaults() nodeConfig {
	return nodeConfig{
		capacity: 100,
		supply:   0,
		demand:   0,
		settings: config.Snapshot{Accuracy: 1, ShortPathSaturation: 100},
	}
}

// WithCapacity sets the capacity every generated edge carries.
func WithCapacity(c uint32) Option {
	return func(cfg *nodeConfig) { cfg.capacity = c }
}

// WithSupply sets the supply every generated node starts with.
func WithSupply(s uint32) Option {
	return func(cfg *nodeConfig) { cfg.supply = s }
}

// WithDemand sets the demand every generated node starts with, and marks
// every node as accepting cargo (a node scenario builds with zero demand
// is left non-accepting, matching a real station that produces but never
// receives this cargo).
func WithDemand(d uint32) Option {
	return func(cfg *nodeConfig) { cfg.demand = d }
}

// WithSettings overrides the configuration snapshot stamped on the
// resulting component.
func WithSettings(s config.Snapshot) Option {
	return func(cfg *nodeConfig) { cfg.settings = s }
}

func apply(opts []Option) nodeConfig {
	cfg := defaults()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// addNode appends a node to comp using cfg's supply/demand seed, setting
// Accepts whenever the node was configured with nonzero demand.
func addNode(comp *cargo.Component, station cargo.StationID, cfg nodeConfig) int {
	idx := comp.AddNode(station, cfg.supply, cfg.demand)
	if cfg.demand > 0 {
		comp.GetNode(idx).Accepts = true
	}
	return idx
}

// manhattan computes |a-b|, the scenario package's stand-in for
// station.Distance: a scenario's stations are laid out along a single
// integer axis (or grid, for Grid), so this is the same manhattan metric
// the real graph builder uses, minus the map-coordinate indirection.
func manhattan(a, b cargo.StationID) uint32 {
	if a < b {
		return uint32(b - a)
	}
	return uint32(a - b)
}
