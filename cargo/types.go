// Package cargo defines the central Node, Edge, Component, and Path types
// shared by the cargo distribution engine, along with the sentinel errors
// and identifier types every other package builds on.
//
// Component owns a dense n×n Edge matrix with Node/Edge indices 0..n-1,
// assigned by the graph builder during breadth-first expansion. Unlike a
// general-purpose mutable graph, a Component is built once, consumed by one
// job's handler pipeline, and discarded — it never needs vertex removal,
// cloning, or concurrent mutation from multiple writers.
package cargo

import "errors"

// Sentinel errors for cargo component operations.
var (
	// ErrSelfLoop indicates an attempt to add an edge from a node to itself.
	ErrSelfLoop = errors.New("cargo: self-loops are not permitted between component nodes")

	// ErrNodeNotFound indicates an operation referenced a node index outside [0, Size()).
	ErrNodeNotFound = errors.New("cargo: node index out of range")

	// ErrEmptyComponent indicates a component was asked to do work with zero nodes.
	ErrEmptyComponent = errors.New("cargo: component has no nodes")
)

// ID tags a kind of cargo in the simulation (e.g. mail, passengers, goods).
// All engine state is partitioned by ID.
type ID int32

// StationID is a stable external identifier for a station. Stations may
// become invalid between engine runs; the engine tolerates this by
// checking validity at publish time rather than holding a live reference.
type StationID int64

// InvalidStationID marks an absent or not-yet-resolved station reference.
const InvalidStationID StationID = -1
