// Package cargoflow is a cargo distribution engine for a transport-network
// simulation: given a simulator-owned view of stations and their
// transport links (station.Observer), it periodically discovers connected
// station groups per cargo type, computes how much of each station's
// supply should go where, routes that demand across the group's capacity
// graph, and publishes the resulting routes back as per-station routing
// tables the simulator consumes to actually move cargo.
//
// The pipeline, in package terms:
//
//	registry     — discovers an unvisited, cargo-linked station group once per tick
//	graphbuilder — expands a seed station into a dense Component via breadth-first search
//	demand       — distributes each node's supply across the component as demand
//	mcf          — routes that demand across the component's capacity graph in two passes
//	flowmap      — folds per-path flow into per-node, per-origin routing credits
//	job          — runs the demand, mcf and flowmap stages as one pipeline on a worker goroutine
//	schedule     — drives spawn/join ticks and per-cargo recalculation fairness
//	station      — the simulator-facing Observer contract and published routing tables
//	persist      — saves/restores registry cursors and in-flight components
//	metrics      — Prometheus counters/gauges and OpenTelemetry spans for the above
//
// Engine wires all of this together behind a small public surface: New,
// Run, and Routes.
package cargoflow
