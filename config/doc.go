// Package config holds the cargo distribution engine's tunable settings —
// accuracy, the two demand-share modifiers, short-path saturation, the
// recalculation interval, moving-average length, and per-cargo
// distribution shape — behind a functional-options constructor, and loads
// them from a YAML or JSON file via viper.
//
// Config is mutable and owned by the engine for the life of a simulator
// session; a Component instead carries a Snapshot, a frozen copy taken at
// build time so a long-running job sees stable settings even if Config is
// reloaded mid-session.
package config
