package station

import (
	"sort"
	"sync"

	"github.com/katalvlaran/cargoflow/cargo"
)

// RouteEntry is one row of a routing table: for cargo originating at
// Source, ship Planned units via Via, Shipped of which have actually moved
// so far.
type RouteEntry struct {
	Source  cargo.StationID
	Via     cargo.StationID
	Planned uint32
	Shipped uint32
}

// Table is the routing table belonging to one station for one cargo,
// mutated only by the join step on the simulation thread. Readers iterate
// in "best via first" order, i.e. the via with the largest planned share
// first.
type Table struct {
	mu      sync.RWMutex
	entries map[cargo.StationID]map[cargo.StationID]*RouteEntry
}

// NewTable returns an empty routing table.
func NewTable() *Table {
	return &Table{entries: make(map[cargo.StationID]map[cargo.StationID]*RouteEntry)}
}

// Merge folds freshly published flows for one cargo's component into the
// table. For each source present in flows, all of that source's prior
// entries are replaced by the vias listed in flows (a via absent from flows
// is dropped, and Shipped starts again at 0); every other source's entries
// are left untouched — a join only ever updates the sources it actually
// computed routes for.
func (t *Table) Merge(flows map[cargo.StationID]map[cargo.StationID]uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for source, viaMap := range flows {
		dst := make(map[cargo.StationID]*RouteEntry, len(viaMap))
		for via, amount := range viaMap {
			dst[via] = &RouteEntry{Source: source, Via: via, Planned: amount}
		}
		t.entries[source] = dst
	}
}

// RoutesFrom returns every route entry for cargo originating at source,
// ordered best-via-first (largest Planned share first, ties broken by Via
// for determinism).
func (t *Table) RoutesFrom(source cargo.StationID) []RouteEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	viaMap, ok := t.entries[source]
	if !ok {
		return nil
	}
	out := make([]RouteEntry, 0, len(viaMap))
	for _, e := range viaMap {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Planned != out[j].Planned {
			return out[i].Planned > out[j].Planned
		}
		return out[i].Via < out[j].Via
	})
	return out
}

// RecordShipped adds shipped units to the entry for (source, via), used by
// the simulator as cargo actually moves between joins. A miss is a no-op:
// the route may have been replaced by a later join.
func (t *Table) RecordShipped(source, via cargo.StationID, amount uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	viaMap, ok := t.entries[source]
	if !ok {
		return
	}
	e, ok := viaMap[via]
	if !ok {
		return
	}
	e.Shipped += amount
}

// Registry is the set of per-station, per-cargo routing tables the engine
// publishes to and the simulator reads from.
type Registry struct {
	mu     sync.RWMutex
	tables map[cargo.ID]map[cargo.StationID]*Table
}

// NewRegistry returns an empty routing table registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[cargo.ID]map[cargo.StationID]*Table)}
}

// Table returns the routing table for (station, cargo), creating it if
// this is the first time the pair has been published to.
func (r *Registry) Table(st cargo.StationID, c cargo.ID) *Table {
	r.mu.Lock()
	defer r.mu.Unlock()
	byStation, ok := r.tables[c]
	if !ok {
		byStation = make(map[cargo.StationID]*Table)
		r.tables[c] = byStation
	}
	t, ok := byStation[st]
	if !ok {
		t = NewTable()
		byStation[st] = t
	}
	return t
}
