// Package registry tracks, per cargo, which stations have already been
// folded into a component this generation and hands out fresh components
// for the graph builder to populate. It follows the same split-mutex,
// struct-of-slices shape cargo.Component uses for its own bookkeeping,
// scaled down to the handful of fields one cargo's discovery cursor needs.
package registry

import (
	"sync"

	"github.com/katalvlaran/cargoflow/cargo"
	"github.com/katalvlaran/cargoflow/config"
	"github.com/katalvlaran/cargoflow/station"
)

// Registry tracks component-discovery state for a single cargo: which
// station the cursor last examined, the parity of the current generation,
// and which component each station was last placed in.
//
// A station's last-seen component id and the registry's current generation
// id are compared by parity, not equality: whenever the cursor wraps around
// the station pool, the generation's parity flips, so any station whose
// last-seen id shares the current parity was placed in a component during
// the current sweep and is skipped, while any station with the opposite
// parity (a leftover from the previous sweep, or no id at all) is eligible
// again. This makes "has this station
// been visited in the current run" an O(1) check without ever having to
// clear a per-generation visited set.
type Registry struct {
	mu sync.Mutex

	cargo   cargo.ID
	cursor  cargo.StationID
	current int // parity-carrying id of the generation in progress

	lastComponent map[cargo.StationID]int
}

// New creates a Registry for cargo c, its cursor starting at station 0 and
// its generation counter initialized so the very first sweep's parity
// differs from every station's unset last-seen id.
func New(c cargo.ID) *Registry {
	return &Registry{
		cargo:         c,
		cursor:        0,
		current:       0,
		lastComponent: make(map[cargo.StationID]int),
	}
}

// Cargo returns the cargo type this registry tracks.
func (r *Registry) Cargo() cargo.ID { return r.cargo }

// Cursor returns the station id the discovery sweep last examined, for
// callers that persist registry state across a process restart.
func (r *Registry) Cursor() cargo.StationID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cursor
}

// Generation returns the parity-carrying id of the sweep currently in
// progress.
func (r *Registry) Generation() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Restore sets the cursor and generation directly, for a caller
// reconstructing a Registry from persisted state rather than starting a
// fresh sweep from station 0. It does not restore lastComponent: any
// station's last-seen id is unknown after a restart, so every station is
// eligible again on the first sweep following a restore, which is safe
// (at worst it rebuilds a component the previous process had already
// discovered this generation).
func (r *Registry) Restore(cursor cargo.StationID, generation int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cursor = cursor
	r.current = generation
}

// seen reports whether station st has already been visited this
// generation: it has a recorded last component, and that component's
// parity matches the generation currently in progress.
func (r *Registry) seen(st cargo.StationID) bool {
	last, ok := r.lastComponent[st]
	if !ok {
		return false
	}
	return (last+r.current)%2 == 0
}

// markSeen records that station st now belongs to component id, for the
// purpose of future seen() checks; it does not affect cursor position.
func (r *Registry) markSeen(st cargo.StationID, id int) {
	r.lastComponent[st] = id
}

// NextComponent advances the cursor through obs's station pool looking for
// a seed station unvisited this generation that carries cargo c and has at
// least one outgoing link for it, builds a component starting there via
// build, and returns it. It returns nil, nil if a full loop of the pool
// turns up no eligible seed — meaning no job should be spawned this tick.
//
// build is expected to be graphbuilder.Build bound to this registry's
// cargo and settings; it is passed in rather than imported directly so
// this package never needs to import graphbuilder, matching the engine's
// layering (registry discovers seeds, graphbuilder expands them).
func (r *Registry) NextComponent(obs station.Observer, settings config.Snapshot, build func(obs station.Observer, c cargo.ID, seed cargo.StationID, settings config.Snapshot) (*cargo.Component, error)) (*cargo.Component, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	poolSize := obs.PoolSize()
	if poolSize <= 0 {
		return nil, nil
	}

	lastStation := r.cursor
	for {
		r.cursor++
		if r.cursor >= poolSize {
			r.cursor = 0
			if r.current%2 == 0 {
				r.current = 1
			} else {
				r.current = 0
			}
		}

		st := r.cursor
		if obs.Exists(st) && !r.seen(st) {
			links := obs.Links(st, r.cargo)
			if len(links) > 0 {
				comp, err := build(obs, r.cargo, st, settings)
				if err != nil {
					return nil, err
				}
				id := r.current + 2
				comp.SetID(id)
				r.assignComponent(comp, id)
				return comp, nil
			}
		}

		if r.cursor == lastStation {
			return nil, nil
		}
	}
}

// assignComponent marks every station the graph builder folded into comp
// as seen under id, so NextComponent's next sweep skips them.
func (r *Registry) assignComponent(comp *cargo.Component, id int) {
	for i := 0; i < comp.Size(); i++ {
		r.markSeen(comp.GetNode(i).Station, id)
	}
}
