// Package graphbuilder grows a cargo.Component by breadth-first
// exploration over a station.Observer, the way bfs traverses a core.Graph
// in the teacher module: dense indices are assigned in discovery order,
// and the same enqueue/visit hook shape is offered for callers that want
// to observe the expansion.
package graphbuilder

import (
	"errors"

	"github.com/katalvlaran/cargoflow/cargo"
	"github.com/katalvlaran/cargoflow/config"
	"github.com/katalvlaran/cargoflow/station"
)

// Sentinel errors for graph building.
var (
	// ErrSeedInvalid indicates the seed station does not exist.
	ErrSeedInvalid = errors.New("graphbuilder: seed station does not exist")

	// ErrSeedIsolated indicates the seed station has no usable links.
	ErrSeedIsolated = errors.New("graphbuilder: seed station has no links")
)

// Option configures a Build call.
type Option func(*options)

type options struct {
	onEnqueue func(id cargo.StationID)
	onVisit   func(id cargo.StationID, idx int)
}

func defaultOptions() options {
	return options{
		onEnqueue: func(cargo.StationID) {},
		onVisit:   func(cargo.StationID, int) {},
	}
}

// WithOnEnqueue registers a callback invoked whenever a previously unseen
// station is discovered and queued for expansion.
func WithOnEnqueue(fn func(id cargo.StationID)) Option {
	return func(o *options) {
		if fn != nil {
			o.onEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback invoked once a station has been
// assigned its dense node index.
func WithOnVisit(fn func(id cargo.StationID, idx int)) Option {
	return func(o *options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// Build grows a new Component for cargo c by breadth-first expansion
// starting at seed. A station that goes invalid between the observer
// producing a link and Build inspecting it is skipped without creating a
// node for it; parallel links between the same pair sum their capacities;
// self-loops are rejected silently (the observer should never report
// one, but Build does not trust it).
func Build(obs station.Observer, c cargo.ID, seed cargo.StationID, settings config.Snapshot, opts ...Option) (*cargo.Component, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !obs.Exists(seed) {
		return nil, ErrSeedInvalid
	}
	seedLinks := obs.Links(seed, c)
	if len(seedLinks) == 0 {
		return nil, ErrSeedIsolated
	}

	index := map[cargo.StationID]int{}
	order := []cargo.StationID{seed}
	index[seed] = 0
	o.onEnqueue(seed)

	// Discovery pass: BFS over obs.Links to learn every reachable station
	// and assign it a dense index, without yet touching the component (we
	// do not know its final size until discovery completes).
	queue := []cargo.StationID{seed}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		o.onVisit(cur, index[cur])

		for _, link := range obs.Links(cur, c) {
			if !obs.Exists(link.Neighbour) {
				continue
			}
			if link.Neighbour == cur {
				continue
			}
			if _, seen := index[link.Neighbour]; seen {
				continue
			}
			index[link.Neighbour] = len(order)
			order = append(order, link.Neighbour)
			o.onEnqueue(link.Neighbour)
			queue = append(queue, link.Neighbour)
		}
	}

	comp := cargo.NewComponent(c, len(order), settings)
	for _, st := range order {
		idx := comp.AddNode(st, obs.Supply(st, c), 0)
		comp.GetNode(idx).Accepts = obs.Accepts(st, c)
	}

	for _, from := range order {
		fromIdx := index[from]
		for _, link := range obs.Links(from, c) {
			if !obs.Exists(link.Neighbour) {
				continue
			}
			toIdx, ok := index[link.Neighbour]
			if !ok || toIdx == fromIdx {
				continue
			}
			if err := comp.AddEdge(fromIdx, toIdx, link.Capacity); err != nil {
				continue
			}
		}
	}

	comp.CalculateDistances(func(a, b cargo.StationID) uint32 {
		return station.Distance(obs.Position(a), obs.Position(b))
	})

	return comp, nil
}
