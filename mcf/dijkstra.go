// Package mcf implements the two-pass multi-commodity-flow solver that
// routes edge.demand onto concrete paths through a cargo.Component. It
// follows the teacher module's dijkstra package for the runner/options
// shape (a small struct holding the immutable inputs plus the mutable
// queue/path state for one run) and its flow package for the capacity
// bookkeeping idiom, generalized here to the annotation-based variant
// this solver needs: Dijkstra is run once per source node, per pass, and
// the "distance" it optimizes for is swapped out via Kind.
package mcf

import (
	"github.com/katalvlaran/cargoflow/cargo"
)

// runner holds the state for one Dijkstra expansion from a single source.
type runner struct {
	comp           *cargo.Component
	kind           Kind
	createNewPaths bool
	shortPathSat   uint32
	source         int
	sourceStation  cargo.StationID
	paths          []*cargo.Path
	queue          *pathQueue
}

// dijkstra runs one modified-Dijkstra expansion from source over comp,
// scored by kind. When createNewPaths is false, only edges that already
// carry flow for this source (i.e. a path was created for them in a
// previous round) are considered — this is pass 2's "only use paths
// already seen before" behavior. When true, short_path_saturation
// artificially shrinks every edge's usable capacity, matching pass 1's
// saturate-the-shortest-paths-first behavior.
func dijkstra(comp *cargo.Component, kind Kind, source int, createNewPaths bool, shortPathSat uint32) []*cargo.Path {
	size := comp.Size()
	r := &runner{
		comp:           comp,
		kind:           kind,
		createNewPaths: createNewPaths,
		shortPathSat:   shortPathSat,
		source:         source,
		sourceStation:  comp.GetNode(source).Station,
		paths:          make([]*cargo.Path, size),
	}
	for n := 0; n < size; n++ {
		if n == source {
			r.paths[n] = cargo.NewSourcePath(n)
		} else {
			r.paths[n] = cargo.NewUnreachedPath(n)
		}
	}
	r.queue = newPathQueue(func(a, b *cargo.Path) bool { return less(kind, a, b) })
	r.queue.pushAll(r.paths)
	r.run()
	return r.paths
}

func (r *runner) run() {
	for r.queue.Len() > 0 {
		from := r.queue.popMin()
		fromIdx := from.Node

		for to := r.comp.FirstEdge(fromIdx); to != cargo.NoEdge; to = r.comp.GetEdge(fromIdx, to).NextEdge {
			edge := r.comp.GetEdge(fromIdx, to)

			if !r.createNewPaths {
				toStation := r.comp.GetNode(to).Station
				if r.comp.GetNode(fromIdx).FlowFor(r.sourceStation, toStation) == 0 {
					continue
				}
			}

			capacity := int64(edge.Capacity)
			if r.createNewPaths {
				capacity = capacity * int64(r.shortPathSat) / 100
				if capacity == 0 {
					capacity = 1
				}
			}
			// Punish in-between stops slightly so ties favor fewer hops.
			distance := edge.Distance + 1
			freeCapacity := capacity - int64(edge.Flow)

			dest := r.paths[to]
			if isBetter(r.kind, dest, from, capacity, freeCapacity, distance) {
				dest.Fork(from, capacity, freeCapacity, distance)
				r.queue.fix(to)
			}
		}
	}
}

// cleanupPaths detaches every path from its parent so the tree rooted at
// sourceIdx can be garbage collected once the caller is done reading
// flows out of it. The teacher's flow.Dinic clears residual state between
// calls the same way; here it also guarantees a path fetched for node
// "dest" in one source's run is never mistaken for a path from a later
// run, since paths are never reused across dijkstra calls.
func cleanupPaths(paths []*cargo.Path) {
	for _, p := range paths {
		if p != nil {
			p.Unfork()
		}
	}
}
