package mcf

import "github.com/katalvlaran/cargoflow/cargo"

// pushFlow pushes min(edge.Demand/accuracy, edge.UnsatisfiedDemand) units
// (at least 1) of flow along path, updating edge.UnsatisfiedDemand by the
// amount actually pushed (which AddFlow may clamp below the request).
func pushFlow(comp *cargo.Component, edge *cargo.Edge, path *cargo.Path, accuracy uint32, positiveCap bool, shortPathSat uint32) uint32 {
	flow := edge.Demand / accuracy
	if flow < 1 {
		flow = 1
	}
	if flow > edge.UnsatisfiedDemand {
		flow = edge.UnsatisfiedDemand
	}
	flow = path.AddFlow(flow, comp, positiveCap, shortPathSat)
	edge.UnsatisfiedDemand -= flow
	return flow
}

// Pass1 runs the solver's first pass: from every source node, repeatedly
// saturate the shortest paths (KindDistance, create_new_paths=true) until
// no more pushes are possible, then eliminate any flow cycles created in
// the process. If cycles were eliminated, the whole pass repeats, since
// freeing up capacity on a cycle may open new shortest paths.
func Pass1(comp *cargo.Component) {
	settings := comp.Settings()
	size := comp.Size()
	accuracy := settings.Accuracy
	if accuracy < 1 {
		accuracy = 1
	}

	moreLoops := true
	for moreLoops {
		moreLoops = false

		for source := 0; source < size; source++ {
			paths := dijkstra(comp, KindDistance, source, true, settings.ShortPathSaturation)

			for dest := 0; dest < size; dest++ {
				edge := comp.GetEdge(source, dest)
				if edge.UnsatisfiedDemand == 0 {
					continue
				}
				path := paths[dest]

				if path.FreeCapacity > 0 && pushFlow(comp, edge, path, accuracy, true, settings.ShortPathSaturation) > 0 {
					if edge.UnsatisfiedDemand > 0 {
						moreLoops = true
					}
				} else if edge.UnsatisfiedDemand == edge.Demand && path.FreeCapacity > minInt64 {
					// No demand has been assigned yet on this edge: make an
					// exception and allow any valid path once, even over
					// capacity.
					pushFlow(comp, edge, path, accuracy, false, settings.ShortPathSaturation)
				}
			}
			cleanupPaths(paths)
		}

		if !moreLoops {
			moreLoops = eliminateAllCycles(comp)
		}
	}
}

// minInt64 mirrors INT_MIN's role in the source: a path whose free
// capacity is still at its just-initialized sentinel is considered
// disconnected, not merely out of capacity.
const minInt64 = -1 << 63

// Pass2 runs the solver's second pass: from every source node, repeatedly
// assign whatever demand remains using KindCapacity scoring restricted to
// paths already established by pass 1 (create_new_paths=false), until no
// source has unsatisfied demand left.
func Pass2(comp *cargo.Component) {
	settings := comp.Settings()
	size := comp.Size()
	accuracy := settings.Accuracy
	if accuracy < 1 {
		accuracy = 1
	}

	demandLeft := true
	for demandLeft {
		demandLeft = false

		for source := 0; source < size; source++ {
			paths := dijkstra(comp, KindCapacity, source, false, settings.ShortPathSaturation)

			for dest := 0; dest < size; dest++ {
				edge := comp.GetEdge(source, dest)
				path := paths[dest]
				if edge.UnsatisfiedDemand > 0 && path.FreeCapacity > minInt64 {
					pushFlow(comp, edge, path, accuracy, false, settings.ShortPathSaturation)
					if edge.UnsatisfiedDemand > 0 {
						demandLeft = true
					}
				}
			}
			cleanupPaths(paths)
		}
	}
}
