// Package flowmap folds the path trees the mcf solver builds during one
// pass into each node's Flows map, then releases the per-node path sets so
// the next pass starts clean. It is a thin, single-purpose package the way
// the teacher's flow package separates residual-capacity bookkeeping
// (flow/utils.go) from the Dinic algorithm itself.
package flowmap

import "github.com/katalvlaran/cargoflow/cargo"

// Fold walks every node's accumulated Path set and credits the flow each
// path carries to both the node it passes through and the node one hop
// further along, canceling the portion that would otherwise be
// double-counted as "local consumption" at an intermediate stop. Once
// folded, every node's Path set is cleared so the solver can build a fresh
// tree on its next pass.
func Fold(comp *cargo.Component) {
	size := comp.Size()

	for nodeIdx := 0; nodeIdx < size; nodeIdx++ {
		prevNode := comp.GetNode(nodeIdx)
		prev := prevNode.Station

		for _, path := range prevNode.Paths {
			flow := path.Flow
			if flow == 0 {
				continue
			}
			viaNode := comp.GetNode(path.Node)
			via := viaNode.Station
			origin := comp.GetNode(path.Origin).Station

			viaNode.AddFlow(origin, via, flow)
			prevNode.AddFlow(origin, via, flow)
			if prev != origin {
				prevNode.AdjustFlow(origin, prev, -int64(flow))
			}
		}
	}

	for nodeIdx := 0; nodeIdx < size; nodeIdx++ {
		comp.GetNode(nodeIdx).Paths = nil
	}
}
