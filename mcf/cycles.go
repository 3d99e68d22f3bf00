package mcf

import (
	"math"

	"github.com/katalvlaran/cargoflow/cargo"
)

// invalidPath is a sentinel distinct from nil, marking a node whose
// cycle search has already completed this sweep with no cycle found.
var invalidPath = &cargo.Path{Node: -1}

// eliminateCycles searches for flow cycles reachable from originIdx and
// removes them, returning whether any were found. path is a per-call memo
// keyed by node index: nil means unvisited, invalidPath means resolved
// with no cycle, and any other value is the path currently on the
// recursion stack for this branch.
func eliminateCycles(comp *cargo.Component, path []*cargo.Path, originIdx int, originStation cargo.StationID, nextIdx int) bool {
	atNext := path[nextIdx]
	if atNext == invalidPath {
		return false
	}
	if atNext == nil {
		return summarizeAndRecurse(comp, path, originIdx, originStation, nextIdx)
	}

	flow := findCycleFlow(path, atNext)
	if flow == 0 {
		return false
	}
	eliminateCycle(comp, path, atNext, flow)
	return true
}

// summarizeAndRecurse folds every path rooted at originStation that
// passes through node nextIdx into one entry per distinct next hop
// (parallel paths taking the same via are summed into one so the cycle
// search doesn't treat them as separate branches), then recurses into
// each surviving next hop.
func summarizeAndRecurse(comp *cargo.Component, path []*cargo.Path, originIdx int, originStation cargo.StationID, nextIdx int) bool {
	node := comp.GetNode(nextIdx)
	nextHops := make(map[int]*cargo.Path)
	for _, child := range node.Paths {
		if child.Origin != originIdx {
			continue
		}
		if existing, ok := nextHops[child.Node]; ok {
			f := child.Flow
			existing.IncFlow(f)
			child.ReduceFlow(f)
		} else {
			nextHops[child.Node] = child
		}
	}

	found := false
	for _, child := range nextHops {
		if child.Flow > 0 {
			path[nextIdx] = child
			if eliminateCycles(comp, path, originIdx, originStation, child.Node) {
				found = true
			}
		}
	}

	if found {
		path[nextIdx] = nil
	} else {
		path[nextIdx] = invalidPath
	}
	return found
}

func findCycleFlow(path []*cargo.Path, cycleBegin *cargo.Path) uint32 {
	flow := uint32(math.MaxUint32)
	cycleEnd := cycleBegin
	for {
		if cycleBegin.Flow < flow {
			flow = cycleBegin.Flow
		}
		cycleBegin = path[cycleBegin.Node]
		if cycleBegin == cycleEnd {
			break
		}
	}
	return flow
}

func eliminateCycle(comp *cargo.Component, path []*cargo.Path, cycleBegin *cargo.Path, flow uint32) {
	cycleEnd := cycleBegin
	for {
		prev := cycleBegin.Node
		cycleBegin.ReduceFlow(flow)
		cycleBegin = path[cycleBegin.Node]
		edge := comp.GetEdge(prev, cycleBegin.Node)
		edge.Flow -= flow
		if cycleBegin == cycleEnd {
			break
		}
	}
}

// eliminateAllCycles checks every node of comp as a possible cycle origin
// and removes any flow cycles found, returning whether it found any.
func eliminateAllCycles(comp *cargo.Component) bool {
	size := comp.Size()
	found := false
	path := make([]*cargo.Path, size)
	for node := 0; node < size; node++ {
		for i := range path {
			path[i] = nil
		}
		originStation := comp.GetNode(node).Station
		if eliminateCycles(comp, path, node, originStation, node) {
			found = true
		}
	}
	return found
}
