package cargo

// NoEdge marks the end of an edge's next_edge chain; 0 is a valid node
// index, so this is -1 rather than the teacher's sentinel node count.
const NoEdge = -1

// Edge is one directed link between two nodes in a Component's dense n×n
// matrix. A zero-value Edge (Capacity == 0) represents "no link" and is
// never traversed; NextEdge threads only the edges that were actually
// added, so Dijkstra and the MCF solver can walk a node's live neighbors
// without scanning the whole row.
type Edge struct {
	// Distance is the manhattan distance between the two stations,
	// computed once at build time and never changed afterward.
	Distance uint32

	// Capacity is the summed transport capacity of every vehicle link
	// between the two stations, smoothed by the moving average before the
	// graph builder reads it.
	Capacity uint32

	// Demand is the portion of the destination node's total Demand
	// attributed to this particular source, assigned by the demand
	// calculator.
	Demand uint32

	// UnsatisfiedDemand starts equal to Demand and is decremented as the
	// MCF solver routes flow along paths that use this edge. Pass 1 treats
	// an edge as saturated once this reaches zero.
	UnsatisfiedDemand uint32

	// Flow is the cargo amount the MCF solver has routed across this edge
	// so far, across both passes.
	Flow uint32

	// NextEdge is the node index of the next edge in this row's linked
	// list of live edges, or NoEdge at the end of the chain. The
	// diagonal entry edges[from][from] holds the head of the chain.
	NextEdge int
}

// resetDemand clears the per-run demand and flow fields but keeps Distance,
// Capacity, and NextEdge, which are structural and set once at build time.
func (e *Edge) resetDemand() {
	e.Demand = 0
	e.UnsatisfiedDemand = 0
	e.Flow = 0
}
