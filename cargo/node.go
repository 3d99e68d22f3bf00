package cargo

// Node is one station's slot within a Component. Indices are dense and
// assigned by the graph builder in breadth-first discovery order; Node
// itself carries no index field because every call site already holds it
// as the key into Component's node slice.
type Node struct {
	// Station is the external station this node represents. It may go
	// invalid between the time the component was built and the time flows
	// are published; validity is checked at publish time, not here.
	Station StationID

	// Supply is the amount of cargo produced at this station in the last
	// period, as read at build time. It is not changed while the job runs;
	// the demand calculator drains UndeliveredSupply instead.
	Supply uint32

	// UndeliveredSupply starts equal to Supply and is drained as the demand
	// calculator assigns portions of it to destination nodes. It is kept
	// distinct from Supply because Supply also seeds the "product of
	// supplies" term used to compute demand shares, and must not change
	// while demand calculation for other destinations is still reading it.
	UndeliveredSupply uint32

	// Demand is the total amount of cargo this node is due to receive,
	// accumulated across every other node's share assignment.
	Demand uint32

	// Accepts reports whether this station accepts deliveries of the
	// component's cargo, as reported by the station observer at build
	// time. A node with Accepts false is never treated as a demand node
	// by the demand calculator even if some demand was force-set.
	Accepts bool

	// Paths holds every Path currently rooted or passing through this node
	// during a Dijkstra run. Cleared by the flow mapper once it has folded
	// paths into Flows.
	Paths []*Path

	// Flows maps origin station to a via-station breakdown of how much
	// cargo is routed that way, merged into the engine's per-station routing
	// tables once the job joins.
	Flows map[StationID]map[StationID]uint32
}

// AddFlow records additional flow this node forwards for cargo originating
// at origin, routed via the given next hop.
func (n *Node) AddFlow(origin, via StationID, amount uint32) {
	n.AdjustFlow(origin, via, int64(amount))
}

// AdjustFlow applies a signed delta to the flow this node records for
// cargo originating at origin, routed via the given next hop. The flow
// mapper uses a negative delta to cancel an over-counted local-consumption
// contribution at an intermediate stop.
func (n *Node) AdjustFlow(origin, via StationID, delta int64) {
	if delta == 0 {
		return
	}
	if n.Flows == nil {
		n.Flows = make(map[StationID]map[StationID]uint32)
	}
	viaMap, ok := n.Flows[origin]
	if !ok {
		viaMap = make(map[StationID]uint32)
		n.Flows[origin] = viaMap
	}
	next := int64(viaMap[via]) + delta
	if next < 0 {
		next = 0
	}
	viaMap[via] = uint32(next)
}

// FlowFor returns the current flow recorded for (origin, via), 0 if none.
func (n *Node) FlowFor(origin, via StationID) uint32 {
	viaMap, ok := n.Flows[origin]
	if !ok {
		return 0
	}
	return viaMap[via]
}
