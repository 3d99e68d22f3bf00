package cargo

import (
	"sync"

	"github.com/katalvlaran/cargoflow/config"
)

// Component is one connected subgraph of stations for a single cargo type,
// built once by the graph builder from a breadth-first expansion and
// handed to exactly one job's handler pipeline. Nodes and edges are dense,
// indexed 0..Size()-1; unlike a general-purpose mutable graph, a Component
// never needs vertex removal or concurrent writers, so its locking only
// needs to protect the handful of fields the job runner and the
// persistence layer both touch (ID, JoinDate) while handlers run.
type Component struct {
	mu sync.RWMutex

	// id identifies this component among its cargo's in-flight jobs.
	id int

	// cargo is the cargo type this component was built for.
	cargo ID

	// joinDate is the simulated day this component's job is due to
	// publish its results and be discarded.
	joinDate int64

	// settings is the configuration snapshot taken when the component was
	// built, held fixed for the component's whole lifetime.
	settings config.Snapshot

	nodes []Node
	edges [][]Edge
}

// NewComponent allocates an empty Component of the given size for cargo c,
// using settings as its fixed configuration snapshot.
func NewComponent(c ID, size int, settings config.Snapshot) *Component {
	edges := make([][]Edge, size)
	for i := range edges {
		row := make([]Edge, size)
		for j := range row {
			row[j].NextEdge = NoEdge
		}
		edges[i] = row
	}
	return &Component{
		cargo:    c,
		settings: settings,
		nodes:    make([]Node, 0, size),
		edges:    edges,
	}
}

// Cargo returns the cargo type this component belongs to.
func (c *Component) Cargo() ID { return c.cargo }

// Settings returns the configuration snapshot fixed at build time.
func (c *Component) Settings() config.Snapshot { return c.settings }

// ID returns the component's identity among its cargo's in-flight jobs.
func (c *Component) ID() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.id
}

// SetID assigns the component's identity; called once by the registry
// before the job is spawned.
func (c *Component) SetID(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.id = id
}

// JoinDate returns the simulated day this component's job is due to join.
func (c *Component) JoinDate() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.joinDate
}

// SetJoinDate assigns the join date; called once by the tick driver when
// the job is spawned.
func (c *Component) SetJoinDate(d int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.joinDate = d
}

// Size returns the number of nodes in the component.
func (c *Component) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.nodes)
}

// AddNode appends a new node for station st with the given supply and
// demand, returning its assigned index. The underlying edge matrix must
// already have been sized to accommodate it (NewComponent allocates
// capacity up front from the builder's discovered component size).
func (c *Component) AddNode(st StationID, supply, demand uint32) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := len(c.nodes)
	c.nodes = append(c.nodes, Node{
		Station:           st,
		Supply:            supply,
		UndeliveredSupply: supply,
		Demand:            demand,
	})
	return idx
}

// GetNode returns a pointer to the node at idx. Callers outside this
// package only ever see indices produced by AddNode/GetEdge, so no bounds
// error is returned; an out-of-range idx is a programmer error in the
// caller, exactly as core.Graph's dense accessors assume.
func (c *Component) GetNode(idx int) *Node {
	return &c.nodes[idx]
}

// GetEdge returns a pointer to the directed edge from -> to.
func (c *Component) GetEdge(from, to int) *Edge {
	return &c.edges[from][to]
}

// FirstEdge returns the node index of the first live edge out of from, or
// NoEdge if from has no outgoing edges. Callers walk the chain with
// GetEdge(from, cur).NextEdge until they see NoEdge.
func (c *Component) FirstEdge(from int) int {
	return c.edges[from][from].NextEdge
}

// AddEdge adds capacity to the directed edge from -> to, rejecting
// self-loops. Parallel calls for the same (from, to) pair sum their
// capacities, matching vehicle links being aggregated per station pair
// before the graph builder ever sees them. The first call for a given
// (from, to) pair appends the new edge to the tail of the row's live-edge
// chain, keeping insertion order so FirstEdge/NextEdge walks visit edges
// in the order they were discovered.
func (c *Component) AddEdge(from, to int, capacity uint32) error {
	if from == to {
		return ErrSelfLoop
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	e := &c.edges[from][to]
	wasNew := e.Capacity == 0 && e.NextEdge == NoEdge && to != from
	e.Capacity += capacity
	if wasNew {
		last := from
		for next := c.edges[from][from].NextEdge; next != NoEdge; next = c.edges[from][next].NextEdge {
			last = next
		}
		c.edges[from][last].NextEdge = to
	}
	return nil
}

// CalculateDistances fills in Distance for every edge that exists, using
// the supplied manhattan-distance function over node stations. Called once
// by the graph builder after all edges have been added.
func (c *Component) CalculateDistances(distance func(a, b StationID) uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for from := range c.nodes {
		for to := range c.nodes {
			if from == to {
				continue
			}
			e := &c.edges[from][to]
			if e.Capacity == 0 {
				continue
			}
			e.Distance = distance(c.nodes[from].Station, c.nodes[to].Station)
		}
	}
}

// MaxDistance returns the largest Distance among the component's live
// edges, used by the demand calculator's distance-scaled divisor formula.
func (c *Component) MaxDistance() uint32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var max uint32
	for from := range c.nodes {
		for to := range c.nodes {
			if from == to {
				continue
			}
			if d := c.edges[from][to].Distance; d > max {
				max = d
			}
		}
	}
	return max
}

// ResetDemand clears Demand/UnsatisfiedDemand/Flow on every live edge,
// called by the job pipeline's InitHandler before the demand calculator
// runs, so each job starts its computation from scratch.
func (c *Component) ResetDemand() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for from := range c.nodes {
		for to := c.edges[from][from].NextEdge; to != NoEdge; to = c.edges[from][to].NextEdge {
			c.edges[from][to].resetDemand()
		}
	}
}
