package cargo

import "math"

// Path is one edge of a Dijkstra shortest-path tree, built fresh for every
// MCF pass and discarded by the flow mapper once folded into Node.Flows.
// Unlike dijkstra's predecessor map, paths here are an explicit tree of
// *Path nodes so the MCF solver can push flow back up from a destination to
// its origin one parent link at a time, and so cycle elimination can walk
// and re-root subtrees directly.
//
// Capacity and FreeCapacity are tracked as two separate running minimums
// along the path: Capacity is the bottleneck nominal (possibly
// short-path-saturated) link capacity, FreeCapacity is the bottleneck
// capacity still unused by flow already pushed elsewhere. The
// capacity-ratio comparison used by pass 2 needs both at once, so neither
// can be derived from the other.
type Path struct {
	// Node is the graph node index this Path entry sits at.
	Node int

	// Origin is the node index this path ultimately traces back to. Set at
	// construction for a source path and inherited from the parent on Fork.
	Origin int

	// Distance is the cumulative distance from Origin to Node along this
	// path.
	Distance uint32

	// Capacity is the bottleneck nominal capacity along this path.
	Capacity int64

	// FreeCapacity is the bottleneck remaining (unused) capacity along
	// this path.
	FreeCapacity int64

	// Flow is the amount of cargo the current MCF pass has pushed along
	// this exact path so far.
	Flow uint32

	// NumChildren counts paths whose Parent is this one; a path is a leaf
	// of the current tree (safe to discard) once this reaches zero.
	NumChildren int

	// Parent is the path entry at the previous hop, or nil if this Path
	// represents a source node itself.
	Parent *Path
}

// NewSourcePath creates the root Path for a Dijkstra run starting at node.
func NewSourcePath(node int) *Path {
	return &Path{
		Node:         node,
		Origin:       node,
		Distance:     0,
		Capacity:     math.MaxInt64,
		FreeCapacity: math.MaxInt64,
		Parent:       nil,
	}
}

// NewUnreachedPath creates the placeholder Path Dijkstra initializes every
// non-source node with before it is first relaxed.
func NewUnreachedPath(node int) *Path {
	return &Path{
		Node:         node,
		Origin:       -1,
		Distance:     math.MaxUint32,
		Capacity:     math.MinInt64,
		FreeCapacity: math.MinInt64,
		Parent:       nil,
	}
}

// Fork re-roots p onto base, the path entry one hop closer to the origin,
// for a new hop of nominal capacity cap, free capacity freeCap, and
// distance dist. Capacity/FreeCapacity/Origin propagate as running minimums
// from base; Distance accumulates.
func (p *Path) Fork(base *Path, cap, freeCap int64, dist uint32) {
	if cap < base.Capacity {
		p.Capacity = cap
	} else {
		p.Capacity = base.Capacity
	}
	if freeCap < base.FreeCapacity {
		p.FreeCapacity = freeCap
	} else {
		p.FreeCapacity = base.FreeCapacity
	}
	p.Distance = base.Distance + dist

	if p.Parent != base {
		if p.Parent != nil {
			p.Parent.NumChildren--
		}
		p.Parent = base
		base.NumChildren++
	}
	p.Origin = base.Origin
}

// Unfork detaches p from its parent's child count without altering any
// other field, used when cycle elimination removes a path from the tree
// without replacing it.
func (p *Path) Unfork() {
	if p.Parent != nil {
		p.Parent.NumChildren--
		p.Parent = nil
	}
}

// AddFlow pushes f units of flow from the origin down to p, walking the
// parent chain and crediting each edge's Flow field along the way. When
// onlyPositive is true (pass 1's short-path-saturation pass) the push is
// clamped to the portion of each hop's capacity still under the
// short-path-saturation percentage, and a hop already at that cap rejects
// the whole push. Returns the amount actually pushed, which may be less
// than f.
func (p *Path) AddFlow(f uint32, comp *Component, onlyPositive bool, shortPathSaturation uint32) uint32 {
	if p.Parent != nil {
		edge := comp.GetEdge(p.Parent.Node, p.Node)
		if onlyPositive {
			usableCap := edge.Capacity * shortPathSaturation / 100
			if usableCap > edge.Flow {
				if f > usableCap-edge.Flow {
					f = usableCap - edge.Flow
				}
			} else {
				return 0
			}
		}
		f = p.Parent.AddFlow(f, comp, onlyPositive, shortPathSaturation)
		if f > 0 {
			parentNode := comp.GetNode(p.Parent.Node)
			parentNode.Paths = appendPathOnce(parentNode.Paths, p)
		}
		edge.Flow += f
	}
	p.Flow += f
	return f
}

// ReduceFlow removes f units of previously pushed flow, used by cycle
// elimination when a cycle's flow is rerouted.
func (p *Path) ReduceFlow(f uint32) {
	p.Flow -= f
}

// IncFlow adds f units of flow directly to this path entry without
// walking the parent chain or touching any edge's Flow field, used when
// cycle elimination merges two parallel paths into one.
func (p *Path) IncFlow(f uint32) {
	p.Flow += f
}

func appendPathOnce(paths []*Path, p *Path) []*Path {
	for _, existing := range paths {
		if existing == p {
			return paths
		}
	}
	return append(paths, p)
}
