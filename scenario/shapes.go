package scenario

import (
	"fmt"

	"github.com/katalvlaran/cargoflow/cargo"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodComplete = "Complete"
	methodStar     = "Star"
	methodGrid     = "Grid"

	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
)

// Path builds a simple path of n nodes, stations numbered 1..n, with one
// directed edge (i-1)->i for each consecutive pair, mirroring
// builder.Path's vertex/edge emission order.
func Path(n int, opts ...Option) (*cargo.Component, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
	}
	cfg := apply(opts)
	comp := cargo.NewComponent(0, n, cfg.settings)

	for i := 0; i < n; i++ {
		addNode(comp, cargo.StationID(i+1), cfg)
	}
	for i := 1; i < n; i++ {
		if err := comp.AddEdge(i-1, i, cfg.capacity); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d->%d): %w", methodPath, i-1, i, err)
		}
	}
	comp.CalculateDistances(manhattan)
	return comp, nil
}

// Cycle builds an n-node ring, stations numbered 1..n, with edges
// i->(i+1)%n for every i, mirroring builder.Cycle.
func Cycle(n int, opts ...Option) (*cargo.Component, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
	}
	cfg := apply(opts)
	comp := cargo.NewComponent(0, n, cfg.settings)

	for i := 0; i < n; i++ {
		addNode(comp, cargo.StationID(i+1), cfg)
	}
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		if err := comp.AddEdge(i, next, cfg.capacity); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d->%d): %w", methodCycle, i, next, err)
		}
	}
	comp.CalculateDistances(manhattan)
	return comp, nil
}

// Complete builds an n-node complete digraph K_n: every ordered pair of
// distinct nodes gets a direct edge, stations numbered 1..n.
func Complete(n int, opts ...Option) (*cargo.Component, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minPathNodes, ErrTooFewNodes)
	}
	cfg := apply(opts)
	comp := cargo.NewComponent(0, n, cfg.settings)

	for i := 0; i < n; i++ {
		addNode(comp, cargo.StationID(i+1), cfg)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if err := comp.AddEdge(i, j, cfg.capacity); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d->%d): %w", methodComplete, i, j, err)
			}
		}
	}
	comp.CalculateDistances(manhattan)
	return comp, nil
}

// Star builds a hub-and-spoke component: node 0 is the hub, nodes 1..n-1
// are spokes, with a bidirectional edge pair between the hub and every
// spoke. n counts the total node count including the hub.
func Star(n int, opts ...Option) (*cargo.Component, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
	}
	cfg := apply(opts)
	comp := cargo.NewComponent(0, n, cfg.settings)

	for i := 0; i < n; i++ {
		addNode(comp, cargo.StationID(i+1), cfg)
	}
	for i := 1; i < n; i++ {
		if err := comp.AddEdge(0, i, cfg.capacity); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(0->%d): %w", methodStar, i, err)
		}
		if err := comp.AddEdge(i, 0, cfg.capacity); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d->0): %w", methodStar, i, err)
		}
	}
	comp.CalculateDistances(manhattan)
	return comp, nil
}

// Grid builds a rows*cols rectangular grid with bidirectional edges
// between horizontal and vertical neighbours, stations numbered in
// row-major order starting at 1. Distances use each node's (row, col)
// coordinate rather than its station id, since station ids in a grid
// don't increase linearly along any one axis.
func Grid(rows, cols int, opts ...Option) (*cargo.Component, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%s: rows=%d cols=%d: %w", methodGrid, rows, cols, ErrInvalidGrid)
	}
	cfg := apply(opts)
	n := rows * cols
	comp := cargo.NewComponent(0, n, cfg.settings)

	idx := func(r, c int) int { return r*cols + c }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			addNode(comp, cargo.StationID(idx(r, c)+1), cfg)
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			here := idx(r, c)
			if c+1 < cols {
				right := idx(r, c+1)
				if err := comp.AddEdge(here, right, cfg.capacity); err != nil {
					return nil, fmt.Errorf("%s: AddEdge(%d->%d): %w", methodGrid, here, right, err)
				}
				if err := comp.AddEdge(right, here, cfg.capacity); err != nil {
					return nil, fmt.Errorf("%s: AddEdge(%d->%d): %w", methodGrid, right, here, err)
				}
			}
			if r+1 < rows {
				below := idx(r+1, c)
				if err := comp.AddEdge(here, below, cfg.capacity); err != nil {
					return nil, fmt.Errorf("%s: AddEdge(%d->%d): %w", methodGrid, here, below, err)
				}
				if err := comp.AddEdge(below, here, cfg.capacity); err != nil {
					return nil, fmt.Errorf("%s: AddEdge(%d->%d): %w", methodGrid, below, here, err)
				}
			}
		}
	}

	gridDistance := func(a, b cargo.StationID) uint32 {
		ai, bi := int(a)-1, int(b)-1
		ar, ac := ai/cols, ai%cols
		br, bc := bi/cols, bi%cols
		dr := ar - br
		if dr < 0 {
			dr = -dr
		}
		dc := ac - bc
		if dc < 0 {
			dc = -dc
		}
		return uint32(dr + dc)
	}
	comp.CalculateDistances(gridDistance)
	return comp, nil
}
