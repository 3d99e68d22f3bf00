package scenario

import (
	"errors"
	"testing"
)

func TestPathRejectsTooFewNodes(t *testing.T) {
	_, err := Path(1)
	if !errors.Is(err, ErrTooFewNodes) {
		t.Fatalf("expected ErrTooFewNodes, got %v", err)
	}
}

func TestPathBuildsChainOfCapacitatedEdges(t *testing.T) {
	comp, err := Path(4, WithCapacity(7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comp.Size() != 4 {
		t.Fatalf("expected 4 nodes, got %d", comp.Size())
	}
	for i := 1; i < 4; i++ {
		if got := comp.GetEdge(i-1, i).Capacity; got != 7 {
			t.Fatalf("edge %d->%d: expected capacity 7, got %d", i-1, i, got)
		}
	}
	// Path is directed, no reverse edge.
	if got := comp.GetEdge(1, 0).Capacity; got != 0 {
		t.Fatalf("expected no reverse edge, got capacity %d", got)
	}
}

func TestCycleRejectsTooFewNodes(t *testing.T) {
	_, err := Cycle(2)
	if !errors.Is(err, ErrTooFewNodes) {
		t.Fatalf("expected ErrTooFewNodes, got %v", err)
	}
}

func TestCycleClosesTheRing(t *testing.T) {
	comp, err := Cycle(3, WithCapacity(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := comp.GetEdge(2, 0).Capacity; got != 5 {
		t.Fatalf("expected the ring to close 2->0, got capacity %d", got)
	}
}

func TestCompleteConnectsEveryOrderedPair(t *testing.T) {
	comp, err := Complete(3, WithCapacity(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				continue
			}
			if got := comp.GetEdge(i, j).Capacity; got != 3 {
				t.Fatalf("edge %d->%d: expected capacity 3, got %d", i, j, got)
			}
		}
	}
}

func TestStarConnectsHubToEverySpokeBothWays(t *testing.T) {
	comp, err := Star(4, WithCapacity(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for spoke := 1; spoke < 4; spoke++ {
		if got := comp.GetEdge(0, spoke).Capacity; got != 2 {
			t.Fatalf("hub->%d: expected capacity 2, got %d", spoke, got)
		}
		if got := comp.GetEdge(spoke, 0).Capacity; got != 2 {
			t.Fatalf("%d->hub: expected capacity 2, got %d", spoke, got)
		}
	}
}

func TestGridRejectsInvalidDimensions(t *testing.T) {
	_, err := Grid(0, 3)
	if !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("expected ErrInvalidGrid, got %v", err)
	}
}

func TestGridConnectsNeighboursNotDiagonals(t *testing.T) {
	comp, err := Grid(2, 2, WithCapacity(9))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Row-major indices: 0=(0,0) 1=(0,1) 2=(1,0) 3=(1,1).
	if got := comp.GetEdge(0, 1).Capacity; got != 9 {
		t.Fatalf("(0,0)->(0,1): expected capacity 9, got %d", got)
	}
	if got := comp.GetEdge(0, 2).Capacity; got != 9 {
		t.Fatalf("(0,0)->(1,0): expected capacity 9, got %d", got)
	}
	if got := comp.GetEdge(0, 3).Capacity; got != 0 {
		t.Fatalf("diagonal (0,0)->(1,1) should not be connected, got capacity %d", got)
	}
}

func TestWithDemandMarksNodesAsAccepting(t *testing.T) {
	comp, err := Path(3, WithSupply(10), WithDemand(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 3; i++ {
		n := comp.GetNode(i)
		if !n.Accepts {
			t.Fatalf("node %d: expected Accepts true when WithDemand > 0", i)
		}
		if n.Supply != 10 {
			t.Fatalf("node %d: expected supply 10, got %d", i, n.Supply)
		}
	}
}
