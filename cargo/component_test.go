package cargo

import (
	"testing"

	"github.com/katalvlaran/cargoflow/config"
)

func TestComponentAddNodeAssignsDenseIndices(t *testing.T) {
	c := NewComponent(1, 3, config.Snapshot{})
	a := c.AddNode(10, 100, 0)
	b := c.AddNode(11, 0, 50)
	if a != 0 || b != 1 {
		t.Fatalf("expected dense indices 0,1; got %d,%d", a, b)
	}
	if c.Size() != 2 {
		t.Fatalf("expected size 2, got %d", c.Size())
	}
}

func TestComponentAddEdgeRejectsSelfLoop(t *testing.T) {
	c := NewComponent(1, 2, config.Snapshot{})
	c.AddNode(10, 100, 0)
	if err := c.AddEdge(0, 0, 5); err != ErrSelfLoop {
		t.Fatalf("expected ErrSelfLoop, got %v", err)
	}
}

func TestComponentAddEdgeSumsParallelCapacity(t *testing.T) {
	c := NewComponent(1, 2, config.Snapshot{})
	c.AddNode(10, 100, 0)
	c.AddNode(11, 0, 50)
	if err := c.AddEdge(0, 1, 30); err != nil {
		t.Fatal(err)
	}
	if err := c.AddEdge(0, 1, 20); err != nil {
		t.Fatal(err)
	}
	if got := c.GetEdge(0, 1).Capacity; got != 50 {
		t.Fatalf("expected summed capacity 50, got %d", got)
	}
}

func TestComponentFirstEdgeWalksInsertionOrder(t *testing.T) {
	c := NewComponent(1, 3, config.Snapshot{})
	c.AddNode(10, 0, 0)
	c.AddNode(11, 0, 0)
	c.AddNode(12, 0, 0)
	if err := c.AddEdge(0, 2, 5); err != nil {
		t.Fatal(err)
	}
	if err := c.AddEdge(0, 1, 5); err != nil {
		t.Fatal(err)
	}

	var visited []int
	for to := c.FirstEdge(0); to != NoEdge; to = c.GetEdge(0, to).NextEdge {
		visited = append(visited, to)
	}
	if len(visited) != 2 || visited[0] != 2 || visited[1] != 1 {
		t.Fatalf("expected insertion-order walk [2 1], got %v", visited)
	}
}

func TestComponentCalculateDistances(t *testing.T) {
	c := NewComponent(1, 2, config.Snapshot{})
	c.AddNode(10, 0, 0)
	c.AddNode(11, 0, 0)
	if err := c.AddEdge(0, 1, 10); err != nil {
		t.Fatal(err)
	}
	c.CalculateDistances(func(a, b StationID) uint32 {
		return uint32(b - a)
	})
	if got := c.GetEdge(0, 1).Distance; got != 1 {
		t.Fatalf("expected distance 1, got %d", got)
	}
	if got := c.MaxDistance(); got != 1 {
		t.Fatalf("expected max distance 1, got %d", got)
	}
}
