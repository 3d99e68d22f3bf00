package mcf

import (
	"container/heap"

	"github.com/katalvlaran/cargoflow/cargo"
)

// pathQueue is a container/heap priority queue over *cargo.Path, ordered
// by an injected less function so the same queue type serves both the
// distance-first and capacity-first Dijkstra variants. Unlike the
// teacher's lazy decrease-key dijkstra (which tolerates stale duplicate
// entries because vertices are identified by string ID), every node here
// has exactly one live Path in the queue at a time, so a fork is applied
// by calling fix after mutating the path in place rather than by pushing
// a new entry.
type pathQueue struct {
	items []*cargo.Path
	pos   map[int]int
	less  func(a, b *cargo.Path) bool
}

func newPathQueue(lessFn func(a, b *cargo.Path) bool) *pathQueue {
	return &pathQueue{pos: make(map[int]int), less: lessFn}
}

func (q *pathQueue) Len() int { return len(q.items) }

func (q *pathQueue) Less(i, j int) bool { return q.less(q.items[i], q.items[j]) }

func (q *pathQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.pos[q.items[i].Node] = i
	q.pos[q.items[j].Node] = j
}

func (q *pathQueue) Push(x any) {
	p := x.(*cargo.Path)
	q.pos[p.Node] = len(q.items)
	q.items = append(q.items, p)
}

func (q *pathQueue) Pop() any {
	old := q.items
	n := len(old)
	p := old[n-1]
	old[n-1] = nil
	q.items = old[:n-1]
	delete(q.pos, p.Node)
	return p
}

// fix re-establishes heap order for node after its Path has been mutated
// in place (forked onto a better parent).
func (q *pathQueue) fix(node int) {
	if i, ok := q.pos[node]; ok {
		heap.Fix(q, i)
	}
}

func (q *pathQueue) pushAll(paths []*cargo.Path) {
	q.items = make([]*cargo.Path, 0, len(paths))
	for _, p := range paths {
		heap.Push(q, p)
	}
}

func (q *pathQueue) popMin() *cargo.Path {
	return heap.Pop(q).(*cargo.Path)
}
