package graphbuilder

import (
	"testing"

	"github.com/katalvlaran/cargoflow/cargo"
	"github.com/katalvlaran/cargoflow/config"
	"github.com/katalvlaran/cargoflow/station"
)

type fakeObserver struct {
	positions map[cargo.StationID]station.Position
	links     map[cargo.StationID][]station.Link
	accepts   map[cargo.StationID]bool
	supply    map[cargo.StationID]uint32
	invalid   map[cargo.StationID]bool
}

func newFakeObserver() *fakeObserver {
	return &fakeObserver{
		positions: map[cargo.StationID]station.Position{},
		links:     map[cargo.StationID][]station.Link{},
		accepts:   map[cargo.StationID]bool{},
		supply:    map[cargo.StationID]uint32{},
		invalid:   map[cargo.StationID]bool{},
	}
}

func (f *fakeObserver) Exists(id cargo.StationID) bool { return !f.invalid[id] }
func (f *fakeObserver) Position(id cargo.StationID) station.Position {
	return f.positions[id]
}
func (f *fakeObserver) Links(id cargo.StationID, c cargo.ID) []station.Link {
	return f.links[id]
}
func (f *fakeObserver) Accepts(id cargo.StationID, c cargo.ID) bool { return f.accepts[id] }
func (f *fakeObserver) Supply(id cargo.StationID, c cargo.ID) uint32 {
	return f.supply[id]
}
func (f *fakeObserver) PoolSize() cargo.StationID { return 8 }

func TestBuildThreeNodeChain(t *testing.T) {
	obs := newFakeObserver()
	obs.positions[1] = station.Position{X: 0, Y: 0}
	obs.positions[2] = station.Position{X: 3, Y: 0}
	obs.positions[3] = station.Position{X: 3, Y: 4}
	obs.supply[1] = 100
	obs.accepts[3] = true

	obs.links[1] = []station.Link{{Neighbour: 2, Capacity: 10}}
	obs.links[2] = []station.Link{{Neighbour: 3, Capacity: 5}, {Neighbour: 1, Capacity: 10}}
	obs.links[3] = []station.Link{{Neighbour: 2, Capacity: 5}}

	comp, err := Build(obs, 0, 1, config.Snapshot{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if comp.Size() != 3 {
		t.Fatalf("expected 3 nodes, got %d", comp.Size())
	}
	if got := comp.GetNode(0).Station; got != 1 {
		t.Fatalf("expected seed at index 0, got station %d", got)
	}
	if got := comp.GetEdge(0, 1).Capacity; got != 10 {
		t.Fatalf("expected edge capacity 10, got %d", got)
	}
	if got := comp.GetEdge(1, 2).Distance; got != 4 {
		t.Fatalf("expected manhattan distance 4, got %d", got)
	}
}

func TestBuildSkipsInvalidNeighbour(t *testing.T) {
	obs := newFakeObserver()
	obs.positions[1] = station.Position{}
	obs.positions[2] = station.Position{}
	obs.supply[1] = 10
	obs.links[1] = []station.Link{{Neighbour: 2, Capacity: 5}}
	obs.invalid[2] = true

	comp, err := Build(obs, 0, 1, config.Snapshot{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if comp.Size() != 1 {
		t.Fatalf("expected invalid neighbour skipped, got size %d", comp.Size())
	}
}

func TestBuildRejectsInvalidSeed(t *testing.T) {
	obs := newFakeObserver()
	obs.invalid[1] = true
	if _, err := Build(obs, 0, 1, config.Snapshot{}); err != ErrSeedInvalid {
		t.Fatalf("expected ErrSeedInvalid, got %v", err)
	}
}

func TestBuildSumsParallelLinks(t *testing.T) {
	obs := newFakeObserver()
	obs.positions[1] = station.Position{}
	obs.positions[2] = station.Position{}
	obs.supply[1] = 10
	obs.links[1] = []station.Link{{Neighbour: 2, Capacity: 5}, {Neighbour: 2, Capacity: 7}}
	obs.links[2] = nil

	comp, err := Build(obs, 0, 1, config.Snapshot{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := comp.GetEdge(0, 1).Capacity; got != 12 {
		t.Fatalf("expected summed capacity 12, got %d", got)
	}
}
