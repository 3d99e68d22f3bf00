package persist

import (
	"context"
	"os"
	"testing"

	"github.com/katalvlaran/cargoflow/cargo"
	"github.com/katalvlaran/cargoflow/config"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("unexpected error opening in-memory store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStationRefRoundTrip(t *testing.T) {
	ref := NewStationRef(cargo.StationID(42))
	got, ok := ref.Station()
	if !ok {
		t.Fatal("expected a freshly packed reference to be valid")
	}
	if got != 42 {
		t.Fatalf("expected station 42, got %d", got)
	}
}

func TestInvalidStationRefIsNeverValid(t *testing.T) {
	if _, ok := InvalidStationRef.Station(); ok {
		t.Fatal("expected the invalid sentinel to never unpack as valid")
	}
}

func TestSQLiteRegistrySaveLoadRoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	want := RegistryState{Cargo: 3, Cursor: 12, Current: 1}
	if err := store.SaveRegistry(ctx, want); err != nil {
		t.Fatalf("unexpected error saving registry state: %v", err)
	}

	got, err := store.LoadRegistry(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error loading registry state: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestSQLiteRegistryLoadMissingReturnsNotFound(t *testing.T) {
	store := newTestSQLiteStore(t)
	if _, err := store.LoadRegistry(context.Background(), 999); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteComponentSaveLoadRoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	settings := config.Snapshot{Shape: config.ShapeAntisymmetric, Accuracy: 2, ShortPathSaturation: 100, RecalcInterval: 4}
	comp := cargo.NewComponent(7, 3, settings)
	a := comp.AddNode(100, 50, 0)
	b := comp.AddNode(200, 0, 0)
	c := comp.AddNode(300, 0, 20)
	comp.GetNode(c).Accepts = true
	comp.SetID(9)
	comp.SetJoinDate(1234)

	if err := comp.AddEdge(a, b, 10); err != nil {
		t.Fatalf("unexpected error adding edge a->b: %v", err)
	}
	if err := comp.AddEdge(b, c, 10); err != nil {
		t.Fatalf("unexpected error adding edge b->c: %v", err)
	}
	comp.GetEdge(a, b).Flow = 5
	comp.GetEdge(b, c).Flow = 5
	comp.GetNode(a).AddFlow(100, 200, 5)
	comp.GetNode(b).AddFlow(100, 300, 5)

	rec := ToRecord(comp)
	if err := store.SaveComponent(ctx, rec); err != nil {
		t.Fatalf("unexpected error saving component: %v", err)
	}

	loaded, err := store.LoadComponent(ctx, 7, 9)
	if err != nil {
		t.Fatalf("unexpected error loading component: %v", err)
	}

	restored, err := FromRecord(loaded)
	if err != nil {
		t.Fatalf("unexpected error rebuilding component: %v", err)
	}

	if restored.Cargo() != 7 || restored.ID() != 9 || restored.JoinDate() != 1234 || restored.Size() != 3 {
		t.Fatalf("restored component identity mismatch: cargo=%d id=%d join=%d size=%d",
			restored.Cargo(), restored.ID(), restored.JoinDate(), restored.Size())
	}
	if restored.GetEdge(a, b).Flow != 5 || restored.GetEdge(b, c).Flow != 5 {
		t.Fatal("expected restored edges to carry their persisted flow")
	}
	if !restored.GetNode(c).Accepts {
		t.Fatal("expected the restored demand node to still accept deliveries")
	}
	if got := restored.GetNode(a).FlowFor(100, 200); got != 5 {
		t.Fatalf("expected restored node a to carry a flow credit of 5, got %d", got)
	}
	if got := restored.GetNode(b).FlowFor(100, 300); got != 5 {
		t.Fatalf("expected restored node b to carry a flow credit of 5, got %d", got)
	}
}

func TestSQLiteDeleteComponentRemovesAllRows(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	settings := config.Snapshot{Accuracy: 1, ShortPathSaturation: 100}
	comp := cargo.NewComponent(1, 2, settings)
	comp.AddNode(10, 5, 0)
	comp.AddNode(20, 0, 5)
	comp.SetID(1)

	if err := store.SaveComponent(ctx, ToRecord(comp)); err != nil {
		t.Fatalf("unexpected error saving component: %v", err)
	}
	if err := store.DeleteComponent(ctx, 1, 1); err != nil {
		t.Fatalf("unexpected error deleting component: %v", err)
	}
	if _, err := store.LoadComponent(ctx, 1, 1); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestFromRecordRejectsDanglingFlowDestination(t *testing.T) {
	rec := ComponentRecord{
		Cargo:       1,
		ComponentID: 1,
		Size:        1,
		Settings:    SnapshotRow{Accuracy: 1, ShortPathSaturation: 100},
		Nodes: []NodeRow{
			{
				Station: 10,
				Flows: []FlowRow{
					{Origin: NewStationRef(10), Via: NewStationRef(999), Amount: 5},
				},
			},
		},
	}

	if _, err := FromRecord(rec); err != ErrDanglingDestination {
		t.Fatalf("expected ErrDanglingDestination, got %v", err)
	}
}

func TestNewMySQLStoreSkipsWithoutTestDSN(t *testing.T) {
	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("skipping MySQL round-trip test: TEST_MYSQL_DSN not set")
	}

	store, err := NewMySQLStore(dsn)
	if err != nil {
		t.Fatalf("unexpected error opening mysql store: %v", err)
	}
	defer store.Close()

	if err := store.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error pinging mysql store: %v", err)
	}
}
