// Package persist stores and restores a cargo's registry cursor and
// in-flight component state across a process restart, following
// linkgraph_sl.cpp's tag layout directly: one row per graph (cursor and
// generation), one row per in-flight component (size, join date,
// configuration snapshot), then one row per node and one row per edge in
// dense index order. Unlike SaveLoad_LinkGraphComponent, which walks its
// arrays positionally, each node row carries its dense index in a
// node_index column and each edge row its endpoints in from_index and
// to_index columns.
//
// Two database/sql-backed implementations share this schema: SQLiteStore
// for the default embedded, zero-ops-overhead case, and MySQLStore for a
// networked backend when several simulator processes share one database.
package persist

import (
	"errors"

	"github.com/katalvlaran/cargoflow/cargo"
)

// ErrNotFound indicates a Load call found no persisted row for the given
// key.
var ErrNotFound = errors.New("persist: not found")

// ErrClosed indicates an operation was attempted on a closed Store.
var ErrClosed = errors.New("persist: store is closed")

// ErrDanglingDestination indicates a persisted flow referenced a station
// that no longer exists in the component being loaded, mirroring
// ExportNewFlows's "reject destinations that no longer exist" check.
var ErrDanglingDestination = errors.New("persist: flow references a station no longer present")

// stationRefKind discriminates what a StationRef points at. The original
// format distinguishes real stations from waypoints within the same
// packed field; this engine only ever persists real stations, but the
// discriminant byte is kept so the on-disk format has room to grow
// without a schema migration.
type stationRefKind byte

const (
	stationRefStation stationRefKind = 0
	stationRefInvalid stationRefKind = 0xFF
)

// StationRef packs a discriminant byte and a station id into a single
// int64, the same "packed (type,id) destination with an invalid-id
// sentinel" shape linkgraph_sl.cpp uses for a flow's destination. Station
// ids are small enough (see cargo.StationID) that the top byte is free
// for the discriminant.
type StationRef int64

// InvalidStationRef is the sentinel packed reference; a flow whose
// destination unpacks to it, or whose unpacked station id is absent from
// the component being loaded, is rejected rather than silently dropped.
// Its top byte is stationRefInvalid (all ones) and its id bits are zero.
const InvalidStationRef StationRef = ^StationRef(0x00FFFFFFFFFFFFFF)

// NewStationRef packs a live station id into a StationRef.
func NewStationRef(id cargo.StationID) StationRef {
	return StationRef(stationRefStation)<<56 | StationRef(id&0x00FFFFFFFFFFFFFF)
}

// Station unpacks the station id carried by ref, and reports whether ref
// is a valid (non-sentinel, correctly-kinded) reference.
func (ref StationRef) Station() (cargo.StationID, bool) {
	kind := stationRefKind(ref >> 56 & 0xFF)
	if kind != stationRefStation {
		return 0, false
	}
	return cargo.StationID(ref & 0x00FFFFFFFFFFFFFF), true
}

// RegistryState is the persisted cursor and generation parity for one
// cargo's component registry, letting a restarted engine resume
// NextComponent's round-robin scan where it left off instead of
// reconsidering every station's generation from scratch.
type RegistryState struct {
	Cargo   cargo.ID
	Cursor  cargo.StationID
	Current int
}

// ComponentRecord is the full persisted state of one in-flight component:
// its identity, size, join date, configuration snapshot, and dense
// node/edge rows, enough to reconstruct the *cargo.Component a restarted
// job runner hands back to the handler pipeline.
type ComponentRecord struct {
	Cargo       cargo.ID
	ComponentID int
	Size        int
	JoinDate    int64
	Settings    SnapshotRow
	Nodes       []NodeRow
	Edges       []EdgeRow
}

// SnapshotRow flattens config.Snapshot into primitive columns; the SQL
// layer works only with this row shape, and conv.go alone converts between
// it and config.Snapshot, keeping the SQL layer decoupled from config's own
// validation rules.
type SnapshotRow struct {
	Shape               int
	Accuracy            uint32
	ModSize             uint32
	ModDistance         uint32
	ShortPathSaturation uint32
	RecalcInterval      uint32
	MovingAverageLength uint32
}

// NodeRow is one dense node-index row: a station and its supply/demand
// bookkeeping, plus the flow credits it forwards per origin, keyed by the
// packed StationRef described above.
type NodeRow struct {
	Station           cargo.StationID
	Supply            uint32
	UndeliveredSupply uint32
	Demand            uint32
	Accepts           bool
	Flows             []FlowRow
}

// FlowRow is one (origin, via) -> amount credit within a node's Flows
// map, persisted with packed StationRefs so a load can detect and reject
// a destination that no longer exists in the component being restored.
type FlowRow struct {
	Origin StationRef
	Via    StationRef
	Amount uint32
}

// EdgeRow is one dense (from, to) edge row.
type EdgeRow struct {
	From              int
	To                int
	Distance          uint32
	Capacity          uint32
	Demand            uint32
	UnsatisfiedDemand uint32
	Flow              uint32
}
