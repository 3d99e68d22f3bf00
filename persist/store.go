package persist

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/katalvlaran/cargoflow/cargo"
)

// Store persists and restores registry cursors and in-flight components.
// SQLiteStore and MySQLStore are the two concrete implementations; callers
// depend on this interface so an engine built against SQLite in
// development can switch to MySQL for a multi-process deployment without
// touching call sites.
type Store interface {
	SaveRegistry(ctx context.Context, state RegistryState) error
	LoadRegistry(ctx context.Context, cargoID cargo.ID) (RegistryState, error)

	SaveComponent(ctx context.Context, rec ComponentRecord) error
	LoadComponent(ctx context.Context, cargoID cargo.ID, componentID int) (ComponentRecord, error)
	DeleteComponent(ctx context.Context, cargoID cargo.ID, componentID int) error

	Ping(ctx context.Context) error
	Close() error
}

// sqlStore implements Store against any database/sql driver that accepts
// "?" placeholders and the integer-only DDL in schema.go. SQLiteStore and
// MySQLStore are thin constructors around it; only connection setup
// (pragmas, pool sizing) differs between the two backends.
type sqlStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

func newSQLStore(db *sql.DB) (*sqlStore, error) {
	ctx := context.Background()
	for _, stmt := range ddlStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("persist: failed to create schema: %w", err)
		}
	}
	return &sqlStore{db: db}, nil
}

func (s *sqlStore) checkOpen() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}
	return nil
}

func (s *sqlStore) SaveRegistry(ctx context.Context, state RegistryState) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	query := `
		INSERT INTO registry_state (cargo_id, cursor, current)
		VALUES (?, ?, ?)
		ON CONFLICT(cargo_id) DO UPDATE SET cursor = excluded.cursor, current = excluded.current
	`
	_, err := s.db.ExecContext(ctx, query, state.Cargo, state.Cursor, state.Current)
	if err != nil {
		return fmt.Errorf("persist: failed to save registry state: %w", err)
	}
	return nil
}

func (s *sqlStore) LoadRegistry(ctx context.Context, cargoID cargo.ID) (RegistryState, error) {
	if err := s.checkOpen(); err != nil {
		return RegistryState{}, err
	}
	query := `SELECT cursor, current FROM registry_state WHERE cargo_id = ?`
	var state RegistryState
	state.Cargo = cargoID
	err := s.db.QueryRowContext(ctx, query, cargoID).Scan(&state.Cursor, &state.Current)
	if err == sql.ErrNoRows {
		return RegistryState{}, ErrNotFound
	}
	if err != nil {
		return RegistryState{}, fmt.Errorf("persist: failed to load registry state: %w", err)
	}
	return state, nil
}

func (s *sqlStore) SaveComponent(ctx context.Context, rec ComponentRecord) error {
	if err := s.checkOpen(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("persist: failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := deleteComponentRowsTx(ctx, tx, rec.Cargo, rec.ComponentID); err != nil {
		return err
	}

	componentQuery := `
		INSERT INTO components
			(cargo_id, component_id, size, join_date, shape, accuracy, mod_size, mod_distance,
			 short_path_saturation, recalc_interval, moving_average_length)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, componentQuery,
		rec.Cargo, rec.ComponentID, rec.Size, rec.JoinDate,
		rec.Settings.Shape, rec.Settings.Accuracy, rec.Settings.ModSize, rec.Settings.ModDistance,
		rec.Settings.ShortPathSaturation, rec.Settings.RecalcInterval, rec.Settings.MovingAverageLength,
	)
	if err != nil {
		return fmt.Errorf("persist: failed to save component row: %w", err)
	}

	nodeQuery := `
		INSERT INTO component_nodes
			(cargo_id, component_id, node_index, station_id, supply, undelivered_supply, demand, accepts)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	flowQuery := `
		INSERT INTO component_flows (cargo_id, component_id, node_index, origin_ref, via_ref, amount)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	for idx, node := range rec.Nodes {
		accepts := 0
		if node.Accepts {
			accepts = 1
		}
		_, err = tx.ExecContext(ctx, nodeQuery,
			rec.Cargo, rec.ComponentID, idx, node.Station, node.Supply, node.UndeliveredSupply, node.Demand, accepts)
		if err != nil {
			return fmt.Errorf("persist: failed to save node row %d: %w", idx, err)
		}
		for _, flow := range node.Flows {
			_, err = tx.ExecContext(ctx, flowQuery,
				rec.Cargo, rec.ComponentID, idx, flow.Origin, flow.Via, flow.Amount)
			if err != nil {
				return fmt.Errorf("persist: failed to save flow row for node %d: %w", idx, err)
			}
		}
	}

	edgeQuery := `
		INSERT INTO component_edges
			(cargo_id, component_id, from_index, to_index, distance, capacity, demand, unsatisfied_demand, flow)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	for _, edge := range rec.Edges {
		_, err = tx.ExecContext(ctx, edgeQuery,
			rec.Cargo, rec.ComponentID, edge.From, edge.To,
			edge.Distance, edge.Capacity, edge.Demand, edge.UnsatisfiedDemand, edge.Flow)
		if err != nil {
			return fmt.Errorf("persist: failed to save edge row (%d,%d): %w", edge.From, edge.To, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("persist: failed to commit component save: %w", err)
	}
	return nil
}

func (s *sqlStore) LoadComponent(ctx context.Context, cargoID cargo.ID, componentID int) (ComponentRecord, error) {
	if err := s.checkOpen(); err != nil {
		return ComponentRecord{}, err
	}

	rec := ComponentRecord{Cargo: cargoID, ComponentID: componentID}

	row := s.db.QueryRowContext(ctx, `
		SELECT size, join_date, shape, accuracy, mod_size, mod_distance,
		       short_path_saturation, recalc_interval, moving_average_length
		FROM components WHERE cargo_id = ? AND component_id = ?
	`, cargoID, componentID)
	err := row.Scan(&rec.Size, &rec.JoinDate, &rec.Settings.Shape, &rec.Settings.Accuracy,
		&rec.Settings.ModSize, &rec.Settings.ModDistance, &rec.Settings.ShortPathSaturation,
		&rec.Settings.RecalcInterval, &rec.Settings.MovingAverageLength)
	if err == sql.ErrNoRows {
		return ComponentRecord{}, ErrNotFound
	}
	if err != nil {
		return ComponentRecord{}, fmt.Errorf("persist: failed to load component row: %w", err)
	}

	nodeRows, err := s.db.QueryContext(ctx, `
		SELECT node_index, station_id, supply, undelivered_supply, demand, accepts
		FROM component_nodes WHERE cargo_id = ? AND component_id = ? ORDER BY node_index ASC
	`, cargoID, componentID)
	if err != nil {
		return ComponentRecord{}, fmt.Errorf("persist: failed to load node rows: %w", err)
	}
	defer func() { _ = nodeRows.Close() }()

	rec.Nodes = make([]NodeRow, rec.Size)
	for nodeRows.Next() {
		var idx int
		var nr NodeRow
		var accepts int
		if err := nodeRows.Scan(&idx, &nr.Station, &nr.Supply, &nr.UndeliveredSupply, &nr.Demand, &accepts); err != nil {
			return ComponentRecord{}, fmt.Errorf("persist: failed to scan node row: %w", err)
		}
		nr.Accepts = accepts != 0
		if idx < 0 || idx >= rec.Size {
			return ComponentRecord{}, fmt.Errorf("persist: node index %d out of range for size %d", idx, rec.Size)
		}
		rec.Nodes[idx] = nr
	}
	if err := nodeRows.Err(); err != nil {
		return ComponentRecord{}, fmt.Errorf("persist: error iterating node rows: %w", err)
	}

	flowRows, err := s.db.QueryContext(ctx, `
		SELECT node_index, origin_ref, via_ref, amount
		FROM component_flows WHERE cargo_id = ? AND component_id = ?
	`, cargoID, componentID)
	if err != nil {
		return ComponentRecord{}, fmt.Errorf("persist: failed to load flow rows: %w", err)
	}
	defer func() { _ = flowRows.Close() }()

	for flowRows.Next() {
		var idx int
		var fr FlowRow
		if err := flowRows.Scan(&idx, &fr.Origin, &fr.Via, &fr.Amount); err != nil {
			return ComponentRecord{}, fmt.Errorf("persist: failed to scan flow row: %w", err)
		}
		if idx < 0 || idx >= rec.Size {
			return ComponentRecord{}, fmt.Errorf("persist: flow node index %d out of range for size %d", idx, rec.Size)
		}
		rec.Nodes[idx].Flows = append(rec.Nodes[idx].Flows, fr)
	}
	if err := flowRows.Err(); err != nil {
		return ComponentRecord{}, fmt.Errorf("persist: error iterating flow rows: %w", err)
	}

	edgeRows, err := s.db.QueryContext(ctx, `
		SELECT from_index, to_index, distance, capacity, demand, unsatisfied_demand, flow
		FROM component_edges WHERE cargo_id = ? AND component_id = ?
	`, cargoID, componentID)
	if err != nil {
		return ComponentRecord{}, fmt.Errorf("persist: failed to load edge rows: %w", err)
	}
	defer func() { _ = edgeRows.Close() }()

	for edgeRows.Next() {
		var er EdgeRow
		if err := edgeRows.Scan(&er.From, &er.To, &er.Distance, &er.Capacity, &er.Demand, &er.UnsatisfiedDemand, &er.Flow); err != nil {
			return ComponentRecord{}, fmt.Errorf("persist: failed to scan edge row: %w", err)
		}
		rec.Edges = append(rec.Edges, er)
	}
	if err := edgeRows.Err(); err != nil {
		return ComponentRecord{}, fmt.Errorf("persist: error iterating edge rows: %w", err)
	}

	return rec, nil
}

func (s *sqlStore) DeleteComponent(ctx context.Context, cargoID cargo.ID, componentID int) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("persist: failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := deleteComponentRowsTx(ctx, tx, cargoID, componentID); err != nil {
		return err
	}
	return tx.Commit()
}

func deleteComponentRowsTx(ctx context.Context, tx *sql.Tx, cargoID cargo.ID, componentID int) error {
	tables := []string{"component_edges", "component_flows", "component_nodes", "components"}
	for _, table := range tables {
		_, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE cargo_id = ? AND component_id = ?", cargoID, componentID)
		if err != nil {
			return fmt.Errorf("persist: failed to clear existing %s rows: %w", table, err)
		}
	}
	return nil
}

func (s *sqlStore) Ping(ctx context.Context) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	return s.db.PingContext(ctx)
}

func (s *sqlStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
