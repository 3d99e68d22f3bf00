package persist

// ddlStatements is the shared schema both backends create on first use.
// Integer-only column types and "?" placeholders work unchanged against
// both modernc.org/sqlite and go-sql-driver/mysql, so unlike the teacher's
// SQLiteStore/MySQLStore (which hand-write two divergent table
// definitions), this schema needs exactly one copy.
var ddlStatements = []string{
	`CREATE TABLE IF NOT EXISTS registry_state (
		cargo_id INTEGER NOT NULL,
		cursor INTEGER NOT NULL,
		current INTEGER NOT NULL,
		PRIMARY KEY (cargo_id)
	)`,
	`CREATE TABLE IF NOT EXISTS components (
		cargo_id INTEGER NOT NULL,
		component_id INTEGER NOT NULL,
		size INTEGER NOT NULL,
		join_date INTEGER NOT NULL,
		shape INTEGER NOT NULL,
		accuracy INTEGER NOT NULL,
		mod_size INTEGER NOT NULL,
		mod_distance INTEGER NOT NULL,
		short_path_saturation INTEGER NOT NULL,
		recalc_interval INTEGER NOT NULL,
		moving_average_length INTEGER NOT NULL,
		PRIMARY KEY (cargo_id, component_id)
	)`,
	`CREATE TABLE IF NOT EXISTS component_nodes (
		cargo_id INTEGER NOT NULL,
		component_id INTEGER NOT NULL,
		node_index INTEGER NOT NULL,
		station_id INTEGER NOT NULL,
		supply INTEGER NOT NULL,
		undelivered_supply INTEGER NOT NULL,
		demand INTEGER NOT NULL,
		accepts INTEGER NOT NULL,
		PRIMARY KEY (cargo_id, component_id, node_index)
	)`,
	`CREATE TABLE IF NOT EXISTS component_edges (
		cargo_id INTEGER NOT NULL,
		component_id INTEGER NOT NULL,
		from_index INTEGER NOT NULL,
		to_index INTEGER NOT NULL,
		distance INTEGER NOT NULL,
		capacity INTEGER NOT NULL,
		demand INTEGER NOT NULL,
		unsatisfied_demand INTEGER NOT NULL,
		flow INTEGER NOT NULL,
		PRIMARY KEY (cargo_id, component_id, from_index, to_index)
	)`,
	`CREATE TABLE IF NOT EXISTS component_flows (
		cargo_id INTEGER NOT NULL,
		component_id INTEGER NOT NULL,
		node_index INTEGER NOT NULL,
		origin_ref INTEGER NOT NULL,
		via_ref INTEGER NOT NULL,
		amount INTEGER NOT NULL
	)`,
}
