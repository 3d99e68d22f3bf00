package persist

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLStore is the networked backend for deployments where several
// simulator processes share one database, following the teacher's
// MySQLStore's connection-pool sizing.
type MySQLStore struct {
	*sqlStore
}

// NewMySQLStore opens a MySQL/MariaDB-backed store using dsn, in the
// "user:password@tcp(host:port)/dbname" form the driver documents.
func NewMySQLStore(dsn string) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("persist: failed to open mysql connection: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("persist: failed to ping mysql: %w", err)
	}

	base, err := newSQLStore(db)
	if err != nil {
		return nil, err
	}
	return &MySQLStore{sqlStore: base}, nil
}
