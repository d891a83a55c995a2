// Package sqlite provides the SQLite driver for the data layer.
//
// It uses mattn/go-sqlite3 as the underlying database/sql driver and
// registers itself when imported:
//
//	import _ "github.com/ncobase/notes/data/sqlite"
//
// Example connection strings:
//
//	"file:notes.db?cache=shared&mode=rwc"  // URI format with options
//	"notes.db"                             // Simple file path
//	":memory:"                             // In-memory database
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/ncobase/notes/config"
	"github.com/ncobase/notes/data"
)

type driver struct{}

func (d *driver) Name() string {
	return "sqlite"
}

// Connect establishes a SQLite connection. SQLite works best with a
// single open connection for write safety, which is the default here.
func (d *driver) Connect(ctx context.Context, cfg *config.DBNode) (*sql.DB, error) {
	if cfg.Source == "" {
		return nil, fmt.Errorf("sqlite: connection source is empty")
	}

	db, err := sql.Open("sqlite3", cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to open connection: %w", err)
	}

	if cfg.MaxIdleConn > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConn)
	} else {
		db.SetMaxIdleConns(2)
	}
	if cfg.MaxOpenConn > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConn)
	} else {
		db.SetMaxOpenConns(1)
	}
	if cfg.ConnMaxLifeTime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifeTime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: failed to ping database: %w", err)
	}
	return db, nil
}

func init() {
	data.RegisterDatabaseDriver(&driver{})
}
