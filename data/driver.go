package data

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/ncobase/notes/config"
)

// DatabaseDriver defines the interface for relational database drivers.
// Following the design pattern of database/sql, drivers register
// themselves in init() and are looked up at runtime by the driver name
// from configuration:
//
//	import _ "github.com/ncobase/notes/data/sqlite"
type DatabaseDriver interface {
	// Name returns the driver identifier (e.g. "postgres", "mysql", "sqlite")
	Name() string

	// Connect establishes a connection, applies pool settings and
	// verifies it with a ping.
	Connect(ctx context.Context, cfg *config.DBNode) (*sql.DB, error)
}

var (
	databaseDriversMu sync.RWMutex
	databaseDrivers   = make(map[string]DatabaseDriver)
)

// RegisterDatabaseDriver registers a database driver. It panics on nil
// or duplicate registration, mirroring database/sql semantics.
func RegisterDatabaseDriver(driver DatabaseDriver) {
	if driver == nil {
		panic("data: RegisterDatabaseDriver driver is nil")
	}
	databaseDriversMu.Lock()
	defer databaseDriversMu.Unlock()
	if _, dup := databaseDrivers[driver.Name()]; dup {
		panic("data: RegisterDatabaseDriver called twice for driver " + driver.Name())
	}
	databaseDrivers[driver.Name()] = driver
}

// GetDatabaseDriver returns a registered driver by name.
func GetDatabaseDriver(name string) (DatabaseDriver, error) {
	databaseDriversMu.RLock()
	defer databaseDriversMu.RUnlock()
	driver, ok := databaseDrivers[name]
	if !ok {
		return nil, fmt.Errorf("data: unknown database driver %q (forgotten import?)", name)
	}
	return driver, nil
}

// RegisteredDatabaseDrivers lists the names of registered drivers.
func RegisteredDatabaseDrivers() []string {
	databaseDriversMu.RLock()
	defer databaseDriversMu.RUnlock()
	names := make([]string, 0, len(databaseDrivers))
	for name := range databaseDrivers {
		names = append(names, name)
	}
	return names
}
