// Package data manages the service's persistence connections: the
// relational database the notes live in and the optional redis cache.
package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"

	"github.com/ncobase/notes/config"
)

// ErrStorageUnavailable marks a storage failure that is safe to retry:
// re-issuing the identical request performs the identical range scan.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Data encapsulates the data layer connections.
type Data struct {
	db      *sql.DB
	driver  string
	rc      *redis.Client
	breaker *gobreaker.CircuitBreaker
}

// New connects to the configured database (and redis when configured)
// and returns the data layer with a cleanup function.
func New(ctx context.Context, cfg *config.Data) (*Data, func(), error) {
	if cfg == nil || cfg.Database == nil || cfg.Database.Master == nil {
		return nil, nil, fmt.Errorf("data: database configuration is missing")
	}

	node := cfg.Database.Master
	driver, err := GetDatabaseDriver(node.Driver)
	if err != nil {
		return nil, nil, err
	}

	db, err := driver.Connect(ctx, node)
	if err != nil {
		return nil, nil, err
	}

	d := &Data{
		db:     db,
		driver: node.Driver,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "database",
			Timeout: 10 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}

	if cfg.Redis != nil && cfg.Redis.Addr != "" {
		rc := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr,
			Username:     cfg.Redis.Username,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.Db,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
			DialTimeout:  cfg.Redis.DialTimeout,
		})
		if err := rc.Ping(ctx).Err(); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("data: failed to ping redis: %w", err)
		}
		d.rc = rc
	}

	cleanup := func() {
		if d.rc != nil {
			_ = d.rc.Close()
		}
		_ = d.db.Close()
	}
	return d, cleanup, nil
}

// DB returns the database handle.
func (d *Data) DB() *sql.DB {
	return d.db
}

// DriverName returns the name of the connected database driver.
func (d *Data) DriverName() string {
	return d.driver
}

// Redis returns the redis client, nil when not configured.
func (d *Data) Redis() *redis.Client {
	return d.rc
}

// Guard runs a storage operation through the circuit breaker. Failures
// are reported as ErrStorageUnavailable so callers can answer with a
// retryable server error; an open breaker short-circuits without
// touching the database.
func (d *Data) Guard(fn func() error) error {
	_, err := d.breaker.Execute(func() (any, error) {
		return nil, fn()
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return err
}

// Health reports the state of each connected component.
func (d *Data) Health(ctx context.Context) map[string]any {
	services := make(map[string]any)
	healthy := true

	start := time.Now()
	if err := d.db.PingContext(ctx); err != nil {
		services["database"] = map[string]any{"status": "unhealthy", "error": err.Error()}
		healthy = false
	} else {
		services["database"] = map[string]any{"status": "healthy", "latency": time.Since(start).String()}
	}

	if d.rc != nil {
		start = time.Now()
		if err := d.rc.Ping(ctx).Err(); err != nil {
			services["redis"] = map[string]any{"status": "unhealthy", "error": err.Error()}
			healthy = false
		} else {
			services["redis"] = map[string]any{"status": "healthy", "latency": time.Since(start).String()}
		}
	}

	status := "healthy"
	if !healthy {
		status = "degraded"
	}
	return map[string]any{
		"status":    status,
		"timestamp": time.Now(),
		"services":  services,
	}
}
