// Package sqlstore implements the domain repositories on PostgreSQL or SQLite.
package sqlstore

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"fitness/internal/domain"
	"fitness/internal/metrics"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

//go:embed migrations
var migrationsFS embed.FS

// Store wraps a *sqlx.DB and implements the domain repository interfaces.
// Every operation holds a single store-wide lock.
type Store struct {
	mu      sync.Mutex
	db      *sqlx.DB
	metrics *metrics.Collector
}

// Ensure interfaces are met.
var _ domain.WeightRepository = (*Store)(nil)
var _ domain.CalorieRepository = (*Store)(nil)
var _ domain.Store = (*Store)(nil)

// New wraps an already-migrated connection.
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// WithMetrics records query timings on c.
func (s *Store) WithMetrics(c *metrics.Collector) *Store {
	s.metrics = c
	return s
}

// Open applies migrations, connects and pings. For postgres dsn must be a
// postgres:// URL; for sqlite it is a file path.
func Open(driverName, dsn string, log logrus.FieldLogger) (*Store, error) {
	switch driverName {
	case DriverPostgres:
	case DriverSQLite:
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported driver %q", driverName)
	}

	if err := runMigrations(driverName, dsn); err != nil {
		return nil, err
	}
	log.WithField("driver", driverName).Info("database migrations applied")

	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}
	if driverName == DriverSQLite {
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return New(db), nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func runMigrations(driverName, dsn string) error {
	src, err := iofs.New(migrationsFS, "migrations/"+driverName)
	if err != nil {
		return fmt.Errorf("migrate: source: %w", err)
	}

	databaseURL := dsn
	if driverName == DriverSQLite {
		databaseURL = "sqlite://" + dsn
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	defer m.Close() //nolint:errcheck

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate: up: %w", err)
	}
	return nil
}

// observe times op and wraps any error as ErrStoreUnavailable.
func (s *Store) observe(op string, start time.Time, err error) error {
	s.metrics.ObserveStoreQuery(op, start, err)
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}

// dbTime scans timestamps from drivers that return either time.Time or text.
type dbTime struct {
	time.Time
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

func (t *dbTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		t.Time = v
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into timestamp", src)
	}
}

func (t *dbTime) parse(s string) error {
	for _, layout := range timeLayouts {
		if v, err := time.Parse(layout, s); err == nil {
			t.Time = v
			return nil
		}
	}
	return fmt.Errorf("unrecognised timestamp %q", s)
}
