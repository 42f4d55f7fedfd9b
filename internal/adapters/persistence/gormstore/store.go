// Package gormstore is the relational Entry/Tag store. It keeps entries,
// tags and the entry_tags junction in three explicit tables with a unique
// tag name and a cascading foreign key from entry_tags to entries.
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jsamuelsen/learning-journal/internal/platform/config"
	"github.com/jsamuelsen/learning-journal/internal/ports"
)

// ErrUnsupportedDriver is returned by Open for an unknown database.driver.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Store owns the gorm handle shared by the repositories.
type Store struct {
	db      *gorm.DB
	now     func() time.Time
	metrics ports.JournalMetrics
	logger  *slog.Logger

	entries *EntryRepository
	tags    *TagRepository
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now for entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithMetrics reports how many tags each write created.
func WithMetrics(m ports.JournalMetrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

// WithLogger sets the fallback logger for SQL logging. Requests carrying a
// logger in their context use that one instead.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// Open connects to the configured database and, when cfg.AutoMigrate is
// set, creates or updates the schema.
func Open(ctx context.Context, cfg config.DatabaseConfig, opts ...Option) (*Store, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	s := newStore(nil, opts...)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 newSQLLogger(s.logger, cfg.SlowThreshold),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.Driver, err)
	}

	s.db = db

	if err := s.configurePool(ctx, cfg); err != nil {
		_ = s.Close()
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := s.Migrate(ctx); err != nil {
			_ = s.Close()
			return nil, err
		}
	}

	return s, nil
}

// New wraps an already opened gorm handle.
func New(db *gorm.DB, opts ...Option) *Store {
	return newStore(db, opts...)
}

func newStore(db *gorm.DB, opts ...Option) *Store {
	s := &Store{
		db:      db,
		now:     time.Now,
		metrics: noopMetrics{},
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.tags = &TagRepository{store: s}
	s.entries = &EntryRepository{store: s}

	return s
}

// Entries returns the entry repository.
func (s *Store) Entries() *EntryRepository { return s.entries }

// Tags returns the tag repository.
func (s *Store) Tags() *TagRepository { return s.tags }

// timestamp is the store clock in UTC at the microsecond precision every
// supported dialect can round-trip.
func (s *Store) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

// Migrate creates or updates the three journal tables.
func (s *Store) Migrate(ctx context.Context) error {
	err := s.db.WithContext(ctx).AutoMigrate(&entryModel{}, &tagModel{}, &entryTagModel{})
	if err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}

	return nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "database" }

// Check implements ports.HealthChecker by pinging the pool.
func (s *Store) Check(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

func (s *Store) configurePool(ctx context.Context, cfg config.DatabaseConfig) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("getting sql.DB: %w", err)
	}

	if cfg.Driver == "sqlite" {
		// A single connection serializes writers and keeps :memory:
		// databases alive for the life of the pool.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)

		if err := s.db.WithContext(ctx).Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return fmt.Errorf("enabling sqlite foreign keys: %w", err)
		}

		return nil
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return nil
}

func dialectorFor(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "sqlite":
		return sqlite.Open(sqliteDSN(cfg.DSN)), nil
	case "postgres":
		return postgres.Open(cfg.DSN), nil
	case "mysql":
		return mysql.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// sqliteDSN turns on foreign keys and a busy timeout for every connection.
func sqliteDSN(dsn string) string {
	var params []string

	if !strings.Contains(dsn, "foreign_keys") {
		params = append(params, "_pragma=foreign_keys(1)")
	}

	if !strings.Contains(dsn, "busy_timeout") {
		params = append(params, "_pragma=busy_timeout(5000)")
	}

	if len(params) == 0 {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}

	return dsn + sep + strings.Join(params, "&")
}

type noopMetrics struct{}

func (noopMetrics) EntryChanged(string) {}
func (noopMetrics) TagsCreated(int)     {}
