// Package backend builds ledger and cache used by quill binaries.
package backend

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file" // nolint
	_ "github.com/lib/pq"                                // nolint
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/quill/internal/cache"
	"github.com/Decentr-net/quill/internal/cache/memory"
	"github.com/Decentr-net/quill/internal/cache/redis"
	"github.com/Decentr-net/quill/internal/health"
	"github.com/Decentr-net/quill/internal/ledger"
	"github.com/Decentr-net/quill/internal/ledger/badger"
	"github.com/Decentr-net/quill/internal/ledger/irys"
	mledger "github.com/Decentr-net/quill/internal/ledger/memory"
	"github.com/Decentr-net/quill/internal/ledger/postgres"
	"github.com/Decentr-net/quill/internal/metrics"
)

var log = logrus.WithField("layer", "backend").WithField("package", "backend")

// ErrUnknownKind is returned when backend kind is not supported.
var ErrUnknownKind = errors.New("unknown kind")

// Ledger kinds.
const (
	MemoryLedger   = "memory"
	BadgerLedger   = "badger"
	PostgresLedger = "postgres"
	IrysLedger     = "irys"
)

// Cache kinds.
const (
	NoCache     = "none"
	MemoryCache = "memory"
	RedisCache  = "redis"
)

// Config ...
type Config struct {
	Ledger string
	// Address is an uploader address of local ledgers.
	Address string
	// Balance of local ledgers' wallet. Use ledger.Unlimited to accept any Fund.
	Balance      int64
	PricePerByte uint64

	BadgerDir string

	Postgres                   string
	PostgresMaxOpenConnections int
	PostgresMaxIdleConnections int
	PostgresMigrations         string

	Irys irys.Config

	Cache         string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

// Backend holds opened ledger and cache.
type Backend struct {
	// Ledger is instrumented and cached ledger.
	Ledger ledger.Ledger
	// Cache is nil when cache is disabled.
	Cache   cache.Storage
	Pingers []health.Pinger

	closers []func() error
}

// Open opens ledger and cache described by cfg. Ledger calls are observed by m if it is not nil.
func Open(ctx context.Context, cfg Config, m *metrics.Metrics) (*Backend, error) {
	b := &Backend{}

	l, err := b.openLedger(ctx, cfg)
	if err != nil {
		b.Close() // nolint
		return nil, err
	}

	if m != nil {
		l = m.Ledger(l)
	}

	if err := b.openCache(ctx, cfg); err != nil {
		b.Close() // nolint
		return nil, err
	}

	if b.Cache != nil {
		l = ledger.Compose(ledger.CachedReader(l, b.Cache), l)
	}

	b.Ledger = l
	b.Pingers = append(b.Pingers, health.SubjectPinger("ledger", func(ctx context.Context) error {
		return ledger.Ping(ctx, l)
	}))

	return b, nil
}

// Close releases resources of backend.
func (b *Backend) Close() error {
	var out error

	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil {
			log.WithError(err).Error("failed to close backend")
			out = err
		}
	}
	b.closers = nil

	return out
}

func (b *Backend) openLedger(ctx context.Context, cfg Config) (ledger.Ledger, error) {
	funder := ledger.NewLocalFunder(cfg.Balance, cfg.PricePerByte)

	switch cfg.Ledger {
	case MemoryLedger:
		return mledger.New(cfg.Address, mledger.WithFunder(funder)), nil
	case BadgerLedger:
		l, err := badger.Open(cfg.BadgerDir, cfg.Address, funder)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, l.Close)

		return l, nil
	case PostgresLedger:
		db, err := openPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, db.Close)

		return postgres.New(db, cfg.Address, funder), nil
	case IrysLedger:
		return irys.New(cfg.Irys), nil
	default:
		return nil, fmt.Errorf("%w: ledger %q", ErrUnknownKind, cfg.Ledger)
	}
}

func (b *Backend) openCache(ctx context.Context, cfg Config) error {
	switch cfg.Cache {
	case "", NoCache:
		return nil
	case MemoryCache:
		ctx, cancel := context.WithCancel(context.Background())
		b.closers = append(b.closers, func() error {
			cancel()
			return nil
		})
		b.Cache = memory.NewStorage(ctx)
	case RedisCache:
		s, err := redis.New(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisPrefix)
		if err != nil {
			return err
		}
		b.closers = append(b.closers, s.Close)
		b.Cache = s
		b.Pingers = append(b.Pingers, health.SubjectPinger("redis", s.Ping))
	default:
		return fmt.Errorf("%w: cache %q", ErrUnknownKind, cfg.Cache)
	}

	return nil
}

func openPostgres(ctx context.Context, cfg Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres connection: %w", err)
	}
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConnections)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConnections)

	if err := db.PingContext(ctx); err != nil {
		db.Close() // nolint
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	if cfg.PostgresMigrations != "" {
		if err := Migrate(db, cfg.PostgresMigrations); err != nil {
			db.Close() // nolint
			return nil, err
		}
	}

	return db, nil
}

// Migrate migrates postgres ledger schema up to the latest version.
func Migrate(db *sql.DB, dir string) error {
	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		return fmt.Errorf("failed to create database migrate driver: %w", err)
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", dir), "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	switch v, d, err := migrator.Version(); err {
	case nil:
		log.Infof("database version %d with dirty state %t", v, d)
	case migrate.ErrNilVersion:
		log.Info("database version: nil")
	default:
		return fmt.Errorf("failed to get version: %w", err)
	}

	switch err := migrator.Up(); err {
	case nil:
		log.Info("database was migrated")
	case migrate.ErrNoChange:
		log.Info("database is up-to-date")
	default:
		return fmt.Errorf("failed to migrate db: %w", err)
	}

	return nil
}
