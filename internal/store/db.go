// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/notekeeper/notekeeper/internal/config"
	"github.com/notekeeper/notekeeper/internal/logger"
	"github.com/notekeeper/notekeeper/migrations"
)

// DB wraps the database/sql connection pool together with the driver name,
// a placeholder-aware query builder and an error classifier matching the
// driver. Repositories build all their queries through DB.builder so the
// same code runs against PostgreSQL and SQLite.
type DB struct {
	*sql.DB
	driver          string
	builder         sq.StatementBuilderType
	conflictColumns ConflictClassifier
	logger          *logger.Logger
}

// NewConnect opens a connection pool for the configured driver, pings it and
// returns a ready [DB]. Supported drivers are [config.DriverPostgres] and
// [config.DriverSQLite].
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return newConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return newConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnsupportedDBDriver, cfg.Driver)
	}
}

func newConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "newConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "newConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "newConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:              conn,
		driver:          config.DriverPostgres,
		builder:         sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		conflictColumns: NewPostgresConflictClassifier(),
		logger:          log,
	}, nil
}

func newConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// db lives in a file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "newConnectSQLite").Msg("error creating database file")
		return nil, err
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "newConnectSQLite").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// sqlite allows a single writer
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "newConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "newConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:              conn,
		driver:          config.DriverSQLite,
		builder:         sq.StatementBuilder.PlaceholderFormat(sq.Question),
		conflictColumns: NewSQLiteConflictClassifier(),
		logger:          log,
	}, nil
}

// Migrate applies all pending schema migrations for the active driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

func createLocalDBFileIfNotExists(dsn string) error {
	if dsn == "" || dsn == ":memory:" {
		return nil
	}

	if dir := filepath.Dir(dsn); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("error creating database directory: %w", err)
		}
	}

	file, err := os.OpenFile(dsn, os.O_RDONLY|os.O_CREATE, 0o640)
	if err != nil {
		return fmt.Errorf("error creating database file: %w", err)
	}

	return file.Close()
}
