// SPDX-License-Identifier: Apache-2.0

package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ConflictClassifier maps driver-level unique-violation errors onto the
// store's domain sentinels, so services can tell the caller which field
// collided. Each supported database driver has its own implementation
// because the drivers expose constraint information differently.
type ConflictClassifier interface {
	// ClassifyUnique inspects err and returns the matching sentinel
	// ([ErrEmailAlreadyRegistered] or [ErrUsernameAlreadyTaken]) when err
	// is a unique-constraint violation on a recognised users column, or
	// (nil, false) when err is some other failure.
	ClassifyUnique(err error) (error, bool)
}

// PostgresConflictClassifier resolves unique violations via the constraint
// name reported in *pgconn.PgError.
type PostgresConflictClassifier struct{}

// NewPostgresConflictClassifier constructs a classifier for the pgx driver.
func NewPostgresConflictClassifier() *PostgresConflictClassifier {
	return &PostgresConflictClassifier{}
}

// ClassifyUnique implements [ConflictClassifier] for PostgreSQL. Constraint
// names follow the default "<table>_<column>_key" scheme produced by the
// schema migrations.
func (c *PostgresConflictClassifier) ClassifyUnique(err error) (error, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return nil, false
	}

	switch pgErr.ConstraintName {
	case "users_email_key":
		return ErrEmailAlreadyRegistered, true
	case "users_username_key":
		return ErrUsernameAlreadyTaken, true
	}

	// Unique violation on a constraint we do not special-case.
	return ErrExecutingQuery, true
}

// SQLiteConflictClassifier resolves unique violations by parsing the
// "UNIQUE constraint failed: <table>.<column>" message produced by SQLite,
// since sqlite3.Error carries no structured constraint name.
type SQLiteConflictClassifier struct{}

// NewSQLiteConflictClassifier constructs a classifier for the sqlite3 driver.
func NewSQLiteConflictClassifier() *SQLiteConflictClassifier {
	return &SQLiteConflictClassifier{}
}

// ClassifyUnique implements [ConflictClassifier] for SQLite.
func (c *SQLiteConflictClassifier) ClassifyUnique(err error) (error, bool) {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.ExtendedCode != sqlite3.ErrConstraintUnique {
		return nil, false
	}

	switch {
	case strings.Contains(sqliteErr.Error(), "users.email"):
		return ErrEmailAlreadyRegistered, true
	case strings.Contains(sqliteErr.Error(), "users.username"):
		return ErrUsernameAlreadyTaken, true
	}

	return ErrExecutingQuery, true
}
