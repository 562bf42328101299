package postgres

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/xy-planning-network/waypoint"
)

// SQLSTATE codes raised by PostgreSQL.
//
// Cf., https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeInvalidText         = "22P02"
	codeSyntaxError         = "42601"
	codeUndefinedColumn     = "42703"
)

var (
	// database/sql returns these as untyped errors.
	errSQLScan          = regexp.MustCompile(`sql: expected \d+ destination arguments in Scan, not \d+`)
	errSQLUnaddressable = regexp.MustCompile(`sql: Scan error on column index \d+, name "\w+": destination not a pointer`)
)

// classify maps an error PostgreSQL raised onto a waypoint error.
//
// classify returns nil if err is not a *pgconn.PgError
// or carries a code callers cannot act on.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.Code {
	case codeUniqueViolation:
		return fmt.Errorf("%w: %s", waypoint.ErrExists, pgErr.Message)

	case codeForeignKeyViolation, codeNotNullViolation:
		return fmt.Errorf("%w: %s", waypoint.ErrNotValid, pgErr.Message)

	case codeInvalidText, codeSyntaxError, codeUndefinedColumn:
		return fmt.Errorf("%w: %s", waypoint.ErrNotValid, pgErr.Message)

	default:
		return nil
	}
}
