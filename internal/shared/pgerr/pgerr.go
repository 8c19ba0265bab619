// Package pgerr classifies PostgreSQL errors so repositories can translate
// them into domain errors and handlers can tell retryable infrastructure
// failures from everything else.
package pgerr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// IsUniqueViolation reports whether err is a unique-constraint violation,
// optionally on a constraint whose name contains the given fragment.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != codeUniqueViolation {
		return false
	}
	return constraint == "" || strings.Contains(pgErr.ConstraintName, constraint)
}

// IsForeignKeyViolation reports whether err is a foreign-key violation,
// optionally on a constraint whose name contains the given fragment.
func IsForeignKeyViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != codeForeignKeyViolation {
		return false
	}
	return constraint == "" || strings.Contains(pgErr.ConstraintName, constraint)
}

// IsUnavailable reports whether err came from the storage backend being
// unreachable or overloaded rather than from the query itself. Class 08 is
// connection exceptions, 53 insufficient resources, 57 operator
// intervention (shutdown), 55 lock not available.
func IsUnavailable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if len(pgErr.Code) < 2 {
			return false
		}
		switch pgErr.Code[:2] {
		case "08", "53", "57", "55":
			return true
		}
		return false
	}

	var connErr *pgconn.ConnectError
	return errors.As(err, &connErr)
}
