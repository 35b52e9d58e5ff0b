package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateCRM      = errors.New("crm already exists")
	// ErrDuplicate covers unique conflicts whose column could not be
	// determined from the driver metadata.
	ErrDuplicate = errors.New("record already exists")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingFields      = errors.New("all required fields must be filled")
	ErrNotFound           = errors.New("record not found")
	// ErrStorage wraps engine errors so callers never depend on
	// driver-specific types.
	ErrStorage = errors.New("database error")
)

// translateError classifies a storage error into the repository taxonomy,
// inspecting structured constraint metadata from the driver: the SQLite
// extended result code names the failing table.column, Postgres reports
// SQLSTATE 23505 with the constraint name.
func translateError(err error) error {
	var se sqlite3.Error
	if errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintUnique {
		return duplicateByColumn(se.Error())
	}

	var pe *pgconn.PgError
	if errors.As(err, &pe) && pe.Code == "23505" {
		return duplicateByColumn(pe.ConstraintName)
	}

	return fmt.Errorf("%w: %v", ErrStorage, err)
}

func duplicateByColumn(detail string) error {
	switch {
	case strings.Contains(detail, "username"):
		return ErrDuplicateUsername
	case strings.Contains(detail, "email"):
		return ErrDuplicateEmail
	case strings.Contains(detail, "crm"):
		return ErrDuplicateCRM
	}
	return ErrDuplicate
}
