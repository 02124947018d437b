package httperr

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// UniqueViolation reports whether err is a unique-index violation and returns
// whatever identifies the index: the constraint name on Postgres, the
// "table.column, ..." list on SQLite.
func UniqueViolation(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgerrcode.UniqueViolation {
			return pgErr.ConstraintName, true
		}
		return "", false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "", true
	}

	const sqliteMarker = "UNIQUE constraint failed: "
	msg := err.Error()
	if i := strings.Index(msg, sqliteMarker); i >= 0 {
		return msg[i+len(sqliteMarker):], true
	}

	return "", false
}
