package db

import (
	"strings"

	"github.com/teranos/lattix/errors"
)

// ErrDatabaseClosed marks failures caused by operating on a closed database
// handle, so callers can tell a dead connection from a bad query.
var ErrDatabaseClosed = errors.New("database is closed")

// IsDatabaseClosed reports whether err comes from a closed database handle.
// Errors marked with ErrDatabaseClosed match directly; raw driver errors are
// recognized by message, since database/sql and the sqlite driver surface
// their own types that cannot be marked at the source.
func IsDatabaseClosed(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrDatabaseClosed) {
		return true
	}
	return strings.Contains(err.Error(), "database is closed")
}
