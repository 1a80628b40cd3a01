// Package store is the persistence layer: typed create/read/update/delete
// operations per entity over an explicit database handle. Handlers translate
// the sentinel errors here into HTTP statuses; the store itself never shapes
// user-facing messages.
package store

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned by lookups when no row matches the identifier.
	ErrNotFound = errors.New("store: not found")

	// ErrDuplicate is returned when an insert or update collides with a
	// unique constraint (username/email).
	ErrDuplicate = errors.New("store: duplicate value")

	// ErrForeignKey is returned when a referenced row does not exist or a
	// delete is blocked by dependent rows.
	ErrForeignKey = errors.New("store: foreign key violation")
)

// constraintError maps PostgreSQL constraint failures onto the store
// sentinels. It returns nil for anything that is not a constraint error.
func constraintError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}
	switch pqErr.Code {
	case "23505":
		return ErrDuplicate
	case "23503":
		return ErrForeignKey
	}
	return nil
}
