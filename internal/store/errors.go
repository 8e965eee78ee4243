package store

import "github.com/cockroachdb/errors"

var (
	// ErrNotFound is returned when no record exists for the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateID is returned when inserting a record whose id is already taken.
	ErrDuplicateID = errors.New("record id already exists")
)
