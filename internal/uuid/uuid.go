package uuid

import (
	google_uuid "github.com/google/uuid"
)

// UUID wraps google/uuid so that it can be bound from URI and query parameters.
type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

func NewString() string {
	return google_uuid.NewString()
}

// UnmarshalParam implements the uuid.Parse method
// from https://pkg.go.dev/github.com/google/uuid#Parse
// for UUID
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, e := google_uuid.Parse(p)
	if e != nil {
		return e
	}

	*u = UUID{parsed}
	return nil
}

// Generator returns a fresh, unique identifier on every call.
type Generator func() google_uuid.UUID

// Default is the Generator used when none is configured.
var Default Generator = google_uuid.New

// Sequence returns a Generator producing deterministic identifiers
// ending in 1, 2, 3, ... It is meant for tests that assert on IDs.
func Sequence() Generator {
	var n uint64
	return func() google_uuid.UUID {
		n++

		var id google_uuid.UUID
		for i := 0; i < 8; i++ {
			id[15-i] = byte(n >> (8 * i))
		}

		return id
	}
}
