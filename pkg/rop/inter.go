package rop

import (
	"time"

	"github.com/google/uuid"
)

// Fallible is implemented by Result and Void.
type Fallible interface {
	// IsOk reports whether the container is in the success state
	IsOk() bool
	// IsErr reports whether the container is in the failure state
	IsErr() bool
	// Id identifies the construction the container descends from
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Failure extends Fallible with access to the failure payload.
type Failure[E any] interface {
	Fallible
	// Error returns the failure payload and true if the container failed
	Error() (E, bool)
}

// Success extends Fallible with access to the success payload.
type Success[T any] interface {
	Fallible
	// Value returns the success payload and true if the container succeeded
	Value() (T, bool)
}
