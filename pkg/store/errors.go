package store

import "errors"

// Failure taxonomy for all core mutations. Callers discriminate with
// errors.Is; none of these corrupt the committed state.
var (
	// ErrNotFound marks a mutation referencing an absent entity id.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks a mutation rejected on its inputs, such as
	// composing a message with no recipients.
	ErrValidation = errors.New("validation failed")

	// ErrInvariant marks a mutation whose result would break a
	// cross-entity invariant. It indicates a defect in a coordinator,
	// not a user error, and always leaves the store unchanged.
	ErrInvariant = errors.New("invariant violation")
)
