package star

import "errors"

// Domain errors for stellar state handling.
var (
	// ErrEmptySet indicates an operation that needs at least one star.
	ErrEmptySet = errors.New("star: empty state set")

	// ErrMissingKinematics indicates a star lacking proper motion or
	// radial velocity, which propagation requires.
	ErrMissingKinematics = errors.New("star: missing kinematic fields")

	// ErrBadDistance indicates a non-positive or non-finite distance.
	ErrBadDistance = errors.New("star: distance must be positive and finite")
)
