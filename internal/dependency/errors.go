package dependency

import "errors"

// Errors reported for malformed registrations and unresolvable graphs.
// Registration errors are usage errors: they surface at collection time and
// are never turned into unit failures.
var (
	ErrEmptyID       = errors.New("unit identifier is empty")
	ErrEmptyDepends  = errors.New("dependency name is empty")
	ErrDuplicateUnit = errors.New("unit is already registered")
	ErrUnknownMode   = errors.New("unknown dependency mode")
	ErrCycle         = errors.New("dependency cycle detected")
)
