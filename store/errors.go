package store

// Error kinds surfaced by store operations. All of them are recoverable:
// the caller rejects the triggering request and the store stays usable.

// ValidationError reports missing or malformed required input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports a referenced id that does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// PreconditionError reports an operation that requires state the store
// does not currently hold, like checkout on an empty cart.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string { return e.Message }
