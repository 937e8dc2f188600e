package common

import "errors"

// Caller errors, surfaced explicitly from Update.
var (
	ErrUnknownOrder = errors.New("unknown order")
	ErrNotOwner     = errors.New("not owner")
)

// ErrDuplicateID marks an invariant violation: the book assigned an id that
// was already live in the registry. This should never happen; callers that
// see it wrapped in a panic have a bug in the id-allocation path, not a bad
// input.
var ErrDuplicateID = errors.New("duplicate order id")

// ErrMalformedInput marks a bulk-ingestion line that could not be parsed.
var ErrMalformedInput = errors.New("malformed input")
