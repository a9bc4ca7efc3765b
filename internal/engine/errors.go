package engine

import "errors"

// Execution errors beyond what the catalog reports. Callers can test the
// failure class with errors.Is; catalog.ErrNoSuchTable, ErrTableExists and
// ErrUnknownColumn surface through the engine unchanged.
var (
	ErrAmbiguousColumn   = errors.New("ambiguous column reference")
	ErrInvalidProjection = errors.New("invalid projection")
)
