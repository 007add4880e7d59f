package oracle

import "errors"

var (
	ErrWrongChain         = errors.New("header belongs to another chain")
	ErrMalformedHeader    = errors.New("malformed header")
	ErrHeightMismatch     = errors.New("header height mismatch")
	ErrUnknownHeader      = errors.New("unknown header")
	ErrNotConnected       = errors.New("header not connected")
	ErrInvalidCheckpoint  = errors.New("invalid checkpoint")
	ErrCheckpointConflict = errors.New("checkpoint conflict")
	ErrNoCheckpoint       = errors.New("no checkpoint")
)
