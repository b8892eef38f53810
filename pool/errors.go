package pool

import "errors"

var (
	// ErrNoSpace indicates no free region large enough for the request.
	ErrNoSpace = errors.New("pool: no free region large enough")

	// ErrNotReady indicates an operation that needs an initialized pool.
	ErrNotReady = errors.New("pool: not initialized")

	// ErrZeroSize indicates an allocation request for zero or negative bytes.
	ErrZeroSize = errors.New("pool: allocation size must be positive")

	// ErrBadWordSize indicates a non-positive word size in the configuration.
	ErrBadWordSize = errors.New("pool: word size must be positive")

	// ErrNilStrategy indicates a missing fit strategy in the configuration.
	ErrNilStrategy = errors.New("pool: nil fit strategy")

	// ErrSink indicates the memory map dump target could not be opened.
	ErrSink = errors.New("pool: cannot open dump sink")
)
