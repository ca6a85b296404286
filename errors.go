package goPass

import (
	"errors"

	"github.com/MrEthical07/goPass/password"
)

var (
	// ErrHashingFailed reports an internal failure of the password hashing primitive (HashingError).
	ErrHashingFailed = password.ErrHashingFailed
	// ErrMalformedHash reports a stored hash that could not be evaluated. Verification maps it to a mismatch.
	ErrMalformedHash = password.ErrMalformedHash
	// ErrInvalidConfig is an exported constant or variable used by the password engine.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrEngineNotReady is an exported constant or variable used by the password engine.
	ErrEngineNotReady = errors.New("engine not initialized")
	// ErrBuilderUsed is an exported constant or variable used by the password engine.
	ErrBuilderUsed = errors.New("builder already used")
)
