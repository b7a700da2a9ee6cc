package sim

import "errors"

var (
	ErrEmptyTable   = errors.New("table is empty")
	ErrTableShape   = errors.New("table does not match species count")
	ErrNonPositive  = errors.New("must be positive")
	ErrNegative     = errors.New("must not be negative")
	ErrUnknownSeed  = errors.New("unknown seeding strategy")
	ErrBadViewport  = errors.New("viewport must be positive")
	ErrBadParticle  = errors.New("invalid particle")
	ErrUnknownIndex = errors.New("particle index out of range")
)
