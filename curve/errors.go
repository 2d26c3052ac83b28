package curve

import "errors"

var (
	ErrEmptyPoints   = errors.New("curve cannot be created with empty points")
	ErrDuplicateTime = errors.New("curve cannot have duplicate time values")
	ErrInvalidValue  = errors.New("curve cannot have NaN or infinite values")
	ErrTooManyPoints = errors.New("curve has more points than the fixed capacity")
)
