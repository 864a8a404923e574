package dataset

import "errors"

// Dataset load errors.
var (
	ErrEmpty         = errors.New("dataset has no header row")
	ErrMissingColumn = errors.New("required column missing")
	ErrInvalidValue  = errors.New("invalid value")
)
