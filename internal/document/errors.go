package document

import "errors"

// ErrInvalidArgument is returned when a required input is missing.
var ErrInvalidArgument = errors.New("invalid argument")
