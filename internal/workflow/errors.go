package workflow

import "errors"

// Local validation failures. Each aborts the requested operation with zero
// mutation and is surfaced to the user as an error notification; none is
// retried automatically.
var (
	ErrItemNotFound      = errors.New("item not found")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidInterval   = errors.New("invalid interval")
	ErrInvalidStartDate  = errors.New("invalid start date")
)
