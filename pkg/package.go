package pkg

import "errors"

var (
	ErrInvalidInteger = errors.New("invalid integer")
	ErrNegativeSum    = errors.New("non-negative sum")
	ErrSourceNotFound = errors.New("source not found")
	ErrUnknownFormat  = errors.New("unknown output format")
	ErrSumMismatch    = errors.New("stack and queue sums differ")
)
