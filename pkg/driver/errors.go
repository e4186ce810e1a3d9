package driver

import (
	"fmt"

	"github.com/larynjahor/pushpop/container"
	"github.com/larynjahor/pushpop/pkg"
)

// ParseError is returned for a token that is not an integer. It matches
// pkg.ErrInvalidInteger.
type ParseError struct {
	Token string
	Index int // zero-based position of the token in the stream

	err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("token %d %q: %s", e.Index, e.Token, pkg.ErrInvalidInteger)
}

func (e *ParseError) Unwrap() []error {
	return []error{pkg.ErrInvalidInteger, e.err}
}

// ValidationError is returned when a drained sequence sums to a negative
// total. It matches pkg.ErrNegativeSum.
type ValidationError struct {
	Kind container.Kind
	Sum  int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s total is %d", pkg.ErrNegativeSum, e.Kind, e.Sum)
}

func (e *ValidationError) Unwrap() error {
	return pkg.ErrNegativeSum
}
