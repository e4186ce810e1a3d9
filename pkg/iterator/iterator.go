// Package iterator defines cursor contracts and the algorithms that drive
// them, so a single copy or accumulate routine works over any container an
// adapter exists for.
package iterator

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Input is a forward-only read cursor. A range is a pair of cursors
// [first, last); iteration ends when the cursor becomes Equal to last.
type Input[T any, I any] interface {
	Deref() T
	Inc() I
	Equal(I) bool
}

// Output is a write-only cursor. Assign stores a value, Deref and Inc exist
// so algorithms can step an output cursor the same way they step an input one.
type Output[T any, O any] interface {
	Deref() O
	Assign(T) O
	Inc() O
}

// Copy assigns every value of src to dst and returns dst.
func Copy[T any, O Output[T, O]](src iter.Seq[T], dst O) O {
	for v := range src {
		dst.Deref().Assign(v)
		dst.Inc()
	}

	return dst
}

// Transform assigns fn(v) to dst for every v of src. It stops at the first
// error fn returns; values assigned before it stay assigned.
func Transform[S, T any, O Output[T, O]](src iter.Seq[S], dst O, fn func(S) (T, error)) (O, error) {
	for v := range src {
		out, err := fn(v)
		if err != nil {
			return dst, err
		}

		dst.Deref().Assign(out)
		dst.Inc()
	}

	return dst, nil
}

// Accumulate adds every value in [first, last) to init.
func Accumulate[T constraints.Integer, I Input[T, I]](first, last I, init T) T {
	for ; !first.Equal(last); first.Inc() {
		init += first.Deref()
	}

	return init
}
