// Package prefix checks the sign of every running sum of a sequence of
// integers.
package prefix

import (
	"iter"

	"github.com/larynjahor/pushpop/pkg/iterator"
	"golang.org/x/exp/constraints"
)

// NonNegative reports whether no prefix sum of seq is negative. It stops
// reading seq at the first one that is.
func NonNegative[T constraints.Integer](seq iter.Seq[T]) bool {
	var sum T

	for v := range seq {
		sum += v
		if sum < 0 {
			return false
		}
	}

	return true
}

// NonPositive reports whether no prefix sum of seq is positive.
func NonPositive[T constraints.Integer](seq iter.Seq[T]) bool {
	var sum T

	for v := range seq {
		sum += v
		if sum > 0 {
			return false
		}
	}

	return true
}

func NonNegativeRange[T constraints.Integer, I iterator.Input[T, I]](first, last I) bool {
	var sum T

	for ; !first.Equal(last); first.Inc() {
		sum += first.Deref()
		if sum < 0 {
			first.Inc()
			return false
		}
	}

	return true
}

func NonPositiveRange[T constraints.Integer, I iterator.Input[T, I]](first, last I) bool {
	var sum T

	for ; !first.Equal(last); first.Inc() {
		sum += first.Deref()
		if sum > 0 {
			first.Inc()
			return false
		}
	}

	return true
}
