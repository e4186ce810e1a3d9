package driver

import (
	"github.com/larynjahor/pushpop/container"
	"github.com/larynjahor/pushpop/pkg/iterator"
	"github.com/larynjahor/pushpop/pkg/pushpop"
)

// NonNegativeSum drains seq and returns the total of its values. A negative
// total is reported as a *ValidationError alongside the total.
//
// Only the final total is checked; a negative running sum along the way is
// fine. Use package prefix for that.
func NonNegativeSum(seq container.Sequence[int]) (int, error) {
	kind := seq.Kind()

	sum := iterator.Accumulate[int](pushpop.Begin(seq), pushpop.End[int](), 0)
	if sum < 0 {
		return sum, &ValidationError{Kind: kind, Sum: sum}
	}

	return sum, nil
}
