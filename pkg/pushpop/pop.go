// Package pushpop adapts stacks and queues to the cursor contracts of package
// iterator.
//
// A Popper reads the next accessible value of a sequence (top of a stack,
// front of a queue) and removes it on advance. Reading is destructive and
// single-pass: once a Popper has walked a sequence, the sequence is empty.
// Only one Popper may drain a given sequence at a time.
package pushpop

import (
	"iter"

	"github.com/larynjahor/pushpop/container"
	"github.com/larynjahor/pushpop/pkg/iterator"
)

// NewPopper returns a cursor over seq. If seq is empty or nil the cursor is
// already at the end.
func NewPopper[T any](seq container.Sequence[T]) *Popper[T] {
	p := &Popper[T]{}
	if seq != nil && !seq.Empty() {
		p.seq = seq
	}

	return p
}

// Popper is either bound to a non-empty sequence or at the end. The zero
// value is at the end.
type Popper[T any] struct {
	seq container.Sequence[T]
}

// AtEnd reports whether p is the end sentinel.
func (p *Popper[T]) AtEnd() bool {
	return p == nil || p.seq == nil
}

// Deref returns the next accessible value without removing it.
func (p *Popper[T]) Deref() T {
	if p.AtEnd() {
		panic("pushpop: dereference of end popper")
	}

	return p.seq.Peek()
}

// Inc removes the next accessible value and moves to the end once the
// sequence is empty.
func (p *Popper[T]) Inc() *Popper[T] {
	if p.AtEnd() {
		panic("pushpop: increment of end popper")
	}

	p.seq.Pop()
	if p.seq.Empty() {
		p.seq = nil
	}

	return p
}

// PostInc advances p and returns the value that was current before the
// advance. The value is held by the returned Proxy since the sequence no
// longer has it.
func (p *Popper[T]) PostInc() Proxy[T] {
	proxy := Proxy[T]{value: p.Deref()}

	p.Inc()

	return proxy
}

// Equal reports whether p and other are bound to the same sequence or are
// both at the end.
func (p *Popper[T]) Equal(other *Popper[T]) bool {
	if p.AtEnd() || other.AtEnd() {
		return p.AtEnd() && other.AtEnd()
	}

	return p.seq == other.seq
}

func (p *Popper[T]) NotEqual(other *Popper[T]) bool {
	return !p.Equal(other)
}

// Proxy carries a value read by PostInc.
type Proxy[T any] struct {
	value T
}

func (p Proxy[T]) Deref() T {
	return p.value
}

// Begin returns a cursor at the next accessible value of seq.
func Begin[T any](seq container.Sequence[T]) *Popper[T] {
	return NewPopper(seq)
}

// End returns the end sentinel.
func End[T any]() *Popper[T] {
	return &Popper[T]{}
}

// Drain ranges over seq from Begin to End, popping each value as it is
// yielded. Breaking out of the loop leaves the unread values in seq.
func Drain[T any](seq container.Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it, end := Begin(seq), End[T](); it.NotEqual(end); {
			if !yield(it.PostInc().Deref()) {
				return
			}
		}
	}
}

var _ iterator.Input[int, *Popper[int]] = (*Popper[int])(nil)
