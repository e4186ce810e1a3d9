package pushpop

import (
	"github.com/larynjahor/pushpop/container"
	"github.com/larynjahor/pushpop/pkg/iterator"
)

// NewPusher returns a write cursor that pushes every assigned value onto seq.
func NewPusher[T any](seq container.Sequence[T]) *Pusher[T] {
	if seq == nil {
		panic("pushpop: pusher bound to nil sequence")
	}

	return &Pusher[T]{
		seq: seq,
	}
}

// Pusher inserts through the sequence's own Push: onto the top of a stack,
// onto the back of a queue.
type Pusher[T any] struct {
	seq container.Sequence[T]
}

func (p *Pusher[T]) Assign(v T) *Pusher[T] {
	p.seq.Push(v)

	return p
}

func (p *Pusher[T]) Deref() *Pusher[T] {
	return p
}

func (p *Pusher[T]) Inc() *Pusher[T] {
	return p
}

func (p *Pusher[T]) PostInc() *Pusher[T] {
	return p
}

var _ iterator.Output[int, *Pusher[int]] = (*Pusher[int])(nil)
