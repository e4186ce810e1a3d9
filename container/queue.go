package container

import "slices"

func NewQueue[T any](vals ...T) *Queue[T] {
	return &Queue[T]{
		vals: slices.Clone(vals),
	}
}

// Queue is a FIFO sequence. Values leave in the order they were pushed.
type Queue[T any] struct {
	vals []T
	head int
}

func (q *Queue[T]) Kind() Kind {
	return FIFO
}

func (q *Queue[T]) Empty() bool {
	return q.head == len(q.vals)
}

func (q *Queue[T]) Len() int {
	return len(q.vals) - q.head
}

func (q *Queue[T]) Push(v T) {
	q.vals = append(q.vals, v)
}

func (q *Queue[T]) Front() T {
	if q.Empty() {
		panic("container: front of empty queue")
	}

	return q.vals[q.head]
}

// Peek is Front under the Sequence name.
func (q *Queue[T]) Peek() T {
	return q.Front()
}

// Values returns a copy of the queued values, front first.
func (q *Queue[T]) Values() []T {
	return slices.Clone(q.vals[q.head:])
}

func (q *Queue[T]) Pop() T {
	front := q.Front()

	var zero T
	q.vals[q.head] = zero
	q.head++

	switch {
	case q.head == len(q.vals):
		q.vals = q.vals[:0]
		q.head = 0
	case q.head > len(q.vals)/2:
		n := copy(q.vals, q.vals[q.head:])
		clear(q.vals[n:])
		q.vals = q.vals[:n]
		q.head = 0
	}

	return front
}

func (q *Queue[T]) Clone() *Queue[T] {
	return &Queue[T]{
		vals: slices.Clone(q.vals[q.head:]),
	}
}
