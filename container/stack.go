package container

import "slices"

func NewStack[T any](vals ...T) *Stack[T] {
	return &Stack[T]{
		vals: slices.Clone(vals),
	}
}

// Stack is a LIFO sequence. The last pushed value is on top.
type Stack[T any] struct {
	vals []T
}

func (s *Stack[T]) Kind() Kind {
	return LIFO
}

func (s *Stack[T]) Empty() bool {
	return len(s.vals) == 0
}

func (s *Stack[T]) Len() int {
	return len(s.vals)
}

func (s *Stack[T]) Push(v T) {
	s.vals = append(s.vals, v)
}

func (s *Stack[T]) Top() T {
	if s.Empty() {
		panic("container: top of empty stack")
	}

	top := s.vals[len(s.vals)-1]

	return top
}

// Peek is Top under the Sequence name.
func (s *Stack[T]) Peek() T {
	return s.Top()
}

// Values returns a copy of the stored values, bottom first.
func (s *Stack[T]) Values() []T {
	return slices.Clone(s.vals)
}

func (s *Stack[T]) Pop() T {
	top := s.Top()

	var zero T
	s.vals[len(s.vals)-1] = zero
	s.vals = s.vals[:len(s.vals)-1]

	return top
}

func (s *Stack[T]) Clone() *Stack[T] {
	return &Stack[T]{
		vals: slices.Clone(s.vals),
	}
}
