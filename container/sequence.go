package container

// Sequence is what a stack and a queue have in common: values go in one at a
// time and come out one at a time from a single accessible end.
//
// Peek and Pop panic on an empty sequence.
type Sequence[T any] interface {
	Kind() Kind
	Push(v T)
	Peek() T
	Pop() T
	Empty() bool
	Len() int
}

type Kind int

const (
	LIFO Kind = iota
	FIFO
)

func (k Kind) String() string {
	switch k {
	case LIFO:
		return "stack"
	case FIFO:
		return "queue"
	default:
		return "unknown"
	}
}

var (
	_ Sequence[int] = (*Stack[int])(nil)
	_ Sequence[int] = (*Queue[int])(nil)
)
