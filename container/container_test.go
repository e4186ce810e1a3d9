package container_test

import (
	"testing"

	"github.com/larynjahor/pushpop/container"
	"github.com/stretchr/testify/require"
)

func drain(s container.Sequence[int]) []int {
	var out []int

	for !s.Empty() {
		out = append(out, s.Pop())
	}

	return out
}

func TestSequence_Order(t *testing.T) {
	tests := []struct {
		name string
		seq  container.Sequence[int]
		kind container.Kind
		want []int
	}{
		{
			name: "stack",
			seq:  container.NewStack[int](),
			kind: container.LIFO,
			want: []int{5, 4, 3, 2, 1},
		},
		{
			name: "queue",
			seq:  container.NewQueue[int](),
			kind: container.FIFO,
			want: []int{1, 2, 3, 4, 5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 1; i <= 5; i++ {
				tt.seq.Push(i)
			}

			require.Equal(t, tt.kind, tt.seq.Kind())
			require.Equal(t, tt.name, tt.seq.Kind().String())
			require.Equal(t, 5, tt.seq.Len())
			require.Equal(t, tt.want[0], tt.seq.Peek())
			require.Equal(t, 5, tt.seq.Len())

			require.Equal(t, tt.want, drain(tt.seq))
			require.True(t, tt.seq.Empty())
			require.Zero(t, tt.seq.Len())
		})
	}
}

func TestSequence_EmptyPanics(t *testing.T) {
	for _, seq := range []container.Sequence[int]{container.NewStack[int](), container.NewQueue[int]()} {
		t.Run(seq.Kind().String(), func(t *testing.T) {
			require.Panics(t, func() { seq.Peek() })
			require.Panics(t, func() { seq.Pop() })
		})
	}
}

func TestQueue_Interleaved(t *testing.T) {
	q := container.NewQueue(1, 2, 3)

	require.Equal(t, 1, q.Pop())
	require.Equal(t, 2, q.Pop())

	q.Push(4)
	q.Push(5)

	require.Equal(t, []int{3, 4, 5}, q.Values())
	require.Equal(t, 3, q.Front())
	require.Equal(t, []int{3, 4, 5}, drain(q))

	q.Push(6)
	require.Equal(t, 6, q.Front())
	require.Equal(t, 1, q.Len())
}

func TestStack_Clone(t *testing.T) {
	s := container.NewStack(1, 2, 3)
	c := s.Clone()

	require.Equal(t, 3, c.Pop())
	require.Equal(t, 3, s.Len())
	require.Equal(t, 3, s.Top())
	require.Equal(t, []int{1, 2, 3}, s.Values())
}

func TestQueue_Clone(t *testing.T) {
	q := container.NewQueue(1, 2, 3)
	q.Pop()

	c := q.Clone()
	require.Equal(t, []int{2, 3}, c.Values())

	c.Push(4)
	require.Equal(t, 2, q.Len())
	require.Equal(t, []int{2, 3, 4}, drain(c))
	require.Equal(t, []int{2, 3}, drain(q))
}

func TestSequence_CallerSliceSurvivesPop(t *testing.T) {
	t.Run("stack", func(t *testing.T) {
		vals := []int{1, 2, 3}
		s := container.NewStack(vals...)
		before := s.Values()

		s.Pop()
		s.Push(9)

		require.Equal(t, []int{1, 2, 3}, vals)
		require.Equal(t, []int{1, 2, 3}, before)
		require.Equal(t, []int{1, 2, 9}, s.Values())
	})

	t.Run("queue", func(t *testing.T) {
		vals := []int{1, 2, 3, 4}
		q := container.NewQueue(vals...)
		before := q.Values()

		// the third pop compacts the storage
		q.Pop()
		q.Pop()
		q.Pop()

		require.Equal(t, []int{1, 2, 3, 4}, vals)
		require.Equal(t, []int{1, 2, 3, 4}, before)
		require.Equal(t, []int{4}, q.Values())
	})
}
