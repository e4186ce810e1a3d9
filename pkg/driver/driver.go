package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"

	"github.com/larynjahor/pushpop/container"
	"github.com/larynjahor/pushpop/pkg"
	"github.com/larynjahor/pushpop/pkg/pushpop"
)

func New(fs fs.FS) *Driver {
	return &Driver{
		fs: fs,
	}
}

// Driver reads a file of integers from its filesystem into a stack and a
// queue and sums both.
type Driver struct {
	fs fs.FS
}

type Request struct {
	Name string
}

type Response struct {
	Name  string `json:"file" yaml:"file"`
	Stack []int  `json:"stack" yaml:"stack"`
	Queue []int  `json:"queue" yaml:"queue"`

	// Sum is nil unless both totals were validated.
	Sum *int `json:"sum,omitempty" yaml:"sum,omitempty"`
}

// Do fills a stack and a queue from req.Name and returns their contents and
// validated sum.
//
// A file that does not parse fails before anything is summed. If a sum is
// negative the returned Response still carries both sequences.
func (d *Driver) Do(ctx context.Context, req *Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := slog.With(slog.String("file", req.Name))

	src, err := fs.ReadFile(d.fs, req.Name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", pkg.ErrSourceNotFound, err)
		}

		return nil, fmt.Errorf("read file=%s: %w", req.Name, err)
	}

	stack, queue := container.NewStack[int](), container.NewQueue[int]()

	if err := ReadInto(bytes.NewReader(src), stack); err != nil {
		return nil, fmt.Errorf("fill stack: %w", err)
	}

	if err := ReadInto(bytes.NewReader(src), queue); err != nil {
		return nil, fmt.Errorf("fill queue: %w", err)
	}

	logger.DebugContext(ctx, "read sequences", slog.Int("len", stack.Len()))

	resp := &Response{
		Name:  req.Name,
		Stack: snapshot(stack.Clone()),
		Queue: snapshot(queue.Clone()),
	}

	stackSum, err := NonNegativeSum(stack)
	if err != nil {
		return resp, err
	}

	queueSum, err := NonNegativeSum(queue)
	if err != nil {
		return resp, err
	}

	if stackSum != queueSum {
		return resp, fmt.Errorf("%w: %d != %d", pkg.ErrSumMismatch, stackSum, queueSum)
	}

	logger.DebugContext(ctx, "validated sum", slog.Int("sum", stackSum))

	resp.Sum = &stackSum

	return resp, nil
}

// snapshot drains seq into a slice in the order a Popper yields it.
func snapshot(seq container.Sequence[int]) []int {
	return slices.AppendSeq(make([]int, 0, seq.Len()), pushpop.Drain(seq))
}
