package driver

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/larynjahor/pushpop/container"
	"github.com/larynjahor/pushpop/pkg/iterator"
	"github.com/larynjahor/pushpop/pkg/pushpop"
)

// ReadInto pushes every whitespace separated integer of r onto seq, in
// stream order. On a bad token it returns a *ParseError; the integers read
// before it stay in seq.
func ReadInto(r io.Reader, seq container.Sequence[int]) error {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var tokens iter.Seq[string] = func(yield func(string) bool) {
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
	}

	index := 0

	_, err := iterator.Transform(tokens, pushpop.NewPusher(seq), func(token string) (int, error) {
		v, err := strconv.Atoi(token)
		if err != nil {
			return 0, &ParseError{Token: token, Index: index, err: err}
		}

		index++

		return v, nil
	})
	if err != nil {
		return err
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan tokens: %w", err)
	}

	return nil
}
