package behavioral

import (
	"fmt"
	"io"
)

// RangeIterator walks a bound numeric range one step at a time. It is
// stateful and single-use: once exhausted it stays exhausted.
type RangeIterator struct {
	current int
	end     int
	step    int
}

// NewRangeIterator creates an iterator over (start, end] advancing by
// step. Step must be a positive integer.
func NewRangeIterator(start, end, step int) *RangeIterator {
	return &RangeIterator{current: start, end: end, step: step}
}

// Next returns the next value and false, or the boundary value and true
// once the range is exhausted. Calling Next after exhaustion keeps
// returning done.
func (it *RangeIterator) Next() (int, bool) {
	next := it.current + it.step
	if it.current >= it.end || next > it.end {
		return it.end, true
	}
	it.current = next
	return next, false
}

// DemoIterator drains a range(0, 20, 5) iterator.
func DemoIterator(w io.Writer) error {
	it := NewRangeIterator(0, 20, 5)
	for {
		v, done := it.Next()
		if done {
			_, err := fmt.Fprintln(w, "Iterator: done")
			return err
		}
		if _, err := fmt.Fprintf(w, "Iterator: %d\n", v); err != nil {
			return err
		}
	}
}
