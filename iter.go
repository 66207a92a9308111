package cycle

import "iter"

// Iterator produces elements by repeatedly seeking its cursor one step
// in a fixed direction. Because the cursor wraps, the stream never ends
// on its own while the table is non-empty; callers impose their own
// bound (Take, break out of Seq, stop on a sentinel). Over an empty
// table the stream yields nothing.
//
// The iterator advances the cursor it wraps as a side effect of
// consumption, so the cursor's position always reflects the last
// element produced.
type Iterator[T any] struct {
	cursor *Cursor[T]
	step   int
}

// Forward returns an iterator that walks c toward higher indexes,
// wrapping from the last element to the first.
func Forward[T any](c *Cursor[T]) *Iterator[T] {
	return &Iterator[T]{cursor: c, step: 1}
}

// Backward returns an iterator that walks c toward lower indexes,
// wrapping from the first element to the last.
func Backward[T any](c *Cursor[T]) *Iterator[T] {
	return &Iterator[T]{cursor: c, step: -1}
}

// Next advances the cursor one step and returns the element there.
// It returns false only when the backing table is empty.
func (it *Iterator[T]) Next() (T, bool) {
	return it.cursor.Seek(it.step)
}

// Take consumes and returns the next n elements. Over an empty table
// the result is empty no matter how large n is.
func (it *Iterator[T]) Take(n int) []T {
	var out []T
	for range n {
		v, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

// Seq exposes the iterator as a range-over-func sequence. The sequence
// is infinite while the table is non-empty; the caller terminates it by
// breaking out of the range loop.
func (it *Iterator[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
