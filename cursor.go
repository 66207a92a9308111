package cycle

import "fmt"

// Cursor is a mutable position holder bound to a Table. While the table
// is non-empty the cursor always holds a valid index into it; seek and
// peek offsets of any sign and magnitude are normalized with true
// mathematical modulo. A cursor over an empty table is in the empty
// state and every operation on it reports absence.
type Cursor[T any] struct {
	table Table[T]
	pos   int
}

// New creates a cursor bound to t, starting at the index start wraps to.
// Any start value is accepted, including negative or overflowing ones;
// it is normalized into [0, t.Len()) the same way Seek offsets are. If t
// is empty the cursor is in the empty state regardless of start.
func New[T any](t Table[T], start int) *Cursor[T] {
	c := &Cursor[T]{table: t}
	if n := t.Len(); n > 0 {
		c.pos = wrap(start, n)
	}
	return c
}

// Len returns the length of the backing table.
func (c *Cursor[T]) Len() int {
	return c.table.Len()
}

// Position returns the current index, or false if the table is empty.
func (c *Cursor[T]) Position() (int, bool) {
	if c.table.Len() == 0 {
		return 0, false
	}
	return c.pos, true
}

// Seek moves the cursor by offset positions, wrapping at the table
// bounds, and returns the element now under the cursor. Seek(0) is
// equivalent to Peek. On an empty table Seek moves nothing and returns
// false.
func (c *Cursor[T]) Seek(offset int) (T, bool) {
	n := c.table.Len()
	if n == 0 {
		var zero T
		return zero, false
	}
	// Reduce the offset before adding so the sum cannot overflow even
	// for offsets at the int extremes.
	c.pos = wrap(c.pos+wrap(offset, n), n)
	return c.table.At(c.pos), true
}

// SeekTo sets the cursor to the index that absolute index wraps to,
// independent of the current position, and returns the element there.
// On an empty table SeekTo moves nothing and returns false.
func (c *Cursor[T]) SeekTo(index int) (T, bool) {
	n := c.table.Len()
	if n == 0 {
		var zero T
		return zero, false
	}
	c.pos = wrap(index, n)
	return c.table.At(c.pos), true
}

// Peek returns the element under the cursor without moving it, or false
// if the table is empty.
func (c *Cursor[T]) Peek() (T, bool) {
	if c.table.Len() == 0 {
		var zero T
		return zero, false
	}
	return c.table.At(c.pos), true
}

// PeekAt returns the element offset positions away from the cursor,
// using the same wraparound rule as Seek, without moving the cursor.
// Returns false if the table is empty.
func (c *Cursor[T]) PeekAt(offset int) (T, bool) {
	n := c.table.Len()
	if n == 0 {
		var zero T
		return zero, false
	}
	return c.table.At(wrap(c.pos+wrap(offset, n), n)), true
}

// Next moves the cursor to the next element, wrapping from the last
// element back to the first. Equivalent to Seek(1).
func (c *Cursor[T]) Next() (T, bool) {
	return c.Seek(1)
}

// Prev moves the cursor to the previous element, wrapping from the
// first element back to the last. Equivalent to Seek(-1).
func (c *Cursor[T]) Prev() (T, bool) {
	return c.Seek(-1)
}

// String returns a string representation of the cursor.
func (c *Cursor[T]) String() string {
	n := c.table.Len()
	if n == 0 {
		return "Cursor(empty)"
	}
	return fmt.Sprintf("Cursor(%d/%d)", c.pos, n)
}

// wrap normalizes i into [0, n) with true mathematical modulo. Go's %
// is a remainder and returns a negative result for a negative dividend,
// so the result is corrected when needed. n must be positive.
func wrap(i, n int) int {
	r := i % n
	if r < 0 {
		r += n
	}
	return r
}
