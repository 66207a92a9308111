// Package cycle provides a cyclic cursor over any finite, randomly
// addressable sequence. Moving past the last element wraps to the first
// and moving before the first wraps to the last.
//
// The package is built from two pieces:
//
//   - Table: the minimal contract a backing sequence must satisfy
//     (a stable length and indexed access)
//   - Cursor: a position holder bound to a Table, offering seek by
//     relative or absolute offset, peek without moving, and forward or
//     backward iteration
//
// Any offset is legal in seek and peek operations, including negative
// offsets and magnitudes larger than the sequence length; positions are
// normalized with true mathematical modulo, so the cursor always holds a
// valid index while the table is non-empty.
//
// Basic usage:
//
//	c := cycle.New[string](cycle.Slice[string]{"a", "b", "c", "d"}, 0)
//
//	c.Seek(1)   // "b", index 1
//	c.Seek(-2)  // "d", index 3
//	c.Seek(5)   // "a", index 0
//	c.SeekTo(-1) // "d", index 3
//
//	// Peek never moves the cursor.
//	v, ok := c.PeekAt(2) // "b"; position is still 3
//
// Iteration wraps forever, so the caller decides when to stop:
//
//	it := cycle.Forward(c)
//	for v := range it.Seq() {
//	    if done(v) {
//	        break
//	    }
//	}
//
// Empty tables are a normal, non-exceptional state: every operation on a
// cursor over an empty table reports absence through its ok result rather
// than panicking.
//
// Thread Safety:
//
// Cursor and Iterator are not thread-safe; each cursor is mutated only by
// its owner. The backing Table is borrowed read-only for the cursor's
// lifetime and must not be structurally mutated while any cursor
// references it. Multiple cursors over the same Table are fine, each with
// independent position state.
package cycle
