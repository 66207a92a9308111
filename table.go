package cycle

// Table is the contract a backing sequence must satisfy to be cursored:
// a known length and random access by index. Implementations must keep
// Len stable for the lifetime of any cursor bound to them; structural
// mutation while cursored is out of contract.
type Table[T any] interface {
	// Len returns the element count. It must be callable repeatedly and
	// return the same value for a bound cursor's lifetime.
	Len() int

	// At returns the element at index i. Callers must satisfy
	// 0 <= i < Len(); violating that is a programming error and
	// implementations are expected to fail fast rather than return a
	// recoverable error. The cursor's own arithmetic never produces an
	// out-of-range index while the contract above holds.
	At(i int) T
}

// Slice adapts a Go slice to the Table contract.
type Slice[T any] []T

// Len returns the slice length.
func (s Slice[T]) Len() int {
	return len(s)
}

// At returns the element at index i. An out-of-range index panics with
// the runtime's bounds check, which is the fail-fast behavior the Table
// contract asks for.
func (s Slice[T]) At(i int) T {
	return s[i]
}
