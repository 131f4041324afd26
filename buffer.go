package vec

import (
	"fmt"
	"math"
	"unsafe"
)

// Buffer owns a single block of storage sized for a fixed number of element
// slots. It has no notion of element liveness: which slots hold meaningful
// values is entirely the owning Vector's business. Buffer never reads,
// constructs, or destroys elements.
//
// A Buffer must not be duplicated: two live Buffers must never alias the
// same block. Transfer ownership with Move or Swap. The zero value is a
// valid Buffer with no block and capacity 0.
type Buffer[T any] struct {
	// block backs the slots; len(block) == capacity. Slots are logically
	// uninitialized storage even though Go hands them out zeroed.
	block []T
}

// NewBuffer allocates storage for n element slots. n == 0 yields a Buffer
// with no block. The slots are storage only, not live elements.
//
// Returns a SizeError (wrapping ErrTooLarge) if n is negative or the block
// size would overflow.
func NewBuffer[T any](n int) (Buffer[T], error) {
	if n == 0 {
		return Buffer[T]{}, nil
	}
	var zero T
	if sz := uint64(unsafe.Sizeof(zero)); n < 0 || sz > 0 && uint64(n) > math.MaxInt/sz {
		return Buffer[T]{}, &SizeError{Requested: n}
	}
	return Buffer[T]{block: make([]T, n)}, nil
}

// Cap returns the number of slots the block can hold.
func (b *Buffer[T]) Cap() int {
	return len(b.block)
}

// At returns the address of slot i. The caller must guarantee 0 <= i < Cap;
// a violation panics.
func (b *Buffer[T]) At(i int) *T {
	if i < 0 || i >= len(b.block) {
		panic(fmt.Sprintf("vec: buffer slot %d out of range [0, %d)", i, len(b.block)))
	}
	return &b.block[i]
}

// UncheckedAt returns the address of slot i without any bounds check. It is
// the unsafe counterpart of At for callers that have already established
// 0 <= i < Cap; anything else is undefined behavior.
func (b *Buffer[T]) UncheckedAt(i int) *T {
	var zero T
	base := unsafe.Pointer(unsafe.SliceData(b.block))
	return (*T)(unsafe.Add(base, uintptr(i)*unsafe.Sizeof(zero)))
}

// Swap exchanges blocks and capacities with other in constant time. Element
// state is untouched: whatever liveness bookkeeping the owners keep must be
// swapped by them.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.block, other.block = other.block, b.block
}

// Move transfers ownership of the block to the returned Buffer and leaves
// the receiver with no block and capacity 0.
func (b *Buffer[T]) Move() Buffer[T] {
	moved := Buffer[T]{block: b.block}
	b.block = nil
	return moved
}

// Release gives the block back. It performs no element destruction: the
// owner must have destroyed any live elements it placed here first.
func (b *Buffer[T]) Release() {
	b.block = nil
}
