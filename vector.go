package vec

import (
	"fmt"
	"iter"
)

// Vector is a growable, contiguous sequence of T backed by a single Buffer.
// It owns the Buffer exclusively and is the only entity that constructs or
// destroys elements inside it: slots [0, Len) hold live values, slots
// [Len, Cap) are storage.
//
// Not goroutine-safe: a Vector assumes single-threaded, non-aliased access.
// Any operation that reallocates (growth, Reserve, a reallocating CopyFrom)
// invalidates every element address previously obtained via At or
// UncheckedAt; non-reallocating Insert/Emplace/Erase invalidate addresses
// at or after the mutated position.
type Vector[T any] struct {
	data     Buffer[T]
	len      int
	released bool
	stats    stats
}

// New returns an empty Vector with no storage.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWithLen returns a Vector holding n zero-value elements.
func NewWithLen[T any](n int) (*Vector[T], error) {
	buf, err := NewBuffer[T](n)
	if err != nil {
		return nil, fmt.Errorf("vec: sized construction: %w", err)
	}
	// Fresh slots arrive zeroed, so adopting them as live is exactly
	// value construction.
	return &Vector[T]{data: buf, len: n}, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.len
}

// Cap returns the number of slots the current Buffer can hold.
func (v *Vector[T]) Cap() int {
	return v.data.Cap()
}

// At returns the address of element i. The caller must guarantee
// 0 <= i < Len; a violation panics. The address is valid until the next
// reallocating or position-shifting operation.
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.len {
		panic(fmt.Sprintf("vec: index %d out of range [0, %d)", i, v.len))
	}
	return v.data.UncheckedAt(i)
}

// UncheckedAt returns the address of element i without any bounds check.
// It is the unsafe counterpart of At; callers must have established
// 0 <= i < Len themselves.
func (v *Vector[T]) UncheckedAt(i int) *T {
	return v.data.UncheckedAt(i)
}

// Set overwrites element i, destroying the previous value. Panics unless
// 0 <= i < Len.
func (v *Vector[T]) Set(i int, val T) {
	*v.At(i) = val
}

// Values iterates over the elements in position order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.len; i++ {
			if !yield(*v.data.UncheckedAt(i)) {
				return
			}
		}
	}
}

// All iterates over index/element pairs in position order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.len; i++ {
			if !yield(i, *v.data.UncheckedAt(i)) {
				return
			}
		}
	}
}

// EmplaceBack constructs a new element at the end from ctor and returns its
// address. If the construction or the growth it triggers fails, the length
// and every live element are observably unchanged.
//
// On the growth path the new element is constructed into its final slot of
// the new Buffer before any existing element is relocated, so a failing
// ctor costs only the discarded Buffer.
func (v *Vector[T]) EmplaceBack(ctor func() (T, error)) (*T, error) {
	v.panicIfReleased()
	if v.len == v.data.Cap() {
		newData, err := NewBuffer[T](v.grownCap())
		if err != nil {
			v.stats.failedGrows++
			return nil, fmt.Errorf("vec: grow: %w", err)
		}
		elem, err := ctor()
		if err != nil {
			newData.Release()
			v.stats.failedGrows++
			return nil, err
		}
		*newData.UncheckedAt(v.len) = elem
		if err := v.relocate(&newData, 0, 0, v.len); err != nil {
			destroyRange(&newData, v.len, 1)
			newData.Release()
			v.stats.failedGrows++
			return nil, err
		}
		v.adopt(&newData)
	} else {
		elem, err := ctor()
		if err != nil {
			return nil, err
		}
		*v.data.UncheckedAt(v.len) = elem
	}
	v.len++
	return v.data.UncheckedAt(v.len - 1), nil
}

// PushBack appends val, taking ownership of the value as passed.
func (v *Vector[T]) PushBack(val T) error {
	_, err := v.EmplaceBack(func() (T, error) { return val, nil })
	return err
}

// PopBack destroys the last element. Panics when the Vector is empty.
func (v *Vector[T]) PopBack() {
	v.panicIfReleased()
	if v.len == 0 {
		panic("vec: PopBack on empty vector")
	}
	v.len--
	destroyRange(&v.data, v.len, 1)
}

// Emplace constructs a new element from ctor before position i, shifting
// elements [i, Len) one slot right, and returns the new element's index.
// i may be any position in [0, Len]; i == Len appends. Panics on any other
// i. On failure the sequence is observably unchanged.
//
// ctor runs before any element is displaced, so it may safely read the
// Vector's own elements (self-referential insert).
func (v *Vector[T]) Emplace(i int, ctor func() (T, error)) (int, error) {
	v.panicIfReleased()
	if i < 0 || i > v.len {
		panic(fmt.Sprintf("vec: insert position %d out of range [0, %d]", i, v.len))
	}
	if i == v.len {
		if _, err := v.EmplaceBack(ctor); err != nil {
			return 0, err
		}
		return v.len - 1, nil
	}
	if v.len == v.data.Cap() {
		newData, err := NewBuffer[T](v.grownCap())
		if err != nil {
			v.stats.failedGrows++
			return 0, fmt.Errorf("vec: grow: %w", err)
		}
		elem, err := ctor()
		if err != nil {
			newData.Release()
			v.stats.failedGrows++
			return 0, err
		}
		*newData.UncheckedAt(i) = elem
		if err := v.relocate(&newData, 0, 0, i); err != nil {
			destroyRange(&newData, i, 1)
			newData.Release()
			v.stats.failedGrows++
			return 0, err
		}
		if err := v.relocate(&newData, i+1, i, v.len-i); err != nil {
			destroyRange(&newData, 0, i+1)
			newData.Release()
			v.stats.failedGrows++
			return 0, err
		}
		v.adopt(&newData)
	} else {
		// i < len, so the vector is non-empty. Materialize the new value
		// first: a ctor that reads an existing element must observe the
		// pre-shift sequence.
		elem, err := ctor()
		if err != nil {
			return 0, err
		}
		// Construct the current last element into the trailing slot,
		// then shift [i, len-1) right one slot back to front.
		*v.data.UncheckedAt(v.len) = *v.data.UncheckedAt(v.len - 1)
		for j := v.len - 1; j > i; j-- {
			*v.data.UncheckedAt(j) = *v.data.UncheckedAt(j - 1)
		}
		*v.data.UncheckedAt(i) = elem
	}
	v.len++
	return i, nil
}

// Insert inserts val before position i, taking ownership of the value as
// passed.
func (v *Vector[T]) Insert(i int, val T) error {
	_, err := v.Emplace(i, func() (T, error) { return val, nil })
	return err
}

// Erase removes element i, shifting elements (i, Len) one slot left and
// destroying the vacated trailing slot. No reallocation. Panics unless
// 0 <= i < Len.
func (v *Vector[T]) Erase(i int) {
	v.panicIfReleased()
	if i < 0 || i >= v.len {
		panic(fmt.Sprintf("vec: erase position %d out of range [0, %d)", i, v.len))
	}
	for j := i; j < v.len-1; j++ {
		*v.data.UncheckedAt(j) = *v.data.UncheckedAt(j + 1)
	}
	v.len--
	destroyRange(&v.data, v.len, 1)
}

// Reserve grows capacity to exactly n, relocating the live elements. A
// request not exceeding the current capacity is a no-op; capacity never
// shrinks. On failure the sequence is observably unchanged.
func (v *Vector[T]) Reserve(n int) error {
	v.panicIfReleased()
	if n <= v.data.Cap() {
		return nil
	}
	newData, err := NewBuffer[T](n)
	if err != nil {
		v.stats.failedGrows++
		return fmt.Errorf("vec: reserve: %w", err)
	}
	if err := v.relocate(&newData, 0, 0, v.len); err != nil {
		newData.Release()
		v.stats.failedGrows++
		return err
	}
	v.adopt(&newData)
	return nil
}

// Resize changes the length to n: a shrink destroys the trailing elements
// in place, a growth reserves capacity if needed and exposes zero-value
// elements. Capacity is never reduced.
func (v *Vector[T]) Resize(n int) error {
	v.panicIfReleased()
	if n < 0 {
		return &SizeError{Requested: n}
	}
	switch {
	case n < v.len:
		destroyRange(&v.data, n, v.len-n)
	case n > v.len:
		if err := v.Reserve(n); err != nil {
			return err
		}
		// Slots beyond len are kept zeroed (destroyRange zeroes, fresh
		// Buffers arrive zeroed), so the exposed tail is already
		// value-initialized.
	}
	v.len = n
	return nil
}

// Clone returns a deep, structurally independent copy sized to the current
// length. Cloner element types are cloned per element; on a clone failure
// nothing is returned and the source is untouched.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	v.panicIfReleased()
	buf, err := NewBuffer[T](v.len)
	if err != nil {
		return nil, fmt.Errorf("vec: clone: %w", err)
	}
	for i := 0; i < v.len; i++ {
		val, err := cloneValue(*v.data.UncheckedAt(i))
		if err != nil {
			destroyRange(&buf, 0, i)
			buf.Release()
			return nil, err
		}
		*buf.UncheckedAt(i) = val
	}
	return &Vector[T]{data: buf, len: v.len}, nil
}

// CopyFrom replaces the receiver's contents with a deep copy of src.
//
// When src's length exceeds the receiver's capacity the copy is built
// independently and swapped in, so a failure leaves the receiver unchanged.
// Otherwise the existing Buffer is reused: the overlapping prefix is
// assigned element-wise, surplus receiver elements are destroyed, and the
// extra src suffix is copy-constructed into spare slots; a clone failure in
// this branch keeps the receiver valid but may leave the already assigned
// prefix (the reuse branch promises the basic guarantee only).
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	v.panicIfReleased()
	src.panicIfReleased()
	if v == src {
		return nil
	}
	if src.len > v.data.Cap() {
		dup, err := src.Clone()
		if err != nil {
			return err
		}
		v.Swap(dup)
		dup.Release()
		return nil
	}
	overlap := min(v.len, src.len)
	for i := 0; i < overlap; i++ {
		val, err := cloneValue(*src.data.UncheckedAt(i))
		if err != nil {
			return err
		}
		*v.data.UncheckedAt(i) = val
	}
	if v.len > src.len {
		destroyRange(&v.data, src.len, v.len-src.len)
	} else {
		for i := v.len; i < src.len; i++ {
			val, err := cloneValue(*src.data.UncheckedAt(i))
			if err != nil {
				destroyRange(&v.data, v.len, i-v.len)
				return err
			}
			*v.data.UncheckedAt(i) = val
		}
	}
	v.len = src.len
	return nil
}

// MoveFrom steals src's Buffer and length, destroying the receiver's
// previous contents. src is left empty and reusable. Never allocates and
// never fails.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	v.panicIfReleased()
	src.panicIfReleased()
	if v == src {
		return
	}
	destroyRange(&v.data, 0, v.len)
	v.data.Release()
	v.data = src.data.Move()
	v.len = src.len
	src.len = 0
}

// Swap exchanges contents with other in constant time. Metrics counters
// stay with their instances.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.panicIfReleased()
	other.panicIfReleased()
	v.data.Swap(&other.data)
	v.len, other.len = other.len, v.len
}

// Release destroys all live elements and drops the Buffer. Afterwards any
// mutating or copying operation panics; the cheap observers (Len, Cap, Set
// via its bounds check, iteration, Metrics) simply see an empty vector.
// Release is idempotent. Letting the collector reclaim an unreleased Vector
// is also fine; Release exists for deterministic teardown.
func (v *Vector[T]) Release() {
	if v.released {
		return
	}
	destroyRange(&v.data, 0, v.len)
	v.data.Release()
	v.len = 0
	v.released = true
}

// grownCap is the growth policy: max(1, 2*cap).
func (v *Vector[T]) grownCap() int {
	if c := v.data.Cap(); c > 0 {
		return 2 * c
	}
	return 1
}

// relocate transfers n live elements from the current Buffer into newData
// and records the transfer kind in the metrics counters.
func (v *Vector[T]) relocate(newData *Buffer[T], dstOff, srcOff, n int) error {
	if err := transferInto(newData, &v.data, dstOff, srcOff, n); err != nil {
		return err
	}
	if isCloner[T]() {
		v.stats.elementsCloned += uint64(n)
	} else {
		v.stats.elementsMoved += uint64(n)
	}
	return nil
}

// adopt destroys the old Buffer's elements, swaps newData in, and releases
// the old block. newData must already hold every element the Vector will
// consider live.
func (v *Vector[T]) adopt(newData *Buffer[T]) {
	destroyRange(&v.data, 0, v.len)
	v.data.Swap(newData)
	newData.Release()
	v.stats.grows++
}

// panicIfReleased panics if the vector has been released.
func (v *Vector[T]) panicIfReleased() {
	if v.released {
		panic("vec: use after Release()")
	}
}
