package vec

// Cloner is the declared copy capability for element types whose values own
// internal state. A type implementing Cloner[T] is deep-copied (via Clone)
// whenever a Vector duplicates elements or relocates them to a new Buffer
// during growth; the clone may fail, in which case the source elements are
// left untouched.
//
// Types that do not implement Cloner are transferred by plain assignment,
// which never fails.
type Cloner[T any] interface {
	Clone() (T, error)
}

// isCloner reports whether T declares the Cloner capability. The answer is
// a property of the type, resolved once per instantiation.
func isCloner[T any]() bool {
	var zero T
	_, ok := any(zero).(Cloner[T])
	return ok
}

// cloneValue produces an independent copy of v: Clone for Cloner types,
// the value itself otherwise.
func cloneValue[T any](v T) (T, error) {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v, nil
}

// transferInto constructs copies of the n source slots starting at srcOff
// into dst starting at dstOff.
//
// Cloner element types are cloned so the source slots stay fully intact; if
// a clone fails partway, the dst slots constructed so far are destroyed and
// the error returned, leaving dst holding no live elements from this call.
// Non-Cloner types are bit-moved, which cannot fail. Either way the source
// Buffer is never modified here; destroying the source slots afterwards is
// the caller's decision.
func transferInto[T any](dst, src *Buffer[T], dstOff, srcOff, n int) error {
	if isCloner[T]() {
		for i := 0; i < n; i++ {
			v, err := cloneValue(*src.UncheckedAt(srcOff + i))
			if err != nil {
				destroyRange(dst, dstOff, i)
				return err
			}
			*dst.UncheckedAt(dstOff + i) = v
		}
		return nil
	}
	for i := 0; i < n; i++ {
		*dst.UncheckedAt(dstOff + i) = *src.UncheckedAt(srcOff + i)
	}
	return nil
}

// destroyRange destroys the n slots starting at off by zeroing them, so the
// collector can reclaim whatever the elements referenced. Zeroed slots are
// indistinguishable from never-constructed storage, which keeps every slot
// outside the live range value-initialized.
func destroyRange[T any](b *Buffer[T], off, n int) {
	clear(b.block[off : off+n])
}
