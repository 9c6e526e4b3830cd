package varray

import "fmt"

// Check validates the structural invariants of a list:
//
//   - 0 <= Size() <= Capacity(),
//   - Capacity() is a power of two and at least 1,
//   - unused slots of the buffer hold the zero value.
//
// Check does not modify the list and may be called at any time. A non-nil
// result wraps ErrInconsistent and indicates a bug in this package.
func (l *List[T]) Check() error {
	if l == nil {
		return fmt.Errorf("%w: nil list", ErrInconsistent)
	}
	if l.buf == nil { // zero value
		if l.size != 0 {
			return fmt.Errorf("%w: unallocated list with size %d", ErrInconsistent, l.size)
		}
		return nil
	}
	c := len(l.buf)
	if c < minCapacity {
		return fmt.Errorf("%w: capacity %d below minimum %d", ErrInconsistent, c, minCapacity)
	}
	if !isPowerOfTwo(c) {
		return fmt.Errorf("%w: capacity %d is not a power of two", ErrInconsistent, c)
	}
	if l.size < 0 || l.size > c {
		return fmt.Errorf("%w: size %d outside of capacity %d", ErrInconsistent, l.size, c)
	}
	var zero T
	for i := l.size; i < c; i++ {
		if l.buf[i] != zero {
			return fmt.Errorf("%w: stale value in unused slot %d", ErrInconsistent, i)
		}
	}
	return nil
}

// CheckConsistency reports whether the list satisfies its invariants.
// See Check.
func (l *List[T]) CheckConsistency() bool {
	err := l.Check()
	if err != nil {
		tracer().Errorf("varray: %v", err)
	}
	return err == nil
}
