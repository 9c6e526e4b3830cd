package varray

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"strings"
)

// minCapacity is the capacity of a new or cleared list.
const minCapacity = 1

// List is an ordered sequence of values of type T, backed by a contiguous
// buffer with power-of-two capacity.
//
// A list created by
//
//	List[T]{}
//
// is a valid object and behaves like a list created with New.
//
// Positions are zero-based. Operations taking a position return false (or -1
// for Find) if the position lies outside their valid window, and never
// change the list in that case.
type List[T comparable] struct {
	buf  []T // len(buf) is the capacity; buf[size:] holds zero values
	size int
}

// New creates an empty list with capacity 1.
func New[T comparable]() *List[T] {
	return &List[T]{buf: make([]T, minCapacity)}
}

// From creates a list holding values in the given order.
func From[T comparable](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.Append(v)
	}
	return l
}

func (l *List[T]) lazyInit() {
	if l.buf == nil {
		l.buf = make([]T, minCapacity)
	}
}

// Size returns the number of elements in the list.
func (l *List[T]) Size() int {
	if l == nil {
		return 0
	}
	return l.size
}

// Capacity returns the number of allocated slots, always a power of two.
func (l *List[T]) Capacity() int {
	if l == nil || len(l.buf) == 0 {
		return minCapacity
	}
	return len(l.buf)
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.Size() == 0
}

// Insert puts value at position, moving subsequent elements one slot up.
// Valid positions are 0…Size(), where Size() appends.
//
// If the list is full, its capacity doubles before value is placed.
func (l *List[T]) Insert(position int, value T) bool {
	if l == nil || position < 0 || position > l.size {
		return false
	}
	l.lazyInit()
	if l.size == len(l.buf) {
		l.resize(2 * len(l.buf))
	}
	copy(l.buf[position+1:l.size+1], l.buf[position:l.size])
	l.buf[position] = value
	l.size++
	return true
}

// Append inserts value at the end of the list.
func (l *List[T]) Append(value T) bool {
	return l.Insert(l.Size(), value)
}

// Remove takes out the element at position and returns it, moving subsequent
// elements one slot down. Valid positions are 0…Size()-1.
//
// If after the removal the list is non-empty but occupies a quarter of its
// capacity or less, the capacity halves.
func (l *List[T]) Remove(position int) (T, bool) {
	var zero T
	if l == nil || position < 0 || position >= l.size {
		return zero, false
	}
	value := l.buf[position]
	copy(l.buf[position:l.size-1], l.buf[position+1:l.size])
	l.size--
	l.buf[l.size] = zero // do not keep a stale reference alive
	if l.size > 0 && 4*l.size <= len(l.buf) && len(l.buf)/2 >= minCapacity {
		l.resize(len(l.buf) / 2)
	}
	return value, true
}

// Get returns the element at position. Valid positions are 0…Size()-1.
func (l *List[T]) Get(position int) (T, bool) {
	var zero T
	if l == nil || position < 0 || position >= l.size {
		return zero, false
	}
	return l.buf[position], true
}

// At returns the element at position, or ErrIndexOutOfBounds.
// It is an error-returning variant of Get.
func (l *List[T]) At(position int) (T, error) {
	v, ok := l.Get(position)
	if !ok {
		return v, ErrIndexOutOfBounds
	}
	return v, nil
}

// Index is an error-returning variant of Find. It returns ErrNotFound if
// Find would return -1.
func (l *List[T]) Index(value T, start ...int) (int, error) {
	if i := l.Find(value, start...); i >= 0 {
		return i, nil
	}
	return -1, ErrNotFound
}

// Find returns the position of the first element equal to value, starting the
// search at an optional start position (default 0). It returns -1 if there is
// no such element or if start is not a valid position.
//
// Elements are compared with ==. For interface element types, values whose
// dynamic types are not comparable (slices, maps, funcs) never match; use
// FindFunc to search for those.
func (l *List[T]) Find(value T, start ...int) int {
	return l.FindFunc(func(v T) bool { return equal(v, value) }, start...)
}

// FindFunc is like Find, but selects the first element for which match
// returns true.
func (l *List[T]) FindFunc(match func(T) bool, start ...int) int {
	from := 0
	if len(start) > 0 {
		from = start[0]
	}
	if l == nil || match == nil || from < 0 || from >= l.size {
		return -1
	}
	for i := from; i < l.size; i++ {
		if match(l.buf[i]) {
			return i
		}
	}
	return -1
}

// Replace overwrites the element at position with value.
func (l *List[T]) Replace(position int, value T) bool {
	if l == nil || position < 0 || position >= l.size {
		return false
	}
	l.buf[position] = value
	return true
}

// Swap exchanges the elements at positions a and b. Both positions have to be
// valid; a == b is allowed and leaves the list as it is.
func (l *List[T]) Swap(a, b int) bool {
	if l == nil || a < 0 || a >= l.size || b < 0 || b >= l.size {
		return false
	}
	l.buf[a], l.buf[b] = l.buf[b], l.buf[a]
	return true
}

// Clear removes all elements and resets the capacity to its minimum.
func (l *List[T]) Clear() {
	if l == nil {
		return
	}
	if len(l.buf) > minCapacity {
		tracer().Debugf("varray: clear drops capacity %d", len(l.buf))
	}
	l.buf = make([]T, minCapacity)
	l.size = 0
}

// Clone returns an independent copy of l. The copy has a buffer of its own,
// with the same capacity as l.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	c.Assign(l)
	return c
}

// Assign replaces the contents of l by a copy of the contents of src.
// Assigning a nil list clears l. l and src do not share storage afterwards.
func (l *List[T]) Assign(src *List[T]) {
	if l == nil || l == src {
		return
	}
	if src == nil {
		l.Clear()
		return
	}
	buf := make([]T, src.Capacity())
	copy(buf, src.buf[:src.size])
	l.buf = buf
	l.size = src.size
}

// Values returns a copy of the elements as a slice.
func (l *List[T]) Values() []T {
	if l == nil || l.size == 0 {
		return []T{}
	}
	values := make([]T, l.size)
	copy(values, l.buf[:l.size])
	return values
}

// Equal reports whether l and other hold equal elements in the same order.
// Capacities are not compared. Element comparison follows Find.
func (l *List[T]) Equal(other *List[T]) bool {
	if l.Size() != other.Size() {
		return false
	}
	for i := 0; i < l.Size(); i++ {
		if !equal(l.buf[i], other.buf[i]) {
			return false
		}
	}
	return true
}

// resize moves the elements to a fresh buffer of capacity c.
func (l *List[T]) resize(c int) {
	assert(c >= l.size, "varray: resize would truncate elements")
	assert(isPowerOfTwo(c), "varray: capacity must be a power of two")
	tracer().Debugf("varray: resize capacity %d -> %d (size=%d)", len(l.buf), c, l.size)
	buf := make([]T, c)
	copy(buf, l.buf[:l.size])
	l.buf = buf
}

// --- Rendering -------------------------------------------------------------

// String renders the list as “[e0, e1, …, en-1]”, with each element formatted
// by its default format (%v). An empty list renders as “[]”.
func (l *List[T]) String() string {
	var sb strings.Builder
	_, _ = l.WriteTo(&sb)
	return sb.String()
}

// WriteTo writes the textual form of the list (see String) to w.
func (l *List[T]) WriteTo(w io.Writer) (int64, error) {
	var total int64
	write := func(s string) error {
		n, err := io.WriteString(w, s)
		total += int64(n)
		return err
	}
	if err := write("["); err != nil {
		return total, err
	}
	for i := 0; i < l.Size(); i++ {
		if i > 0 {
			if err := write(", "); err != nil {
				return total, err
			}
		}
		if err := write(fmt.Sprint(l.buf[i])); err != nil {
			return total, err
		}
	}
	err := write("]")
	return total, err
}

// Elements returns the textual forms of the elements, in order.
func (l *List[T]) Elements() []string {
	out := make([]string, l.Size())
	for i := range out {
		out[i] = fmt.Sprint(l.buf[i])
	}
	return out
}

// equal compares a and b with ==, treating a comparison of uncomparable
// dynamic types as unequal instead of panicking.
func equal[T comparable](a, b T) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
