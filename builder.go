package varray

// Builder incrementally stages values and finalizes them into a List.
//
// Values may be appended and prepended; the list is materialized only when
// List() is called, with a capacity matching the growth policy of List.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder[T comparable] struct {
	// front keeps prepended values in reverse logical order.
	front []T
	// back keeps appended values in logical order.
	back []T

	done  bool
	dirty bool
	list  *List[T]
}

// NewBuilder creates a new and empty list builder.
func NewBuilder[T comparable]() *Builder[T] {
	return &Builder[T]{}
}

// List returns the list built from all staged values.
//
// It is illegal to continue adding values after List has been called, but
// List may be called multiple times. Every call returns an independent copy.
func (b *Builder[T]) List() *List[T] {
	if b == nil {
		return New[T]()
	}
	if b.dirty || b.list == nil {
		b.list = b.buildList()
		b.dirty = false
	}
	b.done = true
	if b.list.IsEmpty() {
		tracer().Debugf("list builder: list is empty")
	}
	return b.list.Clone()
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder[T]) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
	b.dirty = false
	b.list = nil
}

// Append appends values to the staged build.
func (b *Builder[T]) Append(values ...T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrListCompleted
	}
	b.back = append(b.back, values...)
	if len(values) > 0 {
		b.dirty = true
	}
	return nil
}

// Prepend prepends values to the staged build. The values keep their order,
// i.e. Prepend(a, b) stages a before b.
func (b *Builder[T]) Prepend(values ...T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrListCompleted
	}
	// front is stored in reverse logical order.
	for i := len(values) - 1; i >= 0; i-- {
		b.front = append(b.front, values[i])
	}
	if len(values) > 0 {
		b.dirty = true
	}
	return nil
}

// Len returns the number of staged values.
func (b *Builder[T]) Len() int {
	if b == nil {
		return 0
	}
	return len(b.front) + len(b.back)
}

func (b *Builder[T]) buildList() *List[T] {
	l := New[T]()
	for i := len(b.front) - 1; i >= 0; i-- {
		ok := l.Append(b.front[i])
		assert(ok, "builder: append failed")
	}
	for _, v := range b.back {
		ok := l.Append(v)
		assert(ok, "builder: append failed")
	}
	return l
}
