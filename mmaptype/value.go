package mmaptype

import "github.com/BabaBert/qdrant/mmap"

// Value overlays a single value of type T on a memory-mapped file.
//
// The pointer returned by Get aliases the mapped bytes directly; it must
// not be used after the underlying mapping is closed.
type Value[T any] struct {
	m *mmap.Mapping
	v *T
}

// NewValue overlays T on the whole mapping. The mapping must be exactly
// the size of T and aligned for it; anything else is a programmer error
// and panics.
func NewValue[T any](m *mmap.Mapping) *Value[T] {
	return &Value[T]{
		m: m,
		v: viewValue[T](m.Bytes()),
	}
}

// Get returns a pointer to the mapped value. Mutations through the
// pointer write directly into the mapping.
func (v *Value[T]) Get() *T {
	return v.v
}

// Flusher returns a detached handle that flushes the backing mapping.
func (v *Value[T]) Flusher() Flusher {
	m := v.m
	return func() error {
		return m.Flush()
	}
}

// Lock pins the mapped pages in physical memory.
func (v *Value[T]) Lock() error {
	return v.m.Lock()
}

// Advise overrides the access-pattern advice on the backing mapping.
func (v *Value[T]) Advise(p mmap.AccessPattern) error {
	return v.m.Advise(p)
}
