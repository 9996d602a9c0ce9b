package mmaptype

import (
	"fmt"

	"github.com/BabaBert/qdrant/mmap"
)

// Slice overlays a contiguous array of T on a memory-mapped file,
// optionally past a fixed-size header that this layer never interprets.
type Slice[T any] struct {
	m     *mmap.Mapping
	items []T
}

// NewSlice overlays []T on the mapping past headerSize bytes. The
// post-header length must be a multiple of the size of T, the header a
// multiple of the element size, and the data aligned for T; anything
// else is a programmer error and panics.
func NewSlice[T any](m *mmap.Mapping, headerSize int) *Slice[T] {
	return &Slice[T]{
		m:     m,
		items: viewSlice[T](m.Bytes(), headerSize),
	}
}

// Len returns the number of elements.
func (s *Slice[T]) Len() int {
	return len(s.items)
}

// At returns a pointer to element i, aliasing the mapped bytes.
func (s *Slice[T]) At(i int) *T {
	return &s.items[i]
}

// Get returns a copy of element i.
func (s *Slice[T]) Get(i int) T {
	return s.items[i]
}

// Set writes element i.
func (s *Slice[T]) Set(i int, v T) {
	s.items[i] = v
}

// Items returns the mapped slice itself. It aliases the mapping and must
// not be used after the mapping is closed.
func (s *Slice[T]) Items() []T {
	return s.items
}

// CopyFrom writes src into the mapped array. Panics when the lengths
// differ.
func (s *Slice[T]) CopyFrom(src []T) {
	if len(src) != len(s.items) {
		panic(fmt.Sprintf("mmaptype: copy of %d elements into slice of %d", len(src), len(s.items)))
	}
	copy(s.items, src)
}

// Flusher returns a detached handle that flushes the backing mapping.
func (s *Slice[T]) Flusher() Flusher {
	m := s.m
	return func() error {
		return m.Flush()
	}
}

// Lock pins the mapped pages in physical memory.
func (s *Slice[T]) Lock() error {
	return s.m.Lock()
}

// Advise overrides the access-pattern advice on the backing mapping.
func (s *Slice[T]) Advise(p mmap.AccessPattern) error {
	return s.m.Advise(p)
}
