package mmaptype

import "github.com/BabaBert/qdrant/mmap"

// wordBits is the width of a BitSlice storage word.
const wordBits = 64

// BitSlice overlays a packed bit array on a memory-mapped file,
// optionally past a fixed-size header.
//
// Bit i lives at bit i%64 (least significant first) of word i/64. The
// on-disk bitstring is not portable to machines with a different word
// layout.
type BitSlice struct {
	words *Slice[uint64]
}

// NewBitSlice overlays a bit array on the mapping past headerSize bytes.
// The same geometry rules as NewSlice over uint64 apply and violations
// panic.
func NewBitSlice(m *mmap.Mapping, headerSize int) *BitSlice {
	return &BitSlice{
		words: NewSlice[uint64](m, headerSize),
	}
}

// Len returns the length in bits.
func (b *BitSlice) Len() int {
	return b.words.Len() * wordBits
}

// Get reports whether bit i is set.
func (b *BitSlice) Get(i int) bool {
	return b.words.items[i/wordBits]&(1<<(i%wordBits)) != 0
}

// Set sets or clears bit i.
func (b *BitSlice) Set(i int, v bool) {
	if v {
		b.words.items[i/wordBits] |= 1 << (i % wordBits)
	} else {
		b.words.items[i/wordBits] &^= 1 << (i % wordBits)
	}
}

// Flusher returns a detached handle that flushes the backing mapping.
func (b *BitSlice) Flusher() Flusher {
	return b.words.Flusher()
}

// Lock pins the mapped pages in physical memory.
func (b *BitSlice) Lock() error {
	return b.words.Lock()
}

// Advise overrides the access-pattern advice on the backing mapping.
func (b *BitSlice) Advise(p mmap.AccessPattern) error {
	return b.words.Advise(p)
}
