package mmap

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
)

// Mapping represents a writable memory-mapped file.
// It owns the underlying byte slice and is responsible for unmapping it.
//
// The mapped length is fixed for the life of the handle. Read and write
// access through Bytes is not synchronized by this type; callers are
// expected to follow a single-writer discipline. Flush calls are
// serialized against each other.
type Mapping struct {
	data   []byte
	size   int
	closed atomic.Bool

	// flushMu serializes msync calls; page writes are not covered.
	flushMu sync.Mutex
}

// OpenWrite maps the file at path into memory as a shared, writable
// mapping covering the whole file. The process-wide default access
// pattern is applied; if the platform cannot honor it (for example
// AccessPopulateRead off Linux), OpenWrite fails with ErrUnsupported.
func OpenWrite(path string) (*Mapping, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	size := fi.Size()
	if size < 0 {
		return nil, ErrInvalidSize
	}
	if size == 0 {
		return &Mapping{data: nil, size: 0}, nil
	}

	data, err := osMapWrite(f, int(size))
	if err != nil {
		return nil, err
	}

	m := &Mapping{
		data: data,
		size: int(size),
	}

	if err := m.Advise(DefaultAccessPattern()); err != nil {
		_ = osUnmap(data)
		return nil, err
	}

	return m, nil
}

// Close unmaps the memory. It is idempotent. Outstanding views into
// Bytes become invalid; accessing them afterwards is undefined behavior.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return nil
	}
	if m.data == nil {
		return nil
	}
	return osUnmap(m.data)
}

// Bytes returns the underlying byte slice.
// The slice is valid only until Close is called.
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

// Size returns the size of the mapping in bytes.
func (m *Mapping) Size() int {
	return m.size
}

// Flush synchronously writes the mapped region back to the file.
// A successful return means all writes made before the call on the
// current goroutine are durable. Flushing a closed mapping is a no-op.
func (m *Mapping) Flush() error {
	m.flushMu.Lock()
	defer m.flushMu.Unlock()
	if m.closed.Load() || m.data == nil {
		return nil
	}
	return osFlush(m.data)
}

// Lock pins the mapped pages in physical memory. No-op on Windows.
func (m *Mapping) Lock() error {
	if m.closed.Load() {
		return ErrClosed
	}
	if m.data == nil {
		return nil
	}
	return osLock(m.data)
}

// Advise hints to the kernel how the mapping will be accessed.
func (m *Mapping) Advise(pattern AccessPattern) error {
	if m.closed.Load() {
		return ErrClosed
	}
	if m.data == nil {
		return nil
	}
	return osAdvise(m.data, pattern)
}

// ReadAt implements io.ReaderAt.
func (m *Mapping) ReadAt(p []byte, off int64) (n int, err error) {
	if m.closed.Load() {
		return 0, ErrClosed
	}
	if off < 0 {
		return 0, ErrInvalidOffset
	}
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n = copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}
