package mmaptype

// Flusher requests durability of the mapping a view was built on.
//
// A Flusher shares the mapping with the view that produced it, so it stays
// callable after the view goes out of scope. Multiple flushers may coexist
// and are serialized against each other; flushing an already-closed
// mapping is a no-op. A successful call means all writes made before it on
// the current goroutine are durable.
type Flusher func() error
