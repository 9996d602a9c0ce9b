// Package mmaptype overlays plain-layout Go types on memory-mapped files.
//
// Three views are provided: Value reinterprets a whole mapping as a single
// value, Slice as a contiguous array of values (optionally past a fixed
// header), and BitSlice as a packed bit array of uint64 words. Each view
// can hand out detached Flusher handles that remain valid after the view
// itself is gone.
//
// All unsafe reinterpretation in this module is concentrated in cast.go so
// it can be reviewed in one place. The element type must be plain old
// data: fixed size, stable layout, and no pointers, maps, slices, chans,
// funcs, or interfaces anywhere inside it. Malformed bytes on disk are the
// caller's responsibility.
//
// Geometry violations (mapping size not matching the type, misaligned
// base address, bad header size) are programmer errors and panic.
package mmaptype
