// Package mmap provides writable, file-backed memory mappings with explicit
// flushing, page pinning, and OS access-pattern advice.
//
// A Mapping covers a whole file and has a fixed length for its lifetime.
// Mutations go through the Bytes slice; durability is requested with Flush.
// A process-wide default AccessPattern (initially AccessRandom) is applied
// to every mapping at open time and can be overridden per mapping or per
// Region with Advise.
package mmap
