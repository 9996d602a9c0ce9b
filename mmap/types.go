package mmap

import (
	"errors"
	"fmt"
	"sync"
)

// AccessPattern hints to the kernel how mapped data will be accessed.
type AccessPattern int

const (
	// AccessNormal is the default access pattern (no specific advice).
	AccessNormal AccessPattern = iota
	// AccessRandom expects data to be accessed randomly.
	AccessRandom
	// AccessSequential expects data to be accessed sequentially.
	AccessSequential
	// AccessPopulateRead asks the kernel to eagerly page in the mapping.
	// Only supported on Linux; elsewhere Advise returns ErrUnsupported.
	AccessPopulateRead
)

var accessPatternNames = map[AccessPattern]string{
	AccessNormal:       "normal",
	AccessRandom:       "random",
	AccessSequential:   "sequential",
	AccessPopulateRead: "populate_read",
}

// String returns the snake_case name of the access pattern.
func (p AccessPattern) String() string {
	if s, ok := accessPatternNames[p]; ok {
		return s
	}
	return fmt.Sprintf("access_pattern(%d)", int(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p AccessPattern) MarshalText() ([]byte, error) {
	s, ok := accessPatternNames[p]
	if !ok {
		return nil, fmt.Errorf("mmap: unknown access pattern %d", int(p))
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *AccessPattern) UnmarshalText(text []byte) error {
	for pattern, name := range accessPatternNames {
		if name == string(text) {
			*p = pattern
			return nil
		}
	}
	return fmt.Errorf("mmap: unknown access pattern %q", text)
}

var (
	// ErrClosed is returned when attempting to access a closed mapping.
	ErrClosed = errors.New("mmap: mapping is closed")
	// ErrInvalidSize is returned when the file size is invalid.
	ErrInvalidSize = errors.New("mmap: invalid file size")
	// ErrOutOfBounds is returned when a region lies outside the mapping.
	ErrOutOfBounds = errors.New("mmap: out of bounds")
	// ErrInvalidOffset is returned when the offset is invalid.
	ErrInvalidOffset = errors.New("mmap: invalid offset")
	// ErrUnsupported is returned when the platform cannot honor the
	// requested access pattern.
	ErrUnsupported = errors.New("mmap: access pattern not supported on this platform")
)

// The process-wide default access pattern. Set once at startup, read by
// every OpenWrite call. Readers vastly outnumber writers.
var (
	defaultMu      sync.RWMutex
	defaultPattern = AccessRandom
)

// SetDefaultAccessPattern sets the access pattern applied to mappings at
// open time. It should be called before any mapping is created; this
// package never modifies the value itself. Safe for concurrent use.
func SetDefaultAccessPattern(p AccessPattern) {
	defaultMu.Lock()
	defaultPattern = p
	defaultMu.Unlock()
}

// DefaultAccessPattern returns the current process-wide access pattern.
// Safe for concurrent use.
func DefaultAccessPattern() AccessPattern {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultPattern
}
