//go:build linux

package mmap

import "golang.org/x/sys/unix"

func osAdvise(data []byte, pattern AccessPattern) error {
	if len(data) == 0 {
		return nil
	}

	var advice int
	switch pattern {
	case AccessRandom:
		advice = unix.MADV_RANDOM
	case AccessSequential:
		advice = unix.MADV_SEQUENTIAL
	case AccessPopulateRead:
		// MADV_POPULATE_READ needs kernel 5.14+.
		advice = unix.MADV_POPULATE_READ
	default:
		advice = unix.MADV_NORMAL
	}

	return madviseIgnoreAlign(data, advice)
}
