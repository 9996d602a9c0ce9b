//go:build unix

package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

func osMapWrite(f *os.File, size int) ([]byte, error) {
	prot := unix.PROT_READ | unix.PROT_WRITE
	flags := unix.MAP_SHARED

	return unix.Mmap(int(f.Fd()), 0, size, prot, flags)
}

func osUnmap(data []byte) error {
	return unix.Munmap(data)
}

func osFlush(data []byte) error {
	return unix.Msync(data, unix.MS_SYNC)
}

func osLock(data []byte) error {
	return unix.Mlock(data)
}

func madviseIgnoreAlign(data []byte, advice int) error {
	// On Linux, madvise requires page-aligned addresses. Mappings made by
	// this package are page-aligned, but sub-region slices may not be; the
	// hint is advisory, so EINVAL is swallowed.
	err := unix.Madvise(data, advice)
	if err == unix.EINVAL {
		return nil
	}
	return err
}
