package mmaptype

import (
	"fmt"
	"unsafe"
)

func sizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func alignOf[T any]() int {
	var zero T
	return int(unsafe.Alignof(zero))
}

// assertAlignment panics unless b starts at an address aligned for T.
// Mappings are page-aligned, so this only fires on odd header sizes.
func assertAlignment[T any](b []byte) {
	if len(b) == 0 {
		return
	}
	if addr := uintptr(unsafe.Pointer(&b[0])); addr%uintptr(alignOf[T]()) != 0 {
		panic(fmt.Sprintf("mmaptype: data at 0x%x is not aligned for type (alignment %d)", addr, alignOf[T]()))
	}
}

// viewValue reinterprets b as a single T. Panics when the length does not
// match the size of T or the data is misaligned.
func viewValue[T any](b []byte) *T {
	if len(b) != sizeOf[T]() {
		panic(fmt.Sprintf("mmaptype: mapping is %d bytes, type needs %d", len(b), sizeOf[T]()))
	}
	assertAlignment[T](b)
	return (*T)(unsafe.Pointer(&b[0]))
}

// viewSlice reinterprets b, past headerSize bytes, as a []T. Panics when
// the header is not a multiple of the element size, the remaining length
// is not a multiple of the element size, or the data is misaligned.
func viewSlice[T any](b []byte, headerSize int) []T {
	size := sizeOf[T]()
	if headerSize < 0 || headerSize > len(b) {
		panic(fmt.Sprintf("mmaptype: header of %d bytes does not fit mapping of %d", headerSize, len(b)))
	}
	if headerSize%size != 0 {
		panic(fmt.Sprintf("mmaptype: header of %d bytes is not a multiple of element size %d", headerSize, size))
	}
	data := b[headerSize:]
	if len(data)%size != 0 {
		panic(fmt.Sprintf("mmaptype: %d data bytes is not a multiple of element size %d", len(data), size))
	}
	if len(data) == 0 {
		return nil
	}
	assertAlignment[T](data)
	return unsafe.Slice((*T)(unsafe.Pointer(&data[0])), len(data)/size)
}
